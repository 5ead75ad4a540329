package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientError_Error(t *testing.T) {
	t.Run("without_inner", func(t *testing.T) {
		err := NewEmptyResponseError("response has no user", nil)
		assert.Equal(t, "empty_response: response has no user", err.Error())
	})
	t.Run("with_inner", func(t *testing.T) {
		err := NewInvalidAddressError("cannot parse address", errors.New("bad port"))
		assert.Equal(t, "invalid_address: cannot parse address: bad port", err.Error())
	})
}

func TestClientError_Predicates(t *testing.T) {
	inner := errors.New("boom")
	tests := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{"invalid_address", NewInvalidAddressError("m", nil), IsInvalidAddress},
		{"invalid_service_description", NewInvalidServiceDescriptionError("m", nil), IsInvalidServiceDescription},
		{"empty_response", NewEmptyResponseError("m", nil), IsEmptyResponse},
		{"transport_failure", NewTransportFailureError("m", inner), IsTransportFailure},
		{"unknown_method", NewUnknownMethodError("m", nil), IsUnknownMethod},
		{"invalid_argument", NewInvalidArgumentError("m", nil), IsInvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.check(tt.err))
			assert.True(t, tt.check(fmt.Errorf("wrapped: %w", tt.err)))
			assert.False(t, tt.check(inner))
		})
	}
}

func TestClientError_UnwrapKeepsInner(t *testing.T) {
	inner := errors.New("connection refused")
	err := NewTransportFailureError("call failed", inner)
	assert.ErrorIs(t, err, inner)
	assert.False(t, IsEmptyResponse(err))
}
