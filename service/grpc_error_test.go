package service

import (
	"errors"
	"testing"

	"myuserapp/domain"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestTransportFailure(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode codes.Code
	}{
		{name: "unavailable", err: status.Error(codes.Unavailable, "connection refused"), wantCode: codes.Unavailable},
		{name: "deadline", err: status.Error(codes.DeadlineExceeded, "timeout"), wantCode: codes.DeadlineExceeded},
		{name: "not_found", err: status.Error(codes.NotFound, "user not found"), wantCode: codes.NotFound},
		{name: "plain_error", err: errors.New("boom"), wantCode: codes.Unknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := transportFailure("/api.v1.UserService/GetUser", tt.err)
			assert.True(t, domain.IsTransportFailure(err))
			assert.Equal(t, tt.wantCode, status.Code(err))
			assert.ErrorIs(t, err, tt.err)
			assert.Contains(t, err.Error(), "/api.v1.UserService/GetUser failed with "+tt.wantCode.String())
		})
	}
}

func TestAsClientError(t *testing.T) {
	t.Run("client_error_unchanged", func(t *testing.T) {
		in := domain.NewEmptyResponseError("no user", nil)
		assert.Equal(t, in, asClientError("GetUser", in))
	})

	t.Run("other_error_becomes_transport_failure", func(t *testing.T) {
		err := asClientError("GetUser", status.Error(codes.Internal, "boom"))
		assert.True(t, domain.IsTransportFailure(err))
		assert.Equal(t, codes.Internal, status.Code(err))
	})
}
