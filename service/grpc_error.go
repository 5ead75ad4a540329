package service

import (
	"errors"

	"myuserapp/domain"

	"google.golang.org/grpc/status"
)

// transportFailure wraps an RPC error as a ClientError CodeTransportFailure. The original error is kept as Inner so
// status.Code(err) still reports the gRPC code (Unavailable for connection refused, DeadlineExceeded for timeouts,
// NotFound and others for server errors).
//
// Parameters: fullMethod - gRPC method name for the message; err - non-nil error returned by ClientConn.Invoke.
//
// Returns: domain.ClientError.
//
// Called from dynamicClient.Invoke.
func transportFailure(fullMethod string, err error) error {
	return domain.NewTransportFailureError(fullMethod+" failed with "+status.Code(err).String(), err)
}

// asClientError returns err unchanged when it already is a ClientError and wraps it as a transport failure otherwise,
// so every error leaving a call site belongs to the client error taxonomy.
//
// Called from UserCallSite.run.
func asClientError(op string, err error) error {
	var ce domain.ClientError
	if errors.As(err, &ce) {
		return err
	}
	return transportFailure(op, err)
}
