package handlers

import (
	"context"
	"errors"

	"myuserapp/domain"
	"myuserapp/helpers"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// clientErrorCodeToGRPCCode maps ClientError codes to gRPC status codes.
func clientErrorCodeToGRPCCode(code string) codes.Code {
	switch code {
	case domain.CodeInvalidArgument:
		return codes.InvalidArgument
	case domain.CodeUnknownMethod:
		return codes.Unimplemented
	default:
		return codes.Internal
	}
}

// ErrorToGRPC converts a handler error to a gRPC status error. ClientError is mapped by code, domain.ErrUserNotFound
// becomes NotFound, context errors keep their Canceled/DeadlineExceeded code, status errors pass through and
// anything else becomes Internal with "internal error".
func ErrorToGRPC(err error) error {
	if err == nil {
		return nil
	}
	var ce domain.ClientError
	if errors.As(err, &ce) {
		return status.Error(clientErrorCodeToGRPCCode(ce.Code), ce.Message)
	}
	if errors.Is(err, domain.ErrUserNotFound) {
		return status.Error(codes.NotFound, err.Error())
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return status.FromContextError(err).Err()
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	return status.Error(codes.Internal, "internal error")
}

// ErrorToGRPCInterceptor returns a unary server interceptor that converts handler errors to gRPC status errors and
// logs them: client-caused errors at info, the rest at error.
func ErrorToGRPCInterceptor(logger log.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err != nil {
			md, _ := metadata.FromIncomingContext(ctx)
			requestID, _ := helpers.GetHeaderValue(md, helpers.HeaderRequestID)
			logger := log.With(logger, "request_id", requestID)
			var ce domain.ClientError
			switch {
			case errors.As(err, &ce):
				level.Info(logger).Log(
					"msg", "gRPC handler error",
					"method", info.FullMethod,
					"error_code", ce.Code,
					"error_message", ce.Message,
				)
			case errors.Is(err, domain.ErrUserNotFound):
				level.Info(logger).Log("msg", "gRPC handler error", "method", info.FullMethod, "err", err)
			default:
				level.Error(logger).Log("msg", "gRPC handler error", "method", info.FullMethod, "err", err)
			}
			return nil, ErrorToGRPC(err)
		}
		return resp, nil
	}
}
