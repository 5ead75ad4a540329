package handlers

import (
	"context"
	"strings"
	"time"

	"myuserapp/adapters/userpb"
	"myuserapp/auth"
	"myuserapp/helpers"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// AuthInterceptor returns a unary server interceptor that requires an "authorization: Bearer <token>" header
// signed with secret and not expired at now() on api.v1.UserService methods. Calls without a valid token fail with
// Unauthenticated. Other services (health) pass through.
//
// Called from cmd/userserver when AUTH_SECRET is set.
func AuthInterceptor(secret []byte, now func() time.Time, logger log.Logger) grpc.UnaryServerInterceptor {
	secret = helpers.NilPanic(secret, "handlers.auth.go: secret is required")
	now = helpers.NilPanic(now, "handlers.auth.go: now is required")
	logger = helpers.NilPanic(logger, "handlers.auth.go: logger is required")
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if !strings.HasPrefix(info.FullMethod, "/"+userpb.ServiceName+"/") {
			return handler(ctx, req)
		}
		md, _ := metadata.FromIncomingContext(ctx)
		token, ok := helpers.GetBearerToken(md)
		if !ok {
			return nil, status.Error(codes.Unauthenticated, "bearer token is required")
		}
		claims, err := auth.ParseAndVerify(token, secret, now())
		if err != nil {
			level.Info(logger).Log("msg", "rejected token", "method", info.FullMethod, "err", err)
			return nil, status.Error(codes.Unauthenticated, err.Error())
		}
		level.Debug(logger).Log("msg", "authenticated", "method", info.FullMethod, "sub", claims.Subject)
		return handler(ctx, req)
	}
}
