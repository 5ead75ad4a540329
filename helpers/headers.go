package helpers

import (
	"context"
	"strconv"
	"strings"

	"google.golang.org/grpc/metadata"
)

// HeaderAuthorization is the gRPC metadata key of the bearer token ("Bearer <token>").
const HeaderAuthorization = "authorization"

// HeaderRequestID is the gRPC metadata key carrying the call-site request id of a call.
const HeaderRequestID = "x-request-id"

const bearerPrefix = "Bearer "

type requestIDKey struct{}

// WithRequestID returns a copy of ctx carrying the call-site request id; RequestIDProcessor puts it in the x-request-id header.
//
// Called from service.UserCallSite before each call.
func WithRequestID(ctx context.Context, id uint64) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext returns the request id stored by WithRequestID.
//
// Returns: (id, true) when present; (0, false) otherwise.
func RequestIDFromContext(ctx context.Context) (uint64, bool) {
	id, ok := ctx.Value(requestIDKey{}).(uint64)
	return id, ok
}

// FormatRequestID renders a request id as the x-request-id header value.
func FormatRequestID(id uint64) string {
	return strconv.FormatUint(id, 10)
}

// GetHeaderValue returns the first value of header key in metadata. Key is lowercased (gRPC canonicalizes keys).
//
// Parameters: md - metadata (nil allowed - returns ("", false)); key - header name.
//
// Returns: (value, true) when there is a non-empty value; ("", false) when md is nil, key is missing or value is empty.
//
// Called from GetBearerToken and handlers.ErrorToGRPCInterceptor for request logging.
func GetHeaderValue(md metadata.MD, key string) (string, bool) {
	if md == nil {
		return "", false
	}
	vals := md.Get(strings.ToLower(key))
	if len(vals) == 0 || vals[0] == "" {
		return "", false
	}
	return vals[0], true
}

// GetBearerToken returns the token of an "authorization: Bearer <token>" header; surrounding spaces are trimmed.
//
// Returns: (token, true) or ("", false) when the header is missing, lacks the Bearer prefix or the token is blank.
//
// Called from handlers.AuthInterceptor.
func GetBearerToken(md metadata.MD) (string, bool) {
	v, ok := GetHeaderValue(md, HeaderAuthorization)
	if !ok || !strings.HasPrefix(v, bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(v, bearerPrefix))
	if token == "" {
		return "", false
	}
	return token, true
}
