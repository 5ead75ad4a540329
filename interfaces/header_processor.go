package interfaces

import (
	"context"

	"google.golang.org/grpc/metadata"
)

// HeaderProcessor processes outgoing gRPC metadata before a client call is sent and returns the
// metadata to send (or an error that aborts the call).
//
// Used to attach the bearer token and the call-site request id to every call. Must not mutate the
// input headers; return a copy with modifications.
//
// Process(ctx, headers, method): ctx is the call context (carries the request id); headers is the
// outgoing metadata already attached to ctx (may be nil); method is the full gRPC method name
// (/api.v1.UserService/CreateUser).
//
// Implemented by helpers.AuthTokenProcessor and helpers.RequestIDProcessor and composed in
// helpers.HeaderProcessorChain. Called from service.HeaderInterceptor for every unary call.
//
//go:generate moq -stub -out mock/header_processor.go -pkg mock . HeaderProcessor
type HeaderProcessor interface {
	Process(ctx context.Context, headers metadata.MD, method string) (metadata.MD, error)
}
