package helpers

import (
	"context"
	"strconv"

	"myuserapp/interfaces"

	"google.golang.org/grpc/metadata"
)

// HeaderProcessorChain is a slice of HeaderProcessors run in sequence; each processor receives the
// output metadata of the previous. Composes the outgoing headers of every client call (bearer token,
// request id). Implements interfaces.HeaderProcessor.
type HeaderProcessorChain []interfaces.HeaderProcessor

// NewHeaderProcessorChain creates a chain of header processors from the given list. Panics on nil slice or nil element (fail-fast at startup).
//
// Parameters: processors - ordered list of HeaderProcessor implementations (first gets the call's outgoing headers, next gets previous result).
//
// Returns: HeaderProcessorChain implementing interfaces.HeaderProcessor.
//
// Called from cmd/userapp when building the client factory.
func NewHeaderProcessorChain(processors ...interfaces.HeaderProcessor) HeaderProcessorChain {
	for i, p := range processors {
		if p == nil {
			panic("helpers.header_chain.go: processor at index " + strconv.Itoa(i) + " is required")
		}
	}
	return HeaderProcessorChain(NilPanic(processors, "helpers.header_chain.go: processors is required"))
}

// Process runs all processors in order: output of one is input to the next. Input headers are not mutated (work is done on a copy). Returns the first processor error.
//
// Parameters: ctx - call context; headers - outgoing metadata already on ctx (nil allowed); method - full gRPC method name.
//
// Returns: (outgoing metadata, nil) when all processors succeed; (nil, error) on any processor error.
//
// Called from service.HeaderInterceptor before every unary call.
func (c HeaderProcessorChain) Process(ctx context.Context, headers metadata.MD, method string) (metadata.MD, error) {
	out := headers.Copy()
	for _, p := range c {
		next, err := p.Process(ctx, out, method)
		if err != nil {
			return nil, err
		}
		out = next
	}
	return out, nil
}

// AuthTokenProcessor attaches "authorization: Bearer <token>" to every call. An empty token leaves the
// headers unchanged. Implements interfaces.HeaderProcessor.
type AuthTokenProcessor struct {
	token string
}

// NewAuthTokenProcessor creates a processor for token (AUTH_TOKEN from config; empty disables it).
//
// Called from cmd/userapp when building the header chain.
func NewAuthTokenProcessor(token string) *AuthTokenProcessor {
	return &AuthTokenProcessor{token: token}
}

// Process returns a copy of headers with the authorization header set (replacing any previous value); headers unchanged when the token is empty.
func (p *AuthTokenProcessor) Process(_ context.Context, headers metadata.MD, _ string) (metadata.MD, error) {
	if p.token == "" {
		return headers, nil
	}
	out := headers.Copy()
	out.Set(HeaderAuthorization, bearerPrefix+p.token)
	return out, nil
}

// RequestIDProcessor copies the request id stored by WithRequestID into the x-request-id header.
// Implements interfaces.HeaderProcessor.
type RequestIDProcessor struct{}

// Process returns a copy of headers with x-request-id set when ctx carries a request id; headers unchanged otherwise.
func (RequestIDProcessor) Process(ctx context.Context, headers metadata.MD, _ string) (metadata.MD, error) {
	id, ok := RequestIDFromContext(ctx)
	if !ok {
		return headers, nil
	}
	out := headers.Copy()
	out.Set(HeaderRequestID, FormatRequestID(id))
	return out, nil
}
