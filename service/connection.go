package service

import (
	"context"
	"crypto/tls"

	"myuserapp/domain"
	"myuserapp/interfaces"

	// Registers the "json" codec used by text-encoded transports.
	_ "myuserapp/adapters/codec"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
)

// ConnFactory creates the gRPC connection that carries the calls of a transport. Implementations must not
// perform network I/O (grpc.NewClient connects lazily on the first call).
type ConnFactory func(t domain.Transport) (*grpc.ClientConn, error)

// NewConnFactory returns the ConnFactory used by the application: insecure credentials for http transports, TLS
// for https, the OpenTelemetry client stats handler, the transport's encoding as the default content-subtype
// ("proto" or "json") and, when headers is non-nil, HeaderInterceptor(headers). extra options are appended last
// (tests use them for grpc.WithContextDialer).
//
// Parameters: headers - outgoing header chain (nil allowed); extra - additional dial options.
//
// Returns: ConnFactory.
//
// Called from cmd/userapp when building the ClientFactory, and from tests.
func NewConnFactory(headers interfaces.HeaderProcessor, extra ...grpc.DialOption) ConnFactory {
	return func(t domain.Transport) (*grpc.ClientConn, error) {
		opts := []grpc.DialOption{
			grpc.WithTransportCredentials(transportCredentials(t)),
			grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
			grpc.WithDefaultCallOptions(grpc.CallContentSubtype(string(t.Encoding()))),
		}
		if headers != nil {
			opts = append(opts, grpc.WithChainUnaryInterceptor(HeaderInterceptor(headers)))
		}
		opts = append(opts, extra...)
		return grpc.NewClient(t.Target, opts...)
	}
}

func transportCredentials(t domain.Transport) credentials.TransportCredentials {
	if t.Secure {
		return credentials.NewTLS(&tls.Config{MinVersion: tls.VersionTLS12})
	}
	return insecure.NewCredentials()
}

// HeaderInterceptor returns a unary client interceptor that passes the call's outgoing metadata through headers
// and sends the result. A processor error aborts the call before anything is sent.
//
// Parameter headers - header chain (e.g. helpers.HeaderProcessorChain of AuthTokenProcessor and RequestIDProcessor).
//
// Returns: grpc.UnaryClientInterceptor.
//
// Called from NewConnFactory.
func HeaderInterceptor(headers interfaces.HeaderProcessor) grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		md, _ := metadata.FromOutgoingContext(ctx)
		out, err := headers.Process(ctx, md, method)
		if err != nil {
			return err
		}
		return invoker(metadata.NewOutgoingContext(ctx, out), method, req, reply, cc, opts...)
	}
}
