package service

import (
	"errors"
	"sync"

	"myuserapp/domain"
	"myuserapp/helpers"
	"myuserapp/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/reflect/protoreflect"
)

// ErrClientFactoryClosed is returned by BuildClient after Close.
var ErrClientFactoryClosed = errors.New("client factory is closed")

// clientKey identifies a memoized client: descriptor identity (descriptors are pointers behind the interface) and transport value.
type clientKey struct {
	desc      protoreflect.ServiceDescriptor
	transport domain.Transport
}

// ClientFactory binds service descriptions to transports. It keeps one lazy gRPC connection per distinct transport
// and one client per (description, transport); identical inputs return the same client instance. Safe for
// concurrent use. Fields: dial, logger; under mu: conns (transport → conn), clients (key → client), closed.
type ClientFactory struct {
	dial   ConnFactory
	logger log.Logger

	mu      sync.Mutex
	conns   map[domain.Transport]*grpc.ClientConn
	clients map[clientKey]*dynamicClient
	closed  bool
}

// NewClientFactory creates a factory that dials transports with dial. Panics on nil dial or logger.
//
// Parameters: dial - connection factory (NewConnFactory in production, a bufconn/loopback dialer in tests); logger - logger.
//
// Returns: *ClientFactory.
//
// Called from cmd/userapp at startup.
func NewClientFactory(dial ConnFactory, logger log.Logger) *ClientFactory {
	return &ClientFactory{
		dial:    helpers.NilPanic(dial, "service.client_factory.go: dial is required"),
		logger:  log.With(helpers.NilPanic(logger, "service.client_factory.go: logger is required"), "component", "client_factory"),
		conns:   make(map[domain.Transport]*grpc.ClientConn),
		clients: make(map[clientKey]*dynamicClient),
	}
}

// BuildClient returns the client bound to (description, transport), creating it on first use. No network I/O
// happens here: the connection is created with grpc.NewClient and connects on the first call.
//
// Parameters: description - service description (must declare at least one unary method; streaming methods are not exposed); transport - built by BuildTransport.
//
// Returns: (interfaces.Client, nil) on success (same instance for identical inputs); (nil, ClientError CodeInvalidServiceDescription) on nil description or no unary method; (nil, ClientError CodeInvalidAddress) on a zero transport; (nil, ErrClientFactoryClosed) after Close; (nil, ClientError CodeTransportFailure) when the connection cannot be created.
//
// Called from ServiceBinding.Client.
func (f *ClientFactory) BuildClient(description protoreflect.ServiceDescriptor, transport domain.Transport) (interfaces.Client, error) {
	if description == nil {
		return nil, domain.NewInvalidServiceDescriptionError("service description is nil", nil)
	}
	if transport.IsZero() {
		return nil, domain.NewInvalidAddressError("transport is not built", nil)
	}
	methods, names := unaryMethods(description)
	if len(names) == 0 {
		return nil, domain.NewInvalidServiceDescriptionError("service "+string(description.FullName())+" declares no unary method", nil)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return nil, ErrClientFactoryClosed
	}
	key := clientKey{desc: description, transport: transport}
	if c := f.clients[key]; c != nil {
		return c, nil
	}
	conn, err := f.getOrCreateConnLocked(transport)
	if err != nil {
		return nil, domain.NewTransportFailureError("create connection to "+transport.Target, err)
	}
	c := &dynamicClient{
		desc:      description,
		transport: transport,
		conn:      conn,
		methods:   methods,
		names:     names,
	}
	f.clients[key] = c
	level.Debug(f.logger).Log(
		"msg", "client built",
		"service", description.FullName(),
		"target", transport.Target,
		"encoding", transport.Encoding(),
	)
	return c, nil
}

// getOrCreateConnLocked returns the cached connection of the transport or creates it via dial. Caller must hold f.mu.
func (f *ClientFactory) getOrCreateConnLocked(t domain.Transport) (*grpc.ClientConn, error) {
	if conn := f.conns[t]; conn != nil {
		return conn, nil
	}
	conn, err := f.dial(t)
	if err != nil {
		return nil, err
	}
	f.conns[t] = conn
	return conn, nil
}

// Close marks the factory closed, closes all cached connections and forgets all clients. Idempotent.
//
// Returns: nil (connection close errors are logged, not returned).
//
// Called from cmd/userapp on shutdown.
func (f *ClientFactory) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return nil
	}
	f.closed = true
	for t, conn := range f.conns {
		if err := conn.Close(); err != nil {
			level.Warn(f.logger).Log("msg", "close connection", "target", t.Target, "err", err)
		}
	}
	f.conns = map[domain.Transport]*grpc.ClientConn{}
	f.clients = map[clientKey]*dynamicClient{}
	return nil
}

// unaryMethods indexes the unary methods of a service description by short name, in declaration order.
func unaryMethods(desc protoreflect.ServiceDescriptor) (map[string]protoreflect.MethodDescriptor, []string) {
	list := desc.Methods()
	methods := make(map[string]protoreflect.MethodDescriptor, list.Len())
	names := make([]string, 0, list.Len())
	for i := 0; i < list.Len(); i++ {
		md := list.Get(i)
		if md.IsStreamingClient() || md.IsStreamingServer() {
			continue
		}
		methods[string(md.Name())] = md
		names = append(names, string(md.Name()))
	}
	return methods, names
}
