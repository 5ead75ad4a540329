package interfaces

import (
	"context"

	"myuserapp/domain"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
)

// Client is a callable handle bound to exactly one (service description, transport) pair. It exposes
// one callable method per unary operation declared by the description; construction performs no
// network I/O and connections are established per call.
//
// Implemented by service.dynamicClient (built by service.ClientFactory.BuildClient). Called from
// service.UserServiceClient and any other typed wrapper over a service description.
//
//go:generate moq -stub -out mock/client.go -pkg mock . Client
type Client interface {
	// Descriptor returns the service description the client is bound to.
	Descriptor() protoreflect.ServiceDescriptor

	// Transport returns the transport the client is bound to.
	Transport() domain.Transport

	// Methods returns the names of the callable operations in declaration order.
	Methods() []string

	// NewRequest returns an empty request message of the method's input type.
	// Returns: (message, nil) on success; (nil, ClientError CodeUnknownMethod) when the method is not declared.
	NewRequest(method string) (protoreflect.Message, error)

	// Invoke performs one unary call of method with req and returns the response message of the method's output type.
	// Parameters: ctx - call context (cancel/deadline abort the call); method - short method name (e.g. "CreateUser"); req - request of the method's input type.
	// Returns: (response, nil) on success; (nil, ClientError) with CodeUnknownMethod, CodeInvalidArgument (request type mismatch) or CodeTransportFailure (any RPC error, gRPC status kept as Inner).
	Invoke(ctx context.Context, method string, req proto.Message) (protoreflect.Message, error)
}
