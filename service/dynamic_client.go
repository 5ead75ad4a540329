package service

import (
	"context"
	"slices"

	"myuserapp/adapters/userpb"
	"myuserapp/domain"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"
)

// dynamicClient implements interfaces.Client over a gRPC connection using the service description at run time:
// requests may be any proto.Message of the method's input type, responses are dynamicpb messages of the output type.
// Immutable after ClientFactory.BuildClient; shared read-only by concurrent calls.
type dynamicClient struct {
	desc      protoreflect.ServiceDescriptor
	transport domain.Transport
	conn      grpc.ClientConnInterface
	methods   map[string]protoreflect.MethodDescriptor
	names     []string
}

func (c *dynamicClient) Descriptor() protoreflect.ServiceDescriptor { return c.desc }

func (c *dynamicClient) Transport() domain.Transport { return c.transport }

func (c *dynamicClient) Methods() []string { return slices.Clone(c.names) }

// NewRequest returns an empty dynamic message of the method's input type.
//
// Returns: (message, nil); (nil, ClientError CodeUnknownMethod) when the description does not declare method as a unary method.
func (c *dynamicClient) NewRequest(method string) (protoreflect.Message, error) {
	md, err := c.method(method)
	if err != nil {
		return nil, err
	}
	return dynamicpb.NewMessage(md.Input()), nil
}

// Invoke performs one unary call over the bound connection with the transport's encoding.
//
// Parameters: ctx - call context; method - short method name; req - request whose message type equals the method's input type.
//
// Returns: (response, nil) on success; (nil, ClientError) CodeUnknownMethod, CodeInvalidArgument (nil or mistyped request) or CodeTransportFailure (RPC error; gRPC status kept as Inner).
//
// Called from UserServiceClient and any typed wrapper.
func (c *dynamicClient) Invoke(ctx context.Context, method string, req proto.Message) (protoreflect.Message, error) {
	md, err := c.method(method)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, domain.NewInvalidArgumentError(method+": request is nil", nil)
	}
	if got, want := req.ProtoReflect().Descriptor().FullName(), md.Input().FullName(); got != want {
		return nil, domain.NewInvalidArgumentError(method+": request is "+string(got)+", want "+string(want), nil)
	}
	resp := dynamicpb.NewMessage(md.Output())
	fullMethod := userpb.FullMethod(md)
	if err := c.conn.Invoke(ctx, fullMethod, req, resp); err != nil {
		return nil, transportFailure(fullMethod, err)
	}
	return resp, nil
}

func (c *dynamicClient) method(name string) (protoreflect.MethodDescriptor, error) {
	md, ok := c.methods[name]
	if !ok {
		return nil, domain.NewUnknownMethodError(string(c.desc.FullName())+" has no unary method "+name, nil)
	}
	return md, nil
}
