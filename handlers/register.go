package handlers

import (
	"context"

	"myuserapp/adapters/userpb"

	// Registers the "json" codec so text-encoded clients are served.
	_ "myuserapp/adapters/codec"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"
)

// userServiceServer is the handler type of the api.v1.UserService service description.
type userServiceServer interface {
	CreateUser(ctx context.Context, req protoreflect.Message) (*dynamicpb.Message, error)
	GetUser(ctx context.Context, req protoreflect.Message) (*dynamicpb.Message, error)
}

// UserServiceDesc is the grpc.ServiceDesc of api.v1.UserService built from userpb.UserService.
var UserServiceDesc = grpc.ServiceDesc{
	ServiceName: userpb.ServiceName,
	HandlerType: (*userServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod(userpb.MethodCreateUser, userServiceServer.CreateUser),
		unaryMethod(userpb.MethodGetUser, userServiceServer.GetUser),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: userpb.FilePath,
}

// Register registers s as the api.v1.UserService implementation of srv.
//
// Called from cmd/userserver and tests.
func (s *UserServer) Register(srv grpc.ServiceRegistrar) {
	srv.RegisterService(&UserServiceDesc, s)
}

// unaryMethod builds the MethodDesc of a unary method: the request is decoded into a dynamic message of the
// method's input type and passed through the server interceptor chain to call.
func unaryMethod(name string, call func(userServiceServer, context.Context, protoreflect.Message) (*dynamicpb.Message, error)) grpc.MethodDesc {
	md := userpb.UserService.Methods().ByName(protoreflect.Name(name))
	if md == nil {
		panic("handlers.register.go: unknown method " + name)
	}
	fullMethod := userpb.FullMethod(md)
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := dynamicpb.NewMessage(md.Input())
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(userServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(userServiceServer), ctx, req.(*dynamicpb.Message))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}
