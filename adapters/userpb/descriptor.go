// Package userpb holds the service description of the user service (api.v1.UserService) and the
// conversions between its protobuf messages and domain.User. The file descriptor is assembled from a
// descriptorpb.FileDescriptorProto at init, so requests and responses are dynamicpb messages and no
// generated code is needed.
package userpb

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"
)

// Names of the user service and its methods.
const (
	FilePath         = "api/v1/user_service.proto"
	Package          = "api.v1"
	ServiceName      = "api.v1.UserService"
	MethodCreateUser = "CreateUser"
	MethodGetUser    = "GetUser"
)

// Field names shared by the user service messages.
const (
	fieldID   = "id"
	fieldName = "name"
	fieldUser = "user"
)

var (
	// File is the descriptor of api/v1/user_service.proto.
	File protoreflect.FileDescriptor
	// UserService is the service description of api.v1.UserService.
	UserService protoreflect.ServiceDescriptor
)

func init() {
	fd, err := protodesc.NewFile(fileDescriptorProto(), new(protoregistry.Files))
	if err != nil {
		panic(fmt.Sprintf("adapters.userpb: build %s: %v", FilePath, err))
	}
	File = fd
	UserService = fd.Services().ByName("UserService")
}

// fileDescriptorProto returns the proto3 definition of the user service:
//
//	message User { string id = 1; string name = 2; }
//	message CreateUserRequest { string name = 1; }
//	message CreateUserResponse { User user = 1; }
//	message GetUserRequest { string id = 1; }
//	message GetUserResponse { User user = 1; }
//	service UserService {
//	  rpc CreateUser(CreateUserRequest) returns (CreateUserResponse);
//	  rpc GetUser(GetUserRequest) returns (GetUserResponse);
//	}
func fileDescriptorProto() *descriptorpb.FileDescriptorProto {
	return &descriptorpb.FileDescriptorProto{
		Name:    proto.String(FilePath),
		Package: proto.String(Package),
		Syntax:  proto.String("proto3"),
		MessageType: []*descriptorpb.DescriptorProto{
			message("User", stringField(fieldID, 1), stringField(fieldName, 2)),
			message("CreateUserRequest", stringField(fieldName, 1)),
			message("CreateUserResponse", messageField(fieldUser, 1, ".api.v1.User")),
			message("GetUserRequest", stringField(fieldID, 1)),
			message("GetUserResponse", messageField(fieldUser, 1, ".api.v1.User")),
		},
		Service: []*descriptorpb.ServiceDescriptorProto{{
			Name: proto.String("UserService"),
			Method: []*descriptorpb.MethodDescriptorProto{
				method(MethodCreateUser, ".api.v1.CreateUserRequest", ".api.v1.CreateUserResponse"),
				method(MethodGetUser, ".api.v1.GetUserRequest", ".api.v1.GetUserResponse"),
			},
		}},
	}
}

func message(name string, fields ...*descriptorpb.FieldDescriptorProto) *descriptorpb.DescriptorProto {
	return &descriptorpb.DescriptorProto{Name: proto.String(name), Field: fields}
}

func stringField(name string, number int32) *descriptorpb.FieldDescriptorProto {
	return &descriptorpb.FieldDescriptorProto{
		Name:     proto.String(name),
		JsonName: proto.String(name),
		Number:   proto.Int32(number),
		Label:    descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
		Type:     descriptorpb.FieldDescriptorProto_TYPE_STRING.Enum(),
	}
}

func messageField(name string, number int32, typeName string) *descriptorpb.FieldDescriptorProto {
	return &descriptorpb.FieldDescriptorProto{
		Name:     proto.String(name),
		JsonName: proto.String(name),
		Number:   proto.Int32(number),
		Label:    descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
		Type:     descriptorpb.FieldDescriptorProto_TYPE_MESSAGE.Enum(),
		TypeName: proto.String(typeName),
	}
}

func method(name, input, output string) *descriptorpb.MethodDescriptorProto {
	return &descriptorpb.MethodDescriptorProto{
		Name:       proto.String(name),
		InputType:  proto.String(input),
		OutputType: proto.String(output),
	}
}

// FullMethod returns the gRPC full method name "/<service>/<method>" of a method descriptor.
func FullMethod(md protoreflect.MethodDescriptor) string {
	return "/" + string(md.Parent().FullName()) + "/" + string(md.Name())
}
