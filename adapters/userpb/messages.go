package userpb

import (
	"fmt"

	"myuserapp/domain"

	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"
)

// Message returns the descriptor of a message of the user service file by short name (e.g. "User"); panics on unknown name.
func Message(name protoreflect.Name) protoreflect.MessageDescriptor {
	md := File.Messages().ByName(name)
	if md == nil {
		panic(fmt.Sprintf("adapters.userpb: unknown message %q", name))
	}
	return md
}

// NewCreateUserRequest returns an api.v1.CreateUserRequest carrying only name; the id is assigned by the server.
//
// Called from service.UserServiceClient.CreateUser and tests.
func NewCreateUserRequest(name string) *dynamicpb.Message {
	m := dynamicpb.NewMessage(Message("CreateUserRequest"))
	setString(m, fieldName, name)
	return m
}

// NewGetUserRequest returns an api.v1.GetUserRequest carrying id (empty allowed).
//
// Called from service.UserServiceClient.GetUser and tests.
func NewGetUserRequest(id string) *dynamicpb.Message {
	m := dynamicpb.NewMessage(Message("GetUserRequest"))
	setString(m, fieldID, id)
	return m
}

// NewCreateUserResponse returns an api.v1.CreateUserResponse; nil u leaves the user field unset.
//
// Called from handlers.UserServer.CreateUser.
func NewCreateUserResponse(u *domain.User) *dynamicpb.Message {
	return withUser(dynamicpb.NewMessage(Message("CreateUserResponse")), u)
}

// NewGetUserResponse returns an api.v1.GetUserResponse; nil u leaves the user field unset (the wire-level "no entity" case).
//
// Called from handlers.UserServer.GetUser.
func NewGetUserResponse(u *domain.User) *dynamicpb.Message {
	return withUser(dynamicpb.NewMessage(Message("GetUserResponse")), u)
}

// RequestName returns the name field of a CreateUserRequest ("" when req has no name field).
func RequestName(req protoreflect.Message) string {
	return getString(req, fieldName)
}

// RequestID returns the id field of a GetUserRequest ("" when req has no id field).
func RequestID(req protoreflect.Message) string {
	return getString(req, fieldID)
}

// UserFromResponse extracts the optional user entity of a CreateUserResponse or GetUserResponse.
//
// Parameter resp - response message (dynamic or any message with a "user" field of type api.v1.User).
//
// Returns: (*domain.User, nil) when the user field is present; (nil, nil) when it is absent on the wire; (nil, error) when resp is nil or its type has no api.v1.User "user" field.
//
// Called from service.UserServiceClient after Invoke.
func UserFromResponse(resp protoreflect.Message) (*domain.User, error) {
	if resp == nil {
		return nil, fmt.Errorf("adapters.userpb: nil response")
	}
	fd := resp.Descriptor().Fields().ByName(fieldUser)
	if fd == nil || fd.Message() == nil || fd.Message().FullName() != Package+".User" {
		return nil, fmt.Errorf("adapters.userpb: %s has no %s.User field", resp.Descriptor().FullName(), Package)
	}
	if !resp.Has(fd) {
		return nil, nil
	}
	um := resp.Get(fd).Message()
	return &domain.User{
		ID:   getString(um, fieldID),
		Name: getString(um, fieldName),
	}, nil
}

func withUser(m *dynamicpb.Message, u *domain.User) *dynamicpb.Message {
	if u == nil {
		return m
	}
	um := dynamicpb.NewMessage(Message("User"))
	setString(um, fieldID, u.ID)
	setString(um, fieldName, u.Name)
	m.Set(m.Descriptor().Fields().ByName(fieldUser), protoreflect.ValueOfMessage(um))
	return m
}

func setString(m protoreflect.Message, name protoreflect.Name, v string) {
	m.Set(m.Descriptor().Fields().ByName(name), protoreflect.ValueOfString(v))
}

func getString(m protoreflect.Message, name protoreflect.Name) string {
	fd := m.Descriptor().Fields().ByName(name)
	if fd == nil || fd.Kind() != protoreflect.StringKind {
		return ""
	}
	return m.Get(fd).String()
}
