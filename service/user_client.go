package service

import (
	"context"

	"myuserapp/adapters/userpb"
	"myuserapp/domain"
	"myuserapp/helpers"
	"myuserapp/interfaces"

	"google.golang.org/protobuf/proto"
)

// UserServiceClient implements interfaces.UserService over a client bound to api.v1.UserService. It converts
// between domain.User and the service's messages and reports an absent user as a nil *domain.User.
type UserServiceClient struct {
	client interfaces.Client
}

// NewUserServiceClient wraps client. Panics on nil client.
//
// Returns: (*UserServiceClient, nil); (nil, ClientError CodeInvalidServiceDescription) when client is not bound to api.v1.UserService.
//
// Called from UserServiceBinding.UserService and tests.
func NewUserServiceClient(client interfaces.Client) (*UserServiceClient, error) {
	helpers.NilPanic(client, "service.user_client.go: client is required")
	desc := client.Descriptor()
	if desc == nil || desc.FullName() != userpb.ServiceName {
		return nil, domain.NewInvalidServiceDescriptionError("client is not bound to "+userpb.ServiceName, nil)
	}
	return &UserServiceClient{client: client}, nil
}

// CreateUser invokes CreateUser with a request carrying only name.
//
// Returns: (*User, nil) when the response has a user; (nil, nil) when it has none; (nil, error) from Invoke or when the response type has no user field.
func (c *UserServiceClient) CreateUser(ctx context.Context, name string) (*domain.User, error) {
	return c.invoke(ctx, userpb.MethodCreateUser, userpb.NewCreateUserRequest(name))
}

// GetUser invokes GetUser with a request carrying id (empty allowed).
//
// Returns: (*User, nil) when the response has a user; (nil, nil) when it has none; (nil, error) from Invoke or when the response type has no user field.
func (c *UserServiceClient) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return c.invoke(ctx, userpb.MethodGetUser, userpb.NewGetUserRequest(id))
}

func (c *UserServiceClient) invoke(ctx context.Context, method string, req proto.Message) (*domain.User, error) {
	resp, err := c.client.Invoke(ctx, method, req)
	if err != nil {
		return nil, err
	}
	u, err := userpb.UserFromResponse(resp)
	if err != nil {
		return nil, domain.NewInvalidServiceDescriptionError(method+": unexpected response", err)
	}
	return u, nil
}
