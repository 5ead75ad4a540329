package service

import (
	"context"
	"testing"

	"myuserapp/adapters/userpb"
	"myuserapp/domain"
	"myuserapp/interfaces/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/known/emptypb"
)

func userClientMock(invoke func(ctx context.Context, method string, req proto.Message) (protoreflect.Message, error)) *mock.ClientMock {
	return &mock.ClientMock{
		DescriptorFunc: func() protoreflect.ServiceDescriptor { return userpb.UserService },
		InvokeFunc:     invoke,
	}
}

func TestNewUserServiceClient(t *testing.T) {
	t.Run("client_nil", func(t *testing.T) {
		assert.PanicsWithValue(t, "service.user_client.go: client is required", func() {
			_, _ = NewUserServiceClient(nil)
		})
	})

	t.Run("other_service", func(t *testing.T) {
		c := &mock.ClientMock{
			DescriptorFunc: func() protoreflect.ServiceDescriptor { return serviceWithUnaryMethod(t) },
		}
		_, err := NewUserServiceClient(c)
		require.Error(t, err)
		assert.True(t, domain.IsInvalidServiceDescription(err))
	})
}

func TestUserServiceClient_CreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("sends_only_name", func(t *testing.T) {
		c := userClientMock(func(ctx context.Context, method string, req proto.Message) (protoreflect.Message, error) {
			assert.Equal(t, userpb.MethodCreateUser, method)
			assert.Equal(t, "tony", userpb.RequestName(req.ProtoReflect()))
			return userpb.NewCreateUserResponse(&domain.User{ID: "id-1", Name: "tony"}), nil
		})
		users, err := NewUserServiceClient(c)
		require.NoError(t, err)

		u, err := users.CreateUser(ctx, "tony")
		require.NoError(t, err)
		assert.Equal(t, &domain.User{ID: "id-1", Name: "tony"}, u)
		assert.Len(t, c.InvokeCalls(), 1)
	})

	t.Run("response_without_user", func(t *testing.T) {
		c := userClientMock(func(ctx context.Context, method string, req proto.Message) (protoreflect.Message, error) {
			return userpb.NewCreateUserResponse(nil), nil
		})
		users, err := NewUserServiceClient(c)
		require.NoError(t, err)

		u, err := users.CreateUser(ctx, "tony")
		require.NoError(t, err)
		assert.Nil(t, u)
	})

	t.Run("invoke_error_is_returned", func(t *testing.T) {
		failure := domain.NewTransportFailureError("down", nil)
		c := userClientMock(func(ctx context.Context, method string, req proto.Message) (protoreflect.Message, error) {
			return nil, failure
		})
		users, err := NewUserServiceClient(c)
		require.NoError(t, err)

		_, err = users.CreateUser(ctx, "tony")
		assert.Equal(t, failure, err)
	})

	t.Run("unexpected_response_type", func(t *testing.T) {
		c := userClientMock(func(ctx context.Context, method string, req proto.Message) (protoreflect.Message, error) {
			return (&emptypb.Empty{}).ProtoReflect(), nil
		})
		users, err := NewUserServiceClient(c)
		require.NoError(t, err)

		_, err = users.CreateUser(ctx, "tony")
		require.Error(t, err)
		assert.True(t, domain.IsInvalidServiceDescription(err))
	})
}

func TestUserServiceClient_GetUser(t *testing.T) {
	c := userClientMock(func(ctx context.Context, method string, req proto.Message) (protoreflect.Message, error) {
		assert.Equal(t, userpb.MethodGetUser, method)
		id := userpb.RequestID(req.ProtoReflect())
		if id == "" {
			return userpb.NewGetUserResponse(nil), nil
		}
		return userpb.NewGetUserResponse(&domain.User{ID: id, Name: "tony"}), nil
	})
	users, err := NewUserServiceClient(c)
	require.NoError(t, err)

	u, err := users.GetUser(context.Background(), "id-9")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "id-9", u.ID)

	u, err = users.GetUser(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, u)
}
