package service

import (
	"context"
	"testing"
	"time"

	"myuserapp/adapters/userpb"
	"myuserapp/domain"
	"myuserapp/helpers"
	"myuserapp/interfaces/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func TestTransportCredentials(t *testing.T) {
	assert.Equal(t, "insecure", transportCredentials(domain.Transport{Target: "localhost:8080"}).Info().SecurityProtocol)
	assert.Equal(t, "tls", transportCredentials(domain.Transport{Target: "api.example.com:443", Secure: true}).Info().SecurityProtocol)
}

func TestHeaderInterceptor(t *testing.T) {
	invokerWith := func(got *metadata.MD) grpc.UnaryInvoker {
		return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
			*got, _ = metadata.FromOutgoingContext(ctx)
			return nil
		}
	}

	t.Run("processed_headers_are_sent", func(t *testing.T) {
		headers := &mock.HeaderProcessorMock{
			ProcessFunc: func(ctx context.Context, md metadata.MD, method string) (metadata.MD, error) {
				out := md.Copy()
				out.Set("x-test", method)
				return out, nil
			},
		}
		var got metadata.MD
		ctx := metadata.AppendToOutgoingContext(context.Background(), "existing", "1")
		err := HeaderInterceptor(headers)(ctx, "/svc/M", nil, nil, nil, invokerWith(&got))
		require.NoError(t, err)
		assert.Equal(t, []string{"1"}, got.Get("existing"))
		assert.Equal(t, []string{"/svc/M"}, got.Get("x-test"))
	})

	t.Run("processor_error_aborts_call", func(t *testing.T) {
		headers := &mock.HeaderProcessorMock{
			ProcessFunc: func(ctx context.Context, md metadata.MD, method string) (metadata.MD, error) {
				return nil, status.Error(codes.Unauthenticated, "no token")
			},
		}
		called := false
		invoker := func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
			called = true
			return nil
		}
		err := HeaderInterceptor(headers)(context.Background(), "/svc/M", nil, nil, nil, invoker)
		assert.Equal(t, codes.Unauthenticated, status.Code(err))
		assert.False(t, called)
	})
}

func TestNewConnFactory_SendsHeaderChain(t *testing.T) {
	srv := startTestUserService(t)
	tr, err := BuildTransport("http://" + srv.addr)
	require.NoError(t, err)

	chain := helpers.NewHeaderProcessorChain(helpers.NewAuthTokenProcessor("secret"), helpers.RequestIDProcessor{})
	f := newTestFactory(t, srv.addr, chain)
	c, err := f.BuildClient(userpb.UserService, tr)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(helpers.WithRequestID(context.Background(), 42), 10*time.Second)
	defer cancel()
	_, err = c.Invoke(ctx, userpb.MethodCreateUser, userpb.NewCreateUserRequest("tony"))
	require.NoError(t, err)

	md := srv.lastMetadata()
	token, ok := helpers.GetBearerToken(md)
	assert.True(t, ok)
	assert.Equal(t, "secret", token)
	id, ok := helpers.GetHeaderValue(md, helpers.HeaderRequestID)
	assert.True(t, ok)
	assert.Equal(t, "42", id)
}
