package service

import (
	"context"
	"net"
	"sync"
	"testing"

	"myuserapp/adapters/memory"
	"myuserapp/handlers"
	"myuserapp/interfaces"

	"github.com/go-kit/log"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// testUserService is a loopback api.v1.UserService that records the metadata of every call.
type testUserService struct {
	addr  string
	store *memory.UserStore

	mu       sync.Mutex
	incoming []metadata.MD
}

func (s *testUserService) lastMetadata() metadata.MD {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.incoming) == 0 {
		return nil
	}
	return s.incoming[len(s.incoming)-1]
}

func startTestUserService(t *testing.T) *testUserService {
	t.Helper()
	return startTestUserServiceWithStore(t, memory.NewUserStore())
}

func startTestUserServiceWithStore(t *testing.T, store *memory.UserStore) *testUserService {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	ts := &testUserService{addr: lis.Addr().String(), store: store}
	record := func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		md, _ := metadata.FromIncomingContext(ctx)
		ts.mu.Lock()
		ts.incoming = append(ts.incoming, md)
		ts.mu.Unlock()
		return handler(ctx, req)
	}
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(record, handlers.ErrorToGRPCInterceptor(log.NewNopLogger())))
	handlers.NewUserServer(store, uuid.NewString, log.NewNopLogger()).Register(srv)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(func() { srv.Stop() })
	return ts
}

// redirectTo returns a dial option that connects every transport to addr, so transports built from fixed
// addresses such as the local dev address reach the loopback server.
func redirectTo(addr string) grpc.DialOption {
	return grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return (&net.Dialer{}).DialContext(ctx, "tcp", addr)
	})
}

// newTestFactory builds a ClientFactory whose connections reach addr.
func newTestFactory(t *testing.T, addr string, headers interfaces.HeaderProcessor) *ClientFactory {
	t.Helper()
	f := NewClientFactory(NewConnFactory(headers, redirectTo(addr)), log.NewNopLogger())
	t.Cleanup(func() { _ = f.Close() })
	return f
}
