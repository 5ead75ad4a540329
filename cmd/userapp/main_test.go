package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net"
	"testing"
	"time"

	"myuserapp/adapters/memory"
	"myuserapp/auth"
	"myuserapp/domain"
	"myuserapp/handlers"

	"github.com/go-kit/log"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    command
		wantErr bool
	}{
		{name: "default_creates_tony", args: nil, want: command{op: "create", arg: "tony"}},
		{name: "create", args: []string{"create", "pepper"}, want: command{op: "create", arg: "pepper"}},
		{name: "get_first", args: []string{"get"}, want: command{op: "get"}},
		{name: "get_by_id", args: []string{"get", "id-1"}, want: command{op: "get", arg: "id-1"}},
		{name: "create_without_name", args: []string{"create"}, wantErr: true},
		{name: "get_extra_args", args: []string{"get", "a", "b"}, wantErr: true},
		{name: "unknown", args: []string{"delete"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseCommand(tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBearerToken(t *testing.T) {
	now := time.Date(2026, 2, 11, 12, 0, 0, 0, time.UTC)

	t.Run("none", func(t *testing.T) {
		token, err := bearerToken(&Config{}, now)
		require.NoError(t, err)
		assert.Empty(t, token)
	})

	t.Run("static_token_wins", func(t *testing.T) {
		token, err := bearerToken(&Config{AuthToken: "static", AuthSecret: []byte("s")}, now)
		require.NoError(t, err)
		assert.Equal(t, "static", token)
	})

	t.Run("signed_from_secret", func(t *testing.T) {
		cfg := &Config{AuthSecret: []byte("s"), AuthSubject: "userapp"}
		token, err := bearerToken(cfg, now)
		require.NoError(t, err)
		claims, err := auth.ParseAndVerify(token, cfg.AuthSecret, now.Add(time.Minute))
		require.NoError(t, err)
		assert.Equal(t, "userapp", claims.Subject)
	})
}

func TestLevelOption(t *testing.T) {
	for _, name := range []string{"debug", "info", "warn", "error", "INFO"} {
		_, err := levelOption(name)
		assert.NoError(t, err, name)
	}
	_, err := levelOption("trace")
	assert.Error(t, err)
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "success", err: nil, want: exitOK},
		{name: "invalid_address", err: domain.NewInvalidAddressError("bad", nil), want: exitUsage},
		{name: "invalid_argument", err: domain.NewInvalidArgumentError("name is required", nil), want: exitUsage},
		{name: "transport_failure", err: domain.NewTransportFailureError("unavailable", nil), want: exitCallFailed},
		{name: "empty_response", err: domain.NewEmptyResponseError("no user", nil), want: exitCallFailed},
		{name: "plain_error", err: errors.New("boom"), want: exitCallFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}

// startUserService serves api.v1.UserService on a loopback port and returns its base address.
func startUserService(t *testing.T) string {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(handlers.ErrorToGRPCInterceptor(log.NewNopLogger())))
	handlers.NewUserServer(memory.NewUserStore(), uuid.NewString, log.NewNopLogger()).Register(srv)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)
	return "http://" + lis.Addr().String()
}

func TestRun(t *testing.T) {
	addr := startUserService(t)

	tests := []struct {
		name     string
		env      map[string]string
		args     []string
		want     int
		rendered bool
	}{
		{name: "create", env: map[string]string{envServiceAddress: addr}, args: []string{"create", "pepper"}, want: exitOK, rendered: true},
		{name: "get_missing_user", env: map[string]string{envServiceAddress: addr}, args: []string{"get", uuid.NewString()}, want: exitCallFailed},
		{name: "blank_name", env: map[string]string{envServiceAddress: addr}, args: []string{"create", "  "}, want: exitUsage},
		{name: "bad_timeout", env: map[string]string{envCallTimeoutMs: "soon"}, want: exitUsage},
		{name: "bad_log_level", env: map[string]string{envLogLevel: "trace"}, want: exitUsage},
		{name: "bad_address", env: map[string]string{envServiceAddress: "ftp://example.com"}, want: exitUsage},
		{name: "bad_args", env: map[string]string{envServiceAddress: addr}, args: []string{"delete"}, want: exitUsage},
		{name: "unreachable", env: map[string]string{envServiceAddress: "http://127.0.0.1:1", envCallTimeoutMs: "2000"}, want: exitCallFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			var out bytes.Buffer
			assert.Equal(t, tt.want, run(ctx, tt.args, &out, log.NewNopLogger()))
			if !tt.rendered {
				assert.Empty(t, out.String())
				return
			}
			var u domain.User
			require.NoError(t, json.Unmarshal(out.Bytes(), &u))
			assert.Equal(t, "pepper", u.Name)
			assert.NotEmpty(t, u.ID)
		})
	}
}
