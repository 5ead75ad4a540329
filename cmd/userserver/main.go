// Package main is the development user service: api.v1.UserService over gRPC (binary and json content-subtypes)
// with the gRPC health service and reflection, plus an HTTP server with /healthz and a read-only user view.
// Users are kept in memory, or in Redis when REDIS_ADDR is set.
package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"myuserapp/adapters/memory"
	"myuserapp/adapters/redis"
	"myuserapp/adapters/userpb"
	"myuserapp/handlers"
	"myuserapp/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/protobuf/reflect/protoregistry"
)

// newGRPCServer builds the gRPC server: otelgrpc stats, error mapping and (when AuthSecret is set) token checks,
// api.v1.UserService over store, the health service and reflection.
func newGRPCServer(config *Config, store interfaces.UserStore, logger log.Logger) *grpc.Server {
	interceptors := []grpc.UnaryServerInterceptor{handlers.ErrorToGRPCInterceptor(logger)}
	if len(config.AuthSecret) > 0 {
		now := func() time.Time { return time.Now().UTC() }
		interceptors = append(interceptors, handlers.AuthInterceptor(config.AuthSecret, now, logger))
	}
	grpcServer := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(interceptors...),
	)
	handlers.NewUserServer(store, uuid.NewString, logger).Register(grpcServer)

	healthServer := health.NewServer()
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(userpb.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)

	// reflection resolves services through the global registry
	if _, err := protoregistry.GlobalFiles.FindFileByPath(userpb.FilePath); err != nil {
		if err := protoregistry.GlobalFiles.RegisterFile(userpb.File); err != nil {
			level.Warn(logger).Log("msg", "Failed to register descriptor for reflection", "err", err)
		}
	}
	reflection.Register(grpcServer)
	return grpcServer
}

func main() {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.WithPrefix(logger, "ts", log.DefaultTimestampUTC)
	logger = log.WithPrefix(logger, "caller", log.DefaultCaller)

	level.Info(logger).Log("msg", "Starting user service")

	config, err := LoadConfig()
	if err != nil {
		level.Error(logger).Log("msg", "Failed to load configuration", "err", err)
		os.Exit(1)
	}

	level.Info(logger).Log(
		"msg", "Configuration loaded",
		"service_port_grpc", config.GRPCPort,
		"service_port_http", config.HTTPPort,
		"redis_addr", config.RedisAddr,
		"auth", len(config.AuthSecret) > 0,
	)

	var userStore interfaces.UserStore
	if config.RedisAddr == "" {
		userStore = memory.NewUserStore()
	} else {
		redisClient, err := redis.NewRedisUniversalClient(config.RedisAddr)
		if err != nil {
			level.Error(logger).Log("msg", "Failed to create Redis client", "err", err)
			os.Exit(1)
		}
		defer redisClient.Close()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err = redisClient.Ping(ctx).Err()
		cancel()
		if err != nil {
			level.Error(logger).Log("msg", "Redis is not reachable", "err", err)
			os.Exit(1)
		}
		userStore = redis.NewUserStore(redisClient, config.RedisKeyPrefix)
	}

	grpcServer := newGRPCServer(config, userStore, logger)

	var e *echo.Echo
	{
		e = echo.New()
		e.HideBanner = true
		e.HidePort = true
		handlers.RegisterHandlers(e, handlers.NewHTTPServer(userStore, logger))
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", config.GRPCPort))
	if err != nil {
		level.Error(logger).Log("msg", "Failed to listen", "err", err)
		os.Exit(1)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		level.Info(logger).Log("msg", "Starting gRPC server", "addr", lis.Addr())
		if err := grpcServer.Serve(lis); err != nil {
			level.Error(logger).Log("msg", "gRPC server error", "err", err)
		}
	}()
	go func() {
		addr := fmt.Sprintf(":%d", config.HTTPPort)
		level.Info(logger).Log("msg", "Starting HTTP server", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			level.Error(logger).Log("msg", "HTTP server error", "err", err)
		}
	}()

	<-quit
	level.Info(logger).Log("msg", "Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		level.Error(logger).Log("msg", "HTTP server shutdown", "err", err)
	}
	stopped := make(chan struct{})
	go func() {
		grpcServer.GracefulStop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-shutdownCtx.Done():
		grpcServer.Stop()
	}
	level.Info(logger).Log("msg", "Server stopped")
}
