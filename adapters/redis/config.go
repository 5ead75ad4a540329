package redis

import (
	"fmt"

	"github.com/go-redis/redis/v8"
)

// NewRedisUniversalClient creates and configures instance of redis universal client.
//
// Parameters: redisAddr - redis URL (redis://[user:password@]host:port[/db]); options - applied to the parsed options before the client is created.
//
// Returns: (redis.UniversalClient, nil); (nil, error) when the URL cannot be parsed. No connection is made here.
//
// Called from cmd/userserver when REDIS_ADDR is set, and from tests.
func NewRedisUniversalClient(redisAddr string, options ...ConfigOption) (redis.UniversalClient, error) {
	redisOptions, err := redis.ParseURL(redisAddr)
	if err != nil {
		return nil, fmt.Errorf("cant parse redis url: %w", err)
	}
	for _, opt := range options {
		opt(redisOptions)
	}
	return redis.NewUniversalClient(universalOptions(redisOptions)), nil
}

// ConfigOption configures the client.
type ConfigOption func(*redis.Options)

// WithPoolSize overrides the connection pool size.
func WithPoolSize(n int) ConfigOption {
	return func(o *redis.Options) {
		o.PoolSize = n
	}
}

func universalOptions(options *redis.Options) *redis.UniversalOptions {
	return &redis.UniversalOptions{
		Addrs:        []string{options.Addr},
		DB:           options.DB,
		Username:     options.Username,
		Password:     options.Password,
		WriteTimeout: options.WriteTimeout,
		ReadTimeout:  options.ReadTimeout,
		DialTimeout:  options.DialTimeout,
		MaxRetries:   options.MaxRetries,
		PoolSize:     options.PoolSize,
		PoolTimeout:  options.PoolTimeout,
		MinIdleConns: options.MinIdleConns,
		IdleTimeout:  options.IdleTimeout,
	}
}
