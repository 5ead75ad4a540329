package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Env variable names.
const (
	envGRPCPort       = "SERVICE_PORT_GRPC"
	envHTTPPort       = "SERVICE_PORT_HTTP"
	envRedisAddr      = "REDIS_ADDR"
	envRedisKeyPrefix = "REDIS_KEY_PREFIX"
	envAuthSecret     = "AUTH_SECRET"
	envConfigPath     = "CONFIG_PATH"
)

// Config holds the development user service configuration. RedisAddr empty selects the in-memory store;
// AuthSecret empty disables token checks.
type Config struct {
	GRPCPort       int
	HTTPPort       int
	RedisAddr      string
	RedisKeyPrefix string
	AuthSecret     []byte
}

// yamlConfig is the root struct of the optional YAML file at CONFIG_PATH.
type yamlConfig struct {
	GRPCPort int `yaml:"grpc_port"`
	HTTPPort int `yaml:"http_port"`
	Redis    struct {
		Addr      string `yaml:"addr"`
		KeyPrefix string `yaml:"key_prefix"`
	} `yaml:"redis"`
	Auth struct {
		Secret string `yaml:"secret"`
	} `yaml:"auth"`
}

func loadYAMLConfig(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var out yamlConfig
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LoadConfig builds the server config from defaults (gRPC 8080, HTTP 8081, memory store, no auth), the optional
// YAML file at CONFIG_PATH and environment variables (env wins).
//
// Returns: (*Config, nil); (nil, error) on YAML load error, a port outside 1-65535 or equal gRPC and HTTP ports.
//
// Called only from main at startup.
func LoadConfig() (*Config, error) {
	cfg := &Config{GRPCPort: 8080, HTTPPort: 8081}

	if configPath := strings.TrimSpace(os.Getenv(envConfigPath)); configPath != "" {
		if !filepath.IsAbs(configPath) {
			abs, err := filepath.Abs(configPath)
			if err != nil {
				return nil, err
			}
			configPath = abs
		}
		raw, err := loadYAMLConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("load config %s: %w", configPath, err)
		}
		if raw.GRPCPort != 0 {
			cfg.GRPCPort = raw.GRPCPort
		}
		if raw.HTTPPort != 0 {
			cfg.HTTPPort = raw.HTTPPort
		}
		cfg.RedisAddr = strings.TrimSpace(raw.Redis.Addr)
		cfg.RedisKeyPrefix = strings.TrimSpace(raw.Redis.KeyPrefix)
		if v := strings.TrimSpace(raw.Auth.Secret); v != "" {
			cfg.AuthSecret = []byte(v)
		}
	}

	var err error
	if cfg.GRPCPort, err = portFromEnv(envGRPCPort, cfg.GRPCPort); err != nil {
		return nil, err
	}
	if cfg.HTTPPort, err = portFromEnv(envHTTPPort, cfg.HTTPPort); err != nil {
		return nil, err
	}
	if v := strings.TrimSpace(os.Getenv(envRedisAddr)); v != "" {
		cfg.RedisAddr = v
	}
	if v := strings.TrimSpace(os.Getenv(envRedisKeyPrefix)); v != "" {
		cfg.RedisKeyPrefix = v
	}
	if v := strings.TrimSpace(os.Getenv(envAuthSecret)); v != "" {
		cfg.AuthSecret = []byte(v)
	}

	for name, port := range map[string]int{envGRPCPort: cfg.GRPCPort, envHTTPPort: cfg.HTTPPort} {
		if port <= 0 || port > 65535 {
			return nil, fmt.Errorf("%s must be 1-65535, got %d", name, port)
		}
	}
	if cfg.GRPCPort == cfg.HTTPPort {
		return nil, fmt.Errorf("%s and %s must differ, both are %d", envGRPCPort, envHTTPPort, cfg.GRPCPort)
	}
	return cfg, nil
}

// portFromEnv returns the port in env variable name, or def when it is unset.
func portFromEnv(name string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return def, nil
	}
	port, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be a valid port (1-65535), got %q", name, v)
	}
	return port, nil
}
