package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, name := range []string{envGRPCPort, envHTTPPort, envRedisAddr, envRedisKeyPrefix, envAuthSecret, envConfigPath} {
		t.Setenv(name, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, &Config{GRPCPort: 8080, HTTPPort: 8081}, cfg)
}

func TestLoadConfig_EnvOverridesYAML(t *testing.T) {
	clearEnv(t)
	cfgPath := filepath.Join(t.TempDir(), "userserver.yaml")
	content := `
grpc_port: 9000
http_port: 9001
redis:
  addr: redis://redis:6379
  key_prefix: dev
auth:
  secret: yaml-secret
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o644))
	t.Setenv(envConfigPath, cfgPath)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.GRPCPort)
	assert.Equal(t, 9001, cfg.HTTPPort)
	assert.Equal(t, "redis://redis:6379", cfg.RedisAddr)
	assert.Equal(t, "dev", cfg.RedisKeyPrefix)
	assert.Equal(t, []byte("yaml-secret"), cfg.AuthSecret)

	t.Setenv(envGRPCPort, "7000")
	t.Setenv(envRedisAddr, "redis://localhost:6379")
	t.Setenv(envAuthSecret, "env-secret")
	cfg, err = LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.GRPCPort)
	assert.Equal(t, 9001, cfg.HTTPPort)
	assert.Equal(t, "redis://localhost:6379", cfg.RedisAddr)
	assert.Equal(t, []byte("env-secret"), cfg.AuthSecret)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "grpc_port_not_integer", env: map[string]string{envGRPCPort: "abc"}},
		{name: "grpc_port_out_of_range", env: map[string]string{envGRPCPort: "70000"}},
		{name: "http_port_zero", env: map[string]string{envHTTPPort: "0"}},
		{name: "same_ports", env: map[string]string{envGRPCPort: "9000", envHTTPPort: "9000"}},
		{name: "missing_config_file", env: map[string]string{envConfigPath: "/nonexistent/userserver.yaml"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig()
			require.Error(t, err)
		})
	}
}
