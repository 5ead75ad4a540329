package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"myuserapp/domain"

	"gopkg.in/yaml.v3"
)

// Env variable names.
const (
	envServiceAddress = "USER_SERVICE_ADDRESS"
	envCallTimeoutMs  = "CALL_TIMEOUT_MS"
	envAuthToken      = "AUTH_TOKEN"
	envAuthSecret     = "AUTH_SECRET"
	envAuthSubject    = "AUTH_SUBJECT"
	envLogLevel       = "LOG_LEVEL"
	envConfigPath     = "CONFIG_PATH"
)

const (
	defaultCallTimeout = 30 * time.Second
	defaultAuthSubject = "userapp"
	defaultLogLevel    = "info"
)

// Config holds the user app configuration loaded by LoadConfig. ServiceAddress is the base address of the user
// service; CallTimeout bounds every call (0 disables); AuthToken is sent as is, otherwise a token for AuthSubject is
// signed with AuthSecret when it is set.
type Config struct {
	ServiceAddress string
	CallTimeout    time.Duration
	AuthToken      string
	AuthSecret     []byte
	AuthSubject    string
	LogLevel       string
}

// yamlConfig is the root struct of the optional YAML file at CONFIG_PATH.
type yamlConfig struct {
	UserService struct {
		Address       string `yaml:"address"`
		CallTimeoutMs *int   `yaml:"call_timeout_ms"`
	} `yaml:"user_service"`
	Auth struct {
		Token   string `yaml:"token"`
		Secret  string `yaml:"secret"`
		Subject string `yaml:"subject"`
	} `yaml:"auth"`
	LogLevel string `yaml:"log_level"`
}

// loadYAMLConfig reads the YAML file at path and unmarshals it into yamlConfig.
//
// Returns: (*yamlConfig, nil) on success; (nil, error) on os.ReadFile or yaml.Unmarshal error.
//
// Called only from LoadConfig.
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

// LoadConfig builds the user app config from defaults, the optional YAML file at CONFIG_PATH and environment
// variables, in that order of precedence (env wins). The service address defaults to the local development address
// and is never inferred from the host; other addresses must be named explicitly via USER_SERVICE_ADDRESS or
// user_service.address.
//
// Returns: (*Config, nil) on success; (nil, error) on YAML load error, a non-integer or negative CALL_TIMEOUT_MS or an unknown LOG_LEVEL.
//
// Called only from main at startup.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServiceAddress: domain.LocalDevAddress,
		CallTimeout:    defaultCallTimeout,
		AuthSubject:    defaultAuthSubject,
		LogLevel:       defaultLogLevel,
	}

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
		if v := strings.TrimSpace(raw.UserService.Address); v != "" {
			cfg.ServiceAddress = v
		}
		if raw.UserService.CallTimeoutMs != nil {
			if *raw.UserService.CallTimeoutMs < 0 {
				return nil, fmt.Errorf("user_service.call_timeout_ms must not be negative, got %d", *raw.UserService.CallTimeoutMs)
			}
			cfg.CallTimeout = time.Duration(*raw.UserService.CallTimeoutMs) * time.Millisecond
		}
		cfg.AuthToken = strings.TrimSpace(raw.Auth.Token)
		if v := strings.TrimSpace(raw.Auth.Secret); v != "" {
			cfg.AuthSecret = []byte(v)
		}
		if v := strings.TrimSpace(raw.Auth.Subject); v != "" {
			cfg.AuthSubject = v
		}
		if v := strings.TrimSpace(raw.LogLevel); v != "" {
			cfg.LogLevel = v
		}
	}

	if v := strings.TrimSpace(os.Getenv(envServiceAddress)); v != "" {
		cfg.ServiceAddress = v
	}
	if v := strings.TrimSpace(os.Getenv(envCallTimeoutMs)); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil || ms < 0 {
			return nil, fmt.Errorf("%s must be a non-negative integer (ms), got %q", envCallTimeoutMs, v)
		}
		cfg.CallTimeout = time.Duration(ms) * time.Millisecond
	}
	if v := strings.TrimSpace(os.Getenv(envAuthToken)); v != "" {
		cfg.AuthToken = v
	}
	if v := strings.TrimSpace(os.Getenv(envAuthSecret)); v != "" {
		cfg.AuthSecret = []byte(v)
	}
	if v := strings.TrimSpace(os.Getenv(envAuthSubject)); v != "" {
		cfg.AuthSubject = v
	}
	if v := strings.TrimSpace(os.Getenv(envLogLevel)); v != "" {
		cfg.LogLevel = v
	}
	if _, err := levelOption(cfg.LogLevel); err != nil {
		return nil, err
	}
	return cfg, nil
}
