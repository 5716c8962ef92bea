package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds runtime configuration parsed from environment variables.
type Config struct {
	APIEndpoint      string
	CartStorePath    string
	TokenPath        string
	HTTPTimeout      time.Duration
	LogLevel         string
	HTTPAddr         string
	ShutdownTimeout  time.Duration
	StubSessionToken string
}

// FromEnv builds Config with defaults, overridden by environment variables.
func FromEnv() Config {
	return Config{
		APIEndpoint:      envOrDefault("API_ENDPOINT", "http://localhost:8080"),
		CartStorePath:    envOrDefault("CART_STORE_PATH", defaultStatePath("cart.json")),
		TokenPath:        envOrDefault("TOKEN_PATH", defaultStatePath("token")),
		HTTPTimeout:      envDuration("HTTP_TIMEOUT_SECONDS", 10*time.Second),
		LogLevel:         envOrDefault("LOG_LEVEL", "info"),
		HTTPAddr:         envOrDefault("HTTP_ADDR", ":8080"),
		ShutdownTimeout:  envDuration("SHUTDOWN_TIMEOUT_SECONDS", 10*time.Second),
		StubSessionToken: envOrDefault("STUB_SESSION_TOKEN", "demo-token"),
	}
}

func defaultStatePath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return name
	}
	return filepath.Join(home, ".config", "storefront", name)
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		seconds, err := strconv.Atoi(v)
		if err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return def
}
