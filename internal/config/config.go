package config

import (
	"errors"
	"fmt"
	"os"
	"time"
)

// Upstream transport modes.
const (
	ModeWebhook = "webhook"
	ModeVector  = "vector"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	UpstreamURL     string
	UpstreamMode    string // "webhook" or "vector"
	UpstreamTimeout time.Duration
	VectorQuery     string

	CacheTTL        time.Duration
	FallbackTTL     time.Duration
	RefreshInterval time.Duration

	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	upstreamTimeout, err := parseDuration("UPSTREAM_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}
	cacheTTL, err := parseDuration("CACHE_TTL", "5m")
	if err != nil {
		return nil, err
	}
	fallbackTTL, err := parseDuration("FALLBACK_RETRY_TTL", "30s")
	if err != nil {
		return nil, err
	}
	refreshInterval, err := parseDuration("REFRESH_INTERVAL", "5m")
	if err != nil {
		return nil, err
	}
	shutdownTimeout, err := parseDuration("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		UpstreamURL:     os.Getenv("UPSTREAM_URL"),
		UpstreamMode:    envOrDefault("UPSTREAM_MODE", ModeWebhook),
		UpstreamTimeout: upstreamTimeout,
		VectorQuery:     os.Getenv("VECTOR_QUERY"),

		CacheTTL:        cacheTTL,
		FallbackTTL:     fallbackTTL,
		RefreshInterval: refreshInterval,

		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,
	}

	if cfg.UpstreamURL == "" {
		return nil, errors.New("UPSTREAM_URL is required")
	}
	if cfg.UpstreamMode != ModeWebhook && cfg.UpstreamMode != ModeVector {
		return nil, fmt.Errorf("invalid UPSTREAM_MODE %q: must be %q or %q", cfg.UpstreamMode, ModeWebhook, ModeVector)
	}
	if cfg.CacheTTL <= 0 {
		return nil, errors.New("CACHE_TTL must be positive")
	}
	if cfg.FallbackTTL <= 0 {
		return nil, errors.New("FALLBACK_RETRY_TTL must be positive")
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDuration(key, fallback string) (time.Duration, error) {
	raw := envOrDefault(key, fallback)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return d, nil
}
