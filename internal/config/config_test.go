package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUpstreamURL = "https://hooks.example.com/news"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("UPSTREAM_URL", testUpstreamURL)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, testUpstreamURL, cfg.UpstreamURL)
	assert.Equal(t, ModeWebhook, cfg.UpstreamMode)
	assert.Equal(t, 10*time.Second, cfg.UpstreamTimeout)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 30*time.Second, cfg.FallbackTTL)
	assert.Equal(t, 5*time.Minute, cfg.RefreshInterval)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("UPSTREAM_URL", testUpstreamURL)
	t.Setenv("UPSTREAM_MODE", "vector")
	t.Setenv("UPSTREAM_TIMEOUT", "30s")
	t.Setenv("VECTOR_QUERY", "offshore wind")
	t.Setenv("CACHE_TTL", "10m")
	t.Setenv("FALLBACK_RETRY_TTL", "1m")
	t.Setenv("REFRESH_INTERVAL", "2m")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "20s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ModeVector, cfg.UpstreamMode)
	assert.Equal(t, 30*time.Second, cfg.UpstreamTimeout)
	assert.Equal(t, "offshore wind", cfg.VectorQuery)
	assert.Equal(t, 10*time.Minute, cfg.CacheTTL)
	assert.Equal(t, time.Minute, cfg.FallbackTTL)
	assert.Equal(t, 2*time.Minute, cfg.RefreshInterval)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 20*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_MissingUpstreamURL(t *testing.T) {
	t.Setenv("UPSTREAM_URL", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UPSTREAM_URL")
}

func TestLoad_InvalidMode(t *testing.T) {
	t.Setenv("UPSTREAM_URL", testUpstreamURL)
	t.Setenv("UPSTREAM_MODE", "carrier-pigeon")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UPSTREAM_MODE")
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("UPSTREAM_URL", testUpstreamURL)
	t.Setenv("CACHE_TTL", "five minutes")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CACHE_TTL")
}

func TestLoad_ZeroRefreshIntervalDisablesLoop(t *testing.T) {
	t.Setenv("UPSTREAM_URL", testUpstreamURL)
	t.Setenv("REFRESH_INTERVAL", "0s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), cfg.RefreshInterval)
}
