package config

import (
	"testing"
	"time"

	env "github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppConfig_Defaults(t *testing.T) {
	var cfg AppConfig
	require.NoError(t, env.ParseWithOptions(&cfg, env.Options{Environment: map[string]string{}}))
	cfg.Sanitize()

	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, 6, cfg.HTTP.CompressionLevel)
	assert.Equal(t, 30*time.Second, cfg.HTTP.ReadTimeout)

	assert.Equal(t, SessionStoreRedis, cfg.Session.Store)
	assert.Equal(t, 3*time.Second, cfg.Session.SettleWait)
	assert.Equal(t, 5*time.Minute, cfg.Session.RevalidateAfter)
	assert.Equal(t, "session_id", cfg.Session.CookieName)
	assert.True(t, cfg.UsesRedis())

	assert.Equal(t, "http://localhost:3000/api", cfg.Marketplace.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Marketplace.Timeout)
	assert.Equal(t, "rows", cfg.Marketplace.ListItemsPath)

	assert.Equal(t, 2048, cfg.Views.Capacity)
	assert.Equal(t, 15*time.Minute, cfg.Views.TTL)
	assert.Equal(t, 5, cfg.LoginRate.PerMinute)

	assert.Equal(t, "localhost:6379", cfg.Redis.URI)
	assert.False(t, cfg.Observability.Metrics.IsEnabled())
	assert.Equal(t, "internhub_web", cfg.Observability.Prometheus.Namespace)
}

func TestAppConfig_ParseEnv(t *testing.T) {
	environment := map[string]string{
		"HTTP_ADDR":                     ":9090",
		"APP_BASE_URL":                  "https://interns.example.com/",
		"SESSION_STORE":                 " Memory ",
		"SESSION_TTL":                   "2h",
		"SESSION_SETTLE_WAIT":           "500ms",
		"SESSION_COOKIE_NAME":           "ih_sid",
		"MARKETPLACE_API_URL":           "https://api.example.com/v1/",
		"MARKETPLACE_API_TIMEOUT":       "3s",
		"MARKETPLACE_LIST_ITEMS_PATH":   "data.items",
		"VIEW_CACHE_CAPACITY":           "64",
		"LOGIN_RATE_PER_MINUTE":         "10",
		"LOGIN_RATE_TRUST_PROXY":        "true",
		"REDIS_USE_SENTINEL":            "true",
		"REDIS_SENTINEL_NODES":          "s1,s2:26400",
		"OBSERVABILITY_METRICS_ENABLED": "true",
	}

	var cfg AppConfig
	require.NoError(t, env.ParseWithOptions(&cfg, env.Options{Environment: environment}))
	cfg.Sanitize()

	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.Equal(t, "https://interns.example.com", cfg.HTTP.BaseURL)
	assert.Equal(t, SessionStoreMemory, cfg.Session.Store)
	assert.False(t, cfg.UsesRedis())
	assert.Equal(t, 2*time.Hour, cfg.Session.TTL)
	assert.Equal(t, 500*time.Millisecond, cfg.Session.SettleWait)
	assert.Equal(t, "ih_sid", cfg.Session.CookieName)
	assert.Equal(t, "https://api.example.com/v1", cfg.Marketplace.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Marketplace.Timeout)
	assert.Equal(t, "data.items", cfg.Marketplace.ListItemsPath)
	assert.Equal(t, 64, cfg.Views.Capacity)
	assert.Equal(t, 10, cfg.LoginRate.PerMinute)
	assert.Equal(t, 5, cfg.LoginRate.Burst)
	assert.True(t, cfg.LoginRate.TrustProxy)
	assert.Equal(t, []string{"s1:26379", "s2:26400"}, cfg.Redis.SentinelAddrs())
	assert.True(t, cfg.Observability.Metrics.IsEnabled())
}

func TestAppConfig_DetectDevMode(t *testing.T) {
	tests := []struct {
		name    string
		dev     bool
		nodeEnv string
		want    bool
	}{
		{name: "explicit", dev: true, want: true},
		{name: "node env development", nodeEnv: "development", want: true},
		{name: "node env dev", nodeEnv: "DEV", want: true},
		{name: "production", nodeEnv: "production", want: false},
		{name: "unset", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NODE_ENV", tt.nodeEnv)
			cfg := AppConfig{IsDev: tt.dev}
			cfg.Sanitize()
			assert.Equal(t, tt.want, cfg.IsDev)
		})
	}
}

func TestHTTPConfig_Sanitize(t *testing.T) {
	cfg := HTTPConfig{CompressionLevel: 42, CompressionMinSize: -1}
	cfg.Sanitize()

	assert.Equal(t, 9, cfg.CompressionLevel)
	assert.Equal(t, 0, cfg.CompressionMinSize)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)

	cfg = HTTPConfig{CompressionLevel: 0}
	cfg.Sanitize()
	assert.Equal(t, 1, cfg.CompressionLevel)
}

func TestSessionConfig_Sanitize(t *testing.T) {
	cfg := SessionConfig{Store: "sqlite", CookieName: "  "}
	cfg.Sanitize()

	assert.Equal(t, SessionStoreRedis, cfg.Store)
	assert.Equal(t, "session_id", cfg.CookieName)
	assert.Equal(t, 24*time.Hour, cfg.TTL)
	assert.Equal(t, time.Minute, cfg.SweepInterval)
}

func TestLoginRateConfig_Sanitize(t *testing.T) {
	cfg := LoginRateConfig{PerMinute: 12}
	cfg.Sanitize()
	assert.Equal(t, 12, cfg.Burst)

	cfg = LoginRateConfig{PerMinute: -1, Burst: 2}
	cfg.Sanitize()
	assert.Equal(t, 5, cfg.PerMinute)
	assert.Equal(t, 2, cfg.Burst)
}

func TestObservabilityMetricsConfig_Sanitize(t *testing.T) {
	cfg := ObservabilityMetricsConfig{
		Enabled:       true,
		StatsdAddress: " ",
	}

	cfg.Sanitize()

	if cfg.Enabled {
		t.Fatalf("expected enabled to be false when address is empty")
	}
	if cfg.Prefix != defaultObservabilityName {
		t.Fatalf("expected default prefix, got %q", cfg.Prefix)
	}

	cfg = ObservabilityMetricsConfig{
		Enabled:       true,
		StatsdAddress: " statsd:1234 ",
		Prefix:        ".web.",
	}

	cfg.Sanitize()

	if !cfg.IsEnabled() {
		t.Fatalf("expected metrics to remain enabled")
	}
	if cfg.StatsdAddress != "statsd:1234" {
		t.Fatalf("expected address to be trimmed, got %q", cfg.StatsdAddress)
	}
	if cfg.Prefix != "web" {
		t.Fatalf("expected prefix to be trimmed, got %q", cfg.Prefix)
	}
}
