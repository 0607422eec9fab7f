package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"HISTORY_LOOKBACK_DAYS", "RETENTION_ENABLED", "RETENTION_DAYS", "WINDOW_ANCHOR", "RATE_LIMIT_REQUESTS", "RATE_LIMIT_WINDOW", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, 40, cfg.Window.LookbackDays)
	assert.Equal(t, "05:30", cfg.Window.Anchor)
	assert.False(t, cfg.Retention.Enabled)
	assert.Equal(t, 40, cfg.Retention.Days)
	assert.Equal(t, "@every 24h", cfg.Retention.Schedule)
	assert.Equal(t, 100, cfg.RateLimit.Requests)
	assert.Equal(t, 15*time.Minute, cfg.RateLimit.Window)
	assert.Len(t, cfg.CORSAllowedOrigins, 3)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("RETENTION_ENABLED", "true")
	t.Setenv("RETENTION_DAYS", "7")
	t.Setenv("RATE_LIMIT_WINDOW", "1m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("HISTORY_LOOKBACK_DAYS", "not-a-number")

	cfg := Load()

	assert.True(t, cfg.Retention.Enabled)
	assert.Equal(t, 7, cfg.Retention.Days)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 40, cfg.Window.LookbackDays)
}

func TestValidate(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	cfg := Load()
	assert.Error(t, cfg.Validate())

	cfg.JWTSecret = "secret"
	assert.NoError(t, cfg.Validate())

	cfg.Retention.Days = 0
	assert.Error(t, cfg.Validate())
}
