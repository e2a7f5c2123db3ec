package config

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setProductionEnv(t *testing.T) {
	t.Helper()
	// production skips the .env lookup so the test only sees what it sets
	t.Setenv("GO_ENV", "production")
	for _, k := range []string{"DATABASE_URL", "PORT", "ALLOWED_ORIGINS", "CONTEXT_TIMEOUT", "EVENT_RETENTION", "PURGE_SCHEDULE", "SLUG_MAX_SUFFIX", "AUTO_MIGRATE", "CORS_EXPOSE_HEADERS", "CORS_MAX_AGE"} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	setProductionEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultDBUrl, cfg.DBUrl)
	assert.Equal(t, DefaultAllowedOrigins, cfg.AllowedOrigins)
	assert.Equal(t, DefaultCORSExposeHeaders, cfg.CORSExposeHeaders)
	assert.Equal(t, DefaultCORSMaxAge, cfg.CORSMaxAge)
	assert.Equal(t, DefaultContextTimeout, cfg.ContextTimeout)
	assert.Equal(t, DefaultEventRetention, cfg.EventRetention)
	assert.Equal(t, DefaultSlugMaxSuffix, cfg.SlugMaxSuffix)
	assert.Empty(t, cfg.PurgeSchedule)
	assert.True(t, cfg.AutoMigrate)
}

func TestLoad_Overrides(t *testing.T) {
	setProductionEnv(t)
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/events")
	t.Setenv("PORT", "9000")
	t.Setenv("ALLOWED_ORIGINS", " https://a.example , ,https://b.example")
	t.Setenv("CONTEXT_TIMEOUT", "2s")
	t.Setenv("EVENT_RETENTION", "72h")
	t.Setenv("PURGE_SCHEDULE", "@daily")
	t.Setenv("SLUG_MAX_SUFFIX", "50")
	t.Setenv("AUTO_MIGRATE", "false")
	t.Setenv("CORS_EXPOSE_HEADERS", "X-Request-ID, Location")
	t.Setenv("CORS_MAX_AGE", "10m")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@db:5432/events", cfg.DBUrl)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, 2*time.Second, cfg.ContextTimeout)
	assert.Equal(t, 72*time.Hour, cfg.EventRetention)
	assert.Equal(t, "@daily", cfg.PurgeSchedule)
	assert.Equal(t, 50, cfg.SlugMaxSuffix)
	assert.False(t, cfg.AutoMigrate)
	assert.Equal(t, []string{"X-Request-ID", "Location"}, cfg.CORSExposeHeaders)
	assert.Equal(t, 10*time.Minute, cfg.CORSMaxAge)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"bad timeout", "CONTEXT_TIMEOUT", "soon"},
		{"negative retention", "EVENT_RETENTION", "-1h"},
		{"zero slug suffix", "SLUG_MAX_SUFFIX", "0"},
		{"bad cors max age", "CORS_MAX_AGE", "forever"},
		{"non numeric slug suffix", "SLUG_MAX_SUFFIX", "many"},
		{"bad auto migrate", "AUTO_MIGRATE", "perhaps"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setProductionEnv(t)
			t.Setenv(tt.key, tt.val)
			cfg, err := Load()
			require.Error(t, err)
			require.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestNewLogger_ProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "production", "warn")

	logger.Info("dropped")
	logger.Warn("kept", "event_id", 7)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "kept", rec["msg"])
	assert.Equal(t, float64(7), rec["event_id"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, parseLevel("WARN"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel(""))
	assert.Equal(t, slog.LevelInfo, parseLevel("verbose"))
}
