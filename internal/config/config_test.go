package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "PREDICTOR_URL", "PREDICTOR_TIMEOUT", "CORS_ALLOWED_ORIGINS", "SESSION_TTL", "SESSION_MAX", "HISTORY_ENABLED", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, DefaultPredictorURL, cfg.Predictor.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Predictor.Timeout)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, 30*time.Minute, cfg.Server.SessionTTL)
	assert.Equal(t, 1000, cfg.Server.MaxSessions)
	assert.False(t, cfg.History.Enabled)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PREDICTOR_URL", "http://predictor:9000/")
	t.Setenv("PREDICTOR_TIMEOUT", "5s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.example, ,http://b.example")
	t.Setenv("HISTORY_ENABLED", "true")
	t.Setenv("SESSION_TTL", "not-a-duration")
	t.Setenv("SESSION_MAX", "25")

	cfg := Load()
	assert.Equal(t, "http://predictor:9000", cfg.Predictor.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Predictor.Timeout)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.Server.CORSAllowedOrigins)
	assert.True(t, cfg.History.Enabled)
	assert.Equal(t, 30*time.Minute, cfg.Server.SessionTTL)
	assert.Equal(t, 25, cfg.Server.MaxSessions)
}
