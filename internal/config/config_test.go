package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, "nats://localhost:4222", cfg.NATS.URL)
	assert.Equal(t, "glossa.detect.requests", cfg.NATS.Subject)
	assert.Empty(t, cfg.Detector.Languages)
	assert.Zero(t, cfg.Detector.MinimumRelativeDistance)
	assert.Equal(t, 1<<20, cfg.Detector.MaxTextBytes)
	assert.Equal(t, 5*time.Minute, cfg.Detector.CacheTTL)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("DETECTOR_LANGUAGES", "en, fr ,es")
	t.Setenv("DETECTOR_MIN_RELATIVE_DISTANCE", "0.25")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, []string{"en", "fr", "es"}, cfg.Detector.Languages)
	assert.Equal(t, 0.25, cfg.Detector.MinimumRelativeDistance)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("PORT", "not-a-number")
	t.Setenv("DETECTOR_MIN_RELATIVE_DISTANCE", "much")

	cfg := Load()

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Zero(t, cfg.Detector.MinimumRelativeDistance)
}
