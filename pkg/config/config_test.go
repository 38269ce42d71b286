package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TOKEN_SECRET", testSecret)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "http://127.0.0.1:9090", cfg.SupervisorBaseURL)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, 30*time.Second, cfg.SweepInterval)
	assert.Equal(t, 5, cfg.AgentRateLimitPerMin)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 20*time.Second, cfg.AgentTimeout)
	assert.Empty(t, cfg.CORSAllowOrigins)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("TOKEN_SECRET", testSecret)
	t.Setenv("SESSION_TTL_SECONDS", "120")
	t.Setenv("AGENT_RATE_LIMIT_PER_MIN", "2")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://lab.example.com, https://staging.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 2*time.Minute, cfg.SessionTTL)
	assert.Equal(t, 2, cfg.AgentRateLimitPerMin)
	assert.Equal(t,
		[]string{"https://lab.example.com", "https://staging.example.com"},
		cfg.CORSAllowOrigins)
}

func TestLoadValidation(t *testing.T) {
	t.Run("missing token secret", func(t *testing.T) {
		t.Setenv("TOKEN_SECRET", "")
		_, err := Load()
		assert.ErrorContains(t, err, "TOKEN_SECRET")
	})

	t.Run("short token secret", func(t *testing.T) {
		t.Setenv("TOKEN_SECRET", "too-short")
		_, err := Load()
		assert.ErrorContains(t, err, "32 bytes")
	})

	t.Run("unparseable integer", func(t *testing.T) {
		t.Setenv("TOKEN_SECRET", testSecret)
		t.Setenv("SESSION_TTL_SECONDS", "soon")
		_, err := Load()
		assert.ErrorContains(t, err, "SESSION_TTL_SECONDS")
	})

	t.Run("non-positive ttl", func(t *testing.T) {
		t.Setenv("TOKEN_SECRET", testSecret)
		t.Setenv("SESSION_TTL_SECONDS", "0")
		_, err := Load()
		assert.ErrorContains(t, err, "SESSION_TTL_SECONDS")
	})
}
