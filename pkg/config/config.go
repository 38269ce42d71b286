// Package config provides environment-driven configuration for the orchestrator.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is the orchestrator configuration, loaded once in main and threaded
// explicitly to every component. There is no package-level state.
type Config struct {
	// HTTPAddr is the listen address, e.g. ":8080".
	HTTPAddr string

	// SupervisorBaseURL is how the orchestrator reaches the supervisor,
	// e.g. "http://127.0.0.1:9090".
	SupervisorBaseURL string

	// SessionTTL is the initial expiry window for new sessions.
	SessionTTL time.Duration

	// SweepInterval is how often the TTL sweeper runs.
	SweepInterval time.Duration

	// TokenSecret is the HMAC key for opaque token issuance.
	TokenSecret string

	// TokenTTL is how long issued bearer tokens stay valid.
	TokenTTL time.Duration

	// AgentRateLimitPerMin caps hint/explain/patch calls per session.
	AgentRateLimitPerMin int

	// AgentBaseURL is the external hint/explain adapter; empty disables
	// the agent endpoints (they return 503).
	AgentBaseURL string

	// AgentTimeout bounds a single agent adapter call.
	AgentTimeout time.Duration

	// CORSAllowOrigins is the parsed CORS_ALLOW_ORIGINS list.
	CORSAllowOrigins []string

	// LabsDir is the lab catalog root (description text + starter trees).
	LabsDir string

	// HTTPTimeout bounds a single HTTP exchange with the supervisor.
	HTTPTimeout time.Duration

	// SlackBotToken/SlackChannelID enable pass notifications when both set.
	SlackBotToken  string
	SlackChannelID string
}

// Load reads configuration from the environment with validation and defaults.
func Load() (*Config, error) {
	cfg := &Config{
		HTTPAddr:          ":" + getEnvOrDefault("HTTP_PORT", "8080"),
		SupervisorBaseURL: getEnvOrDefault("SUPERVISOR_BASE_URL", "http://127.0.0.1:9090"),
		TokenSecret:       os.Getenv("TOKEN_SECRET"),
		AgentBaseURL:      os.Getenv("AGENT_BASE_URL"),
		LabsDir:           getEnvOrDefault("LABS_DIR", "./labs"),
		SlackBotToken:     os.Getenv("SLACK_BOT_TOKEN"),
		SlackChannelID:    os.Getenv("SLACK_CHANNEL_ID"),
	}

	ttlSeconds, err := envInt("SESSION_TTL_SECONDS", 1800)
	if err != nil {
		return nil, err
	}
	cfg.SessionTTL = time.Duration(ttlSeconds) * time.Second

	sweepSeconds, err := envInt("SWEEP_INTERVAL_SECONDS", 30)
	if err != nil {
		return nil, err
	}
	cfg.SweepInterval = time.Duration(sweepSeconds) * time.Second

	tokenTTLSeconds, err := envInt("TOKEN_TTL_SECONDS", 30*24*3600)
	if err != nil {
		return nil, err
	}
	cfg.TokenTTL = time.Duration(tokenTTLSeconds) * time.Second

	cfg.AgentRateLimitPerMin, err = envInt("AGENT_RATE_LIMIT_PER_MIN", 5)
	if err != nil {
		return nil, err
	}

	httpTimeoutSeconds, err := envInt("HTTP_TIMEOUT_SECONDS", 30)
	if err != nil {
		return nil, err
	}
	cfg.HTTPTimeout = time.Duration(httpTimeoutSeconds) * time.Second

	agentTimeoutSeconds, err := envInt("AGENT_TIMEOUT_SECONDS", 20)
	if err != nil {
		return nil, err
	}
	cfg.AgentTimeout = time.Duration(agentTimeoutSeconds) * time.Second

	if origins := os.Getenv("CORS_ALLOW_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSAllowOrigins = append(cfg.CORSAllowOrigins, o)
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for inconsistent or missing values.
func (c *Config) Validate() error {
	if c.TokenSecret == "" {
		return fmt.Errorf("TOKEN_SECRET is required")
	}
	if len(c.TokenSecret) < 32 {
		return fmt.Errorf("TOKEN_SECRET must be at least 32 bytes")
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL_SECONDS must be positive")
	}
	if c.SweepInterval <= 0 {
		return fmt.Errorf("SWEEP_INTERVAL_SECONDS must be positive")
	}
	if c.AgentRateLimitPerMin < 1 {
		return fmt.Errorf("AGENT_RATE_LIMIT_PER_MIN must be at least 1")
	}
	return nil
}

func envInt(key string, defaultValue int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
