package database

import (
	"fmt"
	"os"
	"time"
)

// Config holds store configuration.
type Config struct {
	// Path is the on-disk location of the single-file store.
	Path string

	// BusyTimeout bounds how long a statement waits on the writer lock.
	BusyTimeout time.Duration
}

// LoadConfigFromEnv loads store configuration from environment variables.
func LoadConfigFromEnv() (Config, error) {
	cfg := Config{
		Path:        getEnvOrDefault("STORE_PATH", "./data/dockhand.db"),
		BusyTimeout: 5 * time.Second,
	}

	if v := os.Getenv("STORE_BUSY_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid STORE_BUSY_TIMEOUT: %w", err)
		}
		cfg.BusyTimeout = d
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	if c.Path == "" {
		return fmt.Errorf("STORE_PATH is required")
	}
	if c.BusyTimeout <= 0 {
		return fmt.Errorf("STORE_BUSY_TIMEOUT must be positive")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
