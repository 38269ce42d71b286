package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.HTTPAddr)
	assert.Equal(t, "/workspace", cfg.WorkspaceMount)
	assert.Equal(t, int64(1536*1024*1024), cfg.MemoryBytes)
	assert.Equal(t, int64(1e9), cfg.NanoCPUs)
	assert.Equal(t, int64(512), cfg.PidsLimit)
	assert.Equal(t, 20, cfg.MaxWorkers)
	assert.Equal(t, 5*time.Minute, cfg.BuildTimeout)
	assert.Equal(t, time.Minute, cfg.ExecTimeout)
}

func TestLoadQuotaParsing(t *testing.T) {
	t.Setenv("RUNNER_MEMORY", "2g")
	t.Setenv("RUNNER_CPU_QUOTA", "0.5")
	t.Setenv("RUNNER_PID_LIMIT", "128")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, int64(2*1024*1024*1024), cfg.MemoryBytes)
	assert.Equal(t, int64(5e8), cfg.NanoCPUs)
	assert.Equal(t, int64(128), cfg.PidsLimit)
}

func TestLoadValidation(t *testing.T) {
	t.Run("bad memory string", func(t *testing.T) {
		t.Setenv("RUNNER_MEMORY", "lots")
		_, err := Load()
		assert.ErrorContains(t, err, "RUNNER_MEMORY")
	})

	t.Run("tiny memory", func(t *testing.T) {
		t.Setenv("RUNNER_MEMORY", "1m")
		_, err := Load()
		assert.ErrorContains(t, err, "at least 64m")
	})

	t.Run("zero workers", func(t *testing.T) {
		t.Setenv("MAX_CONCURRENT_WORKERS", "0")
		_, err := Load()
		assert.ErrorContains(t, err, "MAX_CONCURRENT_WORKERS")
	})
}
