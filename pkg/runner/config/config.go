// Package config provides environment-driven configuration for the supervisor.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/docker/go-units"
)

// Config is the supervisor configuration.
type Config struct {
	// HTTPAddr is the listen address, e.g. "127.0.0.1:9090". The supervisor
	// is reached only from the orchestrator and must not bind publicly.
	HTTPAddr string

	// WorkerImage is the privileged container image workers run
	// (a docker-in-docker image with a shell and wget).
	WorkerImage string

	// DataDir holds per-session workspace directories on the host.
	DataDir string

	// LabsDir holds the read-only starter trees seeded into workspaces.
	LabsDir string

	// WorkspaceMount is the workspace path inside the worker.
	WorkspaceMount string

	// MemoryBytes, NanoCPUs, PidsLimit are the default worker quotas,
	// applied when the orchestrator's request leaves them zero.
	MemoryBytes int64
	NanoCPUs    int64
	PidsLimit   int64

	// MaxWorkers caps concurrently live workers on this host.
	MaxWorkers int

	// SweepInterval is how often the local TTL sweeper runs.
	SweepInterval time.Duration

	// BuildTimeout bounds one image build.
	BuildTimeout time.Duration

	// ExecTimeout is the default bound for exec operations.
	ExecTimeout time.Duration
}

// Load reads supervisor configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{
		HTTPAddr:       getEnvOrDefault("SUPERVISOR_ADDR", "127.0.0.1:9090"),
		WorkerImage:    getEnvOrDefault("WORKER_IMAGE", "docker:27-dind"),
		DataDir:        getEnvOrDefault("DATA_DIR", "./data/workers"),
		LabsDir:        getEnvOrDefault("LABS_DIR", "./labs"),
		WorkspaceMount: getEnvOrDefault("WORKSPACE_MOUNT", "/workspace"),
	}

	memory := getEnvOrDefault("RUNNER_MEMORY", "1.5g")
	memBytes, err := units.RAMInBytes(memory)
	if err != nil {
		return nil, fmt.Errorf("invalid RUNNER_MEMORY: %w", err)
	}
	cfg.MemoryBytes = memBytes

	cpuQuota, err := envFloat("RUNNER_CPU_QUOTA", 1.0)
	if err != nil {
		return nil, err
	}
	cfg.NanoCPUs = int64(cpuQuota * 1e9)

	pids, err := envInt("RUNNER_PID_LIMIT", 512)
	if err != nil {
		return nil, err
	}
	cfg.PidsLimit = int64(pids)

	cfg.MaxWorkers, err = envInt("MAX_CONCURRENT_WORKERS", 20)
	if err != nil {
		return nil, err
	}

	sweepSeconds, err := envInt("SWEEP_INTERVAL_SECONDS", 30)
	if err != nil {
		return nil, err
	}
	cfg.SweepInterval = time.Duration(sweepSeconds) * time.Second

	buildSeconds, err := envInt("BUILD_TIMEOUT_SECONDS", 300)
	if err != nil {
		return nil, err
	}
	cfg.BuildTimeout = time.Duration(buildSeconds) * time.Second

	execSeconds, err := envInt("EXEC_TIMEOUT_SECONDS", 60)
	if err != nil {
		return nil, err
	}
	cfg.ExecTimeout = time.Duration(execSeconds) * time.Second

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for inconsistent values.
func (c *Config) Validate() error {
	if c.MaxWorkers < 1 {
		return fmt.Errorf("MAX_CONCURRENT_WORKERS must be at least 1")
	}
	if c.MemoryBytes < 64*1024*1024 {
		return fmt.Errorf("RUNNER_MEMORY must be at least 64m")
	}
	if c.PidsLimit < 16 {
		return fmt.Errorf("RUNNER_PID_LIMIT must be at least 16")
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

func envFloat(key string, defaultValue float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
