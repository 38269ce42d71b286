// Package worker manages the privileged per-session worker containers:
// creation with quotas, workspace seeding, TTL tracking, and teardown.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/errdefs"

	"github.com/codeready-toolchain/dockhand/pkg/apierr"
	runnercfg "github.com/codeready-toolchain/dockhand/pkg/runner/config"
	"github.com/codeready-toolchain/dockhand/pkg/runner/engine"
	"github.com/codeready-toolchain/dockhand/pkg/runner/workspace"
	"github.com/codeready-toolchain/dockhand/pkg/supervisor"
)

const (
	sessionLabel  = "dockhand.session"
	deadlineLabel = "dockhand.deadline"
)

// daemonReadyTimeout bounds how long Start waits for the worker's inner
// engine to come up.
const daemonReadyTimeout = 30 * time.Second

// Worker is the supervisor-local state for one session's container.
type Worker struct {
	SessionID   string
	ContainerID string
	Workspace   *workspace.Workspace
	CreatedAt   time.Time
	Deadline    time.Time
}

// Manager owns all workers on this host. It is authoritative about worker
// existence; the orchestrator is authoritative about session policy.
type Manager struct {
	cfg    *runnercfg.Config
	engine *engine.Engine
	logger *slog.Logger

	mu      sync.Mutex
	workers map[string]*Worker
}

// NewManager creates a manager and re-attaches to any workers that survived
// a supervisor restart (found by label on the host engine).
func NewManager(ctx context.Context, cfg *runnercfg.Config, eng *engine.Engine) (*Manager, error) {
	m := &Manager{
		cfg:     cfg,
		engine:  eng,
		logger:  slog.Default().With("component", "worker-manager"),
		workers: make(map[string]*Worker),
	}
	if err := m.reattach(ctx); err != nil {
		return nil, err
	}
	return m, nil
}

// Start creates the worker container for a session: quotas applied, the
// workspace bind-mounted, and the lab's starter tree seeded. Calling Start
// for a session that already has a worker tears the old one down first.
func (m *Manager) Start(ctx context.Context, req supervisor.StartWorkerRequest) (*supervisor.StartWorkerResponse, error) {
	if req.SessionID == "" {
		return nil, apierr.New(apierr.CodeInvalidPath, "session_id is required")
	}

	// The prior worker for this session (if any) is replaced, and its slot
	// freed, before the capacity check: the policy is "at most one, and
	// not guaranteed to start".
	if err := m.Stop(ctx, req.SessionID); err != nil && !apierr.Is(err, apierr.CodeWorkerMissing) {
		return nil, err
	}

	m.mu.Lock()
	if len(m.workers) >= m.cfg.MaxWorkers {
		m.mu.Unlock()
		return nil, apierr.Newf(apierr.CodeCapacityExhausted,
			"worker capacity of %d reached", m.cfg.MaxWorkers)
	}
	// Reserve the slot before the (slow) container creation.
	m.workers[req.SessionID] = nil
	m.mu.Unlock()

	w, err := m.createWorker(ctx, req)

	m.mu.Lock()
	if err != nil {
		delete(m.workers, req.SessionID)
	} else {
		m.workers[req.SessionID] = w
	}
	m.mu.Unlock()

	if err != nil {
		return nil, err
	}
	return &supervisor.StartWorkerResponse{WorkerRef: w.ContainerID[:12]}, nil
}

func (m *Manager) createWorker(ctx context.Context, req supervisor.StartWorkerRequest) (*Worker, error) {
	ws, err := workspace.New(
		filepath.Join(m.cfg.DataDir, req.SessionID, "workspace"),
		m.cfg.WorkspaceMount,
	)
	if err != nil {
		return nil, apierr.Wrap(apierr.CodeEngineError, "failed to prepare workspace", err)
	}

	if req.SeedLab != "" {
		starter := filepath.Join(m.cfg.LabsDir, req.SeedLab, "starter")
		if _, statErr := os.Stat(starter); statErr == nil {
			if seedErr := ws.Seed(starter); seedErr != nil {
				return nil, apierr.Wrap(apierr.CodeEngineError, "failed to seed workspace", seedErr)
			}
		}
	}

	quotas := m.effectiveQuotas(req.Quotas)
	now := time.Now().UTC()
	deadline := now.Add(time.Duration(req.TTLSeconds) * time.Second)

	pids := quotas.PidsLimit
	created, err := m.engine.Client().ContainerCreate(ctx,
		&container.Config{
			Image: m.cfg.WorkerImage,
			Labels: map[string]string{
				sessionLabel:  req.SessionID,
				deadlineLabel: strconv.FormatInt(deadline.Unix(), 10),
			},
		},
		&container.HostConfig{
			Privileged: true,
			Binds:      []string{ws.Root() + ":" + m.cfg.WorkspaceMount},
			Resources: container.Resources{
				Memory:    quotas.MemoryBytes,
				NanoCPUs:  quotas.NanoCPUs,
				PidsLimit: &pids,
			},
		},
		nil, nil, workerName(req.SessionID))
	if err != nil {
		return nil, apierr.Wrap(apierr.CodeEngineError, "failed to create worker container", err)
	}

	if err := m.engine.Client().ContainerStart(ctx, created.ID, container.StartOptions{}); err != nil {
		_ = m.engine.Client().ContainerRemove(context.Background(), created.ID, container.RemoveOptions{Force: true})
		return nil, apierr.Wrap(apierr.CodeEngineError, "failed to start worker container", err)
	}

	if err := m.waitForInnerEngine(ctx, created.ID); err != nil {
		_ = m.engine.Client().ContainerRemove(context.Background(), created.ID, container.RemoveOptions{Force: true})
		return nil, err
	}

	m.logger.Info("Worker started",
		"session_id", req.SessionID,
		"container_id", created.ID[:12],
		"deadline", deadline)

	return &Worker{
		SessionID:   req.SessionID,
		ContainerID: created.ID,
		Workspace:   ws,
		CreatedAt:   now,
		Deadline:    deadline,
	}, nil
}

// waitForInnerEngine polls `docker info` inside the worker until the inner
// daemon answers.
func (m *Manager) waitForInnerEngine(ctx context.Context, containerID string) error {
	deadline := time.Now().Add(daemonReadyTimeout)
	for time.Now().Before(deadline) {
		exec, err := m.engine.Exec(ctx, containerID, []string{"docker", "info"}, "", nil, 5*time.Second)
		if err == nil && exec.ExitCode == 0 {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Second):
		}
	}
	return apierr.New(apierr.CodeEngineError, "the worker's engine did not come up in time")
}

// Get returns the worker for a session, or worker_missing.
func (m *Manager) Get(sessionID string) (*Worker, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	w := m.workers[sessionID]
	if w == nil {
		return nil, apierr.Newf(apierr.CodeWorkerMissing, "no worker for session %s", sessionID)
	}
	return w, nil
}

// Stop tears down the session's worker: the container (and every child
// container its inner engine created, which live inside it), then the
// workspace directory. Returns worker_missing when there is nothing to
// tear down, which the orchestrator uses to reconcile.
func (m *Manager) Stop(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	w := m.workers[sessionID]
	delete(m.workers, sessionID)
	m.mu.Unlock()

	containerRef := workerName(sessionID)
	if w != nil {
		containerRef = w.ContainerID
	}

	err := m.engine.Client().ContainerRemove(ctx, containerRef, container.RemoveOptions{
		Force:         true,
		RemoveVolumes: true,
	})
	missing := err != nil && errdefs.IsNotFound(err)
	if err != nil && !missing {
		return apierr.Wrap(apierr.CodeEngineError, "failed to remove worker container", err)
	}

	if w != nil {
		if rmErr := os.RemoveAll(filepath.Dir(w.Workspace.Root())); rmErr != nil {
			m.logger.Warn("Failed to remove workspace", "session_id", sessionID, "error", rmErr)
		}
	}

	if w == nil && missing {
		return apierr.Newf(apierr.CodeWorkerMissing, "no worker for session %s", sessionID)
	}

	m.logger.Info("Worker stopped", "session_id", sessionID)
	return nil
}

// Sweep terminates workers whose TTL deadline has passed. Runs
// independently of the orchestrator's sweeper as defense in depth.
func (m *Manager) Sweep(ctx context.Context, now time.Time) int {
	m.mu.Lock()
	var due []string
	for id, w := range m.workers {
		if w != nil && w.Deadline.Before(now) {
			due = append(due, id)
		}
	}
	m.mu.Unlock()

	swept := 0
	for _, id := range due {
		if err := m.Stop(ctx, id); err != nil && !apierr.Is(err, apierr.CodeWorkerMissing) {
			m.logger.Error("Failed to sweep worker", "session_id", id, "error", err)
			continue
		}
		swept++
	}
	return swept
}

// Count returns the number of live workers.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.workers)
}

// reattach rebuilds the worker map from labeled containers after a
// supervisor restart, reading TTL deadlines back from their labels.
func (m *Manager) reattach(ctx context.Context) error {
	list, err := m.engine.Client().ContainerList(ctx, container.ListOptions{All: false})
	if err != nil {
		return fmt.Errorf("failed to list containers: %w", err)
	}

	for _, c := range list {
		sessionID, ok := c.Labels[sessionLabel]
		if !ok {
			continue
		}
		deadline := time.Now().UTC()
		if raw, ok := c.Labels[deadlineLabel]; ok {
			if unix, parseErr := strconv.ParseInt(raw, 10, 64); parseErr == nil {
				deadline = time.Unix(unix, 0).UTC()
			}
		}

		ws, wsErr := workspace.New(
			filepath.Join(m.cfg.DataDir, sessionID, "workspace"),
			m.cfg.WorkspaceMount,
		)
		if wsErr != nil {
			m.logger.Warn("Skipping reattach, workspace unavailable",
				"session_id", sessionID, "error", wsErr)
			continue
		}

		m.workers[sessionID] = &Worker{
			SessionID:   sessionID,
			ContainerID: c.ID,
			Workspace:   ws,
			CreatedAt:   time.Unix(c.Created, 0).UTC(),
			Deadline:    deadline,
		}
		m.logger.Info("Re-attached to worker", "session_id", sessionID, "container_id", c.ID[:12])
	}
	return nil
}

func (m *Manager) effectiveQuotas(q supervisor.Quotas) supervisor.Quotas {
	if q.MemoryBytes <= 0 {
		q.MemoryBytes = m.cfg.MemoryBytes
	}
	if q.NanoCPUs <= 0 {
		q.NanoCPUs = m.cfg.NanoCPUs
	}
	if q.PidsLimit <= 0 {
		q.PidsLimit = m.cfg.PidsLimit
	}
	return q
}

func workerName(sessionID string) string {
	return "dockhand-worker-" + sessionID
}
