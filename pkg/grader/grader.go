// Package grader implements the lab grading pipeline: read the workspace,
// build the image, run it, probe it, and produce a structured result with
// stable failure codes.
//
// Grading failures are data, not errors: a lab that cannot be built is a
// legitimate outcome. The error return of Evaluate is reserved for
// infrastructure problems (supervisor unreachable, registry miss) that make
// grading itself impossible.
package grader

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/codeready-toolchain/dockhand/pkg/labs"
	"github.com/codeready-toolchain/dockhand/pkg/models"
	"github.com/codeready-toolchain/dockhand/pkg/supervisor"
)

// Supervisor is the session-scoped supervisor surface a grader drives.
// It is exactly the path normal user actions take — graders get no
// privileged shortcut, and the handle cannot address other sessions.
// *supervisor.SessionClient implements it.
type Supervisor interface {
	FSRead(ctx context.Context, path string) (*supervisor.ReadResult, error)
	FSList(ctx context.Context, path string) (*supervisor.ListResult, error)
	Build(ctx context.Context, contextPath, dockerfilePath, imageTag string) (*supervisor.BuildResult, error)
	Run(ctx context.Context, image string, ports []supervisor.PortBinding, detached, autoRemove bool) (*supervisor.RunResult, error)
	StopRun(ctx context.Context, containerRef string, timeoutSeconds int, remove bool) error
	Exec(ctx context.Context, argv []string, workdir string, timeoutSeconds int) (*supervisor.ExecResult, error)
	ContainerLogs(ctx context.Context, containerRef string) (string, error)
}

// Run carries everything one grading invocation needs.
type Run struct {
	Lab       *labs.Lab
	SessionID string
	Sup       Supervisor
	Logger    *slog.Logger
}

// Handler grades one lab. Implementations are trusted first-party modules.
type Handler interface {
	Evaluate(ctx context.Context, run *Run) (*models.GradeResult, error)
}

// Registry maps grader keys to handlers. The shipped catalog is closed but
// the registry is extensible before serving starts.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]Handler
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Handler)}
}

// NewShippedRegistry returns a registry with the built-in lab graders.
func NewShippedRegistry() *Registry {
	r := NewRegistry()
	r.Register("first-image", &firstImageGrader{})
	r.Register("layer-cache", &layerCacheGrader{})
	r.Register("multi-stage", &multiStageGrader{})
	return r
}

// Register adds a handler under key, replacing any prior handler.
func (r *Registry) Register(key string, h Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[key] = h
}

// Evaluate grades the session's workspace against the lab.
func (r *Registry) Evaluate(ctx context.Context, lab *labs.Lab, sessionID string, sup Supervisor) (*models.GradeResult, error) {
	r.mu.RLock()
	handler, ok := r.handlers[lab.GraderKey]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("no grader registered for key %q", lab.GraderKey)
	}

	run := &Run{
		Lab:       lab,
		SessionID: sessionID,
		Sup:       sup,
		Logger: slog.Default().With(
			"component", "grader",
			"lab", lab.Slug,
			"session_id", sessionID),
	}

	result, err := handler.Evaluate(ctx, run)
	if err != nil {
		return nil, err
	}

	result.Passed = len(result.Failures) == 0
	if result.Failures == nil {
		result.Failures = []models.Failure{}
	}
	return result, nil
}
