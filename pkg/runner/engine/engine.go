// Package engine wraps the container engine: the host Docker API for worker
// container lifecycle, and exec-driven docker CLI calls against the engine
// running inside each worker for builds and runs.
package engine

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/client"
	"github.com/docker/docker/errdefs"
	"github.com/docker/docker/pkg/stdcopy"

	"github.com/codeready-toolchain/dockhand/pkg/apierr"
	"github.com/codeready-toolchain/dockhand/pkg/supervisor"
)

// Engine owns the host Docker client. The client is stateless and shared
// across sessions; per-session ordering is enforced by the API layer's
// session locks, not here.
type Engine struct {
	cli *client.Client
}

// New creates an Engine from the environment (DOCKER_HOST etc.).
func New() (*Engine, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("failed to create docker client: %w", err)
	}
	return &Engine{cli: cli}, nil
}

// NewWithClient wraps an existing Docker client (useful for testing).
func NewWithClient(cli *client.Client) *Engine {
	return &Engine{cli: cli}
}

// Client returns the underlying Docker client.
func (e *Engine) Client() *client.Client { return e.cli }

// Ping checks engine reachability.
func (e *Engine) Ping(ctx context.Context) error {
	_, err := e.cli.Ping(ctx)
	return err
}

// Exec runs argv inside the given container, capturing split stdout and
// stderr and the exit code. A zero timeout falls back to the context's
// deadline alone.
func (e *Engine) Exec(ctx context.Context, containerID string, argv []string, workdir string, env []string, timeout time.Duration) (*supervisor.ExecResult, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	execID, err := e.cli.ContainerExecCreate(ctx, containerID, container.ExecOptions{
		Cmd:          argv,
		WorkingDir:   workdir,
		Env:          env,
		AttachStdout: true,
		AttachStderr: true,
	})
	if err != nil {
		return nil, wrapEngineErr(err)
	}

	attach, err := e.cli.ContainerExecAttach(ctx, execID.ID, container.ExecStartOptions{})
	if err != nil {
		return nil, wrapEngineErr(err)
	}
	defer attach.Close()

	var stdout, stderr bytes.Buffer
	copyDone := make(chan error, 1)
	go func() {
		_, copyErr := stdcopy.StdCopy(&stdout, &stderr, attach.Reader)
		copyDone <- copyErr
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case copyErr := <-copyDone:
		if copyErr != nil {
			return nil, fmt.Errorf("failed to read exec output: %w", copyErr)
		}
	}

	inspect, err := e.cli.ContainerExecInspect(ctx, execID.ID)
	if err != nil {
		return nil, wrapEngineErr(err)
	}

	return &supervisor.ExecResult{
		ExitCode: inspect.ExitCode,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
	}, nil
}

// wrapEngineErr maps Docker API errors to the taxonomy.
func wrapEngineErr(err error) error {
	if err == nil {
		return nil
	}
	if errdefs.IsNotFound(err) {
		return apierr.Wrap(apierr.CodeWorkerMissing, "the worker container is gone", err)
	}
	return apierr.Wrap(apierr.CodeEngineError, "container engine call failed", err)
}
