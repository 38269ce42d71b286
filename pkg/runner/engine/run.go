package engine

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/codeready-toolchain/dockhand/pkg/apierr"
	"github.com/codeready-toolchain/dockhand/pkg/supervisor"
)

// runLabel marks containers the supervisor started inside a worker, so
// they can be found and removed during cleanup.
const runLabel = "dockhand.run=true"

// Run starts a container from a built image inside the worker. Detached
// runs return the container ref; foreground runs return combined output.
// Port bindings are host-side within the worker's network namespace only.
func (e *Engine) Run(ctx context.Context, containerID string, req supervisor.RunRequest, timeout time.Duration) (*supervisor.RunResult, error) {
	argv := []string{"docker", "run", "--label", runLabel}
	if req.Detached {
		argv = append(argv, "-d")
	}
	if req.AutoRemove {
		argv = append(argv, "--rm")
	}
	for _, p := range req.Ports {
		argv = append(argv, "-p", strconv.Itoa(p.HostPort)+":"+strconv.Itoa(p.ContainerPort))
	}
	argv = append(argv, req.Image)

	exec, err := e.Exec(ctx, containerID, argv, "", nil, timeout)
	if err != nil {
		return nil, err
	}
	if exec.ExitCode != 0 {
		return nil, apierr.Newf(apierr.CodeEngineError, "docker run failed: %s", lastNonEmptyLine(exec.Stderr))
	}

	if req.Detached {
		return &supervisor.RunResult{
			ContainerRef: strings.TrimSpace(exec.Stdout),
		}, nil
	}
	return &supervisor.RunResult{
		Logs: exec.Stdout + exec.Stderr,
	}, nil
}

// StopRun stops (and optionally removes) a run container. Idempotent: a
// container that is already gone is a success.
func (e *Engine) StopRun(ctx context.Context, containerID string, req supervisor.StopRunRequest) error {
	timeout := req.TimeoutSeconds
	if timeout <= 0 {
		timeout = 5
	}

	stop, err := e.Exec(ctx, containerID,
		[]string{"docker", "stop", "-t", strconv.Itoa(timeout), req.ContainerRef},
		"", nil, time.Duration(timeout+30)*time.Second)
	if err != nil {
		return err
	}
	if stop.ExitCode != 0 && !isNoSuchContainer(stop.Stderr) {
		return apierr.Newf(apierr.CodeEngineError, "docker stop failed: %s", lastNonEmptyLine(stop.Stderr))
	}

	if !req.Remove {
		return nil
	}

	rm, err := e.Exec(ctx, containerID,
		[]string{"docker", "rm", "-f", req.ContainerRef},
		"", nil, 30*time.Second)
	if err != nil {
		return err
	}
	if rm.ExitCode != 0 && !isNoSuchContainer(rm.Stderr) {
		return apierr.Newf(apierr.CodeEngineError, "docker rm failed: %s", lastNonEmptyLine(rm.Stderr))
	}
	return nil
}

// RunLogs fetches recent logs from a run container.
func (e *Engine) RunLogs(ctx context.Context, containerID, containerRef string) (string, error) {
	exec, err := e.Exec(ctx, containerID,
		[]string{"docker", "logs", "--tail", "500", containerRef},
		"", nil, 30*time.Second)
	if err != nil {
		return "", err
	}
	if exec.ExitCode != 0 {
		return "", fmt.Errorf("docker logs failed: %s", lastNonEmptyLine(exec.Stderr))
	}
	return exec.Stdout + exec.Stderr, nil
}

func isNoSuchContainer(stderr string) bool {
	return strings.Contains(stderr, "No such container")
}
