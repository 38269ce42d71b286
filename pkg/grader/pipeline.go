package grader

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/codeready-toolchain/dockhand/pkg/apierr"
	"github.com/codeready-toolchain/dockhand/pkg/models"
	"github.com/codeready-toolchain/dockhand/pkg/supervisor"
)

// Stable failure codes shared across labs. Lab-specific codes live next to
// their grader. Renaming any of these breaks stored attempt history.
const (
	CodeFileMissing       = "required_file_missing"
	CodeDockerBuildFailed = "docker_build_failed"
	CodeContainerStart    = "container_start_failed"
	CodeHealthcheckFailed = "healthcheck_failed"
	CodeInvalidHealthBody = "invalid_health_response"
	CodeImageTooLarge     = "image_too_large"
)

// probeAttempts is how many times in total the health probe is tried,
// with exponential backoff between tries, before giving up.
const probeAttempts = 10

// probeBaseDelay is the first backoff step; each retry doubles it, capped
// at probeMaxDelay.
const (
	probeBaseDelay = 250 * time.Millisecond
	probeMaxDelay  = 4 * time.Second
)

// readWorkspaceFile reads one workspace file, distinguishing "absent" from
// infrastructure failure.
func readWorkspaceFile(ctx context.Context, sup Supervisor, path string) ([]byte, bool, error) {
	res, err := sup.FSRead(ctx, path)
	if err != nil {
		if apierr.Is(err, apierr.CodeFileNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	data, err := base64.StdEncoding.DecodeString(res.ContentB64)
	if err != nil {
		return nil, false, fmt.Errorf("workspace returned undecodable content for %s: %w", path, err)
	}
	return data, true, nil
}

// requireFiles reads every named file, producing one ordered failure per
// missing file.
func requireFiles(ctx context.Context, sup Supervisor, paths ...string) (map[string][]byte, []models.Failure, error) {
	files := make(map[string][]byte, len(paths))
	var failures []models.Failure
	for _, p := range paths {
		data, exists, err := readWorkspaceFile(ctx, sup, p)
		if err != nil {
			return nil, nil, err
		}
		if !exists {
			failures = append(failures, models.Failure{
				Code:    CodeFileMissing,
				Message: fmt.Sprintf("%s is missing from the workspace", p),
				Hint:    fmt.Sprintf("Create %s in the workspace root before submitting.", p),
			})
			continue
		}
		files[p] = data
	}
	return files, failures, nil
}

// buildImage runs the build step, storing the full build log in
// notes["build_logs"] for every build, metrics into result.Metrics under
// "build" on success, and a docker_build_failed entry on failure.
func buildImage(ctx context.Context, run *Run, result *models.GradeResult) (*supervisor.BuildResult, bool, error) {
	imageTag := fmt.Sprintf("lab-%s:%s", run.Lab.Slug, shortID(run.SessionID))
	build, err := run.Sup.Build(ctx, ".", "Dockerfile", imageTag)
	if err != nil {
		return nil, false, err
	}

	if result.Notes == nil {
		result.Notes = map[string]interface{}{}
	}
	result.Notes["build_logs"] = strings.Join(build.Logs, "\n")

	if !build.Success {
		hint := build.Hint
		if hint == "" {
			hint = "Inspect the build logs for the failing step."
		}
		result.Failures = append(result.Failures, models.Failure{
			Code:    CodeDockerBuildFailed,
			Message: "docker build failed",
			Hint:    hint,
		})
		return build, false, nil
	}

	if build.Metrics != nil {
		if result.Metrics == nil {
			result.Metrics = map[string]interface{}{}
		}
		layers := make([]interface{}, 0, len(build.Metrics.Layers))
		for _, l := range build.Metrics.Layers {
			layers = append(layers, map[string]interface{}{
				"id":         l.ID,
				"created_by": l.CreatedBy,
				"size_mb":    l.SizeMB,
			})
		}
		result.Metrics["build"] = map[string]interface{}{
			"elapsed_seconds": build.Metrics.ElapsedSeconds,
			"image_size_mb":   build.Metrics.ImageSizeMB,
			"layer_count":     build.Metrics.LayerCount,
			"cache_hits":      build.Metrics.CacheHits,
			"layers":          layers,
		}
	}

	return build, true, nil
}

// probeResult is the outcome of probeHealth. failed means a failure entry
// was already recorded (container would not start), so callers skip their
// own healthcheck failure.
type probeResult struct {
	ok       bool
	failed   bool
	body     string
	attempts int
}

// probeHealth starts the image detached (auto-remove off so logs survive),
// probes GET /health from inside the worker with exponential backoff, and
// always stops and removes the container before returning. Runtime logs are
// attached to result.Notes.
func probeHealth(ctx context.Context, run *Run, image string, result *models.GradeResult) (probeResult, error) {
	port := run.Lab.Port
	runRes, err := run.Sup.Run(ctx, image, []supervisor.PortBinding{
		{ContainerPort: port, HostPort: port},
	}, true, false)
	if err != nil {
		if apierr.Is(err, apierr.CodeEngineError) {
			// The image built but the engine could not start it — a
			// grading outcome, not an infrastructure failure.
			result.Failures = append(result.Failures, models.Failure{
				Code:    CodeContainerStart,
				Message: "the built image failed to start",
				Hint:    "Check the CMD/ENTRYPOINT of your final stage.",
			})
			return probeResult{failed: true}, nil
		}
		return probeResult{}, err
	}

	defer func() {
		// Cleanup must happen even when the probe or the caller's context
		// failed; use a fresh deadline.
		stopCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if stopErr := run.Sup.StopRun(stopCtx, runRes.ContainerRef, 5, true); stopErr != nil {
			run.Logger.Warn("Failed to stop probe container",
				"container_ref", runRes.ContainerRef, "error", stopErr)
		}
	}()

	probe := probeResult{}
	delay := probeBaseDelay
	url := fmt.Sprintf("http://127.0.0.1:%d/health", port)

	for attempt := 1; attempt <= probeAttempts; attempt++ {
		probe.attempts = attempt

		exec, execErr := run.Sup.Exec(ctx, []string{"wget", "-qO-", "-T", "5", url}, "", 5)
		if execErr == nil && exec.ExitCode == 0 {
			probe.ok = true
			probe.body = exec.Stdout
			break
		}

		select {
		case <-ctx.Done():
			attachRuntimeLogs(ctx, run, runRes.ContainerRef, result)
			return probe, ctx.Err()
		case <-time.After(delay):
		}
		if delay *= 2; delay > probeMaxDelay {
			delay = probeMaxDelay
		}
	}

	attachRuntimeLogs(ctx, run, runRes.ContainerRef, result)

	if result.Metrics == nil {
		result.Metrics = map[string]interface{}{}
	}
	result.Metrics["probe"] = map[string]interface{}{
		"attempts": probe.attempts,
	}

	return probe, nil
}

func attachRuntimeLogs(ctx context.Context, run *Run, containerRef string, result *models.GradeResult) {
	logs, err := run.Sup.ContainerLogs(ctx, containerRef)
	if err != nil {
		run.Logger.Warn("Failed to fetch runtime logs", "container_ref", containerRef, "error", err)
		return
	}
	if result.Notes == nil {
		result.Notes = map[string]interface{}{}
	}
	result.Notes["runtime_logs"] = logs
}

func shortID(id string) string {
	id = strings.ReplaceAll(id, "-", "")
	if len(id) > 12 {
		return id[:12]
	}
	return id
}
