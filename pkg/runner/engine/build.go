package engine

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/codeready-toolchain/dockhand/pkg/supervisor"
)

// Build runs `docker build` against the engine inside the worker container
// and, on success, inspects the image for size, layer, and cache metrics.
//
// A non-zero build exit is reported in the result, not as an error: the
// caller decides whether a failed build is a grading outcome or a problem.
func (e *Engine) Build(ctx context.Context, containerID, workspaceMount string, req supervisor.BuildRequest, timeout time.Duration) (*supervisor.BuildResult, error) {
	contextPath := path.Join(workspaceMount, path.Clean("/"+req.ContextPath))
	dockerfilePath := path.Join(contextPath, path.Clean("/"+req.DockerfilePath))

	start := time.Now()
	exec, err := e.Exec(ctx, containerID,
		[]string{"docker", "build", "--progress", "plain", "-f", dockerfilePath, "-t", req.ImageTag, contextPath},
		workspaceMount, nil, timeout)
	if err != nil {
		if ctx.Err() != nil || errors.Is(err, context.DeadlineExceeded) {
			// A cancelled build is reported as a failed build with a
			// timeout hint; the engine-side process is best-effort killed
			// by the exec context expiring.
			return &supervisor.BuildResult{
				Success:  false,
				ImageTag: req.ImageTag,
				Logs:     []string{},
				Hint:     "the build exceeded the build timeout and was cancelled",
			}, nil
		}
		return nil, err
	}

	logs := buildLogLines(exec.Stdout, exec.Stderr)
	result := &supervisor.BuildResult{
		Success:  exec.ExitCode == 0,
		ImageTag: req.ImageTag,
		Logs:     logs,
	}

	if !result.Success {
		result.Hint = lastNonEmptyLine(exec.Stderr)
		return result, nil
	}

	metrics, err := e.inspectImage(ctx, containerID, req.ImageTag)
	if err != nil {
		return nil, err
	}
	metrics.ElapsedSeconds = time.Since(start).Seconds()
	metrics.CacheHits = countCacheHits(logs)
	result.Metrics = metrics

	return result, nil
}

// inspectImage reads total size and the per-layer breakdown from the
// worker's engine.
func (e *Engine) inspectImage(ctx context.Context, containerID, imageTag string) (*supervisor.BuildMetrics, error) {
	sizeExec, err := e.Exec(ctx, containerID,
		[]string{"docker", "image", "inspect", "--format", "{{.Size}}", imageTag},
		"", nil, 30*time.Second)
	if err != nil {
		return nil, err
	}
	if sizeExec.ExitCode != 0 {
		return nil, fmt.Errorf("image inspect failed: %s", lastNonEmptyLine(sizeExec.Stderr))
	}
	sizeBytes, err := strconv.ParseInt(strings.TrimSpace(sizeExec.Stdout), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("unparseable image size %q: %w", sizeExec.Stdout, err)
	}

	historyExec, err := e.Exec(ctx, containerID,
		[]string{"docker", "history", "--no-trunc", "--format", "{{.ID}}\t{{.Size}}\t{{.CreatedBy}}", imageTag},
		"", nil, 30*time.Second)
	if err != nil {
		return nil, err
	}

	metrics := &supervisor.BuildMetrics{
		ImageSizeMB: float64(sizeBytes) / (1024 * 1024),
	}
	for _, line := range strings.Split(historyExec.Stdout, "\n") {
		fields := strings.SplitN(line, "\t", 3)
		if len(fields) < 3 {
			continue
		}
		metrics.Layers = append(metrics.Layers, supervisor.Layer{
			ID:        strings.TrimSpace(fields[0]),
			SizeMB:    parseHumanSizeMB(fields[1]),
			CreatedBy: strings.TrimSpace(fields[2]),
		})
	}
	metrics.LayerCount = len(metrics.Layers)
	return metrics, nil
}

// countCacheHits counts build steps resolved from the layer cache. The
// classic builder prints "Using cache"; BuildKit prints "CACHED".
func countCacheHits(logs []string) int {
	hits := 0
	for _, line := range logs {
		if strings.Contains(line, "Using cache") || strings.Contains(line, "CACHED") {
			hits++
		}
	}
	return hits
}

// parseHumanSizeMB parses docker history's human sizes ("12.3MB", "0B").
func parseHumanSizeMB(s string) float64 {
	s = strings.TrimSpace(s)
	for _, unit := range []struct {
		suffix string
		factor float64
	}{
		{"GB", 1024}, {"MB", 1}, {"kB", 1.0 / 1024}, {"KB", 1.0 / 1024}, {"B", 1.0 / (1024 * 1024)},
	} {
		if strings.HasSuffix(s, unit.suffix) {
			n, err := strconv.ParseFloat(strings.TrimSuffix(s, unit.suffix), 64)
			if err != nil {
				return 0
			}
			return n * unit.factor
		}
	}
	return 0
}

func buildLogLines(stdout, stderr string) []string {
	var lines []string
	for _, chunk := range []string{stdout, stderr} {
		for _, line := range strings.Split(chunk, "\n") {
			if strings.TrimSpace(line) != "" {
				lines = append(lines, line)
			}
		}
	}
	if lines == nil {
		lines = []string{}
	}
	return lines
}

func lastNonEmptyLine(s string) string {
	lines := strings.Split(s, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if trimmed := strings.TrimSpace(lines[i]); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
