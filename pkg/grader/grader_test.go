package grader

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/dockhand/pkg/apierr"
	"github.com/codeready-toolchain/dockhand/pkg/labs"
	"github.com/codeready-toolchain/dockhand/pkg/supervisor"
)

// fakeWorkspace implements Supervisor over an in-memory file map and
// scripted build/run/probe outcomes.
type fakeWorkspace struct {
	files map[string]string

	buildSuccess bool
	buildMetrics *supervisor.BuildMetrics
	buildHint    string

	probeHealthy bool
	probeBody    string

	stoppedContainers []string
}

func newFakeWorkspace(files map[string]string) *fakeWorkspace {
	return &fakeWorkspace{
		files:        files,
		buildSuccess: true,
		buildMetrics: &supervisor.BuildMetrics{
			ElapsedSeconds: 4.2,
			ImageSizeMB:    120,
			LayerCount:     6,
			CacheHits:      2,
		},
		probeHealthy: true,
		probeBody:    `{"status":"ok"}`,
	}
}

func (f *fakeWorkspace) FSRead(_ context.Context, path string) (*supervisor.ReadResult, error) {
	content, ok := f.files[path]
	if !ok {
		return nil, apierr.Newf(apierr.CodeFileNotFound, "%s does not exist", path)
	}
	return &supervisor.ReadResult{
		ContentB64: base64.StdEncoding.EncodeToString([]byte(content)),
	}, nil
}

func (f *fakeWorkspace) FSList(_ context.Context, _ string) (*supervisor.ListResult, error) {
	return &supervisor.ListResult{Exists: true, IsDir: true}, nil
}

func (f *fakeWorkspace) Build(_ context.Context, _, _, imageTag string) (*supervisor.BuildResult, error) {
	result := &supervisor.BuildResult{
		Success:  f.buildSuccess,
		ImageTag: imageTag,
		Logs:     []string{"Step 1/4 : FROM python:3.12-slim", "Successfully built"},
		Hint:     f.buildHint,
	}
	if f.buildSuccess {
		result.Metrics = f.buildMetrics
	}
	return result, nil
}

func (f *fakeWorkspace) Run(_ context.Context, _ string, _ []supervisor.PortBinding, _, _ bool) (*supervisor.RunResult, error) {
	return &supervisor.RunResult{ContainerRef: "probe-123"}, nil
}

func (f *fakeWorkspace) StopRun(_ context.Context, containerRef string, _ int, _ bool) error {
	f.stoppedContainers = append(f.stoppedContainers, containerRef)
	return nil
}

func (f *fakeWorkspace) Exec(_ context.Context, _ []string, _ string, _ int) (*supervisor.ExecResult, error) {
	if f.probeHealthy {
		return &supervisor.ExecResult{ExitCode: 0, Stdout: f.probeBody}, nil
	}
	return &supervisor.ExecResult{ExitCode: 1, Stderr: "connection refused"}, nil
}

func (f *fakeWorkspace) ContainerLogs(_ context.Context, _ string) (string, error) {
	return "uvicorn running on 0.0.0.0:8000", nil
}

type gradeOutcome struct {
	Passed  bool
	Codes   []string
	Metrics map[string]interface{}
	Notes   map[string]interface{}
	Stops   []string
}

func evaluate(t *testing.T, slug string, fake *fakeWorkspace) gradeOutcome {
	t.Helper()

	catalog := labs.NewShippedCatalog(".")
	lab, ok := catalog.Get(slug)
	require.True(t, ok)

	registry := NewShippedRegistry()
	result, err := registry.Evaluate(context.Background(), lab, "sess-1234567890", fake)
	require.NoError(t, err)

	codes := make([]string, 0, len(result.Failures))
	for _, f := range result.Failures {
		codes = append(codes, f.Code)
	}
	return gradeOutcome{result.Passed, codes, result.Metrics, result.Notes, fake.stoppedContainers}
}

const goodFirstImageDockerfile = `FROM python:3.12-slim
WORKDIR /app
COPY requirements.txt .
RUN pip install --no-cache-dir -r requirements.txt
COPY . .
CMD ["uvicorn", "app:app", "--host", "0.0.0.0", "--port", "8000"]
`

func firstImageFiles() map[string]string {
	return map[string]string{
		"Dockerfile":       goodFirstImageDockerfile,
		"requirements.txt": "fastapi\nuvicorn\n",
		".dockerignore":    "__pycache__\nvenv\n.git\n",
	}
}

func TestFirstImageGrader(t *testing.T) {
	t.Run("happy path passes with metrics", func(t *testing.T) {
		got := evaluate(t, "first-image", newFakeWorkspace(firstImageFiles()))
		assert.True(t, got.Passed)
		assert.Empty(t, got.Codes)

		build := got.Metrics["build"].(map[string]interface{})
		assert.Equal(t, 120.0, build["image_size_mb"])
		assert.Equal(t, 2, build["cache_hits"])
		// The probe container is always cleaned up.
		assert.Equal(t, []string{"probe-123"}, got.Stops)
	})

	t.Run("missing dockerignore", func(t *testing.T) {
		files := firstImageFiles()
		delete(files, ".dockerignore")
		got := evaluate(t, "first-image", newFakeWorkspace(files))
		assert.False(t, got.Passed)
		assert.Equal(t, []string{"dockerignore_missing"}, got.Codes)
	})

	t.Run("dockerignore missing entries", func(t *testing.T) {
		files := firstImageFiles()
		files[".dockerignore"] = ".git\n"
		got := evaluate(t, "first-image", newFakeWorkspace(files))
		assert.Equal(t, []string{"dockerignore_incomplete", "dockerignore_incomplete"}, got.Codes)
	})

	t.Run("static failures skip the build", func(t *testing.T) {
		files := firstImageFiles()
		delete(files, ".dockerignore")
		got := evaluate(t, "first-image", newFakeWorkspace(files))
		assert.NotContains(t, got.Notes, "build_logs")
	})

	t.Run("build failure records the hint and logs", func(t *testing.T) {
		fake := newFakeWorkspace(firstImageFiles())
		fake.buildSuccess = false
		fake.buildHint = "unknown instruction: FORM"
		got := evaluate(t, "first-image", fake)
		assert.Equal(t, []string{"docker_build_failed"}, got.Codes)
		assert.Contains(t, got.Notes, "build_logs")
	})

	t.Run("unhealthy container fails the healthcheck", func(t *testing.T) {
		fake := newFakeWorkspace(firstImageFiles())
		fake.probeHealthy = false
		got := evaluate(t, "first-image", fake)
		assert.Equal(t, []string{"healthcheck_failed"}, got.Codes)
		assert.Contains(t, got.Notes, "runtime_logs")
		assert.Equal(t, []string{"probe-123"}, got.Stops)
	})

	t.Run("non-JSON health body fails", func(t *testing.T) {
		fake := newFakeWorkspace(firstImageFiles())
		fake.probeBody = "OK"
		got := evaluate(t, "first-image", fake)
		assert.Equal(t, []string{"invalid_health_response"}, got.Codes)
	})
}

func TestLayerCacheGrader(t *testing.T) {
	files := func(dockerfile string) map[string]string {
		return map[string]string{"Dockerfile": dockerfile}
	}

	t.Run("correct ordering passes", func(t *testing.T) {
		got := evaluate(t, "layer-cache", newFakeWorkspace(files(goodFirstImageDockerfile)))
		assert.True(t, got.Passed)
	})

	t.Run("source copy before manifest copy", func(t *testing.T) {
		got := evaluate(t, "layer-cache", newFakeWorkspace(files(`FROM python:3.12-slim
COPY . .
COPY requirements.txt .
RUN pip install --no-cache-dir -r requirements.txt
`)))
		assert.Contains(t, got.Codes, "dependency_manifest_after_source_copy")
	})

	t.Run("install after source copy", func(t *testing.T) {
		got := evaluate(t, "layer-cache", newFakeWorkspace(files(`FROM python:3.12-slim
COPY requirements.txt .
COPY . .
RUN pip install --no-cache-dir -r requirements.txt
`)))
		assert.Equal(t, []string{"dependency_install_before_source_copy"}, got.Codes)
	})

	t.Run("missing no-cache flag", func(t *testing.T) {
		got := evaluate(t, "layer-cache", newFakeWorkspace(files(`FROM python:3.12-slim
COPY requirements.txt .
RUN pip install -r requirements.txt
COPY . .
`)))
		assert.Equal(t, []string{"pip_cache_flag_missing"}, got.Codes)
	})

	t.Run("no manifest copy at all", func(t *testing.T) {
		got := evaluate(t, "layer-cache", newFakeWorkspace(files(`FROM python:3.12-slim
COPY . .
RUN pip install --no-cache-dir -r requirements.txt
`)))
		assert.Contains(t, got.Codes, "dependency_manifest_copy_missing")
	})
}

const goodMultiStageDockerfile = `FROM golang:1.25 AS builder
WORKDIR /src
COPY go.mod .
RUN go mod download
COPY . .
RUN CGO_ENABLED=0 go build -o /out/server .

FROM alpine:3.20
COPY --from=builder /out/server /usr/local/bin/server
CMD ["server"]
`

func TestMultiStageGrader(t *testing.T) {
	files := func(dockerfile string) map[string]string {
		return map[string]string{"Dockerfile": dockerfile}
	}

	t.Run("happy path passes", func(t *testing.T) {
		got := evaluate(t, "multi-stage", newFakeWorkspace(files(goodMultiStageDockerfile)))
		assert.True(t, got.Passed)
	})

	t.Run("single stage", func(t *testing.T) {
		got := evaluate(t, "multi-stage", newFakeWorkspace(files(goodFirstImageDockerfile)))
		assert.Contains(t, got.Codes, "single_stage_build")
	})

	t.Run("builder without alias", func(t *testing.T) {
		got := evaluate(t, "multi-stage", newFakeWorkspace(files(`FROM golang:1.25
RUN go build -o /out/server .
FROM alpine:3.20
CMD ["server"]
`)))
		assert.Contains(t, got.Codes, "builder_stage_alias_missing")
	})

	t.Run("no copy --from", func(t *testing.T) {
		got := evaluate(t, "multi-stage", newFakeWorkspace(files(`FROM golang:1.25 AS builder
RUN go build -o /out/server .
FROM alpine:3.20
COPY server /usr/local/bin/server
`)))
		assert.Contains(t, got.Codes, "copy_from_builder_missing")
	})

	t.Run("image over the ceiling", func(t *testing.T) {
		fake := newFakeWorkspace(files(goodMultiStageDockerfile))
		fake.buildMetrics.ImageSizeMB = 812
		got := evaluate(t, "multi-stage", fake)
		assert.Equal(t, []string{"image_too_large"}, got.Codes)
	})
}

func TestRegistryUnknownLab(t *testing.T) {
	registry := NewShippedRegistry()
	lab := &labs.Lab{Slug: "mystery", GraderKey: "mystery"}
	_, err := registry.Evaluate(context.Background(), lab, "s", newFakeWorkspace(nil))
	require.Error(t, err)
}
