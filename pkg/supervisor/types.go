// Package supervisor provides the typed HTTP client the orchestrator and
// grader use to reach the supervisor, plus the wire types both sides share.
package supervisor

import "time"

// Quotas are the per-worker resource ceilings.
type Quotas struct {
	MemoryBytes int64 `json:"memory_bytes"`
	NanoCPUs    int64 `json:"nano_cpus"`
	PidsLimit   int64 `json:"pids_limit"`
}

// StartWorkerRequest asks the supervisor to create one worker container.
type StartWorkerRequest struct {
	SessionID  string `json:"session_id"`
	TTLSeconds int    `json:"ttl_seconds"`
	Quotas     Quotas `json:"quotas"`
	// SeedLab selects the starter tree copied into the workspace; empty
	// means an empty workspace.
	SeedLab string `json:"seed_lab,omitempty"`
}

// StartWorkerResponse carries the supervisor-assigned worker handle.
type StartWorkerResponse struct {
	WorkerRef string `json:"worker_ref"`
}

// BuildRequest asks the worker's engine to build an image.
type BuildRequest struct {
	SessionID      string `json:"session_id"`
	ContextPath    string `json:"context_path"`
	DockerfilePath string `json:"dockerfile_path"`
	ImageTag       string `json:"image_tag"`
}

// Layer describes one image layer of a successful build.
type Layer struct {
	ID        string  `json:"id"`
	CreatedBy string  `json:"created_by"`
	SizeMB    float64 `json:"size_mb"`
}

// BuildMetrics are computed from a successful build by inspecting the image.
type BuildMetrics struct {
	ElapsedSeconds float64 `json:"elapsed_seconds"`
	ImageSizeMB    float64 `json:"image_size_mb"`
	LayerCount     int     `json:"layer_count"`
	Layers         []Layer `json:"layers"`
	CacheHits      int     `json:"cache_hits"`
}

// BuildResult is the outcome of a build. A failed build is a legitimate
// result (HTTP 200), not a transport error: Success is false, Hint carries
// a best-effort cause derived from the last non-empty error line.
type BuildResult struct {
	Success  bool          `json:"success"`
	ImageTag string        `json:"image_tag"`
	Logs     []string      `json:"logs"`
	Metrics  *BuildMetrics `json:"metrics,omitempty"`
	Hint     string        `json:"hint,omitempty"`
}

// PortBinding exposes one container port on the worker's host side.
type PortBinding struct {
	ContainerPort int `json:"container_port"`
	HostPort      int `json:"host_port"`
}

// RunRequest starts a container from a previously built image.
type RunRequest struct {
	SessionID  string        `json:"session_id"`
	Image      string        `json:"image"`
	Ports      []PortBinding `json:"ports,omitempty"`
	Detached   bool          `json:"detached"`
	AutoRemove bool          `json:"auto_remove"`
}

// RunResult identifies the started container.
type RunResult struct {
	ContainerRef string `json:"container_ref"`
	Logs         string `json:"logs,omitempty"`
}

// StopRunRequest stops (and optionally removes) a run container.
type StopRunRequest struct {
	SessionID      string `json:"session_id"`
	ContainerRef   string `json:"container_ref"`
	TimeoutSeconds int    `json:"timeout_seconds"`
	Remove         bool   `json:"remove"`
}

// ExecRequest runs argv inside the worker.
type ExecRequest struct {
	SessionID      string   `json:"session_id"`
	Argv           []string `json:"argv"`
	Workdir        string   `json:"workdir,omitempty"`
	TimeoutSeconds int      `json:"timeout_seconds,omitempty"`
}

// ExecResult carries the exec outcome with split output streams.
type ExecResult struct {
	ExitCode int    `json:"exit_code"`
	Stdout   string `json:"stdout"`
	Stderr   string `json:"stderr"`
}

// FileEntry is workspace file metadata.
type FileEntry struct {
	Name       string    `json:"name"`
	Path       string    `json:"path"`
	IsDir      bool      `json:"is_dir"`
	Size       int64     `json:"size"`
	ModifiedAt time.Time `json:"modified_at"`
}

// ListResult is returned by fs_list.
type ListResult struct {
	Entries []FileEntry `json:"entries"`
	Exists  bool        `json:"exists"`
	IsDir   bool        `json:"is_dir"`
}

// ReadResult carries byte-exact file content, base64-encoded on the wire.
type ReadResult struct {
	ContentB64 string `json:"content_b64"`
}

// WriteRequest writes byte-exact content to a workspace path.
type WriteRequest struct {
	SessionID  string `json:"session_id"`
	Path       string `json:"path"`
	ContentB64 string `json:"content_b64"`
}

// CreateRequest creates a file or directory.
type CreateRequest struct {
	SessionID  string `json:"session_id"`
	Path       string `json:"path"`
	Kind       string `json:"kind"` // "file" or "directory"
	ContentB64 string `json:"content_b64,omitempty"`
}

// RenameRequest renames a workspace path.
type RenameRequest struct {
	SessionID string `json:"session_id"`
	Path      string `json:"path"`
	NewPath   string `json:"new_path"`
}

// DeleteRequest deletes a workspace path (recursively for directories).
type DeleteRequest struct {
	SessionID string `json:"session_id"`
	Path      string `json:"path"`
}

// ErrorBody is the supervisor's error envelope.
type ErrorBody struct {
	Detail string `json:"detail"`
	Code   string `json:"code,omitempty"`
}
