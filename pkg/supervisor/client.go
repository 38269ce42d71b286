package supervisor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/codeready-toolchain/dockhand/pkg/apierr"
)

// transientRetries is how many times a transient supervisor failure is
// retried (with jittered backoff) before surfacing.
const transientRetries = 2

// Client is the orchestrator's typed HTTP client for the supervisor.
type Client struct {
	baseURL string
	httpc   *http.Client
	logger  *slog.Logger
}

// NewClient creates a supervisor client. timeout bounds a single HTTP
// exchange; long operations (build) pass their own deadline via context.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
		logger:  slog.Default().With("component", "supervisor-client"),
	}
}

// ForSession returns a view of this client bound to a single session.
// Graders receive this scoped handle so a judge module cannot address
// workers belonging to other sessions.
func (c *Client) ForSession(sessionID string) *SessionClient {
	return &SessionClient{c: c, sessionID: sessionID}
}

// StartWorker creates a worker container for the session.
func (c *Client) StartWorker(ctx context.Context, req StartWorkerRequest) (*StartWorkerResponse, error) {
	var resp StartWorkerResponse
	if err := c.doJSON(ctx, http.MethodPost, "/workers/start", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// StopWorker terminates the session's worker. Idempotent: a missing worker
// is a success from the caller's point of view, but the worker_missing code
// is surfaced so the orchestrator can reconcile session state.
func (c *Client) StopWorker(ctx context.Context, sessionID string) error {
	return c.doJSON(ctx, http.MethodPost, "/workers/"+url.PathEscape(sessionID)+"/stop", nil, nil)
}

// Build builds an image inside the worker and returns logs plus metrics.
func (c *Client) Build(ctx context.Context, req BuildRequest) (*BuildResult, error) {
	var resp BuildResult
	if err := c.doJSON(ctx, http.MethodPost, "/workers/"+url.PathEscape(req.SessionID)+"/build", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Run starts a container from a built image.
func (c *Client) Run(ctx context.Context, req RunRequest) (*RunResult, error) {
	var resp RunResult
	if err := c.doJSON(ctx, http.MethodPost, "/workers/"+url.PathEscape(req.SessionID)+"/run", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// StopRun stops (and optionally removes) a run container.
func (c *Client) StopRun(ctx context.Context, req StopRunRequest) error {
	return c.doJSON(ctx, http.MethodPost, "/workers/"+url.PathEscape(req.SessionID)+"/stop-run", req, nil)
}

// Exec runs argv inside the worker.
func (c *Client) Exec(ctx context.Context, req ExecRequest) (*ExecResult, error) {
	var resp ExecResult
	if err := c.doJSON(ctx, http.MethodPost, "/workers/"+url.PathEscape(req.SessionID)+"/exec", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ContainerLogs fetches logs from a run container.
func (c *Client) ContainerLogs(ctx context.Context, sessionID, containerRef string) (string, error) {
	var resp struct {
		Logs string `json:"logs"`
	}
	path := "/workers/" + url.PathEscape(sessionID) + "/containers/" + url.PathEscape(containerRef) + "/logs"
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return "", err
	}
	return resp.Logs, nil
}

// FSList lists a workspace path.
func (c *Client) FSList(ctx context.Context, sessionID, p string) (*ListResult, error) {
	var resp ListResult
	path := "/workers/" + url.PathEscape(sessionID) + "/fs/list?path=" + url.QueryEscape(p)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// FSRead reads a workspace file, byte-exact.
func (c *Client) FSRead(ctx context.Context, sessionID, p string) (*ReadResult, error) {
	var resp ReadResult
	path := "/workers/" + url.PathEscape(sessionID) + "/fs/read?path=" + url.QueryEscape(p)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// FSWrite writes a workspace file, byte-exact and atomic.
func (c *Client) FSWrite(ctx context.Context, req WriteRequest) error {
	return c.doJSON(ctx, http.MethodPost, "/workers/"+url.PathEscape(req.SessionID)+"/fs/write", req, nil)
}

// FSCreate creates a file or directory.
func (c *Client) FSCreate(ctx context.Context, req CreateRequest) error {
	return c.doJSON(ctx, http.MethodPost, "/workers/"+url.PathEscape(req.SessionID)+"/fs/create", req, nil)
}

// FSRename renames a workspace path.
func (c *Client) FSRename(ctx context.Context, req RenameRequest) error {
	return c.doJSON(ctx, http.MethodPost, "/workers/"+url.PathEscape(req.SessionID)+"/fs/rename", req, nil)
}

// FSDelete deletes a workspace path.
func (c *Client) FSDelete(ctx context.Context, req DeleteRequest) error {
	return c.doJSON(ctx, http.MethodPost, "/workers/"+url.PathEscape(req.SessionID)+"/fs/delete", req, nil)
}

// TerminalURL returns the ws:// URL for the session's PTY endpoint.
func (c *Client) TerminalURL(sessionID, shell string) string {
	u := strings.Replace(c.baseURL, "http", "ws", 1) +
		"/workers/" + url.PathEscape(sessionID) + "/terminal"
	if shell != "" {
		u += "?shell=" + url.QueryEscape(shell)
	}
	return u
}

// Healthz checks supervisor reachability.
func (c *Client) Healthz(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodGet, "/healthz", nil, nil)
}

// doJSON performs one JSON exchange. Transport errors and 5xx responses
// without a taxonomy code are treated as transient and retried with
// jittered exponential backoff; taxonomy errors surface immediately.
func (c *Client) doJSON(ctx context.Context, method, path string, reqBody, respBody interface{}) error {
	var encoded []byte
	if reqBody != nil {
		var err error
		if encoded, err = json.Marshal(reqBody); err != nil {
			return fmt.Errorf("failed to encode supervisor request: %w", err)
		}
	}

	op := func() error {
		var body io.Reader
		if encoded != nil {
			body = bytes.NewReader(encoded)
		}
		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
		if err != nil {
			return backoff.Permanent(err)
		}
		if encoded != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.httpc.Do(req)
		if err != nil {
			// Transport failure — retryable.
			return apierr.Wrap(apierr.CodeSupervisorDown, "supervisor unreachable", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			if respBody == nil {
				_, _ = io.Copy(io.Discard, resp.Body)
				return nil
			}
			if err := json.NewDecoder(resp.Body).Decode(respBody); err != nil {
				return backoff.Permanent(fmt.Errorf("failed to decode supervisor response: %w", err))
			}
			return nil
		}

		var errBody ErrorBody
		_ = json.NewDecoder(resp.Body).Decode(&errBody)
		if errBody.Code != "" {
			// A taxonomy error is a definitive answer, not a transient fault.
			return backoff.Permanent(apierr.New(errBody.Code, errBody.Detail))
		}
		if resp.StatusCode >= 500 {
			return apierr.Newf(apierr.CodeSupervisorDown, "supervisor returned %d", resp.StatusCode)
		}
		return backoff.Permanent(apierr.Newf(apierr.CodeSupervisorDown, "supervisor returned %d: %s", resp.StatusCode, errBody.Detail))
	}

	bo := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), transientRetries), ctx)
	err := backoff.Retry(op, bo)
	if err != nil {
		c.logger.Warn("Supervisor call failed", "method", method, "path", path, "error", err)
	}
	return err
}
