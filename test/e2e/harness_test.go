// Package e2e exercises the orchestrator end to end over HTTP: real store,
// real routing and services, with the supervisor replaced by an in-process
// fake that reuses the real workspace sandbox.
package e2e

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/dockhand/pkg/api"
	"github.com/codeready-toolchain/dockhand/pkg/apierr"
	"github.com/codeready-toolchain/dockhand/pkg/config"
	"github.com/codeready-toolchain/dockhand/pkg/database"
	"github.com/codeready-toolchain/dockhand/pkg/grader"
	"github.com/codeready-toolchain/dockhand/pkg/labs"
	"github.com/codeready-toolchain/dockhand/pkg/runner/workspace"
	"github.com/codeready-toolchain/dockhand/pkg/services"
	"github.com/codeready-toolchain/dockhand/pkg/supervisor"
)

const testSecret = "0123456789abcdef0123456789abcdef"

// fakeSupervisor speaks the supervisor wire contract. Worker state is a
// real sandboxed workspace on disk, so path rules are exercised for real;
// builds and probes are scripted.
type fakeSupervisor struct {
	t       *testing.T
	server  *httptest.Server
	dataDir string

	mu         sync.Mutex
	workspaces map[string]*workspace.Workspace
}

func newFakeSupervisor(t *testing.T) *fakeSupervisor {
	t.Helper()

	f := &fakeSupervisor{
		t:          t,
		dataDir:    t.TempDir(),
		workspaces: make(map[string]*workspace.Workspace),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /workers/start", f.handleStart)
	mux.HandleFunc("POST /workers/{session}/stop", f.handleStop)
	mux.HandleFunc("POST /workers/{session}/build", f.handleBuild)
	mux.HandleFunc("POST /workers/{session}/run", f.handleRun)
	mux.HandleFunc("POST /workers/{session}/stop-run", f.handleAck)
	mux.HandleFunc("POST /workers/{session}/exec", f.handleExec)
	mux.HandleFunc("GET /workers/{session}/containers/{ref}/logs", f.handleLogs)
	mux.HandleFunc("GET /workers/{session}/fs/list", f.handleFSList)
	mux.HandleFunc("GET /workers/{session}/fs/read", f.handleFSRead)
	mux.HandleFunc("POST /workers/{session}/fs/write", f.handleFSWrite)
	mux.HandleFunc("POST /workers/{session}/fs/create", f.handleFSCreate)
	mux.HandleFunc("POST /workers/{session}/fs/rename", f.handleFSRename)
	mux.HandleFunc("POST /workers/{session}/fs/delete", f.handleFSDelete)
	mux.HandleFunc("GET /workers/{session}/terminal", f.handleTerminal)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	})

	f.server = httptest.NewServer(mux)
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeSupervisor) ws(sessionID string) (*workspace.Workspace, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	w, ok := f.workspaces[sessionID]
	return w, ok
}

func (f *fakeSupervisor) handleStart(w http.ResponseWriter, r *http.Request) {
	var req supervisor.StartWorkerRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	ws, err := workspace.New(filepath.Join(f.dataDir, req.SessionID), "/workspace")
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}

	f.mu.Lock()
	f.workspaces[req.SessionID] = ws
	f.mu.Unlock()

	writeJSON(w, http.StatusOK, supervisor.StartWorkerResponse{WorkerRef: "w-" + req.SessionID[:8]})
}

func (f *fakeSupervisor) handleStop(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("session")
	f.mu.Lock()
	_, existed := f.workspaces[sessionID]
	delete(f.workspaces, sessionID)
	f.mu.Unlock()

	if !existed {
		writeError(w, http.StatusBadGateway, "worker_missing", "no worker for session")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "stopped"})
}

// handleBuild "builds" by checking the Dockerfile exists and returning
// canned metrics.
func (f *fakeSupervisor) handleBuild(w http.ResponseWriter, r *http.Request) {
	ws, ok := f.ws(r.PathValue("session"))
	if !ok {
		writeError(w, http.StatusBadGateway, "worker_missing", "no worker for session")
		return
	}

	if _, err := ws.Read("Dockerfile"); err != nil {
		writeJSON(w, http.StatusOK, supervisor.BuildResult{
			Success: false,
			Logs:    []string{"unable to prepare context"},
			Hint:    "Dockerfile not found",
		})
		return
	}

	writeJSON(w, http.StatusOK, supervisor.BuildResult{
		Success:  true,
		ImageTag: "lab:latest",
		Logs:     []string{"Step 1/4 : FROM python:3.12-slim", " ---> Using cache", "Successfully built"},
		Metrics: &supervisor.BuildMetrics{
			ElapsedSeconds: 2.5,
			ImageSizeMB:    142,
			LayerCount:     5,
			CacheHits:      1,
		},
	})
}

func (f *fakeSupervisor) handleRun(w http.ResponseWriter, r *http.Request) {
	if _, ok := f.ws(r.PathValue("session")); !ok {
		writeError(w, http.StatusBadGateway, "worker_missing", "no worker for session")
		return
	}
	writeJSON(w, http.StatusOK, supervisor.RunResult{ContainerRef: "probe-1"})
}

func (f *fakeSupervisor) handleExec(w http.ResponseWriter, _ *http.Request) {
	// The grader's health probe.
	writeJSON(w, http.StatusOK, supervisor.ExecResult{ExitCode: 0, Stdout: `{"status":"ok"}`})
}

func (f *fakeSupervisor) handleLogs(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"logs": "listening on 0.0.0.0:8000"})
}

func (f *fakeSupervisor) handleAck(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "stopped"})
}

// handleTerminal is a PTY-like endpoint: binary frames are echoed back
// prefixed with "pty:", resize control frames are acknowledged by echoing
// the new geometry. Lets the proxy tests observe byte-for-byte forwarding.
func (f *fakeSupervisor) handleTerminal(w http.ResponseWriter, r *http.Request) {
	if _, ok := f.ws(r.PathValue("session")); !ok {
		writeError(w, http.StatusBadGateway, "worker_missing", "no worker for session")
		return
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
	if err != nil {
		return
	}
	defer conn.CloseNow()

	ctx := r.Context()
	for {
		typ, data, err := conn.Read(ctx)
		if err != nil {
			return
		}
		switch typ {
		case websocket.MessageBinary:
			if err := conn.Write(ctx, websocket.MessageBinary, append([]byte("pty:"), data...)); err != nil {
				return
			}
		case websocket.MessageText:
			var msg struct {
				Type string `json:"type"`
				Cols int    `json:"cols"`
				Rows int    `json:"rows"`
			}
			if json.Unmarshal(data, &msg) == nil && msg.Type == "resize" {
				reply, _ := json.Marshal(map[string]interface{}{
					"type": "resized", "cols": msg.Cols, "rows": msg.Rows,
				})
				if err := conn.Write(ctx, websocket.MessageText, reply); err != nil {
					return
				}
			}
		}
	}
}

func (f *fakeSupervisor) fsWorkspace(w http.ResponseWriter, sessionID string) *workspace.Workspace {
	ws, ok := f.ws(sessionID)
	if !ok {
		writeError(w, http.StatusBadGateway, "worker_missing", "no worker for session")
		return nil
	}
	return ws
}

func (f *fakeSupervisor) handleFSList(w http.ResponseWriter, r *http.Request) {
	ws := f.fsWorkspace(w, r.PathValue("session"))
	if ws == nil {
		return
	}
	result, err := ws.List(r.URL.Query().Get("path"))
	if err != nil {
		writeWorkspaceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (f *fakeSupervisor) handleFSRead(w http.ResponseWriter, r *http.Request) {
	ws := f.fsWorkspace(w, r.PathValue("session"))
	if ws == nil {
		return
	}
	data, err := ws.Read(r.URL.Query().Get("path"))
	if err != nil {
		writeWorkspaceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, supervisor.ReadResult{ContentB64: b64(data)})
}

func (f *fakeSupervisor) handleFSWrite(w http.ResponseWriter, r *http.Request) {
	ws := f.fsWorkspace(w, r.PathValue("session"))
	if ws == nil {
		return
	}
	var req supervisor.WriteRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	data, err := unb64(req.ContentB64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_path", "bad base64")
		return
	}
	if err := ws.Write(req.Path, data); err != nil {
		writeWorkspaceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (f *fakeSupervisor) handleFSCreate(w http.ResponseWriter, r *http.Request) {
	ws := f.fsWorkspace(w, r.PathValue("session"))
	if ws == nil {
		return
	}
	var req supervisor.CreateRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	data, _ := unb64(req.ContentB64)
	if err := ws.Create(req.Path, req.Kind, data); err != nil {
		writeWorkspaceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (f *fakeSupervisor) handleFSRename(w http.ResponseWriter, r *http.Request) {
	ws := f.fsWorkspace(w, r.PathValue("session"))
	if ws == nil {
		return
	}
	var req supervisor.RenameRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if err := ws.Rename(req.Path, req.NewPath); err != nil {
		writeWorkspaceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (f *fakeSupervisor) handleFSDelete(w http.ResponseWriter, r *http.Request) {
	ws := f.fsWorkspace(w, r.PathValue("session"))
	if ws == nil {
		return
	}
	var req supervisor.DeleteRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if err := ws.Delete(req.Path); err != nil {
		writeWorkspaceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// testEnv is one fully wired orchestrator with its fake supervisor.
type testEnv struct {
	t       *testing.T
	baseURL string
	sup     *fakeSupervisor

	sessionService *services.SessionService
}

// newTestEnv starts an orchestrator on a random port. ttl applies to every
// session it creates.
func newTestEnv(t *testing.T, ttl time.Duration) *testEnv {
	t.Helper()

	sup := newFakeSupervisor(t)

	cfg := &config.Config{
		SupervisorBaseURL:    sup.server.URL,
		SessionTTL:           ttl,
		SweepInterval:        time.Hour, // sweeps are driven explicitly in tests
		TokenSecret:          testSecret,
		TokenTTL:             time.Hour,
		AgentRateLimitPerMin: 3,
		HTTPTimeout:          10 * time.Second,
		AgentTimeout:         5 * time.Second,
		LabsDir:              t.TempDir(),
	}

	dbClient, err := database.NewClient(context.Background(), database.Config{
		Path:        filepath.Join(t.TempDir(), "store.db"),
		BusyTimeout: 5 * time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = dbClient.Close() })

	catalog := labs.NewShippedCatalog(cfg.LabsDir)
	supClient := supervisor.NewClient(cfg.SupervisorBaseURL, cfg.HTTPTimeout)

	userService := services.NewUserService(dbClient.Client, cfg.TokenSecret, cfg.TokenTTL)
	sessionService := services.NewSessionService(dbClient.Client, supClient, catalog, cfg.SessionTTL, supervisor.Quotas{})
	attemptService := services.NewAttemptService(dbClient.Client)
	inspectorService := services.NewInspectorService(attemptService)

	server := api.NewServer(cfg, dbClient,
		userService, sessionService, attemptService, inspectorService,
		catalog, supClient)
	server.SetGraderRegistry(grader.NewShippedRegistry())
	require.NoError(t, server.ValidateWiring())

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = server.StartWithListener(ln) }()
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(ctx)
	})

	return &testEnv{
		t:              t,
		baseURL:        "http://" + ln.Addr().String(),
		sup:            sup,
		sessionService: sessionService,
	}
}

// authenticate returns a bearer token for a fresh user.
func (e *testEnv) authenticate(accountID string) string {
	e.t.Helper()
	var result struct {
		Token string `json:"token"`
	}
	status := e.do("", http.MethodPost, "/auth/oauth/github", map[string]string{
		"provider_account_id": accountID,
		"email":               accountID + "@example.com",
	}, &result)
	require.Equal(e.t, http.StatusOK, status)
	require.NotEmpty(e.t, result.Token)
	return result.Token
}

// do performs one JSON request and decodes the response into out (if
// non-nil), returning the status code.
func (e *testEnv) do(token, method, path string, body, out interface{}) int {
	e.t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(e.t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, e.baseURL+path, reader)
	require.NoError(e.t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(e.t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(e.t, err)
	if out != nil && len(raw) > 0 {
		require.NoError(e.t, json.Unmarshal(raw, out), "body: %s", raw)
	}
	return resp.StatusCode
}

func (e *testEnv) writeFile(token, sessionID, path, content string) {
	e.t.Helper()
	status := e.do(token, http.MethodPost, "/fs/write", map[string]string{
		"session_id":  sessionID,
		"path":        path,
		"content_b64": b64([]byte(content)),
	}, nil)
	require.Equal(e.t, http.StatusNoContent, status)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, code, detail string) {
	writeJSON(w, status, supervisor.ErrorBody{Detail: detail, Code: code})
}

func writeWorkspaceError(w http.ResponseWriter, err error) {
	var taxErr *apierr.Error
	if errors.As(err, &taxErr) {
		writeJSON(w, taxErr.HTTPStatus(), supervisor.ErrorBody{
			Detail: taxErr.Detail, Code: taxErr.Code,
		})
		return
	}
	writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
}

func b64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

func unb64(s string) ([]byte, error) {
	if s == "" {
		return nil, nil
	}
	return base64.StdEncoding.DecodeString(s)
}
