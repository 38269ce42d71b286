package supervisor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/dockhand/pkg/apierr"
)

func TestClientSurfacesTaxonomyErrors(t *testing.T) {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
		_ = json.NewEncoder(w).Encode(ErrorBody{Detail: "worker is gone", Code: "worker_missing"})
	}))
	defer server.Close()

	c := NewClient(server.URL, 5*time.Second)
	err := c.StopWorker(context.Background(), "s1")

	require.Error(t, err)
	assert.True(t, apierr.Is(err, apierr.CodeWorkerMissing))
	// A taxonomy error is definitive — no retries.
	assert.Equal(t, int64(1), calls.Load())
}

func TestClientRetriesTransientFailures(t *testing.T) {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(StartWorkerResponse{WorkerRef: "w-1"})
	}))
	defer server.Close()

	c := NewClient(server.URL, 5*time.Second)
	resp, err := c.StartWorker(context.Background(), StartWorkerRequest{SessionID: "s1"})

	require.NoError(t, err)
	assert.Equal(t, "w-1", resp.WorkerRef)
	assert.Equal(t, int64(3), calls.Load())
}

func TestClientGivesUpAfterTwoRetries(t *testing.T) {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := NewClient(server.URL, 5*time.Second)
	_, err := c.StartWorker(context.Background(), StartWorkerRequest{SessionID: "s1"})

	require.Error(t, err)
	assert.True(t, apierr.Is(err, apierr.CodeSupervisorDown))
	assert.Equal(t, int64(3), calls.Load())
}

func TestClientUnreachableSupervisor(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", 500*time.Millisecond)
	err := c.Healthz(context.Background())

	require.Error(t, err)
	assert.True(t, apierr.Is(err, apierr.CodeSupervisorDown))
}

func TestSessionClientScope(t *testing.T) {
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]string{})
	}))
	defer server.Close()

	scoped := NewClient(server.URL, 5*time.Second).ForSession("sess-1")
	assert.Equal(t, "sess-1", scoped.SessionID())

	_, err := scoped.FSRead(context.Background(), "Dockerfile")
	require.NoError(t, err)
	_, err = scoped.Exec(context.Background(), []string{"true"}, "", 5)
	require.NoError(t, err)

	// Every call is pinned to the bound session's routes.
	for _, p := range paths {
		assert.Contains(t, p, "/workers/sess-1/")
	}
}

func TestTerminalURL(t *testing.T) {
	c := NewClient("http://127.0.0.1:9090", time.Second)
	assert.Equal(t, "ws://127.0.0.1:9090/workers/s1/terminal", c.TerminalURL("s1", ""))
	assert.Equal(t, "ws://127.0.0.1:9090/workers/s1/terminal?shell=%2Fbin%2Fbash", c.TerminalURL("s1", "/bin/bash"))
}
