package services

import (
	"context"
	stdsql "database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/codeready-toolchain/dockhand/ent"
	"github.com/codeready-toolchain/dockhand/pkg/labs"
	"github.com/codeready-toolchain/dockhand/pkg/supervisor"
)

// newTestEnt opens an isolated in-memory store with the schema created.
func newTestEnt(t *testing.T) *ent.Client {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(ON)", t.Name())
	db, err := stdsql.Open("sqlite", dsn)
	require.NoError(t, err)
	db.SetMaxOpenConns(1)

	client := ent.NewClient(ent.Driver(entsql.OpenDB(dialect.SQLite, db)))
	require.NoError(t, client.Schema.Create(context.Background()))

	t.Cleanup(func() {
		_ = client.Close()
	})
	return client
}

// fakeSupervisor is an httptest server speaking the supervisor wire
// contract, with counters the tests assert on.
type fakeSupervisor struct {
	*httptest.Server

	starts    atomic.Int64
	stops     atomic.Int64
	failStart atomic.Bool
	capacity  atomic.Bool
}

func newFakeSupervisor(t *testing.T) *fakeSupervisor {
	t.Helper()

	f := &fakeSupervisor{}
	mux := http.NewServeMux()

	mux.HandleFunc("POST /workers/start", func(w http.ResponseWriter, r *http.Request) {
		if f.capacity.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"detail": "worker capacity reached", "code": "capacity_exhausted",
			})
			return
		}
		if f.failStart.Load() {
			w.WriteHeader(http.StatusBadGateway)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"detail": "engine down", "code": "engine_error",
			})
			return
		}
		f.starts.Add(1)

		var req supervisor.StartWorkerRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		_ = json.NewEncoder(w).Encode(supervisor.StartWorkerResponse{
			WorkerRef: "worker-" + req.SessionID[:8],
		})
	})

	mux.HandleFunc("POST /workers/{session}/stop", func(w http.ResponseWriter, _ *http.Request) {
		f.stops.Add(1)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "stopped"})
	})

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
	})

	f.Server = httptest.NewServer(mux)
	t.Cleanup(f.Server.Close)
	return f
}

func newTestCatalog() *labs.Catalog {
	return labs.NewShippedCatalog(".")
}

func newTestSessionService(t *testing.T, entClient *ent.Client, fake *fakeSupervisor, ttl time.Duration) *SessionService {
	t.Helper()
	supClient := supervisor.NewClient(fake.URL, 5*time.Second)
	return NewSessionService(entClient, supClient, newTestCatalog(), ttl, supervisor.Quotas{})
}

func mustCreateUser(t *testing.T, entClient *ent.Client, id string) {
	t.Helper()
	err := entClient.User.Create().
		SetID(id).
		SetProvider("github").
		SetProviderAccountID("acct-" + id).
		SetEmail(id + "@example.com").
		Exec(context.Background())
	require.NoError(t, err)
}
