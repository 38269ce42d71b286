package cleanup

import (
	"context"
	stdsql "database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/codeready-toolchain/dockhand/ent"
	"github.com/codeready-toolchain/dockhand/ent/labsession"
	"github.com/codeready-toolchain/dockhand/pkg/labs"
	"github.com/codeready-toolchain/dockhand/pkg/services"
	"github.com/codeready-toolchain/dockhand/pkg/supervisor"
)

func newSweepFixture(t *testing.T, ttl time.Duration) (*ent.Client, *services.SessionService) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(ON)", t.Name())
	db, err := stdsql.Open("sqlite", dsn)
	require.NoError(t, err)
	db.SetMaxOpenConns(1)

	entClient := ent.NewClient(ent.Driver(entsql.OpenDB(dialect.SQLite, db)))
	require.NoError(t, entClient.Schema.Create(context.Background()))
	t.Cleanup(func() { _ = entClient.Close() })

	mux := http.NewServeMux()
	mux.HandleFunc("POST /workers/start", func(w http.ResponseWriter, r *http.Request) {
		var req supervisor.StartWorkerRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		_ = json.NewEncoder(w).Encode(supervisor.StartWorkerResponse{WorkerRef: "w-" + req.SessionID[:8]})
	})
	mux.HandleFunc("POST /workers/{session}/stop", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "stopped"})
	})
	fake := httptest.NewServer(mux)
	t.Cleanup(fake.Close)

	supClient := supervisor.NewClient(fake.URL, 5*time.Second)
	sessions := services.NewSessionService(entClient, supClient,
		labs.NewShippedCatalog("."), ttl, supervisor.Quotas{})

	require.NoError(t, entClient.User.Create().
		SetID("u1").
		SetProvider("github").
		SetProviderAccountID("1").
		SetEmail("u1@example.com").
		Exec(context.Background()))

	return entClient, sessions
}

func TestSweeperEndsExpiredSessions(t *testing.T) {
	entClient, sessions := newSweepFixture(t, 50*time.Millisecond)

	started, err := sessions.Start(context.Background(), "u1", "first-image")
	require.NoError(t, err)

	svc := NewService(20*time.Millisecond, sessions)
	svc.Start(context.Background())
	defer svc.Stop()

	require.Eventually(t, func() bool {
		row, err := entClient.LabSession.Query().
			Where(labsession.IDEQ(started.Session.SessionID)).
			Only(context.Background())
		return err == nil && row.EndedAt != nil
	}, 2*time.Second, 20*time.Millisecond)

	// ended_at = expires_at, never "now".
	row, err := entClient.LabSession.Query().
		Where(labsession.IDEQ(started.Session.SessionID)).
		Only(context.Background())
	require.NoError(t, err)
	assert.Equal(t, row.ExpiresAt, *row.EndedAt)
}

func TestSweeperStopIsClean(t *testing.T) {
	_, sessions := newSweepFixture(t, time.Hour)

	svc := NewService(10*time.Millisecond, sessions)
	svc.Start(context.Background())
	svc.Stop()

	// Stop twice must not panic or hang.
	svc.Stop()
}
