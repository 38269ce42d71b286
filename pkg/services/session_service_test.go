package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/dockhand/pkg/apierr"
)

func TestStartSession(t *testing.T) {
	ctx := context.Background()
	entClient := newTestEnt(t)
	fake := newFakeSupervisor(t)
	svc := newTestSessionService(t, entClient, fake, 30*time.Minute)
	mustCreateUser(t, entClient, "u1")

	t.Run("creates a session with expires_at = created_at + ttl", func(t *testing.T) {
		result, err := svc.Start(ctx, "u1", "first-image")
		require.NoError(t, err)

		assert.Empty(t, result.Replaced)
		assert.Equal(t, "u1", result.Session.UserID)
		assert.Equal(t, "first-image", result.Session.LabSlug)
		assert.True(t, result.Session.Active)
		assert.Equal(t, 30*time.Minute,
			result.Session.ExpiresAt.Sub(result.Session.CreatedAt))
		assert.NotEmpty(t, result.Session.WorkerRef)
	})

	t.Run("unknown lab fails with lab_not_found", func(t *testing.T) {
		_, err := svc.Start(ctx, "u1", "no-such-lab")
		assert.True(t, apierr.Is(err, apierr.CodeLabNotFound))
	})
}

func TestStartSessionReplacesActive(t *testing.T) {
	ctx := context.Background()
	entClient := newTestEnt(t)
	fake := newFakeSupervisor(t)
	svc := newTestSessionService(t, entClient, fake, 30*time.Minute)
	mustCreateUser(t, entClient, "u1")

	first, err := svc.Start(ctx, "u1", "first-image")
	require.NoError(t, err)

	second, err := svc.Start(ctx, "u1", "first-image")
	require.NoError(t, err)

	// The replace rule: the prior session is terminated and reported.
	assert.Equal(t, []string{first.Session.SessionID}, second.Replaced)
	assert.NotEqual(t, first.Session.SessionID, second.Session.SessionID)

	prev, err := svc.Get(ctx, first.Session.SessionID, "u1")
	require.NoError(t, err)
	assert.NotNil(t, prev.EndedAt)
	assert.False(t, prev.Active)

	active, err := svc.GetActive(ctx, "u1", "first-image")
	require.NoError(t, err)
	assert.Equal(t, second.Session.SessionID, active.SessionID)

	// Worker stops: one per replaced session.
	assert.Equal(t, int64(1), fake.stops.Load())
}

func TestStartSessionDifferentLabsCoexist(t *testing.T) {
	ctx := context.Background()
	entClient := newTestEnt(t)
	fake := newFakeSupervisor(t)
	svc := newTestSessionService(t, entClient, fake, 30*time.Minute)
	mustCreateUser(t, entClient, "u1")

	a, err := svc.Start(ctx, "u1", "first-image")
	require.NoError(t, err)
	b, err := svc.Start(ctx, "u1", "layer-cache")
	require.NoError(t, err)
	assert.Empty(t, b.Replaced)

	gotA, err := svc.GetActive(ctx, "u1", "first-image")
	require.NoError(t, err)
	assert.Equal(t, a.Session.SessionID, gotA.SessionID)
}

func TestStartSessionSupervisorFailure(t *testing.T) {
	ctx := context.Background()
	entClient := newTestEnt(t)
	fake := newFakeSupervisor(t)
	svc := newTestSessionService(t, entClient, fake, 30*time.Minute)
	mustCreateUser(t, entClient, "u1")

	first, err := svc.Start(ctx, "u1", "first-image")
	require.NoError(t, err)

	// Worker creation fails: the prior termination stands (not rolled
	// back) and the caller gets the downstream error.
	fake.failStart.Store(true)
	_, err = svc.Start(ctx, "u1", "first-image")
	require.Error(t, err)
	assert.True(t, apierr.Is(err, apierr.CodeEngineError))

	prev, err := svc.Get(ctx, first.Session.SessionID, "u1")
	require.NoError(t, err)
	assert.NotNil(t, prev.EndedAt)

	_, err = svc.GetActive(ctx, "u1", "first-image")
	assert.True(t, apierr.Is(err, apierr.CodeNoActiveSession))

	// Capacity exhaustion surfaces its own code.
	fake.failStart.Store(false)
	fake.capacity.Store(true)
	_, err = svc.Start(ctx, "u1", "first-image")
	assert.True(t, apierr.Is(err, apierr.CodeCapacityExhausted))
}

func TestStopSession(t *testing.T) {
	ctx := context.Background()
	entClient := newTestEnt(t)
	fake := newFakeSupervisor(t)
	svc := newTestSessionService(t, entClient, fake, 30*time.Minute)
	mustCreateUser(t, entClient, "u1")
	mustCreateUser(t, entClient, "u2")

	started, err := svc.Start(ctx, "u1", "first-image")
	require.NoError(t, err)
	sessionID := started.Session.SessionID

	t.Run("ownership is enforced", func(t *testing.T) {
		_, err := svc.Stop(ctx, sessionID, "u2")
		assert.True(t, apierr.Is(err, apierr.CodeForbidden))
	})

	t.Run("stop is idempotent", func(t *testing.T) {
		endedAt, err := svc.Stop(ctx, sessionID, "u1")
		require.NoError(t, err)

		again, err := svc.Stop(ctx, sessionID, "u1")
		require.NoError(t, err)
		assert.Equal(t, endedAt, again)
	})

	t.Run("operations on a stopped session fail with session_expired", func(t *testing.T) {
		_, err := svc.RequireLive(ctx, sessionID, "u1")
		assert.True(t, apierr.Is(err, apierr.CodeSessionExpired))
	})

	t.Run("unknown session fails with session_not_found", func(t *testing.T) {
		_, err := svc.Stop(ctx, "nope", "u1")
		assert.True(t, apierr.Is(err, apierr.CodeSessionNotFound))
	})
}

func TestExpireDue(t *testing.T) {
	ctx := context.Background()
	entClient := newTestEnt(t)
	fake := newFakeSupervisor(t)
	svc := newTestSessionService(t, entClient, fake, 1*time.Second)
	mustCreateUser(t, entClient, "u1")

	started, err := svc.Start(ctx, "u1", "first-image")
	require.NoError(t, err)

	// Nothing is due yet.
	count, err := svc.ExpireDue(ctx, time.Now().UTC())
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	// Past the TTL: the sweep ends the session with ended_at = expires_at.
	count, err = svc.ExpireDue(ctx, time.Now().UTC().Add(2*time.Second))
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	got, err := svc.Get(ctx, started.Session.SessionID, "u1")
	require.NoError(t, err)
	require.NotNil(t, got.EndedAt)
	assert.Equal(t, got.ExpiresAt, *got.EndedAt)

	_, err = svc.RequireLive(ctx, started.Session.SessionID, "u1")
	assert.True(t, apierr.Is(err, apierr.CodeSessionExpired))

	// Idempotent: a second sweep finds nothing.
	count, err = svc.ExpireDue(ctx, time.Now().UTC().Add(2*time.Second))
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestConcurrentStartSerializes(t *testing.T) {
	ctx := context.Background()
	entClient := newTestEnt(t)
	fake := newFakeSupervisor(t)
	svc := newTestSessionService(t, entClient, fake, 30*time.Minute)
	mustCreateUser(t, entClient, "u1")

	type outcome struct {
		sessionID string
		replaced  []string
		err       error
	}
	results := make(chan outcome, 2)
	for i := 0; i < 2; i++ {
		go func() {
			res, err := svc.Start(ctx, "u1", "first-image")
			if err != nil {
				results <- outcome{err: err}
				return
			}
			results <- outcome{sessionID: res.Session.SessionID, replaced: res.Replaced}
		}()
	}

	a := <-results
	b := <-results
	require.NoError(t, a.err)
	require.NoError(t, b.err)
	assert.NotEqual(t, a.sessionID, b.sessionID)

	// Exactly one of the two replaced the other.
	totalReplaced := append(append([]string{}, a.replaced...), b.replaced...)
	require.Len(t, totalReplaced, 1)

	// The winner's session is the single active one.
	active, err := svc.GetActive(ctx, "u1", "first-image")
	require.NoError(t, err)
	if totalReplaced[0] == a.sessionID {
		assert.Equal(t, b.sessionID, active.SessionID)
	} else {
		assert.Equal(t, a.sessionID, active.SessionID)
	}
}
