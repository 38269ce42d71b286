package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/dockhand/pkg/models"
)

func seedSession(t *testing.T, svc *SessionService) string {
	t.Helper()
	res, err := svc.Start(context.Background(), "u1", "first-image")
	require.NoError(t, err)
	return res.Session.SessionID
}

func TestRecordAttempt(t *testing.T) {
	ctx := context.Background()
	entClient := newTestEnt(t)
	fake := newFakeSupervisor(t)
	sessions := newTestSessionService(t, entClient, fake, 30*time.Minute)
	mustCreateUser(t, entClient, "u1")
	sessionID := seedSession(t, sessions)

	svc := NewAttemptService(entClient)

	failed := models.GradeResult{
		Passed: false,
		Failures: []models.Failure{
			{Code: "dockerignore_missing", Message: ".dockerignore is missing", Hint: "add one"},
		},
		Notes: map[string]interface{}{"build_logs": "step 1/3 ..."},
	}
	passed := models.GradeResult{
		Passed:   true,
		Failures: []models.Failure{},
		Metrics: map[string]interface{}{
			"build": map[string]interface{}{"image_size_mb": 120.5, "cache_hits": 3.0},
		},
	}

	first, err := svc.Record(ctx, sessionID, "first-image", failed)
	require.NoError(t, err)
	second, err := svc.Record(ctx, sessionID, "first-image", passed)
	require.NoError(t, err)

	t.Run("attempt indexes are monotonic per session", func(t *testing.T) {
		assert.Equal(t, 1, first.AttemptIndex)
		assert.Equal(t, 2, second.AttemptIndex)
	})

	t.Run("failures round-trip with codes, messages, and hints", func(t *testing.T) {
		require.Len(t, first.Failures, 1)
		assert.Equal(t, "dockerignore_missing", first.Failures[0].Code)
		assert.Equal(t, "add one", first.Failures[0].Hint)
		assert.False(t, first.Passed)
	})

	t.Run("passed iff failures empty", func(t *testing.T) {
		assert.True(t, second.Passed)
		assert.Empty(t, second.Failures)
	})

	t.Run("list returns newest first with limit", func(t *testing.T) {
		attempts, err := svc.List(ctx, sessionID, 1)
		require.NoError(t, err)
		require.Len(t, attempts, 1)
		assert.Equal(t, second.ID, attempts[0].ID)

		all, err := svc.List(ctx, sessionID, 10)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("HasPassed", func(t *testing.T) {
		ok, err := svc.HasPassed(ctx, sessionID)
		require.NoError(t, err)
		assert.True(t, ok)
	})
}

func TestInspectorReport(t *testing.T) {
	ctx := context.Background()
	entClient := newTestEnt(t)
	fake := newFakeSupervisor(t)
	sessions := newTestSessionService(t, entClient, fake, 30*time.Minute)
	mustCreateUser(t, entClient, "u1")
	sessionID := seedSession(t, sessions)

	attempts := NewAttemptService(entClient)
	inspector := NewInspectorService(attempts)

	t.Run("empty session yields an empty report", func(t *testing.T) {
		report, err := inspector.Report(ctx, sessionID)
		require.NoError(t, err)
		assert.Nil(t, report.LatestMetrics)
		assert.Empty(t, report.Deltas)
		assert.Empty(t, report.Timeline)
	})

	_, err := attempts.Record(ctx, sessionID, "first-image", models.GradeResult{
		Failures: []models.Failure{{Code: "docker_build_failed", Message: "boom"}},
		Metrics: map[string]interface{}{
			"build": map[string]interface{}{"image_size_mb": 300.0, "layer_count": 12.0},
		},
	})
	require.NoError(t, err)

	_, err = attempts.Record(ctx, sessionID, "first-image", models.GradeResult{
		Passed:   true,
		Failures: []models.Failure{},
		Metrics: map[string]interface{}{
			"build": map[string]interface{}{"image_size_mb": 120.0, "layer_count": 8.0},
		},
	})
	require.NoError(t, err)

	report, err := inspector.Report(ctx, sessionID)
	require.NoError(t, err)

	t.Run("deltas are computed per dotted metric path", func(t *testing.T) {
		require.Len(t, report.Deltas, 2)
		byPath := map[string]float64{}
		for _, d := range report.Deltas {
			byPath[d.Path] = d.Delta
		}
		assert.InDelta(t, -180.0, byPath["build.image_size_mb"], 0.001)
		assert.InDelta(t, -4.0, byPath["build.layer_count"], 0.001)
	})

	t.Run("timeline is oldest first with pass flags and sizes", func(t *testing.T) {
		require.Len(t, report.Timeline, 2)
		assert.False(t, report.Timeline[0].Passed)
		assert.Equal(t, 1, report.Timeline[0].FailureCount)
		assert.True(t, report.Timeline[1].Passed)
		require.NotNil(t, report.Timeline[1].ImageSizeMB)
		assert.InDelta(t, 120.0, *report.Timeline[1].ImageSizeMB, 0.001)
	})
}
