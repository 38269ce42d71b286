package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/codeready-toolchain/dockhand/ent"
	"github.com/codeready-toolchain/dockhand/ent/labsession"
	"github.com/codeready-toolchain/dockhand/pkg/apierr"
	"github.com/codeready-toolchain/dockhand/pkg/labs"
	"github.com/codeready-toolchain/dockhand/pkg/models"
	"github.com/codeready-toolchain/dockhand/pkg/supervisor"
)

// SessionService manages lab session lifecycle: the single-active-session
// invariant, TTL bookkeeping, and worker coupling via the supervisor.
type SessionService struct {
	client  *ent.Client
	sup     *supervisor.Client
	catalog *labs.Catalog
	ttl     time.Duration
	quotas  supervisor.Quotas
	logger  *slog.Logger

	// startLocks serializes Start per (user, lab). Start is the only
	// writer of new session rows for a pair, so holding this lock makes
	// the enumerate-terminate-create sequence atomic against concurrent
	// starts for the same pair.
	startLocks sync.Map // "(userID)\x00(labSlug)" -> *sync.Mutex
}

// NewSessionService creates a new SessionService.
func NewSessionService(client *ent.Client, sup *supervisor.Client, catalog *labs.Catalog, ttl time.Duration, quotas supervisor.Quotas) *SessionService {
	return &SessionService{
		client:  client,
		sup:     sup,
		catalog: catalog,
		ttl:     ttl,
		quotas:  quotas,
		logger:  slog.Default().With("component", "session-service"),
	}
}

// Supervisor exposes the underlying supervisor client for consumers that
// proxy through it (filesystem, terminal, grading).
func (s *SessionService) Supervisor() *supervisor.Client {
	return s.sup
}

func (s *SessionService) pairLock(userID, labSlug string) *sync.Mutex {
	key := userID + "\x00" + labSlug
	mu, _ := s.startLocks.LoadOrStore(key, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// Start creates a new session for (userID, labSlug), first terminating any
// session for the pair that has not ended. Terminations are intentional and
// are not rolled back if worker creation subsequently fails.
func (s *SessionService) Start(ctx context.Context, userID, labSlug string) (*models.StartSessionResult, error) {
	lab, ok := s.catalog.Get(labSlug)
	if !ok {
		return nil, apierr.Newf(apierr.CodeLabNotFound, "unknown lab %q", labSlug)
	}

	mu := s.pairLock(userID, labSlug)
	mu.Lock()
	defer mu.Unlock()

	now := time.Now().UTC()

	open, err := s.client.LabSession.Query().
		Where(
			labsession.UserIDEQ(userID),
			labsession.LabSlugEQ(labSlug),
			labsession.EndedAtIsNil(),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate open sessions: %w", err)
	}

	replaced := make([]string, 0, len(open))
	for _, prev := range open {
		if err := s.terminate(ctx, prev, now); err != nil {
			return nil, err
		}
		// Expired-but-unswept rows are closed too, but only genuinely
		// active sessions count as replaced.
		if now.Before(prev.ExpiresAt) {
			replaced = append(replaced, prev.ID)
		}
	}

	sessionID := uuid.New().String()
	startResp, err := s.sup.StartWorker(ctx, supervisor.StartWorkerRequest{
		SessionID:  sessionID,
		TTLSeconds: int(s.ttl.Seconds()),
		Quotas:     s.quotas,
		SeedLab:    labSlug,
	})
	if err != nil {
		// The prior terminations stand; the caller retries.
		return nil, err
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	row, err := s.client.LabSession.Create().
		SetID(sessionID).
		SetUserID(userID).
		SetLabSlug(lab.Slug).
		SetWorkerRef(startResp.WorkerRef).
		SetTTLSeconds(int(s.ttl.Seconds())).
		SetCreatedAt(now).
		SetExpiresAt(now.Add(s.ttl)).
		Save(writeCtx)
	if err != nil {
		// Best effort: don't leak the worker we just created.
		if stopErr := s.sup.StopWorker(context.Background(), sessionID); stopErr != nil {
			s.logger.Error("Failed to stop worker after insert failure",
				"session_id", sessionID, "error", stopErr)
		}
		return nil, fmt.Errorf("failed to insert session: %w", err)
	}

	return &models.StartSessionResult{
		Session:  sessionDetail(row, now),
		Replaced: replaced,
	}, nil
}

// terminate stops prev's worker and marks the row ended. worker_missing is
// treated as success (the supervisor already cleaned up).
func (s *SessionService) terminate(ctx context.Context, prev *ent.LabSession, now time.Time) error {
	if err := s.sup.StopWorker(ctx, prev.ID); err != nil && !apierr.Is(err, apierr.CodeWorkerMissing) {
		return err
	}

	endedAt := now
	if prev.ExpiresAt.Before(now) {
		endedAt = prev.ExpiresAt
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.client.LabSession.UpdateOneID(prev.ID).
		SetEndedAt(endedAt).
		Exec(writeCtx); err != nil {
		return fmt.Errorf("failed to end session %s: %w", prev.ID, err)
	}
	return nil
}

// Get returns the session, enforcing ownership.
func (s *SessionService) Get(ctx context.Context, sessionID, userID string) (*models.SessionDetail, error) {
	row, err := s.fetch(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}
	d := sessionDetail(row, time.Now().UTC())
	return &d, nil
}

// GetActive returns the user's active session for labSlug.
func (s *SessionService) GetActive(ctx context.Context, userID, labSlug string) (*models.SessionDetail, error) {
	now := time.Now().UTC()
	row, err := s.client.LabSession.Query().
		Where(
			labsession.UserIDEQ(userID),
			labsession.LabSlugEQ(labSlug),
			labsession.EndedAtIsNil(),
			labsession.ExpiresAtGT(now),
		).
		Order(ent.Desc(labsession.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apierr.Newf(apierr.CodeNoActiveSession, "no active session for lab %q", labSlug)
		}
		return nil, fmt.Errorf("failed to query active session: %w", err)
	}
	d := sessionDetail(row, now)
	return &d, nil
}

// Stop ends the session. Idempotent: stopping an already-ended session
// returns its original ended_at.
func (s *SessionService) Stop(ctx context.Context, sessionID, userID string) (time.Time, error) {
	row, err := s.fetch(ctx, sessionID, userID)
	if err != nil {
		return time.Time{}, err
	}

	if row.EndedAt != nil {
		return *row.EndedAt, nil
	}

	if err := s.terminate(ctx, row, time.Now().UTC()); err != nil {
		return time.Time{}, err
	}

	updated, err := s.client.LabSession.Get(ctx, sessionID)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to re-read session: %w", err)
	}
	return *updated.EndedAt, nil
}

// RequireLive returns the session iff it belongs to userID and is still
// active; expired or ended sessions fail with session_expired.
func (s *SessionService) RequireLive(ctx context.Context, sessionID, userID string) (*models.SessionDetail, error) {
	row, err := s.fetch(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if row.EndedAt != nil || !now.Before(row.ExpiresAt) {
		return nil, apierr.Newf(apierr.CodeSessionExpired, "session %s has expired", sessionID)
	}
	d := sessionDetail(row, now)
	return &d, nil
}

// EndForWorkerMissing reconciles a session whose worker the supervisor no
// longer knows: the session is terminated immediately.
func (s *SessionService) EndForWorkerMissing(sessionID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	row, err := s.client.LabSession.Get(ctx, sessionID)
	if err != nil || row.EndedAt != nil {
		return
	}
	if err := s.terminate(ctx, row, time.Now().UTC()); err != nil {
		s.logger.Error("Failed to reconcile session with missing worker",
			"session_id", sessionID, "error", err)
	}
}

// ExpireDue ends every session whose TTL has elapsed, stopping its worker
// first. Returns the number of sessions ended. Used by the sweeper.
func (s *SessionService) ExpireDue(ctx context.Context, now time.Time) (int, error) {
	due, err := s.client.LabSession.Query().
		Where(
			labsession.EndedAtIsNil(),
			labsession.ExpiresAtLTE(now),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query due sessions: %w", err)
	}

	ended := 0
	for _, row := range due {
		// Worker stop is idempotent; worker_missing means the supervisor's
		// own sweeper got there first.
		if err := s.sup.StopWorker(ctx, row.ID); err != nil && !apierr.Is(err, apierr.CodeWorkerMissing) {
			s.logger.Warn("Failed to stop worker for expired session",
				"session_id", row.ID, "error", err)
		}

		writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := s.client.LabSession.UpdateOneID(row.ID).
			SetEndedAt(row.ExpiresAt).
			Exec(writeCtx)
		cancel()
		if err != nil {
			s.logger.Error("Failed to end expired session", "session_id", row.ID, "error", err)
			continue
		}
		ended++
	}
	return ended, nil
}

func (s *SessionService) fetch(ctx context.Context, sessionID, userID string) (*ent.LabSession, error) {
	row, err := s.client.LabSession.Get(ctx, sessionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apierr.Newf(apierr.CodeSessionNotFound, "session %s not found", sessionID)
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if row.UserID != userID {
		return nil, apierr.New(apierr.CodeForbidden, "session belongs to another user")
	}
	return row, nil
}

func sessionDetail(row *ent.LabSession, now time.Time) models.SessionDetail {
	return models.SessionDetail{
		SessionID:  row.ID,
		UserID:     row.UserID,
		LabSlug:    row.LabSlug,
		WorkerRef:  row.WorkerRef,
		TTLSeconds: row.TTLSeconds,
		CreatedAt:  row.CreatedAt,
		ExpiresAt:  row.ExpiresAt,
		EndedAt:    row.EndedAt,
		Active:     row.EndedAt == nil && now.Before(row.ExpiresAt),
	}
}
