package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/codeready-toolchain/dockhand/ent"
	"github.com/codeready-toolchain/dockhand/ent/attempt"
	"github.com/codeready-toolchain/dockhand/pkg/models"
)

// AttemptService persists grading attempts. Attempts are append-only: rows
// are inserted once and never mutated, and they outlive their session.
type AttemptService struct {
	client *ent.Client
}

// NewAttemptService creates a new AttemptService.
func NewAttemptService(client *ent.Client) *AttemptService {
	return &AttemptService{client: client}
}

// Record appends a grading result as the session's next attempt.
func (s *AttemptService) Record(httpCtx context.Context, sessionID, labSlug string, result models.GradeResult) (*models.AttemptView, error) {
	if sessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}

	failures, err := failuresToJSON(result.Failures)
	if err != nil {
		return nil, err
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	// Attempts are append-only and never individually deleted, so the row
	// count doubles as the last index. The unique (session_id,
	// attempt_index) index backstops the single-writer assumption.
	lastIndex, err := tx.Attempt.Query().
		Where(attempt.SessionIDEQ(sessionID)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count attempts: %w", err)
	}

	row, err := tx.Attempt.Create().
		SetID(uuid.New().String()).
		SetSessionID(sessionID).
		SetLabSlug(labSlug).
		SetAttemptIndex(lastIndex + 1).
		SetPassed(result.Passed).
		SetFailures(failures).
		SetMetrics(result.Metrics).
		SetNotes(result.Notes).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to insert attempt: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	view := attemptView(row)
	return &view, nil
}

// List returns the session's most recent attempts, newest first.
func (s *AttemptService) List(ctx context.Context, sessionID string, limit int) ([]models.AttemptView, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.client.Attempt.Query().
		Where(attempt.SessionIDEQ(sessionID)).
		Order(ent.Desc(attempt.FieldAttemptIndex)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list attempts: %w", err)
	}

	views := make([]models.AttemptView, 0, len(rows))
	for _, row := range rows {
		views = append(views, attemptView(row))
	}
	return views, nil
}

// HasPassed reports whether any attempt for the session has passed.
func (s *AttemptService) HasPassed(ctx context.Context, sessionID string) (bool, error) {
	n, err := s.client.Attempt.Query().
		Where(attempt.SessionIDEQ(sessionID), attempt.PassedEQ(true)).
		Count(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to count passing attempts: %w", err)
	}
	return n > 0, nil
}

func attemptView(row *ent.Attempt) models.AttemptView {
	return models.AttemptView{
		ID:           row.ID,
		SessionID:    row.SessionID,
		LabSlug:      row.LabSlug,
		AttemptIndex: row.AttemptIndex,
		CreatedAt:    row.CreatedAt,
		Passed:       row.Passed,
		Failures:     failuresFromJSON(row.Failures),
		Metrics:      row.Metrics,
		Notes:        row.Notes,
	}
}

func failuresToJSON(failures []models.Failure) ([]map[string]interface{}, error) {
	out := make([]map[string]interface{}, 0, len(failures))
	raw, err := json.Marshal(failures)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal failures: %w", err)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to unmarshal failures: %w", err)
	}
	return out, nil
}

func failuresFromJSON(raw []map[string]interface{}) []models.Failure {
	out := make([]models.Failure, 0, len(raw))
	for _, m := range raw {
		f := models.Failure{}
		if v, ok := m["code"].(string); ok {
			f.Code = v
		}
		if v, ok := m["message"].(string); ok {
			f.Message = v
		}
		if v, ok := m["hint"].(string); ok {
			f.Hint = v
		}
		out = append(out, f)
	}
	return out
}
