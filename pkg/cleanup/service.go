// Package cleanup provides the session TTL sweeper.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/codeready-toolchain/dockhand/pkg/services"
)

// Service periodically enforces session TTLs: for every session whose
// expires_at has passed and that has not ended, it asks the supervisor to
// terminate the worker (idempotent) and sets ended_at = expires_at.
// Sessions are never silently extended.
type Service struct {
	interval time.Duration
	sessions *services.SessionService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new sweeper.
func NewService(interval time.Duration, sessions *services.SessionService) *Service {
	return &Service{
		interval: interval,
		sessions: sessions,
	}
}

// Start launches the background sweep loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("TTL sweeper started", "interval", s.interval)
}

// Stop signals the sweep loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("TTL sweeper stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.sweepOnce(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweepOnce(ctx)
		}
	}
}

func (s *Service) sweepOnce(_ context.Context) {
	count, err := s.sessions.ExpireDue(context.Background(), time.Now().UTC())
	if err != nil {
		slog.Error("TTL sweep failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("TTL sweep ended expired sessions", "count", count)
	}
}
