// Package notify posts grading milestones to Slack.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	goslack "github.com/slack-go/slack"
)

// ServiceConfig holds the parameters needed to construct a Service.
type ServiceConfig struct {
	Token   string
	Channel string
}

// AttemptPassedInput contains data for a first-pass notification.
type AttemptPassedInput struct {
	SessionID    string
	LabSlug      string
	UserEmail    string
	AttemptIndex int
	ImageSizeMB  float64
}

// Service posts a message when a session's attempt flips to passed for the
// first time. Nil-safe: all methods are no-ops when service is nil.
type Service struct {
	api       *goslack.Client
	channelID string
	logger    *slog.Logger
}

// NewService creates a notification service.
// Returns nil if Token or Channel is empty.
func NewService(cfg ServiceConfig) *Service {
	if cfg.Token == "" || cfg.Channel == "" {
		return nil
	}
	return &Service{
		api:       goslack.New(cfg.Token),
		channelID: cfg.Channel,
		logger:    slog.Default().With("component", "notify"),
	}
}

// NewServiceWithAPIURL creates a Service targeting a custom API URL.
// Useful for testing with a mock server.
func NewServiceWithAPIURL(token, channel, apiURL string) *Service {
	return &Service{
		api:       goslack.New(token, goslack.OptionAPIURL(apiURL)),
		channelID: channel,
		logger:    slog.Default().With("component", "notify"),
	}
}

// NotifyAttemptPassed posts the first-pass message.
// Fail-open: errors are logged, never returned.
func (s *Service) NotifyAttemptPassed(ctx context.Context, input AttemptPassedInput) {
	if s == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	text := fmt.Sprintf(":whale: *%s* passed lab *%s* on attempt %d",
		input.UserEmail, input.LabSlug, input.AttemptIndex)
	if input.ImageSizeMB > 0 {
		text += fmt.Sprintf(" (image %.1f MB)", input.ImageSizeMB)
	}

	_, _, err := s.api.PostMessageContext(ctx, s.channelID,
		goslack.MsgOptionText(text, false))
	if err != nil {
		s.logger.Error("Failed to send pass notification",
			"session_id", input.SessionID, "error", err)
	}
}
