package models

import "time"

// SessionDetail is the API representation of a session.
type SessionDetail struct {
	SessionID  string     `json:"session_id"`
	UserID     string     `json:"user_id"`
	LabSlug    string     `json:"lab_slug"`
	WorkerRef  string     `json:"worker_ref"`
	TTLSeconds int        `json:"ttl_seconds"`
	CreatedAt  time.Time  `json:"created_at"`
	ExpiresAt  time.Time  `json:"expires_at"`
	EndedAt    *time.Time `json:"ended_at,omitempty"`
	Active     bool       `json:"active"`
}

// StartSessionResult is returned by SessionService.Start: the new session
// plus the ids of any previously active sessions that were terminated to
// make room for it.
type StartSessionResult struct {
	Session  SessionDetail `json:"session"`
	Replaced []string      `json:"replaced"`
}

// SessionWithAttempts bundles a session with its most recent attempts.
type SessionWithAttempts struct {
	Session  SessionDetail `json:"session"`
	Attempts []AttemptView `json:"attempts"`
}

// UserView is the API representation of a user record.
type UserView struct {
	UserID      string    `json:"user_id"`
	Provider    string    `json:"provider"`
	Email       string    `json:"email"`
	Name        string    `json:"name,omitempty"`
	AvatarURL   string    `json:"avatar_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	LastLoginAt time.Time `json:"last_login_at"`
}

// AuthResult is returned by authenticate: the user plus a freshly issued
// opaque bearer token. The token is never stored in the clear.
type AuthResult struct {
	User  UserView `json:"user"`
	Token string   `json:"token"`
}
