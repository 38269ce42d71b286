// Package apierr defines the stable error codes shared by the orchestrator,
// the supervisor, and their clients, together with the HTTP status each code
// maps to on the wire.
package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

// Stable error codes. These are part of the wire contract: clients and the
// frontend switch on them, so they must never be renamed.
const (
	CodeUnauthenticated = "unauthenticated"
	CodeForbidden       = "forbidden"

	CodeLabNotFound     = "lab_not_found"
	CodeSessionNotFound = "session_not_found"
	CodeNoActiveSession = "no_active_session"
	CodeSessionExpired  = "session_expired"

	CodeInvalidPath       = "invalid_path"
	CodePathEscapesRoot   = "path_escapes_workspace"
	CodePathContainsNul   = "path_contains_nul"
	CodeNotADirectory     = "not_a_directory"
	CodeIsADirectory      = "is_a_directory"
	CodeFileNotFound      = "file_not_found"
	CodeFileAlreadyExists = "file_already_exists"
	CodeInvalidIdentity   = "invalid_identity"
	CodeRateLimited       = "rate_limited"
	CodeCapacityExhausted = "capacity_exhausted"
	CodeSupervisorDown    = "supervisor_unavailable"
	CodeWorkerMissing     = "worker_missing"
	CodeEngineError       = "engine_error"
	CodeGraderUnavailable = "grader_unavailable"
	CodeAgentUnavailable  = "agent_unavailable"
	CodeInternal          = "internal_error"
)

// statusByCode maps each code to its transport HTTP status.
var statusByCode = map[string]int{
	CodeUnauthenticated:   http.StatusUnauthorized,
	CodeForbidden:         http.StatusForbidden,
	CodeLabNotFound:       http.StatusNotFound,
	CodeSessionNotFound:   http.StatusNotFound,
	CodeNoActiveSession:   http.StatusNotFound,
	CodeFileNotFound:      http.StatusNotFound,
	CodeSessionExpired:    http.StatusConflict,
	CodeFileAlreadyExists: http.StatusConflict,
	CodeInvalidPath:       http.StatusBadRequest,
	CodePathEscapesRoot:   http.StatusBadRequest,
	CodePathContainsNul:   http.StatusBadRequest,
	CodeNotADirectory:     http.StatusBadRequest,
	CodeIsADirectory:      http.StatusBadRequest,
	CodeInvalidIdentity:   http.StatusBadRequest,
	CodeRateLimited:       http.StatusTooManyRequests,
	CodeCapacityExhausted: http.StatusServiceUnavailable,
	CodeSupervisorDown:    http.StatusBadGateway,
	CodeWorkerMissing:     http.StatusBadGateway,
	CodeEngineError:       http.StatusBadGateway,
	CodeGraderUnavailable: http.StatusServiceUnavailable,
	CodeAgentUnavailable:  http.StatusServiceUnavailable,
	CodeInternal:          http.StatusInternalServerError,
}

// Error is a taxonomy error. Detail is safe to show to the frontend;
// internal context belongs in the wrapped cause, not in Detail.
type Error struct {
	Code   string
	Detail string
	cause  error
}

// New creates a taxonomy error.
func New(code, detail string) *Error {
	return &Error{Code: code, Detail: detail}
}

// Newf creates a taxonomy error with a formatted detail.
func Newf(code, format string, args ...interface{}) *Error {
	return &Error{Code: code, Detail: fmt.Sprintf(format, args...)}
}

// Wrap creates a taxonomy error with an underlying cause. The cause is
// preserved for logs and errors.Is/As but never serialized.
func Wrap(code, detail string, cause error) *Error {
	return &Error{Code: code, Detail: detail, cause: cause}
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Detail, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Detail)
}

func (e *Error) Unwrap() error { return e.cause }

// HTTPStatus returns the transport status for this error's code.
func (e *Error) HTTPStatus() int {
	if s, ok := statusByCode[e.Code]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// CodeOf extracts the taxonomy code from err, or CodeInternal if err is not
// a taxonomy error.
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

// Is reports whether err is a taxonomy error with the given code.
func Is(err error, code string) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}
