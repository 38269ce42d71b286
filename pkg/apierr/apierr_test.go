package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	cases := map[string]int{
		CodeUnauthenticated:   http.StatusUnauthorized,
		CodeForbidden:         http.StatusForbidden,
		CodeSessionNotFound:   http.StatusNotFound,
		CodeSessionExpired:    http.StatusConflict,
		CodePathEscapesRoot:   http.StatusBadRequest,
		CodeRateLimited:       http.StatusTooManyRequests,
		CodeCapacityExhausted: http.StatusServiceUnavailable,
		CodeSupervisorDown:    http.StatusBadGateway,
		CodeInternal:          http.StatusInternalServerError,
	}
	for code, want := range cases {
		assert.Equal(t, want, New(code, "x").HTTPStatus(), "code %s", code)
	}

	assert.Equal(t, http.StatusInternalServerError, New("made_up", "x").HTTPStatus())
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("socket closed")
	err := Wrap(CodeSupervisorDown, "supervisor unreachable", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "supervisor unreachable")
	assert.Contains(t, err.Error(), "socket closed")
}

func TestCodeOfAndIs(t *testing.T) {
	err := New(CodeWorkerMissing, "gone")
	assert.Equal(t, CodeWorkerMissing, CodeOf(err))
	assert.True(t, Is(err, CodeWorkerMissing))
	assert.False(t, Is(err, CodeForbidden))

	// Wrapped deeper in a chain.
	wrapped := fmt.Errorf("calling supervisor: %w", err)
	assert.Equal(t, CodeWorkerMissing, CodeOf(wrapped))
	assert.True(t, Is(wrapped, CodeWorkerMissing))

	assert.Equal(t, CodeInternal, CodeOf(errors.New("plain")))
}
