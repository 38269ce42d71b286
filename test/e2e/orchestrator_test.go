package e2e

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/dockhand/pkg/models"
)

const passingDockerfile = `FROM python:3.12-slim
WORKDIR /app
COPY requirements.txt .
RUN pip install --no-cache-dir -r requirements.txt
COPY . .
CMD ["uvicorn", "app:app", "--host", "0.0.0.0", "--port", "8000"]
`

func startSession(t *testing.T, env *testEnv, token, slug string) models.StartSessionResult {
	t.Helper()
	var result models.StartSessionResult
	status := env.do(token, http.MethodPost, "/labs/"+slug+"/start", nil, &result)
	require.Equal(t, http.StatusOK, status)
	return result
}

func TestHappyPath(t *testing.T) {
	env := newTestEnv(t, 30*time.Minute)
	token := env.authenticate("ada")

	started := startSession(t, env, token, "first-image")
	assert.Empty(t, started.Replaced)
	sessionID := started.Session.SessionID

	env.writeFile(token, sessionID, "Dockerfile", passingDockerfile)
	env.writeFile(token, sessionID, "requirements.txt", "fastapi\nuvicorn\n")
	env.writeFile(token, sessionID, ".dockerignore", "__pycache__\nvenv\n")

	var attempt models.AttemptView
	status := env.do(token, http.MethodPost, "/labs/first-image/check",
		map[string]string{"session_id": sessionID}, &attempt)
	require.Equal(t, http.StatusOK, status)

	assert.True(t, attempt.Passed)
	assert.Empty(t, attempt.Failures)
	assert.Equal(t, 1, attempt.AttemptIndex)

	build := attempt.Metrics["build"].(map[string]interface{})
	assert.LessOrEqual(t, build["image_size_mb"].(float64), 250.0)
	assert.GreaterOrEqual(t, build["cache_hits"].(float64), 0.0)

	t.Run("read back what was written", func(t *testing.T) {
		var read struct {
			ContentB64 string `json:"content_b64"`
		}
		status := env.do(token, http.MethodGet,
			"/fs/"+sessionID+"/read?path=Dockerfile", nil, &read)
		require.Equal(t, http.StatusOK, status)
		data, err := unb64(read.ContentB64)
		require.NoError(t, err)
		assert.Equal(t, passingDockerfile, string(data))
	})

	t.Run("the session detail includes the attempt", func(t *testing.T) {
		var detail models.SessionWithAttempts
		status := env.do(token, http.MethodGet, "/sessions/"+sessionID, nil, &detail)
		require.Equal(t, http.StatusOK, status)
		require.Len(t, detail.Attempts, 1)
		assert.True(t, detail.Attempts[0].Passed)
	})
}

func TestMissingDockerignore(t *testing.T) {
	env := newTestEnv(t, 30*time.Minute)
	token := env.authenticate("ada")
	sessionID := startSession(t, env, token, "first-image").Session.SessionID

	env.writeFile(token, sessionID, "Dockerfile", passingDockerfile)
	env.writeFile(token, sessionID, "requirements.txt", "fastapi\n")

	var attempt models.AttemptView
	status := env.do(token, http.MethodPost, "/labs/first-image/check",
		map[string]string{"session_id": sessionID}, &attempt)
	require.Equal(t, http.StatusOK, status)

	assert.False(t, attempt.Passed)
	require.NotEmpty(t, attempt.Failures)
	assert.Equal(t, "dockerignore_missing", attempt.Failures[0].Code)
}

func TestReplaceRule(t *testing.T) {
	env := newTestEnv(t, 30*time.Minute)
	token := env.authenticate("ada")

	first := startSession(t, env, token, "first-image")
	second := startSession(t, env, token, "first-image")

	assert.Equal(t, []string{first.Session.SessionID}, second.Replaced)
	assert.NotEqual(t, first.Session.SessionID, second.Session.SessionID)

	var detail models.SessionWithAttempts
	status := env.do(token, http.MethodGet, "/sessions/"+first.Session.SessionID, nil, &detail)
	require.Equal(t, http.StatusOK, status)
	assert.NotNil(t, detail.Session.EndedAt)

	var active models.SessionDetail
	status = env.do(token, http.MethodGet, "/labs/first-image/session", nil, &active)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, second.Session.SessionID, active.SessionID)
}

func TestTTLExpiry(t *testing.T) {
	env := newTestEnv(t, time.Second)
	token := env.authenticate("ada")
	sessionID := startSession(t, env, token, "first-image").Session.SessionID

	time.Sleep(1100 * time.Millisecond)

	// Drive the sweep the cleanup service would run.
	count, err := env.sessionService.ExpireDue(context.Background(), time.Now().UTC())
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	var errBody struct {
		Detail string `json:"detail"`
		Code   string `json:"code"`
	}
	status := env.do(token, http.MethodPost, "/sessions/"+sessionID+"/build",
		map[string]string{}, &errBody)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "session_expired", errBody.Code)

	// The session is still readable, with ended_at set.
	var detail models.SessionWithAttempts
	status = env.do(token, http.MethodGet, "/sessions/"+sessionID, nil, &detail)
	require.Equal(t, http.StatusOK, status)
	require.NotNil(t, detail.Session.EndedAt)
	assert.Equal(t, detail.Session.ExpiresAt, *detail.Session.EndedAt)
}

func TestPathEscapeRejected(t *testing.T) {
	env := newTestEnv(t, 30*time.Minute)
	token := env.authenticate("ada")
	sessionID := startSession(t, env, token, "first-image").Session.SessionID

	var errBody struct {
		Code string `json:"code"`
	}
	status := env.do(token, http.MethodGet,
		"/fs/"+sessionID+"/read?path=/workspace/../etc/passwd", nil, &errBody)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "path_escapes_workspace", errBody.Code)
}

func TestAuthBoundaries(t *testing.T) {
	env := newTestEnv(t, 30*time.Minute)
	ada := env.authenticate("ada")
	eve := env.authenticate("eve")
	sessionID := startSession(t, env, ada, "first-image").Session.SessionID

	t.Run("no token", func(t *testing.T) {
		status := env.do("", http.MethodGet, "/labs", nil, nil)
		assert.Equal(t, http.StatusUnauthorized, status)
	})

	t.Run("garbage token", func(t *testing.T) {
		status := env.do("garbage", http.MethodGet, "/labs", nil, nil)
		assert.Equal(t, http.StatusUnauthorized, status)
	})

	t.Run("another user's session is forbidden", func(t *testing.T) {
		status := env.do(eve, http.MethodGet, "/sessions/"+sessionID, nil, nil)
		assert.Equal(t, http.StatusForbidden, status)
	})

	t.Run("logout revokes the token", func(t *testing.T) {
		status := env.do(eve, http.MethodPost, "/auth/logout", nil, nil)
		assert.Equal(t, http.StatusNoContent, status)

		status = env.do(eve, http.MethodGet, "/labs", nil, nil)
		assert.Equal(t, http.StatusUnauthorized, status)
	})
}

func TestInspectorDeltas(t *testing.T) {
	env := newTestEnv(t, 30*time.Minute)
	token := env.authenticate("ada")
	sessionID := startSession(t, env, token, "first-image").Session.SessionID

	env.writeFile(token, sessionID, "Dockerfile", passingDockerfile)
	env.writeFile(token, sessionID, "requirements.txt", "fastapi\n")

	// First attempt fails (no .dockerignore), second passes.
	status := env.do(token, http.MethodPost, "/labs/first-image/check",
		map[string]string{"session_id": sessionID}, nil)
	require.Equal(t, http.StatusOK, status)

	env.writeFile(token, sessionID, ".dockerignore", "__pycache__\nvenv\n")
	status = env.do(token, http.MethodPost, "/labs/first-image/check",
		map[string]string{"session_id": sessionID}, nil)
	require.Equal(t, http.StatusOK, status)

	var report models.InspectorReport
	status = env.do(token, http.MethodGet, "/sessions/"+sessionID+"/inspector", nil, &report)
	require.Equal(t, http.StatusOK, status)

	require.Len(t, report.Timeline, 2)
	assert.False(t, report.Timeline[0].Passed)
	assert.True(t, report.Timeline[1].Passed)
	assert.NotNil(t, report.LatestMetrics)
}

func TestAgentRateLimit(t *testing.T) {
	env := newTestEnv(t, 30*time.Minute)
	token := env.authenticate("ada")
	sessionID := startSession(t, env, token, "first-image").Session.SessionID

	// No agent adapter configured: admitted requests get 503, the
	// limiter still counts them, and the fourth is 429.
	body := map[string]string{"session_id": sessionID, "prompt": "why is my build slow?"}
	for i := 0; i < 3; i++ {
		status := env.do(token, http.MethodPost, "/agent/hint", body, nil)
		assert.Equal(t, http.StatusServiceUnavailable, status, "request %d", i)
	}

	var errBody struct {
		Code string `json:"code"`
	}
	status := env.do(token, http.MethodPost, "/agent/hint", body, &errBody)
	assert.Equal(t, http.StatusTooManyRequests, status)
	assert.Equal(t, "rate_limited", errBody.Code)
}

func TestStopSessionIdempotent(t *testing.T) {
	env := newTestEnv(t, 30*time.Minute)
	token := env.authenticate("ada")
	sessionID := startSession(t, env, token, "first-image").Session.SessionID

	var first, second struct {
		EndedAt time.Time `json:"ended_at"`
	}
	status := env.do(token, http.MethodPost, "/sessions/"+sessionID+"/stop", nil, &first)
	require.Equal(t, http.StatusOK, status)
	status = env.do(token, http.MethodPost, "/sessions/"+sessionID+"/stop", nil, &second)
	require.Equal(t, http.StatusOK, status)

	assert.Equal(t, first.EndedAt, second.EndedAt)
}

func TestHealthz(t *testing.T) {
	env := newTestEnv(t, 30*time.Minute)

	var health struct {
		Status string `json:"status"`
	}
	status := env.do("", http.MethodGet, "/healthz", nil, &health)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "healthy", health.Status)
}
