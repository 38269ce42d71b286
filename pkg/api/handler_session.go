package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/codeready-toolchain/dockhand/pkg/apierr"
	"github.com/codeready-toolchain/dockhand/pkg/models"
	"github.com/codeready-toolchain/dockhand/pkg/supervisor"
)

// getSessionHandler handles GET /sessions/:id?limit=N.
// Works for ended sessions too — attempt history outlives the session.
func (s *Server) getSessionHandler(c *echo.Context) error {
	u := currentUser(c)
	sessionID := c.Param("id")

	limit := 10
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 50 {
			return respondError(c, apierr.New(apierr.CodeInvalidPath, "limit must be between 1 and 50"))
		}
		limit = n
	}

	session, err := s.sessionService.Get(c.Request().Context(), sessionID, u.ID)
	if err != nil {
		return respondError(c, err)
	}

	attempts, err := s.attemptService.List(c.Request().Context(), sessionID, limit)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, &models.SessionWithAttempts{
		Session:  *session,
		Attempts: attempts,
	})
}

// stopSessionHandler handles POST /sessions/:id/stop. Idempotent: stopping
// twice returns the same ended_at.
func (s *Server) stopSessionHandler(c *echo.Context) error {
	u := currentUser(c)
	sessionID := c.Param("id")

	endedAt, err := s.sessionService.Stop(c.Request().Context(), sessionID, u.ID)
	if err != nil {
		return respondError(c, err)
	}

	s.agentLimit.Forget(sessionID)

	return c.JSON(http.StatusOK, &StopResponse{
		SessionID: sessionID,
		EndedAt:   endedAt,
	})
}

// buildHandler handles POST /sessions/:id/build: a user-initiated build
// proxied through the supervisor. A failed build is a 200 with
// success=false, mirroring how grading treats builds.
func (s *Server) buildHandler(c *echo.Context) error {
	u := currentUser(c)
	sessionID := c.Param("id")

	var req BuildRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apierr.New(apierr.CodeInvalidPath, "invalid request body"))
	}
	if req.ContextPath == "" {
		req.ContextPath = "."
	}
	if req.DockerfilePath == "" {
		req.DockerfilePath = "Dockerfile"
	}

	session, err := s.sessionService.RequireLive(c.Request().Context(), sessionID, u.ID)
	if err != nil {
		return respondError(c, err)
	}

	result, err := s.supClient.Build(c.Request().Context(), supervisor.BuildRequest{
		SessionID:      session.SessionID,
		ContextPath:    req.ContextPath,
		DockerfilePath: req.DockerfilePath,
		ImageTag:       "workbench-" + session.SessionID[:8],
	})
	if err != nil {
		if apierr.Is(err, apierr.CodeWorkerMissing) {
			s.sessionService.EndForWorkerMissing(session.SessionID)
			return respondError(c, apierr.New(apierr.CodeSessionExpired, "the session's worker is gone"))
		}
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

// inspectorHandler handles GET /sessions/:id/inspector.
func (s *Server) inspectorHandler(c *echo.Context) error {
	u := currentUser(c)
	sessionID := c.Param("id")

	// Ownership check; the inspector also works on ended sessions.
	if _, err := s.sessionService.Get(c.Request().Context(), sessionID, u.ID); err != nil {
		return respondError(c, err)
	}

	report, err := s.inspectorService.Report(c.Request().Context(), sessionID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, report)
}
