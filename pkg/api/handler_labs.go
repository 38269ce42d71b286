package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/codeready-toolchain/dockhand/pkg/apierr"
	"github.com/codeready-toolchain/dockhand/pkg/notify"
)

// submitTimeout bounds one grading invocation end to end: the build cap
// plus container start, probing, and cleanup.
const submitTimeout = 6 * time.Minute

// listLabsHandler handles GET /labs.
func (s *Server) listLabsHandler(c *echo.Context) error {
	return c.JSON(http.StatusOK, s.catalog.List())
}

// getLabHandler handles GET /labs/:slug.
func (s *Server) getLabHandler(c *echo.Context) error {
	slug := c.Param("slug")
	if _, ok := s.catalog.Get(slug); !ok {
		return respondError(c, apierr.Newf(apierr.CodeLabNotFound, "unknown lab %q", slug))
	}
	detail, err := s.catalog.Describe(slug)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, detail)
}

// startSessionHandler handles POST /labs/:slug/start.
func (s *Server) startSessionHandler(c *echo.Context) error {
	u := currentUser(c)
	result, err := s.sessionService.Start(c.Request().Context(), u.ID, c.Param("slug"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// activeSessionHandler handles GET /labs/:slug/session.
func (s *Server) activeSessionHandler(c *echo.Context) error {
	u := currentUser(c)
	detail, err := s.sessionService.GetActive(c.Request().Context(), u.ID, c.Param("slug"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, detail)
}

// submitHandler handles POST /labs/:slug/check: run the lab's grader
// against the session's workspace and append the attempt.
//
// Grading failures are data inside the 200 response; only infrastructure
// problems surface as HTTP errors.
func (s *Server) submitHandler(c *echo.Context) error {
	u := currentUser(c)
	slug := c.Param("slug")

	var req SubmitRequest
	if err := c.Bind(&req); err != nil || req.SessionID == "" {
		return respondError(c, apierr.New(apierr.CodeSessionNotFound, "session_id is required"))
	}

	lab, ok := s.catalog.Get(slug)
	if !ok {
		return respondError(c, apierr.Newf(apierr.CodeLabNotFound, "unknown lab %q", slug))
	}

	session, err := s.sessionService.RequireLive(c.Request().Context(), req.SessionID, u.ID)
	if err != nil {
		if apierr.Is(err, apierr.CodeWorkerMissing) {
			s.sessionService.EndForWorkerMissing(req.SessionID)
		}
		return respondError(c, err)
	}
	if session.LabSlug != slug {
		return respondError(c, apierr.Newf(apierr.CodeSessionNotFound,
			"session %s belongs to lab %q", session.SessionID, session.LabSlug))
	}

	gradeCtx, cancel := context.WithTimeout(c.Request().Context(), submitTimeout)
	defer cancel()

	scoped := s.supClient.ForSession(session.SessionID)
	result, err := s.graders.Evaluate(gradeCtx, lab, session.SessionID, scoped)
	if err != nil {
		if apierr.Is(err, apierr.CodeWorkerMissing) {
			s.sessionService.EndForWorkerMissing(session.SessionID)
			return respondError(c, apierr.New(apierr.CodeSessionExpired, "the session's worker is gone"))
		}
		if apierr.CodeOf(err) != apierr.CodeInternal {
			return respondError(c, err)
		}
		return respondError(c, apierr.Wrap(apierr.CodeGraderUnavailable, "grading failed", err))
	}

	passedBefore, err := s.attemptService.HasPassed(c.Request().Context(), session.SessionID)
	if err != nil {
		return respondError(c, err)
	}

	attempt, err := s.attemptService.Record(c.Request().Context(), session.SessionID, slug, *result)
	if err != nil {
		return respondError(c, err)
	}

	if attempt.Passed && !passedBefore {
		input := notify.AttemptPassedInput{
			SessionID:    session.SessionID,
			LabSlug:      slug,
			UserEmail:    u.Email,
			AttemptIndex: attempt.AttemptIndex,
		}
		if size, ok := buildImageSize(attempt.Metrics); ok {
			input.ImageSizeMB = size
		}
		go s.notifier.NotifyAttemptPassed(context.Background(), input)
	}

	return c.JSON(http.StatusOK, attempt)
}

func buildImageSize(metrics map[string]interface{}) (float64, bool) {
	build, ok := metrics["build"].(map[string]interface{})
	if !ok {
		return 0, false
	}
	size, ok := build["image_size_mb"].(float64)
	return size, ok
}
