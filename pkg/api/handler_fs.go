package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/codeready-toolchain/dockhand/pkg/apierr"
	"github.com/codeready-toolchain/dockhand/pkg/supervisor"
)

// The filesystem handlers are thin proxies: the supervisor owns path
// sandboxing and the actual bytes; the orchestrator contributes only
// authentication, ownership, and liveness.

func (s *Server) fsSession(c *echo.Context, sessionID string) (string, error) {
	u := currentUser(c)
	session, err := s.sessionService.RequireLive(c.Request().Context(), sessionID, u.ID)
	if err != nil {
		return "", err
	}
	return session.SessionID, nil
}

// fsProxyError reconciles worker_missing into an ended session before
// surfacing the error.
func (s *Server) fsProxyError(c *echo.Context, sessionID string, err error) error {
	if apierr.Is(err, apierr.CodeWorkerMissing) {
		s.sessionService.EndForWorkerMissing(sessionID)
		return respondError(c, apierr.New(apierr.CodeSessionExpired, "the session's worker is gone"))
	}
	return respondError(c, err)
}

// fsListHandler handles GET /fs/:session/list?path=...
func (s *Server) fsListHandler(c *echo.Context) error {
	sessionID, err := s.fsSession(c, c.Param("session"))
	if err != nil {
		return respondError(c, err)
	}

	result, err := s.supClient.FSList(c.Request().Context(), sessionID, c.QueryParam("path"))
	if err != nil {
		return s.fsProxyError(c, sessionID, err)
	}
	return c.JSON(http.StatusOK, result)
}

// fsReadHandler handles GET /fs/:session/read?path=...
func (s *Server) fsReadHandler(c *echo.Context) error {
	sessionID, err := s.fsSession(c, c.Param("session"))
	if err != nil {
		return respondError(c, err)
	}

	result, err := s.supClient.FSRead(c.Request().Context(), sessionID, c.QueryParam("path"))
	if err != nil {
		return s.fsProxyError(c, sessionID, err)
	}
	return c.JSON(http.StatusOK, result)
}

// fsWriteHandler handles POST /fs/write.
func (s *Server) fsWriteHandler(c *echo.Context) error {
	var req FSWriteRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apierr.New(apierr.CodeInvalidPath, "invalid request body"))
	}

	sessionID, err := s.fsSession(c, req.SessionID)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.supClient.FSWrite(c.Request().Context(), supervisor.WriteRequest{
		SessionID:  sessionID,
		Path:       req.Path,
		ContentB64: req.ContentB64,
	}); err != nil {
		return s.fsProxyError(c, sessionID, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// fsCreateHandler handles POST /fs/create.
func (s *Server) fsCreateHandler(c *echo.Context) error {
	var req FSCreateRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apierr.New(apierr.CodeInvalidPath, "invalid request body"))
	}
	if req.Kind != "file" && req.Kind != "directory" {
		return respondError(c, apierr.New(apierr.CodeInvalidPath, `kind must be "file" or "directory"`))
	}

	sessionID, err := s.fsSession(c, req.SessionID)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.supClient.FSCreate(c.Request().Context(), supervisor.CreateRequest{
		SessionID:  sessionID,
		Path:       req.Path,
		Kind:       req.Kind,
		ContentB64: req.ContentB64,
	}); err != nil {
		return s.fsProxyError(c, sessionID, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// fsRenameHandler handles POST /fs/rename.
func (s *Server) fsRenameHandler(c *echo.Context) error {
	var req FSRenameRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apierr.New(apierr.CodeInvalidPath, "invalid request body"))
	}

	sessionID, err := s.fsSession(c, req.SessionID)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.supClient.FSRename(c.Request().Context(), supervisor.RenameRequest{
		SessionID: sessionID,
		Path:      req.Path,
		NewPath:   req.NewPath,
	}); err != nil {
		return s.fsProxyError(c, sessionID, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// fsDeleteHandler handles POST /fs/delete.
func (s *Server) fsDeleteHandler(c *echo.Context) error {
	var req FSDeleteRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apierr.New(apierr.CodeInvalidPath, "invalid request body"))
	}

	sessionID, err := s.fsSession(c, req.SessionID)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.supClient.FSDelete(c.Request().Context(), supervisor.DeleteRequest{
		SessionID: sessionID,
		Path:      req.Path,
	}); err != nil {
		return s.fsProxyError(c, sessionID, err)
	}
	return c.NoContent(http.StatusNoContent)
}
