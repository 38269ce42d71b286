package api

import (
	"encoding/base64"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/codeready-toolchain/dockhand/pkg/apierr"
	"github.com/codeready-toolchain/dockhand/pkg/supervisor"
)

// Reads take no session lock: workspace writes are atomic (temp + rename),
// so a concurrent reader sees either the old or the new file.

// fsListHandler handles GET /workers/:session/fs/list?path=...
func (s *Server) fsListHandler(c *echo.Context) error {
	w, err := s.workers.Get(c.Param("session"))
	if err != nil {
		return respondError(c, err)
	}

	result, err := w.Workspace.List(c.QueryParam("path"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// fsReadHandler handles GET /workers/:session/fs/read?path=...
func (s *Server) fsReadHandler(c *echo.Context) error {
	w, err := s.workers.Get(c.Param("session"))
	if err != nil {
		return respondError(c, err)
	}

	data, err := w.Workspace.Read(c.QueryParam("path"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, &supervisor.ReadResult{
		ContentB64: base64.StdEncoding.EncodeToString(data),
	})
}

// fsWriteHandler handles POST /workers/:session/fs/write.
func (s *Server) fsWriteHandler(c *echo.Context) error {
	sessionID := c.Param("session")

	var req supervisor.WriteRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apierr.New(apierr.CodeInvalidPath, "invalid request body"))
	}

	data, err := base64.StdEncoding.DecodeString(req.ContentB64)
	if err != nil {
		return respondError(c, apierr.New(apierr.CodeInvalidPath, "content_b64 is not valid base64"))
	}

	w, err := s.workers.Get(sessionID)
	if err != nil {
		return respondError(c, err)
	}

	mu := s.sessionLock(sessionID)
	mu.Lock()
	defer mu.Unlock()

	if err := w.Workspace.Write(req.Path, data); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// fsCreateHandler handles POST /workers/:session/fs/create.
func (s *Server) fsCreateHandler(c *echo.Context) error {
	sessionID := c.Param("session")

	var req supervisor.CreateRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apierr.New(apierr.CodeInvalidPath, "invalid request body"))
	}
	if req.Kind != "file" && req.Kind != "directory" {
		return respondError(c, apierr.New(apierr.CodeInvalidPath, `kind must be "file" or "directory"`))
	}

	var data []byte
	if req.ContentB64 != "" {
		var err error
		data, err = base64.StdEncoding.DecodeString(req.ContentB64)
		if err != nil {
			return respondError(c, apierr.New(apierr.CodeInvalidPath, "content_b64 is not valid base64"))
		}
	}

	w, err := s.workers.Get(sessionID)
	if err != nil {
		return respondError(c, err)
	}

	mu := s.sessionLock(sessionID)
	mu.Lock()
	defer mu.Unlock()

	if err := w.Workspace.Create(req.Path, req.Kind, data); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// fsRenameHandler handles POST /workers/:session/fs/rename.
func (s *Server) fsRenameHandler(c *echo.Context) error {
	sessionID := c.Param("session")

	var req supervisor.RenameRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apierr.New(apierr.CodeInvalidPath, "invalid request body"))
	}

	w, err := s.workers.Get(sessionID)
	if err != nil {
		return respondError(c, err)
	}

	mu := s.sessionLock(sessionID)
	mu.Lock()
	defer mu.Unlock()

	if err := w.Workspace.Rename(req.Path, req.NewPath); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// fsDeleteHandler handles POST /workers/:session/fs/delete.
func (s *Server) fsDeleteHandler(c *echo.Context) error {
	sessionID := c.Param("session")

	var req supervisor.DeleteRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apierr.New(apierr.CodeInvalidPath, "invalid request body"))
	}

	w, err := s.workers.Get(sessionID)
	if err != nil {
		return respondError(c, err)
	}

	mu := s.sessionLock(sessionID)
	mu.Lock()
	defer mu.Unlock()

	if err := w.Workspace.Delete(req.Path); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
