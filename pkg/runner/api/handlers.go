package api

import (
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/codeready-toolchain/dockhand/pkg/apierr"
	"github.com/codeready-toolchain/dockhand/pkg/supervisor"
)

// startHandler handles POST /workers/start.
func (s *Server) startHandler(c *echo.Context) error {
	var req supervisor.StartWorkerRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apierr.New(apierr.CodeInvalidPath, "invalid request body"))
	}

	mu := s.sessionLock(req.SessionID)
	mu.Lock()
	defer mu.Unlock()

	resp, err := s.workers.Start(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// stopHandler handles POST /workers/:session/stop.
func (s *Server) stopHandler(c *echo.Context) error {
	sessionID := c.Param("session")

	mu := s.sessionLock(sessionID)
	mu.Lock()
	err := s.workers.Stop(c.Request().Context(), sessionID)
	mu.Unlock()
	s.forgetLock(sessionID)

	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "stopped"})
}

// buildHandler handles POST /workers/:session/build.
func (s *Server) buildHandler(c *echo.Context) error {
	sessionID := c.Param("session")

	var req supervisor.BuildRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apierr.New(apierr.CodeInvalidPath, "invalid request body"))
	}
	req.SessionID = sessionID

	w, err := s.workers.Get(sessionID)
	if err != nil {
		return respondError(c, err)
	}

	mu := s.sessionLock(sessionID)
	mu.Lock()
	defer mu.Unlock()

	result, err := s.engine.Build(c.Request().Context(), w.ContainerID, s.cfg.WorkspaceMount, req, s.cfg.BuildTimeout)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// runHandler handles POST /workers/:session/run.
func (s *Server) runHandler(c *echo.Context) error {
	sessionID := c.Param("session")

	var req supervisor.RunRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apierr.New(apierr.CodeInvalidPath, "invalid request body"))
	}
	req.SessionID = sessionID

	w, err := s.workers.Get(sessionID)
	if err != nil {
		return respondError(c, err)
	}

	mu := s.sessionLock(sessionID)
	mu.Lock()
	defer mu.Unlock()

	result, err := s.engine.Run(c.Request().Context(), w.ContainerID, req, s.cfg.ExecTimeout)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// stopRunHandler handles POST /workers/:session/stop-run.
func (s *Server) stopRunHandler(c *echo.Context) error {
	sessionID := c.Param("session")

	var req supervisor.StopRunRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apierr.New(apierr.CodeInvalidPath, "invalid request body"))
	}
	req.SessionID = sessionID

	w, err := s.workers.Get(sessionID)
	if err != nil {
		return respondError(c, err)
	}

	mu := s.sessionLock(sessionID)
	mu.Lock()
	defer mu.Unlock()

	if err := s.engine.StopRun(c.Request().Context(), w.ContainerID, req); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "stopped"})
}

// execHandler handles POST /workers/:session/exec.
func (s *Server) execHandler(c *echo.Context) error {
	sessionID := c.Param("session")

	var req supervisor.ExecRequest
	if err := c.Bind(&req); err != nil || len(req.Argv) == 0 {
		return respondError(c, apierr.New(apierr.CodeInvalidPath, "argv is required"))
	}

	w, err := s.workers.Get(sessionID)
	if err != nil {
		return respondError(c, err)
	}

	timeout := s.cfg.ExecTimeout
	if req.TimeoutSeconds > 0 {
		timeout = time.Duration(req.TimeoutSeconds) * time.Second
	}

	mu := s.sessionLock(sessionID)
	mu.Lock()
	defer mu.Unlock()

	result, err := s.engine.Exec(c.Request().Context(), w.ContainerID, req.Argv, req.Workdir, nil, timeout)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// runLogsHandler handles GET /workers/:session/containers/:ref/logs.
func (s *Server) runLogsHandler(c *echo.Context) error {
	sessionID := c.Param("session")

	w, err := s.workers.Get(sessionID)
	if err != nil {
		return respondError(c, err)
	}

	logs, err := s.engine.RunLogs(c.Request().Context(), w.ContainerID, c.Param("ref"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"logs": logs})
}
