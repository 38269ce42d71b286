// Package api exposes the supervisor's local HTTP and WebSocket contract,
// reached only from the orchestrator.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	echo "github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"

	"github.com/codeready-toolchain/dockhand/pkg/apierr"
	runnercfg "github.com/codeready-toolchain/dockhand/pkg/runner/config"
	"github.com/codeready-toolchain/dockhand/pkg/runner/engine"
	"github.com/codeready-toolchain/dockhand/pkg/runner/worker"
)

// Server is the supervisor HTTP API server.
type Server struct {
	echo       *echo.Echo
	httpServer *http.Server
	cfg        *runnercfg.Config
	engine     *engine.Engine
	workers    *worker.Manager

	// sessionLocks totally orders write operations within one session.
	// Entries are dropped when the session's worker stops.
	mu           sync.Mutex
	sessionLocks map[string]*sync.Mutex
}

// NewServer creates the supervisor API server.
func NewServer(cfg *runnercfg.Config, eng *engine.Engine, workers *worker.Manager) *Server {
	e := echo.New()

	s := &Server{
		echo:         e,
		cfg:          cfg,
		engine:       eng,
		workers:      workers,
		sessionLocks: make(map[string]*sync.Mutex),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// Filesystem writes arrive base64-encoded; 64 MB of body comfortably
	// covers the largest workspace file the UI will send.
	s.echo.Use(middleware.BodyLimit(64 * 1024 * 1024))

	s.echo.GET("/healthz", s.healthzHandler)

	s.echo.POST("/workers/start", s.startHandler)
	s.echo.POST("/workers/:session/stop", s.stopHandler)
	s.echo.POST("/workers/:session/build", s.buildHandler)
	s.echo.POST("/workers/:session/run", s.runHandler)
	s.echo.POST("/workers/:session/stop-run", s.stopRunHandler)
	s.echo.POST("/workers/:session/exec", s.execHandler)
	s.echo.GET("/workers/:session/containers/:ref/logs", s.runLogsHandler)

	s.echo.GET("/workers/:session/fs/list", s.fsListHandler)
	s.echo.GET("/workers/:session/fs/read", s.fsReadHandler)
	s.echo.POST("/workers/:session/fs/write", s.fsWriteHandler)
	s.echo.POST("/workers/:session/fs/create", s.fsCreateHandler)
	s.echo.POST("/workers/:session/fs/rename", s.fsRenameHandler)
	s.echo.POST("/workers/:session/fs/delete", s.fsDeleteHandler)

	s.echo.GET("/workers/:session/terminal", s.terminalHandler)
}

// sessionLock returns the mutex serializing writes for one session.
func (s *Server) sessionLock(sessionID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	mu, ok := s.sessionLocks[sessionID]
	if !ok {
		mu = &sync.Mutex{}
		s.sessionLocks[sessionID] = mu
	}
	return mu
}

// forgetLock garbage-collects a session's lock once its worker is gone.
func (s *Server) forgetLock(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessionLocks, sessionID)
}

// Start starts the HTTP server on the given address (blocking).
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

// StartWithListener starts the HTTP server on a pre-created listener.
func (s *Server) StartWithListener(ln net.Listener) error {
	s.httpServer = &http.Server{Handler: s.echo}
	return s.httpServer.Serve(ln)
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// healthzHandler handles GET /healthz.
func (s *Server) healthzHandler(c *echo.Context) error {
	reqCtx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := s.engine.Ping(reqCtx); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]interface{}{
			"status": "unhealthy",
			"engine": "unreachable",
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  "healthy",
		"workers": s.workers.Count(),
	})
}

// respondError writes the supervisor's error envelope.
func respondError(c *echo.Context, err error) error {
	var taxErr *apierr.Error
	if errors.As(err, &taxErr) {
		return c.JSON(taxErr.HTTPStatus(), map[string]string{
			"detail": taxErr.Detail,
			"code":   taxErr.Code,
		})
	}

	slog.Error("Unexpected supervisor error", "error", err)
	return c.JSON(http.StatusInternalServerError, map[string]string{
		"detail": "internal server error",
		"code":   apierr.CodeInternal,
	})
}
