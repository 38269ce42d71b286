// Package api provides the orchestrator's HTTP and WebSocket API.
package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"

	"github.com/codeready-toolchain/dockhand/pkg/config"
	"github.com/codeready-toolchain/dockhand/pkg/database"
	"github.com/codeready-toolchain/dockhand/pkg/grader"
	"github.com/codeready-toolchain/dockhand/pkg/labs"
	"github.com/codeready-toolchain/dockhand/pkg/notify"
	"github.com/codeready-toolchain/dockhand/pkg/services"
	"github.com/codeready-toolchain/dockhand/pkg/supervisor"
	"github.com/codeready-toolchain/dockhand/pkg/version"
)

// Server is the orchestrator HTTP API server.
type Server struct {
	echo       *echo.Echo
	httpServer *http.Server
	cfg        *config.Config
	dbClient   *database.Client

	userService      *services.UserService
	sessionService   *services.SessionService
	attemptService   *services.AttemptService
	inspectorService *services.InspectorService

	catalog    *labs.Catalog
	supClient  *supervisor.Client
	graders    *grader.Registry       // nil until set
	notifier   *notify.Service        // nil-safe; optional
	agentLimit *slidingWindowLimiter
}

// NewServer creates a new API server with Echo v5.
func NewServer(
	cfg *config.Config,
	dbClient *database.Client,
	userService *services.UserService,
	sessionService *services.SessionService,
	attemptService *services.AttemptService,
	inspectorService *services.InspectorService,
	catalog *labs.Catalog,
	supClient *supervisor.Client,
) *Server {
	e := echo.New()

	s := &Server{
		echo:             e,
		cfg:              cfg,
		dbClient:         dbClient,
		userService:      userService,
		sessionService:   sessionService,
		attemptService:   attemptService,
		inspectorService: inspectorService,
		catalog:          catalog,
		supClient:        supClient,
		agentLimit:       newSlidingWindowLimiter(cfg.AgentRateLimitPerMin, time.Minute),
	}

	s.setupRoutes()
	return s
}

// SetGraderRegistry sets the lab grader registry for submit handling.
func (s *Server) SetGraderRegistry(r *grader.Registry) {
	s.graders = r
}

// SetNotifier sets the optional pass-notification service.
func (s *Server) SetNotifier(n *notify.Service) {
	s.notifier = n
}

// ValidateWiring checks that all required services have been wired via
// their Set* methods, so wiring gaps are caught at startup rather than
// surfacing as 503s at request time.
func (s *Server) ValidateWiring() error {
	var errs []error
	if s.graders == nil {
		errs = append(errs, fmt.Errorf("grader registry not set (call SetGraderRegistry)"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("server wiring incomplete: %w", errors.Join(errs...))
	}
	return nil
}

// setupRoutes registers all API routes.
func (s *Server) setupRoutes() {
	// Server-wide body size limit. Filesystem writes carry base64 payloads,
	// so this sits well above typical source files but still rejects
	// multi-GB bodies at the HTTP read level.
	s.echo.Use(middleware.BodyLimit(8 * 1024 * 1024))
	s.echo.Use(securityHeaders())
	if len(s.cfg.CORSAllowOrigins) > 0 {
		s.echo.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: s.cfg.CORSAllowOrigins,
		}))
	}

	s.echo.GET("/healthz", s.healthzHandler)

	// Identity exchange is the only unauthenticated endpoint.
	s.echo.POST("/auth/oauth/:provider", s.oauthHandler)

	auth := s.echo.Group("", s.requireUser())
	auth.GET("/auth/me", s.whoamiHandler)
	auth.POST("/auth/logout", s.logoutHandler)

	auth.GET("/labs", s.listLabsHandler)
	auth.GET("/labs/:slug", s.getLabHandler)
	auth.POST("/labs/:slug/start", s.startSessionHandler)
	auth.GET("/labs/:slug/session", s.activeSessionHandler)
	auth.POST("/labs/:slug/check", s.submitHandler)

	auth.GET("/sessions/:id", s.getSessionHandler)
	auth.POST("/sessions/:id/stop", s.stopSessionHandler)
	auth.POST("/sessions/:id/build", s.buildHandler)
	auth.GET("/sessions/:id/inspector", s.inspectorHandler)

	auth.GET("/fs/:session/list", s.fsListHandler)
	auth.GET("/fs/:session/read", s.fsReadHandler)
	auth.POST("/fs/write", s.fsWriteHandler)
	auth.POST("/fs/create", s.fsCreateHandler)
	auth.POST("/fs/rename", s.fsRenameHandler)
	auth.POST("/fs/delete", s.fsDeleteHandler)

	auth.POST("/agent/hint", s.agentHandler("hint"))
	auth.POST("/agent/explain", s.agentHandler("explain"))
	auth.POST("/agent/patch", s.agentHandler("patch"))
	auth.POST("/agent/patch/apply", s.agentApplyHandler)

	// Terminal WebSocket; token arrives as a query parameter because the
	// browser WebSocket API cannot set headers.
	auth.GET("/ws/terminal/:session", s.terminalProxyHandler)
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
// Used by test infrastructure to serve on a random OS-assigned port.
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

	response := &HealthResponse{
		Status:  "healthy",
		Version: version.Full(),
		Checks:  map[string]HealthCheck{},
	}

	dbHealth, err := database.Health(reqCtx, s.dbClient.DB())
	if err != nil {
		response.Status = "unhealthy"
		response.Checks["store"] = HealthCheck{Status: "unhealthy", Message: err.Error()}
		return c.JSON(http.StatusServiceUnavailable, response)
	}
	response.Checks["store"] = HealthCheck{Status: dbHealth.Status}

	if err := s.supClient.Healthz(reqCtx); err != nil {
		response.Status = "degraded"
		response.Checks["supervisor"] = HealthCheck{Status: "unreachable"}
	} else {
		response.Checks["supervisor"] = HealthCheck{Status: "healthy"}
	}

	return c.JSON(http.StatusOK, response)
}
