package api

import (
	"github.com/coder/websocket"
	echo "github.com/labstack/echo/v5"

	"github.com/codeready-toolchain/dockhand/pkg/runner/terminal"
)

// terminalHandler handles GET /workers/:session/terminal: upgrade to a
// WebSocket and bridge it to a TTY shell inside the worker.
//
// The terminal takes no session lock — a long-lived shell must not block
// builds and filesystem writes for its session.
func (s *Server) terminalHandler(c *echo.Context) error {
	w, err := s.workers.Get(c.Param("session"))
	if err != nil {
		return respondError(c, err)
	}

	conn, err := websocket.Accept(c.Response(), c.Request(), &websocket.AcceptOptions{
		// Only the orchestrator reaches this listener; it dials without
		// a browser origin.
		InsecureSkipVerify: true,
	})
	if err != nil {
		return err
	}

	return terminal.Attach(c.Request().Context(), s.engine, w.ContainerID,
		c.QueryParam("shell"), s.cfg.WorkspaceMount, conn)
}
