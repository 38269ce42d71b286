package api

import (
	"context"
	"errors"
	"time"

	"github.com/coder/websocket"
	echo "github.com/labstack/echo/v5"

	"github.com/codeready-toolchain/dockhand/pkg/apierr"
)

// closeGrace bounds how long after one side of the proxy closes the other
// side may stay open.
const closeGrace = 2 * time.Second

// terminalProxyHandler handles GET /ws/terminal/:session.
//
// The proxy forwards frames byte-for-byte in both directions: binary frames
// are raw PTY bytes, text frames are client control messages (resize, ping)
// that the supervisor interprets. Reading one frame at a time before
// forwarding keeps the buffered window per direction at a single frame, so
// backpressure propagates through the underlying transports.
func (s *Server) terminalProxyHandler(c *echo.Context) error {
	u := currentUser(c)
	sessionID := c.Param("session")

	session, err := s.sessionService.RequireLive(c.Request().Context(), sessionID, u.ID)
	if err != nil {
		// The upgrade has not happened yet, so auth/liveness failures are
		// plain HTTP errors; no policy (1008) close is sent.
		return respondError(c, err)
	}

	clientConn, err := websocket.Accept(c.Response(), c.Request(), &websocket.AcceptOptions{
		// The bearer token is the access control; origins are enforced by
		// the CORS layer for the REST surface and checked here only when
		// configured.
		OriginPatterns: s.cfg.CORSAllowOrigins,
	})
	if err != nil {
		return err
	}

	dialCtx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	supConn, _, err := websocket.Dial(dialCtx, s.supClient.TerminalURL(session.SessionID, c.QueryParam("shell")), nil)
	cancel()
	if err != nil {
		if apierr.Is(err, apierr.CodeWorkerMissing) {
			s.sessionService.EndForWorkerMissing(session.SessionID)
		}
		clientConn.Close(websocket.StatusInternalError, "terminal unavailable")
		return nil
	}

	proxyCtx, cancelProxy := context.WithCancel(c.Request().Context())
	defer cancelProxy()

	errs := make(chan error, 2)
	go func() { errs <- pumpFrames(proxyCtx, clientConn, supConn) }()
	go func() { errs <- pumpFrames(proxyCtx, supConn, clientConn) }()

	firstErr := <-errs
	cancelProxy()

	// Mirror the close code to the still-open side, then give the second
	// pump the grace window to drain.
	status := websocket.CloseStatus(firstErr)
	if status == -1 {
		if errors.Is(firstErr, context.Canceled) {
			status = websocket.StatusNormalClosure
		} else {
			status = websocket.StatusInternalError
		}
	}
	clientConn.Close(status, "")
	supConn.Close(status, "")

	select {
	case <-errs:
	case <-time.After(closeGrace):
	}

	return nil
}

// pumpFrames copies frames from src to dst until either side closes.
func pumpFrames(ctx context.Context, src, dst *websocket.Conn) error {
	for {
		typ, data, err := src.Read(ctx)
		if err != nil {
			return err
		}
		if err := dst.Write(ctx, typ, data); err != nil {
			return err
		}
	}
}
