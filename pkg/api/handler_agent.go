package api

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/codeready-toolchain/dockhand/pkg/apierr"
	"github.com/codeready-toolchain/dockhand/pkg/supervisor"
)

// agentHandler returns the handler for POST /agent/{hint,explain,patch}.
// The LLM adapter is an external collaborator; this endpoint contributes
// session-scoped rate limiting and forwards the prompt.
func (s *Server) agentHandler(kind string) echo.HandlerFunc {
	return func(c *echo.Context) error {
		var req AgentRequest
		if err := c.Bind(&req); err != nil || req.SessionID == "" {
			return respondError(c, apierr.New(apierr.CodeInvalidPath, "session_id is required"))
		}

		sessionID, err := s.fsSession(c, req.SessionID)
		if err != nil {
			return respondError(c, err)
		}

		if !s.agentLimit.Allow(sessionID) {
			return respondError(c, apierr.Newf(apierr.CodeRateLimited,
				"at most %d agent calls per minute per session", s.cfg.AgentRateLimitPerMin))
		}

		if s.cfg.AgentBaseURL == "" {
			return respondError(c, apierr.New(apierr.CodeAgentUnavailable, "agent adapter is not configured"))
		}

		body, err := json.Marshal(req)
		if err != nil {
			return respondError(c, err)
		}

		agentCtx, cancel := s.agentContext(c)
		defer cancel()

		httpReq, err := http.NewRequestWithContext(agentCtx,
			http.MethodPost, s.cfg.AgentBaseURL+"/"+kind, bytes.NewReader(body))
		if err != nil {
			return respondError(c, err)
		}
		httpReq.Header.Set("Content-Type", "application/json")

		resp, err := http.DefaultClient.Do(httpReq)
		if err != nil {
			return respondError(c, apierr.Wrap(apierr.CodeAgentUnavailable, "agent adapter unreachable", err))
		}
		defer resp.Body.Close()

		payload, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		if err != nil {
			return respondError(c, apierr.Wrap(apierr.CodeAgentUnavailable, "agent adapter read failed", err))
		}

		return c.Blob(resp.StatusCode, "application/json", payload)
	}
}

func (s *Server) agentContext(c *echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), s.cfg.AgentTimeout)
}

// agentApplyHandler handles POST /agent/patch/apply: the files an agent
// proposed are written through the normal filesystem path, so path
// sandboxing applies unchanged.
func (s *Server) agentApplyHandler(c *echo.Context) error {
	var req AgentApplyRequest
	if err := c.Bind(&req); err != nil || req.SessionID == "" {
		return respondError(c, apierr.New(apierr.CodeInvalidPath, "session_id is required"))
	}

	sessionID, err := s.fsSession(c, req.SessionID)
	if err != nil {
		return respondError(c, err)
	}

	for _, file := range req.Files {
		if err := s.supClient.FSWrite(c.Request().Context(), supervisor.WriteRequest{
			SessionID:  sessionID,
			Path:       file.Path,
			ContentB64: base64.StdEncoding.EncodeToString([]byte(file.Content)),
		}); err != nil {
			return s.fsProxyError(c, sessionID, err)
		}
	}

	return c.JSON(http.StatusOK, map[string]int{"applied": len(req.Files)})
}
