package api

import (
	"net/http"
	"strings"

	echo "github.com/labstack/echo/v5"

	"github.com/codeready-toolchain/dockhand/ent"
	"github.com/codeready-toolchain/dockhand/pkg/apierr"
)

// userContextKey is where the authenticated user lives in the echo context.
const userContextKey = "dockhand.user"

// securityHeaders returns middleware that sets standard security response headers.
func securityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			h := c.Response().Header()
			h.Set("X-Frame-Options", "DENY")
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			return next(c)
		}
	}
}

// requireUser returns middleware that resolves the bearer token to a user
// and stores it in the request context. Terminal WebSocket upgrades cannot
// set headers from the browser, so a token query parameter is accepted as
// a fallback.
func (s *Server) requireUser() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			token := bearerToken(c.Request())
			if token == "" {
				token = c.QueryParam("token")
			}
			if token == "" {
				return respondError(c, apierr.New(apierr.CodeUnauthenticated, "missing bearer token"))
			}

			u, err := s.userService.Validate(c.Request().Context(), token)
			if err != nil {
				return respondError(c, err)
			}

			c.Set(userContextKey, u)
			return next(c)
		}
	}
}

// currentUser returns the authenticated user stored by requireUser.
func currentUser(c *echo.Context) *ent.User {
	u, _ := c.Get(userContextKey).(*ent.User)
	return u
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(auth) > len(prefix) && strings.EqualFold(auth[:len(prefix)], prefix) {
		return auth[len(prefix):]
	}
	return ""
}
