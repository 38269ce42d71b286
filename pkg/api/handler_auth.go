package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/codeready-toolchain/dockhand/pkg/apierr"
)

// oauthHandler handles POST /auth/oauth/:provider.
// The web UI performs the actual OAuth dance; this endpoint exchanges the
// verified identity claim for a dockhand user and bearer token.
func (s *Server) oauthHandler(c *echo.Context) error {
	provider := c.Param("provider")

	var req OAuthRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apierr.New(apierr.CodeInvalidIdentity, "invalid request body"))
	}

	result, err := s.userService.Authenticate(
		c.Request().Context(), provider, req.ProviderAccountID, req.Email, req.Name, req.AvatarURL)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

// whoamiHandler handles GET /auth/me.
func (s *Server) whoamiHandler(c *echo.Context) error {
	u := currentUser(c)
	view, err := s.userService.Get(c.Request().Context(), u.ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, view)
}

// logoutHandler handles POST /auth/logout: the presented token is revoked
// and fails validation from now on.
func (s *Server) logoutHandler(c *echo.Context) error {
	token := bearerToken(c.Request())
	if err := s.userService.Revoke(c.Request().Context(), token); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
