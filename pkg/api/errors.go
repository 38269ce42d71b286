package api

import (
	"errors"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/codeready-toolchain/dockhand/pkg/apierr"
	"github.com/codeready-toolchain/dockhand/pkg/services"
)

// ErrorResponse is the error envelope every endpoint returns: a
// human-readable detail plus the stable machine code the frontend
// switches on.
type ErrorResponse struct {
	Detail string `json:"detail"`
	Code   string `json:"code,omitempty"`
}

// respondError maps service- and taxonomy-layer errors to the HTTP error
// envelope. Unexpected errors become internal_error with no internals in
// the body.
func respondError(c *echo.Context, err error) error {
	var taxErr *apierr.Error
	if errors.As(err, &taxErr) {
		return c.JSON(taxErr.HTTPStatus(), &ErrorResponse{
			Detail: taxErr.Detail,
			Code:   taxErr.Code,
		})
	}

	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return c.JSON(http.StatusBadRequest, &ErrorResponse{Detail: validErr.Error()})
	}
	if errors.Is(err, services.ErrNotFound) {
		return c.JSON(http.StatusNotFound, &ErrorResponse{Detail: "resource not found"})
	}

	// Unexpected error — log the cause, hide it from the body.
	slog.Error("Unexpected service error", "error", err)
	return c.JSON(http.StatusInternalServerError, &ErrorResponse{
		Detail: "internal server error",
		Code:   apierr.CodeInternal,
	})
}
