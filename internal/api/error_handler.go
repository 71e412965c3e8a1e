package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/shelftrack/reading-tracker/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
//
// When env is "development" the real cause of unexpected errors is echoed
// back to ease local debugging.
func NewHTTPErrorHandler(log zerolog.Logger, env string) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c, env)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context, env string) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes. InactiveAccount is
	// checked before the generic unauthenticated case so a disabled account
	// reads as forbidden, not as a bad credential.
	switch {
	case errors.Is(err, domain.ErrInactiveAccount):
		return http.StatusForbidden, "account is inactive"
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, "authentication required - please login"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, forbiddenMessage(err)
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, domain.ErrBookNotFound):
		return http.StatusNotFound, "book not found"
	case errors.Is(err, domain.ErrEntryNotFound):
		return http.StatusNotFound, "reading entry not found"
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, err.Error()
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, "service temporarily unavailable"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	if env == "development" {
		return http.StatusInternalServerError, err.Error()
	}
	return http.StatusInternalServerError, "internal server error"
}

// forbiddenMessage surfaces the missing permissions when the denial came
// from a permission policy; ownership denials stay generic.
func forbiddenMessage(err error) string {
	var denied *domain.PermissionDeniedError
	if errors.As(err, &denied) {
		return denied.Error()
	}
	return "access forbidden"
}
