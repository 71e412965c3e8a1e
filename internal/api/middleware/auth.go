package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/shelftrack/reading-tracker/internal/core/ports"
)

// Context keys set by Authenticate and read by downstream middleware/handlers.
const (
	ContextKeyUser  = "user"
	ContextKeyToken = "session_token"
)

// Authenticate resolves the session credential to an active user and injects
// it into the request context. The cookie is the primary credential carrier;
// a bearer Authorization header is accepted as a fallback for API clients.
//
// Failures are returned as-is so the central error handler can distinguish
// ErrUnauthenticated from ErrInactiveAccount.
func Authenticate(auth ports.AuthService, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := tokenFromRequest(c, cookieName)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required - please login")
			}

			user, err := auth.Authenticate(c.Request().Context(), token)
			if err != nil {
				return err
			}

			c.Set(ContextKeyUser, user)
			c.Set(ContextKeyToken, token)
			return next(c)
		}
	}
}

func tokenFromRequest(c echo.Context, cookieName string) string {
	if cookie, err := c.Cookie(cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := c.Request().Header.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return parts[1]
	}
	return ""
}
