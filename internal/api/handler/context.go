package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/shelftrack/reading-tracker/internal/api/middleware"
	"github.com/shelftrack/reading-tracker/internal/core/domain"
)

// currentUser extracts the authenticated user injected by the Authenticate
// middleware. Presence proves the middleware ran; a handler reached without
// it is a routing mistake, answered with 401 rather than a panic.
func currentUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(middleware.ContextKeyUser).(*domain.User)
	if !ok || user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication context")
	}
	return user, nil
}

// sessionToken returns the raw credential the request authenticated with.
func sessionToken(c echo.Context) string {
	token, _ := c.Get(middleware.ContextKeyToken).(string)
	return token
}

// pathUUID parses a UUID path parameter, answering 400 on malformed input.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, name+" must be a valid UUID")
	}
	return id, nil
}
