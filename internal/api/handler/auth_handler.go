package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/shelftrack/reading-tracker/internal/api/metrics"
	"github.com/shelftrack/reading-tracker/internal/core/domain"
	"github.com/shelftrack/reading-tracker/internal/core/ports"
)

// CookieConfig controls how the session cookie is written. Secure is off in
// local development so the cookie survives plain-HTTP testing.
type CookieConfig struct {
	Name   string
	Secure bool
}

type AuthHandler struct {
	authService ports.AuthService
	cookie      CookieConfig
}

func NewAuthHandler(authService ports.AuthService, cookie CookieConfig) *AuthHandler {
	return &AuthHandler{authService: authService, cookie: cookie}
}

type loginRequest struct {
	Token string `json:"token" validate:"required"`
}

type sessionResponse struct {
	Message   string       `json:"message"`
	User      *domain.User `json:"user"`
	ExpiresAt time.Time    `json:"expires_at"`
}

// Login exchanges an identity-provider assertion for a session cookie.
//
// @Summary      Login with an identity-provider token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Provider-issued JWT"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /api/v1/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.LoginWithProvider(c.Request().Context(), req.Token)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInactiveAccount):
			metrics.LoginsTotal.WithLabelValues("inactive_account").Inc()
		case errors.Is(err, domain.ErrUnauthenticated):
			metrics.LoginsTotal.WithLabelValues("invalid_token").Inc()
		}
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	h.setSessionCookie(c, result.Credential)
	return c.JSON(http.StatusOK, sessionResponse{
		Message:   "login successful",
		User:      result.User,
		ExpiresAt: result.Credential.ExpiresAt,
	})
}

// Refresh rotates the session credential for an authenticated user.
//
// @Summary      Refresh the session cookie
// @Tags         auth
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/auth/refresh [post]
func (h *AuthHandler) Refresh(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	cred, err := h.authService.Refresh(c.Request().Context(), user)
	if err != nil {
		return err
	}

	h.setSessionCookie(c, cred)
	return c.JSON(http.StatusOK, sessionResponse{
		Message:   "session refreshed",
		User:      user,
		ExpiresAt: cred.ExpiresAt,
	})
}

// Logout revokes the current session and clears the cookie.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/auth/logout [delete]
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.authService.Logout(c.Request().Context(), sessionToken(c)); err != nil {
		return err
	}
	metrics.SessionsRevokedTotal.Inc()

	h.clearSessionCookie(c)
	return c.JSON(http.StatusOK, map[string]string{"message": "logout successful"})
}

// Me returns the authenticated user's own profile.
//
// @Summary      Current user profile
// @Tags         auth
// @Produce      json
// @Success      200  {object}  domain.User
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) setSessionCookie(c echo.Context, cred ports.Credential) {
	c.SetCookie(&http.Cookie{
		Name:     h.cookie.Name,
		Value:    cred.Token,
		Path:     "/",
		Expires:  cred.ExpiresAt,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
