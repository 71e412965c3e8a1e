package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/shelftrack/reading-tracker/internal/core/domain"
)

func renderError(t *testing.T, err error, env string) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop(), env)(err, c)

	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return rec.Code, resp.Error
}

func TestErrorHandler_DomainMapping(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"unauthenticated", domain.ErrUnauthenticated, http.StatusUnauthorized},
		{"inactive account", domain.ErrInactiveAccount, http.StatusForbidden},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound},
		{"book not found", domain.ErrBookNotFound, http.StatusNotFound},
		{"entry not found", domain.ErrEntryNotFound, http.StatusNotFound},
		{"validation", fmt.Errorf("progress out of range: %w", domain.ErrValidation), http.StatusBadRequest},
		{"conflict", domain.ErrConflict, http.StatusConflict},
		{"wrapped sentinel", fmt.Errorf("login: %w", domain.ErrInactiveAccount), http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, msg := renderError(t, tc.err, "production")
			if code != tc.wantCode {
				t.Errorf("expected %d, got %d", tc.wantCode, code)
			}
			if msg == "" {
				t.Error("expected a message")
			}
		})
	}
}

func TestErrorHandler_InactiveBeatsUnauthenticated(t *testing.T) {
	// A disabled account is a valid credential: it must read as 403, never 401.
	code, msg := renderError(t, domain.ErrInactiveAccount, "production")
	if code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", code)
	}
	if msg != "account is inactive" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestErrorHandler_PermissionDenialNamesPolicy(t *testing.T) {
	err := &domain.PermissionDeniedError{
		Mode:        "any",
		Permissions: []domain.Permission{domain.PermEditBook, domain.PermEditOwnBook},
	}

	code, msg := renderError(t, err, "production")
	if code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", code)
	}
	if msg != err.Error() {
		t.Fatalf("expected the policy detail, got %q", msg)
	}
}

func TestErrorHandler_EchoHTTPErrorPassthrough(t *testing.T) {
	code, _ := renderError(t, echo.NewHTTPError(http.StatusTeapot, "teapot"), "production")
	if code != http.StatusTeapot {
		t.Fatalf("expected 418, got %d", code)
	}
}

func TestErrorHandler_UnexpectedErrorIsOpaqueInProduction(t *testing.T) {
	code, msg := renderError(t, errors.New("connection reset by peer"), "production")
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if msg != "internal server error" {
		t.Fatalf("internal detail must not leak: %q", msg)
	}

	_, devMsg := renderError(t, errors.New("connection reset by peer"), "development")
	if devMsg != "connection reset by peer" {
		t.Fatalf("development mode should echo the cause, got %q", devMsg)
	}
}
