package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/shelftrack/reading-tracker/internal/core/domain"
)

func contextWithUser(e *echo.Echo, role domain.Role) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	user := domain.NewUser("bob", "bob@example.com", "", time.Now().UTC())
	user.Role = role
	c.Set(ContextKeyUser, user)
	return c, rec
}

func TestRequirePermission_Granted(t *testing.T) {
	e := echo.New()
	c, rec := contextWithUser(e, domain.RoleStandardUser)

	handler := RequirePermission(domain.PermCreateBook)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequirePermission_Denied(t *testing.T) {
	e := echo.New()
	c, _ := contextWithUser(e, domain.RoleStandardUser)

	handler := RequirePermission(domain.PermManageUsers)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	var denied *domain.PermissionDeniedError
	if !errors.As(err, &denied) {
		t.Fatalf("expected PermissionDeniedError, got %T", err)
	}
	if denied.Mode != "one" || len(denied.Permissions) != 1 {
		t.Fatalf("unexpected policy details: %+v", denied)
	}
}

func TestRequireAnyPermission(t *testing.T) {
	e := echo.New()

	// One of the two is granted to standard users.
	c, rec := contextWithUser(e, domain.RoleStandardUser)
	handler := RequireAnyPermission(domain.PermEditBook, domain.PermEditOwnBook)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	// Neither is granted.
	c, _ = contextWithUser(e, domain.RoleStandardUser)
	handler = RequireAnyPermission(domain.PermManageUsers, domain.PermDeactivateUser)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})
	if err := handler(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestRequireAllPermissions(t *testing.T) {
	e := echo.New()

	c, rec := contextWithUser(e, domain.RoleAdmin)
	handler := RequireAllPermissions(domain.PermManageUsers, domain.PermViewAllUsers)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	// Standard users hold view_book but not edit_book.
	c, _ = contextWithUser(e, domain.RoleStandardUser)
	handler = RequireAllPermissions(domain.PermViewBook, domain.PermEditBook)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})
	if err := handler(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestRequirePolicy_MissingUser(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequirePermission(domain.PermViewBook)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
