package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shelftrack/reading-tracker/internal/core/domain"
)

// policyMode tags the three authorization policy variants. Policies are a
// closed set evaluated by one pure function; no callables are injected.
type policyMode string

const (
	modeOne policyMode = "one"
	modeAny policyMode = "any"
	modeAll policyMode = "all"
)

type permissionPolicy struct {
	mode  policyMode
	perms []domain.Permission
}

// allows evaluates the policy against a role using only the permission
// registry.
func (p permissionPolicy) allows(role domain.Role) bool {
	switch p.mode {
	case modeAny:
		for _, perm := range p.perms {
			if domain.HasPermission(role, perm) {
				return true
			}
		}
		return false
	case modeAll:
		for _, perm := range p.perms {
			if !domain.HasPermission(role, perm) {
				return false
			}
		}
		return true
	default: // modeOne
		return len(p.perms) == 1 && domain.HasPermission(role, p.perms[0])
	}
}

// RequirePermission denies unless the authenticated role grants exactly
// this permission.
func RequirePermission(perm domain.Permission) echo.MiddlewareFunc {
	return requirePolicy(permissionPolicy{mode: modeOne, perms: []domain.Permission{perm}})
}

// RequireAnyPermission denies unless at least one permission is granted.
func RequireAnyPermission(perms ...domain.Permission) echo.MiddlewareFunc {
	return requirePolicy(permissionPolicy{mode: modeAny, perms: perms})
}

// RequireAllPermissions denies unless every permission is granted.
func RequireAllPermissions(perms ...domain.Permission) echo.MiddlewareFunc {
	return requirePolicy(permissionPolicy{mode: modeAll, perms: perms})
}

// requirePolicy composes after Authenticate: authentication problems have
// already short-circuited by the time permissions are evaluated.
func requirePolicy(policy permissionPolicy) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := c.Get(ContextKeyUser).(*domain.User)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication context")
			}

			if !policy.allows(user.Role) {
				return &domain.PermissionDeniedError{
					Mode:        string(policy.mode),
					Permissions: policy.perms,
				}
			}
			return next(c)
		}
	}
}
