package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors forming the service-wide error taxonomy. Services wrap
// these with fmt.Errorf("...: %w", err) so callers can match with errors.Is.
var (
	// ErrUnauthenticated covers missing, malformed, expired, or revoked
	// credentials, and tokens whose subject cannot be resolved.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrInactiveAccount means the credential was valid but the account is
	// disabled. Deliberately distinct from ErrUnauthenticated.
	ErrInactiveAccount = errors.New("account is inactive")

	// ErrForbidden means the caller is authenticated and active but lacks
	// the permission, or failed an ownership check.
	ErrForbidden = errors.New("access forbidden")

	ErrUserNotFound  = errors.New("user not found")
	ErrBookNotFound  = errors.New("book not found")
	ErrEntryNotFound = errors.New("reading entry not found")

	// ErrValidation marks input outside its allowed domain (rating out of
	// range, oversized review, progress outside 0-100).
	ErrValidation = errors.New("validation failed")

	// ErrConflict surfaces storage uniqueness violations (duplicate email).
	ErrConflict = errors.New("resource already exists")
)

// PermissionDeniedError reports which permissions were evaluated when an
// authorization policy denied the request. It unwraps to ErrForbidden so
// errors.Is(err, ErrForbidden) holds.
type PermissionDeniedError struct {
	// Mode is the policy that failed: "one", "any", or "all".
	Mode        string
	Permissions []Permission
}

func (e *PermissionDeniedError) Error() string {
	names := make([]string, len(e.Permissions))
	for i, p := range e.Permissions {
		names[i] = string(p)
	}
	switch e.Mode {
	case "any":
		return fmt.Sprintf("permission denied: one of [%s] required", strings.Join(names, ", "))
	case "all":
		return fmt.Sprintf("permission denied: all of [%s] required", strings.Join(names, ", "))
	default:
		return fmt.Sprintf("permission denied: %s required", strings.Join(names, ", "))
	}
}

func (e *PermissionDeniedError) Unwrap() error { return ErrForbidden }
