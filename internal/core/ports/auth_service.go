package ports

import (
	"context"
	"time"

	"github.com/shelftrack/reading-tracker/internal/core/domain"
)

// Credential is a freshly issued session token with its expiry instant, so
// the transport layer can propagate it as a time-boxed cookie.
type Credential struct {
	Token     string
	ExpiresAt time.Time
}

// LoginResult is returned after a successful identity-provider login.
type LoginResult struct {
	User       *domain.User
	Credential Credential
}

// AuthService bridges the third-party identity provider and the service's
// own session tokens.
type AuthService interface {
	// LoginWithProvider verifies an identity-provider assertion, creates or
	// updates the matching user, and issues a session credential.
	LoginWithProvider(ctx context.Context, providerToken string) (*LoginResult, error)

	// Authenticate resolves a session token to an active user. Fails with
	// domain.ErrUnauthenticated for any credential problem and with
	// domain.ErrInactiveAccount when the account is disabled.
	Authenticate(ctx context.Context, token string) (*domain.User, error)

	// Refresh issues a new credential for an already-authenticated user.
	Refresh(ctx context.Context, user *domain.User) (Credential, error)

	// Logout revokes the given session token for its remaining lifetime.
	Logout(ctx context.Context, token string) error
}
