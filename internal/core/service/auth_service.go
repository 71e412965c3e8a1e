package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/shelftrack/reading-tracker/internal/core/domain"
	"github.com/shelftrack/reading-tracker/internal/core/ports"
)

// RevocationStore abstracts the logout denylist (Redis).
type RevocationStore interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// ProviderConfig holds the pre-shared verification material for the identity
// provider's externally-signed assertions.
type ProviderConfig struct {
	JWTSecret string
	Audience  string
}

// AuthService implements identity-provider login and session authentication.
type AuthService struct {
	users    ports.UserRepository
	tokens   *TokenIssuer
	revoked  RevocationStore
	provider ProviderConfig
	logger   zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	tokens *TokenIssuer,
	revoked RevocationStore,
	provider ProviderConfig,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		users:    users,
		tokens:   tokens,
		revoked:  revoked,
		provider: provider,
		logger:   logger,
	}
}

// LoginWithProvider verifies the identity-provider assertion, provisions or
// refreshes the matching user, and issues a session credential.
func (s *AuthService) LoginWithProvider(ctx context.Context, providerToken string) (*ports.LoginResult, error) {
	identity, err := s.verifyProviderToken(providerToken)
	if err != nil {
		return nil, err
	}

	user, err := s.upsertUser(ctx, identity)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, fmt.Errorf("login: %w", domain.ErrInactiveAccount)
	}

	token, expiresAt, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	s.logger.Info().Str("user_id", user.ID.String()).Str("email", user.Email).Msg("user logged in")

	return &ports.LoginResult{
		User:       user,
		Credential: ports.Credential{Token: token, ExpiresAt: expiresAt},
	}, nil
}

// Authenticate resolves a session token to an active user.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	revoked, err := s.revoked.IsRevoked(ctx, claims.TokenID)
	if err != nil {
		s.logger.Warn().Err(err).Msg("revocation check failed, treating token as live")
	} else if revoked {
		return nil, fmt.Errorf("%w: token has been revoked", domain.ErrUnauthenticated)
	}

	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: token subject unresolvable", domain.ErrUnauthenticated)
	}
	if !user.IsActive {
		return nil, fmt.Errorf("authenticate: %w", domain.ErrInactiveAccount)
	}

	return user, nil
}

// Refresh issues a fresh credential for an already-authenticated user.
func (s *AuthService) Refresh(ctx context.Context, user *domain.User) (ports.Credential, error) {
	token, expiresAt, err := s.tokens.Issue(user.ID)
	if err != nil {
		return ports.Credential{}, fmt.Errorf("refresh: %w", err)
	}
	return ports.Credential{Token: token, ExpiresAt: expiresAt}, nil
}

// Logout revokes the token for the remainder of its lifetime. The old
// credential stops working even though it is not yet expired.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return err
	}

	ttl := time.Until(claims.ExpiresAt)
	if ttl <= 0 {
		return nil
	}
	if err := s.revoked.Revoke(ctx, claims.TokenID, ttl); err != nil {
		return fmt.Errorf("logout: %w", err)
	}

	s.logger.Info().Str("user_id", claims.UserID.String()).Msg("session revoked")
	return nil
}

// providerIdentity is the subset of the provider assertion this service uses.
type providerIdentity struct {
	Email     string
	Username  string
	AvatarURL string
}

// verifyProviderToken checks the externally-signed assertion against the
// pre-shared secret and fixed audience, and extracts the profile fields.
func (s *AuthService) verifyProviderToken(token string) (*providerIdentity, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(tok *jwt.Token) (interface{}, error) {
		if tok.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.provider.JWTSecret), nil
	}, jwt.WithAudience(s.provider.Audience))
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf("%w: invalid provider token", domain.ErrUnauthenticated)
	}

	email, _ := claims["email"].(string)
	if email == "" {
		return nil, fmt.Errorf("%w: provider token missing email", domain.ErrUnauthenticated)
	}

	meta, _ := claims["user_metadata"].(map[string]interface{})
	username := firstString(meta, "user_name", "preferred_username")
	if username == "" {
		username = strings.SplitN(email, "@", 2)[0]
	}

	return &providerIdentity{
		Email:     email,
		Username:  username,
		AvatarURL: firstString(meta, "avatar_url", "picture"),
	}, nil
}

// upsertUser creates the account on first login and refreshes the mutable
// profile fields on subsequent logins. Role and is_active are never touched
// here; those change only through administrative actions.
func (s *AuthService) upsertUser(ctx context.Context, identity *providerIdentity) (*domain.User, error) {
	existing, err := s.users.FindByEmail(ctx, identity.Email)
	switch {
	case err == nil:
		existing.Username = identity.Username
		existing.AvatarURL = identity.AvatarURL
		existing.UpdatedAt = time.Now().UTC()
		if err := s.users.Update(ctx, existing); err != nil {
			return nil, fmt.Errorf("update user on login: %w", err)
		}
		return existing, nil
	case !errors.Is(err, domain.ErrUserNotFound):
		return nil, fmt.Errorf("lookup user on login: %w", err)
	}

	now := time.Now().UTC()
	user := domain.NewUser(identity.Username, identity.Email, identity.AvatarURL, now)
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("provision user: %w", err)
	}

	s.logger.Info().Str("user_id", user.ID.String()).Str("email", user.Email).Msg("user provisioned from provider")
	return user, nil
}

func firstString(m map[string]interface{}, keys ...string) string {
	for _, k := range keys {
		if v, ok := m[k].(string); ok && v != "" {
			return v
		}
	}
	return ""
}
