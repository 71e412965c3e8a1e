package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/shelftrack/reading-tracker/internal/core/domain"
)

// TokenConfig holds everything the issuer/verifier needs. It is passed in
// explicitly so no process-wide configuration state is consulted.
type TokenConfig struct {
	Secret string
	Issuer string
	TTL    time.Duration
}

// TokenClaims is the verified content of a session token.
type TokenClaims struct {
	UserID    uuid.UUID
	TokenID   string
	ExpiresAt time.Time
}

// TokenIssuer mints and validates HS256 session tokens. Issue and Verify are
// symmetric: any token produced by Issue validates under Verify until its
// expiry and fails deterministically after.
type TokenIssuer struct {
	cfg TokenConfig
}

func NewTokenIssuer(cfg TokenConfig) *TokenIssuer {
	if cfg.TTL <= 0 {
		cfg.TTL = 24 * time.Hour
	}
	return &TokenIssuer{cfg: cfg}
}

// Issue builds a signed assertion for the given subject. The returned expiry
// lets the caller propagate the token as a time-boxed credential.
func (t *TokenIssuer) Issue(userID uuid.UUID) (string, time.Time, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(t.cfg.TTL)

	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		Issuer:    t.cfg.Issuer,
		ID:        uuid.NewString(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(t.cfg.Secret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign session token: %w", err)
	}
	return signed, expiresAt, nil
}

// Verify checks signature, issuer, and expiry, and resolves the subject.
// Every failure mode collapses into domain.ErrUnauthenticated.
func (t *TokenIssuer) Verify(token string) (*TokenClaims, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(tok *jwt.Token) (interface{}, error) {
		if tok.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(t.cfg.Secret), nil
	}, jwt.WithIssuer(t.cfg.Issuer), jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf("%w: invalid session token", domain.ErrUnauthenticated)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("%w: token subject unresolvable", domain.ErrUnauthenticated)
	}

	return &TokenClaims{
		UserID:    userID,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
