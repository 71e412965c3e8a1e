package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedKeyPrefix = "session:revoked:"

// RevocationStore is a Redis-backed denylist of revoked session token IDs.
// Logout writes the token's jti with a TTL matching the token's remaining
// lifetime; once the token would have expired anyway the key evaporates.
type RevocationStore struct {
	client *redis.Client
}

func NewRevocationStore(client *redis.Client) *RevocationStore {
	return &RevocationStore{client: client}
}

// Revoke marks a token ID as revoked for the given duration. A non-positive
// ttl means the token is already expired and there is nothing to deny.
func (s *RevocationStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := s.client.Set(ctx, revokedKeyPrefix+tokenID, "1", ttl).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

// IsRevoked reports whether a token ID is on the denylist.
func (s *RevocationStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, revokedKeyPrefix+tokenID).Result()
	if err != nil {
		return false, fmt.Errorf("check revoked token: %w", err)
	}
	return n > 0, nil
}
