package revocation

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// RedisStore is a Store backed by Redis. Keys carry the entry's remaining
// lifetime as their TTL, so Redis prunes expired entries on its own and
// IsLive reduces to an existence check.
type RedisStore struct {
	rdb       *goredis.Client
	keyPrefix string
}

// NewRedisStore creates a Redis-backed revocation store. All keys are
// prefixed with keyPrefix followed by a colon separator.
func NewRedisStore(rdb *goredis.Client, keyPrefix string) *RedisStore {
	if keyPrefix == "" {
		keyPrefix = "refresh"
	}
	return &RedisStore{rdb: rdb, keyPrefix: keyPrefix}
}

func (s *RedisStore) key(tokenID string) string {
	return s.keyPrefix + ":" + tokenID
}

// Register stores the entry with a TTL reaching to its expiry. An entry that
// is already expired is not written at all.
func (s *RedisStore) Register(ctx context.Context, tokenID string, userID uint, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	data, err := json.Marshal(Entry{TokenID: tokenID, UserID: userID, ExpiresAt: expiresAt})
	if err != nil {
		return fmt.Errorf("revocation: marshal entry %q: %w", tokenID, err)
	}
	if err := s.rdb.Set(ctx, s.key(tokenID), data, ttl).Err(); err != nil {
		return fmt.Errorf("revocation: register %q: %w", tokenID, err)
	}
	return nil
}

// IsLive reports whether the key still exists.
func (s *RedisStore) IsLive(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.rdb.Exists(ctx, s.key(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("revocation: liveness check %q: %w", tokenID, err)
	}
	return n > 0, nil
}

// Revoke deletes the key. Deleting a missing key is a no-op in Redis, which
// matches the idempotency contract.
func (s *RedisStore) Revoke(ctx context.Context, tokenID string) error {
	if err := s.rdb.Del(ctx, s.key(tokenID)).Err(); err != nil {
		return fmt.Errorf("revocation: revoke %q: %w", tokenID, err)
	}
	return nil
}

var _ Store = (*RedisStore)(nil)
