package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultCredentialTTL = 5 * time.Minute

// CredentialCache remembers recent successful password verifications so the
// per-request basic-auth check can skip the bcrypt compare.
// Key format: auth:<username>:<fingerprint>
type CredentialCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCredentialCache wraps the given Redis client. A non-positive ttl falls
// back to the default.
func NewCredentialCache(client *redis.Client, ttl time.Duration) *CredentialCache {
	if ttl <= 0 {
		ttl = defaultCredentialTTL
	}
	return &CredentialCache{client: client, ttl: ttl}
}

// Fingerprint derives the cache key component from the stored hash and the
// presented password. Including the hash invalidates cached entries the
// moment the stored password changes.
func Fingerprint(passwordHash, password string) string {
	sum := sha256.Sum256([]byte(passwordHash + ":" + password))
	return hex.EncodeToString(sum[:])
}

// IsVerified reports whether this credential pair was verified recently.
func (c *CredentialCache) IsVerified(ctx context.Context, username, fingerprint string) (bool, error) {
	n, err := c.client.Exists(ctx, c.key(username, fingerprint)).Result()
	if err != nil {
		return false, fmt.Errorf("credential cache check: %w", err)
	}
	return n > 0, nil
}

// MarkVerified records a successful verification (expires after the TTL).
func (c *CredentialCache) MarkVerified(ctx context.Context, username, fingerprint string) error {
	return c.client.Set(ctx, c.key(username, fingerprint), "1", c.ttl).Err()
}

func (c *CredentialCache) key(username, fingerprint string) string {
	return fmt.Sprintf("auth:%s:%s", username, fingerprint)
}
