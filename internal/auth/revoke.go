package auth

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Revoker is the logout denylist. Entries only need to outlive the access
// token TTL, so both implementations expire them.
type Revoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

const revokeKeyPrefix = "auth:revoked:"

// RedisRevoker shares the denylist across instances.
type RedisRevoker struct {
	rdb *redis.Client
}

func NewRedisRevoker(rdb *redis.Client) *RedisRevoker {
	return &RedisRevoker{rdb: rdb}
}

func (r *RedisRevoker) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if tokenID == "" {
		return nil
	}
	return r.rdb.Set(ctx, revokeKeyPrefix+tokenID, "1", ttl).Err()
}

func (r *RedisRevoker) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if tokenID == "" {
		return false, nil
	}
	n, err := r.rdb.Exists(ctx, revokeKeyPrefix+tokenID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// MemoryRevoker is the single-instance fallback when Redis is not configured.
type MemoryRevoker struct {
	mu      sync.Mutex
	expires map[string]time.Time
	clock   func() time.Time
}

func NewMemoryRevoker() *MemoryRevoker {
	return &MemoryRevoker{
		expires: map[string]time.Time{},
		clock:   time.Now,
	}
}

func (r *MemoryRevoker) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	if tokenID == "" {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.expires[tokenID] = r.clock().Add(ttl)
	return nil
}

func (r *MemoryRevoker) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	if tokenID == "" {
		return false, nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	exp, ok := r.expires[tokenID]
	if !ok {
		return false, nil
	}
	if r.clock().After(exp) {
		delete(r.expires, tokenID)
		return false, nil
	}
	return true, nil
}
