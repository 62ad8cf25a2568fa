package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// IdempotencyCache implements ports.IdempotencyStore: it remembers which
// track a publish request with a given Idempotency-Key produced.
type IdempotencyCache struct {
	client goredis.UniversalClient
	prefix string
}

// NewIdempotencyCache creates a new Redis-backed idempotency cache.
func NewIdempotencyCache(client goredis.UniversalClient) *IdempotencyCache {
	return &IdempotencyCache{client: client, prefix: "idempotency:publish:"}
}

// Lookup returns the remembered track id, if any.
func (c *IdempotencyCache) Lookup(ctx context.Context, key string) (uuid.UUID, bool, error) {
	val, err := c.client.Get(ctx, c.prefix+key).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return uuid.Nil, false, nil
		}
		return uuid.Nil, false, fmt.Errorf("redis idempotency get: %w", err)
	}
	id, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("corrupt idempotency entry %q: %w", key, err)
	}
	return id, true, nil
}

func (c *IdempotencyCache) Remember(ctx context.Context, key string, trackID uuid.UUID, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.prefix+key, trackID.String(), ttl).Err(); err != nil {
		return fmt.Errorf("redis idempotency set: %w", err)
	}
	return nil
}
