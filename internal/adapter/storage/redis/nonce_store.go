package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// NonceStore implements ports.NonceStore using Redis SET NX.
type NonceStore struct {
	client goredis.UniversalClient
	prefix string
}

// NewNonceStore creates a new Redis-backed nonce store.
func NewNonceStore(client goredis.UniversalClient) *NonceStore {
	return &NonceStore{client: client, prefix: "signin:nonce:"}
}

// Consume atomically claims nonce for scope. It returns false if the
// nonce was already claimed within ttl.
func (s *NonceStore) Consume(ctx context.Context, scope, nonce string, ttl time.Duration) (bool, error) {
	key := s.prefix + strings.ToLower(scope) + ":" + nonce
	_, err := s.client.SetArgs(ctx, key, 1, goredis.SetArgs{Mode: "NX", TTL: ttl}).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redis nonce consume: %w", err)
	}
	return true, nil
}
