package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"tokengated-music/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

const lastWalletKey = "wallet:last"

// SessionCache implements ports.SessionCache. Sessions are stored as
// JSON under a lowercase address key; wallet:last points at the most
// recently connected address.
type SessionCache struct {
	client goredis.UniversalClient
	prefix string
}

// NewSessionCache creates a new Redis-backed session cache.
func NewSessionCache(client goredis.UniversalClient) *SessionCache {
	return &SessionCache{client: client, prefix: "wallet:session:"}
}

func (c *SessionCache) key(address string) string {
	return c.prefix + strings.ToLower(address)
}

// Get returns nil, nil if no session is cached for address.
func (c *SessionCache) Get(ctx context.Context, address string) (*domain.WalletSession, error) {
	raw, err := c.client.Get(ctx, c.key(address)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis session get: %w", err)
	}
	var s domain.WalletSession
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("decode cached session: %w", err)
	}
	return &s, nil
}

// Set stores session and marks it as the last connected wallet.
func (c *SessionCache) Set(ctx context.Context, session *domain.WalletSession, ttl time.Duration) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	_, err = c.client.TxPipelined(ctx, func(p goredis.Pipeliner) error {
		p.Set(ctx, c.key(session.Address), raw, ttl)
		p.Set(ctx, lastWalletKey, session.Address, ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis session set: %w", err)
	}
	return nil
}

// Delete drops the session and clears the last-wallet pointer if it
// referred to address.
func (c *SessionCache) Delete(ctx context.Context, address string) error {
	if err := c.client.Del(ctx, c.key(address)).Err(); err != nil {
		return fmt.Errorf("redis session delete: %w", err)
	}
	last, err := c.LastAddress(ctx)
	if err != nil {
		return err
	}
	if strings.EqualFold(last, address) {
		if err := c.client.Del(ctx, lastWalletKey).Err(); err != nil {
			return fmt.Errorf("redis session delete: %w", err)
		}
	}
	return nil
}

func (c *SessionCache) LastAddress(ctx context.Context) (string, error) {
	addr, err := c.client.Get(ctx, lastWalletKey).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("redis last wallet get: %w", err)
	}
	return addr, nil
}
