package ports

import (
	"context"
	"time"

	"tokengated-music/internal/core/domain"

	"github.com/google/uuid"
)

//go:generate mockgen -source=repositories.go -destination=mocks/repositories_mock.go -package=mocks

// TrackRepository persists track metadata rows.
type TrackRepository interface {
	Create(ctx context.Context, track *domain.Track) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Track, error)
	List(ctx context.Context, params TrackListParams) ([]domain.Track, int64, error)
}

// TrackListParams holds filter + pagination for listing tracks.
type TrackListParams struct {
	Owner    *string
	Page     int
	PageSize int
}

// AuditRepository defines persistence for audit logs.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
}

// OrphanRepository persists pins that lost their metadata row.
type OrphanRepository interface {
	Create(ctx context.Context, orphan *domain.OrphanPin) error
	ListDue(ctx context.Context, before time.Time, limit int) ([]domain.OrphanPin, error)
	Update(ctx context.Context, orphan *domain.OrphanPin) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// SessionCache keeps the "last known connected wallet" hint.
type SessionCache interface {
	Get(ctx context.Context, address string) (*domain.WalletSession, error) // nil if absent
	Set(ctx context.Context, session *domain.WalletSession, ttl time.Duration) error
	Delete(ctx context.Context, address string) error
	LastAddress(ctx context.Context) (string, error) // "" if none
}

// RateLimitStore counts requests per key in fixed windows.
type RateLimitStore interface {
	Allow(ctx context.Context, key string, limit int64, window time.Duration) (*RateLimitResult, error)
}

// RateLimitResult holds the outcome of a rate limit check.
type RateLimitResult struct {
	Allowed   bool
	Limit     int64
	Remaining int64
	ResetAt   int64 // Unix timestamp
}

// NonceStore remembers sign-in nonces so a signed message is accepted once.
type NonceStore interface {
	// Consume reports true the first time nonce is seen for scope.
	Consume(ctx context.Context, scope, nonce string, ttl time.Duration) (bool, error)
}

// IdempotencyStore maps a client-supplied idempotency key to the track it produced.
type IdempotencyStore interface {
	Lookup(ctx context.Context, key string) (uuid.UUID, bool, error)
	Remember(ctx context.Context, key string, trackID uuid.UUID, ttl time.Duration) error
}
