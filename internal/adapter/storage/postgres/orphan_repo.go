package postgres

import (
	"context"
	"fmt"
	"time"

	"tokengated-music/internal/core/domain"

	"github.com/google/uuid"
)

// OrphanRepo implements ports.OrphanRepository.
type OrphanRepo struct {
	pool Pool
}

func NewOrphanRepo(pool Pool) *OrphanRepo {
	return &OrphanRepo{pool: pool}
}

func (r *OrphanRepo) Create(ctx context.Context, o *domain.OrphanPin) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO orphan_pins (id, cid, reason, attempts, next_retry_at, last_error, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		o.ID, o.CID, o.Reason, o.Attempts, o.NextRetryAt, o.LastError, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert orphan pin: %w", err)
	}
	return nil
}

// ListDue returns up to limit orphans whose retry time is not after before.
func (r *OrphanRepo) ListDue(ctx context.Context, before time.Time, limit int) ([]domain.OrphanPin, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, cid, reason, attempts, next_retry_at, last_error, created_at, updated_at
		 FROM orphan_pins WHERE next_retry_at <= $1 ORDER BY next_retry_at LIMIT $2`,
		before, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list due orphans: %w", err)
	}
	defer rows.Close()

	var out []domain.OrphanPin
	for rows.Next() {
		var o domain.OrphanPin
		if err := rows.Scan(&o.ID, &o.CID, &o.Reason, &o.Attempts, &o.NextRetryAt, &o.LastError, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan orphan row: %w", err)
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate orphan rows: %w", err)
	}
	return out, nil
}

func (r *OrphanRepo) Update(ctx context.Context, o *domain.OrphanPin) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE orphan_pins SET attempts = $2, next_retry_at = $3, last_error = $4, updated_at = $5 WHERE id = $1`,
		o.ID, o.Attempts, o.NextRetryAt, o.LastError, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update orphan pin: %w", err)
	}
	return nil
}

func (r *OrphanRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM orphan_pins WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete orphan pin: %w", err)
	}
	return nil
}
