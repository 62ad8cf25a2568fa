package postgres

import (
	"context"
	"fmt"

	"tokengated-music/config"
	"tokengated-music/internal/core/ports"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// Pool is the subset of *pgxpool.Pool the repositories use. pgxmock
// pools satisfy it too.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

// NewPool creates a PostgreSQL connection pool using pgx.
func NewPool(ctx context.Context, cfg config.DatabaseConfig, log zerolog.Logger) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("parsing database config: %w", err)
	}

	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	if cfg.ConnMaxLifetime > 0 {
		poolCfg.MaxConnLifetime = cfg.ConnMaxLifetime
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	// Verify connectivity
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	log.Info().
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Str("dbname", cfg.DBName).
		Int32("max_conns", cfg.MaxConns).
		Msg("PostgreSQL connection pool established")

	return pool, nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS tracks (
		id               UUID PRIMARY KEY,
		model_id         TEXT NOT NULL,
		context_id       TEXT NOT NULL,
		title            TEXT NOT NULL,
		artist           TEXT NOT NULL,
		owner            TEXT NOT NULL,
		audio_cid        TEXT NOT NULL,
		cover_art_cid    TEXT,
		condition        JSONB NOT NULL,
		duration_seconds DOUBLE PRECISION NOT NULL DEFAULT 0,
		created_at       TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_tracks_scope_created ON tracks (model_id, context_id, created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_tracks_owner ON tracks (owner)`,
	`CREATE TABLE IF NOT EXISTS audit_logs (
		id            UUID PRIMARY KEY,
		address       TEXT,
		action        TEXT NOT NULL,
		resource_type TEXT NOT NULL,
		resource_id   TEXT,
		details       JSONB,
		ip_address    TEXT,
		created_at    TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS orphan_pins (
		id            UUID PRIMARY KEY,
		cid           TEXT NOT NULL,
		reason        TEXT NOT NULL,
		attempts      INTEGER NOT NULL DEFAULT 0,
		next_retry_at TIMESTAMPTZ NOT NULL,
		last_error    TEXT,
		created_at    TIMESTAMPTZ NOT NULL,
		updated_at    TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_orphan_pins_due ON orphan_pins (next_retry_at)`,
}

// HealthProbe reports whether the pool can reach the database.
func HealthProbe(pool Pool) ports.Probe {
	return ports.Probe{Dependency: "postgresql", Fn: pool.Ping}
}

// Migrate creates the tables the node needs if they do not exist yet.
func Migrate(ctx context.Context, pool Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
