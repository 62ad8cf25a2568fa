package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"tokengated-music/internal/core/domain"
	"tokengated-music/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const trackColumns = `id, model_id, context_id, title, artist, owner, audio_cid, cover_art_cid, condition, duration_seconds, created_at`

// TrackRepo implements ports.TrackRepository. Every row is stamped with
// the configured model and context ids, and reads only see rows that
// carry both.
type TrackRepo struct {
	pool      Pool
	modelID   string
	contextID string
}

// NewTrackRepo creates a new TrackRepo scoped to modelID and contextID.
func NewTrackRepo(pool Pool, modelID, contextID string) *TrackRepo {
	return &TrackRepo{pool: pool, modelID: modelID, contextID: contextID}
}

// Create inserts a track row.
func (r *TrackRepo) Create(ctx context.Context, t *domain.Track) error {
	cond, err := json.Marshal(t.Condition)
	if err != nil {
		return fmt.Errorf("encode condition: %w", err)
	}
	t.ModelID = r.modelID
	t.ContextID = r.contextID

	query := `INSERT INTO tracks (` + trackColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err = r.pool.Exec(ctx, query,
		t.ID, t.ModelID, t.ContextID, t.Title, t.Artist, t.Owner,
		t.AudioCID, t.CoverArtCID, cond, t.DurationSeconds, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert track: %w", err)
	}
	return nil
}

// GetByID fetches a track by id. Returns nil, nil when absent.
func (r *TrackRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Track, error) {
	query := `SELECT ` + trackColumns + ` FROM tracks WHERE id = $1 AND model_id = $2 AND context_id = $3`

	t, err := scanTrack(r.pool.QueryRow(ctx, query, id, r.modelID, r.contextID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get track by id: %w", err)
	}
	return t, nil
}

// List returns one page of tracks, newest first, and the total count.
func (r *TrackRepo) List(ctx context.Context, params ports.TrackListParams) ([]domain.Track, int64, error) {
	conditions := []string{"model_id = $1", "context_id = $2"}
	args := []any{r.modelID, r.contextID}
	argIdx := 3

	if params.Owner != nil {
		conditions = append(conditions, fmt.Sprintf("owner = $%d", argIdx))
		args = append(args, *params.Owner)
		argIdx++
	}

	where := "WHERE " + strings.Join(conditions, " AND ")

	var total int64
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM tracks "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count tracks: %w", err)
	}

	offset := (params.Page - 1) * params.PageSize
	dataQuery := fmt.Sprintf(`SELECT %s FROM tracks %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		trackColumns, where, argIdx, argIdx+1)
	args = append(args, params.PageSize, offset)

	rows, err := r.pool.Query(ctx, dataQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list tracks: %w", err)
	}
	defer rows.Close()

	tracks := []domain.Track{}
	for rows.Next() {
		t, err := scanTrack(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan track row: %w", err)
		}
		tracks = append(tracks, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate track rows: %w", err)
	}
	return tracks, total, nil
}

func scanTrack(row pgx.Row) (*domain.Track, error) {
	t := &domain.Track{}
	var cond []byte
	err := row.Scan(
		&t.ID, &t.ModelID, &t.ContextID, &t.Title, &t.Artist, &t.Owner,
		&t.AudioCID, &t.CoverArtCID, &cond, &t.DurationSeconds, &t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(cond, &t.Condition); err != nil {
		return nil, fmt.Errorf("decode condition: %w", err)
	}
	return t, nil
}
