package main

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"tokengated-music/internal/core/domain"
	"tokengated-music/internal/core/ports"
)

// --- In-Memory Track Repo ---

type inMemoryTrackRepo struct {
	mu     sync.RWMutex
	tracks map[uuid.UUID]*domain.Track
}

func newInMemoryTrackRepo() *inMemoryTrackRepo {
	return &inMemoryTrackRepo{tracks: make(map[uuid.UUID]*domain.Track)}
}

func (r *inMemoryTrackRepo) Create(ctx context.Context, t *domain.Track) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *t
	r.tracks[t.ID] = &cp
	return nil
}

func (r *inMemoryTrackRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Track, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tracks[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *inMemoryTrackRepo) List(ctx context.Context, p ports.TrackListParams) ([]domain.Track, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var all []domain.Track
	for _, t := range r.tracks {
		if p.Owner != nil && !strings.EqualFold(t.Owner, *p.Owner) {
			continue
		}
		all = append(all, *t)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })

	total := int64(len(all))
	start := (p.Page - 1) * p.PageSize
	if start >= len(all) {
		return []domain.Track{}, total, nil
	}
	end := min(start+p.PageSize, len(all))
	return all[start:end], total, nil
}

// --- In-Memory Audit Repo ---

type inMemoryAuditRepo struct {
	mu   sync.Mutex
	logs []domain.AuditLog
}

func (r *inMemoryAuditRepo) Create(ctx context.Context, l *domain.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logs = append(r.logs, *l)
	return nil
}

func (r *inMemoryAuditRepo) actions() []domain.AuditAction {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.AuditAction, 0, len(r.logs))
	for _, l := range r.logs {
		out = append(out, l.Action)
	}
	return out
}

// --- In-Memory Orphan Repo ---

type inMemoryOrphanRepo struct {
	mu      sync.Mutex
	orphans map[uuid.UUID]domain.OrphanPin
}

func newInMemoryOrphanRepo() *inMemoryOrphanRepo {
	return &inMemoryOrphanRepo{orphans: make(map[uuid.UUID]domain.OrphanPin)}
}

func (r *inMemoryOrphanRepo) Create(ctx context.Context, o *domain.OrphanPin) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orphans[o.ID] = *o
	return nil
}

func (r *inMemoryOrphanRepo) ListDue(ctx context.Context, before time.Time, limit int) ([]domain.OrphanPin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.OrphanPin
	for _, o := range r.orphans {
		if !o.NextRetryAt.After(before) && len(out) < limit {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *inMemoryOrphanRepo) Update(ctx context.Context, o *domain.OrphanPin) error {
	return r.Create(ctx, o)
}

func (r *inMemoryOrphanRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.orphans, id)
	return nil
}
