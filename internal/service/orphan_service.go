package service

import (
	"context"
	"time"

	"tokengated-music/internal/core/domain"
	"tokengated-music/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const defaultSweepBatch = 50

// OrphanServiceImpl records pins left without a metadata row and retries
// unpinning them on the domain.OrphanRetryIntervals schedule.
type OrphanServiceImpl struct {
	repo      ports.OrphanRepository
	pins      ports.PinningService
	batchSize int
	now       func() time.Time
	log       zerolog.Logger
}

// NewOrphanService creates a new OrphanServiceImpl.
func NewOrphanService(repo ports.OrphanRepository, pins ports.PinningService, batchSize int, log zerolog.Logger) *OrphanServiceImpl {
	if batchSize <= 0 {
		batchSize = defaultSweepBatch
	}
	return &OrphanServiceImpl{
		repo:      repo,
		pins:      pins,
		batchSize: batchSize,
		now:       time.Now,
		log:       log,
	}
}

// Record stores an orphaned CID. Failures are logged: the pin then stays
// orphaned until an operator notices the log line.
func (s *OrphanServiceImpl) Record(ctx context.Context, cid, reason string, cause error) {
	now := s.now().UTC()
	orphan := &domain.OrphanPin{
		ID:          uuid.New(),
		CID:         cid,
		Reason:      reason,
		NextRetryAt: now.Add(domain.OrphanRetryIntervals[0]),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if cause != nil {
		msg := cause.Error()
		orphan.LastError = &msg
	}

	if err := s.repo.Create(context.WithoutCancel(ctx), orphan); err != nil {
		s.log.Error().Err(err).Str("cid", cid).Str("reason", reason).Msg("orphan: failed to record pin")
		return
	}
	s.log.Warn().Str("cid", cid).Str("reason", reason).Msg("orphan: pin recorded for cleanup")
}

// Sweep retries every due orphan once and returns how many were unpinned.
func (s *OrphanServiceImpl) Sweep(ctx context.Context) (int, error) {
	due, err := s.repo.ListDue(ctx, s.now().UTC(), s.batchSize)
	if err != nil {
		return 0, err
	}

	reaped := 0
	for i := range due {
		if ctx.Err() != nil {
			return reaped, ctx.Err()
		}
		o := &due[i]

		if err := s.pins.Unpin(ctx, o.CID); err != nil {
			o.Fail(s.now().UTC(), err)
			s.log.Warn().Err(err).
				Str("cid", o.CID).
				Int("attempts", o.Attempts).
				Time("next_retry_at", o.NextRetryAt).
				Msg("orphan: unpin failed")
			if uerr := s.repo.Update(ctx, o); uerr != nil {
				s.log.Error().Err(uerr).Str("cid", o.CID).Msg("orphan: failed to reschedule")
			}
			continue
		}

		if err := s.repo.Delete(ctx, o.ID); err != nil {
			s.log.Error().Err(err).Str("cid", o.CID).Msg("orphan: unpinned but failed to delete row")
			continue
		}
		reaped++
		s.log.Info().Str("cid", o.CID).Int("attempts", o.Attempts+1).Msg("orphan: unpinned")
	}
	return reaped, nil
}

// Run sweeps on every tick until ctx ends.
func (s *OrphanServiceImpl) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n, err := s.Sweep(ctx); err != nil {
				s.log.Error().Err(err).Msg("orphan: sweep failed")
			} else if n > 0 {
				s.log.Info().Int("reaped", n).Msg("orphan: sweep complete")
			}
		}
	}
}
