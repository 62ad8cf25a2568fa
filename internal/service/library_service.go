package service

import (
	"context"
	"fmt"

	"tokengated-music/internal/core/domain"
	"tokengated-music/internal/core/ports"
	"tokengated-music/pkg/apperror"
	"tokengated-music/pkg/ethsig"

	"github.com/google/uuid"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// LibraryServiceImpl implements ports.LibraryService.
type LibraryServiceImpl struct {
	tracks ports.TrackRepository
}

// NewLibraryService creates a new LibraryServiceImpl.
func NewLibraryService(tracks ports.TrackRepository) *LibraryServiceImpl {
	return &LibraryServiceImpl{tracks: tracks}
}

func (s *LibraryServiceImpl) GetTrack(ctx context.Context, id uuid.UUID) (*domain.Track, error) {
	track, err := s.tracks.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get track: %w", err))
	}
	if track == nil {
		return nil, apperror.ErrNotFound("Track")
	}
	return track, nil
}

// ListTracks normalizes paging and the owner filter before querying.
func (s *LibraryServiceImpl) ListTracks(ctx context.Context, params ports.TrackListParams) ([]domain.Track, int64, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 || params.PageSize > maxPageSize {
		params.PageSize = defaultPageSize
	}
	if params.Owner != nil {
		owner, err := ethsig.ChecksumAddress(*params.Owner)
		if err != nil {
			return nil, 0, apperror.Validation("owner must be a 20-byte hex address")
		}
		params.Owner = &owner
	}

	tracks, total, err := s.tracks.List(ctx, params)
	if err != nil {
		return nil, 0, apperror.InternalError(fmt.Errorf("list tracks: %w", err))
	}
	return tracks, total, nil
}
