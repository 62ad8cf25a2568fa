package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tokengated-music/internal/core/domain"
	"tokengated-music/internal/core/ports"
	"tokengated-music/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// PublishServiceImpl implements ports.PublishService.
type PublishServiceImpl struct {
	runtime *ThresholdRuntime
	relay   *Relay
	tracks  ports.TrackRepository
	signers ports.SignerSource
	audit   ports.AuditService
	log     zerolog.Logger
}

// NewPublishService creates a new PublishServiceImpl.
func NewPublishService(
	runtime *ThresholdRuntime,
	relay *Relay,
	tracks ports.TrackRepository,
	signers ports.SignerSource,
	audit ports.AuditService,
	log zerolog.Logger,
) *PublishServiceImpl {
	return &PublishServiceImpl{
		runtime: runtime,
		relay:   relay,
		tracks:  tracks,
		signers: signers,
		audit:   audit,
		log:     log,
	}
}

// Publish encrypts audio under the requested condition, pins it with the
// cover art and stores the track row. Input is validated before any
// network call; a failed insert unpins what was uploaded.
func (s *PublishServiceImpl) Publish(ctx context.Context, req ports.PublishRequest) (*domain.Track, error) {
	cond, err := validatePublish(req)
	if err != nil {
		return nil, err
	}

	signer, err := s.signers.Signer(ctx, req.Owner)
	if err != nil {
		return nil, err
	}

	ciphertext, err := s.runtime.Encrypt(ctx, req.Audio, cond, signer)
	if err != nil {
		s.log.Error().Err(err).Str("owner", req.Owner).Msg("publish: encryption failed")
		return nil, apperror.ErrEncryption(err)
	}

	trackID := uuid.New()
	upload, err := s.relay.Upload(ctx, trackID.String(), ciphertext, req.CoverArt)
	if err != nil {
		s.log.Error().Err(err).Str("track_id", trackID.String()).Msg("publish: upload failed")
		return nil, apperror.ErrUpload(err)
	}

	track := &domain.Track{
		ID:              trackID,
		Title:           strings.TrimSpace(req.Title),
		Artist:          strings.TrimSpace(req.Artist),
		Owner:           signer.Address(),
		AudioCID:        upload.AudioCID,
		Condition:       cond.Spec(),
		DurationSeconds: req.DurationSeconds,
		CreatedAt:       time.Now().UTC(),
	}
	if upload.CoverArtCID != "" {
		track.CoverArtCID = &upload.CoverArtCID
	}

	if err := s.tracks.Create(ctx, track); err != nil {
		s.log.Error().Err(err).Str("track_id", trackID.String()).Strs("cids", upload.CIDs()).
			Msg("publish: metadata insert failed, releasing pins")
		s.relay.Release(ctx, "metadata insert failed", upload.CIDs()...)
		return nil, apperror.ErrPersistence(err)
	}

	owner := track.Owner
	s.audit.Log(ctx, &domain.AuditLog{
		Address:      &owner,
		Action:       domain.AuditActionPublish,
		ResourceType: "track",
		ResourceID:   track.ID.String(),
		Details:      fmt.Sprintf(`{"audio_cid":%q,"kind":%q,"chain":%d}`, track.AudioCID, cond.Kind, cond.ChainID),
		IPAddress:    req.ClientIP,
	})

	s.log.Info().
		Str("track_id", track.ID.String()).
		Str("owner", track.Owner).
		Str("audio_cid", track.AudioCID).
		Str("condition", string(cond.Kind)).
		Msg("track published")

	return track, nil
}

func validatePublish(req ports.PublishRequest) (domain.AccessCondition, error) {
	if strings.TrimSpace(req.Title) == "" {
		return domain.AccessCondition{}, apperror.Validation("title is required")
	}
	if len(req.Audio) == 0 {
		return domain.AccessCondition{}, apperror.Validation("audio file is required")
	}
	if req.DurationSeconds < 0 {
		return domain.AccessCondition{}, apperror.Validation("duration_seconds must not be negative")
	}

	cond, err := domain.BuildCondition(req.Condition)
	if err == nil {
		err = cond.Validate()
	}
	var condErr *domain.ConditionError
	if errors.As(err, &condErr) {
		return domain.AccessCondition{}, apperror.Validation("condition " + condErr.Error())
	}
	if err != nil {
		return domain.AccessCondition{}, apperror.Validation(err.Error())
	}
	return cond, nil
}
