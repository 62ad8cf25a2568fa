package dto

import (
	"time"

	"tokengated-music/internal/core/domain"
)

// ConditionRequest is the condition builder form.
type ConditionRequest struct {
	Kind            string `json:"kind" form:"kind" binding:"required,oneof=FUNGIBLE_BALANCE NON_FUNGIBLE_OWNERSHIP NON_FUNGIBLE_BALANCE"`
	Chain           string `json:"chain" form:"chain" binding:"required,chain"`
	ContractAddress string `json:"contract_address" form:"contract_address" binding:"required,eth_address"`
	MinBalance      string `json:"min_balance,omitempty" form:"min_balance" binding:"omitempty,numeric"`
	TokenID         string `json:"token_id,omitempty" form:"token_id" binding:"omitempty,numeric"`
}

// Form converts the request into builder input.
func (r ConditionRequest) Form() domain.ConditionForm {
	return domain.ConditionForm{
		Kind:            domain.ConditionKind(r.Kind),
		Chain:           r.Chain,
		ContractAddress: r.ContractAddress,
		MinBalance:      r.MinBalance,
		TokenID:         r.TokenID,
	}
}

// ConditionResponse echoes a validated condition in both shapes.
type ConditionResponse struct {
	Form domain.ConditionForm `json:"form"`
	Spec domain.ConditionSpec `json:"spec"`
}

// PublishForm holds the non-file fields of the multipart publish request.
type PublishForm struct {
	Title           string  `form:"title" binding:"required,min=1,max=200"`
	Artist          string  `form:"artist" binding:"required,min=1,max=200"`
	DurationSeconds float64 `form:"duration_seconds" binding:"gte=0"`
	ConditionRequest
}

// TrackResponse is the public view of a published track.
type TrackResponse struct {
	ID              string               `json:"id"`
	Title           string               `json:"title"`
	Artist          string               `json:"artist"`
	Owner           string               `json:"owner"`
	AudioCID        string               `json:"audio_cid"`
	CoverArtCID     *string              `json:"cover_art_cid,omitempty"`
	Condition       domain.ConditionSpec `json:"condition"`
	DurationSeconds float64              `json:"duration_seconds"`
	CreatedAt       string               `json:"created_at"`
}

// NewTrackResponse converts a domain track.
func NewTrackResponse(t *domain.Track) TrackResponse {
	return TrackResponse{
		ID:              t.ID.String(),
		Title:           t.Title,
		Artist:          t.Artist,
		Owner:           t.Owner,
		AudioCID:        t.AudioCID,
		CoverArtCID:     t.CoverArtCID,
		Condition:       t.Condition,
		DurationSeconds: t.DurationSeconds,
		CreatedAt:       t.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// TrackListQuery is the query string of GET /tracks.
type TrackListQuery struct {
	Owner    string `form:"owner" binding:"omitempty,eth_address"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// ConnectResponse is returned by POST /wallet/connect.
type ConnectResponse struct {
	Address   string `json:"address"`
	ChainID   int64  `json:"chain_id"`
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"` // Unix timestamp
}

// SessionQuery is the query string of GET /wallet/session.
type SessionQuery struct {
	Address string `form:"address" binding:"omitempty,eth_address"`
}

// PlayRequest is the body of POST /player/play.
type PlayRequest struct {
	TrackID string `json:"track_id" binding:"required,uuid"`
}

// SeekRequest is the body of POST /player/seek.
type SeekRequest struct {
	Position *float64 `json:"position" binding:"required"`
}

// VolumeRequest is the body of POST /player/volume.
type VolumeRequest struct {
	Volume *float64 `json:"volume" binding:"required"`
}
