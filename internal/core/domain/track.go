package domain

import (
	"time"

	"github.com/google/uuid"
)

// Track is a published, encrypted recording. Immutable after insert.
type Track struct {
	ID              uuid.UUID     `json:"id"`
	ModelID         string        `json:"model_id"`
	ContextID       string        `json:"context_id"`
	Title           string        `json:"title"`
	Artist          string        `json:"artist"`
	Owner           string        `json:"owner"`
	AudioCID        string        `json:"audio_cid"`
	CoverArtCID     *string       `json:"cover_art_cid,omitempty"`
	Condition       ConditionSpec `json:"condition"`
	DurationSeconds float64       `json:"duration_seconds"`
	CreatedAt       time.Time     `json:"created_at"`
}

// HasCoverArt reports whether an unencrypted cover image was pinned.
func (t *Track) HasCoverArt() bool {
	return t.CoverArtCID != nil && *t.CoverArtCID != ""
}
