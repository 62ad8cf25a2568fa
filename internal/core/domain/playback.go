package domain

import (
	"time"

	"github.com/google/uuid"
)

// PlaybackStatus is the state of the now-playing slot.
type PlaybackStatus string

const (
	PlaybackIdle       PlaybackStatus = "IDLE"
	PlaybackDecrypting PlaybackStatus = "DECRYPTING"
	PlaybackPlaying    PlaybackStatus = "PLAYING"
	PlaybackPaused     PlaybackStatus = "PAUSED"
)

// IsLoaded reports whether decrypted audio is attached to the slot.
func (s PlaybackStatus) IsLoaded() bool {
	return s == PlaybackPlaying || s == PlaybackPaused
}

// NowPlaying is a snapshot of the single global playback slot.
type NowPlaying struct {
	RequestID   uint64         `json:"request_id"`
	Status      PlaybackStatus `json:"status"`
	TrackID     *uuid.UUID     `json:"track_id,omitempty"`
	Title       string         `json:"title,omitempty"`
	Artist      string         `json:"artist,omitempty"`
	CoverArtCID string         `json:"cover_art_cid,omitempty"`
	BlobID      string         `json:"blob_id,omitempty"`
	Position    float64        `json:"position"`
	Duration    float64        `json:"duration"`
	Volume      float64        `json:"volume"`
	Muted       bool           `json:"muted"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// AudioBlob is decrypted audio held in memory until released. Only the
// wallet that decrypted it may read it back.
type AudioBlob struct {
	ID          string
	Owner       string
	Data        []byte
	ContentType string
	CreatedAt   time.Time
}
