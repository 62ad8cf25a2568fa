package service

import (
	"math"
	"sync"
	"time"

	"tokengated-music/internal/core/domain"
	"tokengated-music/pkg/apperror"
)

const unmuteVolume = 1.0

// Player is the state machine of the single now-playing slot:
// IDLE -> DECRYPTING -> PLAYING <-> PAUSED -> IDLE.
// Position advances with the injected clock while PLAYING.
type Player struct {
	mu  sync.Mutex
	now func() time.Time

	// unmute restores the pre-mute volume instead of full volume
	restorePrevious bool

	state   domain.NowPlaying
	base    float64   // position when anchor was taken
	anchor  time.Time // start of the current PLAYING stretch
	preMute float64
}

// NewPlayer creates an idle player at full volume.
func NewPlayer(restorePrevious bool, now func() time.Time) *Player {
	if now == nil {
		now = time.Now
	}
	p := &Player{now: now, restorePrevious: restorePrevious, preMute: unmuteVolume}
	p.state = domain.NowPlaying{Status: domain.PlaybackIdle, Volume: unmuteVolume, UpdatedAt: now()}
	return p
}

// Begin moves the slot to DECRYPTING for track under requestID and
// returns the blob of the previous track, if any.
func (p *Player) Begin(requestID uint64, track *domain.Track) (domain.NowPlaying, string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	released := p.state.BlobID
	id := track.ID
	p.state = domain.NowPlaying{
		RequestID: requestID,
		Status:    domain.PlaybackDecrypting,
		TrackID:   &id,
		Title:     track.Title,
		Artist:    track.Artist,
		Duration:  track.DurationSeconds,
		Volume:    p.state.Volume,
		Muted:     p.state.Muted,
	}
	if track.CoverArtCID != nil {
		p.state.CoverArtCID = *track.CoverArtCID
	}
	p.base = 0
	return p.touch(), released
}

// Load attaches decrypted audio and starts playing. It reports false if
// requestID is no longer the current request.
func (p *Player) Load(requestID uint64, blobID string) (domain.NowPlaying, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state.RequestID != requestID || p.state.Status != domain.PlaybackDecrypting {
		return p.snapshot(), false
	}
	p.state.BlobID = blobID
	p.state.Status = domain.PlaybackPlaying
	p.base = 0
	p.anchor = p.now()
	return p.touch(), true
}

// Abort returns the slot to IDLE if requestID is still current.
func (p *Player) Abort(requestID uint64) (domain.NowPlaying, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state.RequestID != requestID {
		return p.snapshot(), false
	}
	p.reset()
	return p.touch(), true
}

// Stop clears the slot and returns the blob that was attached to it.
func (p *Player) Stop() (domain.NowPlaying, string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	released := p.state.BlobID
	p.reset()
	return p.touch(), released
}

// Toggle flips between PLAYING and PAUSED.
func (p *Player) Toggle() (domain.NowPlaying, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.advance()
	switch p.state.Status {
	case domain.PlaybackPlaying:
		p.pause()
	case domain.PlaybackPaused:
		p.resume()
	default:
		return p.snapshot(), apperror.ErrNothingLoaded()
	}
	return p.touch(), nil
}

// Pause is a no-op when already paused.
func (p *Player) Pause() (domain.NowPlaying, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.advance()
	if !p.state.Status.IsLoaded() {
		return p.snapshot(), apperror.ErrNothingLoaded()
	}
	if p.state.Status == domain.PlaybackPlaying {
		p.pause()
	}
	return p.touch(), nil
}

// Resume is a no-op when already playing. Resuming at the end restarts the track.
func (p *Player) Resume() (domain.NowPlaying, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.advance()
	if !p.state.Status.IsLoaded() {
		return p.snapshot(), apperror.ErrNothingLoaded()
	}
	if p.state.Status == domain.PlaybackPaused {
		p.resume()
	}
	return p.touch(), nil
}

// Seek moves the playhead, clamped to [0, duration]. With an unknown
// duration only the lower bound applies.
func (p *Player) Seek(position float64) (domain.NowPlaying, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.state.Status.IsLoaded() {
		return p.snapshot(), apperror.ErrNothingLoaded()
	}
	p.base = p.clampPosition(position)
	p.anchor = p.now()
	return p.touch(), nil
}

// SetVolume clamps v to [0, 1].
func (p *Player) SetVolume(v float64) domain.NowPlaying {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.state.Volume = clamp(v, 0, 1)
	p.state.Muted = p.state.Volume == 0
	return p.touch()
}

// ToggleMute mutes to volume 0. Unmuting restores full volume unless the
// player was built with restorePrevious.
func (p *Player) ToggleMute() domain.NowPlaying {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state.Muted {
		p.state.Muted = false
		p.state.Volume = unmuteVolume
		if p.restorePrevious && p.preMute > 0 {
			p.state.Volume = p.preMute
		}
	} else {
		p.preMute = p.state.Volume
		p.state.Muted = true
		p.state.Volume = 0
	}
	return p.touch()
}

// Snapshot returns the current state with an up-to-date position.
func (p *Player) Snapshot() domain.NowPlaying {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.advance()
	return p.snapshot()
}

func (p *Player) pause() {
	p.base = p.position()
	p.state.Status = domain.PlaybackPaused
}

func (p *Player) resume() {
	if p.state.Duration > 0 && p.base >= p.state.Duration {
		p.base = 0
	}
	p.anchor = p.now()
	p.state.Status = domain.PlaybackPlaying
}

// advance pauses at the end of the track once the clock passes it.
func (p *Player) advance() {
	if p.state.Status != domain.PlaybackPlaying || p.state.Duration <= 0 {
		return
	}
	if p.position() >= p.state.Duration {
		p.base = p.state.Duration
		p.state.Status = domain.PlaybackPaused
		p.state.UpdatedAt = p.now()
	}
}

func (p *Player) position() float64 {
	if p.state.Status != domain.PlaybackPlaying {
		return p.base
	}
	return p.clampPosition(p.base + p.now().Sub(p.anchor).Seconds())
}

func (p *Player) clampPosition(pos float64) float64 {
	if p.state.Duration > 0 {
		return clamp(pos, 0, p.state.Duration)
	}
	return clamp(pos, 0, math.MaxFloat64)
}

func (p *Player) reset() {
	p.state = domain.NowPlaying{
		RequestID: p.state.RequestID,
		Status:    domain.PlaybackIdle,
		Volume:    p.state.Volume,
		Muted:     p.state.Muted,
	}
	p.base = 0
}

func (p *Player) touch() domain.NowPlaying {
	p.state.UpdatedAt = p.now()
	return p.snapshot()
}

func (p *Player) snapshot() domain.NowPlaying {
	s := p.state
	s.Position = p.position()
	if s.TrackID != nil {
		id := *s.TrackID
		s.TrackID = &id
	}
	return s
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}
