package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"tokengated-music/internal/core/domain"
	"tokengated-music/internal/core/ports"
	"tokengated-music/pkg/apperror"

	"github.com/rs/zerolog"
)

const subscriberBuffer = 16

// PlaybackServiceImpl implements ports.PlaybackService. Every Play gets a
// monotonically increasing request id; a newer request cancels the older
// one and a result for a superseded id is discarded.
type PlaybackServiceImpl struct {
	tracks  ports.TrackRepository
	fetcher ports.ContentFetcher
	runtime *ThresholdRuntime
	signers ports.SignerSource
	audit   ports.AuditService
	player  *Player
	blobs   *BlobStore
	signIn  SignInConfig
	now     func() time.Time
	log     zerolog.Logger

	mu      sync.Mutex
	seq     uint64
	cancel  context.CancelFunc
	subs    map[int]chan domain.NowPlaying
	nextSub int
}

// NewPlaybackService creates a new PlaybackServiceImpl.
func NewPlaybackService(
	tracks ports.TrackRepository,
	fetcher ports.ContentFetcher,
	runtime *ThresholdRuntime,
	signers ports.SignerSource,
	audit ports.AuditService,
	player *Player,
	blobs *BlobStore,
	signIn SignInConfig,
	log zerolog.Logger,
) *PlaybackServiceImpl {
	return &PlaybackServiceImpl{
		tracks:  tracks,
		fetcher: fetcher,
		runtime: runtime,
		signers: signers,
		audit:   audit,
		player:  player,
		blobs:   blobs,
		signIn:  signIn,
		now:     time.Now,
		log:     log,
		subs:    make(map[int]chan domain.NowPlaying),
	}
}

// Play fetches, decrypts and starts the track. Decryption failures of any
// kind surface as the same AccessDenied error; the reason is only logged
// and audited.
func (s *PlaybackServiceImpl) Play(ctx context.Context, req ports.PlayRequest) (domain.NowPlaying, error) {
	track, err := s.tracks.GetByID(ctx, req.TrackID)
	if err != nil {
		return s.NowPlaying(), apperror.InternalError(fmt.Errorf("get track: %w", err))
	}
	if track == nil {
		return s.NowPlaying(), apperror.ErrNotFound("Track")
	}

	signer, err := s.signers.Signer(ctx, req.Address)
	if err != nil {
		return s.NowPlaying(), err
	}

	reqID, reqCtx := s.begin(ctx, track)
	defer s.finish(reqID)

	ciphertext, err := s.fetcher.Fetch(reqCtx, track.AudioCID)
	if err != nil {
		if s.superseded(reqID) {
			return s.NowPlaying(), apperror.ErrPlaybackSuperseded()
		}
		s.abort(reqID)
		s.log.Warn().Err(err).Str("track_id", track.ID.String()).Str("cid", track.AudioCID).Msg("play: fetch failed")
		return s.NowPlaying(), apperror.ErrFetch(err)
	}

	plaintext, reason, err := s.decrypt(reqCtx, ciphertext, signer)
	if err != nil {
		if s.superseded(reqID) {
			return s.NowPlaying(), apperror.ErrPlaybackSuperseded()
		}
		s.abort(reqID)
		s.deny(ctx, req, track, reason, err)
		return s.NowPlaying(), apperror.ErrAccessDenied()
	}

	addr := signer.Address()
	blob := s.blobs.Put(addr, plaintext)
	state, ok := s.player.Load(reqID, blob.ID)
	if !ok {
		s.blobs.Release(blob.ID)
		s.log.Debug().Uint64("request_id", reqID).Str("track_id", track.ID.String()).Msg("play: discarded superseded result")
		return state, apperror.ErrPlaybackSuperseded()
	}
	s.broadcast(state)

	s.audit.Log(ctx, &domain.AuditLog{
		Address:      &addr,
		Action:       domain.AuditActionPlay,
		ResourceType: "track",
		ResourceID:   track.ID.String(),
		IPAddress:    req.ClientIP,
	})
	s.log.Info().
		Uint64("request_id", reqID).
		Str("track_id", track.ID.String()).
		Str("address", addr).
		Int("bytes", len(plaintext)).
		Msg("playing")

	return state, nil
}

func (s *PlaybackServiceImpl) decrypt(ctx context.Context, ciphertext []byte, signer ports.Signer) ([]byte, string, error) {
	kit, err := domain.ParseMessageKit(ciphertext)
	if err != nil {
		return nil, "malformed message kit", err
	}
	cc, err := NewConditionContext(ctx, kit, signer, s.signIn, s.now())
	if err != nil {
		return nil, "signature rejected", err
	}
	plaintext, err := s.runtime.Decrypt(ctx, kit, cc)
	if err != nil {
		return nil, "decrypt failed", err
	}
	return plaintext, "", nil
}

func (s *PlaybackServiceImpl) deny(ctx context.Context, req ports.PlayRequest, track *domain.Track, reason string, err error) {
	s.log.Warn().Err(err).
		Str("track_id", track.ID.String()).
		Str("address", req.Address).
		Str("reason", reason).
		Msg("play: access denied")

	addr := req.Address
	s.audit.Log(ctx, &domain.AuditLog{
		Address:      &addr,
		Action:       domain.AuditActionAccessDenied,
		ResourceType: "track",
		ResourceID:   track.ID.String(),
		Details:      fmt.Sprintf(`{"reason":%q,"error":%q}`, reason, err.Error()),
		IPAddress:    req.ClientIP,
	})
}

// begin claims the slot for a new request, cancelling the in-flight one
// and releasing the blob of the track that was playing.
func (s *PlaybackServiceImpl) begin(ctx context.Context, track *domain.Track) (uint64, context.Context) {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.seq++
	reqID := s.seq
	// keep running after the HTTP request returns only until superseded
	reqCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	state, released := s.player.Begin(reqID, track)
	s.mu.Unlock()

	s.blobs.Release(released)
	s.broadcast(state)
	return reqID, reqCtx
}

func (s *PlaybackServiceImpl) finish(reqID uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.seq == reqID && s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *PlaybackServiceImpl) superseded(reqID uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seq != reqID
}

func (s *PlaybackServiceImpl) abort(reqID uint64) {
	if state, ok := s.player.Abort(reqID); ok {
		s.broadcast(state)
	}
}

func (s *PlaybackServiceImpl) Toggle() (domain.NowPlaying, error) {
	return s.control(s.player.Toggle())
}

func (s *PlaybackServiceImpl) Pause() (domain.NowPlaying, error) {
	return s.control(s.player.Pause())
}

func (s *PlaybackServiceImpl) Resume() (domain.NowPlaying, error) {
	return s.control(s.player.Resume())
}

// Stop cancels any in-flight request and releases the current blob.
func (s *PlaybackServiceImpl) Stop() domain.NowPlaying {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.seq++ // invalidates the in-flight request
	state, released := s.player.Stop()
	s.mu.Unlock()

	s.blobs.Release(released)
	s.broadcast(state)
	return state
}

func (s *PlaybackServiceImpl) Seek(position float64) (domain.NowPlaying, error) {
	return s.control(s.player.Seek(position))
}

func (s *PlaybackServiceImpl) SetVolume(volume float64) domain.NowPlaying {
	state := s.player.SetVolume(volume)
	s.broadcast(state)
	return state
}

func (s *PlaybackServiceImpl) ToggleMute() domain.NowPlaying {
	state := s.player.ToggleMute()
	s.broadcast(state)
	return state
}

func (s *PlaybackServiceImpl) NowPlaying() domain.NowPlaying {
	return s.player.Snapshot()
}

// Blob returns decrypted audio to the wallet that played it.
func (s *PlaybackServiceImpl) Blob(id, address string) (*domain.AudioBlob, bool) {
	return s.blobs.Get(id, address)
}

func (s *PlaybackServiceImpl) control(state domain.NowPlaying, err error) (domain.NowPlaying, error) {
	if err != nil {
		return state, err
	}
	s.broadcast(state)
	return state, nil
}

// Subscribe streams state changes until the returned func is called.
// Slow subscribers miss updates rather than block playback.
func (s *PlaybackServiceImpl) Subscribe() (<-chan domain.NowPlaying, func()) {
	ch := make(chan domain.NowPlaying, subscriberBuffer)

	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch
	s.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
			close(ch)
		})
	}
}

func (s *PlaybackServiceImpl) broadcast(state domain.NowPlaying) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- state:
		default:
		}
	}
}
