package service

import (
	"context"
	"errors"
	"fmt"

	"tokengated-music/internal/core/ports"

	"github.com/ipfs/go-cid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// UploadResult holds the content identifiers returned by the relay.
type UploadResult struct {
	AudioCID    string
	CoverArtCID string // empty when no cover art was sent
}

// CIDs lists every non-empty identifier.
func (r *UploadResult) CIDs() []string {
	out := []string{r.AudioCID}
	if r.CoverArtCID != "" {
		out = append(out, r.CoverArtCID)
	}
	return out
}

// Relay pins encrypted audio and plain cover art with the node's own
// pinning credentials.
type Relay struct {
	pins    ports.PinningService
	orphans ports.OrphanService
	log     zerolog.Logger
}

// NewRelay creates a new storage relay.
func NewRelay(pins ports.PinningService, orphans ports.OrphanService, log zerolog.Logger) *Relay {
	return &Relay{pins: pins, orphans: orphans, log: log}
}

// Upload pins audio and the optional cover concurrently. If either pin
// fails, the other is unpinned so nothing is left behind.
func (r *Relay) Upload(ctx context.Context, name string, audio, cover []byte) (*UploadResult, error) {
	if len(audio) == 0 {
		return nil, errors.New("audio payload is empty")
	}

	var res UploadResult
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		c, err := r.pin(gctx, name+".enc", audio)
		if err != nil {
			return fmt.Errorf("pin audio: %w", err)
		}
		res.AudioCID = c
		return nil
	})
	if len(cover) > 0 {
		g.Go(func() error {
			c, err := r.pin(gctx, name+".cover", cover)
			if err != nil {
				return fmt.Errorf("pin cover art: %w", err)
			}
			res.CoverArtCID = c
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		r.Release(ctx, "relay upload failed", res.AudioCID, res.CoverArtCID)
		return nil, err
	}
	return &res, nil
}

// Release unpins the given CIDs; the ones that fail are handed to the
// orphan reaper.
func (r *Relay) Release(ctx context.Context, reason string, cids ...string) {
	ctx = context.WithoutCancel(ctx)
	for _, c := range cids {
		if c == "" {
			continue
		}
		if err := r.pins.Unpin(ctx, c); err != nil {
			r.log.Warn().Err(err).Str("cid", c).Msg("relay: unpin failed")
			r.orphans.Record(ctx, c, reason, err)
			continue
		}
		r.log.Info().Str("cid", c).Str("reason", reason).Msg("relay: unpinned")
	}
}

func (r *Relay) pin(ctx context.Context, name string, data []byte) (string, error) {
	raw, err := r.pins.Pin(ctx, name, data)
	if err != nil {
		return "", err
	}
	parsed, err := cid.Decode(raw)
	if err != nil {
		// it is pinned all the same
		r.orphans.Record(ctx, raw, "pinning service returned an invalid cid", err)
		return "", fmt.Errorf("invalid cid %q: %w", raw, err)
	}
	return parsed.String(), nil
}
