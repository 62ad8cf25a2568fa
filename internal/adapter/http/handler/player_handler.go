package handler

import (
	"bytes"
	"net/http"

	"tokengated-music/internal/adapter/http/dto"
	"tokengated-music/internal/adapter/http/middleware"
	"tokengated-music/internal/core/domain"
	"tokengated-music/internal/core/ports"
	"tokengated-music/pkg/apperror"
	"tokengated-music/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PlayerHandler exposes the now-playing slot.
type PlayerHandler struct {
	playbackSvc ports.PlaybackService
}

func NewPlayerHandler(playbackSvc ports.PlaybackService) *PlayerHandler {
	return &PlayerHandler{playbackSvc: playbackSvc}
}

// Play handles POST /api/v1/player/play.
func (h *PlayerHandler) Play(c *gin.Context) {
	var req dto.PlayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}
	id, err := uuid.Parse(req.TrackID)
	if err != nil {
		response.Error(c, apperror.Validation("invalid track id"))
		return
	}

	state, err := h.playbackSvc.Play(c.Request.Context(), ports.PlayRequest{
		Address:  middleware.Address(c),
		TrackID:  id,
		ClientIP: c.ClientIP(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, state)
}

func (h *PlayerHandler) Toggle(c *gin.Context) { respondState(c)(h.playbackSvc.Toggle()) }
func (h *PlayerHandler) Pause(c *gin.Context)  { respondState(c)(h.playbackSvc.Pause()) }
func (h *PlayerHandler) Resume(c *gin.Context) { respondState(c)(h.playbackSvc.Resume()) }

func (h *PlayerHandler) Stop(c *gin.Context) {
	response.OK(c, h.playbackSvc.Stop())
}

// Seek handles POST /api/v1/player/seek. Out of range positions are clamped.
func (h *PlayerHandler) Seek(c *gin.Context) {
	var req dto.SeekRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}
	respondState(c)(h.playbackSvc.Seek(*req.Position))
}

// Volume handles POST /api/v1/player/volume. The volume is clamped to [0, 1].
func (h *PlayerHandler) Volume(c *gin.Context) {
	var req dto.VolumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}
	response.OK(c, h.playbackSvc.SetVolume(*req.Volume))
}

func (h *PlayerHandler) Mute(c *gin.Context) {
	response.OK(c, h.playbackSvc.ToggleMute())
}

// State handles GET /api/v1/player.
func (h *PlayerHandler) State(c *gin.Context) {
	response.OK(c, h.playbackSvc.NowPlaying())
}

// Blob handles GET /api/v1/player/blobs/:id, streaming decrypted audio
// with range support. A blob decrypted by another wallet is reported as missing.
func (h *PlayerHandler) Blob(c *gin.Context) {
	blob, ok := h.playbackSvc.Blob(c.Param("id"), middleware.Address(c))
	if !ok {
		response.Error(c, apperror.ErrNotFound("Blob"))
		return
	}
	c.Header("Content-Type", blob.ContentType)
	c.Header("Cache-Control", "no-store")
	http.ServeContent(c.Writer, c.Request, "", blob.CreatedAt, bytes.NewReader(blob.Data))
}

func respondState(c *gin.Context) func(domain.NowPlaying, error) {
	return func(state domain.NowPlaying, err error) {
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, state)
	}
}
