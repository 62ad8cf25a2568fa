package handler

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"tokengated-music/internal/adapter/http/dto"
	"tokengated-music/internal/adapter/http/middleware"
	"tokengated-music/internal/core/domain"
	"tokengated-music/internal/core/ports"
	"tokengated-music/pkg/apperror"
	"tokengated-music/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	HeaderIdempotencyKey = "Idempotency-Key"
	idempotencyTTL       = 24 * time.Hour
)

// TrackHandler handles publishing and browsing tracks.
type TrackHandler struct {
	publishSvc ports.PublishService
	librarySvc ports.LibraryService
	idem       ports.IdempotencyStore // nil = Idempotency-Key ignored
	log        zerolog.Logger
}

func NewTrackHandler(publishSvc ports.PublishService, librarySvc ports.LibraryService, idem ports.IdempotencyStore, log zerolog.Logger) *TrackHandler {
	return &TrackHandler{publishSvc: publishSvc, librarySvc: librarySvc, idem: idem, log: log}
}

// Publish handles POST /api/v1/tracks (multipart: audio, cover_art, form fields).
func (h *TrackHandler) Publish(c *gin.Context) {
	owner := middleware.Address(c)
	ctx := c.Request.Context()

	idemKey := ""
	if key := c.GetHeader(HeaderIdempotencyKey); key != "" && h.idem != nil {
		idemKey = owner + ":" + key
		if track, ok := h.replay(c, idemKey); ok {
			response.OK(c, dto.NewTrackResponse(track))
			return
		}
	}

	var form dto.PublishForm
	if err := c.ShouldBind(&form); err != nil {
		response.Error(c, bindError(err))
		return
	}
	dto.SanitizeStruct(&form)

	audio, err := readFormFile(c, "audio")
	if err != nil {
		response.Error(c, bindError(err))
		return
	}
	if audio == nil {
		response.Error(c, apperror.Validation("audio file is required"))
		return
	}
	cover, err := readFormFile(c, "cover_art")
	if err != nil {
		response.Error(c, bindError(err))
		return
	}

	track, err := h.publishSvc.Publish(ctx, ports.PublishRequest{
		Owner:           owner,
		Title:           form.Title,
		Artist:          form.Artist,
		Audio:           audio,
		CoverArt:        cover,
		Condition:       form.Form(),
		DurationSeconds: form.DurationSeconds,
		ClientIP:        c.ClientIP(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	if idemKey != "" {
		if err := h.idem.Remember(ctx, idemKey, track.ID, idempotencyTTL); err != nil {
			h.log.Warn().Err(err).Str("track_id", track.ID.String()).Msg("failed to remember idempotency key")
		}
	}
	response.Created(c, dto.NewTrackResponse(track))
}

// replay returns the track an earlier request with the same key produced.
func (h *TrackHandler) replay(c *gin.Context, key string) (*domain.Track, bool) {
	id, found, err := h.idem.Lookup(c.Request.Context(), key)
	if err != nil {
		h.log.Warn().Err(err).Msg("idempotency lookup failed, publishing anyway")
		return nil, false
	}
	if !found {
		return nil, false
	}
	track, err := h.librarySvc.GetTrack(c.Request.Context(), id)
	if err != nil {
		return nil, false
	}
	return track, true
}

// List handles GET /api/v1/tracks.
func (h *TrackHandler) List(c *gin.Context) {
	var q dto.TrackListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	params := ports.TrackListParams{Page: q.Page, PageSize: q.PageSize}
	if q.Owner != "" {
		params.Owner = &q.Owner
	}
	tracks, total, err := h.librarySvc.ListTracks(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.TrackResponse, 0, len(tracks))
	for i := range tracks {
		items = append(items, dto.NewTrackResponse(&tracks[i]))
	}
	page, size := params.Page, params.PageSize
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 20
	}
	response.Paged(c, items, response.PageMeta{Page: page, PageSize: size, Total: total})
}

// Get handles GET /api/v1/tracks/:id.
func (h *TrackHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid track id"))
		return
	}

	track, err := h.librarySvc.GetTrack(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewTrackResponse(track))
}

// readFormFile returns the content of an uploaded file, or nil if absent.
func readFormFile(c *gin.Context, field string) ([]byte, error) {
	fh, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

func bindError(err error) error {
	if middleware.IsBodyTooLarge(err) || errors.Is(err, multipart.ErrMessageTooLarge) {
		return apperror.ErrPayloadTooLarge()
	}
	return apperror.Validation(err.Error())
}
