package response

import (
	"errors"
	"net/http"
	"time"

	"tokengated-music/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ctxRequestID mirrors middleware.CtxRequestID; importing middleware here would cycle.
const ctxRequestID = "request_id"

// Envelope wraps every successful payload. Meta is set on listings only.
type Envelope struct {
	Data      any       `json:"data"`
	Meta      *PageMeta `json:"meta,omitempty"`
	RequestID string    `json:"request_id"`
	Timestamp string    `json:"timestamp"`
}

// PageMeta describes one page of a listing.
type PageMeta struct {
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	Total    int64 `json:"total"`
}

// ErrorResponse is the error envelope. The wrapped cause never leaves the node.
type ErrorResponse struct {
	ErrorCode string `json:"error_code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
	Timestamp string `json:"timestamp"`
}

func OK(c *gin.Context, data any) {
	write(c, http.StatusOK, data, nil)
}

func Created(c *gin.Context, data any) {
	write(c, http.StatusCreated, data, nil)
}

// Paged sends one page of items with its position in the full listing.
func Paged(c *gin.Context, items any, meta PageMeta) {
	write(c, http.StatusOK, items, &meta)
}

// Error maps err to its AppError code; anything else becomes SYS_001.
// The full error is attached to the gin context for the request logger.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		appErr = apperror.InternalError(err)
	}
	_ = c.Error(err)

	c.JSON(appErr.HTTPStatus, ErrorResponse{
		ErrorCode: appErr.Code,
		Message:   appErr.Message,
		RequestID: RequestID(c),
		Timestamp: now(),
	})
}

// RequestID returns the id assigned by the request-id middleware, or a fresh one.
func RequestID(c *gin.Context) string {
	if id := c.GetString(ctxRequestID); id != "" {
		return id
	}
	return uuid.NewString()
}

func write(c *gin.Context, status int, data any, meta *PageMeta) {
	c.JSON(status, Envelope{
		Data:      data,
		Meta:      meta,
		RequestID: RequestID(c),
		Timestamp: now(),
	})
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
