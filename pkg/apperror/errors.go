package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // never exposed to the client
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Validation (VAL) ----

// Validation reports malformed user input. It is raised before any network call.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

func ErrNotFound(entity string) *AppError {
	return New("VAL_002", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrPayloadTooLarge() *AppError {
	return New("VAL_003", "Request body too large", http.StatusRequestEntityTooLarge)
}

// ---- Content workflow ----

func ErrFetch(err error) *AppError {
	return Wrap("FETCH_001", "Failed to fetch content from gateway", http.StatusBadGateway, err)
}

func ErrEncryption(err error) *AppError {
	return Wrap("ENC_001", "Encryption failed", http.StatusBadGateway, err)
}

// ErrAccessDenied is deliberately uniform: the concrete reason is logged, not returned.
func ErrAccessDenied() *AppError {
	return New("ACC_001", "Access denied", http.StatusForbidden)
}

func ErrUpload(err error) *AppError {
	return Wrap("UPL_001", "Upload to storage relay failed", http.StatusBadGateway, err)
}

func ErrPersistence(err error) *AppError {
	return Wrap("PER_001", "Failed to persist track metadata", http.StatusInternalServerError, err)
}

// ---- Player (PLAY) ----

func ErrNothingLoaded() *AppError {
	return New("PLAY_001", "No track is loaded", http.StatusConflict)
}

func ErrPlaybackSuperseded() *AppError {
	return New("PLAY_002", "Playback request superseded by a newer one", http.StatusConflict)
}

// ---- Wallet authentication (AUTH) ----

func ErrWalletUnavailable(err error) *AppError {
	return Wrap("AUTH_001", "Wallet provider unavailable", http.StatusBadGateway, err)
}

func ErrWalletNotConnected() *AppError {
	return New("AUTH_002", "Wallet not connected", http.StatusUnauthorized)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_003", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrSignatureRejected() *AppError {
	return New("AUTH_004", "Wallet signature rejected", http.StatusUnauthorized)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

func ErrDependencyUnavailable(err error) *AppError {
	return Wrap("SYS_002", "Dependency unavailable", http.StatusServiceUnavailable, err)
}
