// Package errors provides custom error types for the phonebot API.
// Service-layer errors use AppError so handlers can map them to a status
// code and the {"error": "..."} response body in one place.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Description returns the text sent to clients. Internal faults carry the
// underlying error's description; everything else uses the message.
func (e *AppError) Description() string {
	if e.StatusCode >= http.StatusInternalServerError && e.Internal != nil {
		return e.Internal.Error()
	}
	return e.Message
}

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Request errors.
var (
	ErrInvalidPath      = &AppError{Code: "INVALID_PATH", Message: "Invalid path parameter", StatusCode: http.StatusBadRequest}
	ErrInvalidInput     = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrMethodNotAllowed = &AppError{Code: "METHOD_NOT_ALLOWED", Message: "Method not allowed", StatusCode: http.StatusMethodNotAllowed}
)

// General errors.
var (
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Bot errors.
var (
	ErrBotNotConfigured = &AppError{Code: "BOT_NOT_CONFIGURED", Message: "Bot token not configured", StatusCode: http.StatusInternalServerError}
)
