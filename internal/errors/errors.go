// Package errors provides custom error types for the Tunji API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
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

// Authentication & authorization errors.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid email or password", StatusCode: http.StatusUnauthorized}
	ErrForbidden          = &AppError{Code: "FORBIDDEN", Message: "Access denied", StatusCode: http.StatusForbidden}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// User errors.
var (
	ErrUserNotFound   = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", StatusCode: http.StatusNotFound}
	ErrDuplicateEmail = &AppError{Code: "DUPLICATE_EMAIL", Message: "A user with this email already exists", StatusCode: http.StatusConflict}
)

// Property errors.
var (
	ErrPropertyNotFound  = &AppError{Code: "PROPERTY_NOT_FOUND", Message: "Property not found", StatusCode: http.StatusNotFound}
	ErrInvalidProjection = &AppError{Code: "INVALID_PROJECTION_INPUT", Message: "Property inputs cannot be projected", StatusCode: http.StatusBadRequest}
)

// Condition report errors.
var (
	ErrReportNotFound = &AppError{Code: "CONDITION_REPORT_NOT_FOUND", Message: "Condition report not found", StatusCode: http.StatusNotFound}
)

// Analysis errors.
var (
	ErrSnapshotNotFound  = &AppError{Code: "SNAPSHOT_NOT_FOUND", Message: "Analysis snapshot not found", StatusCode: http.StatusNotFound}
	ErrInvalidStrategy   = &AppError{Code: "INVALID_STRATEGY", Message: "Unsupported income strategy", StatusCode: http.StatusBadRequest}
	ErrInvalidTargetDSCR = &AppError{Code: "INVALID_TARGET_DSCR", Message: "Target DSCR must be at least 1.0", StatusCode: http.StatusBadRequest}
)

// Rehab errors.
var (
	ErrInvalidRehabTier = &AppError{Code: "INVALID_REHAB_TIER", Message: "Unsupported rehab tier", StatusCode: http.StatusBadRequest}
)
