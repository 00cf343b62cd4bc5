package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Session-related errors
	ErrSessionNotFound = NewBaseError(
		http.StatusNotFound,
		"SESSION_NOT_FOUND",
		"map session not found",
		"",
	)

	ErrSessionLimitExceeded = NewBaseError(
		http.StatusTooManyRequests,
		"SESSION_LIMIT_EXCEEDED",
		"maximum number of live map sessions reached",
		"",
	)

	// Simulation-related errors
	ErrSnapshotInvalid = NewBaseError(
		http.StatusBadRequest,
		"SNAPSHOT_INVALID",
		"simulation snapshot is invalid",
		"",
	)

	ErrClockRegression = NewBaseError(
		http.StatusBadRequest,
		"CLOCK_REGRESSION",
		"simulation clock cannot move backwards",
		"",
	)

	ErrSnapshotSourceUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"SNAPSHOT_SOURCE_UNAVAILABLE",
		"no snapshot data directory is configured",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"request validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)
)

// SnapshotLoadError reports a snapshot source that could not be read or parsed, implementing the AppError interface
type SnapshotLoadError struct {
	err     error
	details string
}

// NewSnapshotLoadError creates a snapshot loading error
func NewSnapshotLoadError(err error, details string) AppError {
	return &SnapshotLoadError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *SnapshotLoadError) Error() string {
	return errors.Wrap(e.err, "snapshot load failed").Error()
}

// Unwrap returns the underlying cause
func (e *SnapshotLoadError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *SnapshotLoadError) HTTPCode() int {
	return http.StatusUnprocessableEntity
}

// ErrorCode returns the business error code
func (e *SnapshotLoadError) ErrorCode() string {
	return "SNAPSHOT_LOAD_FAILED"
}

// Message returns the user-friendly error message
func (e *SnapshotLoadError) Message() string {
	return "snapshot could not be loaded"
}

// Details returns detailed error information
func (e *SnapshotLoadError) Details() string {
	return e.details
}
