// Package response writes the JSON envelope shared by every endpoint:
// {"data": ..., "meta": {...}} on success and {"error": {...}, "meta": {...}} on failure.
package response

import (
	"net/http"

	deliverycontext "glpmap/internal/delivery/context"
	domainerrors "glpmap/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo describes a failed request
type ErrorInfo struct {
	Code    string `json:"code"`              // Machine-readable, e.g. "CLOCK_REGRESSION"
	Message string `json:"message"`
	Details any    `json:"details,omitempty"` // 4xx only
}

// MetaInfo identifies the request and, on session routes, the map session
type MetaInfo struct {
	RequestID string `json:"request_id"`
	SessionID string `json:"session_id,omitempty"`
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{
		RequestID: deliverycontext.GetRequestID(c),
		SessionID: deliverycontext.GetSessionIDFromContext(c.Request().Context()),
	}
}

func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{Data: data, Meta: meta(c)})
}

// Error writes an error envelope. Details never leave the server on 5xx.
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	if statusCode >= http.StatusInternalServerError {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: meta(c),
	})
}

func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// BindingError reports a request body or query that could not be decoded or validated
func BindingError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

// HandleAppError writes domain errors as envelopes and returns anything else to echo's error handler
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), AppErrorDetails(appErr))
	}

	return errors.WithStack(err)
}

// AppErrorDetails returns the details of err, or nil when it has none
func AppErrorDetails(err domainerrors.AppError) any {
	if details := err.Details(); details != "" {
		return details
	}

	return nil
}
