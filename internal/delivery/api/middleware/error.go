package middleware

import (
	"log/slog"
	"net/http"

	"glpmap/internal/delivery/api/response"
	deliverycontext "glpmap/internal/delivery/context"
	domainerrors "glpmap/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware turns handler errors into response envelopes. It is installed as echo's
// HTTPErrorHandler on both the API and the worker server.
type ErrorMiddleware struct {
	logger *slog.Logger
}

func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), response.AppErrorDetails(appErr))

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)

		return
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Error("Unhandled error",
		slog.Any("error", err),
		slog.String("method", c.Request().Method),
		slog.String("route", c.Path()),
	)
	_ = response.InternalServerError(c, "INTERNAL_ERROR", "Internal server error, please try again later")
}
