// Package context carries request-scoped values, the request id, the map session id and a
// logger bound to both, from the delivery layer down to the usecases.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type key int

const (
	requestIDKey key = iota
	sessionIDKey
	loggerKey
)

const (
	// HeaderXRequestID is the header a client may use to choose the request id.
	HeaderXRequestID = "X-Request-Id"

	echoRequestID = "request_id"
)

// GetRequestID returns the request id stored on c. Responses always carry an id, so a fresh one
// is made up when the middleware did not run.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(echoRequestID).(string); ok && id != "" {
		return id
	}
	if id := GetRequestIDFromContext(c.Request().Context()); id != "" {
		return id
	}

	return uuid.NewString()
}

// SetRequestID stores the request id on c.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestID, requestID)
}

// GetRequestIDFromContext returns the request id or "".
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetSessionIDFromContext returns the map session addressed by the request or "".
func GetSessionIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(sessionIDKey).(string)

	return id
}

func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDKey, sessionID)
}

// GetLogger returns the request-scoped logger or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(loggerKey).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback outside a request.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}
