// Package middleware holds the echo middleware shared by the API and the worker servers.
package middleware

import (
	"log/slog"

	deliverycontext "glpmap/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// SessionParam is the path parameter naming a map session.
const SessionParam = "id"

// ScopeMiddleware binds a request id, the addressed map session and a logger carrying both to
// every request. Echo runs it after routing, so path parameters are already resolved.
type ScopeMiddleware struct {
	logger *slog.Logger
}

func NewScopeMiddleware(logger *slog.Logger) *ScopeMiddleware {
	return &ScopeMiddleware{logger: logger}
}

func (m *ScopeMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		ctx := deliverycontext.WithRequestID(c.Request().Context(), requestID)
		reqLogger := m.logger.With(slog.String("request_id", requestID))

		if sessionID := c.Param(SessionParam); sessionID != "" {
			ctx = deliverycontext.WithSessionID(ctx, sessionID)
			reqLogger = reqLogger.With(slog.String("session_id", sessionID))
		}

		c.SetRequest(c.Request().WithContext(deliverycontext.WithLogger(ctx, reqLogger)))

		return next(c)
	}
}
