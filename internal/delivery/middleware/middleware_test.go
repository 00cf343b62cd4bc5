package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"glpmap/config"
	deliverycontext "glpmap/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(buf *bytes.Buffer, debug bool, handler echo.HandlerFunc) *echo.Echo {
	logger := slog.New(slog.NewJSONHandler(buf, nil))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewScopeMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)
	e.GET("/sessions/:id/frame", handler)

	return e
}

func TestScopeMiddleware(t *testing.T) {
	var buf bytes.Buffer
	var gotRequestID, gotSessionID string
	e := newTestEcho(&buf, true, func(c echo.Context) error {
		ctx := c.Request().Context()
		gotRequestID = deliverycontext.GetRequestIDFromContext(ctx)
		gotSessionID = deliverycontext.GetSessionIDFromContext(ctx)
		deliverycontext.GetLogger(ctx).Info("rendering")

		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/sessions/abc/frame", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-1")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-1", gotRequestID)
	assert.Equal(t, "abc", gotSessionID)
	assert.Equal(t, "req-1", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Contains(t, buf.String(), `"session_id":"abc"`)
	assert.Contains(t, buf.String(), `"route":"/sessions/:id/frame"`)
}

func TestLoggerMiddleware_QuietUnlessFailing(t *testing.T) {
	var buf bytes.Buffer
	status := http.StatusOK
	e := newTestEcho(&buf, false, func(c echo.Context) error {
		return c.NoContent(status)
	})

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/sessions/abc/frame", nil))
	assert.Empty(t, buf.String())

	status = http.StatusServiceUnavailable
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/sessions/abc/frame", nil))
	assert.Contains(t, buf.String(), `"status":503`)
	assert.Contains(t, buf.String(), `"level":"ERROR"`)
}
