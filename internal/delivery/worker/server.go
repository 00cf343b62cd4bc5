package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"glpmap/config"
	"glpmap/internal/delivery"
	apimiddleware "glpmap/internal/delivery/api/middleware"
	"glpmap/internal/delivery/api/response"
	"glpmap/internal/delivery/middleware"
	"glpmap/internal/delivery/worker/handler"
	"glpmap/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type workerServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

// NewServer creates the map event worker HTTP server
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &workerServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: NewEcho(params.Logger, params.Cfg, params.PushHandler),
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// NewEcho builds the worker routes
func NewEcho(logger *slog.Logger, cfg *config.Config, pushHandler *handler.PushHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomiddleware.Recover())

	// Request scope before the logger reads it
	scopeMiddleware := middleware.NewScopeMiddleware(logger)
	e.Use(scopeMiddleware.Process)

	loggerMiddleware := middleware.NewLoggerMiddleware(logger, cfg)
	e.Use(loggerMiddleware.Handle)

	errorMiddleware := apimiddleware.NewErrorMiddleware(logger)
	e.HTTPErrorHandler = errorMiddleware.HandleHTTPError

	e.GET("/health", func(c echo.Context) error {
		return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Pub/Sub push endpoint
	e.POST("/push", pushHandler.HandlePush)
	e.GET("/events", pushHandler.ListEvents)

	return e
}

// Serve starts the worker HTTP server
func (s *workerServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting Worker HTTP server", slog.String("host_port", hostPort))
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

// stop gracefully shuts down the worker server
func (s *workerServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down Worker HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
