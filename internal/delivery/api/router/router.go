// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"glpmap/config"
	"glpmap/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler *handler.SessionHandler
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	sessionHandler *handler.SessionHandler
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sessionHandler: params.SessionHandler,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	// Map session routes
	sessionsGroup := apiV1.Group("/sessions")
	{
		sessionsGroup.POST("", r.sessionHandler.CreateSession)
		sessionsGroup.POST("/seed", r.sessionHandler.SeedSession)
		sessionsGroup.GET("", r.sessionHandler.ListSessions)
		sessionsGroup.GET("/:id", r.sessionHandler.GetSession)
		sessionsGroup.DELETE("/:id", r.sessionHandler.DeleteSession)
		sessionsGroup.GET("/:id/frame", r.sessionHandler.GetFrame)
	}

	// Viewport and pointer events, each answered with the fresh frame
	eventsGroup := sessionsGroup.Group("/:id")
	{
		eventsGroup.POST("/resize", r.sessionHandler.Resize)
		eventsGroup.POST("/zoom", r.sessionHandler.Zoom)
		eventsGroup.POST("/pan", r.sessionHandler.Pan)
		eventsGroup.POST("/fit", r.sessionHandler.FitToScreen)
		eventsGroup.POST("/tick", r.sessionHandler.Tick)
		eventsGroup.POST("/click", r.sessionHandler.Click)
		eventsGroup.POST("/hover", r.sessionHandler.Hover)
	}
}
