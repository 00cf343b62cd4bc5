package handler

import (
	"log/slog"
	"net/http"

	"glpmap/internal/delivery/api/response"
	"glpmap/internal/delivery/middleware"
	"glpmap/internal/domain/constants"
	"glpmap/internal/domain/entity"
	"glpmap/internal/mapview/viewport"
	"glpmap/internal/usecase"
	"glpmap/internal/util"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	SessionUC usecase.MapSessionUsecase
	Logger    *slog.Logger
}

// SessionHandler exposes map sessions over HTTP
type SessionHandler struct {
	sessionUC usecase.MapSessionUsecase
	logger    *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// PointRequest is a pointer position in container pixels
type PointRequest struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p *PointRequest) point() *orb.Point {
	if p == nil {
		return nil
	}
	pt := orb.Point{p.X, p.Y}

	return &pt
}

// SizeRequest is a container size in pixels
type SizeRequest struct {
	Width  float64 `json:"width" validate:"gt=0"`
	Height float64 `json:"height" validate:"gt=0"`
}

func (s *SizeRequest) size() viewport.Size {
	if s == nil {
		return viewport.Size{}
	}

	return viewport.Size{Width: s.Width, Height: s.Height}
}

// CreateSessionRequest represents the request body for opening a session on an inline snapshot
type CreateSessionRequest struct {
	Name      string           `json:"name"`
	Snapshot  *entity.Snapshot `json:"snapshot" validate:"required"`
	Container *SizeRequest     `json:"container,omitempty" validate:"omitempty"`
}

// SeedSessionRequest represents the request body for opening a session on the configured snapshot
type SeedSessionRequest struct {
	Name      string       `json:"name"`
	Container *SizeRequest `json:"container,omitempty" validate:"omitempty"`
}

// ZoomRequest represents one wheel step
type ZoomRequest struct {
	Pointer   *PointRequest `json:"pointer,omitempty"`
	Direction int           `json:"direction" validate:"required"`
}

// PanRequest represents a pan to an offset, or a drag by it when Relative is set
type PanRequest struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Relative bool    `json:"relative"`
}

// TickRequest advances the clock, either in absolute minutes or as a clock stamp like "D1 09:00"
type TickRequest struct {
	Minute *int   `json:"minute,omitempty" validate:"omitempty,gte=0"`
	Clock  string `json:"clock,omitempty"`
}

// PointerRequest carries an optional pointer position
type PointerRequest struct {
	Pointer *PointRequest `json:"pointer,omitempty"`
}

// CreateSession handles opening a session on an inline snapshot
func (h *SessionHandler) CreateSession(c echo.Context) error {
	var req CreateSessionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid session input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	view, err := h.sessionUC.CreateSession(c.Request().Context(), &usecase.CreateSessionInput{
		Name:      req.Name,
		Snapshot:  req.Snapshot,
		Container: req.Container.size(),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, view)
}

// SeedSession handles opening a session on the configured snapshot directory
func (h *SessionHandler) SeedSession(c echo.Context) error {
	var req SeedSessionRequest
	if c.Request().ContentLength != 0 {
		if err := c.Bind(&req); err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid seed input")
		}
		if err := c.Validate(&req); err != nil {
			return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
		}
	}

	view, err := h.sessionUC.SeedSession(c.Request().Context(), req.Name, req.Container.size())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, view)
}

// ListSessions handles listing live sessions
func (h *SessionHandler) ListSessions(c echo.Context) error {
	views, err := h.sessionUC.ListSessions(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, views)
}

// GetSession handles describing one session
func (h *SessionHandler) GetSession(c echo.Context) error {
	id, ok := sessionID(c)
	if !ok {
		return invalidSessionID(c)
	}

	view, err := h.sessionUC.GetSession(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// DeleteSession handles closing a session
func (h *SessionHandler) DeleteSession(c echo.Context) error {
	id, ok := sessionID(c)
	if !ok {
		return invalidSessionID(c)
	}

	if err := h.sessionUC.DeleteSession(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetFrame handles rendering the current frame, as GeoJSON when format=geojson
func (h *SessionHandler) GetFrame(c echo.Context) error {
	id, ok := sessionID(c)
	if !ok {
		return invalidSessionID(c)
	}

	switch format := c.QueryParam("format"); format {
	case "", constants.FrameFormatJSON:
		frame, err := h.sessionUC.Frame(c.Request().Context(), id)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, frame)
	case constants.FrameFormatGeoJSON:
		fc, err := h.sessionUC.FeatureCollection(c.Request().Context(), id)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, fc)
	default:
		return response.BadRequest(c, "INVALID_FORMAT", "Unsupported frame format: "+format)
	}
}

// Resize handles a container resize
func (h *SessionHandler) Resize(c echo.Context) error {
	id, ok := sessionID(c)
	if !ok {
		return invalidSessionID(c)
	}

	var req SizeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid resize input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	frame, err := h.sessionUC.Resize(c.Request().Context(), id, req.size())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, frame)
}

// Zoom handles a wheel step
func (h *SessionHandler) Zoom(c echo.Context) error {
	id, ok := sessionID(c)
	if !ok {
		return invalidSessionID(c)
	}

	var req ZoomRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid zoom input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	frame, err := h.sessionUC.Zoom(c.Request().Context(), id, req.Pointer.point(), req.Direction)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, frame)
}

// Pan handles a pan or a drag
func (h *SessionHandler) Pan(c echo.Context) error {
	id, ok := sessionID(c)
	if !ok {
		return invalidSessionID(c)
	}

	var req PanRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid pan input")
	}

	frame, err := h.sessionUC.Pan(c.Request().Context(), id, orb.Point{req.X, req.Y}, req.Relative)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, frame)
}

// FitToScreen handles the fit button
func (h *SessionHandler) FitToScreen(c echo.Context) error {
	id, ok := sessionID(c)
	if !ok {
		return invalidSessionID(c)
	}

	frame, err := h.sessionUC.FitToScreen(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, frame)
}

// Tick handles a clock update
func (h *SessionHandler) Tick(c echo.Context) error {
	id, ok := sessionID(c)
	if !ok {
		return invalidSessionID(c)
	}

	var req TickRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid tick input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	var minute int
	switch {
	case req.Minute != nil:
		minute = *req.Minute
	case req.Clock != "":
		parsed, err := util.ParseSimClock(req.Clock)
		if err != nil {
			return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
		}
		minute = parsed
	default:
		return response.BadRequest(c, "VALIDATION_ERROR", "minute or clock is required")
	}

	frame, err := h.sessionUC.Tick(c.Request().Context(), id, minute)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, frame)
}

// Click handles a click; without a pointer the container centre is used
func (h *SessionHandler) Click(c echo.Context) error {
	id, ok := sessionID(c)
	if !ok {
		return invalidSessionID(c)
	}

	var req PointerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid click input")
	}

	frame, err := h.sessionUC.Click(c.Request().Context(), id, req.Pointer.point())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, frame)
}

// Hover handles pointer moves; without a pointer the pointer left the map
func (h *SessionHandler) Hover(c echo.Context) error {
	id, ok := sessionID(c)
	if !ok {
		return invalidSessionID(c)
	}

	var req PointerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid hover input")
	}

	frame, err := h.sessionUC.Hover(c.Request().Context(), id, req.Pointer.point())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, frame)
}

func sessionID(c echo.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(middleware.SessionParam))
	if err != nil {
		return uuid.Nil, false
	}

	return id, true
}

func invalidSessionID(c echo.Context) error {
	return response.BadRequest(c, "INVALID_SESSION_ID", "Invalid session ID format")
}
