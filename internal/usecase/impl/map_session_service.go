// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"glpmap/config"
	deliverycontext "glpmap/internal/delivery/context"
	"glpmap/internal/domain/constants"
	"glpmap/internal/domain/entity"
	domainerrors "glpmap/internal/domain/errors"
	"glpmap/internal/domain/repository"
	"glpmap/internal/domain/service"
	"glpmap/internal/mapview/scene"
	"glpmap/internal/mapview/viewport"
	"glpmap/internal/usecase"
	"glpmap/internal/util"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
)

// mapSessionService implements the MapSessionUsecase interface.
type mapSessionService struct {
	sessionRepo repository.SessionRepository
	publisher   service.EventPublisher
	source      service.SnapshotSource
	logger      *slog.Logger

	sceneCfg         scene.Config
	defaultContainer viewport.Size
	maxSessions      int
	idleTTL          time.Duration

	// createMu keeps the session limit check and the insert atomic.
	createMu sync.Mutex
	now      func() time.Time
}

// NewMapSessionService is the constructor for mapSessionService.
func NewMapSessionService(
	sessionRepo repository.SessionRepository,
	publisher service.EventPublisher,
	source service.SnapshotSource,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.MapSessionUsecase {
	return &mapSessionService{
		sessionRepo: sessionRepo,
		publisher:   publisher,
		source:      source,
		logger:      logger,
		sceneCfg: scene.Config{
			Limits: viewport.Limits{
				MinScale:   cfg.Map.MinScale,
				MaxScale:   cfg.Map.MaxScale,
				ZoomSpeed:  cfg.Map.ZoomSpeed,
				FitPadding: cfg.Map.FitPadding,
			},
			RotationOffset: cfg.Map.RotationOffset,
			HitRadius:      cfg.Map.HitRadius,
		},
		defaultContainer: viewport.Size{
			Width:  cfg.Map.DefaultContainer.Width,
			Height: cfg.Map.DefaultContainer.Height,
		},
		maxSessions: cfg.Session.MaxSessions,
		idleTTL:     cfg.Session.IdleTTL,
		now:         time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *mapSessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateSession validates a snapshot and opens a session on it.
func (srv *mapSessionService) CreateSession(ctx context.Context, input *usecase.CreateSessionInput) (*usecase.SessionView, error) {
	if input == nil || input.Snapshot == nil {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("snapshot is required"))
	}
	if err := input.Snapshot.Validate(); err != nil {
		return nil, errors.WithStack(domainerrors.ErrSnapshotInvalid.WithDetails(err.Error()))
	}

	name := input.Name
	if name == "" {
		name = input.Snapshot.Name
	}

	return srv.open(ctx, name, input.Snapshot, input.Container)
}

// SeedSession opens a session on the configured snapshot source.
func (srv *mapSessionService) SeedSession(ctx context.Context, name string, container viewport.Size) (*usecase.SessionView, error) {
	snapshot, err := srv.source.LoadSnapshot(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if name == "" {
		name = snapshot.Name
	}

	return srv.open(ctx, name, snapshot, container)
}

func (srv *mapSessionService) open(ctx context.Context, name string, snapshot *entity.Snapshot, container viewport.Size) (*usecase.SessionView, error) {
	if container.IsZero() {
		container = srv.defaultContainer
	}

	srv.createMu.Lock()
	count, err := srv.sessionRepo.Count(ctx)
	if err != nil {
		srv.createMu.Unlock()

		return nil, errors.Wrap(err, "failed to count sessions")
	}
	if srv.maxSessions > 0 && count >= srv.maxSessions {
		srv.createMu.Unlock()

		return nil, errors.WithStack(domainerrors.ErrSessionLimitExceeded)
	}

	world := scene.NewWorld(snapshot, srv.sceneCfg)
	session := scene.NewSession(uuid.New(), name, world, world.InitialState(container), srv.now())
	err = srv.sessionRepo.Create(ctx, session)
	srv.createMu.Unlock()
	if err != nil {
		return nil, errors.Wrap(err, "failed to store session")
	}

	srv.log(ctx).Info("Map session created",
		slog.String("session_id", session.ID.String()),
		slog.String("name", name),
		slog.Int("orders", len(snapshot.Orders)),
		slog.Int("vehicles", len(snapshot.Vehicles)),
	)
	srv.publish(ctx, &service.MapEvent{
		SessionID: session.ID.String(),
		Type:      constants.MapEventSessionCreated,
		Clock:     entity.SimTimeFromMinutes(0).String(),
	})

	return srv.view(session), nil
}

// GetSession describes one session.
func (srv *mapSessionService) GetSession(ctx context.Context, id uuid.UUID) (*usecase.SessionView, error) {
	session, err := srv.find(ctx, id)
	if err != nil {
		return nil, err
	}

	return srv.view(session), nil
}

// ListSessions describes every live session.
func (srv *mapSessionService) ListSessions(ctx context.Context) ([]*usecase.SessionView, error) {
	sessions, err := srv.sessionRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sessions")
	}

	views := make([]*usecase.SessionView, 0, len(sessions))
	for _, s := range sessions {
		views = append(views, srv.view(s))
	}

	return views, nil
}

// DeleteSession closes a session.
func (srv *mapSessionService) DeleteSession(ctx context.Context, id uuid.UUID) error {
	if err := srv.sessionRepo.Delete(ctx, id); err != nil {
		return srv.mapRepoError(err)
	}

	srv.log(ctx).Info("Map session closed", slog.String("session_id", id.String()))
	srv.publish(ctx, &service.MapEvent{
		SessionID: id.String(),
		Type:      constants.MapEventSessionClosed,
		Extra:     map[string]any{"reason": "deleted"},
	})

	return nil
}

// Frame renders the current state without applying an event.
func (srv *mapSessionService) Frame(ctx context.Context, id uuid.UUID) (*scene.Frame, error) {
	_, frame, err := srv.render(ctx, id, scene.Input{}, nil)

	return frame, err
}

// FeatureCollection renders the current state as GeoJSON in grid coordinates.
func (srv *mapSessionService) FeatureCollection(ctx context.Context, id uuid.UUID) (*geojson.FeatureCollection, error) {
	session, frame, err := srv.render(ctx, id, scene.Input{}, nil)
	if err != nil {
		return nil, err
	}

	return frame.FeatureCollection(session.World.Mapper()), nil
}

// Resize records a new container size and refits the map.
func (srv *mapSessionService) Resize(ctx context.Context, id uuid.UUID, size viewport.Size) (*scene.Frame, error) {
	if size.IsZero() {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("container width and height must be positive"))
	}

	return srv.event(ctx, id, scene.Event{Type: scene.EventResize, Size: size})
}

// Zoom applies one wheel step.
func (srv *mapSessionService) Zoom(ctx context.Context, id uuid.UUID, pointer *orb.Point, direction int) (*scene.Frame, error) {
	if direction == 0 {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("zoom direction must be non-zero"))
	}

	return srv.event(ctx, id, scene.Event{Type: scene.EventZoom, Pointer: pointer, Sign: direction})
}

// Pan moves the stage to offset, or by offset when relative is set.
func (srv *mapSessionService) Pan(ctx context.Context, id uuid.UUID, offset orb.Point, relative bool) (*scene.Frame, error) {
	ev := scene.Event{Type: scene.EventPan, Offset: offset}
	if relative {
		ev.Type = scene.EventDrag
	}

	return srv.event(ctx, id, ev)
}

// FitToScreen fits and centres the map in its container.
func (srv *mapSessionService) FitToScreen(ctx context.Context, id uuid.UUID) (*scene.Frame, error) {
	return srv.event(ctx, id, scene.Event{Type: scene.EventFitToScreen})
}

// Tick advances the simulation clock.
func (srv *mapSessionService) Tick(ctx context.Context, id uuid.UUID, minute int) (*scene.Frame, error) {
	if minute < 0 {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("minute must not be negative"))
	}

	checkClock := func(state scene.State) error {
		if minute < state.Minute {
			return errors.WithStack(domainerrors.ErrClockRegression.WithDetails(
				fmt.Sprintf("session clock is at minute %d, tick requested minute %d", state.Minute, minute),
			))
		}

		return nil
	}

	_, frame, err := srv.render(ctx, id, scene.Input{Minute: &minute}, checkClock)

	return frame, err
}

// Click selects the entity under the pointer.
func (srv *mapSessionService) Click(ctx context.Context, id uuid.UUID, pointer *orb.Point) (*scene.Frame, error) {
	return srv.event(ctx, id, scene.Event{Type: scene.EventClick, Pointer: pointer})
}

// Hover tracks the pointer.
func (srv *mapSessionService) Hover(ctx context.Context, id uuid.UUID, pointer *orb.Point) (*scene.Frame, error) {
	if pointer == nil {
		return srv.event(ctx, id, scene.Event{Type: scene.EventHoverEnd})
	}

	return srv.event(ctx, id, scene.Event{Type: scene.EventHover, Pointer: pointer})
}

// EvictIdle closes the sessions idle for longer than the configured TTL.
func (srv *mapSessionService) EvictIdle(ctx context.Context) (int, error) {
	if srv.idleTTL <= 0 {
		return 0, nil
	}

	evicted, err := srv.sessionRepo.EvictIdle(ctx, srv.now().Add(-srv.idleTTL))
	if err != nil {
		return 0, errors.Wrap(err, "failed to evict idle sessions")
	}

	for _, id := range evicted {
		srv.log(ctx).Info("Idle map session evicted",
			slog.String("session_id", id.String()),
			slog.String("idle_ttl", util.FormatDuration(srv.idleTTL)),
		)
		srv.publish(ctx, &service.MapEvent{
			SessionID: id.String(),
			Type:      constants.MapEventSessionClosed,
			Extra:     map[string]any{"reason": "idle"},
		})
	}

	return len(evicted), nil
}

func (srv *mapSessionService) event(ctx context.Context, id uuid.UUID, ev scene.Event) (*scene.Frame, error) {
	_, frame, err := srv.render(ctx, id, scene.Input{Event: ev}, nil)

	return frame, err
}

// render runs one tick of a session under its lock. check may reject the input before anything
// changes.
func (srv *mapSessionService) render(
	ctx context.Context,
	id uuid.UUID,
	in scene.Input,
	check func(scene.State) error,
) (*scene.Session, *scene.Frame, error) {
	session, err := srv.find(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	session.Lock()
	state := session.State()
	if check != nil {
		if err := check(state); err != nil {
			session.Unlock()

			return nil, nil, err
		}
	}
	next, frame := session.World.Render(state, in)
	session.SetState(next)
	session.Unlock()

	if err := srv.sessionRepo.Touch(ctx, id, srv.now()); err != nil {
		srv.log(ctx).Debug("Session vanished during render", slog.String("session_id", id.String()))
	}

	srv.publishTransitions(ctx, session.ID, &frame)

	return session, &frame, nil
}

func (srv *mapSessionService) find(ctx context.Context, id uuid.UUID) (*scene.Session, error) {
	session, err := srv.sessionRepo.Get(ctx, id)
	if err != nil {
		return nil, srv.mapRepoError(err)
	}

	return session, nil
}

func (srv *mapSessionService) mapRepoError(err error) error {
	if errors.Is(err, repository.ErrSessionNotFound) {
		return errors.WithStack(domainerrors.ErrSessionNotFound)
	}

	return errors.Wrap(err, "session repository")
}

func (srv *mapSessionService) view(session *scene.Session) *usecase.SessionView {
	session.Lock()
	state := session.State()
	delivered := 0
	if state.Ledger != nil {
		delivered = state.Ledger.Delivered().Len()
	}
	session.Unlock()

	snapshot := session.World.Snapshot()

	return &usecase.SessionView{
		ID:           session.ID,
		Name:         session.Name,
		CreatedAt:    session.CreatedAt,
		LastAccessAt: session.LastAccess(),
		Minute:       state.Minute,
		Clock:        entity.SimTimeFromMinutes(state.Minute).String(),
		Grid:         session.World.Mapper().Grid(),
		Viewport:     state.Viewport,
		Counts: usecase.SessionCounts{
			Orders:     len(snapshot.Orders),
			Blockages:  len(snapshot.Blockages),
			Warehouses: len(snapshot.Warehouses),
			Vehicles:   len(snapshot.Vehicles),
			Delivered:  delivered,
		},
	}
}

// publishTransitions emits one event per irreversible change of the frame. Publishing is best
// effort: failures are logged and never reach the caller.
func (srv *mapSessionService) publishTransitions(ctx context.Context, sessionID uuid.UUID, frame *scene.Frame) {
	t := frame.Transitions
	if t.IsEmpty() {
		return
	}

	base := service.MapEvent{
		SessionID: sessionID.String(),
		Minute:    frame.Minute,
		Clock:     frame.Clock,
	}

	for _, orderID := range t.Delivered {
		ev := base
		ev.Type = constants.MapEventOrderDelivered
		ev.EntityID = orderID
		srv.publish(ctx, &ev)
	}
	for _, vehicleID := range t.Completed {
		ev := base
		ev.Type = constants.MapEventVehicleCompleted
		ev.EntityID = vehicleID
		srv.publish(ctx, &ev)
	}
	if ref := t.SelectionInvalidated; ref != nil {
		ev := base
		ev.Type = constants.MapEventSelectionInvalidated
		ev.EntityID = ref.ID
		ev.Kind = ref.Kind.String()
		srv.publish(ctx, &ev)
	}
}

func (srv *mapSessionService) publish(ctx context.Context, event *service.MapEvent) {
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)

	if err := srv.publisher.PublishMapEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish map event",
			slog.String("type", event.Type),
			slog.String("session_id", event.SessionID),
			slog.Any("error", err),
		)
	}
}
