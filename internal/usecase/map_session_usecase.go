// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"glpmap/internal/domain/entity"
	"glpmap/internal/mapview/scene"
	"glpmap/internal/mapview/viewport"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// CreateSessionInput describes a new map session
type CreateSessionInput struct {
	Name      string           `json:"name"`
	Snapshot  *entity.Snapshot `json:"snapshot" validate:"required"`
	Container viewport.Size    `json:"container"` // Zero means the configured default container
}

// SessionCounts summarises the entities of a session
type SessionCounts struct {
	Orders     int `json:"orders"`
	Blockages  int `json:"blockages"`
	Warehouses int `json:"warehouses"`
	Vehicles   int `json:"vehicles"`
	Delivered  int `json:"delivered"`
}

// SessionView is the public description of a live map session
type SessionView struct {
	ID           uuid.UUID             `json:"id"`
	Name         string                `json:"name"`
	CreatedAt    time.Time             `json:"created_at"`
	LastAccessAt time.Time             `json:"last_access_at"`
	Minute       int                   `json:"minute"`
	Clock        string                `json:"clock"`
	Grid         entity.GridDimensions `json:"grid"`
	Viewport     viewport.State        `json:"viewport"`
	Counts       SessionCounts         `json:"counts"`
}

// MapSessionUsecase defines the operations on live map sessions. Every event operation returns
// the frame rendered right after the event.
type MapSessionUsecase interface {
	// CreateSession validates a snapshot and opens a session on it
	CreateSession(ctx context.Context, input *CreateSessionInput) (*SessionView, error)

	// SeedSession opens a session on the configured snapshot source
	SeedSession(ctx context.Context, name string, container viewport.Size) (*SessionView, error)

	// GetSession describes one session
	GetSession(ctx context.Context, id uuid.UUID) (*SessionView, error)

	// ListSessions describes every live session
	ListSessions(ctx context.Context) ([]*SessionView, error)

	// DeleteSession closes a session
	DeleteSession(ctx context.Context, id uuid.UUID) error

	// Frame renders the current state without applying an event
	Frame(ctx context.Context, id uuid.UUID) (*scene.Frame, error)

	// FeatureCollection renders the current state as GeoJSON in grid coordinates
	FeatureCollection(ctx context.Context, id uuid.UUID) (*geojson.FeatureCollection, error)

	// Resize records a new container size and refits the map
	Resize(ctx context.Context, id uuid.UUID, size viewport.Size) (*scene.Frame, error)

	// Zoom applies one wheel step; direction > 0 zooms in. A nil pointer zooms on the container centre
	Zoom(ctx context.Context, id uuid.UUID, pointer *orb.Point, direction int) (*scene.Frame, error)

	// Pan moves the stage to offset, or by offset when relative is set
	Pan(ctx context.Context, id uuid.UUID, offset orb.Point, relative bool) (*scene.Frame, error)

	// FitToScreen fits and centres the map in its container
	FitToScreen(ctx context.Context, id uuid.UUID) (*scene.Frame, error)

	// Tick advances the simulation clock. The clock never moves backwards
	Tick(ctx context.Context, id uuid.UUID, minute int) (*scene.Frame, error)

	// Click selects the entity under the pointer, or clears the selection on the background
	Click(ctx context.Context, id uuid.UUID, pointer *orb.Point) (*scene.Frame, error)

	// Hover tracks the pointer; a nil pointer means it left the map
	Hover(ctx context.Context, id uuid.UUID, pointer *orb.Point) (*scene.Frame, error)

	// EvictIdle closes the sessions idle for longer than the configured TTL
	EvictIdle(ctx context.Context) (int, error)
}
