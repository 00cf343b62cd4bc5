// Package scene runs one simulation tick over a map session: it filters, animates, applies the
// pointer event and produces a declarative draw list.
package scene

import (
	"glpmap/internal/domain/entity"
	"glpmap/internal/mapview/animator"
	"glpmap/internal/mapview/coord"
	"glpmap/internal/mapview/viewport"
)

// DefaultHitRadius is the pointer tolerance in screen pixels.
const DefaultHitRadius = 8.0

// Config tunes a World.
type Config struct {
	Limits         viewport.Limits
	RotationOffset float64
	HitRadius      float64
}

// DefaultConfig returns the reference configuration.
func DefaultConfig() Config {
	return Config{
		Limits:         viewport.DefaultLimits(),
		RotationOffset: animator.DefaultRotationOffset,
		HitRadius:      DefaultHitRadius,
	}
}

// World is the immutable part of a session: the snapshot and the geometry derived from it.
type World struct {
	snapshot   *entity.Snapshot
	mapper     coord.Mapper
	controller viewport.Controller
	cfg        Config
	index      map[entity.EntityRef]any
}

// NewWorld indexes the snapshot. The snapshot must not be modified afterwards.
func NewWorld(snapshot *entity.Snapshot, cfg Config) *World {
	if cfg.HitRadius <= 0 {
		cfg.HitRadius = DefaultHitRadius
	}

	grid := snapshot.Grid.Dimensions()
	w := &World{
		snapshot:   snapshot,
		mapper:     coord.NewMapper(grid),
		controller: viewport.NewController(cfg.Limits, grid.MapWidthPx, grid.MapHeightPx),
		cfg:        cfg,
		index:      make(map[entity.EntityRef]any),
	}

	for _, o := range snapshot.Orders {
		w.index[entity.EntityRef{Kind: entity.EntityKindOrder, ID: o.ID}] = o
	}
	for _, b := range snapshot.Blockages {
		w.index[entity.EntityRef{Kind: entity.EntityKindBlockage, ID: b.ID}] = b
	}
	for _, wh := range snapshot.Warehouses {
		w.index[entity.EntityRef{Kind: entity.EntityKindWarehouse, ID: wh.ID}] = wh
	}
	for _, v := range snapshot.Vehicles {
		w.index[entity.EntityRef{Kind: entity.EntityKindTruck, ID: v.ID}] = v
	}

	return w
}

// Snapshot returns the snapshot the world was built from.
func (w *World) Snapshot() *entity.Snapshot {
	return w.snapshot
}

// Mapper returns the coordinate mapper of the world grid.
func (w *World) Mapper() coord.Mapper {
	return w.mapper
}

// Controller returns the viewport controller of the world.
func (w *World) Controller() viewport.Controller {
	return w.controller
}

// Lookup resolves a reference to its entity.
func (w *World) Lookup(ref entity.EntityRef) (any, bool) {
	e, ok := w.index[ref]

	return e, ok
}
