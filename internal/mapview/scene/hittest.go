package scene

import (
	"glpmap/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// HitTest returns the topmost shape under the stage point p within radius stage pixels.
// Shapes must be in draw order; later shapes win.
func HitTest(shapes []Shape, p orb.Point, radius float64) (Shape, bool) {
	for i := len(shapes) - 1; i >= 0; i-- {
		if hits(shapes[i], p, radius) {
			return shapes[i], true
		}
	}

	return Shape{}, false
}

func hits(s Shape, p orb.Point, radius float64) bool {
	if len(s.Path) > 1 {
		if !s.Path.Bound().Pad(radius).Contains(p) {
			return false
		}

		return planar.DistanceFrom(s.Path, p) <= radius
	}

	return orb.Bound{Min: s.Position, Max: s.Position}.Pad(radius).Contains(p)
}

// hitRef resolves a screen pointer to an entity reference.
func (w *World) hitRef(shapes []Shape, stage orb.Point, scale float64) (entity.EntityRef, bool) {
	radius := w.cfg.HitRadius
	if scale > 0 {
		radius /= scale
	}

	shape, ok := HitTest(shapes, stage, radius)
	if !ok {
		return entity.EntityRef{}, false
	}

	return shape.Ref, true
}
