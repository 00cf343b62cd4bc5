package scene

import (
	"glpmap/internal/domain/entity"
	"glpmap/internal/mapview/selection"
	"glpmap/internal/mapview/viewport"

	"github.com/paulmach/orb"
)

// Layer orders shapes from bottom to top.
type Layer int

const (
	// LayerBlockage is the bottom layer.
	LayerBlockage Layer = iota
	// LayerWarehouse draws above blockages.
	LayerWarehouse
	// LayerOrder draws above warehouses.
	LayerOrder
	// LayerTruck is the top layer.
	LayerTruck
)

// Shape is one drawable. Coordinates are stage pixels; the renderer applies the viewport transform.
type Shape struct {
	Ref      entity.EntityRef `json:"ref"`
	Layer    Layer            `json:"layer"`
	Label    string           `json:"label"`
	Position orb.Point        `json:"position"`
	Rotation float64          `json:"rotation"`
	Path     orb.LineString   `json:"path,omitempty"`
	Selected bool             `json:"selected"`
	Alert    bool             `json:"alert"` // Broken down truck.
}

// Frame is the render output of one tick.
type Frame struct {
	Minute      int                `json:"minute"`
	Clock       string             `json:"clock"`
	Viewport    viewport.State     `json:"viewport"`
	Shapes      []Shape            `json:"shapes"`
	Tooltip     *selection.Tooltip `json:"tooltip,omitempty"`
	Selection   selection.Slots    `json:"selection"`
	Transitions Transitions        `json:"transitions"`
}

// Count returns the number of shapes of a kind.
func (f *Frame) Count(kind entity.EntityKind) int {
	n := 0
	for _, s := range f.Shapes {
		if s.Ref.Kind == kind {
			n++
		}
	}

	return n
}

// Find returns the shape drawn for ref.
func (f *Frame) Find(ref entity.EntityRef) (Shape, bool) {
	for _, s := range f.Shapes {
		if s.Ref == ref {
			return s, true
		}
	}

	return Shape{}, false
}
