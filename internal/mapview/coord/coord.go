// Package coord converts between logical grid coordinates (Y-up) and stage pixels (Y-down).
package coord

import (
	"math"

	"glpmap/internal/domain/entity"

	"github.com/paulmach/orb"
)

// ToScreen maps a logical grid node to stage pixels.
func ToScreen(cellSizeX, cellSizeY float64, logicalX, logicalY int, mapHeightPx float64) orb.Point {
	return orb.Point{
		float64(logicalX) * cellSizeX,
		mapHeightPx - float64(logicalY)*cellSizeY,
	}
}

// ToLogical is the inverse of ToScreen. It returns fractional grid coordinates;
// a zero cell size yields the origin instead of Inf/NaN.
func ToLogical(cellSizeX, cellSizeY float64, screen orb.Point, mapHeightPx float64) (x, y float64) {
	if cellSizeX == 0 || cellSizeY == 0 {
		return 0, 0
	}

	return screen.X() / cellSizeX, (mapHeightPx - screen.Y()) / cellSizeY
}

// Mapper binds the conversions to the grid of one session.
type Mapper struct {
	grid entity.GridDimensions
}

// NewMapper creates a Mapper for the given grid.
func NewMapper(grid entity.GridDimensions) Mapper {
	return Mapper{grid: grid}
}

// Grid returns the grid the mapper was built with.
func (m Mapper) Grid() entity.GridDimensions {
	return m.grid
}

// Screen maps a grid node to stage pixels.
func (m Mapper) Screen(p entity.LogicalPoint) orb.Point {
	return ToScreen(m.grid.CellSizeX, m.grid.CellSizeY, p.X, p.Y, m.grid.MapHeightPx)
}

// ScreenPath maps a sequence of grid nodes.
func (m Mapper) ScreenPath(points []entity.LogicalPoint) orb.LineString {
	path := make(orb.LineString, 0, len(points))
	for _, p := range points {
		path = append(path, m.Screen(p))
	}

	return path
}

// Logical maps stage pixels to the nearest grid node.
func (m Mapper) Logical(p orb.Point) entity.LogicalPoint {
	x, y := ToLogical(m.grid.CellSizeX, m.grid.CellSizeY, p, m.grid.MapHeightPx)

	return entity.LogicalPoint{X: int(math.Round(x)), Y: int(math.Round(y))}
}

// Bound returns the stage rectangle covered by the map.
func (m Mapper) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{0, 0},
		Max: orb.Point{m.grid.MapWidthPx, m.grid.MapHeightPx},
	}
}
