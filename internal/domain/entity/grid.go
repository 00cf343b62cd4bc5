package entity

// GridSpec describes the logical grid of a simulation map as delivered by the map configuration.
type GridSpec struct {
	Columns   int     `json:"columns" yaml:"columns" validate:"gt=0"`
	Rows      int     `json:"rows" yaml:"rows" validate:"gt=0"`
	CellSizeX float64 `json:"cell_size_x" yaml:"cellSizeX" validate:"gt=0"`
	CellSizeY float64 `json:"cell_size_y" yaml:"cellSizeY" validate:"gt=0"`
}

// GridDimensions holds the pixel geometry of the map stage. It is immutable for a session.
type GridDimensions struct {
	CellSizeX   float64 `json:"cell_size_x"`
	CellSizeY   float64 `json:"cell_size_y"`
	MapWidthPx  float64 `json:"map_width_px"`
	MapHeightPx float64 `json:"map_height_px"`
}

// Dimensions derives the stage size in pixels from the grid.
func (g GridSpec) Dimensions() GridDimensions {
	return GridDimensions{
		CellSizeX:   g.CellSizeX,
		CellSizeY:   g.CellSizeY,
		MapWidthPx:  float64(g.Columns) * g.CellSizeX,
		MapHeightPx: float64(g.Rows) * g.CellSizeY,
	}
}

// Contains reports whether p lies on the grid, borders included.
func (g GridSpec) Contains(p LogicalPoint) bool {
	return p.X >= 0 && p.Y >= 0 && p.X <= g.Columns && p.Y <= g.Rows
}

// LogicalPoint is a grid node. X grows rightward and Y grows upward.
type LogicalPoint struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}
