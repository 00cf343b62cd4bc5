package scene

import (
	"glpmap/internal/domain/entity"
	"glpmap/internal/mapview/coord"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// FeatureCollection exports the frame in logical grid coordinates, one feature per shape.
func (f *Frame) FeatureCollection(mapper coord.Mapper) *geojson.FeatureCollection {
	grid := mapper.Grid()
	toGrid := func(p orb.Point) orb.Point {
		x, y := coord.ToLogical(grid.CellSizeX, grid.CellSizeY, p, grid.MapHeightPx)

		return orb.Point{x, y}
	}

	fc := geojson.NewFeatureCollection()
	for _, s := range f.Shapes {
		var geometry orb.Geometry
		if len(s.Path) > 1 {
			path := make(orb.LineString, len(s.Path))
			for i, p := range s.Path {
				path[i] = toGrid(p)
			}
			geometry = path
		} else {
			geometry = toGrid(s.Position)
		}

		feature := geojson.NewFeature(geometry)
		feature.ID = string(s.Ref.Kind) + ":" + s.Ref.ID
		feature.Properties["kind"] = string(s.Ref.Kind)
		feature.Properties["id"] = s.Ref.ID
		feature.Properties["label"] = s.Label
		feature.Properties["layer"] = int(s.Layer)
		feature.Properties["selected"] = s.Selected
		if s.Ref.Kind == entity.EntityKindTruck {
			feature.Properties["rotation"] = s.Rotation
			feature.Properties["alert"] = s.Alert
		}
		fc.Append(feature)
	}

	fc.ExtraMembers = geojson.Properties{
		"minute": f.Minute,
		"clock":  f.Clock,
	}

	return fc
}
