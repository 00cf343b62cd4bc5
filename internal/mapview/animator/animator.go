// Package animator places trucks on the stage from their precomputed, timestamped routes.
package animator

import (
	"math"

	"glpmap/internal/domain/entity"
	"glpmap/internal/mapview/coord"

	"github.com/paulmach/orb"
)

// DefaultRotationOffset aligns the truck sprite, which faces up, with a 0° bearing pointing right.
const DefaultRotationOffset = 90.0

// Phase describes why a truck is or is not drawn on a tick.
type Phase string

const (
	// PhaseInvalid marks a route too short to establish an orientation.
	PhaseInvalid Phase = "invalid"
	// PhaseWaiting marks a tick with no bracketing waypoint before the route ends.
	PhaseWaiting Phase = "waiting"
	// PhaseDepot marks a truck inside a plant or tank.
	PhaseDepot Phase = "depot"
	// PhaseMoving marks a truck drawn on the map.
	PhaseMoving Phase = "moving"
	// PhaseCompleted marks a finished route. It is terminal.
	PhaseCompleted Phase = "completed"
)

// Pose is the derived render state of one truck for one tick.
type Pose struct {
	VehicleID string    `json:"vehicle_id"`
	Visible   bool      `json:"visible"`
	Phase     Phase     `json:"phase"`
	Waypoint  int       `json:"waypoint"` // Index of the bracketing waypoint, -1 when none.
	Position  orb.Point `json:"position"` // Stage pixels.
	Rotation  float64   `json:"rotation"` // Degrees, sprite offset included.
}

// Locate returns the index of the first waypoint whose span contains minute, or -1.
func Locate(route []entity.RouteWaypoint, minute int) int {
	for i, wp := range route {
		if wp.Brackets(minute) {
			return i
		}
	}

	return -1
}

// Animate computes the pose of v at minute.
func Animate(v *entity.Vehicle, minute int, mapper coord.Mapper, rotationOffset float64) Pose {
	pose := Pose{VehicleID: v.ID, Waypoint: -1}

	if len(v.Route) < 2 {
		pose.Phase = PhaseInvalid

		return pose
	}

	idx := Locate(v.Route, minute)
	if idx < 0 {
		if minute > v.LastArrival() {
			pose.Phase = PhaseCompleted
		} else {
			pose.Phase = PhaseWaiting
		}

		return pose
	}

	pose.Waypoint = idx
	wp := v.Route[idx]
	if wp.IsDepot {
		pose.Phase = PhaseDepot

		return pose
	}

	pose.Phase = PhaseMoving
	pose.Visible = true
	pose.Position = mapper.Screen(wp.Point())
	pose.Rotation = Rotation(v.Route, idx, mapper, rotationOffset)

	return pose
}

// Rotation returns the sprite rotation at waypoint idx. It is the screen bearing towards the next
// waypoint at a different node; the final waypoint keeps the bearing of its incoming segment.
// The rotation only changes when the truck enters another waypoint.
func Rotation(route []entity.RouteWaypoint, idx int, mapper coord.Mapper, rotationOffset float64) float64 {
	from := mapper.Screen(route[idx].Point())

	for j := idx + 1; j < len(route); j++ {
		to := mapper.Screen(route[j].Point())
		if to != from {
			return bearing(from, to) + rotationOffset
		}
	}

	for j := idx - 1; j >= 0; j-- {
		prev := mapper.Screen(route[j].Point())
		if prev != from {
			return bearing(prev, from) + rotationOffset
		}
	}

	return rotationOffset
}

func bearing(from, to orb.Point) float64 {
	return math.Atan2(to.Y()-from.Y(), to.X()-from.X()) * 180 / math.Pi
}
