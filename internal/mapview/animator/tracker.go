package animator

import (
	"glpmap/internal/domain/entity"
	"glpmap/internal/mapview/coord"
)

// Tracker animates a fleet across ticks and keeps completion terminal: once a truck finished
// its route it is never drawn again during the session.
type Tracker struct {
	rotationOffset float64
	completed      map[string]struct{}
}

// NewTracker creates a tracker with the given sprite rotation offset in degrees.
func NewTracker(rotationOffset float64) *Tracker {
	return &Tracker{
		rotationOffset: rotationOffset,
		completed:      make(map[string]struct{}),
	}
}

// Step animates every vehicle at minute. It returns the poses in fleet order and the ids of
// vehicles that completed their route on this step.
func (t *Tracker) Step(vehicles []*entity.Vehicle, minute int, mapper coord.Mapper) (poses []Pose, completed []string) {
	poses = make([]Pose, 0, len(vehicles))

	for _, v := range vehicles {
		if t.Completed(v.ID) {
			poses = append(poses, Pose{VehicleID: v.ID, Phase: PhaseCompleted, Waypoint: -1})

			continue
		}

		pose := Animate(v, minute, mapper, t.rotationOffset)
		if pose.Phase == PhaseCompleted {
			t.completed[v.ID] = struct{}{}
			completed = append(completed, v.ID)
		}
		poses = append(poses, pose)
	}

	return poses, completed
}

// Completed reports whether the vehicle already finished its route.
func (t *Tracker) Completed(vehicleID string) bool {
	_, ok := t.completed[vehicleID]

	return ok
}

// Clone returns an independent copy of the tracker.
func (t *Tracker) Clone() *Tracker {
	clone := NewTracker(t.rotationOffset)
	for id := range t.completed {
		clone.completed[id] = struct{}{}
	}

	return clone
}
