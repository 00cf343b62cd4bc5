package animator

import (
	"testing"

	"glpmap/internal/domain/entity"
	"glpmap/internal/mapview/coord"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMapper() coord.Mapper {
	return coord.NewMapper(entity.GridSpec{Columns: 70, Rows: 50, CellSizeX: 10, CellSizeY: 10}.Dimensions())
}

func testVehicle() *entity.Vehicle {
	return &entity.Vehicle{
		ID:   "TA01",
		Code: "TA01",
		Route: []entity.RouteWaypoint{
			{X: 12, Y: 8, StartTime: 0, ArriveTime: 10, IsDepot: true},
			{X: 13, Y: 8, StartTime: 11, ArriveTime: 12},
			{X: 13, Y: 9, StartTime: 13, ArriveTime: 14},
			{X: 13, Y: 9, StartTime: 15, ArriveTime: 20, IsOrderStop: true, OrderID: "O-1"},
			{X: 12, Y: 9, StartTime: 21, ArriveTime: 22},
		},
	}
}

func TestLocate_FirstMatchWins(t *testing.T) {
	route := []entity.RouteWaypoint{
		{StartTime: 0, ArriveTime: 10},
		{StartTime: 10, ArriveTime: 20},
	}

	assert.Equal(t, 0, Locate(route, 10))
	assert.Equal(t, 1, Locate(route, 11))
	assert.Equal(t, -1, Locate(route, 21))
}

func TestAnimate_DepotSuppression(t *testing.T) {
	v := testVehicle()

	for minute := 0; minute <= 10; minute++ {
		pose := Animate(v, minute, testMapper(), DefaultRotationOffset)
		assert.False(t, pose.Visible)
		assert.Equal(t, PhaseDepot, pose.Phase)
		assert.Equal(t, 0, pose.Waypoint)
	}
}

func TestAnimate_Moving(t *testing.T) {
	v := testVehicle()
	mapper := testMapper()

	pose := Animate(v, 11, mapper, DefaultRotationOffset)
	require.True(t, pose.Visible)
	assert.Equal(t, PhaseMoving, pose.Phase)
	assert.Equal(t, mapper.Screen(entity.LogicalPoint{X: 13, Y: 8}), pose.Position)
	// Heading up on the grid is heading towards smaller screen Y: -90° plus the sprite offset.
	assert.InDelta(t, 0, pose.Rotation, 1e-9)

	// Waypoint 2 shares its node with waypoint 3, so the bearing looks ahead to waypoint 4 (left).
	pose = Animate(v, 13, mapper, DefaultRotationOffset)
	assert.InDelta(t, 270, pose.Rotation, 1e-9)

	// The final waypoint keeps the bearing of the incoming segment (left).
	pose = Animate(v, 22, mapper, DefaultRotationOffset)
	assert.InDelta(t, 270, pose.Rotation, 1e-9)
}

func TestAnimate_RotationSnapsPerWaypoint(t *testing.T) {
	v := testVehicle()
	mapper := testMapper()

	first := Animate(v, 15, mapper, DefaultRotationOffset)
	for minute := 16; minute <= 20; minute++ {
		pose := Animate(v, minute, mapper, DefaultRotationOffset)
		assert.Equal(t, first.Rotation, pose.Rotation)
		assert.Equal(t, first.Position, pose.Position)
	}
}

func TestAnimate_EdgeCases(t *testing.T) {
	mapper := testMapper()

	short := &entity.Vehicle{ID: "TB01", Route: []entity.RouteWaypoint{{X: 1, Y: 1, StartTime: 0, ArriveTime: 100}}}
	pose := Animate(short, 50, mapper, DefaultRotationOffset)
	assert.Equal(t, PhaseInvalid, pose.Phase)
	assert.False(t, pose.Visible)

	gap := &entity.Vehicle{ID: "TC01", Route: []entity.RouteWaypoint{
		{X: 1, Y: 1, StartTime: 0, ArriveTime: 5},
		{X: 2, Y: 1, StartTime: 10, ArriveTime: 15},
	}}
	pose = Animate(gap, 7, mapper, DefaultRotationOffset)
	assert.Equal(t, PhaseWaiting, pose.Phase)
	assert.False(t, pose.Visible)
	assert.Equal(t, -1, pose.Waypoint)

	pose = Animate(gap, 16, mapper, DefaultRotationOffset)
	assert.Equal(t, PhaseCompleted, pose.Phase)
	assert.False(t, pose.Visible)
}

func TestRotation_StationaryRoute(t *testing.T) {
	route := []entity.RouteWaypoint{{X: 3, Y: 3}, {X: 3, Y: 3}}

	assert.Equal(t, 45.0, Rotation(route, 0, testMapper(), 45))
}

func TestTracker_CompletionIsTerminal(t *testing.T) {
	v := testVehicle()
	tracker := NewTracker(DefaultRotationOffset)
	mapper := testMapper()

	poses, completed := tracker.Step([]*entity.Vehicle{v}, 11, mapper)
	require.Len(t, poses, 1)
	assert.True(t, poses[0].Visible)
	assert.Empty(t, completed)

	_, completed = tracker.Step([]*entity.Vehicle{v}, 30, mapper)
	assert.Equal(t, []string{"TA01"}, completed)
	assert.True(t, tracker.Completed("TA01"))

	// Even a tick that would bracket a waypoint again keeps the truck hidden.
	poses, completed = tracker.Step([]*entity.Vehicle{v}, 11, mapper)
	assert.False(t, poses[0].Visible)
	assert.Equal(t, PhaseCompleted, poses[0].Phase)
	assert.Empty(t, completed)

	clone := tracker.Clone()
	assert.True(t, clone.Completed("TA01"))
	assert.Equal(t, orb.Point{}, poses[0].Position)
}
