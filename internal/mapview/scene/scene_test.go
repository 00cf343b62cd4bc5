package scene

import (
	"encoding/json"
	"testing"

	"glpmap/internal/domain/entity"
	"glpmap/internal/mapview/animator"
	"glpmap/internal/mapview/selection"
	"glpmap/internal/mapview/viewport"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSnapshot() *entity.Snapshot {
	return &entity.Snapshot{
		Name: "test",
		Grid: entity.GridSpec{Columns: 70, Rows: 50, CellSizeX: 10, CellSizeY: 10},
		Orders: []*entity.Order{
			{ID: "O-1", Code: "PED-001", Position: entity.LogicalPoint{X: 13, Y: 9}},
			{ID: "O-2", Code: "PED-002", Position: entity.LogicalPoint{X: 40, Y: 40}, Release: entity.SimTime{Hour: 1}},
		},
		Blockages: []*entity.Blockage{
			{ID: "B-1", End: entity.SimTime{Minute: 30}, Nodes: []entity.LogicalPoint{{X: 20, Y: 20}, {X: 20, Y: 30}}},
		},
		Warehouses: []*entity.Warehouse{
			{ID: "W-1", Name: "Central", Kind: entity.WarehouseKindMain, Position: entity.LogicalPoint{X: 0, Y: 0}},
		},
		Vehicles: []*entity.Vehicle{
			{
				ID:   "TA01",
				Code: "TA01",
				Route: []entity.RouteWaypoint{
					{X: 0, Y: 0, StartTime: 0, ArriveTime: 10, IsDepot: true},
					{X: 13, Y: 8, StartTime: 11, ArriveTime: 12},
					{X: 13, Y: 9, StartTime: 13, ArriveTime: 14},
					{X: 13, Y: 9, StartTime: 15, ArriveTime: 20, IsOrderStop: true, OrderID: "O-1"},
					{X: 12, Y: 9, StartTime: 21, ArriveTime: 22},
				},
			},
		},
	}
}

type fixture struct {
	world *World
	state State
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	w := NewWorld(testSnapshot(), DefaultConfig())

	return &fixture{world: w, state: w.InitialState(viewport.Size{Width: 800, Height: 600})}
}

func (f *fixture) tick(minute int, ev Event) Frame {
	next, frame := f.world.Render(f.state, Input{Minute: &minute, Event: ev})
	f.state = next

	return frame
}

// screenOf returns the screen position of a grid node under the current viewport.
func (f *fixture) screenOf(x, y int) *orb.Point {
	p := viewport.StageToScreen(f.state.Viewport, f.world.Mapper().Screen(entity.LogicalPoint{X: x, Y: y}))

	return &p
}

func TestRender_Visibility(t *testing.T) {
	f := newFixture(t)

	frame := f.tick(0, Event{})
	assert.Equal(t, 1, frame.Count(entity.EntityKindOrder))
	assert.Equal(t, 1, frame.Count(entity.EntityKindBlockage))
	assert.Equal(t, 1, frame.Count(entity.EntityKindWarehouse))
	assert.Equal(t, 0, frame.Count(entity.EntityKindTruck), "truck inside the depot is hidden")
	assert.Equal(t, "D0 00:00", frame.Clock)

	frame = f.tick(11, Event{})
	assert.Equal(t, 1, frame.Count(entity.EntityKindTruck))
	truck, ok := frame.Find(entity.EntityRef{Kind: entity.EntityKindTruck, ID: "TA01"})
	require.True(t, ok)
	assert.Equal(t, f.world.Mapper().Screen(entity.LogicalPoint{X: 13, Y: 8}), truck.Position)

	frame = f.tick(31, Event{})
	assert.Equal(t, 0, frame.Count(entity.EntityKindBlockage), "blockage window is over")

	frame = f.tick(60, Event{})
	_, ok = frame.Find(entity.EntityRef{Kind: entity.EntityKindOrder, ID: "O-2"})
	assert.True(t, ok, "order appears on its release minute")
}

func TestRender_LayerOrder(t *testing.T) {
	f := newFixture(t)

	frame := f.tick(11, Event{})
	require.NotEmpty(t, frame.Shapes)
	for i := 1; i < len(frame.Shapes); i++ {
		assert.LessOrEqual(t, frame.Shapes[i-1].Layer, frame.Shapes[i].Layer)
	}
}

func TestRender_TransitionsFireOnce(t *testing.T) {
	f := newFixture(t)

	frame := f.tick(20, Event{})
	assert.Equal(t, []string{"O-1"}, frame.Transitions.Delivered)
	assert.Equal(t, 0, frame.Count(entity.EntityKindOrder))

	frame = f.tick(21, Event{})
	assert.Empty(t, frame.Transitions.Delivered)

	frame = f.tick(23, Event{})
	assert.Equal(t, []string{"TA01"}, frame.Transitions.Completed)
	assert.Equal(t, 0, frame.Count(entity.EntityKindTruck))

	frame = f.tick(24, Event{})
	assert.True(t, frame.Transitions.IsEmpty())
}

func TestRender_ClockNeverRegresses(t *testing.T) {
	f := newFixture(t)

	f.tick(21, Event{})
	frame := f.tick(5, Event{})

	assert.Equal(t, 21, frame.Minute)
	assert.Equal(t, 0, frame.Count(entity.EntityKindOrder))
}

func TestRender_DoesNotMutateInput(t *testing.T) {
	w := NewWorld(testSnapshot(), DefaultConfig())
	state := w.InitialState(viewport.Size{Width: 800, Height: 600})
	minute := 30

	next, _ := w.Render(state, Input{Minute: &minute})

	assert.Equal(t, 0, state.Minute)
	assert.Equal(t, 0, state.Ledger.Delivered().Len())
	assert.False(t, state.Tracker.Completed("TA01"))
	assert.Equal(t, 1, next.Ledger.Delivered().Len())
	assert.True(t, next.Tracker.Completed("TA01"))
}

func TestRender_ClickSelectsAndPinsTooltip(t *testing.T) {
	f := newFixture(t)
	f.tick(0, Event{})

	frame := f.tick(0, Event{Type: EventClick, Pointer: f.screenOf(13, 9)})

	require.NotNil(t, frame.Selection.SelectedOrder)
	assert.Equal(t, "O-1", *frame.Selection.SelectedOrder)
	assert.Equal(t, 1, frame.Selection.Count())
	require.NotNil(t, frame.Tooltip)
	assert.True(t, frame.Tooltip.Pinned)
	assert.Equal(t, entity.EntityKindOrder, frame.Tooltip.Type)
	assert.Same(t, f.world.Snapshot().Orders[0], frame.Tooltip.Data)

	shape, ok := frame.Find(entity.EntityRef{Kind: entity.EntityKindOrder, ID: "O-1"})
	require.True(t, ok)
	assert.True(t, shape.Selected)

	frame = f.tick(0, Event{Type: EventHover, Pointer: f.screenOf(0, 0)})
	require.NotNil(t, frame.Selection.SelectedOrder, "hover keeps a pinned selection")

	frame = f.tick(0, Event{Type: EventClick, Pointer: f.screenOf(60, 5)})
	assert.Equal(t, 0, frame.Selection.Count())
	assert.Nil(t, frame.Tooltip)
	assert.Equal(t, selection.ModeIdle, f.state.Selection.Mode)
}

func TestRender_ClickReplacesSelection(t *testing.T) {
	f := newFixture(t)
	f.tick(0, Event{})

	f.tick(0, Event{Type: EventClick, Pointer: f.screenOf(13, 9)})
	frame := f.tick(0, Event{Type: EventClick, Pointer: f.screenOf(0, 0)})

	assert.Nil(t, frame.Selection.SelectedOrder)
	require.NotNil(t, frame.Selection.SelectedWarehouse)
	assert.Equal(t, "W-1", *frame.Selection.SelectedWarehouse)
	assert.Equal(t, 1, frame.Selection.Count())
}

func TestRender_HoverShowsTransientTooltip(t *testing.T) {
	f := newFixture(t)
	f.tick(0, Event{})

	frame := f.tick(0, Event{Type: EventHover, Pointer: f.screenOf(0, 0)})
	require.NotNil(t, frame.Tooltip)
	assert.False(t, frame.Tooltip.Pinned)
	assert.Equal(t, 0, frame.Selection.Count())

	frame = f.tick(0, Event{Type: EventHoverEnd})
	assert.Nil(t, frame.Tooltip)
}

func TestRender_BlockageHitAlongPath(t *testing.T) {
	f := newFixture(t)
	f.tick(0, Event{})

	frame := f.tick(0, Event{Type: EventClick, Pointer: f.screenOf(20, 25)})

	require.NotNil(t, frame.Selection.SelectedBlockage)
	assert.Equal(t, "B-1", *frame.Selection.SelectedBlockage)
}

func TestRender_TopmostShapeWins(t *testing.T) {
	snapshot := testSnapshot()
	snapshot.Orders[0].Position = entity.LogicalPoint{X: 0, Y: 0}
	w := NewWorld(snapshot, DefaultConfig())
	state := w.InitialState(viewport.Size{Width: 800, Height: 600})
	pointer := viewport.StageToScreen(state.Viewport, w.Mapper().Screen(entity.LogicalPoint{}))

	_, frame := w.Render(state, Input{Event: Event{Type: EventClick, Pointer: &pointer}})

	require.NotNil(t, frame.Selection.SelectedOrder)
	assert.Nil(t, frame.Selection.SelectedWarehouse)
}

func TestRender_StaleSelectionIsDropped(t *testing.T) {
	f := newFixture(t)
	f.tick(0, Event{})
	f.tick(0, Event{Type: EventClick, Pointer: f.screenOf(13, 9)})

	frame := f.tick(20, Event{})

	require.NotNil(t, frame.Transitions.SelectionInvalidated)
	assert.Equal(t, entity.EntityRef{Kind: entity.EntityKindOrder, ID: "O-1"}, *frame.Transitions.SelectionInvalidated)
	assert.Nil(t, frame.Tooltip)
	assert.Equal(t, 0, frame.Selection.Count())
}

func TestRender_TruckEnteringDepotDropsSelection(t *testing.T) {
	snapshot := testSnapshot()
	snapshot.Vehicles[0].Route = []entity.RouteWaypoint{
		{X: 30, Y: 30, StartTime: 0, ArriveTime: 10},
		{X: 0, Y: 0, StartTime: 11, ArriveTime: 20, IsDepot: true},
		{X: 30, Y: 30, StartTime: 21, ArriveTime: 30},
	}
	w := NewWorld(snapshot, DefaultConfig())
	f := &fixture{world: w, state: w.InitialState(viewport.Size{Width: 800, Height: 600})}
	truck := entity.EntityRef{Kind: entity.EntityKindTruck, ID: "TA01"}

	f.tick(5, Event{})
	frame := f.tick(5, Event{Type: EventClick, Pointer: f.screenOf(30, 30)})
	require.NotNil(t, frame.Selection.SelectedTruck)
	assert.Equal(t, "TA01", *frame.Selection.SelectedTruck)

	frame = f.tick(15, Event{})

	_, drawn := frame.Find(truck)
	assert.False(t, drawn)
	require.NotNil(t, frame.Transitions.SelectionInvalidated)
	assert.Equal(t, truck, *frame.Transitions.SelectionInvalidated)
	assert.Nil(t, frame.Tooltip)
	assert.Nil(t, frame.Selection.SelectedTruck)
	assert.Equal(t, selection.ModeIdle, f.state.Selection.Mode)
}

func TestRender_ZeroStateUsesConfiguredRotation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RotationOffset = 0
	w := NewWorld(testSnapshot(), cfg)
	minute := 11

	next, frame := w.Render(State{}, Input{Minute: &minute})

	require.NotNil(t, next.Tracker)
	shape, ok := frame.Find(entity.EntityRef{Kind: entity.EntityKindTruck, ID: "TA01"})
	require.True(t, ok)
	want := animator.Rotation(w.Snapshot().Vehicles[0].Route, 1, w.Mapper(), 0)
	assert.InDelta(t, want, shape.Rotation, 1e-9)
	assert.NotEqual(t, animator.Rotation(w.Snapshot().Vehicles[0].Route, 1, w.Mapper(), animator.DefaultRotationOffset), shape.Rotation)
}

func TestRender_ViewportEvents(t *testing.T) {
	f := newFixture(t)
	initial := f.tick(0, Event{}).Viewport

	zoomed := f.tick(0, Event{Type: EventZoom, Sign: 1}).Viewport
	assert.InDelta(t, initial.Scale+viewport.DefaultZoomSpeed, zoomed.Scale, 1e-9)

	fitted := f.tick(0, Event{Type: EventFitToScreen}).Viewport
	assert.InDelta(t, initial.Scale, fitted.Scale, 1e-9)
	assert.Equal(t, initial.Offset, fitted.Offset)

	resized := f.tick(0, Event{Type: EventResize, Size: viewport.Size{Width: 1200, Height: 900}}).Viewport
	assert.Equal(t, viewport.Size{Width: 1200, Height: 900}, resized.Container)
	assert.Greater(t, resized.Scale, initial.Scale)
}

func TestFrame_FeatureCollection(t *testing.T) {
	f := newFixture(t)
	frame := f.tick(11, Event{})

	fc := frame.FeatureCollection(f.world.Mapper())
	require.Len(t, fc.Features, len(frame.Shapes))

	for _, feature := range fc.Features {
		if feature.Properties["kind"] != string(entity.EntityKindBlockage) {
			continue
		}
		path, ok := feature.Geometry.(orb.LineString)
		require.True(t, ok)
		assert.InDelta(t, 20, path[0].X(), 1e-9)
		assert.InDelta(t, 20, path[0].Y(), 1e-9)
		assert.InDelta(t, 30, path[1].Y(), 1e-9)
	}

	raw, err := json.Marshal(fc)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"FeatureCollection"`)
	assert.Contains(t, string(raw), `"truck:TA01"`)
}
