package scene

import (
	"glpmap/internal/domain/entity"
	"glpmap/internal/mapview/animator"
	"glpmap/internal/mapview/selection"
	"glpmap/internal/mapview/viewport"
	"glpmap/internal/mapview/visibility"
)

// Render advances state by one tick and draws the result. The input state is left untouched;
// callers keep the returned state for the next tick.
//
// The clock never moves backwards here: a minute lower than the current one is ignored.
func (w *World) Render(state State, in Input) (State, Frame) {
	next := state.clone()
	if next.Tracker == nil {
		next.Tracker = animator.NewTracker(w.cfg.RotationOffset)
	}
	if in.Minute != nil && *in.Minute > next.Minute {
		next.Minute = *in.Minute
	}

	var transitions Transitions
	transitions.Delivered = next.Ledger.Merge(visibility.DeliveredFromRoutes(w.snapshot.Vehicles, next.Minute))

	visible := visibility.Filter(w.snapshot.Orders, w.snapshot.Blockages, next.Minute, next.Ledger.Delivered())
	poses, completed := next.Tracker.Step(w.snapshot.Vehicles, next.Minute, w.mapper)
	transitions.Completed = completed

	shapes := w.draw(visible, poses)

	sel, invalidated := next.Selection.Reconcile(w.presence(visible, poses))
	if invalidated {
		ref := next.Selection.Ref
		transitions.SelectionInvalidated = &ref
	}
	next.Selection = sel
	w.apply(&next, in.Event, shapes)

	if next.Selection.Mode == selection.ModeSelected {
		for i := range shapes {
			shapes[i].Selected = shapes[i].Ref == next.Selection.Ref
		}
	}

	frame := Frame{
		Minute:      next.Minute,
		Clock:       entity.SimTimeFromMinutes(next.Minute).String(),
		Viewport:    next.Viewport,
		Shapes:      shapes,
		Tooltip:     next.Selection.Tooltip(w.Lookup),
		Selection:   next.Selection.Slots(),
		Transitions: transitions,
	}

	return next, frame
}

// apply handles the pointer or container event of a tick.
func (w *World) apply(next *State, ev Event, shapes []Shape) {
	switch ev.Type {
	case EventZoom:
		next.Viewport, _ = w.controller.Zoom(next.Viewport, ev.Pointer, ev.Sign)
	case EventPan:
		next.Viewport, _ = w.controller.Pan(next.Viewport, ev.Offset)
	case EventDrag:
		next.Viewport, _ = w.controller.PanBy(next.Viewport, ev.Offset)
	case EventFitToScreen:
		next.Viewport, _ = w.controller.FitToScreen(next.Viewport)
	case EventResize:
		next.Viewport, _ = w.controller.Resize(next.Viewport, ev.Size)
	case EventClick, EventHover:
		w.pointer(next, ev, shapes)
	case EventHoverEnd:
		next.Selection = next.Selection.HoverEnd()
	}
}

func (w *World) pointer(next *State, ev Event, shapes []Shape) {
	screen := w.controller.PointerOrDefault(next.Viewport, ev.Pointer)
	stage := viewport.ScreenToStage(next.Viewport, screen)
	ref, hit := w.hitRef(shapes, stage, next.Viewport.Scale)

	switch {
	case ev.Type == EventClick && hit:
		next.Selection = next.Selection.Click(ref, screen)
	case ev.Type == EventClick:
		next.Selection = next.Selection.ClickBackground()
	case hit:
		next.Selection = next.Selection.Hover(ref, screen)
	default:
		next.Selection = next.Selection.HoverEnd()
	}
}

// presence reports whether a reference is still part of the displayed collections. A truck
// inside a depot or past its route is not drawn and so is not present.
func (w *World) presence(visible visibility.Result, poses []animator.Pose) func(entity.EntityRef) bool {
	pending := make(map[string]struct{}, len(visible.Orders))
	for _, o := range visible.Orders {
		pending[o.ID] = struct{}{}
	}
	active := make(map[string]struct{}, len(visible.Blockages))
	for _, b := range visible.Blockages {
		active[b.ID] = struct{}{}
	}
	drawn := make(map[string]struct{}, len(poses))
	for _, pose := range poses {
		if pose.Visible {
			drawn[pose.VehicleID] = struct{}{}
		}
	}

	return func(ref entity.EntityRef) bool {
		switch ref.Kind {
		case entity.EntityKindOrder:
			_, ok := pending[ref.ID]

			return ok
		case entity.EntityKindBlockage:
			_, ok := active[ref.ID]

			return ok
		case entity.EntityKindTruck:
			_, ok := drawn[ref.ID]

			return ok
		case entity.EntityKindWarehouse:
			_, ok := w.index[ref]

			return ok
		default:
			return false
		}
	}
}

// draw lays out the shapes bottom to top: blockages, warehouses, orders, trucks.
func (w *World) draw(visible visibility.Result, poses []animator.Pose) []Shape {
	shapes := make([]Shape, 0, len(visible.Blockages)+len(w.snapshot.Warehouses)+len(visible.Orders)+len(poses))

	for _, b := range visible.Blockages {
		path := w.mapper.ScreenPath(b.Nodes)
		s := Shape{
			Ref:   entity.EntityRef{Kind: entity.EntityKindBlockage, ID: b.ID},
			Layer: LayerBlockage,
			Label: b.ID,
			Path:  path,
		}
		if len(path) > 0 {
			s.Position = path[0]
		}
		shapes = append(shapes, s)
	}

	for _, wh := range w.snapshot.Warehouses {
		shapes = append(shapes, Shape{
			Ref:      entity.EntityRef{Kind: entity.EntityKindWarehouse, ID: wh.ID},
			Layer:    LayerWarehouse,
			Label:    firstNonEmpty(wh.Name, wh.ID),
			Position: w.mapper.Screen(wh.Position),
		})
	}

	for _, o := range visible.Orders {
		shapes = append(shapes, Shape{
			Ref:      entity.EntityRef{Kind: entity.EntityKindOrder, ID: o.ID},
			Layer:    LayerOrder,
			Label:    firstNonEmpty(o.Code, o.ID),
			Position: w.mapper.Screen(o.Position),
		})
	}

	vehicles := make(map[string]*entity.Vehicle, len(w.snapshot.Vehicles))
	for _, v := range w.snapshot.Vehicles {
		vehicles[v.ID] = v
	}
	for _, pose := range poses {
		if !pose.Visible {
			continue
		}
		v := vehicles[pose.VehicleID]
		shapes = append(shapes, Shape{
			Ref:      entity.EntityRef{Kind: entity.EntityKindTruck, ID: pose.VehicleID},
			Layer:    LayerTruck,
			Label:    firstNonEmpty(v.Code, v.ID),
			Position: pose.Position,
			Rotation: pose.Rotation,
			Alert:    v.Breakdown,
		})
	}

	return shapes
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
