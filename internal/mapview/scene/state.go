package scene

import (
	"glpmap/internal/domain/entity"
	"glpmap/internal/mapview/animator"
	"glpmap/internal/mapview/selection"
	"glpmap/internal/mapview/viewport"
	"glpmap/internal/mapview/visibility"

	"github.com/paulmach/orb"
)

// State is the derived, per-session state carried from one tick to the next.
type State struct {
	Minute    int
	Viewport  viewport.State
	Selection selection.State
	Ledger    *visibility.Ledger
	Tracker   *animator.Tracker
}

// InitialState returns the state of a fresh session shown in container.
func (w *World) InitialState(container viewport.Size) State {
	return State{
		Viewport:  w.controller.Initial(container),
		Selection: selection.Idle(),
		Ledger:    visibility.NewLedger(),
		Tracker:   animator.NewTracker(w.cfg.RotationOffset),
	}
}

func (s State) clone() State {
	next := s
	if s.Ledger != nil {
		next.Ledger = s.Ledger.Clone()
	} else {
		next.Ledger = visibility.NewLedger()
	}
	if s.Tracker != nil {
		next.Tracker = s.Tracker.Clone()
	}

	return next
}

// EventType names a user interaction.
type EventType string

const (
	// EventNone is a plain clock tick.
	EventNone EventType = ""
	// EventClick selects the topmost shape under the pointer, or clears the selection.
	EventClick EventType = "click"
	// EventHover shows a transient tooltip unless a selection is pinned.
	EventHover EventType = "hover"
	// EventHoverEnd hides the transient tooltip.
	EventHoverEnd EventType = "hover_end"
	// EventZoom zooms one wheel step around the pointer.
	EventZoom EventType = "zoom"
	// EventPan moves the stage to an absolute offset.
	EventPan EventType = "pan"
	// EventDrag moves the stage by a relative delta.
	EventDrag EventType = "drag"
	// EventFitToScreen resets the viewport to fit the whole grid.
	EventFitToScreen EventType = "fit"
	// EventResize refits the viewport to a new container size.
	EventResize EventType = "resize"
)

// Event is one pointer, wheel or container event.
type Event struct {
	Type    EventType
	Pointer *orb.Point    // Screen pixels; nil when the device reported no position.
	Sign    int           // Wheel direction for EventZoom: positive zooms in.
	Offset  orb.Point     // Target offset for EventPan, delta for EventDrag.
	Size    viewport.Size // Container size for EventResize.
}

// Input drives one call to Render.
type Input struct {
	Minute *int // New clock value; nil keeps the current one.
	Event  Event
}

// Transitions lists what changed irreversibly during a tick.
type Transitions struct {
	Delivered            []string          `json:"delivered,omitempty"`
	Completed            []string          `json:"completed,omitempty"`
	SelectionInvalidated *entity.EntityRef `json:"selection_invalidated,omitempty"`
}

// IsEmpty reports whether nothing changed.
func (t Transitions) IsEmpty() bool {
	return len(t.Delivered) == 0 && len(t.Completed) == 0 && t.SelectionInvalidated == nil
}
