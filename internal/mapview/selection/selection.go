// Package selection tracks the single hovered or selected map entity and its tooltip.
package selection

import (
	"glpmap/internal/domain/entity"

	"github.com/paulmach/orb"
)

// Mode is the state of the selection machine.
type Mode string

const (
	// ModeIdle means nothing is hovered or selected.
	ModeIdle Mode = "idle"
	// ModeHovering means the pointer rests on an entity.
	ModeHovering Mode = "hovering"
	// ModeSelected means an entity was clicked and its tooltip is pinned.
	ModeSelected Mode = "selected"
)

// State holds at most one entity reference, which makes the four selection slots mutually
// exclusive by construction.
type State struct {
	Mode      Mode             `json:"mode"`
	Ref       entity.EntityRef `json:"ref"`
	ScreenPos orb.Point        `json:"screen_pos"`
}

// Idle returns the initial state.
func Idle() State {
	return State{Mode: ModeIdle}
}

// Click selects ref at the pointer position, replacing any previous selection.
func (s State) Click(ref entity.EntityRef, pos orb.Point) State {
	if ref.IsZero() || !ref.Kind.IsValid() {
		return s.ClickBackground()
	}

	return State{Mode: ModeSelected, Ref: ref, ScreenPos: pos}
}

// ClickBackground clears the selection.
func (s State) ClickBackground() State {
	return Idle()
}

// Hover marks ref as hovered. A pinned selection is kept.
func (s State) Hover(ref entity.EntityRef, pos orb.Point) State {
	if s.Mode == ModeSelected {
		return s
	}
	if ref.IsZero() || !ref.Kind.IsValid() {
		return s.HoverEnd()
	}

	return State{Mode: ModeHovering, Ref: ref, ScreenPos: pos}
}

// HoverEnd leaves a hovered entity. A pinned selection is kept.
func (s State) HoverEnd() State {
	if s.Mode == ModeHovering {
		return Idle()
	}

	return s
}

// Reconcile drops the current reference when present no longer reports it. It returns the next
// state and whether the reference was invalidated.
func (s State) Reconcile(present func(entity.EntityRef) bool) (State, bool) {
	if s.Mode == ModeIdle || s.Mode == "" {
		return Idle(), false
	}
	if present(s.Ref) {
		return s, false
	}

	return Idle(), true
}

// Slots exposes the selection as one optional id per entity kind.
type Slots struct {
	SelectedOrder     *string `json:"selected_order"`
	SelectedTruck     *string `json:"selected_truck"`
	SelectedBlockage  *string `json:"selected_blockage"`
	SelectedWarehouse *string `json:"selected_warehouse"`
}

// Count returns how many slots are set. It never exceeds one.
func (s Slots) Count() int {
	n := 0
	for _, slot := range []*string{s.SelectedOrder, s.SelectedTruck, s.SelectedBlockage, s.SelectedWarehouse} {
		if slot != nil {
			n++
		}
	}

	return n
}

// Slots returns the selected entity, if any, in its kind slot.
func (s State) Slots() Slots {
	var slots Slots
	if s.Mode != ModeSelected {
		return slots
	}

	id := s.Ref.ID
	switch s.Ref.Kind {
	case entity.EntityKindOrder:
		slots.SelectedOrder = &id
	case entity.EntityKindTruck:
		slots.SelectedTruck = &id
	case entity.EntityKindBlockage:
		slots.SelectedBlockage = &id
	case entity.EntityKindWarehouse:
		slots.SelectedWarehouse = &id
	}

	return slots
}

// Tooltip is the overlay descriptor rendered next to the pointer.
type Tooltip struct {
	Type      entity.EntityKind `json:"type"`
	Data      any               `json:"data"`
	ScreenPos orb.Point         `json:"screen_pos"`
	Pinned    bool              `json:"pinned"`
}

// Tooltip builds the overlay for the current state using lookup to fetch the entity data.
// It returns nil when idle or when lookup cannot resolve the reference.
func (s State) Tooltip(lookup func(entity.EntityRef) (any, bool)) *Tooltip {
	if s.Mode != ModeSelected && s.Mode != ModeHovering {
		return nil
	}

	data, ok := lookup(s.Ref)
	if !ok {
		return nil
	}

	return &Tooltip{
		Type:      s.Ref.Kind,
		Data:      data,
		ScreenPos: s.ScreenPos,
		Pinned:    s.Mode == ModeSelected,
	}
}
