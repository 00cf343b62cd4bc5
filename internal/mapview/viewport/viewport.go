// Package viewport owns the scale and pan offset of the map stage inside its container.
//
// All operations take the current State and return the next one. They never panic and never
// produce NaN: when the container has not been measured yet every operation returns the input
// state unchanged.
package viewport

import (
	"math"

	"github.com/paulmach/orb"
)

const (
	// DefaultMinScale is the smallest zoom factor.
	DefaultMinScale = 0.8
	// DefaultMaxScale is the largest zoom factor.
	DefaultMaxScale = 4.0
	// DefaultZoomSpeed is the additive scale step of one wheel notch.
	DefaultZoomSpeed = 0.15
	// DefaultFitPadding is the padding in pixels kept around the map by FitToScreen.
	DefaultFitPadding = 40.0
)

// Limits configures the controller.
type Limits struct {
	MinScale   float64
	MaxScale   float64
	ZoomSpeed  float64
	FitPadding float64
}

// DefaultLimits returns the reference limits.
func DefaultLimits() Limits {
	return Limits{
		MinScale:   DefaultMinScale,
		MaxScale:   DefaultMaxScale,
		ZoomSpeed:  DefaultZoomSpeed,
		FitPadding: DefaultFitPadding,
	}
}

func (l Limits) normalized() Limits {
	d := DefaultLimits()
	if l.MinScale <= 0 {
		l.MinScale = d.MinScale
	}
	if l.MaxScale < l.MinScale {
		l.MaxScale = math.Max(d.MaxScale, l.MinScale)
	}
	if l.ZoomSpeed <= 0 {
		l.ZoomSpeed = d.ZoomSpeed
	}
	if l.FitPadding < 0 {
		l.FitPadding = d.FitPadding
	}

	return l
}

// Size is a width/height pair in pixels.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// IsZero reports whether the size cannot host a map (not mounted or not measured yet).
func (s Size) IsZero() bool {
	return !(s.Width > 0 && s.Height > 0) || math.IsInf(s.Width, 0) || math.IsInf(s.Height, 0)
}

// Center returns the middle point of the size.
func (s Size) Center() orb.Point {
	return orb.Point{s.Width / 2, s.Height / 2}
}

// State is the mutable part of the viewport.
type State struct {
	Scale     float64   `json:"scale"`
	Offset    orb.Point `json:"offset"`
	Container Size      `json:"container"`
}

// Controller applies viewport operations for a map of a fixed pixel size.
type Controller struct {
	limits Limits
	mapW   float64
	mapH   float64
}

// NewController creates a controller for a map of mapW x mapH stage pixels.
func NewController(limits Limits, mapW, mapH float64) Controller {
	return Controller{
		limits: limits.normalized(),
		mapW:   mapW,
		mapH:   mapH,
	}
}

// Limits returns the effective limits.
func (c Controller) Limits() Limits {
	return c.limits
}

// Initial returns the starting state for a container, fitted when the container is measured.
func (c Controller) Initial(container Size) State {
	s := State{Scale: c.clampScale(1), Container: container}
	fitted, _ := c.FitToScreen(s)

	return fitted
}

func (c Controller) ready(s State) bool {
	return !s.Container.IsZero() && c.mapW > 0 && c.mapH > 0 && s.Scale > 0
}

func (c Controller) clampScale(scale float64) float64 {
	return clamp(scale, c.limits.MinScale, c.limits.MaxScale)
}

// Zoom changes the scale by one step in the direction of sign, keeping the stage point under
// pointer fixed. A nil pointer falls back to the container centre. It reports whether the
// state changed; at a scale bound nothing changes.
func (c Controller) Zoom(s State, pointer *orb.Point, sign int) (State, bool) {
	if !c.ready(s) || sign == 0 {
		return s, false
	}

	step := c.limits.ZoomSpeed
	if sign < 0 {
		step = -step
	}

	oldScale := s.Scale
	newScale := c.clampScale(oldScale + step)
	if newScale == oldScale {
		return s, false
	}

	p := c.PointerOrDefault(s, pointer)
	mousePointTo := orb.Point{
		(p.X() - s.Offset.X()) / oldScale,
		(p.Y() - s.Offset.Y()) / oldScale,
	}
	candidate := orb.Point{
		p.X() - mousePointTo.X()*newScale,
		p.Y() - mousePointTo.Y()*newScale,
	}

	s.Scale = newScale
	s.Offset = c.Clamp(s.Container, candidate, newScale)

	return s, true
}

// Pan moves the stage to the clamped candidate offset.
func (c Controller) Pan(s State, candidate orb.Point) (State, bool) {
	if !c.ready(s) {
		return s, false
	}

	next := c.Clamp(s.Container, candidate, s.Scale)
	if next == s.Offset {
		return s, false
	}
	s.Offset = next

	return s, true
}

// PanBy moves the stage by a drag delta.
func (c Controller) PanBy(s State, delta orb.Point) (State, bool) {
	return c.Pan(s, orb.Point{s.Offset.X() + delta.X(), s.Offset.Y() + delta.Y()})
}

// Clamp bounds a candidate offset so that the scaled map never leaves the container empty.
// A map smaller than the container along an axis is centred on that axis.
func (c Controller) Clamp(container Size, candidate orb.Point, scale float64) orb.Point {
	if container.IsZero() {
		return candidate
	}

	return orb.Point{
		clampAxis(candidate.X(), container.Width, c.mapW*scale),
		clampAxis(candidate.Y(), container.Height, c.mapH*scale),
	}
}

func clampAxis(candidate, container, scaled float64) float64 {
	if scaled < container {
		return (container - scaled) / 2
	}

	return clamp(candidate, container-scaled, 0)
}

// FitToScreen scales the map to fit the container minus padding and centres it.
func (c Controller) FitToScreen(s State) (State, bool) {
	return c.FitToScreenPadded(s, c.limits.FitPadding)
}

// FitToScreenPadded is FitToScreen with an explicit padding.
func (c Controller) FitToScreenPadded(s State, padding float64) (State, bool) {
	if s.Container.IsZero() || c.mapW <= 0 || c.mapH <= 0 {
		return s, false
	}

	scale := c.clampScale(math.Min(
		(s.Container.Width-padding)/c.mapW,
		(s.Container.Height-padding)/c.mapH,
	))
	offset := orb.Point{
		(s.Container.Width - c.mapW*scale) / 2,
		(s.Container.Height - c.mapH*scale) / 2,
	}

	if scale == s.Scale && offset == s.Offset {
		return s, false
	}
	s.Scale = scale
	s.Offset = offset

	return s, true
}

// Resize records a new container size and refits the map. Re-applying the current size is a
// no-op, so a resize echoed back by the fit itself cannot trigger another fit.
func (c Controller) Resize(s State, container Size) (State, bool) {
	if container == s.Container {
		return s, false
	}
	s.Container = container
	if s.Scale <= 0 {
		s.Scale = c.clampScale(1)
	}
	fitted, _ := c.FitToScreen(s)

	return fitted, true
}

// PointerOrDefault returns the pointer, or the container centre when the event carried none.
func (c Controller) PointerOrDefault(s State, pointer *orb.Point) orb.Point {
	if pointer != nil && isFinite(pointer.X()) && isFinite(pointer.Y()) {
		return *pointer
	}

	return s.Container.Center()
}

// StageToScreen applies the viewport transform to a stage point.
func StageToScreen(s State, p orb.Point) orb.Point {
	return orb.Point{p.X()*s.Scale + s.Offset.X(), p.Y()*s.Scale + s.Offset.Y()}
}

// ScreenToStage inverts StageToScreen. A zero scale maps everything to the origin.
func ScreenToStage(s State, p orb.Point) orb.Point {
	if s.Scale == 0 {
		return orb.Point{}
	}

	return orb.Point{(p.X() - s.Offset.X()) / s.Scale, (p.Y() - s.Offset.Y()) / s.Scale}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
