// Package stacknav drives the card-stack control: it tracks which of a set of
// layered items is selected and animates directional slide+fade transitions
// between them.
//
// The engine never walks a visual tree. The owning widget hands it an
// explicit, ordered list of [Item] handles and republishes property changes
// (navigation mode, duration, orientation, bounds) into the engine. All calls
// are UI-thread confined; the only asynchronous behavior is the transition,
// which advances from the host frame loop via animation.StepTickers.
package stacknav

import (
	"fmt"
	"time"

	"github.com/go-aura/aura/pkg/event"
	"github.com/go-aura/aura/pkg/graphics"
)

// Item is a visual handle for one stacked card. The engine is the only
// writer of these properties while a transition is active; hosts must not
// mutate them concurrently.
type Item interface {
	SetOpacity(opacity float64)
	SetOffset(offset graphics.Offset)
	SetScale(scale float64)
	SetVisible(visible bool)
	SetZIndex(z int)
}

// Orientation selects the motion axis for transitions.
type Orientation int

const (
	OrientationHorizontal Orientation = iota
	OrientationVertical
)

// String returns a human-readable representation of the orientation.
func (o Orientation) String() string {
	switch o {
	case OrientationHorizontal:
		return "horizontal"
	case OrientationVertical:
		return "vertical"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// Direction classifies a transition's motion.
type Direction int

const (
	DirectionForward Direction = iota
	DirectionBackward
)

// String returns a human-readable representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionForward:
		return "forward"
	case DirectionBackward:
		return "backward"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Sign returns the motion sign: +1 for forward, -1 for backward.
func (d Direction) Sign() float64 {
	if d == DirectionBackward {
		return -1
	}
	return 1
}

const (
	// defaultTransitionDuration applies until the host configures one.
	defaultTransitionDuration = 300 * time.Millisecond

	// defaultRestOpacity is the deck-mode opacity baseline.
	defaultRestOpacity = 0.5

	// fallbackDistance is the motion distance used before the control has
	// been laid out and its bounds are still unknown.
	fallbackDistance = 200.0
)

// Engine is the selection state machine for a layered item stack.
//
// The zero value is not usable; create engines with [NewEngine]. Every index
// mutation goes through SetSelectedIndex (Next and Previous delegate to it),
// so the selected index is always in range and at most one transition is in
// flight at any instant.
type Engine struct {
	items          []Item
	selected       int
	navigationMode bool
	duration       time.Duration
	restOpacity    float64
	orientation    Orientation
	bounds         graphics.Size
	counter        *event.Value[string]

	// active is the in-flight transition; nil when idle.
	active *transition
}

// NewEngine creates an engine with no items and default transition settings.
func NewEngine() *Engine {
	e := &Engine{
		duration:    defaultTransitionDuration,
		restOpacity: defaultRestOpacity,
		counter:     event.NewValue(""),
	}
	e.refreshCounter()
	return e
}

// SetItems replaces the ordered item handles. The selected index is coerced
// back into range, any in-flight transition is cancelled (its item references
// are no longer trustworthy), and visibility is recomputed from scratch.
func (e *Engine) SetItems(items []Item) {
	e.items = items
	e.selected = coerceIndex(e.selected, len(items))
	e.cancelActive()
	e.refreshCounter()
	e.RecomputeVisibility()
}

// ItemCount returns the number of stacked items.
func (e *Engine) ItemCount() int {
	return len(e.items)
}

// SelectedIndex returns the current selected index.
func (e *Engine) SelectedIndex() int {
	return e.selected
}

// IsAnimating reports whether a transition is in flight.
func (e *Engine) IsAnimating() bool {
	return e.active != nil
}

// SetSelectedIndex coerces the requested index, updates the counter text, and
// starts a directional transition when navigation mode is active.
//
// The coercion is a single-step wrap mirroring Next/Previous semantics:
// anything below zero lands on the last item, anything at or past the end
// lands on the first.
//
// A change arriving while a transition is in flight supersedes it: the
// running transition is cancelled synchronously and the stack settles
// directly at the new rest state. A second animation never starts on top of
// the first.
func (e *Engine) SetSelectedIndex(requested int) int {
	coerced := coerceIndex(requested, len(e.items))
	previous := e.selected
	e.selected = coerced
	e.refreshCounter()

	if coerced == previous || len(e.items) == 0 {
		return coerced
	}

	if !e.navigationMode {
		e.RecomputeVisibility()
		return coerced
	}

	if e.active != nil {
		e.cancelActive()
		return coerced
	}

	e.startTransition(previous, coerced)
	return coerced
}

// Next advances the selection by one, wrapping past the end to the first item.
// No-op on an empty stack.
func (e *Engine) Next() int {
	if len(e.items) == 0 {
		return 0
	}
	return e.SetSelectedIndex(e.selected + 1)
}

// Previous moves the selection back by one, wrapping before the start to the
// last item. No-op on an empty stack.
func (e *Engine) Previous() int {
	if len(e.items) == 0 {
		return 0
	}
	return e.SetSelectedIndex(e.selected - 1)
}

// Counter exposes the "current / total" display text as an observable value
// for host bindings.
func (e *Engine) Counter() *event.Value[string] {
	return e.counter
}

// CounterText returns the current "current / total" display text.
func (e *Engine) CounterText() string {
	return e.counter.Get()
}

// SetNavigationMode switches between single-item navigation display and the
// static layered deck display, recomputing visibility for the new mode.
func (e *Engine) SetNavigationMode(active bool) {
	if e.navigationMode == active {
		return
	}
	e.navigationMode = active
	e.cancelActive()
	e.RecomputeVisibility()
}

// NavigationMode reports whether navigation display is active.
func (e *Engine) NavigationMode() bool {
	return e.navigationMode
}

// SetTransitionDuration configures the length of future transitions.
// Negative durations are treated as zero.
func (e *Engine) SetTransitionDuration(d time.Duration) {
	if d < 0 {
		d = 0
	}
	e.duration = d
}

// SetRestOpacity sets the deck-mode opacity baseline (clamped to [0, 1]) and
// refreshes the deck when visible.
func (e *Engine) SetRestOpacity(opacity float64) {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	e.restOpacity = opacity
	if !e.navigationMode {
		e.RecomputeVisibility()
	}
}

// SetOrientation selects the transition motion axis.
func (e *Engine) SetOrientation(o Orientation) {
	e.orientation = o
}

// SetBounds records the control's current extent, used to derive the
// transition motion distance.
func (e *Engine) SetBounds(bounds graphics.Size) {
	e.bounds = bounds
}

// startTransition kicks off the slide+fade between two item indices. Invalid
// indices skip the animation and settle at the rest state directly.
func (e *Engine) startTransition(from, to int) {
	if from < 0 || from >= len(e.items) || to < 0 || to >= len(e.items) || from == to {
		e.RecomputeVisibility()
		return
	}
	t := newTransition(e, from, to, classifyDirection(from, to, len(e.items)), e.motionDistance())
	e.active = t
	t.start()
}

// cancelActive invalidates the in-flight transition, if any, and settles all
// items at the rest state for the current selection. The recompute runs
// unconditionally so externally perturbed item properties are repaired too.
func (e *Engine) cancelActive() {
	if e.active == nil {
		return
	}
	t := e.active
	e.active = nil
	t.cancel()
	e.RecomputeVisibility()
}

// Dispose cancels any in-flight transition, releasing its ticker from the
// frame pump. An engine abandoned mid-transition would otherwise keep ticking
// every frame; call Dispose when the owning control is torn down.
func (e *Engine) Dispose() {
	e.cancelActive()
}

// finishTransition is invoked by a transition that ran to completion.
func (e *Engine) finishTransition(t *transition) {
	if e.active != t {
		return
	}
	e.active = nil
	e.RecomputeVisibility()
}

// motionDistance returns the travel distance along the configured axis.
func (e *Engine) motionDistance() float64 {
	extent := e.bounds.Width
	if e.orientation == OrientationVertical {
		extent = e.bounds.Height
	}
	if extent <= 0 {
		return fallbackDistance
	}
	return extent
}

// axisOffset places a scalar distance on the configured motion axis.
func (e *Engine) axisOffset(v float64) graphics.Offset {
	if e.orientation == OrientationVertical {
		return graphics.Offset{Y: v}
	}
	return graphics.Offset{X: v}
}

func (e *Engine) refreshCounter() {
	e.counter.Set(fmt.Sprintf("%d / %d", e.selected+1, len(e.items)))
}

// coerceIndex wraps an out-of-range index by a single step: below zero lands
// on the last item, at or past the end lands on the first. An empty stack
// always yields zero.
func coerceIndex(requested, count int) int {
	if count == 0 {
		return 0
	}
	if requested < 0 {
		return count - 1
	}
	if requested >= count {
		return 0
	}
	return requested
}

// classifyDirection decides the motion direction between two indices.
//
// Wrapping past the end is forward, but wrapping from the first item to the
// last is explicitly backward; that asymmetric special case is checked first
// and preserved as observed behavior.
func classifyDirection(from, to, count int) Direction {
	last := count - 1
	if from == 0 && to == last {
		return DirectionBackward
	}
	if to > from || (from == last && to == 0) {
		return DirectionForward
	}
	return DirectionBackward
}
