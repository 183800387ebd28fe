package widgets

import (
	"time"

	"github.com/go-aura/aura/pkg/event"
	"github.com/go-aura/aura/pkg/graphics"
	"github.com/go-aura/aura/pkg/stacknav"
	"github.com/go-aura/aura/pkg/theme"
)

// CardStack is the stacked-card control. It owns a [stacknav.Engine] and
// republishes its observable properties into it, so a host binding system
// only ever talks to property boxes while the engine stays framework-free.
//
// In navigation mode one card shows at a time and selection changes run a
// directional slide+fade transition; otherwise the cards render as a static
// layered deck with depth offsets. The counter text ("current / total") is
// exposed as a read-only observable for display bindings.
type CardStack struct {
	engine *stacknav.Engine

	navigationMode     *event.Value[bool]
	transitionDuration *event.Value[time.Duration]
	stackOpacity       *event.Value[float64]
	orientation        *event.Value[stacknav.Orientation]
}

// NewCardStack creates a card stack in deck mode with default transition
// settings.
func NewCardStack() *CardStack {
	c := &CardStack{
		engine:             stacknav.NewEngine(),
		navigationMode:     event.NewValue(false),
		transitionDuration: event.NewValue(300 * time.Millisecond),
		stackOpacity:       event.NewValue(0.5),
		orientation:        event.NewValue(stacknav.OrientationHorizontal),
	}
	c.navigationMode.Subscribe(func(change event.Change[bool]) {
		c.engine.SetNavigationMode(change.New)
	})
	c.transitionDuration.Subscribe(func(change event.Change[time.Duration]) {
		c.engine.SetTransitionDuration(change.New)
	})
	c.stackOpacity.Subscribe(func(change event.Change[float64]) {
		c.engine.SetRestOpacity(change.New)
	})
	c.orientation.Subscribe(func(change event.Change[stacknav.Orientation]) {
		c.engine.SetOrientation(change.New)
	})
	return c
}

// ApplyTheme configures the stack's transition duration and deck opacity
// from the theme's card stack component theme.
func (c *CardStack) ApplyTheme(t *theme.ThemeData) {
	stackTheme := t.CardStackThemeOf()
	c.transitionDuration.Set(stackTheme.TransitionDuration)
	c.stackOpacity.Set(stackTheme.RestOpacity)
}

// Dispose cancels any in-flight transition so the stack releases its
// animation resources. Call when the control is removed from the host.
func (c *CardStack) Dispose() {
	c.engine.Dispose()
}

// SetItems hands the engine the ordered visual handles for the cards.
func (c *CardStack) SetItems(items []stacknav.Item) {
	c.engine.SetItems(items)
}

// SetBounds records the control's laid-out extent so transitions can slide
// cards across the full control instead of the fixed fallback distance.
func (c *CardStack) SetBounds(bounds graphics.Size) {
	c.engine.SetBounds(bounds)
}

// SetSelectedIndex selects a card, wrapping out-of-range indices by a single
// step, and returns the coerced index.
func (c *CardStack) SetSelectedIndex(index int) int {
	return c.engine.SetSelectedIndex(index)
}

// Next advances to the next card, wrapping past the end.
func (c *CardStack) Next() int {
	return c.engine.Next()
}

// Previous moves to the previous card, wrapping before the start.
func (c *CardStack) Previous() int {
	return c.engine.Previous()
}

// SelectedIndex returns the currently selected card index.
func (c *CardStack) SelectedIndex() int {
	return c.engine.SelectedIndex()
}

// IsAnimating reports whether a card transition is in flight.
func (c *CardStack) IsAnimating() bool {
	return c.engine.IsAnimating()
}

// Counter exposes the "current / total" text for display bindings.
func (c *CardStack) Counter() *event.Value[string] {
	return c.engine.Counter()
}

// CounterText returns the current "current / total" text.
func (c *CardStack) CounterText() string {
	return c.engine.CounterText()
}

// NavigationMode exposes the navigation-mode property.
func (c *CardStack) NavigationMode() *event.Value[bool] {
	return c.navigationMode
}

// TransitionDuration exposes the transition duration property.
func (c *CardStack) TransitionDuration() *event.Value[time.Duration] {
	return c.transitionDuration
}

// StackOpacity exposes the deck-mode rest opacity property.
func (c *CardStack) StackOpacity() *event.Value[float64] {
	return c.stackOpacity
}

// Orientation exposes the transition motion axis property.
func (c *CardStack) Orientation() *event.Value[stacknav.Orientation] {
	return c.orientation
}
