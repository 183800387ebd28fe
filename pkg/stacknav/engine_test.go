package stacknav

import (
	"math"
	"testing"
	"time"

	"github.com/go-aura/aura/pkg/animation"
	"github.com/go-aura/aura/pkg/graphics"
)

// fakeItem records the visual state the engine pushes onto it.
type fakeItem struct {
	opacity float64
	offset  graphics.Offset
	scale   float64
	visible bool
	zIndex  int
}

func (f *fakeItem) SetOpacity(opacity float64)       { f.opacity = opacity }
func (f *fakeItem) SetOffset(offset graphics.Offset) { f.offset = offset }
func (f *fakeItem) SetScale(scale float64)           { f.scale = scale }
func (f *fakeItem) SetVisible(visible bool)          { f.visible = visible }
func (f *fakeItem) SetZIndex(z int)                  { f.zIndex = z }

// fakeClock lets tests advance animation time manually.
type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

func (f *fakeClock) advance(d time.Duration) {
	f.now = f.now.Add(d)
	animation.StepTickers()
}

func installFakeClock(t *testing.T) *fakeClock {
	t.Helper()
	clock := &fakeClock{now: time.Unix(1000, 0)}
	prev := animation.SetClock(clock)
	t.Cleanup(func() { animation.SetClock(prev) })
	return clock
}

func newStack(t *testing.T, count int) (*Engine, []*fakeItem) {
	t.Helper()
	items := make([]*fakeItem, count)
	handles := make([]Item, count)
	for i := range items {
		items[i] = &fakeItem{}
		handles[i] = items[i]
	}
	e := NewEngine()
	e.SetItems(handles)
	t.Cleanup(e.Dispose)
	return e, items
}

func near(t *testing.T, got, want float64, what string) {
	t.Helper()
	if math.Abs(got-want) > 1e-3 {
		t.Errorf("%s = %v, want %v", what, got, want)
	}
}

func TestCoerceIndex(t *testing.T) {
	cases := []struct {
		requested, count, want int
	}{
		{2, 5, 2},
		{-1, 5, 4},
		{5, 5, 0},
		{7, 5, 0},
		{-3, 5, 4},
		{0, 0, 0},
		{3, 0, 0},
	}
	for _, c := range cases {
		if got := coerceIndex(c.requested, c.count); got != c.want {
			t.Errorf("coerceIndex(%d, %d) = %d, want %d", c.requested, c.count, got, c.want)
		}
	}
}

func TestClassifyDirection(t *testing.T) {
	cases := []struct {
		from, to, count int
		want            Direction
	}{
		{1, 2, 5, DirectionForward},
		{2, 1, 5, DirectionBackward},
		{4, 0, 5, DirectionForward},  // wrap past the end
		{0, 4, 5, DirectionBackward}, // wrap before the start
		{3, 1, 5, DirectionBackward},
		// With two items the first-to-last exception takes precedence.
		{0, 1, 2, DirectionBackward},
		{1, 0, 2, DirectionForward},
	}
	for _, c := range cases {
		if got := classifyDirection(c.from, c.to, c.count); got != c.want {
			t.Errorf("classifyDirection(%d, %d, %d) = %v, want %v", c.from, c.to, c.count, got, c.want)
		}
	}
}

func TestEngine_CounterText(t *testing.T) {
	e := NewEngine()
	if got := e.CounterText(); got != "1 / 0" {
		t.Errorf("empty counter = %q, want %q", got, "1 / 0")
	}

	e, _ = newStack(t, 3)
	if got := e.CounterText(); got != "1 / 3" {
		t.Errorf("counter = %q, want %q", got, "1 / 3")
	}

	e.SetSelectedIndex(2)
	if got := e.CounterText(); got != "3 / 3" {
		t.Errorf("counter after select = %q, want %q", got, "3 / 3")
	}
}

func TestEngine_SelectionWrapsSingleStep(t *testing.T) {
	e, _ := newStack(t, 5)

	if got := e.SetSelectedIndex(-1); got != 4 {
		t.Errorf("SetSelectedIndex(-1) = %d, want 4", got)
	}
	if got := e.SetSelectedIndex(5); got != 0 {
		t.Errorf("SetSelectedIndex(5) = %d, want 0", got)
	}
	if got := e.SetSelectedIndex(2); got != 2 {
		t.Errorf("SetSelectedIndex(2) = %d, want 2", got)
	}
}

func TestEngine_NextPreviousWrap(t *testing.T) {
	e, _ := newStack(t, 3)

	if got := e.Next(); got != 1 {
		t.Errorf("Next = %d, want 1", got)
	}
	e.SetSelectedIndex(2)
	if got := e.Next(); got != 0 {
		t.Errorf("Next past end = %d, want 0", got)
	}
	if got := e.Previous(); got != 2 {
		t.Errorf("Previous before start = %d, want 2", got)
	}
}

func TestEngine_EmptyStackNoOps(t *testing.T) {
	e := NewEngine()
	if got := e.Next(); got != 0 {
		t.Errorf("Next on empty = %d, want 0", got)
	}
	if got := e.Previous(); got != 0 {
		t.Errorf("Previous on empty = %d, want 0", got)
	}
	if got := e.SetSelectedIndex(3); got != 0 {
		t.Errorf("SetSelectedIndex on empty = %d, want 0", got)
	}
}

func TestEngine_NavigationModeShowsOnlySelected(t *testing.T) {
	e, items := newStack(t, 3)
	e.SetSelectedIndex(1)
	e.SetNavigationMode(true)

	for i, item := range items {
		wantVisible := i == 1
		if item.visible != wantVisible {
			t.Errorf("item %d visible = %v, want %v", i, item.visible, wantVisible)
		}
	}
	near(t, items[1].opacity, 1, "selected opacity")
	if items[1].zIndex != 1 {
		t.Errorf("selected z = %d, want 1", items[1].zIndex)
	}
	near(t, items[0].opacity, 0, "unselected opacity")
}

func TestEngine_DeckOpacities(t *testing.T) {
	e, items := newStack(t, 4)
	e.SetRestOpacity(0.6)

	want := []float64{1.0, 0.8, 0.6, 0.5}
	for i, item := range items {
		near(t, item.opacity, want[i], "deck opacity")
	}
}

func TestEngine_DeckOpacityFloor(t *testing.T) {
	if got := deckOpacity(6, 0.5); got != deckOpacityFloor {
		t.Errorf("deep deck opacity = %v, want floor %v", got, deckOpacityFloor)
	}
	// Second card never exceeds full opacity.
	near(t, deckOpacity(1, 0.95), 1, "second card opacity cap")
}

func TestEngine_DeckLayering(t *testing.T) {
	e, items := newStack(t, 3)
	e.RecomputeVisibility()

	for i, item := range items {
		if !item.visible {
			t.Errorf("deck item %d hidden", i)
		}
		near(t, item.offset.X, 10*float64(i), "deck offset x")
		near(t, item.offset.Y, 10*float64(i), "deck offset y")
		near(t, item.scale, math.Max(0.8, 1-0.04*float64(i)), "deck scale")
		if item.zIndex != len(items)-1-i {
			t.Errorf("deck item %d z = %d, want %d", i, item.zIndex, len(items)-1-i)
		}
	}
}

func TestEngine_TransitionSlidesAndFades(t *testing.T) {
	clock := installFakeClock(t)
	e, items := newStack(t, 3)
	e.SetNavigationMode(true)
	e.SetBounds(graphics.Size{Width: 400, Height: 300})

	e.SetSelectedIndex(1)
	if !e.IsAnimating() {
		t.Fatal("expected transition in flight")
	}

	// Forward motion: the incoming card starts one full width to the right.
	near(t, items[1].offset.X, 400, "incoming start offset")
	near(t, items[1].opacity, 0, "incoming start opacity")
	near(t, items[0].opacity, 1, "outgoing start opacity")
	if items[1].zIndex != 1 || items[0].zIndex != 0 {
		t.Errorf("z order = out %d in %d, want out 0 in 1", items[0].zIndex, items[1].zIndex)
	}

	clock.advance(150 * time.Millisecond)
	eased := animation.EaseInOut(0.5)
	near(t, items[0].opacity, 1-eased, "outgoing mid opacity")
	near(t, items[1].opacity, eased, "incoming mid opacity")
	near(t, items[0].offset.X, -400*eased, "outgoing mid offset")
	near(t, items[1].offset.X, 400*(1-eased), "incoming mid offset")

	clock.advance(150 * time.Millisecond)
	if e.IsAnimating() {
		t.Fatal("transition should have completed")
	}
	near(t, items[1].opacity, 1, "incoming final opacity")
	near(t, items[1].offset.X, 0, "incoming final offset")
	if items[0].visible {
		t.Error("outgoing card should be hidden after the transition")
	}
}

func TestEngine_BackwardWrapSlidesFromLeft(t *testing.T) {
	installFakeClock(t)
	e, items := newStack(t, 3)
	e.SetNavigationMode(true)
	e.SetBounds(graphics.Size{Width: 400, Height: 300})

	if got := e.Previous(); got != 2 {
		t.Fatalf("Previous = %d, want 2", got)
	}
	near(t, items[2].offset.X, -400, "incoming start offset")
}

func TestEngine_FallbackDistanceBeforeLayout(t *testing.T) {
	installFakeClock(t)
	e, items := newStack(t, 3)
	e.SetNavigationMode(true)

	e.SetSelectedIndex(1)
	near(t, items[1].offset.X, fallbackDistance, "incoming start offset")
}

func TestEngine_VerticalOrientationMovesOnY(t *testing.T) {
	installFakeClock(t)
	e, items := newStack(t, 3)
	e.SetNavigationMode(true)
	e.SetOrientation(OrientationVertical)
	e.SetBounds(graphics.Size{Width: 400, Height: 300})

	e.SetSelectedIndex(1)
	near(t, items[1].offset.X, 0, "incoming offset x")
	near(t, items[1].offset.Y, 300, "incoming offset y")
}

func TestEngine_SupersedingChangeCancelsTransition(t *testing.T) {
	clock := installFakeClock(t)
	e, items := newStack(t, 3)
	e.SetNavigationMode(true)
	e.SetBounds(graphics.Size{Width: 400, Height: 300})

	e.SetSelectedIndex(1)
	clock.advance(100 * time.Millisecond)

	// A change mid-flight cancels and settles; no second animation starts.
	if got := e.SetSelectedIndex(2); got != 2 {
		t.Fatalf("superseding SetSelectedIndex = %d, want 2", got)
	}
	if e.IsAnimating() {
		t.Fatal("superseded transition should be cancelled")
	}
	if animation.HasActiveTickers() {
		t.Error("cancelled transition left an active ticker")
	}
	if !items[2].visible {
		t.Error("new selection should be visible at rest")
	}
	near(t, items[2].opacity, 1, "new selection opacity")
	near(t, items[2].offset.X, 0, "new selection offset")
	if items[1].visible {
		t.Error("superseded target should be hidden at rest")
	}

	// Ticks from the dead transition must not perturb the settled state.
	clock.advance(300 * time.Millisecond)
	near(t, items[2].opacity, 1, "settled opacity after stray ticks")
}

func TestEngine_DisposeReleasesTicker(t *testing.T) {
	clock := installFakeClock(t)
	e, items := newStack(t, 3)
	e.SetNavigationMode(true)
	e.SetBounds(graphics.Size{Width: 400, Height: 300})

	e.SetSelectedIndex(1)
	clock.advance(100 * time.Millisecond)
	if !e.IsAnimating() {
		t.Fatal("expected transition in flight")
	}

	e.Dispose()
	if e.IsAnimating() {
		t.Error("Dispose should cancel the in-flight transition")
	}
	if animation.HasActiveTickers() {
		t.Error("disposed engine left an active ticker")
	}
	// The stack settles at the rest state for the current selection.
	near(t, items[1].opacity, 1, "selection opacity after dispose")
	near(t, items[1].offset.X, 0, "selection offset after dispose")
	if items[0].visible {
		t.Error("previous card should be hidden after dispose")
	}

	// A disposed engine keeps no per-frame work; ticks are inert.
	clock.advance(300 * time.Millisecond)
	near(t, items[1].opacity, 1, "settled opacity after stray ticks")
}

func TestEngine_SetItemsCancelsTransitionAndCoercesSelection(t *testing.T) {
	installFakeClock(t)
	e, _ := newStack(t, 5)
	e.SetNavigationMode(true)
	e.SetSelectedIndex(4)
	if !e.IsAnimating() {
		t.Fatal("expected transition in flight")
	}

	replacement := []*fakeItem{{}, {}}
	handles := []Item{replacement[0], replacement[1]}
	e.SetItems(handles)

	if e.IsAnimating() {
		t.Error("SetItems should cancel the in-flight transition")
	}
	if got := e.SelectedIndex(); got != 0 {
		t.Errorf("selected after shrink = %d, want 0", got)
	}
	if got := e.CounterText(); got != "1 / 2" {
		t.Errorf("counter after SetItems = %q, want %q", got, "1 / 2")
	}
}

func TestEngine_ReselectingCurrentIndexDoesNotAnimate(t *testing.T) {
	installFakeClock(t)
	e, _ := newStack(t, 3)
	e.SetNavigationMode(true)

	e.SetSelectedIndex(0)
	if e.IsAnimating() {
		t.Error("reselecting the current index should not animate")
	}
}

func TestEngine_DeckModeSelectionDoesNotAnimate(t *testing.T) {
	installFakeClock(t)
	e, items := newStack(t, 3)

	e.SetSelectedIndex(1)
	if e.IsAnimating() {
		t.Error("deck mode selection should not animate")
	}
	// Deck layering is unchanged by selection.
	if !items[0].visible || !items[2].visible {
		t.Error("deck cards should stay visible")
	}
}

func TestEngine_RestOpacityClamped(t *testing.T) {
	e, items := newStack(t, 4)
	e.SetRestOpacity(1.5)
	near(t, items[2].opacity, 1, "third card at clamped rest")
	e.SetRestOpacity(-0.5)
	near(t, items[0].opacity, 1, "front card always opaque")
	near(t, items[2].opacity, 0, "third card at clamped rest")
}
