package widgets

import (
	"testing"
	"time"

	"github.com/go-aura/aura/pkg/animation"
	"github.com/go-aura/aura/pkg/event"
	"github.com/go-aura/aura/pkg/graphics"
	"github.com/go-aura/aura/pkg/stacknav"
	"github.com/go-aura/aura/pkg/theme"
)

type stubCard struct {
	opacity float64
	offset  graphics.Offset
	scale   float64
	visible bool
	zIndex  int
}

func (s *stubCard) SetOpacity(opacity float64)       { s.opacity = opacity }
func (s *stubCard) SetOffset(offset graphics.Offset) { s.offset = offset }
func (s *stubCard) SetScale(scale float64)           { s.scale = scale }
func (s *stubCard) SetVisible(visible bool)          { s.visible = visible }
func (s *stubCard) SetZIndex(z int)                  { s.zIndex = z }

func newCardStack(t *testing.T, count int) (*CardStack, []*stubCard) {
	t.Helper()
	cards := make([]*stubCard, count)
	handles := make([]stacknav.Item, count)
	for i := range cards {
		cards[i] = &stubCard{}
		handles[i] = cards[i]
	}
	stack := NewCardStack()
	stack.SetItems(handles)
	t.Cleanup(stack.Dispose)
	return stack, cards
}

func TestCardStack_NavigationModePropertyDrivesEngine(t *testing.T) {
	stack, cards := newCardStack(t, 3)

	stack.NavigationMode().Set(true)
	if cards[1].visible || cards[2].visible {
		t.Error("navigation mode should hide unselected cards")
	}
	if !cards[0].visible {
		t.Error("navigation mode should show the selected card")
	}

	stack.NavigationMode().Set(false)
	if !cards[1].visible || !cards[2].visible {
		t.Error("deck mode should show every card")
	}
}

func TestCardStack_StackOpacityPropertyRefreshesDeck(t *testing.T) {
	stack, cards := newCardStack(t, 4)

	stack.StackOpacity().Set(0.6)
	want := []float64{1.0, 0.8, 0.6, 0.5}
	for i, card := range cards {
		if diff := card.opacity - want[i]; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("card %d opacity = %v, want %v", i, card.opacity, want[i])
		}
	}
}

func TestCardStack_CounterFollowsSelection(t *testing.T) {
	stack, _ := newCardStack(t, 3)

	if got := stack.CounterText(); got != "1 / 3" {
		t.Errorf("counter = %q, want %q", got, "1 / 3")
	}

	var observed string
	stack.Counter().Subscribe(func(change event.Change[string]) {
		observed = change.New
	})

	stack.Next()
	if got := stack.CounterText(); got != "2 / 3" {
		t.Errorf("counter after Next = %q, want %q", got, "2 / 3")
	}
	if observed != "2 / 3" {
		t.Errorf("observed counter = %q, want %q", observed, "2 / 3")
	}
}

func TestCardStack_SelectionWraps(t *testing.T) {
	stack, _ := newCardStack(t, 3)

	if got := stack.Previous(); got != 2 {
		t.Errorf("Previous from first = %d, want 2", got)
	}
	if got := stack.Next(); got != 0 {
		t.Errorf("Next from last = %d, want 0", got)
	}
	if got := stack.SetSelectedIndex(7); got != 0 {
		t.Errorf("out-of-range select = %d, want 0", got)
	}
}

func TestCardStack_ApplyTheme(t *testing.T) {
	stack, _ := newCardStack(t, 2)

	custom := theme.DefaultLightTheme()
	custom.CardStackTheme = &theme.CardStackThemeData{
		RestOpacity:        0.7,
		TransitionDuration: 450 * time.Millisecond,
	}
	stack.ApplyTheme(custom)

	if got := stack.TransitionDuration().Get(); got != 450*time.Millisecond {
		t.Errorf("transition duration = %v, want 450ms", got)
	}
	if got := stack.StackOpacity().Get(); got != 0.7 {
		t.Errorf("stack opacity = %v, want 0.7", got)
	}
}

func TestCardStack_TransitionUsesConfiguredDurationAndBounds(t *testing.T) {
	clock := &stubClock{now: time.Unix(1000, 0)}
	prev := animation.SetClock(clock)
	t.Cleanup(func() { animation.SetClock(prev) })

	stack, cards := newCardStack(t, 3)
	stack.NavigationMode().Set(true)
	stack.TransitionDuration().Set(100 * time.Millisecond)
	stack.SetBounds(graphics.Size{Width: 500, Height: 300})

	stack.SetSelectedIndex(1)
	if !stack.IsAnimating() {
		t.Fatal("expected transition in flight")
	}
	if cards[1].offset.X != 500 {
		t.Errorf("incoming start offset = %v, want 500", cards[1].offset.X)
	}

	clock.now = clock.now.Add(100 * time.Millisecond)
	animation.StepTickers()
	if stack.IsAnimating() {
		t.Error("transition should finish after the configured duration")
	}
}

type stubClock struct {
	now time.Time
}

func (s *stubClock) Now() time.Time { return s.now }
