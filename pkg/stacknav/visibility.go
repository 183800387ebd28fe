package stacknav

import (
	"math"

	"github.com/go-aura/aura/pkg/graphics"
)

const (
	// deckOffsetStep is the per-depth diagonal translation in deck mode.
	deckOffsetStep = 10.0
	// deckScaleStep is the per-depth scale reduction in deck mode.
	deckScaleStep = 0.04
	// deckMinScale bounds how small deep cards may get.
	deckMinScale = 0.8
	// deckOpacityFloor bounds how transparent deep cards may get.
	deckOpacityFloor = 0.3
)

// RecomputeVisibility resets every item to its rest state for the current
// mode and selection.
//
// In navigation mode exactly the selected item is shown at full opacity with
// no offset and an elevated z-order; everything else is hidden at base
// z-order. In deck mode all items are shown layered behind each other with a
// progressive diagonal offset, shrinking scale, and fading opacity, frontmost
// first.
//
// This runs unconditionally at the end of every transition, whether it
// completed or was cancelled, so item properties perturbed mid-flight always
// settle at a well-defined state.
func (e *Engine) RecomputeVisibility() {
	if e.navigationMode {
		for i, item := range e.items {
			if i == e.selected {
				item.SetVisible(true)
				item.SetOpacity(1)
				item.SetOffset(graphics.Offset{})
				item.SetScale(1)
				item.SetZIndex(1)
			} else {
				item.SetVisible(false)
				item.SetOpacity(0)
				item.SetOffset(graphics.Offset{})
				item.SetScale(1)
				item.SetZIndex(0)
			}
		}
		return
	}

	count := len(e.items)
	for i, item := range e.items {
		depth := float64(i)
		item.SetVisible(true)
		item.SetOpacity(deckOpacity(i, e.restOpacity))
		item.SetOffset(graphics.Offset{X: deckOffsetStep * depth, Y: deckOffsetStep * depth})
		item.SetScale(math.Max(deckMinScale, 1-deckScaleStep*depth))
		item.SetZIndex(count - 1 - i)
	}
}

// deckOpacity returns the rest opacity for a deck card at the given depth.
// The front card is fully opaque, the second sits slightly above the
// configured rest opacity, the third at it, and deeper cards fade by 0.1 per
// level down to the floor.
func deckOpacity(index int, rest float64) float64 {
	switch index {
	case 0:
		return 1
	case 1:
		return math.Min(1, rest+0.2)
	case 2:
		return rest
	default:
		return math.Max(deckOpacityFloor, rest-0.1*float64(index-2))
	}
}
