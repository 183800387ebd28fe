package stacknav

import (
	"github.com/go-aura/aura/pkg/animation"
	"github.com/go-aura/aura/pkg/errors"
	"github.com/go-aura/aura/pkg/graphics"
)

// Frame is the per-tick snapshot of a running transition: the outgoing item
// fades out while sliding against the motion direction, the incoming item
// fades in while sliding to rest. Frames exist only while a transition is in
// flight and are owned by it exclusively.
type Frame struct {
	Progress    float64
	FromOpacity float64
	ToOpacity   float64
	FromOffset  graphics.Offset
	ToOffset    graphics.Offset
}

// transition animates one selection change. It holds a cooperative
// cancellation flag checked on every tick; once cancelled it stops mutating
// item state and leaves the final reset to the engine's visibility recompute.
type transition struct {
	engine     *Engine
	from       int
	to         int
	direction  Direction
	controller *animation.AnimationController
	fromOffset *animation.Tween[graphics.Offset]
	toOffset   *animation.Tween[graphics.Offset]
	cancelled  bool
}

func newTransition(e *Engine, from, to int, direction Direction, distance float64) *transition {
	travel := e.axisOffset(direction.Sign() * distance)
	return &transition{
		engine:     e,
		from:       from,
		to:         to,
		direction:  direction,
		fromOffset: animation.TweenOffset(graphics.Offset{}, travel.Scale(-1)),
		toOffset:   animation.TweenOffset(travel, graphics.Offset{}),
	}
}

// start prepares both items and begins ticking. The incoming item is placed
// at its off-screen start position before the first tick so it never flashes
// at rest.
func (t *transition) start() {
	e := t.engine
	outgoing := e.items[t.from]
	incoming := e.items[t.to]

	outgoing.SetVisible(true)
	outgoing.SetZIndex(0)
	incoming.SetVisible(true)
	incoming.SetZIndex(1)
	t.apply(t.frameAt(0))

	t.controller = animation.NewAnimationController(e.duration)
	t.controller.Curve = animation.EaseInOut
	t.controller.AddListener(func() {
		if t.cancelled {
			return
		}
		t.apply(t.frameAt(t.controller.Value))
	})
	t.controller.AddStatusListener(func(status animation.AnimationStatus) {
		if t.cancelled || status != animation.AnimationCompleted {
			return
		}
		t.engine.finishTransition(t)
	})
	t.controller.Forward()
}

// cancel invalidates the transition so pending ticks become no-ops.
func (t *transition) cancel() {
	t.cancelled = true
	if t.controller != nil {
		t.controller.Stop()
	}
}

// frameAt builds the interpolated visual state for an eased progress value.
func (t *transition) frameAt(progress float64) Frame {
	return Frame{
		Progress:    progress,
		FromOpacity: 1 - progress,
		ToOpacity:   progress,
		FromOffset:  t.fromOffset.Evaluate(progress),
		ToOffset:    t.toOffset.Evaluate(progress),
	}
}

// apply pushes a frame onto the two participating items. Item setters are
// host code; a panic there must not tear down the frame loop.
func (t *transition) apply(frame Frame) {
	defer errors.Recover("stacknav.transition.apply")
	e := t.engine
	if t.from >= len(e.items) || t.to >= len(e.items) {
		return
	}
	outgoing := e.items[t.from]
	incoming := e.items[t.to]
	outgoing.SetOpacity(frame.FromOpacity)
	outgoing.SetOffset(frame.FromOffset)
	incoming.SetOpacity(frame.ToOpacity)
	incoming.SetOffset(frame.ToOffset)
}
