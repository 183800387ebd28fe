package animation_test

import (
	"fmt"
	"time"

	"github.com/go-aura/aura/pkg/animation"
	"github.com/go-aura/aura/pkg/graphics"
)

// This example shows how to create and control an animation.
func ExampleAnimationController() {
	controller := animation.NewAnimationController(300 * time.Millisecond)
	controller.Curve = animation.EaseInOut

	// Listen for value changes
	controller.AddListener(func() {
		fmt.Printf("Value: %.2f\n", controller.Value)
	})

	// Animate forward (0 -> 1)
	controller.Forward()

	// Later, animate in reverse (1 -> 0)
	controller.Reverse()

	// Clean up when done
	controller.Dispose()
}

// This example shows how to use tweens with an animation controller.
func ExampleTween() {
	controller := animation.NewAnimationController(500 * time.Millisecond)

	// Map the 0-1 animation value onto concrete visuals.
	slide := animation.TweenOffset(
		graphics.Offset{X: 200, Y: 0},
		graphics.Offset{X: 0, Y: 0},
	)
	fade := animation.TweenFloat64(0, 1)

	controller.AddListener(func() {
		offset := slide.Transform(controller)
		opacity := fade.Transform(controller)
		_ = offset
		_ = opacity
	})

	controller.Forward()
	controller.Dispose()
}

// This example shows how to listen for animation status changes.
func ExampleAnimationController_statusListener() {
	controller := animation.NewAnimationController(300 * time.Millisecond)

	controller.AddStatusListener(func(status animation.AnimationStatus) {
		if status == animation.AnimationCompleted {
			fmt.Println("settled at rest")
		}
	})

	controller.Forward()
	controller.Dispose()
}
