package widgets_test

import (
	"fmt"

	"github.com/go-aura/aura/pkg/graphics"
	"github.com/go-aura/aura/pkg/theme"
	"github.com/go-aura/aura/pkg/widgets"
)

// This example shows how a declarative widget resolves against a theme.
func ExampleButton() {
	t := theme.DefaultDarkTheme()

	button := widgets.ButtonOf("Delete", func() { fmt.Println("tapped") }).
		WithVariant(widgets.ButtonOutlined)

	style := button.Resolve(t)
	fmt.Println(style.Tappable)
	// Output: true
}

// This example shows the list-row panel growing one item to fill leftover width.
func ExampleItemRow() {
	label := widgets.NewRowItem(
		func(graphics.Size) graphics.Size { return graphics.Size{Width: 80, Height: 24} },
		func(graphics.Rect) {},
	)
	field := widgets.NewRowItem(
		func(available graphics.Size) graphics.Size {
			return graphics.Size{Width: available.Width, Height: 24}
		},
		func(rect graphics.Rect) { fmt.Printf("field width: %v\n", rect.Width()) },
	)
	field.GrowProperty().Set(true)

	row := widgets.NewItemRow()
	row.Spacing().Set(8)
	row.SetItems(label, field)

	row.Measure(graphics.Size{Width: 300, Height: 40})
	row.Arrange(graphics.Size{Width: 300, Height: 40})
	// Output: field width: 212
}

// This example shows card stack selection and its observable counter.
func ExampleCardStack() {
	stack := widgets.NewCardStack()
	stack.SetItems(nil)

	fmt.Println(stack.CounterText())
	// Output: 1 / 0
}
