package widgets

import (
	"github.com/go-aura/aura/pkg/graphics"
	"github.com/go-aura/aura/pkg/theme"
)

// Divider is a thin separating rule, horizontal by default.
type Divider struct {
	// Vertical rotates the rule to separate side-by-side content.
	Vertical bool
	// Color overrides the rule color. Defaults to the theme outline if zero.
	Color graphics.Color
	// Indent insets the rule from both ends. Defaults to the theme indent if zero.
	Indent float64
}

// DividerOf creates a horizontal divider with theme styling.
func DividerOf() Divider {
	return Divider{}
}

// DividerStyle is the resolved visual state the host renders.
type DividerStyle struct {
	Color     graphics.Color
	Thickness float64
	Indent    float64
	Vertical  bool
}

// Resolve merges the divider's explicit properties with the theme defaults.
func (d Divider) Resolve(t *theme.ThemeData) DividerStyle {
	dividerTheme := t.DividerThemeOf()

	color := d.Color
	if color == 0 {
		color = dividerTheme.Color
	}
	indent := d.Indent
	if indent == 0 {
		indent = dividerTheme.Indent
	}

	return DividerStyle{
		Color:     color,
		Thickness: dividerTheme.Thickness,
		Indent:    indent,
		Vertical:  d.Vertical,
	}
}
