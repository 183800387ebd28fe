package widgets

import (
	"github.com/go-aura/aura/pkg/graphics"
	"github.com/go-aura/aura/pkg/layout"
	"github.com/go-aura/aura/pkg/theme"
)

// Chip is a compact selectable label, used for filters and tags.
type Chip struct {
	// Label is the chip text.
	Label string
	// Selected renders the chip in its selected colors.
	Selected bool
	// OnTap is called when the chip is tapped.
	OnTap func()
	// OnDelete, when set, shows a trailing delete affordance.
	OnDelete func()
	// Color overrides the selected background. Defaults to theme primary if zero.
	Color graphics.Color
}

// ChipOf creates a chip with the given label.
func ChipOf(label string) Chip {
	return Chip{Label: label}
}

// WithSelected returns a copy of the chip with the specified selection state.
func (c Chip) WithSelected(selected bool) Chip {
	c.Selected = selected
	return c
}

// WithOnTap returns a copy of the chip with the specified tap handler.
func (c Chip) WithOnTap(onTap func()) Chip {
	c.OnTap = onTap
	return c
}

// WithOnDelete returns a copy of the chip with the specified delete handler.
func (c Chip) WithOnDelete(onDelete func()) Chip {
	c.OnDelete = onDelete
	return c
}

// ChipStyle is the resolved visual state the host renders.
type ChipStyle struct {
	BackgroundColor graphics.Color
	TextColor       graphics.Color
	Padding         layout.EdgeInsets
	BorderRadius    float64
	Deletable       bool
}

// Resolve merges the chip's explicit properties with the theme defaults.
func (c Chip) Resolve(t *theme.ThemeData) ChipStyle {
	chipTheme := t.ChipThemeOf()

	style := ChipStyle{
		BackgroundColor: chipTheme.BackgroundColor,
		TextColor:       chipTheme.ForegroundColor,
		Padding:         chipTheme.Padding,
		BorderRadius:    chipTheme.BorderRadius,
		Deletable:       c.OnDelete != nil,
	}
	if c.Selected {
		selected := c.Color
		if selected == 0 {
			selected = chipTheme.SelectedBackgroundColor
			style.TextColor = chipTheme.SelectedForegroundColor
		} else {
			style.TextColor = theme.ForegroundFor(selected)
		}
		style.BackgroundColor = selected
	}
	return style
}
