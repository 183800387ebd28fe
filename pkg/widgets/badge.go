package widgets

import (
	"github.com/go-aura/aura/pkg/graphics"
	"github.com/go-aura/aura/pkg/theme"
)

// Badge is a small count or status marker attached to another widget.
type Badge struct {
	// Content is the badge text; empty renders a plain dot.
	Content string
	// Color overrides the background. Defaults to the theme primary if zero.
	Color graphics.Color
}

// BadgeOf creates a badge with the given content.
func BadgeOf(content string) Badge {
	return Badge{Content: content}
}

// BadgeStyle is the resolved visual state the host renders.
type BadgeStyle struct {
	BackgroundColor graphics.Color
	TextColor       graphics.Color
	FontSize        float64
	BorderRadius    float64
	Dot             bool
}

// Resolve merges the badge's explicit properties with the theme defaults.
func (b Badge) Resolve(t *theme.ThemeData) BadgeStyle {
	badgeTheme := t.BadgeThemeOf()

	background := b.Color
	textColor := badgeTheme.ForegroundColor
	if background == 0 {
		background = badgeTheme.BackgroundColor
	} else {
		textColor = theme.ForegroundFor(background)
	}

	return BadgeStyle{
		BackgroundColor: background,
		TextColor:       textColor,
		FontSize:        badgeTheme.FontSize,
		BorderRadius:    badgeTheme.BorderRadius,
		Dot:             b.Content == "",
	}
}
