package widgets

import (
	"github.com/go-aura/aura/pkg/graphics"
	"github.com/go-aura/aura/pkg/layout"
	"github.com/go-aura/aura/pkg/theme"
)

// Card is a surface container with a border and corner radius. Glass cards
// render with a translucent background so content behind shows through.
type Card struct {
	// Glass enables the translucent background treatment.
	Glass bool
	// Color overrides the background. Defaults to the theme surface if zero.
	Color graphics.Color
	// BorderColor overrides the border. Defaults to the theme outline if zero.
	BorderColor graphics.Color
	// BorderRadius overrides the corner radius. Defaults to the theme radius if zero.
	BorderRadius float64
	// Padding overrides the content padding. Defaults to the theme padding if zero.
	Padding layout.EdgeInsets
}

// CardOf creates an opaque card with theme styling.
func CardOf() Card {
	return Card{}
}

// GlassCardOf creates a translucent card with theme styling.
func GlassCardOf() Card {
	return Card{Glass: true}
}

// CardStyle is the resolved visual state the host renders.
type CardStyle struct {
	BackgroundColor graphics.Color
	BorderColor     graphics.Color
	BorderRadius    float64
	Padding         layout.EdgeInsets
}

// Resolve merges the card's explicit properties with the theme defaults.
func (c Card) Resolve(t *theme.ThemeData) CardStyle {
	cardTheme := t.CardThemeOf()

	background := c.Color
	if background == 0 {
		background = cardTheme.BackgroundColor
	}
	if c.Glass {
		background = background.WithAlpha(cardTheme.GlassOpacity)
	}
	borderColor := c.BorderColor
	if borderColor == 0 {
		borderColor = cardTheme.BorderColor
	}
	borderRadius := c.BorderRadius
	if borderRadius == 0 {
		borderRadius = cardTheme.BorderRadius
	}
	padding := c.Padding
	if padding == (layout.EdgeInsets{}) {
		padding = cardTheme.Padding
	}

	return CardStyle{
		BackgroundColor: background,
		BorderColor:     borderColor,
		BorderRadius:    borderRadius,
		Padding:         padding,
	}
}
