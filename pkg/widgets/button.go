package widgets

import (
	"fmt"

	"github.com/go-aura/aura/pkg/graphics"
	"github.com/go-aura/aura/pkg/layout"
	"github.com/go-aura/aura/pkg/theme"
)

// ButtonVariant selects how a button's colors are applied.
type ButtonVariant int

const (
	// ButtonFilled paints a solid background (the default).
	ButtonFilled ButtonVariant = iota
	// ButtonOutlined draws only a border, keeping the background transparent.
	ButtonOutlined
	// ButtonText renders the label alone with no background or border.
	ButtonText
)

// String returns a human-readable representation of the button variant.
func (v ButtonVariant) String() string {
	switch v {
	case ButtonFilled:
		return "filled"
	case ButtonOutlined:
		return "outlined"
	case ButtonText:
		return "text"
	default:
		return fmt.Sprintf("ButtonVariant(%d)", int(v))
	}
}

// Button is a tappable button with theme-aware styling.
//
// Button uses colors from the current [theme.ButtonThemeData] by default.
// Override individual properties with the struct fields or the fluent With*
// methods:
//
//	ButtonOf("Submit", handleSubmit).
//	    WithVariant(ButtonOutlined).
//	    WithDisabled(!isValid)
type Button struct {
	// Label is the text displayed on the button.
	Label string
	// OnTap is called when the button is tapped.
	OnTap func()
	// Disabled disables the button when true.
	Disabled bool
	// Variant selects filled, outlined, or text rendering.
	Variant ButtonVariant
	// Color is the background (or accent) color. Defaults to theme primary if zero.
	Color graphics.Color
	// TextColor is the label color. Defaults to the theme foreground if zero.
	TextColor graphics.Color
	// FontSize is the label font size. Defaults to the theme size if zero.
	FontSize float64
	// Padding is the button padding. Defaults to the theme padding if zero.
	Padding layout.EdgeInsets
	// BorderRadius is the corner radius. Defaults to the theme radius if zero.
	BorderRadius float64
}

// ButtonOf creates a filled button with the given label and tap handler.
func ButtonOf(label string, onTap func()) Button {
	return Button{Label: label, OnTap: onTap}
}

// WithVariant returns a copy of the button with the specified variant.
func (b Button) WithVariant(variant ButtonVariant) Button {
	b.Variant = variant
	return b
}

// WithColor returns a copy of the button with the specified background and text colors.
func (b Button) WithColor(bg, text graphics.Color) Button {
	b.Color = bg
	b.TextColor = text
	return b
}

// WithDisabled returns a copy of the button with the specified disabled state.
func (b Button) WithDisabled(disabled bool) Button {
	b.Disabled = disabled
	return b
}

// WithPadding returns a copy of the button with the specified padding.
func (b Button) WithPadding(padding layout.EdgeInsets) Button {
	b.Padding = padding
	return b
}

// ButtonStyle is the resolved visual state the host renders.
type ButtonStyle struct {
	BackgroundColor graphics.Color
	TextColor       graphics.Color
	BorderColor     graphics.Color
	BorderWidth     float64
	FontSize        float64
	Padding         layout.EdgeInsets
	BorderRadius    float64
	Tappable        bool
}

// Resolve merges the button's explicit properties with the theme defaults.
func (b Button) Resolve(t *theme.ThemeData) ButtonStyle {
	buttonTheme := t.ButtonThemeOf()

	accent := b.Color
	if accent == 0 {
		accent = buttonTheme.BackgroundColor
	}
	textColor := b.TextColor
	if textColor == 0 {
		textColor = buttonTheme.ForegroundColor
	}
	padding := b.Padding
	if padding == (layout.EdgeInsets{}) {
		padding = buttonTheme.Padding
	}
	fontSize := b.FontSize
	if fontSize == 0 {
		fontSize = buttonTheme.FontSize
	}
	borderRadius := b.BorderRadius
	if borderRadius == 0 {
		borderRadius = buttonTheme.BorderRadius
	}

	style := ButtonStyle{
		FontSize:     fontSize,
		Padding:      padding,
		BorderRadius: borderRadius,
		Tappable:     !b.Disabled && b.OnTap != nil,
	}

	switch b.Variant {
	case ButtonOutlined:
		style.TextColor = accent
		style.BorderColor = accent
		style.BorderWidth = 1
	case ButtonText:
		style.TextColor = accent
	default:
		style.BackgroundColor = accent
		style.TextColor = textColor
	}

	if b.Disabled {
		if b.Variant == ButtonFilled {
			style.BackgroundColor = buttonTheme.DisabledBackgroundColor
		}
		style.TextColor = buttonTheme.DisabledForegroundColor
		style.BorderColor = buttonTheme.DisabledBackgroundColor
	}

	return style
}
