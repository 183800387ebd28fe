package theme

import "github.com/go-aura/aura/pkg/graphics"

// ColorScheme defines the palette every component theme derives from.
type ColorScheme struct {
	Primary      graphics.Color
	OnPrimary    graphics.Color
	Secondary    graphics.Color
	OnSecondary  graphics.Color
	Background   graphics.Color
	OnBackground graphics.Color
	Surface      graphics.Color
	OnSurface    graphics.Color
	Outline      graphics.Color
	Error        graphics.Color
	OnError      graphics.Color
	Success      graphics.Color
	Warning      graphics.Color
	Info         graphics.Color
}

// LightColorScheme returns the default light palette.
func LightColorScheme() ColorScheme {
	return ColorScheme{
		Primary:      graphics.RGB(89, 77, 216),
		OnPrimary:    graphics.ColorWhite,
		Secondary:    graphics.RGB(218, 62, 185),
		OnSecondary:  graphics.ColorWhite,
		Background:   graphics.RGB(250, 250, 252),
		OnBackground: graphics.RGB(30, 30, 34),
		Surface:      graphics.ColorWhite,
		OnSurface:    graphics.RGB(30, 30, 34),
		Outline:      graphics.RGB(222, 222, 228),
		Error:        graphics.RGB(229, 70, 70),
		OnError:      graphics.ColorWhite,
		Success:      graphics.RGB(52, 168, 83),
		Warning:      graphics.RGB(237, 162, 0),
		Info:         graphics.RGB(38, 132, 255),
	}
}

// DarkColorScheme returns the default dark palette.
func DarkColorScheme() ColorScheme {
	return ColorScheme{
		Primary:      graphics.RGB(134, 122, 245),
		OnPrimary:    graphics.RGB(20, 20, 24),
		Secondary:    graphics.RGB(233, 105, 203),
		OnSecondary:  graphics.RGB(20, 20, 24),
		Background:   graphics.RGB(22, 22, 26),
		OnBackground: graphics.RGB(236, 236, 240),
		Surface:      graphics.RGB(32, 32, 38),
		OnSurface:    graphics.RGB(236, 236, 240),
		Outline:      graphics.RGB(62, 62, 70),
		Error:        graphics.RGB(240, 96, 96),
		OnError:      graphics.RGB(20, 20, 24),
		Success:      graphics.RGB(87, 187, 114),
		Warning:      graphics.RGB(245, 184, 49),
		Info:         graphics.RGB(93, 164, 255),
	}
}

// ForegroundFor picks a readable foreground for an arbitrary background,
// using the relative luminance midpoint.
func ForegroundFor(background graphics.Color) graphics.Color {
	if background.Luminance() > 0.5 {
		return graphics.ColorBlack
	}
	return graphics.ColorWhite
}
