// Package theme holds the style system that resolves widget properties into
// visuals: a color scheme, per-widget component themes derived from it, and a
// YAML theme-pack loader for shipping palettes as files.
package theme

import "fmt"

// Brightness indicates whether a theme is light or dark.
type Brightness int

const (
	BrightnessLight Brightness = iota
	BrightnessDark
)

// String returns a human-readable representation of the brightness.
func (b Brightness) String() string {
	switch b {
	case BrightnessLight:
		return "light"
	case BrightnessDark:
		return "dark"
	default:
		return fmt.Sprintf("Brightness(%d)", int(b))
	}
}

// ThemeData contains all theme configuration for a widget set.
//
// Component themes are optional; accessors derive them from the ColorScheme
// when unset, so most applications only configure colors.
type ThemeData struct {
	// ColorScheme defines the color palette.
	ColorScheme ColorScheme

	// Brightness indicates if this is a light or dark theme.
	Brightness Brightness

	// Component themes - optional, derived from ColorScheme if nil.
	ButtonTheme    *ButtonThemeData
	CardTheme      *CardThemeData
	BadgeTheme     *BadgeThemeData
	ChipTheme      *ChipThemeData
	AlertTheme     *AlertThemeData
	ProgressTheme  *ProgressThemeData
	AccordionTheme *AccordionThemeData
	StepperTheme   *StepperThemeData
	TimelineTheme  *TimelineThemeData
	ToastTheme     *ToastThemeData
	SkeletonTheme  *SkeletonThemeData
	KbdTheme       *KbdThemeData
	DividerTheme   *DividerThemeData
	CardStackTheme *CardStackThemeData
}

// DefaultLightTheme returns the default light theme.
func DefaultLightTheme() *ThemeData {
	return &ThemeData{
		ColorScheme: LightColorScheme(),
		Brightness:  BrightnessLight,
	}
}

// DefaultDarkTheme returns the default dark theme.
func DefaultDarkTheme() *ThemeData {
	return &ThemeData{
		ColorScheme: DarkColorScheme(),
		Brightness:  BrightnessDark,
	}
}

// CopyWith returns a new ThemeData with the specified fields overridden.
func (t *ThemeData) CopyWith(colorScheme *ColorScheme, brightness *Brightness) *ThemeData {
	result := *t
	if colorScheme != nil {
		result.ColorScheme = *colorScheme
	}
	if brightness != nil {
		result.Brightness = *brightness
	}
	return &result
}

// ButtonThemeOf returns the button theme, deriving from ColorScheme if not set.
func (t *ThemeData) ButtonThemeOf() ButtonThemeData {
	if t.ButtonTheme != nil {
		return *t.ButtonTheme
	}
	return DefaultButtonTheme(t.ColorScheme)
}

// CardThemeOf returns the card theme, deriving from ColorScheme if not set.
func (t *ThemeData) CardThemeOf() CardThemeData {
	if t.CardTheme != nil {
		return *t.CardTheme
	}
	return DefaultCardTheme(t.ColorScheme)
}

// BadgeThemeOf returns the badge theme, deriving from ColorScheme if not set.
func (t *ThemeData) BadgeThemeOf() BadgeThemeData {
	if t.BadgeTheme != nil {
		return *t.BadgeTheme
	}
	return DefaultBadgeTheme(t.ColorScheme)
}

// ChipThemeOf returns the chip theme, deriving from ColorScheme if not set.
func (t *ThemeData) ChipThemeOf() ChipThemeData {
	if t.ChipTheme != nil {
		return *t.ChipTheme
	}
	return DefaultChipTheme(t.ColorScheme)
}

// AlertThemeOf returns the alert theme, deriving from ColorScheme if not set.
func (t *ThemeData) AlertThemeOf() AlertThemeData {
	if t.AlertTheme != nil {
		return *t.AlertTheme
	}
	return DefaultAlertTheme(t.ColorScheme)
}

// ProgressThemeOf returns the progress theme, deriving from ColorScheme if not set.
func (t *ThemeData) ProgressThemeOf() ProgressThemeData {
	if t.ProgressTheme != nil {
		return *t.ProgressTheme
	}
	return DefaultProgressTheme(t.ColorScheme)
}

// AccordionThemeOf returns the accordion theme, deriving from ColorScheme if not set.
func (t *ThemeData) AccordionThemeOf() AccordionThemeData {
	if t.AccordionTheme != nil {
		return *t.AccordionTheme
	}
	return DefaultAccordionTheme(t.ColorScheme)
}

// StepperThemeOf returns the stepper theme, deriving from ColorScheme if not set.
func (t *ThemeData) StepperThemeOf() StepperThemeData {
	if t.StepperTheme != nil {
		return *t.StepperTheme
	}
	return DefaultStepperTheme(t.ColorScheme)
}

// TimelineThemeOf returns the timeline theme, deriving from ColorScheme if not set.
func (t *ThemeData) TimelineThemeOf() TimelineThemeData {
	if t.TimelineTheme != nil {
		return *t.TimelineTheme
	}
	return DefaultTimelineTheme(t.ColorScheme)
}

// ToastThemeOf returns the toast theme, deriving from ColorScheme if not set.
func (t *ThemeData) ToastThemeOf() ToastThemeData {
	if t.ToastTheme != nil {
		return *t.ToastTheme
	}
	return DefaultToastTheme(t.ColorScheme)
}

// SkeletonThemeOf returns the skeleton theme, deriving from ColorScheme if not set.
func (t *ThemeData) SkeletonThemeOf() SkeletonThemeData {
	if t.SkeletonTheme != nil {
		return *t.SkeletonTheme
	}
	return DefaultSkeletonTheme(t.ColorScheme)
}

// KbdThemeOf returns the kbd theme, deriving from ColorScheme if not set.
func (t *ThemeData) KbdThemeOf() KbdThemeData {
	if t.KbdTheme != nil {
		return *t.KbdTheme
	}
	return DefaultKbdTheme(t.ColorScheme)
}

// DividerThemeOf returns the divider theme, deriving from ColorScheme if not set.
func (t *ThemeData) DividerThemeOf() DividerThemeData {
	if t.DividerTheme != nil {
		return *t.DividerTheme
	}
	return DefaultDividerTheme(t.ColorScheme)
}

// CardStackThemeOf returns the card stack theme, deriving from ColorScheme if not set.
func (t *ThemeData) CardStackThemeOf() CardStackThemeData {
	if t.CardStackTheme != nil {
		return *t.CardStackTheme
	}
	return DefaultCardStackTheme(t.ColorScheme)
}
