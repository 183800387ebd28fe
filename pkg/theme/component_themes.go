package theme

import (
	"time"

	"github.com/go-aura/aura/pkg/graphics"
	"github.com/go-aura/aura/pkg/layout"
)

// ButtonThemeData styles buttons.
type ButtonThemeData struct {
	BackgroundColor         graphics.Color
	ForegroundColor         graphics.Color
	OutlineColor            graphics.Color
	DisabledBackgroundColor graphics.Color
	DisabledForegroundColor graphics.Color
	Padding                 layout.EdgeInsets
	FontSize                float64
	BorderRadius            float64
}

// DefaultButtonTheme derives the button theme from a color scheme.
func DefaultButtonTheme(colors ColorScheme) ButtonThemeData {
	return ButtonThemeData{
		BackgroundColor:         colors.Primary,
		ForegroundColor:         colors.OnPrimary,
		OutlineColor:            colors.Outline,
		DisabledBackgroundColor: colors.Outline,
		DisabledForegroundColor: colors.OnSurface.WithAlpha(0.4),
		Padding:                 layout.EdgeInsetsSymmetric(24, 14),
		FontSize:                16,
		BorderRadius:            8,
	}
}

// CardThemeData styles cards and glass cards.
type CardThemeData struct {
	BackgroundColor graphics.Color
	BorderColor     graphics.Color
	BorderRadius    float64
	Padding         layout.EdgeInsets
	GlassOpacity    float64
}

// DefaultCardTheme derives the card theme from a color scheme.
func DefaultCardTheme(colors ColorScheme) CardThemeData {
	return CardThemeData{
		BackgroundColor: colors.Surface,
		BorderColor:     colors.Outline,
		BorderRadius:    12,
		Padding:         layout.EdgeInsetsAll(16),
		GlassOpacity:    0.85,
	}
}

// BadgeThemeData styles badges.
type BadgeThemeData struct {
	BackgroundColor graphics.Color
	ForegroundColor graphics.Color
	FontSize        float64
	Padding         layout.EdgeInsets
	BorderRadius    float64
}

// DefaultBadgeTheme derives the badge theme from a color scheme.
func DefaultBadgeTheme(colors ColorScheme) BadgeThemeData {
	return BadgeThemeData{
		BackgroundColor: colors.Primary,
		ForegroundColor: colors.OnPrimary,
		FontSize:        11,
		Padding:         layout.EdgeInsetsSymmetric(6, 2),
		BorderRadius:    999,
	}
}

// ChipThemeData styles chips.
type ChipThemeData struct {
	BackgroundColor         graphics.Color
	ForegroundColor         graphics.Color
	SelectedBackgroundColor graphics.Color
	SelectedForegroundColor graphics.Color
	Padding                 layout.EdgeInsets
	BorderRadius            float64
}

// DefaultChipTheme derives the chip theme from a color scheme.
func DefaultChipTheme(colors ColorScheme) ChipThemeData {
	return ChipThemeData{
		BackgroundColor:         colors.Surface,
		ForegroundColor:         colors.OnSurface,
		SelectedBackgroundColor: colors.Primary,
		SelectedForegroundColor: colors.OnPrimary,
		Padding:                 layout.EdgeInsetsSymmetric(12, 6),
		BorderRadius:            16,
	}
}

// AlertThemeData styles inline alerts.
type AlertThemeData struct {
	SuccessColor graphics.Color
	WarningColor graphics.Color
	ErrorColor   graphics.Color
	InfoColor    graphics.Color
	Padding      layout.EdgeInsets
	BorderRadius float64
	TintAlpha    float64
}

// DefaultAlertTheme derives the alert theme from a color scheme.
func DefaultAlertTheme(colors ColorScheme) AlertThemeData {
	return AlertThemeData{
		SuccessColor: colors.Success,
		WarningColor: colors.Warning,
		ErrorColor:   colors.Error,
		InfoColor:    colors.Info,
		Padding:      layout.EdgeInsetsAll(12),
		BorderRadius: 8,
		TintAlpha:    0.12,
	}
}

// ProgressThemeData styles linear and circular progress indicators.
type ProgressThemeData struct {
	TrackColor  graphics.Color
	FillColor   graphics.Color
	TrackHeight float64
	StrokeWidth float64
}

// DefaultProgressTheme derives the progress theme from a color scheme.
func DefaultProgressTheme(colors ColorScheme) ProgressThemeData {
	return ProgressThemeData{
		TrackColor:  colors.Outline,
		FillColor:   colors.Primary,
		TrackHeight: 6,
		StrokeWidth: 4,
	}
}

// AccordionThemeData styles accordion headers and bodies.
type AccordionThemeData struct {
	HeaderColor     graphics.Color
	HeaderTextColor graphics.Color
	BodyColor       graphics.Color
	DividerColor    graphics.Color
	HeaderPadding   layout.EdgeInsets
	BodyPadding     layout.EdgeInsets
	ExpandDuration  time.Duration
}

// DefaultAccordionTheme derives the accordion theme from a color scheme.
func DefaultAccordionTheme(colors ColorScheme) AccordionThemeData {
	return AccordionThemeData{
		HeaderColor:     colors.Surface,
		HeaderTextColor: colors.OnSurface,
		BodyColor:       colors.Background,
		DividerColor:    colors.Outline,
		HeaderPadding:   layout.EdgeInsetsSymmetric(16, 12),
		BodyPadding:     layout.EdgeInsetsAll(16),
		ExpandDuration:  200 * time.Millisecond,
	}
}

// StepperThemeData styles steppers.
type StepperThemeData struct {
	ActiveColor    graphics.Color
	CompletedColor graphics.Color
	InactiveColor  graphics.Color
	LabelColor     graphics.Color
	ConnectorWidth float64
	MarkerSize     float64
}

// DefaultStepperTheme derives the stepper theme from a color scheme.
func DefaultStepperTheme(colors ColorScheme) StepperThemeData {
	return StepperThemeData{
		ActiveColor:    colors.Primary,
		CompletedColor: colors.Success,
		InactiveColor:  colors.Outline,
		LabelColor:     colors.OnBackground,
		ConnectorWidth: 2,
		MarkerSize:     28,
	}
}

// TimelineThemeData styles timelines.
type TimelineThemeData struct {
	LineColor   graphics.Color
	DotColor    graphics.Color
	ActiveColor graphics.Color
	LineWidth   float64
	DotSize     float64
	ItemSpacing float64
}

// DefaultTimelineTheme derives the timeline theme from a color scheme.
func DefaultTimelineTheme(colors ColorScheme) TimelineThemeData {
	return TimelineThemeData{
		LineColor:   colors.Outline,
		DotColor:    colors.Outline,
		ActiveColor: colors.Primary,
		LineWidth:   2,
		DotSize:     10,
		ItemSpacing: 16,
	}
}

// ToastThemeData styles toast notifications.
type ToastThemeData struct {
	BackgroundColor graphics.Color
	ForegroundColor graphics.Color
	SuccessColor    graphics.Color
	WarningColor    graphics.Color
	ErrorColor      graphics.Color
	InfoColor       graphics.Color
	Padding         layout.EdgeInsets
	BorderRadius    float64
	DismissAfter    time.Duration
}

// DefaultToastTheme derives the toast theme from a color scheme.
func DefaultToastTheme(colors ColorScheme) ToastThemeData {
	return ToastThemeData{
		BackgroundColor: colors.Surface,
		ForegroundColor: colors.OnSurface,
		SuccessColor:    colors.Success,
		WarningColor:    colors.Warning,
		ErrorColor:      colors.Error,
		InfoColor:       colors.Info,
		Padding:         layout.EdgeInsetsSymmetric(16, 12),
		BorderRadius:    8,
		DismissAfter:    4 * time.Second,
	}
}

// SkeletonThemeData styles loading skeletons.
type SkeletonThemeData struct {
	BaseColor      graphics.Color
	HighlightColor graphics.Color
	BorderRadius   float64
	ShimmerPeriod  time.Duration
}

// DefaultSkeletonTheme derives the skeleton theme from a color scheme.
func DefaultSkeletonTheme(colors ColorScheme) SkeletonThemeData {
	return SkeletonThemeData{
		BaseColor:      colors.Outline.WithAlpha(0.5),
		HighlightColor: colors.Outline,
		BorderRadius:   4,
		ShimmerPeriod:  1200 * time.Millisecond,
	}
}

// KbdThemeData styles keyboard-key hints.
type KbdThemeData struct {
	BackgroundColor graphics.Color
	ForegroundColor graphics.Color
	BorderColor     graphics.Color
	FontSize        float64
	Padding         layout.EdgeInsets
	BorderRadius    float64
}

// DefaultKbdTheme derives the kbd theme from a color scheme.
func DefaultKbdTheme(colors ColorScheme) KbdThemeData {
	return KbdThemeData{
		BackgroundColor: colors.Surface,
		ForegroundColor: colors.OnSurface,
		BorderColor:     colors.Outline,
		FontSize:        12,
		Padding:         layout.EdgeInsetsSymmetric(6, 2),
		BorderRadius:    4,
	}
}

// DividerThemeData styles dividers.
type DividerThemeData struct {
	Color     graphics.Color
	Thickness float64
	Indent    float64
}

// DefaultDividerTheme derives the divider theme from a color scheme.
func DefaultDividerTheme(colors ColorScheme) DividerThemeData {
	return DividerThemeData{
		Color:     colors.Outline,
		Thickness: 1,
	}
}

// CardStackThemeData styles the card-stack control.
type CardStackThemeData struct {
	CounterColor       graphics.Color
	ControlColor       graphics.Color
	RestOpacity        float64
	TransitionDuration time.Duration
}

// DefaultCardStackTheme derives the card stack theme from a color scheme.
func DefaultCardStackTheme(colors ColorScheme) CardStackThemeData {
	return CardStackThemeData{
		CounterColor:       colors.OnBackground,
		ControlColor:       colors.Primary,
		RestOpacity:        0.5,
		TransitionDuration: 300 * time.Millisecond,
	}
}
