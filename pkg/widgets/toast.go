package widgets

import (
	"time"

	"github.com/go-aura/aura/pkg/graphics"
	"github.com/go-aura/aura/pkg/layout"
	"github.com/go-aura/aura/pkg/theme"
)

// Toast is a transient notification with a severity accent and an
// auto-dismiss deadline.
type Toast struct {
	// Message is the toast body.
	Message string
	// Severity selects the accent stripe. Defaults to info.
	Severity Severity
	// Duration overrides the auto-dismiss delay. Zero keeps the theme delay;
	// negative disables auto-dismiss.
	Duration time.Duration
	// OnDismiss is called when the toast is dismissed, by timeout or by tap.
	OnDismiss func()
}

// ToastOf creates an info toast with the given message.
func ToastOf(message string) Toast {
	return Toast{Message: message}
}

// WithSeverity returns a copy of the toast with the specified severity.
func (t Toast) WithSeverity(severity Severity) Toast {
	t.Severity = severity
	return t
}

// WithDuration returns a copy of the toast with the specified dismiss delay.
func (t Toast) WithDuration(d time.Duration) Toast {
	t.Duration = d
	return t
}

// ToastStyle is the resolved visual state the host renders.
type ToastStyle struct {
	BackgroundColor graphics.Color
	TextColor       graphics.Color
	AccentColor     graphics.Color
	Padding         layout.EdgeInsets
	BorderRadius    float64
	// DismissAfter is the auto-dismiss delay; zero means the toast stays
	// until dismissed explicitly.
	DismissAfter time.Duration
}

// Resolve merges the toast's explicit properties with the theme defaults.
func (t Toast) Resolve(th *theme.ThemeData) ToastStyle {
	toastTheme := th.ToastThemeOf()

	dismiss := toastTheme.DismissAfter
	switch {
	case t.Duration > 0:
		dismiss = t.Duration
	case t.Duration < 0:
		dismiss = 0
	}

	return ToastStyle{
		BackgroundColor: toastTheme.BackgroundColor,
		TextColor:       toastTheme.ForegroundColor,
		AccentColor: severityColor(t.Severity,
			toastTheme.InfoColor, toastTheme.SuccessColor,
			toastTheme.WarningColor, toastTheme.ErrorColor),
		Padding:      toastTheme.Padding,
		BorderRadius: toastTheme.BorderRadius,
		DismissAfter: dismiss,
	}
}
