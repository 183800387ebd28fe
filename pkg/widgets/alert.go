package widgets

import (
	"fmt"

	"github.com/go-aura/aura/pkg/graphics"
	"github.com/go-aura/aura/pkg/layout"
	"github.com/go-aura/aura/pkg/theme"
)

// Severity grades alerts and toasts.
type Severity int

const (
	SeverityInfo Severity = iota
	SeveritySuccess
	SeverityWarning
	SeverityError
)

// String returns a human-readable representation of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeveritySuccess:
		return "success"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Alert is an inline message box tinted by severity.
type Alert struct {
	// Title is the bold lead text; optional.
	Title string
	// Message is the alert body.
	Message string
	// Severity selects the tint. Defaults to info.
	Severity Severity
	// OnClose, when set, shows a close affordance.
	OnClose func()
}

// AlertOf creates an info alert with the given message.
func AlertOf(message string) Alert {
	return Alert{Message: message}
}

// WithSeverity returns a copy of the alert with the specified severity.
func (a Alert) WithSeverity(severity Severity) Alert {
	a.Severity = severity
	return a
}

// WithTitle returns a copy of the alert with the specified title.
func (a Alert) WithTitle(title string) Alert {
	a.Title = title
	return a
}

// AlertStyle is the resolved visual state the host renders.
type AlertStyle struct {
	AccentColor     graphics.Color
	BackgroundColor graphics.Color
	Padding         layout.EdgeInsets
	BorderRadius    float64
	Closable        bool
}

// Resolve merges the alert's explicit properties with the theme defaults.
func (a Alert) Resolve(t *theme.ThemeData) AlertStyle {
	alertTheme := t.AlertThemeOf()

	accent := severityColor(a.Severity,
		alertTheme.InfoColor, alertTheme.SuccessColor,
		alertTheme.WarningColor, alertTheme.ErrorColor)

	return AlertStyle{
		AccentColor:     accent,
		BackgroundColor: accent.WithAlpha(alertTheme.TintAlpha),
		Padding:         alertTheme.Padding,
		BorderRadius:    alertTheme.BorderRadius,
		Closable:        a.OnClose != nil,
	}
}

func severityColor(s Severity, info, success, warning, err graphics.Color) graphics.Color {
	switch s {
	case SeveritySuccess:
		return success
	case SeverityWarning:
		return warning
	case SeverityError:
		return err
	default:
		return info
	}
}
