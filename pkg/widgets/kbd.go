package widgets

import (
	"strings"

	"github.com/go-aura/aura/pkg/graphics"
	"github.com/go-aura/aura/pkg/layout"
	"github.com/go-aura/aura/pkg/theme"
)

// Kbd renders a keyboard shortcut as a row of key caps.
type Kbd struct {
	// Keys are the individual key labels, e.g. "Ctrl", "Shift", "P".
	Keys []string
}

// KbdOf creates a key hint from a "+"-separated shortcut string.
func KbdOf(shortcut string) Kbd {
	parts := strings.Split(shortcut, "+")
	keys := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			keys = append(keys, trimmed)
		}
	}
	return Kbd{Keys: keys}
}

// KbdStyle is the resolved visual state the host renders.
type KbdStyle struct {
	BackgroundColor graphics.Color
	TextColor       graphics.Color
	BorderColor     graphics.Color
	FontSize        float64
	Padding         layout.EdgeInsets
	BorderRadius    float64
}

// Resolve reads the key cap styling from the theme.
func (k Kbd) Resolve(t *theme.ThemeData) KbdStyle {
	kbdTheme := t.KbdThemeOf()
	return KbdStyle{
		BackgroundColor: kbdTheme.BackgroundColor,
		TextColor:       kbdTheme.ForegroundColor,
		BorderColor:     kbdTheme.BorderColor,
		FontSize:        kbdTheme.FontSize,
		Padding:         kbdTheme.Padding,
		BorderRadius:    kbdTheme.BorderRadius,
	}
}
