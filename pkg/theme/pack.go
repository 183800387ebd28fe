package theme

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-aura/aura/pkg/graphics"
)

// Version is the toolkit version theme packs are checked against.
const Version = "v0.4.0"

// Pack is the on-disk YAML form of a theme: a named palette plus a
// compatibility gate. Colors may be hex literals (#RRGGBB or #AARRGGBB) or
// SVG 1.1 color names; omitted entries keep the defaults for the pack's
// brightness.
//
//	name: nord
//	version: v1.2.0
//	minVersion: v0.3.0
//	brightness: dark
//	colors:
//	  primary: "#88c0d0"
//	  surface: "#3b4252"
//	  warning: goldenrod
type Pack struct {
	Name       string            `yaml:"name"`
	Version    string            `yaml:"version,omitempty"`
	MinVersion string            `yaml:"minVersion,omitempty"`
	Brightness string            `yaml:"brightness,omitempty"`
	Colors     map[string]string `yaml:"colors,omitempty"`
}

// LoadPack reads a theme pack file and resolves it into ThemeData.
func LoadPack(path string) (*ThemeData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme pack: %w", err)
	}
	return ParsePack(data)
}

// ParsePack parses YAML theme pack bytes and resolves them into ThemeData.
func ParsePack(data []byte) (*ThemeData, error) {
	var pack Pack
	if err := yaml.Unmarshal(data, &pack); err != nil {
		return nil, fmt.Errorf("failed to parse theme pack: %w", err)
	}
	return pack.Resolve()
}

// Resolve validates the pack and produces ThemeData with its overrides
// applied over the defaults for the declared brightness.
func (p Pack) Resolve() (*ThemeData, error) {
	if strings.TrimSpace(p.Name) == "" {
		return nil, errors.New("theme pack has no name")
	}
	if p.Version != "" && !semver.IsValid(p.Version) {
		return nil, fmt.Errorf("theme pack %q: invalid version %q", p.Name, p.Version)
	}
	if p.MinVersion != "" {
		if !semver.IsValid(p.MinVersion) {
			return nil, fmt.Errorf("theme pack %q: invalid minVersion %q", p.Name, p.MinVersion)
		}
		if semver.Compare(Version, p.MinVersion) < 0 {
			return nil, fmt.Errorf("theme pack %q requires toolkit %s or newer, have %s", p.Name, p.MinVersion, Version)
		}
	}

	base := DefaultLightTheme()
	switch strings.ToLower(strings.TrimSpace(p.Brightness)) {
	case "", "light":
	case "dark":
		base = DefaultDarkTheme()
	default:
		return nil, fmt.Errorf("theme pack %q: unknown brightness %q", p.Name, p.Brightness)
	}

	scheme := base.ColorScheme
	slots := map[string]*graphics.Color{
		"primary":      &scheme.Primary,
		"onPrimary":    &scheme.OnPrimary,
		"secondary":    &scheme.Secondary,
		"onSecondary":  &scheme.OnSecondary,
		"background":   &scheme.Background,
		"onBackground": &scheme.OnBackground,
		"surface":      &scheme.Surface,
		"onSurface":    &scheme.OnSurface,
		"outline":      &scheme.Outline,
		"error":        &scheme.Error,
		"onError":      &scheme.OnError,
		"success":      &scheme.Success,
		"warning":      &scheme.Warning,
		"info":         &scheme.Info,
	}
	for key, value := range p.Colors {
		slot, ok := slots[key]
		if !ok {
			return nil, fmt.Errorf("theme pack %q: unknown color slot %q", p.Name, key)
		}
		color, err := ParseColor(value)
		if err != nil {
			return nil, fmt.Errorf("theme pack %q: color %q: %w", p.Name, key, err)
		}
		*slot = color
	}

	base.ColorScheme = scheme
	return base, nil
}

// ParseColor parses a hex color literal (#RRGGBB or #AARRGGBB) or an SVG 1.1
// color name into an ARGB Color.
func ParseColor(value string) (graphics.Color, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, errors.New("empty color value")
	}

	if hex, ok := strings.CutPrefix(value, "#"); ok {
		parsed, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid hex color %q", value)
		}
		switch len(hex) {
		case 6:
			return graphics.Color(0xFF000000 | uint32(parsed)), nil
		case 8:
			return graphics.Color(uint32(parsed)), nil
		default:
			return 0, fmt.Errorf("hex color %q must have 6 or 8 digits", value)
		}
	}

	if named, ok := colornames.Map[strings.ToLower(value)]; ok {
		return graphics.RGBA8(named.R, named.G, named.B, named.A), nil
	}
	return 0, fmt.Errorf("unknown color name %q", value)
}
