package theme

import (
	"strings"
	"testing"

	"github.com/go-aura/aura/pkg/graphics"
)

func TestParsePack_HexAndNamedColors(t *testing.T) {
	data := []byte(`
name: nord
brightness: dark
colors:
  primary: "#88c0d0"
  surface: "#3b4252"
  warning: goldenrod
`)
	resolved, err := ParsePack(data)
	if err != nil {
		t.Fatalf("ParsePack: %v", err)
	}
	if resolved.Brightness != BrightnessDark {
		t.Errorf("brightness = %v, want dark", resolved.Brightness)
	}
	if got := resolved.ColorScheme.Primary; got != graphics.Color(0xFF88C0D0) {
		t.Errorf("primary = %#x, want 0xFF88C0D0", uint32(got))
	}
	if got := resolved.ColorScheme.Surface; got != graphics.Color(0xFF3B4252) {
		t.Errorf("surface = %#x, want 0xFF3B4252", uint32(got))
	}
	// goldenrod is #DAA520 in the SVG 1.1 palette.
	if got := resolved.ColorScheme.Warning; got != graphics.Color(0xFFDAA520) {
		t.Errorf("warning = %#x, want 0xFFDAA520", uint32(got))
	}
	// Untouched slots keep the dark defaults.
	if got := resolved.ColorScheme.Background; got != DarkColorScheme().Background {
		t.Errorf("background = %#x, want dark default", uint32(got))
	}
}

func TestParsePack_DefaultsToLight(t *testing.T) {
	resolved, err := ParsePack([]byte("name: plain"))
	if err != nil {
		t.Fatalf("ParsePack: %v", err)
	}
	if resolved.Brightness != BrightnessLight {
		t.Errorf("brightness = %v, want light", resolved.Brightness)
	}
	if resolved.ColorScheme != LightColorScheme() {
		t.Error("expected untouched light color scheme")
	}
}

func TestPackResolve_Validation(t *testing.T) {
	cases := []struct {
		name    string
		pack    Pack
		wantErr string
	}{
		{"missing name", Pack{}, "no name"},
		{"bad version", Pack{Name: "x", Version: "1.2"}, "invalid version"},
		{"bad minVersion", Pack{Name: "x", MinVersion: "latest"}, "invalid minVersion"},
		{"too new", Pack{Name: "x", MinVersion: "v9.0.0"}, "requires toolkit"},
		{"bad brightness", Pack{Name: "x", Brightness: "dim"}, "unknown brightness"},
		{"unknown slot", Pack{Name: "x", Colors: map[string]string{"accent": "#112233"}}, "unknown color slot"},
		{"bad color", Pack{Name: "x", Colors: map[string]string{"primary": "#12"}}, "6 or 8 digits"},
	}
	for _, c := range cases {
		_, err := c.pack.Resolve()
		if err == nil {
			t.Errorf("%s: expected error", c.name)
			continue
		}
		if !strings.Contains(err.Error(), c.wantErr) {
			t.Errorf("%s: error %q does not mention %q", c.name, err, c.wantErr)
		}
	}
}

func TestPackResolve_MinVersionAtOrBelowToolkitPasses(t *testing.T) {
	pack := Pack{Name: "x", MinVersion: Version}
	if _, err := pack.Resolve(); err != nil {
		t.Errorf("minVersion equal to toolkit version should pass: %v", err)
	}
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want graphics.Color
	}{
		{"#336699", graphics.Color(0xFF336699)},
		{"#80336699", graphics.Color(0x80336699)},
		{"  #336699  ", graphics.Color(0xFF336699)},
		{"steelblue", graphics.Color(0xFF4682B4)},
		{"White", graphics.ColorWhite},
	}
	for _, c := range cases {
		got, err := ParseColor(c.in)
		if err != nil {
			t.Errorf("ParseColor(%q): %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseColor(%q) = %#x, want %#x", c.in, uint32(got), uint32(c.want))
		}
	}

	for _, bad := range []string{"", "#12345", "notacolor"} {
		if _, err := ParseColor(bad); err == nil {
			t.Errorf("ParseColor(%q): expected error", bad)
		}
	}
}

func TestParsePack_MalformedYAML(t *testing.T) {
	if _, err := ParsePack([]byte("name: [unclosed")); err == nil {
		t.Error("expected error for malformed YAML")
	}
}
