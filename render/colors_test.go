package render

import (
	"math"
	"testing"

	"github.com/lixenwraith/teatime/engine"
)

func TestHueFromMultiplier(t *testing.T) {
	tests := []struct {
		name string
		mult float64
		want float64
	}{
		{"unscaled", 1, 210},
		{"one turn longer", 4, 180},
		{"half turn longer", 2, 195},
		{"two turns longer", 16, 120},
		{"beyond saturation", 256, 120},
		{"one turn shorter", 0.25, 300},
		{"two turns shorter", 1.0 / 16, 360},
		{"zero", 0, 210},
		{"negative", -3, 210},
		{"nan", math.NaN(), 210},
		{"inf", math.Inf(1), 210},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HueFromMultiplier(tt.mult); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Expected hue %f, got %f", tt.want, got)
			}
		})
	}
}

func TestBackgroundColor(t *testing.T) {
	tests := []struct {
		name     string
		mode     engine.Mode
		count    int
		overshot int
		want     string
	}{
		{"paused wins", engine.ModePause, 0, 0, "#888855"},
		{"paused with bubbles", engine.ModePause, 3, 3, "#888855"},
		{"empty", engine.ModeRun, 0, 0, "#555555"},
		{"all overshot", engine.ModeRun, 2, 2, "#885555"},
		{"some overshot", engine.ModeRun, 2, 1, "#dfdfd0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BackgroundColor(tt.mode, tt.count, tt.overshot).Hex(); got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestBubbleColorSaturation(t *testing.T) {
	b := engine.Bubble{X: 0, Y: 0, R: 10, State: engine.BubbleActive, T: 10000, TM: 10000}
	_, sRun, _ := BubbleColor(b).Hsl()

	b.State = engine.BubblePaused
	_, sPause, _ := BubbleColor(b).Hsl()

	if math.Abs(sRun-0.7) > 0.01 {
		t.Errorf("Expected running saturation 0.7, got %f", sRun)
	}
	if math.Abs(sPause-0.5) > 0.01 {
		t.Errorf("Expected paused saturation 0.5, got %f", sPause)
	}
}

func TestToTcell(t *testing.T) {
	c := ToTcell(mustHex("#102030"))
	r, g, b := c.RGB()
	if r != 0x10 || g != 0x20 || b != 0x30 {
		t.Errorf("Expected (16, 32, 48), got (%d, %d, %d)", r, g, b)
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{FormatSeconds(0), "0:00"},
		{FormatSeconds(59.9), "0:59"},
		{FormatSeconds(60), "1:00"},
		{FormatSeconds(3725), "62:05"},
		{FormatSeconds(math.NaN()), "-:--"},
		{FormatMillis(100000), "1:40"},
		{FormatMillis(-5000), "0:05"},
		{FormatMillis(999), "0:00"},
	}

	for i, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("Case %d: expected %q, got %q", i, tt.want, tt.got)
		}
	}
}

func TestParseColorMode(t *testing.T) {
	if ParseColorMode("256") != ColorMode256 {
		t.Error("Expected 256 mode")
	}
	if ParseColorMode("TrueColor") != ColorModeTrueColor {
		t.Error("Expected truecolor mode")
	}

	t.Setenv("COLORTERM", "truecolor")
	if ParseColorMode("auto") != ColorModeTrueColor {
		t.Error("Expected auto to detect truecolor from COLORTERM")
	}
}
