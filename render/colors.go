package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/lixenwraith/teatime/constants"
	"github.com/lixenwraith/teatime/engine"
)

// Board backgrounds
var (
	RgbBackgroundPause    = mustHex("#888855") // Olive while paused
	RgbBackgroundEmpty    = mustHex("#555555") // Dark gray with no bubbles
	RgbBackgroundOvershot = mustHex("#885555") // Dull red when every bubble is overshot
	RgbBackgroundRunning  = mustHex("#DFDFD0") // Paper white
)

// Foreground and chrome colors
var (
	RgbOutline         = mustHex("#000000") // Bubble ring
	RgbOutlineOvershot = mustHex("#888888") // Ring and label once overshot
	RgbLabel           = mustHex("#000000")

	RgbStatusBar   = mustHex("#1A1B26") // Tokyo Night background
	RgbStatusText  = mustHex("#C0CAF5")
	RgbModeRunBg   = mustHex("#87CEFA") // Light sky blue
	RgbModePauseBg = mustHex("#D8D87A")
	RgbModeText    = mustHex("#000000")
	RgbMutedText   = mustHex("#FF7A7A")

	RgbHelpBg     = mustHex("#24283B")
	RgbHelpBorder = mustHex("#7AA2F7")
	RgbHelpText   = mustHex("#FFFFFF")
)

// Hue anchors in degrees
const (
	hueStart   = 210.0 // blue, unscaled
	hueTeal    = 180.0
	hueGreen   = 120.0
	hueMagenta = 300.0
	hueRed     = 360.0
)

// Opacity of the layers drawn over the board
const (
	alphaFill    = 0.7
	alphaDim     = 0.2 * alphaFill
	alphaPreview = 0.8
)

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// HueFromMultiplier maps a duration multiplier to a hue
// Longer durations shift blue to teal to green, shorter ones blue to magenta to red
// Saturates at two turns either way
func HueFromMultiplier(mult float64) float64 {
	if math.IsNaN(mult) || math.IsInf(mult, 0) || mult <= 0 {
		return hueStart
	}
	turns := math.Log2(mult) / 2

	lerp := func(a, b, t float64) float64 { return a + (b-a)*t }

	if turns >= 0 {
		t := math.Min(turns, 2)
		if t <= 1 {
			return lerp(hueStart, hueTeal, t)
		}
		return lerp(hueTeal, hueGreen, t-1)
	}
	t := math.Min(-turns, 2)
	if t <= 1 {
		return lerp(hueStart, hueMagenta, t)
	}
	return lerp(hueMagenta, hueRed, t-1)
}

// BubbleColor returns the fill color for a bubble, less saturated when paused
func BubbleColor(b engine.Bubble) colorful.Color {
	sat := 0.7
	if b.State == engine.BubblePaused {
		sat = 0.5
	}
	return hsl(HueFromMultiplier(b.Multiplier()), sat)
}

// PreviewColor returns the fill color for a create preview
func PreviewColor(mult float64) colorful.Color {
	return hsl(HueFromMultiplier(mult), 0.6)
}

func hsl(hue, sat float64) colorful.Color {
	return colorful.Hsl(math.Mod(hue, 360), sat, 0.5)
}

// BackgroundColor picks the board color from mode and overshoot counts
func BackgroundColor(mode engine.Mode, count, overshot int) colorful.Color {
	switch {
	case mode == engine.ModePause:
		return RgbBackgroundPause
	case count == 0:
		return RgbBackgroundEmpty
	case overshot == count:
		return RgbBackgroundOvershot
	default:
		return RgbBackgroundRunning
	}
}

// ToTcell converts to a terminal RGB color
func ToTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// ModeColor returns the status bar indicator background and text
func ModeColor(mode engine.Mode) (colorful.Color, string) {
	if mode == engine.ModePause {
		return RgbModePauseBg, constants.ModeTextPause
	}
	return RgbModeRunBg, constants.ModeTextRun
}
