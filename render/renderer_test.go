package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/teatime/constants"
	"github.com/lixenwraith/teatime/engine"
	"github.com/lixenwraith/teatime/vmath"
)

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)
	return screen
}

// rowText returns the runes of a buffer row
func rowText(b *Buffer, y int) string {
	w, _ := b.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		r := b.Get(x, y).Rune
		if r == 0 {
			r = ' '
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func TestRenderEmptyBoard(t *testing.T) {
	screen := newTestScreen(t)
	r := NewRenderer(screen, 2)

	r.Render(engine.Snapshot{Mode: engine.ModeRun, Hovered: -1}, Status{})

	if got := r.Buffer().Get(5, 5).Bg.Hex(); got != "#555555" {
		t.Errorf("Expected empty background #555555, got %s", got)
	}

	_, _, style, _ := screen.GetContent(5, 5)
	_, bg, _ := style.Decompose()
	if bg != ToTcell(RgbBackgroundEmpty) {
		t.Errorf("Expected screen background %v, got %v", ToTcell(RgbBackgroundEmpty), bg)
	}

	status := rowText(r.Buffer(), 23)
	if !strings.HasPrefix(status, constants.ModeTextRun) {
		t.Errorf("Expected status bar to start with run indicator, got %q", status)
	}
	if !strings.Contains(status, "0 bubbles, 0 overshot") {
		t.Errorf("Expected bubble counts in status bar, got %q", status)
	}
	if !strings.Contains(status, constants.HelpHint) {
		t.Errorf("Expected help hint in status bar, got %q", status)
	}
}

func TestRenderBubbleSector(t *testing.T) {
	screen := newTestScreen(t)
	r := NewRenderer(screen, 2)

	// Half remaining: the sector covers the left half of the disc
	b := engine.Bubble{X: 40, Y: 24, R: 10, State: engine.BubbleActive, T: 5000, TM: 10000}
	r.Render(engine.Snapshot{Mode: engine.ModeRun, Bubbles: []engine.Bubble{b}, Hovered: -1}, Status{})

	bg := RgbBackgroundRunning.Hex()
	left := r.Buffer().Get(35, 12).Bg
	right := r.Buffer().Get(44, 12).Bg
	outside := r.Buffer().Get(2, 2).Bg

	if outside.Hex() != bg {
		t.Errorf("Expected board background %s, got %s", bg, outside.Hex())
	}
	if left.Hex() == bg || right.Hex() == bg {
		t.Fatal("Expected both halves of the disc to be tinted")
	}
	if left.Hex() == right.Hex() {
		t.Error("Expected remaining sector to differ from the dim elapsed part")
	}

	// Ring glyph at the rightmost extent of the circle
	if got := r.Buffer().Get(49, 12).Rune; got != ringRunning {
		t.Errorf("Expected ring glyph %q, got %q", ringRunning, got)
	}
}

func TestRenderPausedRingBold(t *testing.T) {
	screen := newTestScreen(t)
	r := NewRenderer(screen, 2)

	b := engine.Bubble{X: 40, Y: 24, R: 10, State: engine.BubblePaused, T: 10000, TM: 10000}
	r.Render(engine.Snapshot{Mode: engine.ModePause, Bubbles: []engine.Bubble{b}, Hovered: -1}, Status{})

	c := r.Buffer().Get(49, 12)
	if c.Rune != ringPaused || !c.Bold {
		t.Errorf("Expected bold paused ring, got %q bold=%v", c.Rune, c.Bold)
	}
	if !strings.HasPrefix(rowText(r.Buffer(), 23), constants.ModeTextPause) {
		t.Error("Expected pause indicator in status bar")
	}
}

func TestRenderOvershotBubble(t *testing.T) {
	screen := newTestScreen(t)
	r := NewRenderer(screen, 2)

	b := engine.Bubble{X: 40, Y: 24, R: 10, State: engine.BubbleActive, T: -2500, TM: 10000}
	r.Render(engine.Snapshot{Mode: engine.ModeRun, Bubbles: []engine.Bubble{b}, Hovered: 0}, Status{})

	if got := r.Buffer().Get(5, 5).Bg.Hex(); got != "#885555" {
		t.Errorf("Expected all-overshot background #885555, got %s", got)
	}

	ring := r.Buffer().Get(49, 12)
	if ring.Fg.Hex() != RgbOutlineOvershot.Hex() {
		t.Errorf("Expected grey ring, got %s", ring.Fg.Hex())
	}

	// Hover label shows elapsed overshoot, centered on the bubble
	row := rowText(r.Buffer(), 12)
	if !strings.Contains(row, "0:02") {
		t.Errorf("Expected hover label 0:02, got %q", row)
	}
	if !strings.Contains(rowText(r.Buffer(), 23), "1 bubbles, 1 overshot") {
		t.Error("Expected overshot count in status bar")
	}
}

func TestRenderCreatePreview(t *testing.T) {
	screen := newTestScreen(t)
	r := NewRenderer(screen, 2)

	g := &engine.Gesture{
		Kind: engine.GestureCreate,
		Create: engine.CreateDrag{
			Anchor:     vmath.Point{X: 40, Y: 24},
			Stop:       vmath.Point{X: 40, Y: 36},
			HasStop:    true,
			Multiplier: 4,
		},
	}
	r.Render(engine.Snapshot{Mode: engine.ModeRun, Gesture: g, Hovered: -1}, Status{})

	// r=12 at 4x is 48 seconds
	if row := rowText(r.Buffer(), 12); !strings.Contains(row, "0:48") {
		t.Errorf("Expected preview label 0:48, got %q", row)
	}
	if r.Buffer().Get(36, 10).Bg.Hex() == RgbBackgroundEmpty.Hex() {
		t.Error("Expected preview disc to tint the board")
	}
}

func TestRenderPreviewBelowMinRadius(t *testing.T) {
	screen := newTestScreen(t)
	r := NewRenderer(screen, 2)

	g := &engine.Gesture{
		Kind: engine.GestureCreate,
		Create: engine.CreateDrag{
			Anchor:     vmath.Point{X: 40, Y: 24},
			Stop:       vmath.Point{X: 40 + constants.MinRadius, Y: 24},
			HasStop:    true,
			Multiplier: 1,
		},
	}
	r.Render(engine.Snapshot{Mode: engine.ModeRun, Gesture: g, Hovered: -1}, Status{})

	if got := r.Buffer().Get(40, 12).Bg.Hex(); got != RgbBackgroundEmpty.Hex() {
		t.Errorf("Expected no preview at the minimum radius, got %s", got)
	}
}

func TestRenderHelpAndMuted(t *testing.T) {
	screen := newTestScreen(t)
	r := NewRenderer(screen, 2)

	r.Render(engine.Snapshot{Mode: engine.ModeRun, Hovered: -1, HelpVisible: true}, Status{Muted: true})

	found := false
	for y := 0; y < 23; y++ {
		if strings.Contains(rowText(r.Buffer(), y), constants.HelpLines[0]) {
			found = true
			break
		}
	}
	if !found {
		t.Error("Expected help overlay text")
	}
	if !strings.Contains(rowText(r.Buffer(), 23), constants.MutedMarker) {
		t.Error("Expected muted marker in status bar")
	}
}

func TestRenderResize(t *testing.T) {
	screen := newTestScreen(t)
	r := NewRenderer(screen, 2)
	r.Render(engine.Snapshot{Hovered: -1}, Status{})

	screen.SetSize(40, 10)
	r.Render(engine.Snapshot{Hovered: -1}, Status{})

	if w, h := r.Buffer().Size(); w != 40 || h != 10 {
		t.Errorf("Expected 40x10 buffer, got %dx%d", w, h)
	}
	if r.BoardRows() != 9 {
		t.Errorf("Expected 9 board rows, got %d", r.BoardRows())
	}
}
