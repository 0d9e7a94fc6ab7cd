package render

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/lixenwraith/teatime/constants"
	"github.com/lixenwraith/teatime/engine"
	"github.com/lixenwraith/teatime/vmath"
)

// Outline glyphs
const (
	ringRunning = '·'
	ringPaused  = '•'
)

// Status carries non-session state shown in the status bar
type Status struct {
	Muted bool
}

// Renderer draws session snapshots onto a tcell screen
type Renderer struct {
	screen tcell.Screen
	buf    *Buffer
	aspect float64
}

// NewRenderer creates a renderer for the given cell aspect ratio
func NewRenderer(screen tcell.Screen, aspect float64) *Renderer {
	if !(aspect > 0) {
		aspect = constants.DefaultCellAspect
	}
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		buf:    NewBuffer(w, h),
		aspect: aspect,
	}
}

// Aspect returns the world units per row
func (r *Renderer) Aspect() float64 {
	return r.aspect
}

// Buffer exposes the last composited frame
func (r *Renderer) Buffer() *Buffer {
	return r.buf
}

// BoardRows returns the number of rows available to bubbles
func (r *Renderer) BoardRows() int {
	_, h := r.buf.Size()
	rows := h - constants.StatusBarHeight
	if rows < 0 {
		return 0
	}
	return rows
}

// Render composites and shows one frame
func (r *Renderer) Render(snap engine.Snapshot, st Status) {
	w, h := r.screen.Size()
	r.buf.Resize(w, h)

	overshot := 0
	for i := range snap.Bubbles {
		if snap.Bubbles[i].Expired() {
			overshot++
		}
	}
	r.buf.Fill(BackgroundColor(snap.Mode, len(snap.Bubbles), overshot))

	for i := range snap.Bubbles {
		r.drawBubble(snap.Bubbles[i])
	}

	if g := snap.Gesture; g != nil && g.Kind == engine.GestureCreate {
		r.drawPreview(g.Create)
	}

	if snap.Hovered >= 0 && snap.Hovered < len(snap.Bubbles) {
		b := snap.Bubbles[snap.Hovered]
		fg := RgbLabel
		if b.Expired() {
			fg = RgbOutlineOvershot
		}
		r.drawLabel(b.Center(), FormatMillis(b.T), fg)
	}

	r.drawStatusBar(snap, overshot, st)

	if snap.HelpVisible {
		r.drawHelp()
	}

	r.buf.Flush(r.screen)
	r.screen.Show()
}

// forEachCell visits board cells overlapping a circle's bounding box
func (r *Renderer) forEachCell(c vmath.Point, radius float64, fn func(col, row int, p vmath.Point)) {
	w, _ := r.buf.Size()
	rows := r.BoardRows()

	minCol, minRow, maxCol, maxRow := vmath.CellSpan(c, radius, r.aspect)
	minCol = max(minCol, 0)
	minRow = max(minRow, 0)
	maxCol = min(maxCol, w-1)
	maxRow = min(maxRow, rows-1)

	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			fn(col, row, vmath.CellCenter(col, row, r.aspect))
		}
	}
}

// drawBubble fills the remaining sector and outlines the disc
func (r *Renderer) drawBubble(b engine.Bubble) {
	ratio := b.Ratio()
	if !(ratio > -1) {
		return
	}
	center := b.Center()
	color := BubbleColor(b)

	var ghost float64
	if ratio <= 0 {
		ghost = 1 - math.Min(1, math.Max(0, -ratio))
	}

	ringColor := RgbOutline
	if ratio <= 0 {
		ringColor = RgbOutlineOvershot
	}
	paused := b.State == engine.BubblePaused
	glyph := ringRunning
	if paused {
		glyph = ringPaused
	}

	r.forEachCell(center, b.R, func(col, row int, p vmath.Point) {
		if b.Contains(p) {
			switch {
			case ratio >= 1:
				r.buf.BlendBg(col, row, color, alphaFill)
			case ratio > 0:
				r.buf.BlendBg(col, row, color, alphaDim)
				if vmath.SectorContains(center, p, ratio) {
					r.buf.BlendBg(col, row, color, alphaFill)
				}
			default:
				if vmath.SectorContains(center, p, ghost) {
					r.buf.BlendBg(col, row, color, alphaDim)
				}
			}
		}
		if vmath.CircleCrossesCell(center, b.R, col, row, r.aspect) {
			r.buf.SetRune(col, row, glyph, ringColor, paused)
		}
	})
}

// drawPreview shows the bubble a create drag would release
func (r *Renderer) drawPreview(c engine.CreateDrag) {
	radius := c.Radius()
	if !(radius > constants.MinRadius) {
		return
	}
	color := PreviewColor(c.Multiplier)

	r.forEachCell(c.Anchor, radius, func(col, row int, p vmath.Point) {
		if vmath.Distance(c.Anchor, p) < radius {
			r.buf.BlendBg(col, row, color, alphaPreview)
		}
	})

	r.drawLabel(c.Anchor, FormatSeconds(radius*c.Multiplier), RgbLabel)
}

// drawLabel centers text on the cell containing p
func (r *Renderer) drawLabel(p vmath.Point, text string, fg colorful.Color) {
	col, row := vmath.CellOf(p, r.aspect)
	if row < 0 || row >= r.BoardRows() {
		return
	}
	x := col - utf8.RuneCountInString(text)/2
	r.buf.SetString(x, row, text, fg, true)
}

func (r *Renderer) drawStatusBar(snap engine.Snapshot, overshot int, st Status) {
	w, h := r.buf.Size()
	y := h - constants.StatusBarHeight
	if y < 0 {
		return
	}

	for x := 0; x < w; x++ {
		r.buf.SetBg(x, y, RgbStatusBar)
		r.buf.SetRune(x, y, ' ', RgbStatusText, false)
	}

	modeBg, modeText := ModeColor(snap.Mode)
	x := r.buf.SetStringBg(0, y, modeText, RgbModeText, modeBg, true)

	x += r.buf.SetString(x, y, fmt.Sprintf(" %d bubbles, %d overshot ", len(snap.Bubbles), overshot), RgbStatusText, false)

	if st.Muted {
		r.buf.SetString(x, y, constants.MutedMarker, RgbMutedText, true)
	}

	hint := constants.HelpHint
	r.buf.SetString(w-utf8.RuneCountInString(hint)-1, y, hint, RgbStatusText, false)
}

// drawHelp draws a centered bordered box listing the controls
func (r *Renderer) drawHelp() {
	w, _ := r.buf.Size()
	rows := r.BoardRows()

	lines := make([]string, 0, len(constants.HelpLines)+2)
	lines = append(lines, constants.HelpLines...)
	lines = append(lines, "", constants.HelpFooter)

	inner := 0
	for _, l := range lines {
		inner = max(inner, utf8.RuneCountInString(l))
	}
	boxW := inner + 4
	boxH := len(lines) + 2
	x0 := (w - boxW) / 2
	y0 := (rows - boxH) / 2

	for y := y0; y < y0+boxH; y++ {
		for x := x0; x < x0+boxW; x++ {
			r.buf.SetBg(x, y, RgbHelpBg)
			var glyph rune = ' '
			switch {
			case (x == x0 || x == x0+boxW-1) && (y == y0 || y == y0+boxH-1):
				glyph = cornerRune(x == x0, y == y0)
			case y == y0 || y == y0+boxH-1:
				glyph = '─'
			case x == x0 || x == x0+boxW-1:
				glyph = '│'
			}
			r.buf.SetRune(x, y, glyph, RgbHelpBorder, false)
		}
	}

	for i, l := range lines {
		r.buf.SetString(x0+2, y0+1+i, l, RgbHelpText, i == len(lines)-1)
	}
}

func cornerRune(left, top bool) rune {
	switch {
	case left && top:
		return '┌'
	case top:
		return '┐'
	case left:
		return '└'
	default:
		return '┘'
	}
}
