package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Cell is one composited terminal cell
type Cell struct {
	Rune rune
	Fg   colorful.Color
	Bg   colorful.Color
	Bold bool
}

// Buffer is a compositor over a grid of cells, flushed to a tcell screen
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a buffer with the specified dimensions
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *Buffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
}

// Size returns buffer dimensions
func (b *Buffer) Size() (int, int) {
	return b.width, b.height
}

// Fill resets every cell to a blank with the given background
func (b *Buffer) Fill(bg colorful.Color) {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Rune: ' ', Bg: bg, Fg: bg}
	// Exponential copy
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at (x, y), zero value when out of bounds
func (b *Buffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// SetBg replaces the background of a cell
func (b *Buffer) SetBg(x, y int, bg colorful.Color) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x].Bg = bg
}

// BlendBg composites bg over the current background with the given opacity
func (b *Buffer) BlendBg(x, y int, bg colorful.Color, alpha float64) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Bg = dst.Bg.BlendRgb(bg, alpha)
}

// SetRune sets glyph and foreground, keeping the background
func (b *Buffer) SetRune(x, y int, r rune, fg colorful.Color, bold bool) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Rune = r
	dst.Fg = fg
	dst.Bold = bold
}

// SetString writes text left to right from (x, y), clipped to the buffer
func (b *Buffer) SetString(x, y int, s string, fg colorful.Color, bold bool) int {
	n := 0
	for _, r := range s {
		b.SetRune(x+n, y, r, fg, bold)
		n++
	}
	return n
}

// SetStringBg writes text with an explicit background
func (b *Buffer) SetStringBg(x, y int, s string, fg, bg colorful.Color, bold bool) int {
	n := 0
	for _, r := range s {
		b.SetBg(x+n, y, bg)
		b.SetRune(x+n, y, r, fg, bold)
		n++
	}
	return n
}

// Flush copies the buffer to the screen
func (b *Buffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		row := b.cells[y*b.width : (y+1)*b.width]
		for x, c := range row {
			style := tcell.StyleDefault.Foreground(ToTcell(c.Fg)).Background(ToTcell(c.Bg)).Bold(c.Bold)
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			screen.SetContent(x, y, r, nil, style)
		}
	}
}
