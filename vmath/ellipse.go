package vmath

import "math"

// Terminal cells are taller than wide; world y is row scaled by the cell aspect
// so a world circle shows up as an ellipse of r columns by r/aspect rows

// CellCenter returns the world point at the middle of a cell
func CellCenter(col, row int, aspect float64) Point {
	return Point{X: float64(col) + 0.5, Y: (float64(row) + 0.5) * aspect}
}

// CellOf returns the cell containing a world point
func CellOf(p Point, aspect float64) (col, row int) {
	return int(math.Floor(p.X)), int(math.Floor(p.Y / aspect))
}

// CellSpan returns the inclusive cell range covering a circle's bounding box
func CellSpan(c Point, r, aspect float64) (minCol, minRow, maxCol, maxRow int) {
	minCol, minRow = CellOf(Point{X: c.X - r, Y: c.Y - r}, aspect)
	maxCol, maxRow = CellOf(Point{X: c.X + r, Y: c.Y + r}, aspect)
	return
}

// CircleCrossesCell reports whether a circle boundary passes through a cell
func CircleCrossesCell(c Point, r float64, col, row int, aspect float64) bool {
	x0, x1 := float64(col), float64(col+1)
	y0, y1 := float64(row)*aspect, float64(row+1)*aspect

	near := Distance(c, Point{X: Clamp(c.X, x0, x1), Y: Clamp(c.Y, y0, y1)})
	fx := math.Max(math.Abs(c.X-x0), math.Abs(c.X-x1))
	fy := math.Max(math.Abs(c.Y-y0), math.Abs(c.Y-y1))
	far := Mag(fx, fy)

	return near <= r && r <= far
}

// SectorContains reports whether p lies in the sector of fraction f of a full turn
// anchored at 12 o'clock and sweeping toward 9 o'clock
func SectorContains(c, p Point, f float64) bool {
	if f >= 1 {
		return true
	}
	if !(f > 0) {
		return false
	}
	a := AngleFromUpCW(c, p)
	if a < 0 {
		a += Tau
	}
	return a <= f*Tau
}
