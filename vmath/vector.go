package vmath

import "math"

// Point is a position in world units (x right, y down)
type Point struct {
	X, Y float64
}

// Sub returns p - q
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Add returns p + q
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Distance returns the Euclidean distance between two points
func Distance(p1, p2 Point) float64 {
	return math.Hypot(p2.X-p1.X, p2.Y-p1.Y)
}

// Mag returns vector length
func Mag(x, y float64) float64 { return math.Hypot(x, y) }

// Gang returns the standard angle of a vector, CCW from +x in math orientation
func Gang(x, y float64) float64 { return math.Atan2(y, x) }

// RaToXy converts polar (r, a) to cartesian
func RaToXy(r, a float64) (x, y float64) {
	return r * math.Cos(a), r * math.Sin(a)
}

// XyToRa converts cartesian to polar (r, a)
func XyToRa(x, y float64) (r, a float64) {
	return Mag(x, y), Gang(x, y)
}

// TransXy translates (x, y) by (dx, dy)
func TransXy(x, y, dx, dy float64) (float64, float64) {
	return x + dx, y + dy
}

// TransRa translates (x, y) by a polar offset
func TransRa(x, y, r, a float64) (float64, float64) {
	dx, dy := RaToXy(r, a)
	return TransXy(x, y, dx, dy)
}
