// Package vmath holds the float geometry used by gestures and rendering
package vmath

import "math"

// Angle constants
const (
	Pi     = math.Pi
	HalfPi = Pi / 2
	Tau    = Pi * 2
)

// Radians converts a fraction of a full circle to radians
func Radians(turns float64) float64 { return Tau * turns }

// Square returns x*x
func Square(x float64) float64 { return x * x }

// Clamp limits v to [lo, hi]
// NaN passes through unchanged
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
