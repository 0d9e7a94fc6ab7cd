package vmath

import "math"

// NormalizeAngle reduces a to (-π, π]
// Whole turns are removed in one step so accumulated multi-turn angles stay exact
func NormalizeAngle(a float64) float64 {
	x := a
	if x > Pi || x <= -Pi {
		x -= Tau * math.Floor((x+Pi)/Tau)
	}
	// Floor leaves x in [-π, π) up to rounding; settle the boundaries
	if x <= -Pi {
		x += Tau
	}
	if x > Pi {
		x -= Tau
	}
	return x
}

// AngleFromUpCW returns the angle of p around anchor with 12 o'clock as zero
// Computed as -(atan2(dy, dx) + π/2), normalized to (-π, π]
func AngleFromUpCW(anchor, p Point) float64 {
	theta := Gang(p.X-anchor.X, p.Y-anchor.Y)
	return NormalizeAngle(-(theta + HalfPi))
}

// DurationMultiplier maps an accumulated angle to base^(a/π)
// Half a turn scales by base; callers clamp a
func DurationMultiplier(a, base float64) float64 {
	return math.Pow(base, a/Pi)
}

// ShortestDelta returns the signed minimal rotation from prev to next in (-π, π]
func ShortestDelta(prev, next float64) float64 {
	return NormalizeAngle(next - prev)
}
