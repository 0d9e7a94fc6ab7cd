package engine

import (
	"math"

	"github.com/lixenwraith/teatime/constants"
	"github.com/lixenwraith/teatime/vmath"
)

// BubbleState is the run state of a single bubble
type BubbleState uint8

const (
	BubbleActive BubbleState = iota
	BubblePaused
)

// String returns the persisted name of the state
func (s BubbleState) String() string {
	if s == BubblePaused {
		return "off"
	}
	return "on"
}

// Toggled returns the opposite state
func (s BubbleState) Toggled() BubbleState {
	if s == BubblePaused {
		return BubbleActive
	}
	return BubblePaused
}

// Mode is the global run/pause mode of the session
type Mode uint8

const (
	ModeRun Mode = iota
	ModePause
)

// String returns a lowercase mode name
func (m Mode) String() string {
	if m == ModePause {
		return "pause"
	}
	return "run"
}

// Bubble is a countdown circle
// T runs from TM down through zero into overshoot and the bubble is destroyed at -TM
type Bubble struct {
	X, Y  float64
	R     float64
	State BubbleState
	T     float64 // remaining ms, signed
	TM    float64 // total ms
}

// BaseDuration maps a radius to its unscaled countdown in milliseconds
func BaseDuration(r float64) float64 {
	return constants.MsPerRadiusUnit * r
}

// NewBubble creates an active bubble with a full countdown
func NewBubble(center vmath.Point, r, multiplier float64) Bubble {
	tm := BaseDuration(r) * multiplier
	return Bubble{
		X:     center.X,
		Y:     center.Y,
		R:     r,
		State: BubbleActive,
		T:     tm,
		TM:    tm,
	}
}

// Center returns the bubble center
func (b Bubble) Center() vmath.Point {
	return vmath.Point{X: b.X, Y: b.Y}
}

// Contains reports whether p lies strictly inside the bubble
func (b Bubble) Contains(p vmath.Point) bool {
	return vmath.Distance(b.Center(), p) < b.R
}

// Expired reports whether the bubble is in overshoot
func (b Bubble) Expired() bool {
	return b.T < 0
}

// Ratio returns T/TM in (-1, 1]
func (b Bubble) Ratio() float64 {
	return b.T / b.TM
}

// Multiplier recovers the duration multiplier chosen at creation
func (b Bubble) Multiplier() float64 {
	return b.TM / BaseDuration(b.R)
}

// Valid reports whether the bubble satisfies the model invariants
func (b Bubble) Valid() bool {
	for _, v := range []float64{b.X, b.Y, b.R, b.T, b.TM} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	if b.State != BubbleActive && b.State != BubblePaused {
		return false
	}
	return b.R > 0 && b.TM > 0 && b.T > -b.TM && b.T <= b.TM
}

// topmostAt returns the highest index bubble containing p, or -1
func topmostAt(bubbles []Bubble, p vmath.Point) int {
	for i := len(bubbles) - 1; i >= 0; i-- {
		if bubbles[i].Contains(p) {
			return i
		}
	}
	return -1
}

// countExpired returns the number of bubbles in overshoot
func countExpired(bubbles []Bubble) int {
	n := 0
	for i := range bubbles {
		if bubbles[i].Expired() {
			n++
		}
	}
	return n
}
