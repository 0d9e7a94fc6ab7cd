package engine

import (
	"math"

	"github.com/lixenwraith/teatime/vmath"
)

const eps = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < eps
}

// recordingChimer counts chime requests per resource
type recordingChimer struct {
	requests []string
}

func (r *recordingChimer) RequestChime(resource string) {
	r.requests = append(r.requests, resource)
}

// memoryStore is an in-memory Store
type memoryStore struct {
	loaded []Bubble
	saved  [][]Bubble
}

func (m *memoryStore) Load() []Bubble {
	return m.loaded
}

func (m *memoryStore) Save(bubbles []Bubble) {
	m.saved = append(m.saved, bubbles)
}

// pointAt returns the point whose AngleFromUpCW around anchor is phi
func pointAt(anchor vmath.Point, r, phi float64) vmath.Point {
	theta := -phi - vmath.HalfPi
	x, y := vmath.TransRa(anchor.X, anchor.Y, r, theta)
	return vmath.Point{X: x, Y: y}
}

// rotate drives a create drag around anchor by the given number of turns in steps of π/8
// Negative turns decrease the raw angle
func rotate(g *Gestures, anchor vmath.Point, r, turns float64) {
	step := math.Pi / 8
	n := int(math.Round(math.Abs(turns) * 16))
	dir := 1.0
	if turns < 0 {
		dir = -1
	}
	phi := 0.0
	if gs := g.s.gesture; gs != nil && gs.Create.HasLastAngle {
		phi = gs.Create.LastAngle
	}
	for i := 0; i < n; i++ {
		phi += dir * step
		g.Move(pointAt(anchor, r, phi))
	}
}

// addBubble appends a bubble directly, bypassing gestures
func addBubble(s *Session, x, y, r, t, tm float64, state BubbleState) {
	s.appendBubble(Bubble{X: x, Y: y, R: r, State: state, T: t, TM: tm})
}
