package engine

import "math"

// Chimer accepts fire-and-forget chime requests
// Implementations must return immediately
type Chimer interface {
	RequestChime(resource string)
}

// Simulator advances bubble countdowns
type Simulator struct {
	s        *Session
	chimer   Chimer
	resource string
}

// NewSimulator creates a simulator over the session
// chimer may be nil to run silently
func NewSimulator(s *Session, chimer Chimer, resource string) *Simulator {
	return &Simulator{
		s:        s,
		chimer:   chimer,
		resource: resource,
	}
}

// Advance moves every active bubble forward by dt milliseconds
// Returns true when the tick pushed at least one more bubble into overshoot, in which case a single chime was requested
func (sim *Simulator) Advance(dt float64) bool {
	if sim.s.mode != ModeRun {
		return false
	}
	if !(dt > 0) || math.IsInf(dt, 0) {
		return false
	}

	before := countExpired(sim.s.bubbles)

	next := make([]Bubble, 0, len(sim.s.bubbles))
	remap := make([]int, len(sim.s.bubbles))
	for i, b := range sim.s.bubbles {
		if b.State == BubbleActive {
			b.T -= dt
			if b.T <= -b.TM {
				remap[i] = -1
				continue
			}
		}
		remap[i] = len(next)
		next = append(next, b)
	}

	after := countExpired(next)
	sim.s.replaceBubbles(next, remap)

	// Level-crossing edge: one chime per tick regardless of how many bubbles crossed
	if after > before {
		if sim.chimer != nil {
			sim.chimer.RequestChime(sim.resource)
		}
		return true
	}
	return false
}
