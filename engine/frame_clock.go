package engine

import "time"

// FrameClock converts frame callbacks into millisecond deltas
// The first tick after construction or Reset reports 0 so a restart never jumps
type FrameClock struct {
	tp      TimeProvider
	last    time.Time
	started bool
	frames  uint64
}

// NewFrameClock creates a frame clock; nil uses the monotonic provider
func NewFrameClock(tp TimeProvider) *FrameClock {
	if tp == nil {
		tp = SystemTime{}
	}
	return &FrameClock{tp: tp}
}

// Tick returns milliseconds elapsed since the previous tick
func (c *FrameClock) Tick() float64 {
	now := c.tp.Now()
	c.frames++
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}
	dt := now.Sub(c.last)
	c.last = now
	if dt < 0 {
		return 0
	}
	return float64(dt) / float64(time.Millisecond)
}

// Reset makes the next tick report 0
func (c *FrameClock) Reset() {
	c.started = false
}

// Frames returns the number of ticks taken
func (c *FrameClock) Frames() uint64 {
	return c.frames
}
