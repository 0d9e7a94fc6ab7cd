package engine

import (
	"sync"
	"time"
)

// TimeProvider supplies the current time to the frame clock
type TimeProvider interface {
	Now() time.Time
}

// SystemTime reads the wall clock; time.Now carries a monotonic reading
type SystemTime struct{}

func (SystemTime) Now() time.Time { return time.Now() }

// ManualTime is a hand-stepped clock for tests and frame replays
type ManualTime struct {
	mu  sync.RWMutex
	now time.Time
}

func NewManualTime(start time.Time) *ManualTime {
	return &ManualTime{now: start}
}

func (m *ManualTime) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// Set jumps to t, which may lie before the current reading
func (m *ManualTime) Set(t time.Time) {
	m.mu.Lock()
	m.now = t
	m.mu.Unlock()
}

func (m *ManualTime) Advance(d time.Duration) {
	m.mu.Lock()
	m.now = m.now.Add(d)
	m.mu.Unlock()
}

// AdvanceMs steps by a fractional number of milliseconds
func (m *ManualTime) AdvanceMs(ms float64) {
	m.Advance(time.Duration(ms * float64(time.Millisecond)))
}
