package engine

import "log"

// Store is the persistence collaborator
// Load degrades to an empty slice; Save returns immediately
type Store interface {
	Load() []Bubble
	Save(bubbles []Bubble)
}

// ContextConfig carries the collaborators wired into a Context
type ContextConfig struct {
	Chimer        Chimer       // nil runs silently
	Store         Store        // nil disables load/save
	ChimeResource string       // resource passed with every chime request
	TimeProvider  TimeProvider // nil uses the monotonic clock
}

// Context is the process-scoped owner of session state and its collaborators
// Constructed once at start-up and driven from the frame loop goroutine
type Context struct {
	Session   *Session
	Gestures  *Gestures
	Simulator *Simulator
	Clock     *FrameClock

	store Store
}

// NewContext creates a context with an empty running session
func NewContext(cfg ContextConfig) *Context {
	session := NewSession()
	return &Context{
		Session:   session,
		Gestures:  NewGestures(session),
		Simulator: NewSimulator(session, cfg.Chimer, cfg.ChimeResource),
		Clock:     NewFrameClock(cfg.TimeProvider),
		store:     cfg.Store,
	}
}

// Load restores the persisted collection
// Any restored bubble forces pause mode
func (c *Context) Load() int {
	if c.store == nil {
		return 0
	}
	n := c.Session.Restore(c.store.Load())
	c.Clock.Reset()
	log.Printf("session: restored %d bubble(s), mode=%s", n, c.Session.Mode())
	return n
}

// Save hands a copy of the collection to the store
func (c *Context) Save() bool {
	if c.store == nil {
		return false
	}
	bubbles := c.Session.Bubbles()
	c.store.Save(bubbles)
	log.Printf("session: saved %d bubble(s)", len(bubbles))
	return true
}

// Tick is the frame entry point: reads the clock and advances the simulation
func (c *Context) Tick() bool {
	return c.Simulator.Advance(c.Clock.Tick())
}

// ToggleMode flips run/pause
func (c *Context) ToggleMode() Mode {
	return c.Session.ToggleMode()
}
