package engine

import "github.com/lixenwraith/teatime/vmath"

// Session is the single owner of bubble and mode state
// All mutation happens on the frame loop goroutine; readers take snapshots
type Session struct {
	mode        Mode
	bubbles     []Bubble
	gesture     *Gesture
	hovered     int
	helpVisible bool
	revision    uint64
}

// Snapshot is a deep copy of session state for renderers
type Snapshot struct {
	Mode        Mode
	Bubbles     []Bubble
	Gesture     *Gesture
	Hovered     int
	HelpVisible bool
	Revision    uint64
}

// NewSession creates an empty running session
func NewSession() *Session {
	return &Session{
		mode:    ModeRun,
		hovered: -1,
	}
}

// Mode returns the current run/pause mode
func (s *Session) Mode() Mode {
	return s.mode
}

// Len returns the number of bubbles
func (s *Session) Len() int {
	return len(s.bubbles)
}

// ExpiredCount returns the number of bubbles in overshoot
func (s *Session) ExpiredCount() int {
	return countExpired(s.bubbles)
}

// Bubbles returns a copy of the bubble collection in z-order
func (s *Session) Bubbles() []Bubble {
	out := make([]Bubble, len(s.bubbles))
	copy(out, s.bubbles)
	return out
}

// Bubble returns the bubble at index i
func (s *Session) Bubble(i int) (Bubble, bool) {
	if i < 0 || i >= len(s.bubbles) {
		return Bubble{}, false
	}
	return s.bubbles[i], true
}

// Gesture returns a copy of the in-progress gesture, nil when idle
func (s *Session) Gesture() *Gesture {
	if s.gesture == nil {
		return nil
	}
	g := *s.gesture
	return &g
}

// HoveredIndex returns the hovered bubble index or -1
func (s *Session) HoveredIndex() int {
	return s.hovered
}

// HelpVisible reports whether the help overlay is shown
func (s *Session) HelpVisible() bool {
	return s.helpVisible
}

// Revision increases on every state change
func (s *Session) Revision() uint64 {
	return s.revision
}

// Snapshot returns a deep copy of the session
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Mode:        s.mode,
		Bubbles:     s.Bubbles(),
		Gesture:     s.Gesture(),
		Hovered:     s.hovered,
		HelpVisible: s.helpVisible,
		Revision:    s.revision,
	}
}

// ToggleMode flips between run and pause
func (s *Session) ToggleMode() Mode {
	if s.mode == ModeRun {
		s.mode = ModePause
	} else {
		s.mode = ModeRun
	}
	s.touch()
	return s.mode
}

// SetHoveredIndex sets the display hint; -1 or out of range clears it
func (s *Session) SetHoveredIndex(i int) {
	if i < 0 || i >= len(s.bubbles) {
		i = -1
	}
	if s.hovered == i {
		return
	}
	s.hovered = i
	s.touch()
}

// HoverAt sets the hover hint to the topmost bubble under p
func (s *Session) HoverAt(p vmath.Point) int {
	s.SetHoveredIndex(topmostAt(s.bubbles, p))
	return s.hovered
}

// SetHelpVisible shows or hides the help overlay
func (s *Session) SetHelpVisible(visible bool) {
	if s.helpVisible == visible {
		return
	}
	s.helpVisible = visible
	s.touch()
}

// Restore replaces the collection with the valid records of a loaded session
// A non-empty restore starts paused so nothing ticks before the user resumes
func (s *Session) Restore(bubbles []Bubble) int {
	restored := make([]Bubble, 0, len(bubbles))
	for _, b := range bubbles {
		if b.Valid() {
			restored = append(restored, b)
		}
	}
	s.bubbles = restored
	s.gesture = nil
	s.hovered = -1
	if len(restored) > 0 {
		s.mode = ModePause
	}
	s.touch()
	return len(restored)
}

// --- Mutators used by Gestures and Simulator ---

func (s *Session) touch() {
	s.revision++
}

func (s *Session) appendBubble(b Bubble) int {
	s.bubbles = append(s.bubbles, b)
	s.touch()
	return len(s.bubbles) - 1
}

// bringToFront moves bubble i to the end of the collection and returns its new index
func (s *Session) bringToFront(i int) int {
	last := len(s.bubbles) - 1
	if i == last {
		return i
	}
	b := s.bubbles[i]
	copy(s.bubbles[i:], s.bubbles[i+1:])
	s.bubbles[last] = b
	if s.hovered == i {
		s.hovered = last
	} else if s.hovered > i {
		s.hovered--
	}
	s.touch()
	return last
}

func (s *Session) removeBubble(i int) {
	s.bubbles = append(s.bubbles[:i], s.bubbles[i+1:]...)
	if s.hovered == i {
		s.hovered = -1
	} else if s.hovered > i {
		s.hovered--
	}
	s.touch()
}

func (s *Session) setBubble(i int, b Bubble) {
	s.bubbles[i] = b
	s.touch()
}

func (s *Session) setGesture(g *Gesture) {
	s.gesture = g
	s.touch()
}

// replaceBubbles installs the post-tick collection
// remap[old] is the new index of a surviving bubble or -1 if it was destroyed
func (s *Session) replaceBubbles(bubbles []Bubble, remap []int) {
	s.bubbles = bubbles
	if s.hovered >= 0 {
		s.hovered = remapIndex(remap, s.hovered)
	}
	if s.gesture != nil && s.gesture.Kind == GestureMove && s.gesture.Move.Index >= 0 {
		s.gesture.Move.Index = remapIndex(remap, s.gesture.Move.Index)
	}
	s.touch()
}

func remapIndex(remap []int, i int) int {
	if i < 0 || i >= len(remap) {
		return -1
	}
	return remap[i]
}
