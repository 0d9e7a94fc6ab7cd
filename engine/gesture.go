package engine

import (
	"github.com/lixenwraith/teatime/constants"
	"github.com/lixenwraith/teatime/vmath"
)

// GestureKind discriminates the in-progress drag
type GestureKind uint8

const (
	GestureCreate GestureKind = iota
	GestureMove
)

// CreateDrag tracks a create gesture anchored at the future bubble center
type CreateDrag struct {
	Anchor vmath.Point
	Stop   vmath.Point
	// HasStop is false until the first move after pointer-down
	HasStop bool

	Angle        float64 // latest wrapped angle around the anchor
	LastAngle    float64
	HasLastAngle bool

	// AccumulatedAngle is the unwrapped sum of per-move deltas, unclamped
	AccumulatedAngle float64
	Multiplier       float64
}

// Radius returns the radius the bubble would have if released at the stop point
func (c CreateDrag) Radius() float64 {
	if !c.HasStop {
		return 0
	}
	return vmath.Distance(c.Anchor, c.Stop)
}

// MoveDrag tracks an alt-drag of an existing bubble
type MoveDrag struct {
	Index  int // -1 once the bubble is gone
	Offset vmath.Point
}

// Gesture is the transient drag descriptor owned by Gestures
type Gesture struct {
	Kind   GestureKind
	Create CreateDrag
	Move   MoveDrag
}

// GestureState is the state of the gesture machine
type GestureState uint8

const (
	GestureIdle GestureState = iota
	GestureDraggingCreate
	GestureDraggingMove
)

// IntentKind classifies the effect of a pointer event
type IntentKind uint8

const (
	IntentNone IntentKind = iota
	IntentCreateBegin
	IntentCreateUpdate
	IntentCreate
	IntentMoveBegin
	IntentMove
	IntentMoveEnd
	IntentToggle
	IntentDelete
	IntentAbort
)

var intentNames = [...]string{
	IntentNone:         "none",
	IntentCreateBegin:  "create-begin",
	IntentCreateUpdate: "create-update",
	IntentCreate:       "create",
	IntentMoveBegin:    "move-begin",
	IntentMove:         "move",
	IntentMoveEnd:      "move-end",
	IntentToggle:       "toggle",
	IntentDelete:       "delete",
	IntentAbort:        "abort",
}

// String returns the intent name
func (k IntentKind) String() string {
	if int(k) < len(intentNames) {
		return intentNames[k]
	}
	return "unknown"
}

// Intent reports what a pointer event did to the session
type Intent struct {
	Kind  IntentKind
	Index int // affected bubble index, -1 when not applicable
}

func noIntent() Intent {
	return Intent{Kind: IntentNone, Index: -1}
}

// Gestures turns pointer events into session mutations
type Gestures struct {
	s *Session
}

// NewGestures creates a gesture machine over the session
func NewGestures(s *Session) *Gestures {
	return &Gestures{s: s}
}

// State returns the current machine state
func (g *Gestures) State() GestureState {
	switch {
	case g.s.gesture == nil:
		return GestureIdle
	case g.s.gesture.Kind == GestureMove:
		return GestureDraggingMove
	default:
		return GestureDraggingCreate
	}
}

// Down starts a gesture
// With alt held over a bubble the bubble is raised to the top and dragged, otherwise a create drag begins
func (g *Gestures) Down(p vmath.Point, alt bool) Intent {
	if alt {
		if idx := topmostAt(g.s.bubbles, p); idx >= 0 {
			idx = g.s.bringToFront(idx)
			b := g.s.bubbles[idx]
			g.s.setGesture(&Gesture{
				Kind: GestureMove,
				Move: MoveDrag{
					Index:  idx,
					Offset: p.Sub(b.Center()),
				},
			})
			return Intent{Kind: IntentMoveBegin, Index: idx}
		}
	}

	g.s.setGesture(&Gesture{
		Kind: GestureCreate,
		Create: CreateDrag{
			Anchor:     p,
			Multiplier: 1,
		},
	})
	return Intent{Kind: IntentCreateBegin, Index: -1}
}

// Move updates the in-progress gesture
func (g *Gestures) Move(p vmath.Point) Intent {
	gs := g.s.gesture
	if gs == nil {
		return noIntent()
	}

	if gs.Kind == GestureMove {
		idx := gs.Move.Index
		b, ok := g.s.Bubble(idx)
		if !ok {
			return noIntent()
		}
		c := p.Sub(gs.Move.Offset)
		b.X, b.Y = c.X, c.Y
		g.s.setBubble(idx, b)
		return Intent{Kind: IntentMove, Index: idx}
	}

	cd := gs.Create
	angle := vmath.AngleFromUpCW(cd.Anchor, p)
	acc := cd.AccumulatedAngle
	if cd.HasLastAngle {
		// Summing minimal per-move deltas keeps multi-turn rotation across the ±π wrap
		acc += vmath.ShortestDelta(cd.LastAngle, angle)
	} else {
		acc = 0
	}
	clamped := vmath.Clamp(acc, -constants.MaxAccumulatedAngle, constants.MaxAccumulatedAngle)

	cd.Stop = p
	cd.HasStop = true
	cd.Angle = angle
	cd.LastAngle = angle
	cd.HasLastAngle = true
	cd.AccumulatedAngle = acc
	cd.Multiplier = vmath.DurationMultiplier(-clamped, constants.MultiplierBase)

	gs.Create = cd
	g.s.touch()
	return Intent{Kind: IntentCreateUpdate, Index: -1}
}

// Up completes the gesture and returns the machine to idle
// A create drag longer than MinRadius commits a bubble, a shorter one is a click on the topmost bubble
func (g *Gestures) Up(p vmath.Point, shift bool) Intent {
	gs := g.s.gesture
	if gs == nil {
		return noIntent()
	}
	g.s.setGesture(nil)

	if gs.Kind == GestureMove {
		return Intent{Kind: IntentMoveEnd, Index: gs.Move.Index}
	}

	cd := gs.Create
	r := vmath.Distance(cd.Anchor, p)
	if r > constants.MinRadius {
		idx := g.s.appendBubble(NewBubble(cd.Anchor, r, cd.Multiplier))
		return Intent{Kind: IntentCreate, Index: idx}
	}

	return g.click(p, shift)
}

// Leave aborts any in-progress gesture without touching bubbles
func (g *Gestures) Leave() Intent {
	if g.s.gesture == nil {
		return noIntent()
	}
	g.s.setGesture(nil)
	return Intent{Kind: IntentAbort, Index: -1}
}

// click deletes (shift) or toggles the topmost bubble under p
func (g *Gestures) click(p vmath.Point, shift bool) Intent {
	idx := topmostAt(g.s.bubbles, p)
	if idx < 0 {
		return noIntent()
	}
	if shift {
		g.s.removeBubble(idx)
		return Intent{Kind: IntentDelete, Index: idx}
	}
	b := g.s.bubbles[idx]
	b.State = b.State.Toggled()
	g.s.setBubble(idx, b)
	return Intent{Kind: IntentToggle, Index: idx}
}
