package storage

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/teatime/engine"
)

// ErrInvalidRecord marks a stored bubble that fails validation
var ErrInvalidRecord = errors.New("invalid bubble record")

// Stored state names
const (
	stateOn  = "on"
	stateOff = "off"
)

// record is the persisted form of a bubble
type record struct {
	X     float64 `json:"x" yaml:"x"`
	Y     float64 `json:"y" yaml:"y"`
	R     float64 `json:"r" yaml:"r"`
	State string  `json:"state" yaml:"state"`
	T     float64 `json:"t" yaml:"t"`
	TM    float64 `json:"tM" yaml:"tM"`
}

func toRecords(bubbles []engine.Bubble) []record {
	recs := make([]record, len(bubbles))
	for i, b := range bubbles {
		recs[i] = record{X: b.X, Y: b.Y, R: b.R, State: b.State.String(), T: b.T, TM: b.TM}
	}
	return recs
}

// toBubbles converts records in order, failing on the first invalid one
func toBubbles(recs []record) ([]engine.Bubble, error) {
	bubbles := make([]engine.Bubble, 0, len(recs))
	for i, r := range recs {
		var state engine.BubbleState
		switch r.State {
		case stateOn:
			state = engine.BubbleActive
		case stateOff:
			state = engine.BubblePaused
		default:
			return nil, fmt.Errorf("record %d: state %q: %w", i, r.State, ErrInvalidRecord)
		}

		b := engine.Bubble{X: r.X, Y: r.Y, R: r.R, State: state, T: r.T, TM: r.TM}
		if !b.Valid() {
			return nil, fmt.Errorf("record %d: %w", i, ErrInvalidRecord)
		}
		bubbles = append(bubbles, b)
	}
	return bubbles, nil
}
