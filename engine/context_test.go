package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/teatime/vmath"
)

func newTestContext(store Store) (*Context, *recordingChimer, *ManualTime) {
	chimer := &recordingChimer{}
	mock := NewManualTime(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	ctx := NewContext(ContextConfig{
		Chimer:        chimer,
		Store:         store,
		ChimeResource: "bell",
		TimeProvider:  mock,
	})
	return ctx, chimer, mock
}

func TestContextReplay(t *testing.T) {
	ctx, chimer, mock := newTestContext(nil)

	ctx.Gestures.Down(vmath.Point{X: 0, Y: 0}, false)
	ctx.Gestures.Move(vmath.Point{X: 0, Y: 10})
	ctx.Gestures.Up(vmath.Point{X: 0, Y: 10}, false)

	// 10 radius units = 10s; first tick is zero
	ctx.Tick()
	for i := 0; i < 11; i++ {
		mock.Advance(time.Second)
		ctx.Tick()
	}

	b, ok := ctx.Session.Bubble(0)
	if !ok {
		t.Fatal("Expected bubble in overshoot")
	}
	if b.T != -1000 {
		t.Errorf("Expected t=-1000, got %v", b.T)
	}
	if len(chimer.requests) != 1 {
		t.Errorf("Expected one chime, got %d", len(chimer.requests))
	}

	mock.Advance(9 * time.Second)
	ctx.Tick()
	if ctx.Session.Len() != 0 {
		t.Error("Expected bubble destroyed after full overshoot")
	}
}

func TestContextLoadAndSave(t *testing.T) {
	store := &memoryStore{loaded: []Bubble{
		{X: 5, Y: 5, R: 2, State: BubbleActive, T: 1500, TM: 2000},
	}}
	ctx, _, mock := newTestContext(store)

	if n := ctx.Load(); n != 1 {
		t.Fatalf("Expected 1 restored bubble, got %d", n)
	}
	if ctx.Session.Mode() != ModePause {
		t.Error("Expected pause after restoring bubbles")
	}

	mock.Advance(time.Second)
	ctx.Tick()
	b, _ := ctx.Session.Bubble(0)
	if b.T != 1500 {
		t.Errorf("Expected no ticking while paused, got t=%v", b.T)
	}

	ctx.ToggleMode()
	mock.Advance(500 * time.Millisecond)
	ctx.Tick()
	b, _ = ctx.Session.Bubble(0)
	if b.T != 1000 {
		t.Errorf("Expected t=1000 after resume, got %v", b.T)
	}

	if !ctx.Save() {
		t.Fatal("Expected save to reach the store")
	}
	if len(store.saved) != 1 || store.saved[0][0].T != 1000 {
		t.Errorf("Expected saved copy with t=1000, got %+v", store.saved)
	}
}

func TestContextWithoutStore(t *testing.T) {
	ctx, _, _ := newTestContext(nil)
	if ctx.Load() != 0 {
		t.Error("Expected nothing loaded without a store")
	}
	if ctx.Save() {
		t.Error("Expected save to report false without a store")
	}
}
