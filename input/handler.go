package input

import (
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/teatime/engine"
	"github.com/lixenwraith/teatime/vmath"
)

// Audio is the chime control surface driven by input
type Audio interface {
	Unlock()
	ToggleMute() bool
}

// pointerButtons are the buttons that drive gestures; wheel bits are ignored
const pointerButtons = tcell.ButtonPrimary | tcell.ButtonSecondary | tcell.ButtonMiddle

// Handler translates tcell events into session gestures and commands
type Handler struct {
	ctx    *engine.Context
	audio  Audio
	aspect float64

	held       tcell.ButtonMask // buttons down at the last mouse event
	drag       tcell.ButtonMask // button that started the current press
	pressShift bool
	unlocked   bool
}

// NewHandler creates an input handler; audio may be nil
func NewHandler(ctx *engine.Context, audio Audio, aspect float64) *Handler {
	return &Handler{
		ctx:    ctx,
		audio:  audio,
		aspect: aspect,
	}
}

// HandleEvent processes a tcell event and returns false if the app should exit
func (h *Handler) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKeyEvent(ev)
	case *tcell.EventMouse:
		h.handleMouseEvent(ev)
	case *tcell.EventFocus:
		if !ev.Focused {
			h.leave()
		}
	case *tcell.EventResize:
		h.leave()
	}
	return true
}

// handleKeyEvent processes keyboard events
func (h *Handler) handleKeyEvent(ev *tcell.EventKey) bool {
	h.unlock()

	switch ev.Key() {
	case tcell.KeyCtrlQ, tcell.KeyCtrlC:
		return false
	case tcell.KeyEscape:
		h.ctx.Session.SetHelpVisible(false)
		h.leave()
		return true
	case tcell.KeyEnter:
		h.ctx.Save()
		return true
	case tcell.KeyF1:
		h.toggleHelp()
		return true
	case tcell.KeyRune:
	default:
		return true
	}

	switch ev.Rune() {
	case ' ':
		mode := h.ctx.ToggleMode()
		log.Printf("input: mode %s", mode)
	case '?':
		h.toggleHelp()
	case 'm', 'M':
		if h.audio != nil {
			audible := h.audio.ToggleMute()
			log.Printf("input: audio audible=%v", audible)
		}
	case 'q', 'Q':
		return false
	}
	return true
}

func (h *Handler) toggleHelp() {
	h.ctx.Session.SetHelpVisible(!h.ctx.Session.HelpVisible())
}

// handleMouseEvent turns button transitions into Down/Move/Up
// Middle drag moves like alt-drag and right click deletes like shift-click,
// since many terminals swallow modified clicks
func (h *Handler) handleMouseEvent(ev *tcell.EventMouse) {
	col, row := ev.Position()
	p := vmath.CellCenter(col, row, h.aspect)
	buttons := ev.Buttons() & pointerButtons
	mods := ev.Modifiers()

	prev := h.held
	h.held = buttons
	g := h.ctx.Gestures

	switch {
	case prev == 0 && buttons != 0:
		h.unlock()
		switch {
		case buttons&tcell.ButtonPrimary != 0:
			h.drag = tcell.ButtonPrimary
			h.pressShift = mods&tcell.ModShift != 0
			g.Down(p, mods&tcell.ModAlt != 0)
		case buttons&tcell.ButtonMiddle != 0:
			h.drag = tcell.ButtonMiddle
			g.Down(p, true)
		default:
			h.drag = tcell.ButtonSecondary
		}

	case prev != 0 && buttons != 0:
		if h.drag == tcell.ButtonPrimary || h.drag == tcell.ButtonMiddle {
			g.Move(p)
		}

	case prev != 0 && buttons == 0:
		var intent engine.Intent
		switch h.drag {
		case tcell.ButtonPrimary:
			intent = g.Up(p, h.pressShift || mods&tcell.ModShift != 0)
		case tcell.ButtonMiddle:
			intent = g.Up(p, false)
		case tcell.ButtonSecondary:
			g.Down(p, false)
			intent = g.Up(p, true)
		}
		h.drag = 0
		h.pressShift = false
		if intent.Kind != engine.IntentNone {
			log.Printf("input: %s index=%d", intent.Kind, intent.Index)
		}
		h.ctx.Session.HoverAt(p)

	default:
		h.ctx.Session.HoverAt(p)
	}
}

// leave aborts any drag and clears hover
func (h *Handler) leave() {
	h.ctx.Gestures.Leave()
	h.ctx.Session.SetHoveredIndex(-1)
	h.held = 0
	h.drag = 0
	h.pressShift = false
}

// unlock enables audio on the first user gesture
func (h *Handler) unlock() {
	if h.unlocked || h.audio == nil {
		return
	}
	h.unlocked = true
	h.audio.Unlock()
}
