package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "left", "a":
		return core.ActionLeft, false
	case "right", "d":
		return core.ActionRight, false
	case " ":
		return core.ActionFire, false
	case "enter", "p":
		return core.ActionStart, false
	case "b", "esc":
		return core.ActionBack, false
	}

	return core.ActionNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}

// heldKeys synthesizes key-up events for terminals that only report presses.
// A direction stays down until no repeat has arrived for holdTicks ticks.
type heldKeys struct {
	holdTicks int
	left      map[core.Action]int
}

func newHeldKeys(holdTicks int) *heldKeys {
	return &heldKeys{
		holdTicks: max(holdTicks, 1),
		left:      make(map[core.Action]int),
	}
}

// opposite returns the other horizontal direction, or ActionNone.
func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	}
	return core.ActionNone
}

// Press records a press of a into frame. Repeats of a held direction only
// refresh its hold window; the opposite direction is released at once.
// Non-directional actions pass straight through.
func (h *heldKeys) Press(a core.Action, frame *core.InputFrame) {
	other := opposite(a)
	if other == core.ActionNone {
		frame.Set(a)
		return
	}

	if _, ok := h.left[other]; ok {
		delete(h.left, other)
		frame.Release(other)
	}
	if _, ok := h.left[a]; !ok {
		frame.Set(a)
	}
	h.left[a] = h.holdTicks
}

// Tick ages the held keys by one tick and releases the expired ones into frame.
// Left is released before right so the event order is stable.
func (h *heldKeys) Tick(frame *core.InputFrame) {
	for _, a := range []core.Action{core.ActionLeft, core.ActionRight} {
		n, ok := h.left[a]
		if !ok {
			continue
		}
		n--
		if n <= 0 {
			delete(h.left, a)
			frame.Release(a)
			continue
		}
		h.left[a] = n
	}
}

// Held reports whether a is currently considered down.
func (h *heldKeys) Held(a core.Action) bool {
	_, ok := h.left[a]
	return ok
}
