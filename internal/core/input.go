package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone  Action = iota
	ActionLeft         // Left arrow, A - move ship left
	ActionRight        // Right arrow, D - move ship right
	ActionFire         // Space - fire a projectile
	ActionStart        // Enter, P - start a new game while inactive
	ActionBack         // B, Escape - go back to menu
	ActionQuit         // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFire:
		return "Fire"
	case ActionStart:
		return "Start"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// EventKind is the kind of a discrete input event.
type EventKind uint8

const (
	EventQuit EventKind = iota + 1
	EventPointerPress
	EventKeyDown
	EventKeyUp
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventQuit:
		return "quit"
	case EventPointerPress:
		return "pointer-press"
	case EventKeyDown:
		return "key-down"
	case EventKeyUp:
		return "key-up"
	default:
		return "unknown"
	}
}

// InputEvent is one discrete input event. Pointer positions are in screen cells.
type InputEvent struct {
	Kind   EventKind `msgpack:"k"`
	Action Action    `msgpack:"a,omitempty"`
	X      int       `msgpack:"x,omitempty"`
	Y      int       `msgpack:"y,omitempty"`
}

// InputFrame represents the input for a single simulation tick.
// Events keep their arrival order; Actions records which actions went down.
type InputFrame struct {
	Actions map[Action]bool
	Events  []InputEvent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as pressed for this frame and records a key-down event.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
	f.Events = append(f.Events, InputEvent{Kind: EventKeyDown, Action: a})
}

// Release records a key-up event for the action.
func (f *InputFrame) Release(a Action) {
	f.Events = append(f.Events, InputEvent{Kind: EventKeyUp, Action: a})
}

// Press records a pointer press at the given cell.
func (f *InputFrame) Press(x, y int) {
	f.Events = append(f.Events, InputEvent{Kind: EventPointerPress, X: x, Y: y})
}

// Quit records a quit request.
func (f *InputFrame) Quit() {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[ActionQuit] = true
	f.Events = append(f.Events, InputEvent{Kind: EventQuit, Action: ActionQuit})
}

// Apply appends a recorded event, keeping Actions in sync.
func (f *InputFrame) Apply(ev InputEvent) {
	switch ev.Kind {
	case EventKeyDown:
		f.Set(ev.Action)
	case EventQuit:
		f.Quit()
	default:
		f.Events = append(f.Events, ev)
	}
}

// Has returns true if the given action was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Empty reports whether the frame carries no events.
func (f InputFrame) Empty() bool {
	return len(f.Events) == 0
}

// Clear resets all actions and events for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Events = f.Events[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	if len(f.Events) > 0 {
		clone.Events = append([]InputEvent(nil), f.Events...)
	}
	return clone
}
