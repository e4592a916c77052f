package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow
	ActionDown           // S, Down arrow
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionJump           // Space - jump or fire
	ActionConfirm        // Enter
	ActionBack           // B, Escape
	ActionRestart        // R
	ActionQuit           // Q, Ctrl+C
	ActionPause          // P
)

var actionNames = map[Action]string{
	ActionNone:    "None",
	ActionUp:      "Up",
	ActionDown:    "Down",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionJump:    "Jump",
	ActionConfirm: "Confirm",
	ActionBack:    "Back",
	ActionRestart: "Restart",
	ActionQuit:    "Quit",
	ActionPause:   "Pause",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// InputFrame is the input state for one simulation tick.
//
// Terminals deliver key presses but no key releases, so the platform keeps a
// short-lived "held" set for movement keys alongside the presses that
// arrived during this tick.
type InputFrame struct {
	// Actions holds the actions pressed during this tick.
	Actions map[Action]bool
	// Held holds the actions still considered held down.
	Held map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
}

// Set marks an action as pressed this tick.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// SetHeld marks an action as held down.
func (f *InputFrame) SetHeld(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// Pressed reports whether the action was pressed during this tick.
func (f InputFrame) Pressed(a Action) bool {
	return f.Actions[a]
}

// Has reports whether the action was pressed this tick or is held.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a] || f.Held[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	clear(f.Held)
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	for k, v := range f.Held {
		clone.Held[k] = v
	}
	return clone
}

// Axis returns -1, 0 or 1 for a pair of opposing actions.
func (f InputFrame) Axis(neg, pos Action) float64 {
	switch {
	case f.Has(neg) && !f.Has(pos):
		return -1
	case f.Has(pos) && !f.Has(neg):
		return 1
	default:
		return 0
	}
}
