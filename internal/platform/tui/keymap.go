package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Terminals report key presses and auto-repeats but never releases, so a
// direction stays held for a few ticks after its last key event. The first
// press lasts long enough to bridge the keyboard's repeat delay; repeats only
// need to bridge the repeat interval.
const (
	holdInitialTicks = 30
	holdRepeatTicks  = 6
)

// KeyMapper translates Bubble Tea key messages to game actions and tracks
// which directions are still considered held.
type KeyMapper struct {
	held map[core.Action]int
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{held: make(map[core.Action]int)}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "w", "up":
		return core.ActionUp, false
	case "s", "down":
		return core.ActionDown, false
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case " ", "z":
		return core.ActionJump, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame records a key message in the input frame. Directions also
// start or extend a hold. Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action == core.ActionNone {
		return isQuit
	}
	frame.Set(action)
	if isDirection(action) {
		km.Hold(action)
	}
	return isQuit
}

// Hold marks a direction as held. Pressing a direction releases its
// opposite immediately.
func (km *KeyMapper) Hold(a core.Action) {
	delete(km.held, opposite(a))
	if km.held[a] > 0 {
		km.held[a] = max(km.held[a], holdRepeatTicks)
		return
	}
	km.held[a] = holdInitialTicks
}

// Apply copies the held directions into frame and ages them by one tick.
func (km *KeyMapper) Apply(frame *core.InputFrame) {
	for a, left := range km.held {
		frame.SetHeld(a)
		if left <= 1 {
			delete(km.held, a)
		} else {
			km.held[a] = left - 1
		}
	}
}

// ReleaseAll drops every held direction.
func (km *KeyMapper) ReleaseAll() {
	clear(km.held)
}

func isDirection(a core.Action) bool {
	return a == core.ActionLeft || a == core.ActionRight || a == core.ActionUp || a == core.ActionDown
}

func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	case core.ActionUp:
		return core.ActionDown
	case core.ActionDown:
		return core.ActionUp
	}
	return core.ActionNone
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
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
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
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
