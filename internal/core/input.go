package core

import "slices"

// Action represents a semantic game action, abstracted from physical key presses.
// Gameplay actions are decoded from held keys by per-player keybinding tables;
// platform actions (pause, restart, ...) are set directly by the host.
type Action int

const (
	ActionNone Action = iota

	// Gameplay actions.
	ActionMoveLeft
	ActionMoveRight
	ActionRotateCW
	ActionRotateCCW
	ActionSoftDrop
	ActionHardDrop
	ActionSwap

	// Platform actions.
	ActionConfirm // Enter - confirm selection in menu
	ActionBack    // Esc - go back to menu
	ActionRestart // R - restart game after game over
	ActionQuit    // Ctrl+C - exit game/session
	ActionPause   // P - pause/unpause game
)

var actionNames = map[Action]string{
	ActionNone:      "None",
	ActionMoveLeft:  "MoveLeft",
	ActionMoveRight: "MoveRight",
	ActionRotateCW:  "RotateCW",
	ActionRotateCCW: "RotateCCW",
	ActionSoftDrop:  "SoftDrop",
	ActionHardDrop:  "HardDrop",
	ActionSwap:      "Swap",
	ActionConfirm:   "Confirm",
	ActionBack:      "Back",
	ActionRestart:   "Restart",
	ActionQuit:      "Quit",
	ActionPause:     "Pause",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// ParseAction returns the action with the given String() name.
func ParseAction(name string) (Action, bool) {
	for a, n := range actionNames {
		if n == name && a != ActionNone {
			return a, true
		}
	}
	return ActionNone, false
}

// IsGameplay reports whether the action is decoded from keybinding tables.
func (a Action) IsGameplay() bool {
	return a >= ActionMoveLeft && a <= ActionSwap
}

// Key names a physical key as reported by the host, e.g. "left", "a", "space".
type Key string

// InputFrame represents the input state for a single player during one simulation tick.
type InputFrame struct {
	// Actions holds platform actions triggered this frame.
	Actions map[Action]bool
	// Keys holds the physical keys currently held down.
	Keys map[Key]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Keys:    make(map[Key]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Hold marks a physical key as held.
func (f *InputFrame) Hold(k Key) {
	if f.Keys == nil {
		f.Keys = make(map[Key]bool)
	}
	f.Keys[k] = true
}

// Held returns the held keys in a stable (sorted) order.
func (f InputFrame) Held() []Key {
	keys := make([]Key, 0, len(f.Keys))
	for k, down := range f.Keys {
		if down {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	return keys
}

// Clear resets actions and held keys for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	for k := range f.Keys {
		delete(f.Keys, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	for k, v := range f.Keys {
		clone.Keys[k] = v
	}
	return clone
}
