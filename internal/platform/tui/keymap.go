package tui

import (
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/core"
)

// KeyMapper translates Bubble Tea key messages to platform actions and
// physical key names. Gameplay keys are not mapped here: the game decodes
// held keys through its own binding tables.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a platform action.
// Returns the action (may be ActionNone) and whether it's a quit request.
// Only ctrl+c quits during play: letters belong to the boards.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c":
		return core.ActionQuit, true
	case "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	case "enter":
		return core.ActionConfirm, false
	}
	return core.ActionNone, false
}

// KeyName returns the physical key name used by the binding tables.
func (km *KeyMapper) KeyName(msg tea.KeyMsg) core.Key {
	return normalizeKey(msg.String())
}

// normalizeKey maps Bubble Tea key strings to binding table names.
func normalizeKey(s string) core.Key {
	switch s {
	case " ", "space":
		return "space"
	}
	return core.Key(s)
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

// MenuKeyMap defines the key bindings of the game picker.
type MenuKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Select     key.Binding
	Back       key.Binding
	Scoreboard key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Scoreboard, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Scoreboard, k.Back, k.Quit},
	}
}

// DefaultMenuKeyMap returns default menu bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("w", "up", "k"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("s", "down", "j"),
			key.WithHelp("down/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Back: key.NewBinding(
			key.WithKeys("b", "esc"),
			key.WithHelp("esc", "back"),
		),
		Scoreboard: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	keys := DefaultMenuKeyMap()
	switch {
	case key.Matches(msg, keys.Quit):
		return MenuActionQuit
	case key.Matches(msg, keys.Up):
		return MenuActionUp
	case key.Matches(msg, keys.Down):
		return MenuActionDown
	case key.Matches(msg, keys.Select):
		return MenuActionSelect
	case key.Matches(msg, keys.Back):
		return MenuActionBack
	case key.Matches(msg, keys.Scoreboard):
		return MenuActionScoreboard
	}
	return MenuActionNone
}

// HeldKeys infers which keys are held down. Terminals report presses and
// auto-repeats but never releases, so a key counts as held until window
// has passed without another press.
type HeldKeys struct {
	window time.Duration
	seen   map[core.Key]time.Time
}

// NewHeldKeys creates a tracker with the given hold window.
func NewHeldKeys(window time.Duration) *HeldKeys {
	return &HeldKeys{window: window, seen: make(map[core.Key]time.Time)}
}

// Press records a press (or auto-repeat) of k at now.
func (h *HeldKeys) Press(k core.Key, now time.Time) {
	h.seen[k] = now
}

// Held returns the keys still held at now, sorted, and forgets the rest.
func (h *HeldKeys) Held(now time.Time) []core.Key {
	keys := make([]core.Key, 0, len(h.seen))
	for k, at := range h.seen {
		if now.Sub(at) >= h.window {
			delete(h.seen, k)
			continue
		}
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Clear releases every key.
func (h *HeldKeys) Clear() {
	clear(h.seen)
}
