package tetris

import (
	"fmt"
	"slices"
	"strings"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
)

// KeyBinds maps physical keys to gameplay actions.
type KeyBinds struct {
	Name string
	keys map[core.Key]core.Action
}

// NewKeyBinds builds a binding table from key name -> action name pairs.
func NewKeyBinds(name string, table map[string]string) (KeyBinds, error) {
	kb := KeyBinds{Name: name, keys: make(map[core.Key]core.Action, len(table))}
	for key, actionName := range table {
		a, ok := core.ParseAction(actionName)
		if !ok || !a.IsGameplay() {
			return KeyBinds{}, fmt.Errorf("tetris: keys %s: %q is not a gameplay action", name, actionName)
		}
		kb.keys[core.Key(key)] = a
	}
	return kb, nil
}

// BindsFromConfig builds the named table ("single", "left" or "right").
func BindsFromConfig(cfg config.TetrisConfig, name string) (KeyBinds, error) {
	table, ok := cfg.Keys.Table(name)
	if !ok {
		return KeyBinds{}, fmt.Errorf("tetris: unknown key table %q", name)
	}
	return NewKeyBinds(name, table)
}

// Decode returns the action bound to k.
func (kb KeyBinds) Decode(k core.Key) (core.Action, bool) {
	a, ok := kb.keys[k]
	return a, ok
}

// DecodeAll maps held keys to their distinct actions in ascending order.
// Unbound keys are ignored.
func (kb KeyBinds) DecodeAll(held []core.Key) []core.Action {
	var out []core.Action
	for _, k := range held {
		if a, ok := kb.Decode(k); ok && !slices.Contains(out, a) {
			out = append(out, a)
		}
	}
	slices.Sort(out)
	return out
}

// Bindings returns the bound keys for an action, sorted.
func (kb KeyBinds) Bindings(a core.Action) []core.Key {
	var out []core.Key
	for k, v := range kb.keys {
		if v == a {
			out = append(out, k)
		}
	}
	slices.Sort(out)
	return out
}

// controlHints lists the keys of the main actions, e.g.
// "move left/right  rotate up/x  drop space  hold c".
func controlHints(kb KeyBinds) string {
	groups := []struct {
		label   string
		actions []core.Action
	}{
		{"move", []core.Action{core.ActionMoveLeft, core.ActionMoveRight}},
		{"rotate", []core.Action{core.ActionRotateCW, core.ActionRotateCCW}},
		{"drop", []core.Action{core.ActionHardDrop}},
		{"hold", []core.Action{core.ActionSwap}},
	}
	var parts []string
	for _, g := range groups {
		var keys []string
		for _, a := range g.actions {
			if ks := kb.Bindings(a); len(ks) > 0 {
				keys = append(keys, string(ks[0]))
			}
		}
		if len(keys) > 0 {
			parts = append(parts, g.label+" "+strings.Join(keys, "/"))
		}
	}
	return strings.Join(parts, "  ")
}
