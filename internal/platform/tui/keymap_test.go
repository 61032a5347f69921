package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"esc goes back", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"p pauses", runeKey('p'), core.ActionPause, false},
		{"r restarts", runeKey('r'), core.ActionRestart, false},
		{"q is a board key", runeKey('q'), core.ActionNone, false},
		{"space is a board key", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey() = %v, %v; want %v, %v", action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestKeyName(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want core.Key
	}{
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, "space"},
		{tea.KeyMsg{Type: tea.KeyLeft}, "left"},
		{tea.KeyMsg{Type: tea.KeyDown}, "down"},
		{runeKey('a'), "a"},
		{runeKey('/'), "/"},
	}

	for _, tt := range tests {
		if got := km.KeyName(tt.msg); got != tt.want {
			t.Errorf("KeyName(%q) = %q, want %q", tt.msg.String(), got, tt.want)
		}
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{runeKey('q'), MenuActionQuit},
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey('x'), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestHeldKeys(t *testing.T) {
	h := NewHeldKeys(100 * time.Millisecond)
	t0 := time.Unix(0, 0)

	h.Press("left", t0)
	h.Press("space", t0.Add(50*time.Millisecond))

	held := h.Held(t0.Add(60 * time.Millisecond))
	if len(held) != 2 || held[0] != "left" || held[1] != "space" {
		t.Fatalf("Held() = %v, want [left space]", held)
	}

	// Auto-repeat keeps left alive
	h.Press("left", t0.Add(90*time.Millisecond))
	held = h.Held(t0.Add(150 * time.Millisecond))
	if len(held) != 1 || held[0] != "left" {
		t.Fatalf("Held() = %v, want [left]", held)
	}

	held = h.Held(t0.Add(190 * time.Millisecond))
	if len(held) != 0 {
		t.Fatalf("Held() = %v, want none", held)
	}

	h.Press("z", t0)
	h.Clear()
	if held = h.Held(t0); len(held) != 0 {
		t.Errorf("Held() after Clear = %v", held)
	}
}
