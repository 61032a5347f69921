package tui

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/multiplayer"
	"github.com/vovakirdan/blockfall/internal/storage"
)

func testMenu() MenuModel {
	return MenuModel{
		items: []MenuItem{
			{GameID: "solo", Title: "Blockfall", Blurb: blurbOf(multiplayer.MatchModeSolo)},
			{GameID: "versus", Title: "Blockfall Versus", Mode: multiplayer.MatchModeVersus, Blurb: blurbOf(multiplayer.MatchModeVersus)},
		},
		width:     80,
		keyMapper: NewKeyMapper(),
		help:      help.New(),
	}
}

func press(m MenuModel, msg tea.KeyMsg) MenuModel {
	next, _ := m.Update(msg)
	return next.(MenuModel)
}

func TestMenuCursorWraps(t *testing.T) {
	m := testMenu()

	m = press(m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 1 {
		t.Fatalf("up from the top: cursor = %d, want 1", m.cursor)
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyDown})
	if m.cursor != 0 {
		t.Fatalf("down from the bottom: cursor = %d, want 0", m.cursor)
	}
}

func TestMenuResult(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyMsg
		want MenuResult
	}{
		{
			name: "select second",
			keys: []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyEnter}},
			want: MenuResult{GameID: "versus", Mode: multiplayer.MatchModeVersus},
		},
		{
			name: "scoreboard",
			keys: []tea.KeyMsg{{Type: tea.KeyTab}},
			want: MenuResult{WantsScoreboard: true},
		},
		{
			name: "quit",
			keys: []tea.KeyMsg{runeKey('q')},
			want: MenuResult{Quit: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := testMenu()
			for _, k := range tt.keys {
				m = press(m, k)
			}
			if got := m.Result(); got != tt.want {
				t.Errorf("Result() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestMenuRecords(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	solo := MenuItem{GameID: "solo"}
	versus := MenuItem{GameID: "versus", Mode: multiplayer.MatchModeVersus}

	if got := recordOf(store, solo); got != "" {
		t.Errorf("empty store solo record = %q", got)
	}
	if _, err := store.SaveRun(storage.RunRecord{GameID: "solo", Score: 7, Lines: 7}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if got := recordOf(store, solo); got != "best 7 lines" {
		t.Errorf("solo record = %q", got)
	}

	if got := recordOf(store, versus); got != "" {
		t.Errorf("no matches yet, got %q", got)
	}
	if _, err := store.SaveVersusMatch(storage.VersusMatchResult{MatchID: "m1", GameID: "versus", Winner: "P2"}); err != nil {
		t.Fatalf("SaveVersusMatch() failed: %v", err)
	}
	if got := recordOf(store, versus); got != "P1 0 · P2 1 · draws 0" {
		t.Errorf("versus record = %q", got)
	}

	if got := recordOf(nil, solo); got != "" {
		t.Errorf("nil store record = %q", got)
	}
}

func TestMenuView(t *testing.T) {
	m := testMenu()
	m.items[0].Record = "best 3 lines"
	view := m.View()

	for _, want := range []string{"B L O C K F A L L", "Blockfall Versus", "best 3 lines", "garbage"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}
