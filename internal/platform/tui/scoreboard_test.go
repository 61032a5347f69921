package tui

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/storage"
)

func testScoreboard(t *testing.T, store *storage.Store) ScoreboardModel {
	t.Helper()
	m := ScoreboardModel{
		games: []registry.GameInfo{
			{ID: "solo", Title: "Blockfall"},
			{ID: "versus", Title: "Blockfall Versus"},
		},
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  100,
		height: 30,
	}
	m.load()
	return m
}

func TestScoreboardTabs(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for _, lines := range []int{4, 9} {
		if _, err := store.SaveRun(storage.RunRecord{GameID: "solo", Score: lines, Lines: lines, Pieces: 20}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	match := storage.VersusMatchResult{MatchID: "m1", GameID: "versus", Winner: "P1", Lines1: 8, Lines2: 3, Duration: 75}
	if _, err := store.SaveVersusMatch(match); err != nil {
		t.Fatalf("SaveVersusMatch() failed: %v", err)
	}

	m := testScoreboard(t, store)
	if len(m.rows) != 2 || m.rows[0][1] != "9" {
		t.Fatalf("solo rows = %v, want best run first", m.rows)
	}
	if want := "2 runs · best 9 · avg 6.5 · 13 lines total"; m.summary != want {
		t.Errorf("solo summary = %q, want %q", m.summary, want)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if !m.versusSelected() {
		t.Fatal("tab should switch to the versus tab")
	}
	if len(m.rows) != 1 {
		t.Fatalf("versus rows = %v", m.rows)
	}
	row := m.rows[0]
	if row[1] != "P1" || row[2] != "8-3" || row[4] != "1:15" {
		t.Errorf("match row = %v", row)
	}
	if want := "P1 1 : 0 P2 · 0 drawn"; m.summary != want {
		t.Errorf("versus summary = %q, want %q", m.summary, want)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.tab != 0 {
		t.Errorf("tab should wrap to 0, got %d", m.tab)
	}
}

func TestScoreboardEmptyAndBack(t *testing.T) {
	m := testScoreboard(t, nil)

	if !strings.Contains(m.View(), "Nothing recorded yet.") {
		t.Error("empty scoreboard should say so")
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(ScoreboardModel)
	if !m.IsGoingBack() || m.IsQuitting() {
		t.Error("esc should go back without quitting")
	}
	if cmd == nil {
		t.Error("going back should end the program")
	}
}

func TestMatchRowDraw(t *testing.T) {
	row := matchRow(storage.VersusMatchResult{Duration: 5})
	if row[1] != "draw" || row[4] != "0:05" {
		t.Errorf("matchRow() = %v", row)
	}
}
