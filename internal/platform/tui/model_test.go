package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/storage"
)

type stubGame struct {
	last    core.InputFrame
	held    [][]core.Key
	over    bool
	resized bool
	resets  int
}

func (g *stubGame) ID() string               { return "solo" }
func (g *stubGame) Title() string            { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *stubGame) Render(*core.Screen)      {}
func (g *stubGame) State() core.GameState    { return core.GameState{Score: 7, GameOver: g.over} }
func (g *stubGame) Resize(width, height int) { g.resized = true }
func (g *stubGame) Run() registry.RunSummary { return registry.RunSummary{Score: 7, Lines: 7, Pieces: 21, Attack: 3} }
func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.last = in
	g.held = append(g.held, in.Held())
	return core.StepResult{State: g.State()}
}

func update(t *testing.T, m GameModel, msg tea.Msg) GameModel {
	t.Helper()
	next, _ := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm
}

func TestGameModelHeldKeysReachGame(t *testing.T) {
	g := &stubGame{}
	m := NewGameModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}, GameOptions{})
	m.Init()

	m = update(t, m, runeKey('a'))
	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = update(t, m, TickMsg(time.Now()))

	if len(g.held) != 1 {
		t.Fatalf("Expected one step, got %d", len(g.held))
	}
	got := g.held[0]
	if len(got) != 2 || got[0] != "a" || got[1] != "space" {
		t.Errorf("Held keys = %v, want [a space]", got)
	}
	if !g.last.Keys["a"] {
		t.Error("the frame handed to the game must survive the model clearing its own")
	}

	// Released once the hold window has passed
	update(t, m, TickMsg(time.Now().Add(time.Second)))
	if len(g.held[1]) != 0 {
		t.Errorf("Expected no held keys, got %v", g.held[1])
	}
}

func TestGameModelResizeKeepsGame(t *testing.T) {
	g := &stubGame{}
	m := NewGameModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}, GameOptions{})
	m.Init()

	update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if !g.resized {
		t.Error("Resize was not forwarded")
	}
	if g.resets != 1 {
		t.Errorf("Expected no reset on resize, got %d resets", g.resets)
	}
}

func TestGameModelSavesRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	g := &stubGame{}
	m := NewGameModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}, GameOptions{Store: store})
	m.Init()

	g.over = true
	m = update(t, m, TickMsg(time.Now()))
	m = update(t, m, TickMsg(time.Now()))

	scores, err := store.TopScores("solo", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("Expected 1 saved run, got %d", len(scores))
	}
	if s := scores[0]; s.Lines != 7 || s.Pieces != 21 || s.Attack != 3 {
		t.Errorf("Unexpected run: %+v", s)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("Esc after game over should go back to the menu")
	}
}

func TestGameModelEscPausesDuringPlay(t *testing.T) {
	g := &stubGame{}
	m := NewGameModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}, GameOptions{})
	m.Init()

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Error("Esc during play should not leave the game")
	}
	if !m.frame.Has(core.ActionPause) {
		t.Error("Esc during play should pause")
	}
}
