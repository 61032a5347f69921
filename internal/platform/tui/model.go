package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/storage"
)

// DefaultKeyHold is how long a key counts as held after its last press.
const DefaultKeyHold = 120 * time.Millisecond

// GameOptions are the optional collaborators of a GameModel.
type GameOptions struct {
	Store   *storage.Store
	Logger  *log.Logger
	KeyHold time.Duration
}

// GameModel drives one registry.Game from Bubble Tea messages. Run uses it
// on its own; SessionModel embeds it between menu visits.
type GameModel struct {
	game   registry.Game
	opts   GameOptions
	config core.RuntimeConfig
	screen *core.Screen

	mapper *KeyMapper
	keys   *HeldKeys
	frame  core.InputFrame
	state  core.GameState

	saved      bool // Result of the current game over already stored
	exitOnBack bool
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a model for game. A zero seed is replaced by the clock.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, opts GameOptions) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.KeyHold <= 0 {
		opts.KeyHold = DefaultKeyHold
	}
	return GameModel{
		game:   game,
		opts:   opts,
		config: cfg,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		mapper: NewKeyMapper(),
		keys:   NewHeldKeys(opts.KeyHold),
		frame:  core.NewInputFrame(),
	}
}

func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.onKey(msg)
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		if m.frame.Has(core.ActionRestart) && m.state.GameOver {
			m.restart()
		} else {
			m.step(time.Time(msg))
		}
		return m, tickCmd(m.config.TickRate)
	}
	return m, nil
}

// onKey records platform actions in the frame and the physical key as held.
// Only ctrl+c quits, since letters belong to the boards.
func (m GameModel) onKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if err := m.screenshot(); err != nil {
			m.logWarn("could not save screenshot", "error", err)
		}
		return m, nil
	}

	action, quit := m.mapper.MapKey(msg)
	if quit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionBack:
		if !m.state.GameOver && !m.state.Paused {
			m.frame.Set(core.ActionPause)
			break
		}
		m.backToMenu = true
		if m.exitOnBack {
			return m, tea.Quit
		}
		return m, nil
	case core.ActionPause:
		m.frame.Set(core.ActionPause)
	case core.ActionRestart:
		if m.state.GameOver {
			m.frame.Set(core.ActionRestart)
		}
	}

	m.keys.Press(m.mapper.KeyName(msg), time.Now())
	return m, nil
}

// resize follows the terminal. Games that cannot resize in place restart
// unless they are already over.
func (m *GameModel) resize(w, h int) {
	m.config.ScreenW, m.config.ScreenH = w, h
	m.screen.Resize(w, h)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(w, h)
		return
	}
	if !m.state.GameOver {
		m.game.Reset(m.config)
	}
}

// restart begins a new game with a fresh seed.
func (m *GameModel) restart() {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.state = m.game.State()
	m.saved = false
	m.frame.Clear()
	m.keys.Clear()
}

func (m *GameModel) step(now time.Time) {
	for _, k := range m.keys.Held(now) {
		m.frame.Hold(k)
	}
	m.state = m.game.Step(m.frame.Clone()).State
	m.frame.Clear()

	if m.state.GameOver && !m.saved {
		m.saved = true
		if err := m.save(); err != nil {
			m.logWarn("could not save result", "game", m.game.ID(), "error", err)
		}
	}
}

// save stores a finished versus match as a match and anything else as a run.
func (m *GameModel) save() error {
	store := m.opts.Store
	if store == nil {
		return nil
	}
	if mr, ok := m.game.(registry.MatchReporter); ok {
		if res, ok := mr.MatchResult(); ok {
			return store.SaveMatchResult(res.Data())
		}
	}

	rr, ok := m.game.(registry.RunReporter)
	if !ok {
		if m.state.Score <= 0 {
			return nil
		}
		_, err := store.SaveScore(m.game.ID(), m.state.Score)
		return err
	}

	s := rr.Run()
	if s.Score <= 0 && s.Pieces == 0 {
		return nil
	}
	_, err := store.SaveRun(storage.RunRecord{
		GameID: m.game.ID(),
		Score:  s.Score,
		Lines:  s.Lines,
		Pieces: s.Pieces,
		Attack: s.Attack,
	})
	return err
}

// screenshot writes the current frame as text under ~/.blockfall/screenshots.
func (m *GameModel) screenshot() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	dir := filepath.Join(home, config.AppDir, "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	m.game.Render(m.screen)
	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	return os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600)
}

func (m *GameModel) logWarn(msg string, kv ...any) {
	if m.opts.Logger != nil {
		m.opts.Logger.Warn(msg, kv...)
	}
}

func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting reports whether the player asked to leave the program.
func (m GameModel) IsQuitting() bool { return m.quitting }

// BackToMenu reports whether the player asked to return to the menu.
func (m GameModel) BackToMenu() bool { return m.backToMenu }

// Run plays game in the alternate screen until the player quits or backs out.
func Run(game registry.Game, cfg core.RuntimeConfig, opts GameOptions) error {
	m := NewGameModel(game, cfg, opts)
	m.exitOnBack = true
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
