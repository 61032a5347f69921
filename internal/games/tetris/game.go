package tetris

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/multiplayer"
	"github.com/vovakirdan/blockfall/internal/registry"
)

// Mode selects solo or local versus play.
type Mode int

const (
	ModeSolo Mode = iota
	ModeVersus
)

// Game IDs.
const (
	SoloID   = "solo"
	VersusID = "versus"
)

// Package-level hooks set by the command before a game is created.
var (
	configPath string
	sound      SoundPlayer = NopSound{}
	logger     *log.Logger
)

// SetConfigPath sets the config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetSound sets the player that receives clear and drop cues.
func SetSound(p SoundPlayer) {
	if p == nil {
		p = NopSound{}
	}
	sound = p
}

// SetLogger sets the logger for game events. nil disables logging.
func SetLogger(l *log.Logger) {
	logger = l
}

// Game hosts one or two boards behind the registry.Game interface.
type Game struct {
	mode    Mode
	runtime core.RuntimeConfig
	cfg     config.TetrisConfig

	clock    *core.PausableClock
	boards   []*Board
	exchange *multiplayer.Exchange
	match    *multiplayer.Match

	tick     uint64
	paused   bool
	gameOver bool
	tooSmall bool
	result   *multiplayer.MatchResult
}

// New creates a solo game.
func New() *Game {
	return &Game{mode: ModeSolo}
}

// NewVersus creates a two-player game on one keyboard.
func NewVersus() *Game {
	return &Game{mode: ModeVersus}
}

func init() {
	registry.Register(SoloID, func() registry.Game {
		return New()
	})
	registry.Register(VersusID, func() registry.Game {
		return NewVersus()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeVersus {
		return VersusID
	}
	return SoloID
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeVersus {
		return "Blockfall Versus"
	}
	return "Blockfall"
}

// Reset starts a fresh match.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadTetris(configPath)
	if err != nil {
		if logger != nil {
			logger.Warn("using default config", "err", err)
		}
		cfg = config.DefaultTetrisConfig()
	}
	g.cfg = cfg

	g.clock = core.NewPausableClock(runtime.ClockOrSystem())
	g.tick = 0
	g.paused = false
	g.gameOver = false
	g.result = nil
	g.tooSmall = runtime.ScreenW < g.minWidth() || runtime.ScreenH < minHeight

	tables := []string{"single"}
	matchMode := multiplayer.MatchModeSolo
	if g.mode == ModeVersus {
		tables = []string{"left", "right"}
		matchMode = multiplayer.MatchModeVersus
	}

	rules := RulesFromConfig(cfg)
	g.boards = g.boards[:0]
	for _, name := range tables {
		binds, err := BindsFromConfig(cfg, name)
		if err != nil {
			binds, _ = BindsFromConfig(config.DefaultTetrisConfig(), name) //nolint:errcheck // defaults always build
		}
		// Every board gets the same seed so both players see the same pieces.
		g.boards = append(g.boards, NewBoard(BoardOptions{
			Binds: binds,
			Rand:  rand.New(rand.NewSource(runtime.Seed)),
			Clock: g.clock,
			Sound: sound,
			Rules: rules,
		}))
	}

	if g.mode == ModeVersus {
		g.exchange = multiplayer.NewVersusExchange(g.boards[0], g.boards[1])
	} else {
		g.exchange = multiplayer.NewExchange()
		_ = g.exchange.Join(multiplayer.Player1, g.boards[0]) //nolint:errcheck // fresh exchange
	}

	g.match = multiplayer.NewMatch(g.ID(), matchMode, g.clock.Now())
	if logger != nil {
		logger.Info("match started",
			"match", g.match.ID,
			"mode", matchMode,
			"players", g.exchange.Players(),
			"seed", runtime.Seed)
	}
}

// Step advances every board by one tick, in player order, then delivers
// garbage. Garbage sent this tick is seen by its victim on the next tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) && g.gameOver {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if g.tooSmall || g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.togglePause()
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	held := in.Held()
	for i, b := range g.boards {
		b.Update(held)
		g.logEvents(core.PlayerID(i+1), b.DrainEvents())
	}
	for _, ev := range g.exchange.Pump() {
		if logger != nil {
			logger.Debug("garbage sent", "from", ev.From, "to", ev.To, "lines", ev.Lines)
		}
	}

	g.checkEnd()
	return core.StepResult{State: g.State()}
}

func (g *Game) togglePause() {
	g.paused = !g.paused
	for _, b := range g.boards {
		b.ReleaseKeys()
	}
	if g.paused {
		g.clock.Pause()
	} else {
		g.clock.Resume()
	}
}

// checkEnd finishes the game once a dead board's death window has elapsed.
func (g *Game) checkEnd() {
	now := g.clock.Now()
	window := g.cfg.Timing.DeathWindow()
	for _, b := range g.boards {
		if at, dead := b.DeathTime(); dead && now.Sub(at) >= window {
			g.finish(now)
			return
		}
	}
}

func (g *Game) finish(now time.Time) {
	g.gameOver = true

	res := multiplayer.MatchResult{
		MatchID:  g.match.ID,
		GameID:   g.ID(),
		Reason:   multiplayer.MatchEndReasonTopOut,
		Duration: now.Sub(g.match.Started),
	}
	for i, b := range g.boards {
		s := b.Stats()
		res.Players = append(res.Players, multiplayer.PlayerResult{
			Player:          core.PlayerID(i + 1),
			Lines:           s.Lines,
			Pieces:          s.Pieces,
			Attack:          s.Attack,
			GarbageReceived: s.GarbageReceived,
			MaxCombo:        s.MaxCombo,
		})
	}
	if g.mode == ModeVersus {
		res.Winner, res.Reason = versusWinner(g.boards[0], g.boards[1])
	}
	g.result = &res

	if logger != nil {
		logger.Info("match ended",
			"match", res.MatchID,
			"reason", res.Reason,
			"winner", res.Winner,
			"duration", res.Duration.Round(time.Second))
	}
}

// versusWinner: the board still standing wins; if both are dead the one that
// died later wins, and a tie is a draw.
func versusWinner(p1, p2 *Board) (core.PlayerID, multiplayer.MatchEndReason) {
	t1, dead1 := p1.DeathTime()
	t2, dead2 := p2.DeathTime()
	switch {
	case dead1 && !dead2:
		return core.Player2, multiplayer.MatchEndReasonTopOut
	case dead2 && !dead1:
		return core.Player1, multiplayer.MatchEndReasonTopOut
	case t1.Before(t2):
		return core.Player2, multiplayer.MatchEndReasonTopOut
	case t2.Before(t1):
		return core.Player1, multiplayer.MatchEndReasonTopOut
	}
	return 0, multiplayer.MatchEndReasonDraw
}

func (g *Game) logEvents(p core.PlayerID, events []Event) {
	if logger == nil {
		return
	}
	for _, ev := range events {
		switch e := ev.(type) {
		case PieceLockedEvent:
			if e.Cleared > 0 {
				logger.Debug("lines cleared",
					"player", p, "piece", e.Shape, "lines", e.Cleared,
					"label", e.Label, "attack", e.Attack, "combo", e.Combo, "b2b", e.BackToBack)
			}
		case GarbageAbsorbedEvent:
			logger.Debug("garbage received", "player", p, "lines", e.Lines, "hole", e.Hole)
		case GarbageCancelledEvent:
			logger.Debug("garbage cancelled", "player", p, "lines", e.Lines)
		case ToppedOutEvent:
			logger.Info("topped out", "player", p)
		}
	}
}

// State returns the current game state. The score is the number of lines cleared.
func (g *Game) State() core.GameState {
	score := 0
	for _, b := range g.boards {
		score += b.Stats().Lines
	}
	return core.GameState{
		Score:    score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Stats returns the totals of player p's board.
func (g *Game) Stats(p core.PlayerID) (Stats, bool) {
	b := g.board(p)
	if b == nil {
		return Stats{}, false
	}
	return b.Stats(), true
}

// View returns a snapshot of player p's board.
func (g *Game) View(p core.PlayerID) (View, bool) {
	b := g.board(p)
	if b == nil {
		return View{}, false
	}
	return b.View(), true
}

// Run summarizes a finished solo game.
func (g *Game) Run() registry.RunSummary {
	s, _ := g.Stats(core.Player1)
	return registry.RunSummary{
		Score:  s.Lines,
		Lines:  s.Lines,
		Pieces: s.Pieces,
		Attack: s.Attack,
	}
}

// MatchResult returns the versus outcome once the game is over.
func (g *Game) MatchResult() (multiplayer.MatchResult, bool) {
	if g.result == nil || g.mode != ModeVersus {
		return multiplayer.MatchResult{}, false
	}
	return *g.result, true
}

func (g *Game) board(p core.PlayerID) *Board {
	i := int(p) - 1
	if i < 0 || i >= len(g.boards) {
		return nil
	}
	return g.boards[i]
}
