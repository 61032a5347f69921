// Package registry maps game IDs to factories. Game packages register in
// init, and the CLI, menu and SSH sessions create games by ID.
package registry

import (
	"errors"
	"fmt"
	"sync"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/multiplayer"
)

// Game is implemented by every game mode. Games are pure logic and never
// import Bubble Tea; the platform owns input, timing and output.
type Game interface {
	// ID is the key used by the CLI and score storage ("solo", "versus").
	ID() string
	Title() string

	// Reset starts over with the given screen size, seed and clock.
	Reset(cfg core.RuntimeConfig)

	// Step advances one tick. The frame carries platform actions
	// (Pause, Restart) and the physical keys currently held.
	Step(in core.InputFrame) core.StepResult

	// Render draws into a cleared screen.
	Render(dst *core.Screen)

	State() core.GameState
}

// Resizer is implemented by games that can follow a terminal resize
// without restarting. Games without it are reset on resize.
type Resizer interface {
	Resize(width, height int)
}

// RunSummary is the persisted outcome of a single-player run.
type RunSummary struct {
	Score  int
	Lines  int
	Pieces int
	Attack int
}

// RunReporter is implemented by games that report more than a score.
type RunReporter interface {
	Run() RunSummary
}

// MatchReporter is implemented by games that end with a versus result.
// ok is false until the match is decided or for single-player modes.
type MatchReporter interface {
	MatchResult() (result multiplayer.MatchResult, ok bool)
}

// ErrUnknownGame is returned by Create for an ID nobody registered.
var ErrUnknownGame = errors.New("registry: unknown game")

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh game instance.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
}

var entries = map[string]entry{}

var (
	mu    sync.RWMutex
	order []string // Registration order, which is menu order
)

// Register adds a game factory. Games call it from init.
// Registering the same ID twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{factory: f, title: f().Title()}
	order = append(order, id)
}

// List returns every registered game in registration order.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(order))
	for _, id := range order {
		result = append(result, GameInfo{ID: id, Title: entries[id].title})
	}
	return result
}

// Create instantiates the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
