// Package multiplayer wires local boards together for versus play.
// Boards never hold references to each other: each one queues its attacks,
// and an Exchange owned by the game delivers them once per tick.
package multiplayer

import (
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/blockfall/internal/core"
)

// PlayerID is an alias to core.PlayerID for convenience.
type PlayerID = core.PlayerID

// Re-export player constants for convenience.
const (
	Player1 = core.Player1
	Player2 = core.Player2
)

// MatchID uniquely identifies a game match.
type MatchID string

// NewMatchID returns a fresh random match identifier.
func NewMatchID() MatchID {
	return MatchID(uuid.NewString())
}

// MatchMode defines how a game match is configured.
type MatchMode int

const (
	// MatchModeSolo is a single board with nobody to attack.
	MatchModeSolo MatchMode = iota

	// MatchModeVersus is two boards on one keyboard sending garbage to each other.
	MatchModeVersus
)

// String returns a human-readable name for the match mode.
func (m MatchMode) String() string {
	switch m {
	case MatchModeSolo:
		return "Solo"
	case MatchModeVersus:
		return "Versus"
	default:
		return "Unknown"
	}
}

// Match holds the metadata of one game from start to result.
type Match struct {
	ID      MatchID
	GameID  string
	Mode    MatchMode
	Started time.Time
}

// NewMatch creates a match with a fresh ID.
func NewMatch(gameID string, mode MatchMode, started time.Time) *Match {
	return &Match{
		ID:      NewMatchID(),
		GameID:  gameID,
		Mode:    mode,
		Started: started,
	}
}
