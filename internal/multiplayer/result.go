package multiplayer

import "time"

// PlayerResult is one player's line in a match result.
type PlayerResult struct {
	Player          PlayerID
	Lines           int
	Pieces          int
	Attack          int
	GarbageReceived int
	MaxCombo        int
}

// MatchResult contains the outcome of a completed match.
type MatchResult struct {
	MatchID  MatchID
	GameID   string
	Reason   MatchEndReason
	Winner   PlayerID // 0 for a draw
	Players  []PlayerResult
	Duration time.Duration
}

// Player returns the result line of id.
func (r MatchResult) Player(id PlayerID) (PlayerResult, bool) {
	for _, p := range r.Players {
		if p.Player == id {
			return p, true
		}
	}
	return PlayerResult{}, false
}

// Data flattens the result for persistence.
func (r MatchResult) Data() MatchResultData {
	p1, _ := r.Player(Player1)
	p2, _ := r.Player(Player2)
	winner := ""
	if r.Winner != 0 {
		winner = r.Winner.String()
	}
	return MatchResultData{
		MatchID:      string(r.MatchID),
		GameID:       r.GameID,
		Winner:       winner,
		Lines1:       p1.Lines,
		Lines2:       p2.Lines,
		Attack1:      p1.Attack,
		Attack2:      p2.Attack,
		EndReason:    r.Reason.String(),
		DurationSecs: int(r.Duration / time.Second),
	}
}

// MatchResultSaver is an interface for saving match results.
// This allows games to save results without depending on the storage package.
type MatchResultSaver interface {
	SaveMatchResult(result MatchResultData) error
}

// MatchResultData contains match result data for persistence.
type MatchResultData struct {
	MatchID      string
	GameID       string
	Winner       string // "P1", "P2" or empty for a draw
	Lines1       int
	Lines2       int
	Attack1      int
	Attack2      int
	EndReason    string
	DurationSecs int
}
