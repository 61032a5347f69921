package core

// PlayerID identifies a local player slot.
type PlayerID int

const (
	// Player1 is the first (or only) board.
	Player1 PlayerID = 1
	// Player2 is the second board in versus mode.
	Player2 PlayerID = 2
)

// String returns a human-readable name for the player.
func (p PlayerID) String() string {
	switch p {
	case Player1:
		return "P1"
	case Player2:
		return "P2"
	default:
		return "P?"
	}
}
