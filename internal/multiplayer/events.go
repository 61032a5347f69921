package multiplayer

// Event is something the exchange or the match reports to the host.
type Event interface {
	matchEvent()
}

// GarbageSentEvent records one attack delivered from one board to another.
type GarbageSentEvent struct {
	From  PlayerID
	To    PlayerID
	Lines int
}

func (GarbageSentEvent) matchEvent() {}

// MatchEndedEvent is emitted once when a match is decided.
type MatchEndedEvent struct {
	MatchID MatchID
	Reason  MatchEndReason
	Winner  PlayerID // 0 if no winner
}

func (MatchEndedEvent) matchEvent() {}

// MatchEndReason describes why a match ended.
type MatchEndReason int

const (
	MatchEndReasonTopOut    MatchEndReason = iota // One board topped out
	MatchEndReasonDraw                            // Both boards topped out on the same tick
	MatchEndReasonCancelled                       // Players left before a result
)

func (r MatchEndReason) String() string {
	switch r {
	case MatchEndReasonTopOut:
		return "Topped out"
	case MatchEndReasonDraw:
		return "Draw"
	case MatchEndReasonCancelled:
		return "Match cancelled"
	default:
		return "Unknown"
	}
}
