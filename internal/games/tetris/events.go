package tetris

import "time"

// Event is something that happened on a board during Update. Hosts drain
// events for logging and statistics; the rules never read them back.
type Event interface {
	isEvent()
}

// PieceLockedEvent is emitted for every locked piece.
type PieceLockedEvent struct {
	Shape      Shape
	Cleared    int
	Attack     int // Attack before garbage cancellation
	Label      string
	Combo      int
	BackToBack int
	TSpin      bool
}

// GarbageAbsorbedEvent is emitted when pending garbage was materialized.
type GarbageAbsorbedEvent struct {
	Lines int
	Hole  int
}

// GarbageCancelledEvent is emitted when an attack offset pending garbage.
type GarbageCancelledEvent struct {
	Lines int
}

// ToppedOutEvent is emitted once, when the board dies.
type ToppedOutEvent struct {
	At time.Time
}

func (PieceLockedEvent) isEvent()      {}
func (GarbageAbsorbedEvent) isEvent()  {}
func (GarbageCancelledEvent) isEvent() {}
func (ToppedOutEvent) isEvent()        {}
