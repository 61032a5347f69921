package tetris

import "github.com/vovakirdan/blockfall/internal/core"

// kickTable holds four ordered offsets per destination rotation state.
type kickTable [4][4]core.Pos

var (
	kicksJLSTZCW = kickTable{
		{{X: -1, Y: 0}, {X: -1, Y: -1}, {X: 0, Y: 2}, {X: -1, Y: 2}},
		{{X: -1, Y: 0}, {X: -1, Y: 1}, {X: 0, Y: -2}, {X: -1, Y: -2}},
		{{X: 1, Y: 0}, {X: 1, Y: -1}, {X: 0, Y: 2}, {X: 1, Y: 2}},
		{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: -2}, {X: 1, Y: -2}},
	}
	kicksICW = kickTable{
		{{X: 1, Y: 0}, {X: -2, Y: 0}, {X: 1, Y: -2}, {X: -2, Y: 1}},
		{{X: -2, Y: 0}, {X: 1, Y: 0}, {X: -2, Y: -1}, {X: 1, Y: 2}},
		{{X: -1, Y: 0}, {X: 2, Y: 0}, {X: -1, Y: 2}, {X: 2, Y: -1}},
		{{X: 2, Y: 0}, {X: -1, Y: 0}, {X: 2, Y: 1}, {X: -1, Y: -2}},
	}
	kicksJLSTZCCW = kickTable{
		{{X: 1, Y: 0}, {X: 1, Y: -1}, {X: 0, Y: 2}, {X: 1, Y: 2}},
		{{X: -1, Y: 0}, {X: -1, Y: 1}, {X: 0, Y: -2}, {X: -1, Y: -2}},
		{{X: -1, Y: 0}, {X: -1, Y: -1}, {X: 0, Y: 2}, {X: -1, Y: 2}},
		{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: -2}, {X: 1, Y: -2}},
	}
	kicksICCW = kickTable{
		{{X: 2, Y: 0}, {X: -1, Y: 0}, {X: 2, Y: 1}, {X: -1, Y: -2}},
		{{X: 1, Y: 0}, {X: -2, Y: 0}, {X: 1, Y: -2}, {X: -2, Y: 1}},
		{{X: -2, Y: 0}, {X: 1, Y: 0}, {X: -2, Y: 1}, {X: 1, Y: 2}},
		{{X: -1, Y: 0}, {X: 2, Y: 0}, {X: -1, Y: 2}, {X: 2, Y: -1}},
	}
	// O never needs to move.
	kicksO = kickTable{}
)

// kicksFor returns the offsets to try when rotating shape into state `to`.
func kicksFor(s Shape, to int, clockwise bool) [4]core.Pos {
	switch s {
	case ShapeO:
		return kicksO[to]
	case ShapeI:
		if clockwise {
			return kicksICW[to]
		}
		return kicksICCW[to]
	default:
		if clockwise {
			return kicksJLSTZCW[to]
		}
		return kicksJLSTZCCW[to]
	}
}
