// Package tetris implements the rules engine of a falling-block puzzle game
// for one or two local players, plus the registry.Game adapter that hosts it.
//
// The engine is pure: it owns no terminal, audio device or goroutine. A host
// calls Board.Update once per tick with the keys currently held and reads the
// result back through Board.View.
package tetris

import (
	"fmt"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Shape is one of the seven pieces.
type Shape int

const (
	ShapeI Shape = iota
	ShapeJ
	ShapeL
	ShapeO
	ShapeS
	ShapeT
	ShapeZ
)

// AllShapes lists every shape in canonical order.
var AllShapes = [...]Shape{ShapeI, ShapeJ, ShapeL, ShapeO, ShapeS, ShapeT, ShapeZ}

// String returns the single-letter name of the shape.
func (s Shape) String() string {
	if s < ShapeI || s > ShapeZ {
		return "?"
	}
	return string("IJLOSTZ"[s])
}

// Color returns the shape's fixed block color.
func (s Shape) Color() core.RGB {
	switch s {
	case ShapeI:
		return core.RGB{R: 0, G: 1, B: 1}
	case ShapeJ:
		return core.RGB{R: 0, G: 0, B: 1}
	case ShapeL:
		return core.RGB{R: 1, G: 0.5, B: 0}
	case ShapeO:
		return core.RGB{R: 1, G: 1, B: 0}
	case ShapeS:
		return core.RGB{R: 0, G: 1, B: 0}
	case ShapeT:
		return core.RGB{R: 1, G: 0, B: 1}
	case ShapeZ:
		return core.RGB{R: 1, G: 0, B: 0}
	}
	panic(fmt.Sprintf("tetris: invalid shape %d", int(s)))
}

// Mask is a 4x4 occupancy grid indexed [x][y], y growing upward.
type Mask [4][4]bool

// Cells returns the occupied offsets of the mask, bottom row first.
func (m Mask) Cells() []core.Pos {
	cells := make([]core.Pos, 0, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if m[x][y] {
				cells = append(cells, core.P(x, y))
			}
		}
	}
	return cells
}

// Count returns the number of occupied cells.
func (m Mask) Count() int {
	n := 0
	for x := range m {
		for y := range m[x] {
			if m[x][y] {
				n++
			}
		}
	}
	return n
}

// shapeRows holds the masks as text, top row first, '#' occupied.
var shapeRows = [7][4][4]string{
	ShapeI: {
		{"    ", "####", "    ", "    "},
		{"  # ", "  # ", "  # ", "  # "},
		{"    ", "    ", "####", "    "},
		{" #  ", " #  ", " #  ", " #  "},
	},
	ShapeJ: {
		{"#   ", "### ", "    ", "    "},
		{" ## ", " #  ", " #  ", "    "},
		{"    ", "### ", "  # ", "    "},
		{" #  ", " #  ", "##  ", "    "},
	},
	ShapeL: {
		{"  # ", "### ", "    ", "    "},
		{" #  ", " #  ", " ## ", "    "},
		{"    ", "### ", "#   ", "    "},
		{"##  ", " #  ", " #  ", "    "},
	},
	ShapeO: {
		{" ## ", " ## ", "    ", "    "},
		{" ## ", " ## ", "    ", "    "},
		{" ## ", " ## ", "    ", "    "},
		{" ## ", " ## ", "    ", "    "},
	},
	ShapeS: {
		{" ## ", "##  ", "    ", "    "},
		{" #  ", " ## ", "  # ", "    "},
		{"    ", " ## ", "##  ", "    "},
		{"#   ", "##  ", " #  ", "    "},
	},
	ShapeT: {
		{" #  ", "### ", "    ", "    "},
		{" #  ", " ## ", " #  ", "    "},
		{"    ", "### ", " #  ", "    "},
		{" #  ", "##  ", " #  ", "    "},
	},
	ShapeZ: {
		{"##  ", " ## ", "    ", "    "},
		{"  # ", " ## ", " #  ", "    "},
		{"    ", "##  ", " ## ", "    "},
		{" #  ", "##  ", "#   ", "    "},
	},
}

var masks [7][4]Mask

func init() {
	for s := range shapeRows {
		for r := range shapeRows[s] {
			for row, line := range shapeRows[s][r] {
				for x, ch := range line {
					if ch == '#' {
						masks[s][r][x][3-row] = true
					}
				}
			}
			if n := masks[s][r].Count(); n != 4 {
				panic(fmt.Sprintf("tetris: shape %d rotation %d has %d blocks", s, r, n))
			}
		}
	}
}

// MaskOf returns the occupancy mask of shape in the given rotation state.
func MaskOf(s Shape, rotation int) Mask {
	if s < ShapeI || s > ShapeZ {
		panic(fmt.Sprintf("tetris: invalid shape %d", int(s)))
	}
	if rotation < 0 || rotation > 3 {
		panic(fmt.Sprintf("tetris: invalid rotation state %d", rotation))
	}
	return masks[s][rotation]
}
