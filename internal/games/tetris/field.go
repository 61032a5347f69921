package tetris

import (
	"fmt"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Field dimensions. Rows above VisibleRows are allocated so a piece may
// be tested and baked above the visible board before the death check runs.
const (
	FieldWidth  = 10
	FieldHeight = 32
	VisibleRows = 30
	DeathRow    = 20
)

// GarbageColor is the color of inserted garbage rows.
var GarbageColor = core.RGB{R: 0.3, G: 0.3, B: 0.3}

// CellKind tags a field cell.
type CellKind uint8

const (
	CellEmpty CellKind = iota
	CellBlock
)

// Cell is a single field cell. Color is meaningful only for CellBlock.
type Cell struct {
	Kind  CellKind
	Color core.RGB
}

// Block returns an occupied cell of the given color.
func Block(c core.RGB) Cell {
	return Cell{Kind: CellBlock, Color: c}
}

// Occupied reports whether the cell holds a block.
func (c Cell) Occupied() bool {
	return c.Kind == CellBlock
}

// Row is one horizontal line of the field.
type Row [FieldWidth]Cell

// Full reports whether every cell of the row is occupied.
func (r Row) Full() bool {
	for _, c := range r {
		if !c.Occupied() {
			return false
		}
	}
	return true
}

// Field is the playing field: FieldHeight rows, index 0 at the bottom.
type Field struct {
	rows []Row
}

// NewField returns an empty field.
func NewField() *Field {
	return &Field{rows: make([]Row, FieldHeight)}
}

func (f *Field) check(x, y int) {
	if x < 0 || x >= FieldWidth || y < 0 || y >= FieldHeight {
		panic(fmt.Sprintf("tetris: field access out of range (%d,%d)", x, y))
	}
}

// At returns the cell at column x, row y. Out-of-range access panics.
func (f *Field) At(x, y int) Cell {
	f.check(x, y)
	return f.rows[y][x]
}

// Set writes the cell at column x, row y. Out-of-range access panics.
func (f *Field) Set(x, y int, c Cell) {
	f.check(x, y)
	f.rows[y][x] = c
}

// Occupied reports whether (x, y) holds a block. Unlike At it accepts any
// coordinate: rows at or above FieldHeight are open, everything else outside
// the field is solid.
func (f *Field) Occupied(x, y int) bool {
	if x < 0 || x >= FieldWidth || y < 0 {
		return true
	}
	if y >= FieldHeight {
		return false
	}
	return f.rows[y][x].Occupied()
}

// RowFull reports whether row y is completely filled.
func (f *Field) RowFull(y int) bool {
	f.check(0, y)
	return f.rows[y].Full()
}

// RemoveLine deletes row y, shifts every row above it down by one and
// appends an empty row at the top.
func (f *Field) RemoveLine(y int) {
	f.check(0, y)
	copy(f.rows[y:], f.rows[y+1:])
	f.rows[FieldHeight-1] = Row{}
}

// InsertGarbage pushes n gray rows in at the bottom, each open only at
// column hole. The top n rows fall off.
func (f *Field) InsertGarbage(n, hole int) {
	if n <= 0 {
		return
	}
	f.check(hole, 0)
	n = min(n, FieldHeight)

	var line Row
	for x := range line {
		if x != hole {
			line[x] = Block(GarbageColor)
		}
	}

	copy(f.rows[n:], f.rows[:FieldHeight-n])
	for y := 0; y < n; y++ {
		f.rows[y] = line
	}
}

// Height returns the number of rows. It is always FieldHeight.
func (f *Field) Height() int {
	return len(f.rows)
}

// Rows returns a copy of the lowest n rows, bottom first.
func (f *Field) Rows(n int) []Row {
	n = core.Clamp(n, 0, FieldHeight)
	out := make([]Row, n)
	copy(out, f.rows[:n])
	return out
}
