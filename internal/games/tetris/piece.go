package tetris

import "github.com/vovakirdan/blockfall/internal/core"

// SpawnPos is where every new piece appears.
var SpawnPos = core.P(3, 20)

// Directions used by the board.
var (
	dirLeft  = core.P(-1, 0)
	dirRight = core.P(1, 0)
	dirDown  = core.P(0, -1)
	dirUp    = core.P(0, 1)
)

// Tetromino is a piece placed on the field. Pos is the field coordinate of
// mask cell (0,0), the lower-left corner of the 4x4 box.
type Tetromino struct {
	Pos      core.Pos
	Shape    Shape
	Rotation int
}

// NewTetromino returns a piece of the given shape at the spawn position.
func NewTetromino(s Shape) Tetromino {
	return Tetromino{Pos: SpawnPos, Shape: s}
}

// Mask returns the occupancy mask for the current rotation.
func (t Tetromino) Mask() Mask {
	return MaskOf(t.Shape, t.Rotation)
}

// Cells returns the field coordinates of the piece's four blocks.
func (t Tetromino) Cells() []core.Pos {
	cells := t.Mask().Cells()
	for i := range cells {
		cells[i] = cells[i].Add(t.Pos)
	}
	return cells
}

// Obstructed reports whether any block lies outside the side walls, below
// the floor, or on an occupied cell.
func (t Tetromino) Obstructed(f *Field) bool {
	for _, c := range t.Cells() {
		if f.Occupied(c.X, c.Y) {
			return true
		}
	}
	return false
}

// Translate moves the piece by dir. If the new position is obstructed the
// piece stays put and Translate reports true.
func (t *Tetromino) Translate(dir core.Pos, f *Field) (failed bool) {
	t.Pos = t.Pos.Add(dir)
	if t.Obstructed(f) {
		t.Pos = t.Pos.Sub(dir)
		return true
	}
	return false
}

// RotateCW rotates clockwise, trying wall kicks when the plain rotation is
// obstructed. It reports true and leaves the piece unchanged on failure.
func (t *Tetromino) RotateCW(f *Field) (failed bool) {
	return t.rotate(f, true)
}

// RotateCCW is the counter-clockwise counterpart of RotateCW.
func (t *Tetromino) RotateCCW(f *Field) (failed bool) {
	return t.rotate(f, false)
}

func (t *Tetromino) rotate(f *Field, clockwise bool) bool {
	prev := t.Rotation
	if clockwise {
		t.Rotation = (t.Rotation + 1) % 4
	} else {
		t.Rotation = (t.Rotation + 3) % 4
	}

	if !t.Obstructed(f) {
		return false
	}
	for _, kick := range kicksFor(t.Shape, t.Rotation, clockwise) {
		if !t.Translate(kick, f) {
			return false
		}
	}

	t.Rotation = prev
	return true
}

// dropped returns a copy of t moved down until it would collide.
func (t Tetromino) dropped(f *Field) Tetromino {
	for !t.Translate(dirDown, f) {
	}
	return t
}
