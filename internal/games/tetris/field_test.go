package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/core"
)

var red = core.RGB{R: 1}

func TestRemoveLineCompacts(t *testing.T) {
	f := NewField()
	fillRows(f, 0, 2)
	f.Set(3, 2, Block(red))
	f.Set(7, FieldHeight-1, Block(red))

	require.True(t, f.RowFull(1))
	f.RemoveLine(1)

	assert.Equal(t, FieldHeight, f.Height())
	assert.True(t, f.RowFull(0))
	assert.True(t, f.At(3, 1).Occupied(), "row above moved down")
	assert.False(t, f.At(3, 2).Occupied())
	assert.True(t, f.At(7, FieldHeight-2).Occupied())
	assert.Equal(t, Row{}, f.Rows(FieldHeight)[FieldHeight-1], "fresh empty row on top")
}

func TestRemoveEveryLineKeepsHeight(t *testing.T) {
	f := NewField()
	fillRows(f, 0, FieldHeight)
	for i := 0; i < FieldHeight; i++ {
		f.RemoveLine(0)
		require.Equal(t, FieldHeight, f.Height())
	}
	for y := 0; y < FieldHeight; y++ {
		assert.Equal(t, Row{}, f.Rows(FieldHeight)[y])
	}
}

func TestInsertGarbage(t *testing.T) {
	f := NewField()
	f.Set(0, 0, Block(red))
	f.Set(5, FieldHeight-1, Block(red))

	f.InsertGarbage(3, 6)

	assert.Equal(t, FieldHeight, f.Height())
	for y := 0; y < 3; y++ {
		for x := 0; x < FieldWidth; x++ {
			if x == 6 {
				assert.False(t, f.At(x, y).Occupied(), "hole at (%d,%d)", x, y)
			} else {
				assert.Equal(t, Block(GarbageColor), f.At(x, y))
			}
		}
		assert.False(t, f.RowFull(y))
	}
	assert.Equal(t, Block(red), f.At(0, 3), "old bottom row pushed up")
	assert.False(t, f.At(5, FieldHeight-1).Occupied(), "top rows fall off")
}

func TestFieldOutOfRangePanics(t *testing.T) {
	f := NewField()
	assert.Panics(t, func() { f.At(FieldWidth, 0) })
	assert.Panics(t, func() { f.At(0, FieldHeight) })
	assert.Panics(t, func() { f.Set(-1, 0, Block(red)) })
	assert.Panics(t, func() { f.RemoveLine(FieldHeight) })
}

func TestFieldOccupied(t *testing.T) {
	f := NewField()
	f.Set(2, 2, Block(red))

	assert.True(t, f.Occupied(2, 2))
	assert.False(t, f.Occupied(3, 2))
	assert.True(t, f.Occupied(-1, 5), "left wall")
	assert.True(t, f.Occupied(FieldWidth, 5), "right wall")
	assert.True(t, f.Occupied(4, -1), "floor")
	assert.False(t, f.Occupied(4, FieldHeight), "open sky")
}

func TestRowsIsCopy(t *testing.T) {
	f := NewField()
	rows := f.Rows(VisibleRows)
	require.Len(t, rows, VisibleRows)
	rows[0][0] = Block(red)
	assert.False(t, f.At(0, 0).Occupied())
}
