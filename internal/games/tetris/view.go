package tetris

import (
	"time"

	"github.com/vovakirdan/blockfall/internal/core"
)

// PieceView is a read-only piece.
type PieceView struct {
	Shape    Shape
	Rotation int
	Pos      core.Pos
	Cells    []core.Pos // Field coordinates of the four blocks
}

func viewOf(t Tetromino) PieceView {
	return PieceView{Shape: t.Shape, Rotation: t.Rotation, Pos: t.Pos, Cells: t.Cells()}
}

// View is a snapshot of a board for renderers. It shares no memory with the board.
type View struct {
	Rows    []Row // VisibleRows rows, bottom first
	Falling PieceView
	Ghost   PieceView

	Hold     Shape
	HasHold  bool
	HoldUsed bool
	Queue    []Shape

	Combo      int
	BackToBack int
	Pending    []int

	Info    string
	InfoAge time.Duration
	HasInfo bool

	Dead      bool
	DeathTime time.Time

	Offset    Vec2
	Scale     float64
	Particles []Particle

	Stats Stats
}

// View returns a snapshot of the board at the board clock's current time.
func (b *Board) View() View {
	now := b.clock.Now()
	v := View{
		Rows:       b.field.Rows(VisibleRows),
		Falling:    viewOf(b.falling),
		Ghost:      viewOf(b.ghost),
		Hold:       b.hold,
		HasHold:    b.hasHold,
		HoldUsed:   b.swapped,
		Queue:      b.gen.Queue(),
		Combo:      b.score.Combo(),
		BackToBack: b.score.BackToBack(),
		Pending:    b.Pending(),
		Dead:       b.dead,
		DeathTime:  b.deathTime,
		Offset:     b.effects.Position,
		Scale:      b.effects.Scale,
		Particles:  append([]Particle(nil), b.effects.Particles...),
		Stats:      b.stats,
	}
	if info := b.effects.Info; info != nil {
		v.Info = info.Text
		v.InfoAge = now.Sub(info.Created)
		v.HasInfo = true
	}
	return v
}
