package tetris

import (
	"time"

	"github.com/vovakirdan/blockfall/internal/core"
)

// lock bakes the falling piece into the field, clears lines, settles the
// attack against pending garbage and spawns the next piece.
func (b *Board) lock(now time.Time) {
	// Must be tested before the piece becomes part of the field.
	covered := b.blocked(dirUp)

	piece := b.falling
	color := piece.Shape.Color()
	// top stays 0 unless the piece reaches DeathRow; then it is the lowest
	// such row. Clears lower it and absorbed garbage raises it.
	top := 0
	for _, c := range piece.Cells() {
		if c.Y >= DeathRow && (top == 0 || c.Y < top) {
			top = c.Y
		}
		if c.Y < FieldHeight {
			b.field.Set(c.X, c.Y, Block(color))
		}
	}

	b.effects.Velocity.Y -= 0.075

	cleared := 0
	lo := core.Clamp(piece.Pos.Y, 0, FieldHeight)
	hi := core.Clamp(piece.Pos.Y+4, 0, FieldHeight)
	for y := hi - 1; y >= lo; y-- {
		if !b.field.RowFull(y) {
			continue
		}
		b.lineClearParticles(y)
		b.field.RemoveLine(y)
		cleared++
		top--
	}

	if cleared > 0 {
		b.sound.LineClear(b.score.Combo())
		b.effects.Beat += 0.02 * float64(cleared)
	}

	attack, label := b.score.Analyze(cleared, piece.Shape, covered)
	if label != "" {
		b.effects.ShowInfo(label, now)
	}
	b.effects.Velocity.Y -= 0.1 * float64(attack)

	b.recordLock(piece.Shape, cleared, attack, label, covered)

	send := attack
	if len(b.inbound) > 0 {
		incoming := b.inbound[0]
		b.inbound = b.inbound[1:]
		if incoming > send {
			rows := incoming - send
			hole := b.rng.Intn(FieldWidth)
			b.field.InsertGarbage(rows, hole)
			top += rows
			b.effects.Velocity.Y += 0.1 * float64(rows)
			b.stats.GarbageReceived += rows
			b.events = append(b.events, GarbageAbsorbedEvent{Lines: rows, Hole: hole})
			if send > 0 {
				b.events = append(b.events, GarbageCancelledEvent{Lines: send})
			}
			send = 0
		} else {
			send -= incoming
			b.events = append(b.events, GarbageCancelledEvent{Lines: incoming})
		}
	}

	b.landParticles(piece)

	if top >= DeathRow {
		b.dead = true
		b.deathTime = now
		b.events = append(b.events, ToppedOutEvent{At: now})
		return
	}

	if send > 0 {
		b.outbound = append(b.outbound, send)
		b.stats.Attack += send
	}

	b.falling = NewTetromino(b.gen.Next())
	b.onGround = false
	b.movesOnGround = 0
	b.swapped = false
	b.updateGhost()
}

func (b *Board) recordLock(shape Shape, cleared, attack int, label string, covered bool) {
	tspin := shape == ShapeT && covered && cleared > 0
	b.stats.Pieces++
	b.stats.Lines += cleared
	b.stats.MaxCombo = max(b.stats.MaxCombo, b.score.Combo())
	if cleared == 4 {
		b.stats.Tetrises++
	}
	if tspin {
		b.stats.TSpins++
	}
	b.events = append(b.events, PieceLockedEvent{
		Shape:      shape,
		Cleared:    cleared,
		Attack:     attack,
		Label:      label,
		Combo:      b.score.Combo(),
		BackToBack: b.score.BackToBack(),
		TSpin:      tspin,
	})
}

// landParticles drops a star on every cell of the locked piece.
func (b *Board) landParticles(piece Tetromino) {
	for _, c := range piece.Cells() {
		b.effects.Emit(Particle{
			Pos:     Vec2{float64(c.X) + b.rng.Float64(), float64(c.Y) + b.rng.Float64()},
			Gravity: Vec2{0, 0.001},
			Size:    0.3 * b.rng.Float64(),
			Shrink:  0.005,
			Model:   Star,
		})
	}
}

// lineClearParticles bursts ten stars out of a cleared row.
func (b *Board) lineClearParticles(y int) {
	for x := 0; x < FieldWidth; x++ {
		b.effects.Emit(Particle{
			Pos:     Vec2{float64(x) + b.rng.Float64(), float64(y) + b.rng.Float64()},
			Vel:     Vec2{(b.rng.Float64() - 0.5) * 0.1, 0.1},
			Gravity: Vec2{0, -0.01},
			Size:    0.4 * b.rng.Float64(),
			Shrink:  0.005,
			Model:   Star,
		})
	}
}
