package tetris

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
)

// Rules holds the board's timers.
type Rules struct {
	Gravity        time.Duration
	SoftDrop       time.Duration
	LockDelay      time.Duration
	MaxGroundMoves int
	RepeatDelay    time.Duration
	RepeatInterval time.Duration
	InfoText       time.Duration
	Effects        EffectParams
}

// DefaultRules returns the stock timings.
func DefaultRules() Rules {
	return RulesFromConfig(config.DefaultTetrisConfig())
}

// RulesFromConfig extracts the rule timings from a loaded configuration.
func RulesFromConfig(cfg config.TetrisConfig) Rules {
	return Rules{
		Gravity:        cfg.Timing.Gravity(),
		SoftDrop:       cfg.Timing.SoftDrop(),
		LockDelay:      cfg.Timing.LockDelay(),
		MaxGroundMoves: cfg.Timing.MaxGroundMoves,
		RepeatDelay:    cfg.Timing.RepeatDelay(),
		RepeatInterval: cfg.Timing.RepeatInterval(),
		InfoText:       cfg.Timing.InfoText(),
		Effects: EffectParams{
			Spring:        cfg.Effects.Spring,
			Friction:      cfg.Effects.Friction,
			ScaleSpring:   cfg.Effects.ScaleSpring,
			ScaleFriction: cfg.Effects.ScaleFriction,
		},
	}
}

// BoardOptions are the construction inputs of a Board.
// Zero values select a fixed seed, the system clock, silence and DefaultRules.
// The piece bag is seeded from Rand once, so the piece sequence depends only
// on the seed and not on how many particles were spawned.
type BoardOptions struct {
	Binds KeyBinds
	Rand  *rand.Rand
	Clock core.Clock
	Sound SoundPlayer
	Rules Rules
}

// Stats are running totals for one board.
type Stats struct {
	Lines           int
	Pieces          int
	Attack          int // Lines sent to the opponent
	GarbageReceived int // Garbage rows inserted into this field
	MaxCombo        int
	Tetrises        int
	TSpins          int
}

// Board is one player's game: field, pieces, timers, score and garbage queues.
type Board struct {
	field   *Field
	binds   KeyBinds
	gen     *Generator
	score   ScoreHandler
	effects *Effects
	timer   *InputTimer

	rng   *rand.Rand
	clock core.Clock
	sound SoundPlayer
	rules Rules

	falling Tetromino
	ghost   Tetromino
	hold    Shape
	hasHold bool
	swapped bool // Hold already used for this piece

	lastGravity   time.Time
	groundTime    time.Time
	movesOnGround int
	onGround      bool

	dead      bool
	deathTime time.Time

	inbound  []int
	outbound []int

	stats  Stats
	events []Event
}

// NewBoard creates a board with an empty field and the first piece spawned.
func NewBoard(opts BoardOptions) *Board {
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(1))
	}
	if opts.Clock == nil {
		opts.Clock = core.SystemClock{}
	}
	if opts.Sound == nil {
		opts.Sound = NopSound{}
	}
	if opts.Rules == (Rules{}) {
		opts.Rules = DefaultRules()
	}

	now := opts.Clock.Now()
	b := &Board{
		field:       NewField(),
		binds:       opts.Binds,
		gen:         NewGenerator(rand.New(rand.NewSource(opts.Rand.Int63()))),
		effects:     NewEffects(opts.Rules.Effects, opts.Rules.InfoText),
		timer:       NewInputTimer(opts.Rules.RepeatDelay, opts.Rules.RepeatInterval),
		rng:         opts.Rand,
		clock:       opts.Clock,
		sound:       opts.Sound,
		rules:       opts.Rules,
		lastGravity: now,
		groundTime:  now,
	}
	b.falling = NewTetromino(b.gen.Next())
	b.updateGhost()
	return b
}

// Update runs one tick with the physical keys currently held.
func (b *Board) Update(held []core.Key) {
	now := b.clock.Now()

	b.effects.Update(now)
	if b.dead {
		return
	}

	fired, softDrop := b.timer.Process(b.binds.DecodeAll(held), now)
	for _, a := range fired {
		if b.onGround {
			b.movesOnGround++
		}
		b.execute(a, now)
		b.groundTime = now
		if b.dead {
			return
		}
	}

	interval := b.rules.Gravity
	if softDrop {
		b.effects.Velocity.Y -= 0.01
		interval = b.rules.SoftDrop
	}
	if now.Sub(b.lastGravity) >= interval {
		b.softDrop(now)
		b.lastGravity = now
	}

	if b.onGround && (now.Sub(b.groundTime) > b.rules.LockDelay || b.movesOnGround > b.rules.MaxGroundMoves) {
		b.lock(now)
	}
}

func (b *Board) execute(a core.Action, now time.Time) {
	switch a {
	case core.ActionMoveLeft:
		b.move(dirLeft, -0.03, now)
	case core.ActionMoveRight:
		b.move(dirRight, 0.03, now)
	case core.ActionRotateCW:
		b.falling.RotateCW(b.field)
		b.testGround(now)
		b.updateGhost()
	case core.ActionRotateCCW:
		b.falling.RotateCCW(b.field)
		b.testGround(now)
		b.updateGhost()
	case core.ActionHardDrop:
		b.hardDrop(now)
	case core.ActionSwap:
		b.swap(now)
	}
}

// move shifts the piece sideways; bumping into something nudges the camera.
func (b *Board) move(dir core.Pos, nudge float64, now time.Time) {
	if b.falling.Translate(dir, b.field) {
		b.effects.Velocity.X += nudge
	}
	b.testGround(now)
	b.updateGhost()
}

func (b *Board) softDrop(now time.Time) {
	b.falling.Translate(dirDown, b.field)
	b.testGround(now)
}

func (b *Board) hardDrop(now time.Time) {
	b.effects.Velocity.Y -= 0.15
	for {
		b.flyParticles()
		if b.falling.Translate(dirDown, b.field) {
			break
		}
	}
	b.sound.HardDrop()
	b.lock(now)
}

func (b *Board) swap(now time.Time) {
	if b.swapped {
		return
	}
	next := b.hold
	if !b.hasHold {
		next = b.gen.Next()
	}
	b.hold = b.falling.Shape
	b.hasHold = true
	b.falling = NewTetromino(next)
	b.swapped = true
	b.testGround(now)
	b.updateGhost()
}

// testGround refreshes onGround, starting the lock delay on touchdown.
func (b *Board) testGround(now time.Time) {
	was := b.onGround
	b.onGround = b.blocked(dirDown)
	if b.onGround && !was {
		b.groundTime = now
	}
}

// blocked reports whether the falling piece cannot move by dir.
func (b *Board) blocked(dir core.Pos) bool {
	probe := b.falling
	return probe.Translate(dir, b.field)
}

func (b *Board) updateGhost() {
	b.ghost = b.falling.dropped(b.field)
}

// flyParticles sheds colorful sparks from about a tenth of the piece's cells.
func (b *Board) flyParticles() {
	for _, c := range b.falling.Cells() {
		if b.rng.Intn(10) != 0 {
			continue
		}
		b.effects.Emit(Particle{
			Pos:     Vec2{float64(c.X) + b.rng.Float64(), float64(c.Y) + b.rng.Float64()},
			Vel:     Vec2{0, 0.1 * b.rng.Float64()},
			Gravity: Vec2{0, 0.01},
			Size:    0.2 * b.rng.Float64(),
			Shrink:  0.005,
			Model:   randomColor(b.rng),
		})
	}
}

// ReceiveGarbage queues n incoming garbage lines. Non-positive counts are ignored.
func (b *Board) ReceiveGarbage(n int) {
	if n > 0 {
		b.inbound = append(b.inbound, n)
	}
}

// DrainOutbound returns and clears the attacks waiting to be delivered.
func (b *Board) DrainOutbound() []int {
	out := b.outbound
	b.outbound = nil
	return out
}

// DrainEvents returns and clears the events recorded since the last call.
func (b *Board) DrainEvents() []Event {
	ev := b.events
	b.events = nil
	return ev
}

// Pending returns a copy of the inbound garbage queue.
func (b *Board) Pending() []int {
	out := make([]int, len(b.inbound))
	copy(out, b.inbound)
	return out
}

// ReleaseKeys forgets every held action, so keys still down afterwards
// start over with the repeat delay.
func (b *Board) ReleaseKeys() {
	b.timer.Reset()
}

// Dead reports whether the board has topped out.
func (b *Board) Dead() bool { return b.dead }

// DeathTime returns when the board topped out; ok is false while alive.
func (b *Board) DeathTime() (t time.Time, ok bool) {
	return b.deathTime, b.dead
}

// Stats returns the running totals.
func (b *Board) Stats() Stats { return b.stats }
