package tetris

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectsSpringStep(t *testing.T) {
	e := NewEffects(DefaultEffectParams(), time.Second)
	e.Velocity = Vec2{0, -1}
	e.Beat = 0.3

	e.Update(time.Now())

	assert.InDelta(t, -1.0, e.Position.Y, 1e-9)
	// v = (-1 - (-1)*0.1) / 1.5
	assert.InDelta(t, -0.6, e.Velocity.Y, 1e-9)
	assert.InDelta(t, 1.3, e.Scale, 1e-9)
	// beat = (0.3 - 0.3*0.1) / 1.5
	assert.InDelta(t, 0.18, e.Beat, 1e-9)
}

func TestEffectsSettle(t *testing.T) {
	e := NewEffects(DefaultEffectParams(), time.Second)
	e.Velocity = Vec2{0.5, -0.5}
	e.Beat = 0.1
	now := time.Now()
	for i := 0; i < 500; i++ {
		e.Update(now)
	}
	assert.InDelta(t, 0, e.Position.X, 1e-6)
	assert.InDelta(t, 0, e.Position.Y, 1e-6)
	assert.InDelta(t, 1, e.Scale, 1e-6)
}

func TestParticlesMoveAndExpire(t *testing.T) {
	e := NewEffects(DefaultEffectParams(), time.Second)
	e.Emit(Particle{
		Pos:     Vec2{1, 1},
		Vel:     Vec2{0, 0.1},
		Gravity: Vec2{0, -0.01},
		Size:    0.012,
		Shrink:  0.005,
		Model:   Star,
	})
	e.Emit(Particle{Size: 1, Shrink: 0.005, Model: Star})

	now := time.Now()
	e.Update(now)
	require.Len(t, e.Particles, 2)
	p := e.Particles[0]
	assert.InDelta(t, 1.1, p.Pos.Y, 1e-9)
	assert.InDelta(t, 0.09, p.Vel.Y, 1e-9)
	assert.InDelta(t, 0.007, p.Size, 1e-9)

	e.Update(now) // 0.002
	require.Len(t, e.Particles, 2)
	e.Update(now) // -0.003, pruned
	assert.Len(t, e.Particles, 1)
	assert.InDelta(t, 1-3*0.005, e.Particles[0].Size, 1e-9)
}

func TestInfoTextExpires(t *testing.T) {
	e := NewEffects(DefaultEffectParams(), time.Second)
	start := time.Unix(100, 0)
	e.ShowInfo(LabelTetris, start)

	e.Update(start.Add(999 * time.Millisecond))
	require.NotNil(t, e.Info)
	assert.Equal(t, LabelTetris, e.Info.Text)

	e.Update(start.Add(time.Second))
	assert.Nil(t, e.Info)
}

func TestNewEffectsDefaultsZeroParams(t *testing.T) {
	e := NewEffects(EffectParams{}, time.Second)
	assert.Equal(t, DefaultEffectParams(), e.params)
	assert.Equal(t, 1.0, e.Scale)
}
