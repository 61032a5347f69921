package tetris

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Vec2 is a point or vector in field units, y up.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Scale returns v * k.
func (v Vec2) Scale(k float64) Vec2 { return Vec2{v.X * k, v.Y * k} }

// ParticleKind tags how a particle is drawn.
type ParticleKind uint8

const (
	ParticleColorful ParticleKind = iota
	ParticleStar
)

// ParticleModel is the look of a particle. Color is used by ParticleColorful only.
type ParticleModel struct {
	Kind  ParticleKind
	Color core.RGB
}

// Star is the white star model.
var Star = ParticleModel{Kind: ParticleStar}

// randomColor returns a colorful model with a random tint.
func randomColor(rng *rand.Rand) ParticleModel {
	return ParticleModel{
		Kind:  ParticleColorful,
		Color: core.RGB{R: rng.Float64(), G: rng.Float64(), B: rng.Float64()},
	}
}

// Particle is a short-lived decoration. It dies when Size drops below zero.
type Particle struct {
	Pos     Vec2
	Vel     Vec2
	Gravity Vec2
	Size    float64
	Shrink  float64
	Model   ParticleModel
}

// InfoText is the transient clear banner.
type InfoText struct {
	Text    string
	Created time.Time
}

// EffectParams are the spring constants of the camera.
type EffectParams struct {
	Spring        float64
	Friction      float64
	ScaleSpring   float64
	ScaleFriction float64
}

// DefaultEffectParams returns the stock spring constants.
func DefaultEffectParams() EffectParams {
	return EffectParams{Spring: 0.1, Friction: 0.5, ScaleSpring: 0.1, ScaleFriction: 0.5}
}

// Effects is the board's camera spring, beat pulse, particles and banner.
// None of it feeds back into the rules.
type Effects struct {
	Position Vec2
	Velocity Vec2
	Scale    float64
	Beat     float64

	Particles []Particle
	Info      *InfoText

	params  EffectParams
	infoTTL time.Duration
}

// NewEffects returns resting effects.
// Zero params select DefaultEffectParams.
func NewEffects(params EffectParams, infoTTL time.Duration) *Effects {
	if params == (EffectParams{}) {
		params = DefaultEffectParams()
	}
	return &Effects{
		Scale:   1,
		params:  params,
		infoTTL: infoTTL,
	}
}

// Update advances the springs and particles by one tick and expires the banner.
func (e *Effects) Update(now time.Time) {
	e.Position = e.Position.Add(e.Velocity)
	e.Scale += e.Beat

	e.Velocity = e.Velocity.Add(e.Position.Scale(-e.params.Spring))
	e.Velocity = e.Velocity.Scale(1 / (1 + e.params.Friction))

	e.Beat -= (e.Scale - 1) * e.params.ScaleSpring
	e.Beat /= 1 + e.params.ScaleFriction

	alive := e.Particles[:0]
	for _, p := range e.Particles {
		p.Pos = p.Pos.Add(p.Vel)
		p.Vel = p.Vel.Add(p.Gravity)
		p.Size -= p.Shrink
		if p.Size >= 0 {
			alive = append(alive, p)
		}
	}
	clear(e.Particles[len(alive):])
	e.Particles = alive

	if e.Info != nil && now.Sub(e.Info.Created) >= e.infoTTL {
		e.Info = nil
	}
}

// Emit adds a particle.
func (e *Effects) Emit(p Particle) {
	e.Particles = append(e.Particles, p)
}

// ShowInfo replaces the banner.
func (e *Effects) ShowInfo(text string, now time.Time) {
	e.Info = &InfoText{Text: text, Created: now}
}
