// Package config provides YAML-based tuning and keybinding configuration
// for the block game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// TetrisConfig contains all configuration for the block game.
type TetrisConfig struct {
	Timing  TetrisTiming  `yaml:"timing"`
	Effects TetrisEffects `yaml:"effects"`
	Keys    KeyTables     `yaml:"keys"`
	Display TetrisDisplay `yaml:"display"`
}

// TetrisTiming defines the wall-clock timers of the rules engine, in milliseconds.
type TetrisTiming struct {
	GravityMS        int `yaml:"gravity_ms"`         // One row per interval
	SoftDropMS       int `yaml:"soft_drop_ms"`       // One row per interval while soft drop is held
	LockDelayMS      int `yaml:"lock_delay_ms"`      // Resting time before a piece locks
	MaxGroundMoves   int `yaml:"max_ground_moves"`   // Moves on the ground before forced lock
	RepeatDelayMS    int `yaml:"repeat_delay_ms"`    // Horizontal auto-repeat initial delay
	RepeatIntervalMS int `yaml:"repeat_interval_ms"` // Horizontal auto-repeat interval
	InfoTextMS       int `yaml:"info_text_ms"`       // Lifetime of the clear label
	DeathWindowMS    int `yaml:"death_window_ms"`    // Death animation before the game ends
}

// Gravity returns the gravity interval.
func (t TetrisTiming) Gravity() time.Duration { return ms(t.GravityMS) }

// SoftDrop returns the soft drop interval.
func (t TetrisTiming) SoftDrop() time.Duration { return ms(t.SoftDropMS) }

// LockDelay returns the lock delay.
func (t TetrisTiming) LockDelay() time.Duration { return ms(t.LockDelayMS) }

// RepeatDelay returns the auto-repeat initial delay.
func (t TetrisTiming) RepeatDelay() time.Duration { return ms(t.RepeatDelayMS) }

// RepeatInterval returns the auto-repeat interval.
func (t TetrisTiming) RepeatInterval() time.Duration { return ms(t.RepeatIntervalMS) }

// InfoText returns how long a clear label stays on screen.
func (t TetrisTiming) InfoText() time.Duration { return ms(t.InfoTextMS) }

// DeathWindow returns how long a dead board is shown before the game ends.
func (t TetrisTiming) DeathWindow() time.Duration { return ms(t.DeathWindowMS) }

func ms(v int) time.Duration {
	return time.Duration(v) * time.Millisecond
}

// TetrisEffects defines the camera spring constants.
type TetrisEffects struct {
	Spring        float64 `yaml:"spring"`
	Friction      float64 `yaml:"friction"`
	ScaleSpring   float64 `yaml:"scale_spring"`
	ScaleFriction float64 `yaml:"scale_friction"`
}

// KeyTables maps key names to action names for each local player layout.
type KeyTables struct {
	Single map[string]string `yaml:"single"` // Solo play
	Left   map[string]string `yaml:"left"`   // Versus, player 1
	Right  map[string]string `yaml:"right"`  // Versus, player 2
}

// Table returns the named table ("single", "left" or "right").
func (k KeyTables) Table(name string) (map[string]string, bool) {
	switch name {
	case "single":
		return k.Single, true
	case "left":
		return k.Left, true
	case "right":
		return k.Right, true
	}
	return nil, false
}

// TetrisDisplay defines terminal presentation parameters.
type TetrisDisplay struct {
	ShakeScale    float64 `yaml:"shake_scale"`    // Cells of camera offset per unit of spring position
	KeyHoldMS     int     `yaml:"key_hold_ms"`    // A key counts as held this long after its last press event
	HideParticles bool    `yaml:"hide_particles"` // Skip drawing particles
	Bell          bool    `yaml:"bell"`           // Ring the terminal bell on line clears
}

// KeyHold returns the terminal key hold window.
func (d TetrisDisplay) KeyHold() time.Duration { return ms(d.KeyHoldMS) }

// gameplayActions are the action names accepted in key tables.
var gameplayActions = map[string]bool{
	"MoveLeft":  true,
	"MoveRight": true,
	"RotateCW":  true,
	"RotateCCW": true,
	"SoftDrop":  true,
	"HardDrop":  true,
	"Swap":      true,
}

// Validate reports every problem found in the configuration.
func (c TetrisConfig) Validate() error {
	var errs []error

	positive := []struct {
		name string
		v    int
	}{
		{"timing.gravity_ms", c.Timing.GravityMS},
		{"timing.soft_drop_ms", c.Timing.SoftDropMS},
		{"timing.lock_delay_ms", c.Timing.LockDelayMS},
		{"timing.max_ground_moves", c.Timing.MaxGroundMoves},
		{"timing.repeat_delay_ms", c.Timing.RepeatDelayMS},
		{"timing.repeat_interval_ms", c.Timing.RepeatIntervalMS},
		{"timing.info_text_ms", c.Timing.InfoTextMS},
		{"timing.death_window_ms", c.Timing.DeathWindowMS},
	}
	for _, p := range positive {
		if p.v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", p.name, p.v))
		}
	}

	if c.Effects.Friction < 0 || c.Effects.ScaleFriction < 0 {
		errs = append(errs, errors.New("effects friction must not be negative"))
	}

	for _, name := range []string{"single", "left", "right"} {
		table, _ := c.Keys.Table(name)
		if len(table) == 0 {
			errs = append(errs, fmt.Errorf("keys.%s is empty", name))
			continue
		}
		for key, action := range table {
			if !gameplayActions[action] {
				errs = append(errs, fmt.Errorf("keys.%s.%s: unknown action %q", name, key, action))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid tetris config: %w", errors.Join(errs...))
	}
	return nil
}
