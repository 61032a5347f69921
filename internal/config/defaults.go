package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the built-in configuration.
// It mirrors defaults/tetris.yaml and is used when the embedded file cannot be parsed.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Timing: TetrisTiming{
			GravityMS:        1000,
			SoftDropMS:       20,
			LockDelayMS:      500,
			MaxGroundMoves:   10,
			RepeatDelayMS:    150,
			RepeatIntervalMS: 20,
			InfoTextMS:       1000,
			DeathWindowMS:    1000,
		},
		Effects: TetrisEffects{
			Spring:        0.1,
			Friction:      0.5,
			ScaleSpring:   0.1,
			ScaleFriction: 0.5,
		},
		Keys: KeyTables{
			Single: map[string]string{
				"left":  "MoveLeft",
				"right": "MoveRight",
				"up":    "RotateCW",
				"x":     "RotateCW",
				"z":     "RotateCCW",
				"down":  "SoftDrop",
				"space": "HardDrop",
				"c":     "Swap",
			},
			Left: map[string]string{
				"a":     "MoveLeft",
				"d":     "MoveRight",
				"w":     "RotateCW",
				"q":     "RotateCCW",
				"s":     "SoftDrop",
				"space": "HardDrop",
				"e":     "Swap",
			},
			Right: map[string]string{
				"left":  "MoveLeft",
				"right": "MoveRight",
				"up":    "RotateCW",
				",":     "RotateCCW",
				"down":  "SoftDrop",
				"/":     "HardDrop",
				".":     "Swap",
			},
		},
		Display: TetrisDisplay{
			ShakeScale: 4.0,
			KeyHoldMS:  120,
		},
	}
}

// fillDefaults replaces zero-valued settings with the matching value from def.
// Key tables are replaced as a whole so a user table never inherits stray default keys.
func (c *TetrisConfig) fillDefaults(def TetrisConfig) {
	intFields := []struct {
		dst *int
		src int
	}{
		{&c.Timing.GravityMS, def.Timing.GravityMS},
		{&c.Timing.SoftDropMS, def.Timing.SoftDropMS},
		{&c.Timing.LockDelayMS, def.Timing.LockDelayMS},
		{&c.Timing.MaxGroundMoves, def.Timing.MaxGroundMoves},
		{&c.Timing.RepeatDelayMS, def.Timing.RepeatDelayMS},
		{&c.Timing.RepeatIntervalMS, def.Timing.RepeatIntervalMS},
		{&c.Timing.InfoTextMS, def.Timing.InfoTextMS},
		{&c.Timing.DeathWindowMS, def.Timing.DeathWindowMS},
		{&c.Display.KeyHoldMS, def.Display.KeyHoldMS},
	}
	for _, f := range intFields {
		if *f.dst == 0 {
			*f.dst = f.src
		}
	}

	if c.Effects == (TetrisEffects{}) {
		c.Effects = def.Effects
	}
	if c.Display.ShakeScale == 0 {
		c.Display.ShakeScale = def.Display.ShakeScale
	}

	if len(c.Keys.Single) == 0 {
		c.Keys.Single = def.Keys.Single
	}
	if len(c.Keys.Left) == 0 {
		c.Keys.Left = def.Keys.Left
	}
	if len(c.Keys.Right) == 0 {
		c.Keys.Right = def.Keys.Right
	}
}
