package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a mode",
	Long: `Start playing the specified mode: solo or versus.

Solo controls:
  Left/Right   - Move
  Up/X         - Rotate clockwise
  Z            - Rotate counter-clockwise
  Down         - Soft drop
  Space        - Hard drop
  C            - Hold

Versus controls (P1 / P2):
  A D / Left Right  - Move
  W Q / Up ,        - Rotate clockwise / counter-clockwise
  S / Down          - Soft drop
  Space / /         - Hard drop
  E / .             - Hold

Everywhere:
  P/Esc        - Pause
  R            - Restart (after game over)
  Esc          - Quit (when paused or after game over)
  Ctrl+C       - Quit

Keys can be rebound in tetris.yaml (see --config).

Examples:
  blockfall play solo
  blockfall play versus
  blockfall play solo --seed 7
  blockfall play versus --config ./my-tetris.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed
	return cfg
}

// gameOptions loads the display settings and opens storage. The returned
// store may be nil; the game still works without it.
func gameOptions() tui.GameOptions {
	opts := tui.GameOptions{Logger: logger}

	cfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
		cfg = config.DefaultTetrisConfig()
	}
	opts.KeyHold = cfg.Display.KeyHold()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		return opts
	}
	opts.Store = store
	return opts
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'blockfall list' to see available modes.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	opts := gameOptions()
	runErr := tui.Run(game, runtimeConfig(), opts)

	// Close store before potential exit
	if opts.Store != nil {
		opts.Store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
