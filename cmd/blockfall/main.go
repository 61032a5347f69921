// blockfall is a falling-block puzzle game for the terminal, solo or two
// players on one keyboard, with an optional SSH server for remote play.
//
// Usage:
//
//	blockfall list              - List available modes
//	blockfall play <mode>       - Play solo or versus
//	blockfall menu              - Start menu to pick a mode interactively
//	blockfall serve             - Start SSH server for remote play
//	blockfall scores            - Show the best solo runs
//	blockfall matches           - Show recent versus matches
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible piece sequences
//	--db <path>        - Set database path (default: ~/.blockfall/scores.db)
//	--config <path>    - Use a custom tetris.yaml
//	--log-file <path>  - Write game events to a log file
//	--log-level <lvl>  - debug, info, warn or error (default: info)
//
// Environment (also read from a .env file in the working directory):
//
//	BLOCKFALL_DB, BLOCKFALL_CONFIG, BLOCKFALL_SSH_ADDR, BLOCKFALL_LOG_FILE
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/games/tetris"
	"github.com/vovakirdan/blockfall/internal/platform/tui"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

// logger is the command-wide logger. It discards everything unless
// --log-file is set, since the game owns the terminal.
var logger *log.Logger

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockfall",
	Short: "Blockfall - falling blocks in your terminal",
	Long: `Blockfall is a falling-block puzzle game for the terminal.
Play alone, or against a friend on the same keyboard: cleared lines
are sent to the other board as garbage.

Available commands:
  list     - Show all available modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View the best solo runs
  matches  - View recent versus matches

Examples:
  blockfall play solo
  blockfall play versus --seed 42
  blockfall menu
  blockfall serve --ssh :2222
  blockfall scores`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(*cobra.Command, []string) { closeLog() },
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/"+config.AppDir+"/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tetris.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write game events to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(matchesCmd)
}

// envFlags maps flags to the environment variables that
// supply them when not given on the command line.
var envFlags = map[string]string{
	"db":       "BLOCKFALL_DB",
	"config":   "BLOCKFALL_CONFIG",
	"log-file": "BLOCKFALL_LOG_FILE",
	"ssh":      "BLOCKFALL_SSH_ADDR",
}

// setup loads .env, applies environment defaults, opens the log and wires
// the game hooks. It runs before every subcommand.
func setup(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("cannot load .env: %w", err)
	}

	for name, env := range envFlags {
		f := cmd.Flags().Lookup(name)
		if f == nil || f.Changed {
			continue
		}
		if v, ok := os.LookupEnv(env); ok {
			if err := f.Value.Set(v); err != nil {
				return fmt.Errorf("invalid %s: %w", env, err)
			}
		}
	}

	if err := openLog(); err != nil {
		return err
	}

	tetris.SetConfigPath(flagConfig)
	tetris.SetLogger(logger)

	// The game renders to stdout, so the bell goes to stderr.
	var bell io.Writer
	if cfg, err := config.LoadTetris(flagConfig); err == nil && cfg.Display.Bell {
		bell = os.Stderr
	}
	tetris.SetSound(tui.NewLogSound(logger, bell))
	return nil
}

var logFile *os.File

func openLog() error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	if flagLogFile == "" {
		logger = nil
		return nil
	}

	logFile, err = os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("cannot open log file: %w", err)
	}
	logger = log.NewWithOptions(logFile, log.Options{
		ReportTimestamp: true,
		Prefix:          "blockfall",
		Level:           level,
	})
	return nil
}

func closeLog() {
	if logFile != nil {
		logFile.Close()
	}
}
