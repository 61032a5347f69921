package tui

import (
	"io"

	"github.com/charmbracelet/log"
)

// LogSound turns board cues into debug log lines and, optionally, the
// terminal bell. It satisfies the game's sound player interface.
type LogSound struct {
	logger *log.Logger
	bell   io.Writer // nil keeps the terminal quiet
}

// NewLogSound creates a cue sink. A nil logger discards the log lines.
func NewLogSound(logger *log.Logger, bell io.Writer) *LogSound {
	return &LogSound{logger: logger, bell: bell}
}

// LineClear logs a line clear pitched up by semitones and rings the bell.
func (s *LogSound) LineClear(semitones int) {
	if s.logger != nil {
		s.logger.Debug("sound", "cue", "clear", "semitones", semitones)
	}
	if s.bell != nil {
		//nolint:errcheck // Best-effort bell
		s.bell.Write([]byte{'\a'})
	}
}

// HardDrop logs the hard drop thud.
func (s *LogSound) HardDrop() {
	if s.logger != nil {
		s.logger.Debug("sound", "cue", "drop")
	}
}
