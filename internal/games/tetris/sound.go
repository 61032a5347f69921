package tetris

// SoundPlayer plays the board's two cues. The board triggers them but owns
// no playback engine.
type SoundPlayer interface {
	// LineClear plays the clear sound shifted by the given number of semitones.
	LineClear(semitones int)
	HardDrop()
}

// NopSound discards every cue.
type NopSound struct{}

func (NopSound) LineClear(int) {}
func (NopSound) HardDrop()     {}
