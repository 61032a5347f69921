package tetris

import (
	"slices"
	"time"

	"github.com/vovakirdan/blockfall/internal/core"
)

// TimingPhase is the repeat state of a held action.
type TimingPhase uint8

const (
	// PhaseNone: just pressed, not yet handled. Soft drop never leaves it.
	PhaseNone TimingPhase = iota
	// PhaseDelayed: fired once, waiting for auto-repeat to start.
	PhaseDelayed
	// PhaseRepeat: auto-repeating.
	PhaseRepeat
	// PhaseSingle: fired once, ignored until released.
	PhaseSingle
)

// KeyTiming is the per-action timer. Since is set for Delayed and Repeat.
type KeyTiming struct {
	Phase TimingPhase
	Since time.Time
}

// InputTimer turns held actions into fired actions.
type InputTimer struct {
	delay    time.Duration
	interval time.Duration
	states   map[core.Action]KeyTiming
}

// NewInputTimer creates a timer with the given auto-repeat delay and interval.
func NewInputTimer(delay, interval time.Duration) *InputTimer {
	return &InputTimer{
		delay:    delay,
		interval: interval,
		states:   make(map[core.Action]KeyTiming),
	}
}

// Process advances the timers for the currently held actions, which must be
// in ascending order. Released actions are forgotten. It returns the actions
// to execute this tick, in order, and whether soft drop is held.
func (t *InputTimer) Process(held []core.Action, now time.Time) (fired []core.Action, softDrop bool) {
	for a := range t.states {
		if !slices.Contains(held, a) {
			delete(t.states, a)
		}
	}

	for _, a := range held {
		st := t.states[a]
		run := false

		switch st.Phase {
		case PhaseNone:
			switch a {
			case core.ActionSoftDrop:
				softDrop = true
			case core.ActionMoveLeft, core.ActionMoveRight:
				run = true
				st = KeyTiming{Phase: PhaseDelayed, Since: now}
			default:
				run = true
				st = KeyTiming{Phase: PhaseSingle}
			}
		case PhaseDelayed:
			if now.Sub(st.Since) >= t.delay {
				run = true
				st = KeyTiming{Phase: PhaseRepeat, Since: now}
			}
		case PhaseRepeat:
			if now.Sub(st.Since) >= t.interval {
				run = true
				st.Since = now
			}
		}

		t.states[a] = st
		if run {
			fired = append(fired, a)
		}
	}
	return fired, softDrop
}

// state returns the timer of an action, if it is held.
func (t *InputTimer) state(a core.Action) (KeyTiming, bool) {
	st, ok := t.states[a]
	return st, ok
}

// Reset forgets every held action.
func (t *InputTimer) Reset() {
	clear(t.states)
}
