package core

import (
	"testing"
	"time"
)

func TestManualClockAdvance(t *testing.T) {
	start := time.Unix(1000, 0)
	c := NewManualClock(start)

	if !c.Now().Equal(start) {
		t.Fatalf("Now() = %v, expected %v", c.Now(), start)
	}

	c.Advance(150 * time.Millisecond)
	if got := c.Now().Sub(start); got != 150*time.Millisecond {
		t.Errorf("elapsed = %v, expected 150ms", got)
	}
}

func TestPausableClockHidesPausedTime(t *testing.T) {
	base := NewManualClock(time.Unix(0, 0))
	c := NewPausableClock(base)

	t0 := c.Now()
	base.Advance(time.Second)
	c.Pause()

	frozen := c.Now()
	base.Advance(5 * time.Second)
	if !c.Now().Equal(frozen) {
		t.Errorf("clock moved while paused: %v vs %v", c.Now(), frozen)
	}

	c.Resume()
	base.Advance(500 * time.Millisecond)

	if got := c.Now().Sub(t0); got != 1500*time.Millisecond {
		t.Errorf("elapsed = %v, expected 1.5s", got)
	}
	if c.Paused() {
		t.Error("Paused() should be false after Resume")
	}
}

func TestPausableClockIdempotent(t *testing.T) {
	base := NewManualClock(time.Unix(0, 0))
	c := NewPausableClock(base)

	c.Resume() // not paused, no-op
	c.Pause()
	base.Advance(time.Second)
	c.Pause() // already paused, must not reset pausedAt
	c.Resume()

	if got := c.Now().Sub(time.Unix(0, 0)); got != 0 {
		t.Errorf("elapsed = %v, expected 0", got)
	}
}
