package core

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.ScreenW != 80 || cfg.ScreenH != 24 || cfg.TickRate != 60 || cfg.Seed != 0 {
		t.Errorf("DefaultConfig() = %+v", cfg)
	}
	if _, ok := cfg.ClockOrSystem().(SystemClock); !ok {
		t.Error("a config without a clock should use the system clock")
	}

	manual := NewManualClock(time.Unix(10, 0))
	cfg.Clock = manual
	if cfg.ClockOrSystem() != Clock(manual) {
		t.Error("ClockOrSystem() should return the configured clock")
	}
}
