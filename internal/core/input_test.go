package core

import (
	"reflect"
	"testing"
)

func TestActionStringRoundTrip(t *testing.T) {
	for a := ActionMoveLeft; a <= ActionPause; a++ {
		parsed, ok := ParseAction(a.String())
		if !ok {
			t.Errorf("ParseAction(%q) failed", a.String())
			continue
		}
		if parsed != a {
			t.Errorf("ParseAction(%q) = %v, expected %v", a.String(), parsed, a)
		}
	}

	if _, ok := ParseAction("Teleport"); ok {
		t.Error("ParseAction should reject unknown names")
	}
	if _, ok := ParseAction("None"); ok {
		t.Error("ParseAction should reject None")
	}
}

func TestActionIsGameplay(t *testing.T) {
	tests := []struct {
		action   Action
		expected bool
	}{
		{ActionNone, false},
		{ActionMoveLeft, true},
		{ActionSoftDrop, true},
		{ActionSwap, true},
		{ActionPause, false},
		{ActionQuit, false},
	}

	for _, tc := range tests {
		t.Run(tc.action.String(), func(t *testing.T) {
			if got := tc.action.IsGameplay(); got != tc.expected {
				t.Errorf("IsGameplay() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestInputFrameHeldSorted(t *testing.T) {
	f := NewInputFrame()
	f.Hold("space")
	f.Hold("a")
	f.Hold("left")
	f.Keys["d"] = false

	expected := []Key{"a", "left", "space"}
	if got := f.Held(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Held() = %v, expected %v", got, expected)
	}
}

func TestInputFrameClearAndClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionPause)
	f.Hold("up")

	clone := f.Clone()
	f.Clear()

	if f.Has(ActionPause) || len(f.Held()) != 0 {
		t.Error("Clear() should remove actions and keys")
	}
	if !clone.Has(ActionPause) || len(clone.Held()) != 1 {
		t.Error("Clone() should be independent of the original")
	}

	var zero InputFrame
	if zero.Has(ActionPause) {
		t.Error("zero frame should have no actions")
	}
	zero.Set(ActionBack)
	zero.Hold("esc")
	if !zero.Has(ActionBack) || len(zero.Held()) != 1 {
		t.Error("Set/Hold should allocate on a zero frame")
	}
}
