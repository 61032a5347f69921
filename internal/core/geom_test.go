package core

import "testing"

func TestPosArithmetic(t *testing.T) {
	tests := []struct {
		name     string
		got      Pos
		expected Pos
	}{
		{"add", P(3, 20).Add(P(-1, 2)), P(2, 22)},
		{"add zero", P(4, 5).Add(Pos{}), P(4, 5)},
		{"sub", P(3, 20).Sub(P(1, -2)), P(2, 22)},
		{"sub self", P(7, -7).Sub(P(7, -7)), Pos{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.expected {
				t.Errorf("got %+v, expected %+v", tc.got, tc.expected)
			}
		})
	}
}

func TestPosAddSubInverse(t *testing.T) {
	base := P(5, 9)
	for _, d := range []Pos{P(1, 0), P(-2, 1), P(0, -2), P(2, -1)} {
		if got := base.Add(d).Sub(d); got != base {
			t.Errorf("Add(%+v).Sub(%+v) = %+v, expected %+v", d, d, got, base)
		}
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}
