package core

import "testing"

func TestRGBNearest(t *testing.T) {
	tests := []struct {
		name     string
		rgb      RGB
		expected Color
	}{
		{"cyan I piece", RGB{0, 1, 1}, ColorBrightCyan},
		{"blue J piece", RGB{0, 0, 1}, ColorBrightBlue},
		{"orange L piece", RGB{1, 0.5, 0}, ColorOrange},
		{"yellow O piece", RGB{1, 1, 0}, ColorBrightYellow},
		{"green S piece", RGB{0, 1, 0}, ColorBrightGreen},
		{"magenta T piece", RGB{1, 0, 1}, ColorBrightMagenta},
		{"red Z piece", RGB{1, 0, 0}, ColorBrightRed},
		{"garbage gray", RGB{0.3, 0.3, 0.3}, ColorDarkGray},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.rgb.Nearest(); got != tc.expected {
				t.Errorf("Nearest() = %d, expected %d", got, tc.expected)
			}
		})
	}
}
