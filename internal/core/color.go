package core

import "math"

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorDarkGray
)

// RGB is a color with unit-interval float components.
type RGB struct {
	R, G, B float64
}

// palette lists the approximate RGB value of each named terminal color.
var palette = []struct {
	c   Color
	rgb RGB
}{
	{ColorRed, RGB{0.8, 0, 0}},
	{ColorGreen, RGB{0, 0.8, 0}},
	{ColorYellow, RGB{0.8, 0.8, 0}},
	{ColorBlue, RGB{0, 0, 0.8}},
	{ColorMagenta, RGB{0.8, 0, 0.8}},
	{ColorCyan, RGB{0, 0.8, 0.8}},
	{ColorWhite, RGB{0.75, 0.75, 0.75}},
	{ColorBrightRed, RGB{1, 0, 0}},
	{ColorBrightGreen, RGB{0, 1, 0}},
	{ColorBrightYellow, RGB{1, 1, 0}},
	{ColorBrightBlue, RGB{0, 0, 1}},
	{ColorBrightMagenta, RGB{1, 0, 1}},
	{ColorBrightCyan, RGB{0, 1, 1}},
	{ColorBrightWhite, RGB{1, 1, 1}},
	{ColorOrange, RGB{1, 0.5, 0}},
	{ColorGray, RGB{0.55, 0.55, 0.55}},
	{ColorDarkGray, RGB{0.3, 0.3, 0.3}},
}

// Nearest returns the terminal color closest to rgb (squared euclidean distance).
func (rgb RGB) Nearest() Color {
	best := ColorDefault
	bestDist := math.Inf(1)
	for _, p := range palette {
		dr := rgb.R - p.rgb.R
		dg := rgb.G - p.rgb.G
		db := rgb.B - p.rgb.B
		d := dr*dr + dg*dg + db*db
		if d < bestDist {
			best = p.c
			bestDist = d
		}
	}
	return best
}
