package tetris

import "math"

// Clear labels shown in the info banner.
const (
	LabelTetris      = "TETRIS"
	LabelTSpinSingle = "T-SPIN SINGLE"
	LabelTSpinDouble = "T-SPIN DOUBLE"
	LabelTSpinTriple = "T-SPIN TRIPLE"
	LabelSingle      = "SINGLE"
	LabelDouble      = "DOUBLE"
	LabelTriple      = "TRIPLE"
)

// ScoreHandler turns placements into attack lines, tracking combo and
// back-to-back streaks.
type ScoreHandler struct {
	combo int
	b2b   int
}

// Combo returns the number of consecutive line-clearing placements.
func (s *ScoreHandler) Combo() int { return s.combo }

// BackToBack returns the number of consecutive tetris or T-spin clears.
func (s *ScoreHandler) BackToBack() int { return s.b2b }

// Analyze must be called for every locked piece, including those that
// cleared nothing. covered reports whether the piece could not move up one
// row before it was baked. It returns the attack and a label, or "" for none.
func (s *ScoreHandler) Analyze(cleared int, shape Shape, covered bool) (int, string) {
	tspin := shape == ShapeT && covered

	if cleared > 0 {
		s.combo++
		if cleared == 4 || tspin {
			s.b2b++
		} else {
			s.b2b = 0
		}
	} else {
		s.combo = 0
	}

	bonus := 0
	if s.b2b > 0 {
		bonus = int(math.Floor(math.Sqrt(float64(s.b2b - 1))))
	}

	switch {
	case cleared <= 0:
		return 0, ""
	case cleared == 4:
		return 3 + s.combo + bonus, LabelTetris
	case tspin:
		switch cleared {
		case 1:
			return 2 + s.combo/2 + bonus, LabelTSpinSingle
		case 2:
			return 4 + s.combo/2 + bonus, LabelTSpinDouble
		case 3:
			return 6 + s.combo/2 + bonus, LabelTSpinTriple
		}
	default:
		send := cleared - 1 + s.combo/2 + bonus
		switch cleared {
		case 1:
			return send, LabelSingle
		case 2:
			return send, LabelDouble
		case 3:
			return send, LabelTriple
		}
	}
	return 0, ""
}
