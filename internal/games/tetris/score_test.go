package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeConsecutiveTetrises(t *testing.T) {
	var s ScoreHandler

	send, label := s.Analyze(4, ShapeI, false)
	assert.Equal(t, 4, send, "3 + combo 1 + bonus 0")
	assert.Equal(t, LabelTetris, label)

	send, label = s.Analyze(4, ShapeI, false)
	assert.Equal(t, 6, send, "3 + combo 2 + bonus floor(sqrt(1))")
	assert.Equal(t, LabelTetris, label)
	assert.Equal(t, 2, s.Combo())
	assert.Equal(t, 2, s.BackToBack())
}

func TestAnalyzeTable(t *testing.T) {
	tests := []struct {
		name    string
		cleared int
		shape   Shape
		covered bool
		send    int
		label   string
	}{
		{"nothing", 0, ShapeT, true, 0, ""},
		{"single", 1, ShapeL, false, 0, LabelSingle},
		{"double", 2, ShapeL, true, 1, LabelDouble},
		{"triple", 3, ShapeS, false, 2, LabelTriple},
		{"tetris", 4, ShapeI, false, 3 + 1, LabelTetris},
		{"uncovered T single", 1, ShapeT, false, 0, LabelSingle},
		{"t-spin single", 1, ShapeT, true, 2, LabelTSpinSingle},
		{"t-spin double", 2, ShapeT, true, 4, LabelTSpinDouble},
		{"t-spin triple", 3, ShapeT, true, 6, LabelTSpinTriple},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s ScoreHandler
			send, label := s.Analyze(tt.cleared, tt.shape, tt.covered)
			assert.Equal(t, tt.send, send)
			assert.Equal(t, tt.label, label)
		})
	}
}

func TestAnalyzeComboAndBackToBack(t *testing.T) {
	var s ScoreHandler

	s.Analyze(1, ShapeJ, false)
	s.Analyze(1, ShapeJ, false)
	send, _ := s.Analyze(2, ShapeJ, false)
	assert.Equal(t, 3, s.Combo())
	assert.Equal(t, 1+3/2, send)

	// A placement without a clear breaks the combo but keeps back-to-back.
	s.Analyze(4, ShapeI, false)
	assert.Equal(t, 1, s.BackToBack())
	s.Analyze(0, ShapeO, false)
	assert.Equal(t, 0, s.Combo())
	assert.Equal(t, 1, s.BackToBack())

	// An ordinary clear breaks back-to-back.
	s.Analyze(1, ShapeO, false)
	assert.Equal(t, 0, s.BackToBack())
}

func TestAnalyzeBackToBackBonusGrows(t *testing.T) {
	var s ScoreHandler
	var send int
	for i := 0; i < 5; i++ {
		send, _ = s.Analyze(4, ShapeI, false)
	}
	// combo 5, b2b 5, bonus floor(sqrt(4)) = 2
	assert.Equal(t, 3+5+2, send)

	// T-spins also extend the streak.
	send, label := s.Analyze(2, ShapeT, true)
	assert.Equal(t, LabelTSpinDouble, label)
	assert.Equal(t, 6, s.BackToBack())
	assert.Equal(t, 4+6/2+2, send)
}
