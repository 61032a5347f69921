package core

import (
	"strings"
	"testing"
)

// lines splits a screen dump into rows.
func lines(s *Screen) []string {
	return strings.Split(s.String(), "\n")
}

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(6, 3)

	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, want 6x3", s.Width(), s.Height())
	}
	if got, want := s.String(), "      \n      \n      "; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(4, 4)

	points := []struct{ x, y int }{{-1, 0}, {4, 0}, {0, -1}, {0, 4}}
	for _, p := range points {
		s.Set(p.x, p.y, 'X')
		if got := s.GetCell(p.x, p.y); got != (Cell{Rune: ' '}) {
			t.Errorf("GetCell(%d, %d) = %+v, want blank", p.x, p.y, got)
		}
	}
	if strings.ContainsRune(s.String(), 'X') {
		t.Error("out of bounds writes leaked into the buffer")
	}
}

func TestScreenText(t *testing.T) {
	tests := []struct {
		name string
		draw func(s *Screen)
		want []string
	}{
		{
			name: "plain",
			draw: func(s *Screen) { s.DrawText(1, 0, "abc") },
			want: []string{" abc    ", "        "},
		},
		{
			name: "clipped right",
			draw: func(s *Screen) { s.DrawText(6, 1, "xyz") },
			want: []string{"        ", "      xy"},
		},
		{
			name: "clipped left",
			draw: func(s *Screen) { s.DrawText(-2, 0, "hello") },
			want: []string{"llo     ", "        "},
		},
		{
			name: "centered",
			draw: func(s *Screen) { s.DrawTextCentered(1, "ok") },
			want: []string{"        ", "   ok   "},
		},
		{
			name: "multi-byte runes take one column",
			draw: func(s *Screen) { s.DrawText(0, 0, "×2█") },
			want: []string{"×2█     ", "        "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScreen(8, 2)
			tt.draw(s)
			got := lines(s)
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("row %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestScreenShapes(t *testing.T) {
	s := NewScreen(7, 5)
	s.DrawRect(NewRect(2, 1, 3, 3), '#')
	s.DrawBox(NewRect(0, 0, 7, 5))

	want := []string{
		"┌─────┐",
		"│ ### │",
		"│ ### │",
		"│ ### │",
		"└─────┘",
	}
	got := lines(s)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestScreenColors(t *testing.T) {
	s := NewScreen(10, 3)
	s.SetColor(1, 1, '█', ColorBrightCyan)
	s.DrawTextColor(3, 2, "×2", ColorGray)

	if c := s.GetCell(1, 1); c.Rune != '█' || c.Color != ColorBrightCyan {
		t.Errorf("GetCell(1, 1) = %+v, want cyan block", c)
	}
	if c := s.GetCell(4, 2); c.Rune != '2' || c.Color != ColorGray {
		t.Errorf("GetCell(4, 2) = %+v, want gray '2'", c)
	}
	if c := s.GetCell(0, 0); c.Color != ColorDefault {
		t.Errorf("untouched cell has color %v", c.Color)
	}

	s.Clear()
	if c := s.GetCell(1, 1); c != (Cell{Rune: ' '}) {
		t.Errorf("Clear left %+v", c)
	}
}

func TestScreenResizeKeepsTopLeft(t *testing.T) {
	s := NewScreen(6, 3)
	s.DrawText(0, 0, "Hello!")
	s.DrawText(0, 2, "World!")

	s.Resize(4, 2)
	if got, want := s.String(), "Hell\n    "; got != want {
		t.Errorf("after shrink String() = %q, want %q", got, want)
	}

	s.Resize(5, 3)
	if got, want := s.String(), "Hell \n     \n     "; got != want {
		t.Errorf("after grow String() = %q, want %q", got, want)
	}

	s.Resize(-1, 2)
	if s.Width() != 0 || s.String() != "\n" {
		t.Errorf("negative width should clamp to 0, got %dx%d %q", s.Width(), s.Height(), s.String())
	}
}
