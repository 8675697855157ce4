package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(6, 3)

	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 6x3", s.Width(), s.Height())
	}
	expected := strings.Repeat("      \n", 2) + "      "
	if got := s.String(); got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
}

func TestNewScreenNegativeSize(t *testing.T) {
	s := NewScreen(-3, 2)
	if s.Width() != 0 || s.Height() != 2 {
		t.Errorf("size = %dx%d, expected 0x2", s.Width(), s.Height())
	}
	s.Set(0, 0, 'X') // Must not panic
}

func TestScreenSetColorClips(t *testing.T) {
	s := NewScreen(4, 4)

	tests := []struct {
		x, y int
		ok   bool
	}{
		{0, 0, true},
		{3, 3, true},
		{-1, 0, false},
		{4, 0, false},
		{0, -1, false},
		{0, 4, false},
	}

	for _, tt := range tests {
		s.SetColor(tt.x, tt.y, '#', ColorRed)
		g := s.GetGlyph(tt.x, tt.y)
		if tt.ok && (g.Rune != '#' || g.Color != ColorRed) {
			t.Errorf("GetGlyph(%d, %d) = %+v, expected red '#'", tt.x, tt.y, g)
		}
		if !tt.ok && g != blank {
			t.Errorf("GetGlyph(%d, %d) = %+v, expected blank", tt.x, tt.y, g)
		}
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(3, 2)
	s.SetColor(1, 1, 'X', ColorGreen)
	s.Clear()

	if g := s.GetGlyph(1, 1); g != blank {
		t.Errorf("GetGlyph(1, 1) after Clear() = %+v, expected blank", g)
	}
}

func TestScreenDrawTextColor(t *testing.T) {
	s := NewScreen(8, 1)
	s.DrawTextColor(5, 0, "██▶x", ColorBrightGreen)

	// Multi-byte runes take one column each; the tail is clipped.
	if got := s.String(); got != "     ██▶" {
		t.Errorf("String() = %q, expected %q", got, "     ██▶")
	}
	if g := s.GetGlyph(7, 0); g.Color != ColorBrightGreen {
		t.Errorf("GetGlyph(7, 0).Color = %v, expected ColorBrightGreen", g.Color)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextCentered(0, "Paused", ColorWhite)

	if got := s.String(); got != "  Paused  " {
		t.Errorf("String() = %q, expected %q", got, "  Paused  ")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 4)
	s.DrawRect(NewRect(0, 0, 5, 4), '.')
	s.DrawBox(NewRect(0, 0, 4, 3), ColorGray)

	expected := strings.Join([]string{
		"┌──┐.",
		"│..│.",
		"└──┘.",
		".....",
	}, "\n")
	if got := s.String(); got != expected {
		t.Errorf("String() =\n%s\nexpected\n%s", got, expected)
	}
	if g := s.GetGlyph(0, 0); g.Color != ColorGray {
		t.Errorf("corner color = %v, expected ColorGray", g.Color)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 4)
	s.Set(1, 1, 'X')
	s.Resize(6, 2)

	if s.Width() != 6 || s.Height() != 2 {
		t.Fatalf("size after Resize = %dx%d, expected 6x2", s.Width(), s.Height())
	}
	if s.Get(1, 1) != ' ' {
		t.Errorf("Get(1, 1) after Resize = %q, expected blank", s.Get(1, 1))
	}
	s.Set(5, 1, 'Y')
	if s.Get(5, 1) != 'Y' {
		t.Errorf("Get(5, 1) = %q, expected 'Y'", s.Get(5, 1))
	}
}
