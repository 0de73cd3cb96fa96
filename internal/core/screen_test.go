package core

import (
	"strings"
	"testing"
)

// rowText returns row y as plain text.
func rowText(s *Screen, y int) string {
	var sb strings.Builder
	for x := range s.Width() {
		sb.WriteRune(s.GetCell(x, y).Rune)
	}
	return sb.String()
}

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("New screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, 'X', ColorBrightRed)
	if s.GetCell(5, 5).Rune != 'X' {
		t.Errorf("rune at (5, 5) = %q, expected 'X'", s.GetCell(5, 5).Rune)
	}
	if s.GetCell(5, 5).Color != ColorBrightRed {
		t.Errorf("GetCell(5, 5).Color = %d, expected ColorBrightRed", s.GetCell(5, 5).Color)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.GetCell(-1, 0).Rune != ' ' {
		t.Error("Out of bounds cells should read as blank")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 3)
	s.SetColored(1, 1, '#', ColorBrightBlue)
	s.Clear()

	if c := s.GetCell(1, 1); c != blank {
		t.Errorf("Clear() left %+v at (1, 1)", c)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawTextColored(2, 1, "Score", ColorYellow)

	if got := rowText(s, 1); got[2:7] != "Score" {
		t.Errorf("row 1 = %q, expected Score at column 2", got)
	}
	if s.GetCell(6, 1).Color != ColorYellow {
		t.Error("DrawTextColored should color every rune")
	}

	// Clipped at the right edge without panicking
	s.DrawText(18, 0, "overflow")
	if s.GetCell(19, 0).Rune != 'v' {
		t.Errorf("rune at (19, 0) = %q, expected 'v'", s.GetCell(19, 0).Rune)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextCentered(0, "ab")

	if rowText(s, 0) != "    ab    " {
		t.Errorf("row 0 = %q", rowText(s, 0))
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(6, 6)
	s.DrawRect(NewRect(1, 1, 3, 2), '#', ColorBrightGreen)

	tests := []struct {
		x, y     int
		expected rune
	}{
		{1, 1, '#'},
		{3, 2, '#'},
		{4, 1, ' '},
		{1, 3, ' '},
		{0, 0, ' '},
	}
	for _, tc := range tests {
		if got := s.GetCell(tc.x, tc.y).Rune; got != tc.expected {
			t.Errorf("rune at (%d, %d) = %q, expected %q", tc.x, tc.y, got, tc.expected)
		}
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 4)
	s.DrawBox(NewRect(0, 0, 5, 4))

	expected := "┌───┐\n│   │\n│   │\n└───┘"
	if s.String() != expected {
		t.Errorf("DrawBox() produced:\n%s\nexpected:\n%s", s.String(), expected)
	}
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(5, 1)
	s.DrawHLine(1, 0, 3, '─')

	if rowText(s, 0) != " ─── " {
		t.Errorf("row 0 = %q", rowText(s, 0))
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 2)
	s.SetColored(1, 1, 'Z', ColorCyan)

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Fatalf("Resize() = %dx%d, expected 8x4", s.Width(), s.Height())
	}
	if c := s.GetCell(1, 1); c.Rune != 'Z' || c.Color != ColorCyan {
		t.Errorf("Resize() should preserve content, got %+v", c)
	}

	s.Resize(1, 1)
	if s.GetCell(1, 1).Rune != ' ' {
		t.Error("Shrunk screen should not expose old cells")
	}
}
