package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(40, 20)

	if s.Width() != 40 {
		t.Errorf("Width() = %d, expected 40", s.Width())
	}
	if s.Height() != 20 {
		t.Errorf("Height() = %d, expected 20", s.Height())
	}

	// Check that it's initialized with blank default cells
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != ' ' || cell.Color != ColorDefault {
				t.Errorf("New screen should be blank, got %q/%d at (%d, %d)", cell.Rune, cell.Color, x, y)
			}
		}
	}
}

func TestScreenSetCellGetCell(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(5, 5, 'X', ColorBrightGreen)
	cell := s.GetCell(5, 5)
	if cell.Rune != 'X' {
		t.Errorf("GetCell(5, 5).Rune = %q, expected 'X'", cell.Rune)
	}
	if cell.Color != ColorBrightGreen {
		t.Errorf("GetCell(5, 5).Color = %d, expected ColorBrightGreen", cell.Color)
	}

	// Out of bounds should be silent
	s.SetCell(-1, 0, 'A', ColorRed)
	s.SetCell(100, 0, 'A', ColorRed)
	s.SetCell(0, -1, 'A', ColorRed)
	s.SetCell(0, 100, 'A', ColorRed)

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.GetCell(100, 0).Color != ColorDefault {
		t.Error("Out of bounds GetCell should return default color")
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 10)
	s.SetCell(3, 3, 'Z', ColorOrange)

	s.Resize(20, 20)
	if cell := s.GetCell(3, 3); cell.Rune != 'Z' || cell.Color != ColorOrange {
		t.Errorf("Resize lost content: got %q/%d", cell.Rune, cell.Color)
	}

	s.Resize(2, 2)
	if s.Get(1, 1) != ' ' {
		t.Error("Shrunk screen should be blank where nothing was drawn")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "score")

	row := ""
	for x := 0; x < s.Width(); x++ {
		row += string(s.Get(x, 1))
	}
	if !strings.Contains(row, "score") {
		t.Errorf("DrawText did not write text, row = %q", row)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 3)
	s.DrawTextCentered(1, "hi")

	if s.Get(4, 1) != 'h' || s.Get(5, 1) != 'i' {
		t.Errorf("Centered text misplaced: row = %q", s.String())
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(0, 0, 5, 5))

	if s.Get(0, 0) != '┌' {
		t.Errorf("Top-left corner = %q, expected '┌'", s.Get(0, 0))
	}
	if s.Get(4, 4) != '┘' {
		t.Errorf("Bottom-right corner = %q, expected '┘'", s.Get(4, 4))
	}
	if s.Get(2, 0) != '─' {
		t.Errorf("Top edge = %q, expected '─'", s.Get(2, 0))
	}
	if s.Get(0, 2) != '│' {
		t.Errorf("Left edge = %q, expected '│'", s.Get(0, 2))
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	expected := "a  \n  b"
	if got := s.String(); got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
}
