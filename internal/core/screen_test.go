package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	// Check that it's initialized with spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenSetCellKeepsStyle(t *testing.T) {
	s := NewScreen(4, 2)
	s.SetCell(1, 1, Cell{Rune: '█', Color: ColorYellow, Bold: true})

	c := s.GetCell(1, 1)
	if c.Rune != '█' || c.Color != ColorYellow || !c.Bold {
		t.Errorf("GetCell(1, 1) = %+v, expected bold yellow block", c)
	}

	// Set changes only the rune
	s.Set(1, 1, '▀')
	c = s.GetCell(1, 1)
	if c.Rune != '▀' || c.Color != ColorYellow {
		t.Errorf("Set should keep color, got %+v", c)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.SetCell(x, y, Cell{Rune: 'X', Color: ColorRed})
		}
	}

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if c := s.GetCell(x, y); c != blankCell {
				t.Errorf("After Clear, expected blank at (%d, %d), got %+v", x, y, c)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello", ColorCyan, false)

	for i, ch := range "Hello" {
		c := s.GetCell(2+i, 1)
		if c.Rune != ch || c.Color != ColorCyan {
			t.Errorf("DrawText: expected cyan %q at (%d, 1), got %+v", ch, 2+i, c)
		}
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello", ColorDefault, false)
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextMultibyte(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawText(0, 0, "é★x", ColorDefault, false)

	// Each rune takes one cell regardless of its byte length
	if s.Get(0, 0) != 'é' || s.Get(1, 0) != '★' || s.Get(2, 0) != 'x' {
		t.Errorf("DrawText should advance one cell per rune, got %q", s.Row(0))
	}
}

func TestScreenDrawTextWide(t *testing.T) {
	s := NewScreen(6, 1)
	s.DrawText(0, 0, "世x", ColorYellow, false)

	if s.Get(0, 0) != '世' || !s.GetCell(1, 0).Tail || s.Get(2, 0) != 'x' {
		t.Fatalf("wide rune should take two cells, got %+v %+v %+v", s.GetCell(0, 0), s.GetCell(1, 0), s.GetCell(2, 0))
	}
	if s.Row(0) != "世x   " {
		t.Errorf("Row() = %q, expected %q", s.Row(0), "世x   ")
	}

	// Overwriting the right half blanks the left half
	s.Set(1, 0, '-')
	if s.Row(0) != " -x   " {
		t.Errorf("Row() after overwrite = %q, expected %q", s.Row(0), " -x   ")
	}

	// A wide rune that does not fit at the right edge is blanked
	s.DrawText(5, 0, "界", ColorDefault, false)
	if s.Get(5, 0) != ' ' || s.GetCell(5, 0).Tail {
		t.Errorf("clipped wide rune left %+v", s.GetCell(5, 0))
	}
}

func TestTextWidth(t *testing.T) {
	tests := []struct {
		text  string
		width int
	}{
		{"", 0},
		{"Score: 7", 8},
		{"世界", 4},
		{"é★x", 3},
	}
	for _, tc := range tests {
		if got := TextWidth(tc.text); got != tc.width {
			t.Errorf("TextWidth(%q) = %d, expected %d", tc.text, got, tc.width)
		}
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA", ColorDefault, false)
	s.DrawText(0, 1, "BBBBB", ColorDefault, false)
	s.DrawText(0, 2, "CCCCC", ColorDefault, false)

	result := s.String()
	expected := "AAAAA\nBBBBB\nCCCCC"

	if result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello", ColorDefault, false)
	s.DrawText(0, 5, "World", ColorDefault, false)

	// Resize smaller - should preserve top-left content
	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}

	row0 := s.Row(0)
	if !strings.HasPrefix(row0, "Hello") {
		t.Errorf("Content should be preserved, row 0 = %q", row0)
	}

	// Resize larger - new area should be blank
	s.Resize(12, 6)
	if s.Get(11, 5) != ' ' {
		t.Errorf("New area should be blank, got %q", s.Get(11, 5))
	}
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("Content should survive growing, row 0 = %q", s.Row(0))
	}
}

func TestScreenNegativeSize(t *testing.T) {
	s := NewScreen(-3, -1)
	if s.Width() != 0 || s.Height() != 0 {
		t.Errorf("Negative dimensions should clamp to 0, got %dx%d", s.Width(), s.Height())
	}
	if s.String() != "" {
		t.Errorf("Empty screen should render empty, got %q", s.String())
	}
}
