package core

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Cell is a single character position on a Screen.
type Cell struct {
	Rune  rune
	Color Color
	Bold  bool
	Tail  bool // Right half of a double-width rune in the cell before it
}

// blankCell is what Clear writes everywhere.
var blankCell = Cell{Rune: ' ', Color: ColorDefault}

// Screen is a 2D character buffer for rendering game graphics.
// It decouples drawing from the terminal, allowing the canvas to write
// simple cells while the platform handles actual display.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  max(width, 0),
		height: max(height, 0),
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()
	s.Clear()

	// Copy old content
	copyW := min(oldW, width)
	copyH := min(oldH, height)
	for y := 0; y < copyH; y++ {
		copy(s.cells[y][:copyW], oldCells[y][:copyW])
	}
}

// Clear fills the entire screen with uncolored spaces.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blankCell
		}
	}
}

// Set places a rune at the given position, keeping the cell's color.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	if !s.inBounds(x, y) {
		return
	}
	c := s.cells[y][x]
	c.Rune, c.Tail = r, false
	s.SetCell(x, y, c)
}

// SetCell replaces the cell at the given position. Overwriting either half
// of a double-width rune blanks the other half.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetCell(x, y int, c Cell) {
	if !s.inBounds(x, y) {
		return
	}
	row := s.cells[y]
	if row[x].Tail && x > 0 {
		row[x-1] = blankCell
	}
	if x+1 < s.width && row[x+1].Tail {
		row[x+1] = blankCell
	}
	row[x] = c
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.inBounds(x, y) {
		return blankCell
	}
	return s.cells[y][x]
}

func (s *Screen) inBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// DrawText writes a string horizontally starting at (x, y) with the given
// color and weight. Double-width runes take two cells; zero-width runes are
// dropped. Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string, color Color, bold bool) {
	for _, r := range text {
		switch runewidth.RuneWidth(r) {
		case 0:
			continue
		case 2:
			if x >= 0 && x+1 < s.width {
				s.SetCell(x, y, Cell{Rune: r, Color: color, Bold: bold})
				s.SetCell(x+1, y, Cell{Color: color, Bold: bold, Tail: true})
			} else {
				// Half off screen: keep the visible half blank
				s.SetCell(x, y, Cell{Rune: ' ', Color: color, Bold: bold})
				s.SetCell(x+1, y, Cell{Rune: ' ', Color: color, Bold: bold})
			}
			x += 2
		default:
			s.SetCell(x, y, Cell{Rune: r, Color: color, Bold: bold})
			x++
		}
	}
}

// TextWidth returns the number of cells DrawText uses for text.
func TextWidth(text string) int {
	n := 0
	for _, r := range text {
		n += runewidth.RuneWidth(r)
	}
	return n
}

// String converts the screen buffer to plain text, one line per row.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height) // Pre-allocate for efficiency

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			if !s.cells[y][x].Tail {
				sb.WriteRune(s.cells[y][x].Rune)
			}
		}
	}
	return sb.String()
}

// Row returns the specified row as plain text.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		if !c.Tail {
			sb.WriteRune(c.Rune)
		}
	}
	return sb.String()
}
