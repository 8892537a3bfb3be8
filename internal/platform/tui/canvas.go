package tui

import (
	"math"

	"github.com/vovakirdan/tui-catch/internal/core"
)

// Half-block glyphs used to show two vertical pixels per cell.
const (
	blockFull      = '█'
	blockUpperHalf = '▀'
	blockLowerHalf = '▄'
)

// noPixel marks an unset sub-cell pixel.
const noPixel core.Color = math.MaxUint8

// Canvas is a terminal drawing surface with 2x vertical resolution.
// One canvas unit is one column wide and half a row tall, so shapes keep
// their proportions on typical terminal fonts. Drawing is composed straight
// into a core.Screen in call order.
type Canvas struct {
	screen *core.Screen
	pixels []core.Color // Flat slice: [y * width + x], noPixel if unset
	dt     float64

	fill  core.Color
	align core.Align
	style core.TextStyle
}

// NewCanvas creates a canvas covering a terminal of the given cell size.
func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{screen: core.NewScreen(cols, rows)}
	c.allocate()
	return c
}

func (c *Canvas) allocate() {
	c.pixels = make([]core.Color, c.screen.Width()*c.screen.Height()*2)
	for i := range c.pixels {
		c.pixels[i] = noPixel
	}
}

// Resize changes the terminal size and clears the canvas.
func (c *Canvas) Resize(cols, rows int) {
	c.screen.Resize(cols, rows)
	c.allocate()
}

// SetDeltaTime sets the frame time reported to the game.
func (c *Canvas) SetDeltaTime(ms float64) {
	c.dt = ms
}

// Screen returns the composed cell buffer.
func (c *Canvas) Screen() *core.Screen {
	return c.screen
}

// Width returns the canvas width in units (columns).
func (c *Canvas) Width() float64 {
	return float64(c.screen.Width())
}

// Height returns the canvas height in units (two per row).
func (c *Canvas) Height() float64 {
	return float64(c.screen.Height() * 2)
}

// DeltaTime returns the milliseconds since the previous frame.
func (c *Canvas) DeltaTime() float64 {
	return c.dt
}

// Background clears the canvas. Terminals keep their own background color,
// so the color only affects pixel frontends.
func (c *Canvas) Background(core.Color) {
	c.screen.Clear()
	for i := range c.pixels {
		c.pixels[i] = noPixel
	}
}

// Fill sets the color for shapes and text.
func (c *Canvas) Fill(col core.Color) {
	c.fill = col
}

// Ellipse fills every pixel whose center lies inside the ellipse. An
// ellipse smaller than one pixel still marks the pixel under its center.
func (c *Canvas) Ellipse(cx, cy, w, h float64) {
	rx, ry := w/2, h/2
	if rx <= 0 || ry <= 0 {
		c.setPixel(int(math.Floor(cx)), int(math.Floor(cy)))
		return
	}

	minX := int(math.Floor(cx - rx))
	maxX := int(math.Ceil(cx + rx))
	minY := int(math.Floor(cy - ry))
	maxY := int(math.Ceil(cy + ry))

	drawn := false
	for py := minY; py < maxY; py++ {
		dy := (float64(py) + 0.5 - cy) / ry
		for px := minX; px < maxX; px++ {
			dx := (float64(px) + 0.5 - cx) / rx
			if dx*dx+dy*dy <= 1 {
				c.setPixel(px, py)
				drawn = true
			}
		}
	}
	if !drawn {
		c.setPixel(int(math.Floor(cx)), int(math.Floor(cy)))
	}
}

// setPixel paints one sub-cell pixel and recomposes its cell.
func (c *Canvas) setPixel(px, py int) {
	w := c.screen.Width()
	if px < 0 || px >= w || py < 0 || py >= c.screen.Height()*2 {
		return
	}
	c.pixels[py*w+px] = c.fill
	c.composeCell(px, py/2)
}

// composeCell picks the half-block glyph for a cell from its two pixels.
// A cell holds one foreground color, so a split cell keeps the top color.
func (c *Canvas) composeCell(col, row int) {
	w := c.screen.Width()
	top := c.pixels[row*2*w+col]
	bottom := c.pixels[(row*2+1)*w+col]

	cell := core.Cell{Rune: ' '}
	switch {
	case top != noPixel && bottom != noPixel:
		if top == bottom {
			cell = core.Cell{Rune: blockFull, Color: top}
		} else {
			cell = core.Cell{Rune: blockUpperHalf, Color: top}
		}
	case top != noPixel:
		cell = core.Cell{Rune: blockUpperHalf, Color: top}
	case bottom != noPixel:
		cell = core.Cell{Rune: blockLowerHalf, Color: bottom}
	}
	c.screen.SetCell(col, row, cell)
}

// Text writes s on the row containing y. The current alignment anchors the
// string's left edge, center or right edge at x.
func (c *Canvas) Text(s string, x, y float64) {
	width := c.TextWidth(s)
	switch c.align {
	case core.AlignCenter:
		x -= width / 2
	case core.AlignRight:
		x -= width
	}

	col := int(math.Round(x))
	row := int(math.Floor(y / 2))
	if row < 0 || row >= c.screen.Height() {
		return
	}

	// Text replaces whatever shapes were under it.
	w := c.screen.Width()
	for i := range core.TextWidth(s) {
		if cx := col + i; cx >= 0 && cx < w {
			c.pixels[row*2*w+cx] = noPixel
			c.pixels[(row*2+1)*w+cx] = noPixel
		}
	}
	c.screen.DrawText(col, row, s, c.fill, c.style == core.StyleBold)
}

// TextAlign sets the horizontal anchor for Text.
func (c *Canvas) TextAlign(a core.Align) {
	c.align = a
}

// TextSize is accepted for compatibility; terminal text has one size.
func (c *Canvas) TextSize(float64) {}

// TextStyle sets the weight for Text.
func (c *Canvas) TextStyle(s core.TextStyle) {
	c.style = s
}

// TextWidth returns the width of s in columns. Double-width runes count
// as two.
func (c *Canvas) TextWidth(s string) float64 {
	return float64(core.TextWidth(s))
}
