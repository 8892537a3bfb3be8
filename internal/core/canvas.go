package core

// Align is the horizontal anchor used when drawing text.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// TextStyle selects a text weight.
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleBold
)

// Canvas is the drawing backend a frame driver hands to the game each frame.
// Coordinates are canvas units with the origin at the top-left corner; the
// driver decides how units map onto terminal cells or pixels.
type Canvas interface {
	// Width and Height return the current canvas dimensions.
	Width() float64
	Height() float64

	// DeltaTime returns the milliseconds elapsed since the previous frame.
	DeltaTime() float64

	// Background clears the whole canvas to the given color.
	Background(c Color)

	// Fill sets the color used by subsequent shape and text calls.
	Fill(c Color)

	// Ellipse fills an ellipse centered at (cx, cy) with the given diameters.
	Ellipse(cx, cy, w, h float64)

	// Text draws s anchored at (x, y) using the current alignment, size and style.
	Text(s string, x, y float64)
	TextAlign(a Align)
	TextSize(size float64)
	TextStyle(s TextStyle)

	// TextWidth measures s in canvas units at the current text size.
	TextWidth(s string) float64
}
