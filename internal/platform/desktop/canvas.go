// Package desktop runs a game session in an Ebitengine window. Games
// draw in the same canvas units as in the terminal; the window scales
// every unit to a square block of pixels.
package desktop

import (
	"image/color"
	"math"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-catch/internal/core"
)

// Debug font cell size in pixels.
const (
	glyphWidth  = 6
	glyphHeight = 16
)

// ellipseSegments is the number of edges used to approximate an ellipse.
const ellipseSegments = 32

// drawKind is the kind of a recorded draw call.
type drawKind int

const (
	drawBackground drawKind = iota
	drawEllipse
	drawText
)

// drawOp is one recorded draw call with the state it was issued under.
type drawOp struct {
	kind       drawKind
	col        color.RGBA
	x, y, w, h float64
	text       string
	align      core.Align
}

// Canvas implements core.Canvas as a display list. A game frame records
// its draw calls during Update; Replay paints the latest list in Draw.
type Canvas struct {
	ops     []drawOp
	width   float64 // Canvas units
	height  float64 // Canvas units
	scale   float64 // Pixels per unit
	dt      float64
	fill    color.RGBA
	align   core.Align
	white   *ebiten.Image
	scratch *ebiten.Image
}

// NewCanvas creates a canvas of width x height units drawn at scale
// pixels per unit.
func NewCanvas(width, height int, scale float64) *Canvas {
	if scale <= 0 {
		scale = 1
	}
	return &Canvas{
		width:  float64(width),
		height: float64(height),
		scale:  scale,
		fill:   core.ColorDefault.ToRGBA(),
	}
}

// PixelSize returns the window size needed to show the whole canvas.
func (c *Canvas) PixelSize() (int, int) {
	return int(math.Ceil(c.width * c.scale)), int(math.Ceil(c.height * c.scale))
}

// BeginFrame drops the previous frame's draw calls and sets the frame time
// reported to the game.
func (c *Canvas) BeginFrame(ms float64) {
	c.ops = c.ops[:0]
	c.dt = ms
}

// Len returns the number of draw calls recorded for the current frame.
func (c *Canvas) Len() int {
	return len(c.ops)
}

func (c *Canvas) Width() float64 { return c.width }

func (c *Canvas) Height() float64 { return c.height }

func (c *Canvas) DeltaTime() float64 { return c.dt }

func (c *Canvas) Background(col core.Color) {
	c.ops = append(c.ops, drawOp{kind: drawBackground, col: col.ToRGBA()})
}

func (c *Canvas) Fill(col core.Color) {
	c.fill = col.ToRGBA()
}

func (c *Canvas) Ellipse(cx, cy, w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	c.ops = append(c.ops, drawOp{kind: drawEllipse, col: c.fill, x: cx, y: cy, w: w, h: h})
}

func (c *Canvas) Text(s string, x, y float64) {
	if s == "" {
		return
	}
	c.ops = append(c.ops, drawOp{kind: drawText, col: c.fill, x: x, y: y, text: s, align: c.align})
}

// Replay paints the recorded frame onto screen. It may run any number of
// times per frame.
func (c *Canvas) Replay(screen *ebiten.Image) {
	if screen == nil {
		return
	}
	for _, op := range c.ops {
		switch op.kind {
		case drawBackground:
			screen.Fill(op.col)
		case drawEllipse:
			c.paintEllipse(screen, op)
		case drawText:
			c.paintText(screen, op)
		}
	}
}

// paintEllipse fills a polygon approximating the ellipse as triangles over
// a 1x1 white source image tinted per vertex.
func (c *Canvas) paintEllipse(screen *ebiten.Image, op drawOp) {
	rx, ry := op.w/2*c.scale, op.h/2*c.scale
	px, py := op.x*c.scale, op.y*c.scale

	var path vector.Path
	for i := 0; i < ellipseSegments; i++ {
		a := 2 * math.Pi * float64(i) / ellipseSegments
		x := float32(px + rx*math.Cos(a))
		y := float32(py + ry*math.Sin(a))
		if i == 0 {
			path.MoveTo(x, y)
		} else {
			path.LineTo(x, y)
		}
	}
	path.Close()

	vertices, indices := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := float32(op.col.R)/255, float32(op.col.G)/255, float32(op.col.B)/255, float32(op.col.A)/255
	for i := range vertices {
		vertices[i].SrcX = 0
		vertices[i].SrcY = 0
		vertices[i].ColorR = r
		vertices[i].ColorG = g
		vertices[i].ColorB = b
		vertices[i].ColorA = a
	}

	screen.DrawTriangles(vertices, indices, c.whiteImage(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// paintText prints the text with the debug font. The glyphs are white, so
// they are printed on a scratch image first and tinted with the fill color.
func (c *Canvas) paintText(screen *ebiten.Image, op drawOp) {
	w := utf8.RuneCountInString(op.text) * glyphWidth
	scratch := c.scratchImage(w)
	scratch.Clear()
	ebitenutil.DebugPrintAt(scratch, op.text, 0, 0)

	px := op.x * c.scale
	switch op.align {
	case core.AlignCenter:
		px -= float64(w) / 2
	case core.AlignRight:
		px -= float64(w)
	}

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Translate(math.Round(px), math.Round(op.y*c.scale))
	opts.ColorScale.ScaleWithColor(op.col)
	screen.DrawImage(scratch, opts)
}

func (c *Canvas) TextAlign(a core.Align) {
	c.align = a
}

// TextSize is a no-op: the debug font has a single size.
func (c *Canvas) TextSize(float64) {}

// TextStyle is a no-op: the debug font has a single weight.
func (c *Canvas) TextStyle(core.TextStyle) {}

// TextWidth returns the width of s in canvas units.
func (c *Canvas) TextWidth(s string) float64 {
	return float64(utf8.RuneCountInString(s)*glyphWidth) / c.scale
}

func (c *Canvas) whiteImage() *ebiten.Image {
	if c.white == nil {
		c.white = ebiten.NewImage(1, 1)
		c.white.Fill(color.White)
	}
	return c.white
}

// scratchImage returns an image at least width pixels wide, growing the
// cached one when needed.
func (c *Canvas) scratchImage(width int) *ebiten.Image {
	if c.scratch == nil || c.scratch.Bounds().Dx() < width {
		c.scratch = ebiten.NewImage(max(width, 256), glyphHeight)
	}
	return c.scratch
}
