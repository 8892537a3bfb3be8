package catch

import "github.com/vovakirdan/tui-catch/internal/core"

type textCall struct {
	s     string
	x, y  float64
	align core.Align
	color core.Color
}

// fakeCanvas records draw calls for assertions.
type fakeCanvas struct {
	w, h     float64
	dt       float64
	align    core.Align
	fill     core.Color
	texts    []textCall
	ellipses int
}

func newFakeCanvas(w, h, dt float64) *fakeCanvas {
	return &fakeCanvas{w: w, h: h, dt: dt}
}

func (c *fakeCanvas) Width() float64 { return c.w }

func (c *fakeCanvas) Height() float64 { return c.h }

func (c *fakeCanvas) DeltaTime() float64 { return c.dt }

func (c *fakeCanvas) Background(core.Color) {
	c.texts = c.texts[:0]
	c.ellipses = 0
}

func (c *fakeCanvas) Fill(col core.Color) { c.fill = col }

func (c *fakeCanvas) Ellipse(cx, cy, w, h float64) { c.ellipses++ }

func (c *fakeCanvas) Text(s string, x, y float64) {
	c.texts = append(c.texts, textCall{s: s, x: x, y: y, align: c.align, color: c.fill})
}

func (c *fakeCanvas) TextAlign(a core.Align) { c.align = a }

func (c *fakeCanvas) TextSize(float64) {}

func (c *fakeCanvas) TextStyle(core.TextStyle) {}

func (c *fakeCanvas) TextWidth(s string) float64 { return float64(len([]rune(s))) }

func (c *fakeCanvas) findText(s string) (textCall, bool) {
	for _, tc := range c.texts {
		if tc.s == s {
			return tc, true
		}
	}
	return textCall{}, false
}
