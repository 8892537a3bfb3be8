// Package core provides fundamental types and utilities shared by the game
// logic and the frame drivers. It has no external dependencies (especially
// no Bubble Tea or Ebiten) to keep simulation code pure and testable.
package core

// Vec2 is a plain 2D numeric pair used for positions, velocities,
// accelerations, sizes and margins.
type Vec2 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// V returns the vector (x, y).
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by k on both axes.
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Bounds is an axis-aligned box described by its min and max corners.
type Bounds struct {
	Min, Max Vec2
}

// BoundsAround returns the box centered on c extending half on each side.
func BoundsAround(c, half Vec2) Bounds {
	return Bounds{Min: c.Sub(half), Max: c.Add(half)}
}

// Overlaps reports whether b and o overlap or touch on both axes.
func (b Bounds) Overlaps(o Bounds) bool {
	if b.Max.X < o.Min.X || o.Max.X < b.Min.X {
		return false
	}
	if b.Max.Y < o.Min.Y || o.Max.Y < b.Min.Y {
		return false
	}
	return true
}

// ClampF restricts a float64 value to be within [lo, hi].
// When lo > hi (a sprite larger than the canvas) the result is lo.
func ClampF(val, lo, hi float64) float64 {
	if val > hi {
		val = hi
	}
	if val < lo {
		val = lo
	}
	return val
}
