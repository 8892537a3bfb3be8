// Package entity holds the simulation objects of the catch game: sprites,
// positioned entities, the controllable player and falling collectibles,
// together with the per-axis integration rules that move them.
package entity

import "github.com/vovakirdan/tui-catch/internal/core"

// Sprite is the visual footprint of an entity. The center point is always
// half of the size; both are updated together by SetSize.
type Sprite struct {
	size   core.Vec2
	center core.Vec2
}

// NewSprite creates a sprite of the given size.
func NewSprite(size core.Vec2) Sprite {
	var s Sprite
	s.SetSize(size)
	return s
}

// SetSize replaces the sprite size and recomputes the center point.
func (s *Sprite) SetSize(size core.Vec2) {
	s.size, s.center = size, size.Scale(0.5)
}

// Size returns the sprite size.
func (s Sprite) Size() core.Vec2 {
	return s.size
}

// CenterPoint returns the offset from the sprite's top-left corner to its
// center, which is also its half-extent on each axis.
func (s Sprite) CenterPoint() core.Vec2 {
	return s.center
}
