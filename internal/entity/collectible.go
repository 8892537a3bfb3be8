package entity

import "github.com/vovakirdan/tui-catch/internal/core"

// Collectible is an item drifting straight down at a constant speed until
// it is caught or leaves the canvas. It is never clamped; the owning
// collection removes it.
type Collectible struct {
	Entity
}

// NewCollectible creates a collectible centered at pos falling at fallSpeed
// canvas units per millisecond.
func NewCollectible(pos, size core.Vec2, fallSpeed float64, color core.Color) *Collectible {
	return &Collectible{
		Entity: Entity{
			Position:  pos,
			Velocity:  core.V(0, fallSpeed),
			Sprite:    NewSprite(size),
			Kinematic: true,
			Color:     color,
		},
	}
}

// Update moves the collectible down by dt milliseconds of travel.
func (c *Collectible) Update(dt float64) {
	c.Position.Y = IntegrateAxisPosition(c.Position.Y, c.Velocity.Y, dt)
}

// BelowCanvas reports whether the collectible's top edge has passed the
// bottom of a canvas of the given height.
func (c *Collectible) BelowCanvas(height float64) bool {
	return c.Position.Y-c.Sprite.CenterPoint().Y > height
}
