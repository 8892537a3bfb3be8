package entity

import "github.com/vovakirdan/tui-catch/internal/core"

// Drawable is anything that can render itself once per frame.
type Drawable interface {
	Draw(c core.Canvas)
}

// Entity is a positioned, drawable simulation object. Position is the
// center of the sprite. Only kinematic entities carry a velocity that is
// integrated into their position.
type Entity struct {
	Position  core.Vec2
	Velocity  core.Vec2
	Sprite    Sprite
	Kinematic bool
	Color     core.Color
}

// Bounds returns the box covered by the entity's sprite.
func (e *Entity) Bounds() core.Bounds {
	return core.BoundsAround(e.Position, e.Sprite.CenterPoint())
}

// IntegratePosition moves a kinematic entity along its velocity for dt
// milliseconds. Static entities are left untouched.
func (e *Entity) IntegratePosition(dt float64) {
	if !e.Kinematic {
		return
	}
	e.Position.X = IntegrateAxisPosition(e.Position.X, e.Velocity.X, dt)
	e.Position.Y = IntegrateAxisPosition(e.Position.Y, e.Velocity.Y, dt)
}

// ClampToCanvas keeps the sprite's visible bounds inside a canvas of the
// given size.
func (e *Entity) ClampToCanvas(canvas core.Vec2) {
	half := e.Sprite.CenterPoint()
	e.Position.X = core.ClampF(e.Position.X, half.X, canvas.X-half.X)
	e.Position.Y = core.ClampF(e.Position.Y, half.Y, canvas.Y-half.Y)
}

// Draw renders the entity as a filled ellipse covering its sprite.
func (e *Entity) Draw(c core.Canvas) {
	size := e.Sprite.Size()
	c.Fill(e.Color)
	c.Ellipse(e.Position.X, e.Position.Y, size.X, size.Y)
}

// Collides reports whether the sprite bounds of a and b overlap or touch.
// It is symmetric in its arguments.
func Collides(a, b *Entity) bool {
	return a.Bounds().Overlaps(b.Bounds())
}
