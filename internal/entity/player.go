package entity

import (
	"math"

	"github.com/vovakirdan/tui-catch/internal/core"
)

// JumpPhase is the vertical state of the player.
type JumpPhase int

const (
	PhaseGrounded JumpPhase = iota
	PhaseRising
	PhaseFalling
)

// String returns a human-readable name for the phase.
func (p JumpPhase) String() string {
	switch p {
	case PhaseGrounded:
		return "grounded"
	case PhaseRising:
		return "rising"
	case PhaseFalling:
		return "falling"
	default:
		return "unknown"
	}
}

// InputDirection holds which horizontal direction keys are held.
type InputDirection struct {
	Left  bool
	Right bool
}

// PlayerParams configures a new player. All modifiers are expected to be
// non-negative.
type PlayerParams struct {
	Size                 core.Vec2
	AccelerationModifier core.Vec2
	DecelerationModifier core.Vec2
	MaxSpeed             core.Vec2
	Color                core.Color
}

// Player is the controllable entity. Horizontal motion follows the held
// direction keys; vertical motion follows the jump phase.
type Player struct {
	Entity

	Acceleration         core.Vec2
	AccelerationModifier core.Vec2
	DecelerationModifier core.Vec2
	MaxSpeed             core.Vec2

	Input     InputDirection
	IsJumping bool

	// A single phase value keeps rising and falling mutually exclusive.
	phase JumpPhase
}

// NewPlayer creates a grounded player at the origin. Call ResetPosition
// once the canvas size is known.
func NewPlayer(p PlayerParams) *Player {
	return &Player{
		Entity: Entity{
			Sprite:    NewSprite(p.Size),
			Kinematic: true,
			Color:     p.Color,
		},
		AccelerationModifier: p.AccelerationModifier,
		DecelerationModifier: p.DecelerationModifier,
		MaxSpeed:             p.MaxSpeed,
	}
}

// Phase returns the current jump phase.
func (p *Player) Phase() JumpPhase {
	return p.phase
}

// ResetPosition places the player at rest in the bottom-left corner of a
// canvas of the given size.
func (p *Player) ResetPosition(canvas core.Vec2) {
	half := p.Sprite.CenterPoint()
	p.Position = core.V(half.X, p.groundLine(canvas))
	p.Velocity = core.Vec2{}
	p.Acceleration = core.Vec2{}
	p.phase = PhaseGrounded
}

// Update advances the player by dt milliseconds inside a canvas of the
// given size: acceleration from input and jump phase, then velocity, then
// position, then the boundary clamp.
func (p *Player) Update(dt float64, canvas core.Vec2) {
	p.Acceleration.X = p.horizontalAcceleration()
	p.Acceleration.Y = p.verticalAcceleration(canvas)

	p.Velocity.X = IntegrateAxisVelocity(p.Velocity.X, dt, p.Acceleration.X, p.DecelerationModifier.X, p.MaxSpeed.X)
	p.Velocity.Y = IntegrateAxisVelocity(p.Velocity.Y, dt, p.Acceleration.Y, p.DecelerationModifier.Y, p.MaxSpeed.Y)

	p.IntegratePosition(dt)
	p.ClampToCanvas(canvas)

	if p.phase == PhaseFalling && p.Position.Y >= p.groundLine(canvas) {
		p.Position.Y = p.groundLine(canvas)
		p.Velocity.Y = 0
		p.phase = PhaseGrounded
	}
}

// horizontalAcceleration maps held direction keys to an acceleration.
// Right is evaluated last, so holding both moves right.
func (p *Player) horizontalAcceleration() float64 {
	acc := 0.0
	if p.Input.Left {
		acc = -p.AccelerationModifier.X
	}
	if p.Input.Right {
		acc = p.AccelerationModifier.X
	}
	return acc
}

// verticalAcceleration advances the jump phase and returns the vertical
// acceleration it implies.
func (p *Player) verticalAcceleration(canvas core.Vec2) float64 {
	switch p.phase {
	case PhaseGrounded:
		if p.IsJumping {
			p.phase = PhaseRising
		} else if p.Position.Y < p.groundLine(canvas) {
			// The canvas grew under a resting player.
			p.phase = PhaseFalling
		}
	case PhaseRising:
		if math.Abs(p.Velocity.Y) >= p.MaxSpeed.Y {
			p.phase = PhaseFalling
		}
	}

	switch p.phase {
	case PhaseRising:
		return -p.AccelerationModifier.Y
	case PhaseFalling:
		return p.DecelerationModifier.Y
	default:
		return 0
	}
}

// groundLine is the resting vertical position for the player's center.
func (p *Player) groundLine(canvas core.Vec2) float64 {
	return canvas.Y - p.Sprite.CenterPoint().Y
}
