package entity

import "github.com/vovakirdan/tui-catch/internal/core"

// IntegrateAxisPosition advances one axis of a position by dt milliseconds
// at the given velocity.
func IntegrateAxisPosition(position, velocity, dt float64) float64 {
	return position + dt*velocity
}

// IntegrateAxisVelocity advances one axis of a velocity by dt milliseconds.
//
// The acceleration is applied first, then exponential damping scaled by dt.
// A result whose magnitude is below the deceleration modifier snaps to
// exactly zero so the entity comes to rest instead of creeping forever.
// The result is finally clamped to [-maxSpeed, maxSpeed].
func IntegrateAxisVelocity(velocity, dt, acceleration, deceleration, maxSpeed float64) float64 {
	v := velocity + dt*acceleration
	v *= 1 - dt*deceleration

	if (v > 0 && v < deceleration) || (v < 0 && v > -deceleration) {
		v = 0
	}

	return core.ClampF(v, -maxSpeed, maxSpeed)
}
