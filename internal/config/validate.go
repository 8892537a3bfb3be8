package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-catch/internal/core"
)

// ErrStalledAxis is returned by Validate when a movement tuning cannot get
// an axis moving for some frame time in the supported range.
var ErrStalledAxis = errors.New("movement tuning stalls")

// Validate checks that the player's modifiers produce motion at every frame
// time from core.MinFrameTime to core.MaxFrameTime.
//
// One frame from rest yields a velocity of acc*dt*(1-dt*dec), which snaps to
// zero unless it exceeds dec. That expression is concave in dt, so checking
// both ends of the range covers everything in between.
func (c CatchConfig) Validate() error {
	p := c.Player
	axes := []struct {
		name     string
		acc, dec float64
	}{
		{"player x", p.AccelerationModifier.X, p.DecelerationModifier.X},
		{"player rise", p.AccelerationModifier.Y, p.DecelerationModifier.Y},
		{"player fall", p.DecelerationModifier.Y, p.DecelerationModifier.Y},
	}
	for _, a := range axes {
		if err := checkAxis(a.acc, a.dec); err != nil {
			return fmt.Errorf("%s: %w", a.name, err)
		}
	}
	return nil
}

func checkAxis(acc, dec float64) error {
	if acc < 0 || dec < 0 {
		return fmt.Errorf("negative modifier (acceleration %g, deceleration %g)", acc, dec)
	}
	if core.MaxFrameTime*dec >= 1 {
		return fmt.Errorf("%w: deceleration %g reverses velocity at %gms", ErrStalledAxis, dec, core.MaxFrameTime)
	}
	for _, dt := range []float64{core.MinFrameTime, core.MaxFrameTime} {
		if FirstFrameSpeed(acc, dec, dt) <= dec {
			return fmt.Errorf("%w: acceleration %g with deceleration %g snaps to rest at %gms", ErrStalledAxis, acc, dec, dt)
		}
	}
	return nil
}

// FirstFrameSpeed is the speed reached after one frame of dt ms from rest.
func FirstFrameSpeed(acc, dec, dt float64) float64 {
	return acc * dt * (1 - dt*dec)
}
