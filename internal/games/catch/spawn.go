package catch

import (
	"math/rand"

	"github.com/vovakirdan/tui-catch/internal/core"
)

// SpawnTimer is a millisecond countdown that fires once each time it runs
// out and then rewinds to the interval. Cadence depends only on elapsed
// time, not on frame count.
type SpawnTimer struct {
	remaining float64
	interval  float64
}

// NewSpawnTimer creates a timer that fires on the first Tick and every
// interval milliseconds after that.
func NewSpawnTimer(interval float64) SpawnTimer {
	return SpawnTimer{interval: interval}
}

// Tick counts dt milliseconds down and reports whether the timer fired.
// Firing rewinds the countdown to the interval, so at most one spawn
// happens per frame.
func (t *SpawnTimer) Tick(dt float64) bool {
	t.remaining -= dt
	if t.remaining > 0 {
		return false
	}
	t.remaining = t.interval
	return true
}

// Reset makes the next Tick fire.
func (t *SpawnTimer) Reset() {
	t.remaining = 0
}

// SetInterval changes the interval used by subsequent rewinds.
func (t *SpawnTimer) SetInterval(interval float64) {
	t.interval = interval
}

// Remaining returns the milliseconds left before the timer fires.
func (t SpawnTimer) Remaining() float64 {
	return t.remaining
}

// SpawnPosition returns the center for a new collectible of the given size:
// uniformly across the canvas width with its sprite fully on the canvas,
// and just above the top edge. A canvas narrower than the sprite centers it.
func SpawnPosition(rng *rand.Rand, canvasWidth float64, size core.Vec2) core.Vec2 {
	half := size.Scale(0.5)
	span := canvasWidth - size.X
	x := canvasWidth / 2
	if span >= 0 {
		x = half.X + rng.Float64()*span
	}
	return core.V(x, -half.Y)
}
