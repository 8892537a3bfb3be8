package core

// RuntimeConfig contains configuration passed to a game when it is built.
// Frame drivers use it to size the canvas and pace ticks; games use the seed
// for deterministic spawns.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters (or pixels for desktop)
	ScreenH  int   // Screen height in characters (or pixels for desktop)
	TickRate int   // Frames per second requested from the driver (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Frame time bounds, in ms, for what a driver hands to a game. Movement
// tunings are validated over this range.
const (
	MinFrameTime = 2.0
	MaxFrameTime = 100.0

	// MaxTickRate keeps the nominal frame time at or above MinFrameTime.
	MaxTickRate = 500
)
