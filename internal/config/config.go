// Package config provides YAML-based game configuration loading and
// difficulty management for the catch game.
package config

import "github.com/vovakirdan/tui-catch/internal/core"

// CatchConfig contains all configuration for the catch game.
// Distances are canvas units, times are milliseconds.
type CatchConfig struct {
	Player      PlayerConfig      `yaml:"player"`
	Collectible CollectibleConfig `yaml:"collectible"`
	Spawn       SpawnConfig       `yaml:"spawn"`
	Score       ScoreConfig       `yaml:"score"`
	Difficulty  DifficultyConfig  `yaml:"difficulty"`
}

// PlayerConfig defines the player's sprite and movement modifiers.
type PlayerConfig struct {
	Size                 core.Vec2 `yaml:"size"`
	AccelerationModifier core.Vec2 `yaml:"acceleration_modifier"` // units/ms²
	DecelerationModifier core.Vec2 `yaml:"deceleration_modifier"` // damping per ms; y is also the fall pull
	MaxSpeed             core.Vec2 `yaml:"max_speed"`             // units/ms
}

// CollectibleConfig defines falling items.
type CollectibleConfig struct {
	Size      core.Vec2 `yaml:"size"`
	FallSpeed float64   `yaml:"fall_speed"` // units/ms
}

// SpawnConfig defines the spawn cadence.
type SpawnConfig struct {
	IntervalMs  float64 `yaml:"interval_ms"`
	MinInterval float64 `yaml:"min_interval_ms"` // floor when difficulty shortens the interval
}

// ScoreConfig defines scoring limits.
type ScoreConfig struct {
	Ceiling int `yaml:"ceiling"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score or elapsed ms at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to fall speed at max difficulty
	SpawnReduction  float64 `yaml:"spawn_reduction"`  // Interval reduction (ms) at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a flag value to a preset. Unknown or empty values
// return "" which keeps the config's own settings.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
