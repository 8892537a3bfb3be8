package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-catch/internal/core"
)

//go:embed defaults/catch.yaml
var defaultCatchYAML []byte

// DefaultCatchConfig returns the built-in configuration. It mirrors
// defaults/catch.yaml and is used when the embedded file cannot be parsed.
func DefaultCatchConfig() CatchConfig {
	return CatchConfig{
		Player: PlayerConfig{
			Size:                 core.V(6, 4),
			AccelerationModifier: core.V(0.0025, 0.002),
			DecelerationModifier: core.V(0.004, 0.0002),
			MaxSpeed:             core.V(0.05, 0.07),
		},
		Collectible: CollectibleConfig{
			Size:      core.V(2, 2),
			FallSpeed: 0.02,
		},
		Spawn: SpawnConfig{
			IntervalMs:  600,
			MinInterval: 150,
		},
		Score: ScoreConfig{
			Ceiling: 999999,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 200,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.5,
				SpawnReduction:  350,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultCatchYAML
}
