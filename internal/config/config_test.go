package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-catch/internal/core"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var fromYAML CatchConfig
	if err := yaml.Unmarshal(DefaultYAML(), &fromYAML); err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if fromYAML != DefaultCatchConfig() {
		t.Errorf("embedded defaults differ from DefaultCatchConfig():\n%+v\n%+v", fromYAML, DefaultCatchConfig())
	}
}

func TestDefaultReferenceValues(t *testing.T) {
	cfg := DefaultCatchConfig()
	if cfg.Spawn.IntervalMs != 600 {
		t.Errorf("spawn interval = %f, expected 600", cfg.Spawn.IntervalMs)
	}
	if cfg.Score.Ceiling != 999999 {
		t.Errorf("score ceiling = %d, expected 999999", cfg.Score.Ceiling)
	}
	if cfg.Difficulty.Enabled {
		t.Error("difficulty progression should be off by default")
	}
}

func TestLoadCustomPathOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("spawn:\n  interval_ms: 400\ncollectible:\n  fall_speed: 0.05\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Spawn.IntervalMs != 400 {
		t.Errorf("interval = %f, expected 400", cfg.Spawn.IntervalMs)
	}
	if cfg.Collectible.FallSpeed != 0.05 {
		t.Errorf("fall speed = %f, expected 0.05", cfg.Collectible.FallSpeed)
	}
	// Untouched sections keep their defaults
	if cfg.Player != DefaultCatchConfig().Player {
		t.Errorf("player config should keep defaults, got %+v", cfg.Player)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing file should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("spawn: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() of malformed YAML should fail")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	// No files anywhere: embedded defaults
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg != DefaultCatchConfig() {
		t.Errorf("expected defaults, got %+v", cfg)
	}

	// Local configs directory
	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "catch.yaml"), []byte("spawn:\n  interval_ms: 500\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, _ = Load("")
	if cfg.Spawn.IntervalMs != 500 {
		t.Errorf("local config not used, interval = %f", cfg.Spawn.IntervalMs)
	}

	// User config wins over local
	userDir := filepath.Join(home, ".catch", "configs")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, "catch.yaml"), []byte("spawn:\n  interval_ms: 300\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, _ = Load("")
	if cfg.Spawn.IntervalMs != 300 {
		t.Errorf("user config not used, interval = %f", cfg.Spawn.IntervalMs)
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset       DifficultyPreset
		enabled      bool
		initialLevel float64
	}{
		{"", false, 0.0},
		{DifficultyEasy, true, 0.0},
		{DifficultyNormal, true, 0.3},
		{DifficultyHard, true, 0.7},
		{DifficultyFixed, false, 0.0},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultCatchConfig()
			ApplyPreset(&cfg, tc.preset)
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.InitialLevel != tc.initialLevel {
				t.Errorf("InitialLevel = %f, expected %f", cfg.Difficulty.InitialLevel, tc.initialLevel)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(hard) should return DifficultyHard")
	}
	if ParsePreset("nightmare") != "" {
		t.Error("unknown presets should parse to empty")
	}
}

func TestDefaultTuningMovesAtEveryFrameTime(t *testing.T) {
	cfg := DefaultCatchConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default tuning rejected: %v", err)
	}

	p := cfg.Player
	for dt := core.MinFrameTime; dt <= core.MaxFrameTime; dt += 0.5 {
		if v := FirstFrameSpeed(p.AccelerationModifier.X, p.DecelerationModifier.X, dt); v <= p.DecelerationModifier.X {
			t.Errorf("dt=%gms: first frame speed %g does not clear %g", dt, v, p.DecelerationModifier.X)
		}
	}
}

func TestValidateRejectsStalledTuning(t *testing.T) {
	tests := []struct {
		name string
		edit func(*CatchConfig)
	}{
		{"slow horizontal start", func(c *CatchConfig) {
			c.Player.AccelerationModifier.X = 0.0004
			c.Player.DecelerationModifier.X = 0.005
		}},
		{"no horizontal acceleration", func(c *CatchConfig) {
			c.Player.AccelerationModifier.X = 0
		}},
		{"damping reverses velocity", func(c *CatchConfig) {
			c.Player.DecelerationModifier.X = 0.02
		}},
		{"heavy vertical damping", func(c *CatchConfig) {
			c.Player.DecelerationModifier.Y = 0.6
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultCatchConfig()
			tc.edit(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrStalledAxis) {
				t.Errorf("Validate() = %v, expected ErrStalledAxis", err)
			}
		})
	}
}

func TestLoadRejectsStalledTuning(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slow.yaml")
	data := []byte("player:\n  acceleration_modifier: {x: 0.0004, y: 0.002}\n  deceleration_modifier: {x: 0.005, y: 0.0002}\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrStalledAxis) {
		t.Errorf("Load() = %v, expected ErrStalledAxis", err)
	}
}
