// catch-desktop plays a catch variant in a window.
//
// Usage:
//
//	catch-desktop [variant] [--scale 8] [--cols 80] [--rows 24]
package main

import (
	"fmt"
	"os"
	"os/user"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-catch/internal/config"
	"github.com/vovakirdan/tui-catch/internal/core"
	_ "github.com/vovakirdan/tui-catch/internal/games/catch"
	"github.com/vovakirdan/tui-catch/internal/platform/desktop"
	"github.com/vovakirdan/tui-catch/internal/registry"
	"github.com/vovakirdan/tui-catch/internal/storage"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagScale      float64
	flagCols       int
	flagRows       int
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "catch-desktop [variant]",
	Short: "Play catch in a window",
	Long: `Play a catch variant (default: catch) in a desktop window.

The playfield has the same size in game units as a terminal of
--cols x --rows cells, so runs behave the same as in the terminal.

Controls:
  Enter        - Start from the title screen
  Left/A       - Move left
  Right/D      - Move right
  Space/Up/W   - Jump
  P            - Pause
  Q/Esc        - Quit`,
	Args:         cobra.MaximumNArgs(1),
	RunE:         run,
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().IntVar(&flagFPS, "fps", 60, "Ticks per second")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagDBPath, "db", "~/.catch/scores.db", "Path to scores database")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.Flags().Float64Var(&flagScale, "scale", desktop.DefaultScale, "Pixels per game unit")
	rootCmd.Flags().IntVar(&flagCols, "cols", 80, "Playfield width in terminal columns")
	rootCmd.Flags().IntVar(&flagRows, "rows", 24, "Playfield height in terminal rows")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

func run(_ *cobra.Command, args []string) error {
	gameID := "catch"
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q", gameID)
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "catch-desktop",
	})

	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	config.ApplyPreset(&gameCfg, config.ParsePreset(flagDifficulty))

	cfg := core.RuntimeConfig{
		ScreenW:  flagCols,
		ScreenH:  flagRows,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "err", err)
		store = nil
	}
	best := 0
	if store != nil {
		defer store.Close()
		if b, err := store.HighScore(gameID); err == nil {
			best = b
		}
	}

	game, err := registry.Create(gameID, registry.Env{
		Runtime:   cfg,
		Config:    gameCfg,
		Logger:    logger,
		BestScore: best,
	})
	if err != nil {
		return err
	}

	logger.Info("starting game", "game", gameID, "seed", cfg.Seed)
	return desktop.Run(game, cfg, desktop.Options{
		Store:  store,
		Player: playerName(),
		Logger: logger,
		Scale:  flagScale,
	})
}

// playerName is the OS user name, recorded with saved runs.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return storage.LocalPlayer
}
