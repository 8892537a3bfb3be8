package main

import (
	"fmt"
	"os/user"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-catch/internal/config"
	"github.com/vovakirdan/tui-catch/internal/core"
	"github.com/vovakirdan/tui-catch/internal/platform/tui"
	"github.com/vovakirdan/tui-catch/internal/registry"
	"github.com/vovakirdan/tui-catch/internal/storage"
)

const defaultVariant = "catch"

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a game variant",
	Long: `Start playing the given variant (default: catch).

Controls:
  Enter        - Start from the title screen
  Left/A       - Move left
  Right/D      - Move right
  Space/Up/W   - Jump
  P            - Pause
  Ctrl+S       - Save a screenshot
  Q/Esc        - Quit

Difficulty options (catch-rush progression):
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression

Examples:
  catch play
  catch play catch-rush
  catch play catch-rush --difficulty hard
  catch play --config ./my-catch.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	addGameConfigFlags(playCmd)
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := defaultVariant
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q, run 'catch list' to see them", gameID)
	}

	logger, closeLog, err := newLogger(nil)
	if err != nil {
		return err
	}
	defer closeLog()

	gameCfg, err := gameConfig()
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	return playVariant(gameID, runtimeConfig(), gameCfg, store, logger)
}

// playVariant runs one session of a variant in the terminal.
func playVariant(gameID string, cfg core.RuntimeConfig, gameCfg config.CatchConfig, store *storage.Store, logger *log.Logger) error {
	best := 0
	if store != nil {
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

	logger.Info("starting game", "game", gameID, "seed", cfg.Seed, "fps", cfg.TickRate)
	if err := tui.Run(game, cfg, tui.Options{
		Store:  store,
		Player: playerName(),
		Logger: logger,
	}); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}

// playerName is the OS user name, recorded with local runs.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return storage.LocalPlayer
}
