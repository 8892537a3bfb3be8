// catch is a terminal item-collection game: move a sprite along the
// ground, jump, and catch the items falling from the top of the screen.
//
// Usage:
//
//	catch list              - List game variants
//	catch play [variant]    - Play a variant (default: catch)
//	catch menu              - Pick variants interactively
//	catch scores <variant>  - Show high scores for a variant
//	catch board             - Open the scoreboard
//	catch serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible spawns
//	--db <path>           - Set database path (default: ~/.catch/scores.db)
//	--log-file <path>     - Write logs to a file (default: discarded)
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-catch/internal/config"
	"github.com/vovakirdan/tui-catch/internal/core"
	_ "github.com/vovakirdan/tui-catch/internal/games/catch"
	"github.com/vovakirdan/tui-catch/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string

	// Game config flags, shared by play and menu
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "catch",
	Short: "Catch - catch falling items in your terminal",
	Long: `Catch is a terminal game: move left and right, jump, and catch the
items falling from the top of the screen before they hit the ground.

Available commands:
  list     - Show all game variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  scores   - View high scores
  board    - Open the scoreboard
  serve    - Start SSH server for remote play

Examples:
  catch play
  catch play catch-rush --difficulty hard
  catch menu
  catch serve --ssh :2222
  catch scores catch`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.catch/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (discarded if empty)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger builds the logger for interactive commands. The terminal is
// owned by the game while it runs, so logs go to --log-file or nowhere.
// The returned close function releases the log file.
func newLogger(w io.Writer) (*log.Logger, func(), error) {
	closeFn := func() {}
	if w == nil {
		w = io.Discard
		if flagLogFile != "" {
			f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				return nil, closeFn, fmt.Errorf("cannot open log file: %w", err)
			}
			w = f
			closeFn = func() { f.Close() }
		}
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, closeFn, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Level:           level,
		Prefix:          "catch",
	})
	return logger, closeFn, nil
}

// runtimeConfig sizes the canvas from the terminal, falling back to 80x24.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	return withSeed(cfg)
}

// withSeed applies --seed, or a time-based seed when it is 0, so every
// run without the flag gets its own spawn sequence.
func withSeed(cfg core.RuntimeConfig) core.RuntimeConfig {
	cfg.Seed = flagSeed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg
}

// gameConfig loads the game config and applies the --difficulty preset.
func gameConfig() (config.CatchConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, config.ParsePreset(flagDifficulty))
	return cfg, nil
}

// openStore opens the score database. Scores are optional: on failure a
// warning is printed and nil is returned.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "db", flagDBPath, "err", err)
		return nil
	}
	return store
}

// addGameConfigFlags registers the flags that shape a game session.
func addGameConfigFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}
