// Package catch implements the item-collection game: a player runs and
// jumps along the bottom of the canvas catching items that fall from the
// top. A session is a sketch holding the menu scene and the game scene.
package catch

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-catch/internal/config"
	"github.com/vovakirdan/tui-catch/internal/registry"
	"github.com/vovakirdan/tui-catch/internal/sketch"
)

// Session is one run of a variant: the sketch and its game scene.
type Session struct {
	id     string
	title  string
	sketch *sketch.Sketch
	game   *Game
}

// NewSession builds the menu and game scenes and registers them in order.
// A zero-valued env.Config falls back to the embedded defaults.
func NewSession(id, title string, env registry.Env) *Session {
	cfg := env.Config
	if cfg == (config.CatchConfig{}) {
		cfg = config.DefaultCatchConfig()
	}
	logger := env.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	logger = logger.With("game", id)

	sk := sketch.New(logger)
	game := NewGame(cfg, env.Runtime.Seed, env.BestScore, logger)
	sk.Add(NewMenu(title, sk, logger), game)

	return &Session{id: id, title: title, sketch: sk, game: game}
}

// ID returns the variant identifier.
func (s *Session) ID() string {
	return s.id
}

// Title returns the display name.
func (s *Session) Title() string {
	return s.title
}

// Sketch returns the scene orchestrator.
func (s *Session) Sketch() *sketch.Sketch {
	return s.sketch
}

// Result summarizes the run so far.
func (s *Session) Result() registry.Result {
	return registry.Result{
		Score:    s.game.Score(),
		Missed:   s.game.Missed(),
		PlayTime: s.game.PlayTime(),
	}
}

// Game returns the play scene.
func (s *Session) Game() *Game {
	return s.game
}

func init() {
	registry.Register("catch", func(env registry.Env) registry.Game {
		return NewSession("catch", "Catch", env)
	})

	// Rush turns difficulty progression on: items fall faster and spawn
	// more often as the score climbs.
	registry.Register("catch-rush", func(env registry.Env) registry.Game {
		if env.Config == (config.CatchConfig{}) {
			env.Config = config.DefaultCatchConfig()
		}
		env.Config.Difficulty.Enabled = true
		return NewSession("catch-rush", "Catch Rush", env)
	})
}
