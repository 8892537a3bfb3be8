package catch

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-catch/internal/config"
	"github.com/vovakirdan/tui-catch/internal/core"
	"github.com/vovakirdan/tui-catch/internal/entity"
)

// HUD layout in canvas units.
const (
	hudMargin = 2
	hudSize   = 16
)

// Game is the play scene. It owns the player, the falling collectibles,
// the spawn timer and the score.
type Game struct {
	cfg        config.CatchConfig
	difficulty *config.DifficultyManager
	seed       int64
	rng        *rand.Rand
	logger     *log.Logger

	player       *entity.Player
	collectibles []*entity.Collectible
	timer        SpawnTimer
	score        Score

	best    int     // Best stored score, shown next to the current one
	missed  int     // Collectibles that fell past the bottom edge
	elapsed float64 // Unpaused milliseconds since setup
	paused  bool
}

// NewGame creates the play scene. best is the stored record to display.
// A nil logger discards log output.
func NewGame(cfg config.CatchConfig, seed int64, best int, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		seed:       seed,
		best:       best,
		logger:     logger,
	}
}

// Name identifies the scene in logs.
func (g *Game) Name() string {
	return "game"
}

// Preload builds the player and the seeded RNG.
func (g *Game) Preload() {
	g.player = entity.NewPlayer(entity.PlayerParams{
		Size:                 g.cfg.Player.Size,
		AccelerationModifier: g.cfg.Player.AccelerationModifier,
		DecelerationModifier: g.cfg.Player.DecelerationModifier,
		MaxSpeed:             g.cfg.Player.MaxSpeed,
		Color:                core.ColorBrightCyan,
	})
	g.rng = rand.New(rand.NewSource(g.seed))
	g.timer = NewSpawnTimer(g.cfg.Spawn.IntervalMs)
	g.score = NewScore(g.cfg.Score.Ceiling)
}

// Setup places the player at rest and arms the spawn timer so the first
// frame spawns.
func (g *Game) Setup(c core.Canvas) {
	g.player.ResetPosition(core.V(c.Width(), c.Height()))
	g.collectibles = g.collectibles[:0]
	g.timer.Reset()
	g.score.Reset()
	g.missed = 0
	g.elapsed = 0
	g.paused = false
}

// Draw advances the simulation by the canvas's frame time and renders it.
func (g *Game) Draw(c core.Canvas) {
	if !g.paused {
		g.update(c.DeltaTime(), core.V(c.Width(), c.Height()))
	}
	g.render(c)
}

// update runs one frame: player, collectible motion, spawns, then the
// collision and cleanup pass.
func (g *Game) update(dt float64, canvas core.Vec2) {
	g.elapsed += dt
	g.player.Update(dt, canvas)

	for _, item := range g.collectibles {
		item.Update(dt)
	}

	// New items start the frame just above the top edge.
	g.timer.SetInterval(g.difficulty.SpawnInterval(g.cfg.Spawn.IntervalMs, g.cfg.Spawn.MinInterval, g.score.Value(), g.elapsed))
	if g.timer.Tick(dt) {
		g.spawn(canvas.X)
	}

	// Decide every item first, then compact in place; the slice is never
	// restructured while it is being walked.
	valid := g.collectibles[:0]
	for _, item := range g.collectibles {
		switch {
		case entity.Collides(&g.player.Entity, &item.Entity):
			g.score.Increment()
		case item.BelowCanvas(canvas.Y):
			g.missed++
		default:
			valid = append(valid, item)
		}
	}
	for i := len(valid); i < len(g.collectibles); i++ {
		g.collectibles[i] = nil
	}
	g.collectibles = valid
}

// spawn adds one collectible just above the top edge.
func (g *Game) spawn(canvasWidth float64) {
	size := g.cfg.Collectible.Size
	speed := g.difficulty.FallSpeed(g.cfg.Collectible.FallSpeed, g.score.Value(), g.elapsed)
	pos := SpawnPosition(g.rng, canvasWidth, size)
	g.collectibles = append(g.collectibles, entity.NewCollectible(pos, size, speed, core.ColorBrightYellow))
	g.logger.Debug("collectible spawned", "x", pos.X, "speed", speed, "active", len(g.collectibles))
}

// render draws the entities and the HUD. HUD positions follow the current
// canvas width so they track resizes.
func (g *Game) render(c core.Canvas) {
	c.Background(core.ColorBlack)

	for _, item := range g.collectibles {
		item.Draw(c)
	}
	g.player.Draw(c)

	c.TextSize(hudSize)
	c.TextStyle(core.StyleBold)
	c.Fill(core.ColorBrightWhite)
	c.TextAlign(core.AlignLeft)
	label := g.score.String()
	c.Text(label, c.Width()-c.TextWidth(label)-hudMargin, hudMargin)

	c.TextStyle(core.StyleNormal)
	c.Fill(core.ColorGray)
	c.Text(fmt.Sprintf("Best: %d  Missed: %d", max(g.best, g.score.Value()), g.missed), hudMargin, hudMargin)

	if g.paused {
		c.TextAlign(core.AlignCenter)
		c.TextStyle(core.StyleBold)
		c.Fill(core.ColorBrightYellow)
		c.Text("PAUSED", c.Width()/2, c.Height()/2)
	}
}

// KeyPressed maps held keys onto the player's input state.
func (g *Game) KeyPressed(ev core.KeyEvent) {
	switch {
	case ev.Is(core.KeyLeft):
		g.player.Input.Left = true
	case ev.Is(core.KeyRight):
		g.player.Input.Right = true
	case ev.Is(core.KeyJump):
		g.player.IsJumping = true
	case ev.Is(core.KeyPause), ev.Char == 'p', ev.Char == 'P':
		g.paused = !g.paused
		g.logger.Debug("pause toggled", "paused", g.paused)
	}
}

// KeyReleased clears the input state set by KeyPressed.
func (g *Game) KeyReleased(ev core.KeyEvent) {
	switch {
	case ev.Is(core.KeyLeft):
		g.player.Input.Left = false
	case ev.Is(core.KeyRight):
		g.player.Input.Right = false
	case ev.Is(core.KeyJump):
		g.player.IsJumping = false
	}
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score.Value()
}

// Missed returns how many collectibles fell off the canvas.
func (g *Game) Missed() int {
	return g.missed
}

// PlayTime returns the unpaused time spent playing since setup.
func (g *Game) PlayTime() time.Duration {
	return time.Duration(g.elapsed * float64(time.Millisecond))
}

// Paused reports whether the simulation is paused.
func (g *Game) Paused() bool {
	return g.paused
}

// Player returns the player entity.
func (g *Game) Player() *entity.Player {
	return g.player
}

// Collectibles returns the active collectibles. The slice is owned by the
// scene and valid until the next frame.
func (g *Game) Collectibles() []*entity.Collectible {
	return g.collectibles
}
