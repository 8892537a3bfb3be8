package desktop

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-catch/internal/core"
	"github.com/vovakirdan/tui-catch/internal/registry"
	"github.com/vovakirdan/tui-catch/internal/sketch"
	"github.com/vovakirdan/tui-catch/internal/storage"
)

// DefaultScale is the number of pixels per canvas unit.
const DefaultScale = 8.0

// Options are the optional collaborators of a Driver.
type Options struct {
	Store  *storage.Store // Leaderboard; nil disables saving
	Player string         // Name recorded with saved runs
	Logger *log.Logger    // nil discards
	Scale  float64        // Pixels per canvas unit; 0 uses DefaultScale
}

// Driver implements ebiten.Game for one game session. The game advances
// once per Update at a fixed step of one tick; Draw only repaints.
type Driver struct {
	game     registry.Game
	sketch   *sketch.Sketch
	canvas   *Canvas
	config   core.RuntimeConfig
	opts     Options
	held     map[core.KeyCode]int // Physical keys down per game key
	pressed  []ebiten.Key
	released []ebiten.Key
	quitting bool
	saved    bool
}

// NewDriver creates a driver whose canvas is cfg.ScreenW units wide and
// cfg.ScreenH*2 units tall, matching a terminal of the same size.
func NewDriver(game registry.Game, cfg core.RuntimeConfig, opts Options) *Driver {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	cfg.TickRate = min(cfg.TickRate, core.MaxTickRate)
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Player == "" {
		opts.Player = storage.LocalPlayer
	}
	if opts.Scale <= 0 {
		opts.Scale = DefaultScale
	}

	return &Driver{
		game:   game,
		sketch: game.Sketch(),
		canvas: NewCanvas(cfg.ScreenW, cfg.ScreenH*2, opts.Scale),
		config: cfg,
		opts:   opts,
		held:   make(map[core.KeyCode]int),
	}
}

// Update dispatches this tick's key transitions and advances the game by
// one tick.
func (d *Driver) Update() error {
	if d.quitting {
		return ebiten.Termination
	}
	if !d.sketch.Started() {
		d.sketch.Start(d.canvas)
	}

	d.pressed = inpututil.AppendJustPressedKeys(d.pressed[:0])
	d.released = inpututil.AppendJustReleasedKeys(d.released[:0])
	if d.HandleKeys(d.pressed, d.released) {
		return ebiten.Termination
	}
	d.Step()
	return nil
}

// HandleKeys feeds key transitions to the sketch and reports whether a
// quit key was pressed. Releases go first so a key tapped between two
// ticks still ends released. Keys mapping to the same game key share one
// press: the game sees the release only when the last of them goes up.
func (d *Driver) HandleKeys(pressed, released []ebiten.Key) bool {
	for _, k := range released {
		ev, ok := MapKey(k)
		if !ok {
			continue
		}
		if d.held[ev.Code] > 1 {
			d.held[ev.Code]--
			continue
		}
		delete(d.held, ev.Code)
		d.sketch.KeyReleased(ev)
	}
	for _, k := range pressed {
		if IsQuitKey(k) {
			d.quitting = true
			d.saveRun()
			return true
		}
		ev, ok := MapKey(k)
		if !ok {
			continue
		}
		d.held[ev.Code]++
		if d.held[ev.Code] == 1 {
			d.sketch.KeyPressed(ev)
		}
	}
	return false
}

// Step runs one frame of the sketch with a frame time of one tick and
// records its draw calls.
func (d *Driver) Step() {
	if !d.sketch.Started() {
		d.sketch.Start(d.canvas)
	}
	d.canvas.BeginFrame(d.tickInterval())
	d.sketch.Frame(d.canvas)
}

// Draw paints the frame recorded by the latest Step. Ebitengine may call
// it more or less often than Update.
func (d *Driver) Draw(screen *ebiten.Image) {
	d.canvas.Replay(screen)
}

// Layout keeps the logical screen at the canvas size; the window scales it.
func (d *Driver) Layout(_, _ int) (int, int) {
	return d.canvas.PixelSize()
}

// tickInterval is the fixed frame time in ms. Run sets the TPS to the same
// tick rate, so game time follows ticks rather than display refreshes.
func (d *Driver) tickInterval() float64 {
	return 1000 / float64(d.config.TickRate)
}

// saveRun records the run on the leaderboard once, if it scored.
func (d *Driver) saveRun() {
	if d.saved || d.opts.Store == nil {
		return
	}
	result := d.game.Result()
	if result.Score <= 0 {
		return
	}
	d.saved = true

	_, err := d.opts.Store.SaveRun(storage.Run{
		GameID:   d.game.ID(),
		Player:   d.opts.Player,
		Score:    result.Score,
		Missed:   result.Missed,
		Duration: result.PlayTime,
	})
	if err != nil {
		d.opts.Logger.Warn("could not save run", "err", err)
		return
	}
	d.opts.Logger.Info("run saved", "game", d.game.ID(), "player", d.opts.Player, "score", result.Score)
}

// Run opens a window and plays the game until it is closed.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	d := NewDriver(game, cfg, opts)

	w, h := d.canvas.PixelSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(d.config.TickRate)

	err := ebiten.RunGame(d)
	d.saveRun()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("desktop: %w", err)
	}
	return nil
}
