package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-catch/internal/core"
	"github.com/vovakirdan/tui-catch/internal/registry"
	"github.com/vovakirdan/tui-catch/internal/sketch"
	"github.com/vovakirdan/tui-catch/internal/storage"
)

// maxFrameTime caps the frame time handed to the game so a stalled
// terminal never feeds one huge step into the integrator.
const maxFrameTime = core.MaxFrameTime

// Options are the optional collaborators of a Model.
type Options struct {
	Store  *storage.Store // Leaderboard; nil disables saving
	Player string         // Name recorded with saved runs
	Logger *log.Logger    // nil discards
	Nested bool           // Quit hands control back to a parent model instead of ending the program
}

// Model is the Bubble Tea model that drives one game session: it feeds
// frames and key events to the session's sketch and renders its canvas.
type Model struct {
	game     registry.Game
	sketch   *sketch.Sketch
	canvas   *Canvas
	config   core.RuntimeConfig
	opts     Options
	keys     *KeyMapper
	latch    *KeyLatch
	lastTick time.Time
	quitting bool
	saved    *bool // Shared so value copies agree the run was saved
}

// NewModel creates a Bubble Tea model for the given game session.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
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

	return Model{
		game:   game,
		sketch: game.Sketch(),
		canvas: NewCanvas(cfg.ScreenW, cfg.ScreenH),
		config: cfg,
		opts:   opts,
		keys:   NewKeyMapper(),
		latch:  NewKeyLatch(),
		saved:  new(bool),
	}
}

// Init starts the sketch and the tick loop.
func (m Model) Init() tea.Cmd {
	m.sketch.Start(m.canvas)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.BlurMsg:
		// Releases would never arrive for keys held while unfocused
		for _, ev := range m.latch.ReleaseAll() {
			m.sketch.KeyReleased(ev)
		}
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if path, err := m.saveScreenshot(); err != nil {
			m.opts.Logger.Warn("screenshot failed", "err", err)
		} else {
			m.opts.Logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	ev, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.saveRun()
		if m.opts.Nested {
			return m, nil
		}
		return m, tea.Quit
	}
	if ev == (core.KeyEvent{}) {
		return m, nil
	}

	isNew, released := m.latch.Press(ev, now)
	for _, r := range released {
		m.sketch.KeyReleased(r)
	}
	if isNew {
		m.sketch.KeyPressed(ev)
	}
	return m, nil
}

// handleResize follows the terminal size. Entities keep their positions;
// the player's per-frame clamp pulls it back inside a smaller canvas.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.canvas.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick runs one frame: synthesized key releases, then the sketch.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	m.canvas.SetDeltaTime(m.frameTime(now))
	m.lastTick = now

	for _, ev := range m.latch.Expire(now) {
		m.sketch.KeyReleased(ev)
	}
	m.sketch.Frame(m.canvas)

	return m, tickCmd(m.config.TickRate)
}

// frameTime returns the milliseconds since the previous tick, clamped to
// [core.MinFrameTime, maxFrameTime]. The first frame uses the nominal tick
// interval.
func (m Model) frameTime(now time.Time) float64 {
	if m.lastTick.IsZero() {
		return 1000 / float64(m.config.TickRate)
	}
	ms := float64(now.Sub(m.lastTick)) / float64(time.Millisecond)
	return core.ClampF(ms, core.MinFrameTime, maxFrameTime)
}

// saveRun records the run on the leaderboard once, if it scored.
// Saving is best effort; failures are logged and play is unaffected.
func (m Model) saveRun() {
	if *m.saved || m.opts.Store == nil {
		return
	}
	result := m.game.Result()
	if result.Score <= 0 {
		return
	}
	*m.saved = true

	_, err := m.opts.Store.SaveRun(storage.Run{
		GameID:   m.game.ID(),
		Player:   m.opts.Player,
		Score:    result.Score,
		Missed:   result.Missed,
		Duration: result.PlayTime,
	})
	if err != nil {
		m.opts.Logger.Warn("could not save run", "err", err)
		return
	}
	m.opts.Logger.Info("run saved", "game", m.game.ID(), "player", m.opts.Player, "score", result.Score)
}

// saveScreenshot writes the current screen as plain text under
// ~/.catch/screenshots and returns the file path.
func (m Model) saveScreenshot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: cannot find home directory: %w", err)
	}
	dir := filepath.Join(home, ".catch", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create %s: %w", dir, err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.canvas.Screen().String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// Quitting reports whether the user asked to quit.
func (m Model) Quitting() bool {
	return m.quitting
}

// View renders the current canvas to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.canvas.Screen())
}

// Run starts the Bubble Tea program with a model for the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
		tea.WithReportFocus(),
	)

	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		fm.saveRun()
	}
	return err
}
