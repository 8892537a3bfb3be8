package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-catch/internal/core"
	"github.com/vovakirdan/tui-catch/internal/registry"
	"github.com/vovakirdan/tui-catch/internal/sketch"
	"github.com/vovakirdan/tui-catch/internal/storage"
)

// recordingScene logs what the sketch dispatches to it.
type recordingScene struct {
	setups   int
	frames   []float64
	pressed  []core.KeyEvent
	released []core.KeyEvent
}

func (s *recordingScene) Name() string { return "recording" }

func (s *recordingScene) Setup(c core.Canvas) { s.setups++ }

func (s *recordingScene) Draw(c core.Canvas) {
	s.frames = append(s.frames, c.DeltaTime())
	c.Background(core.ColorBlack)
	c.Text("hello", 0, 0)
}

func (s *recordingScene) KeyPressed(ev core.KeyEvent) { s.pressed = append(s.pressed, ev) }

func (s *recordingScene) KeyReleased(ev core.KeyEvent) { s.released = append(s.released, ev) }

type fakeGame struct {
	sk     *sketch.Sketch
	scene  *recordingScene
	result registry.Result
}

func newFakeGame() *fakeGame {
	scene := &recordingScene{}
	sk := sketch.New(nil)
	sk.Add(scene)
	return &fakeGame{sk: sk, scene: scene}
}

func (g *fakeGame) ID() string { return "fake" }

func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Sketch() *sketch.Sketch { return g.sk }

func (g *fakeGame) Result() registry.Result { return g.result }

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 50}
}

func tick(t *testing.T, m Model, at time.Time) Model {
	t.Helper()
	next, cmd := m.Update(TickMsg(at))
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
	return next.(Model)
}

func TestModelInitStartsSketch(t *testing.T) {
	g := newFakeGame()
	m := NewModel(g, testConfig(), Options{})

	if cmd := m.Init(); cmd == nil {
		t.Error("Init() should start the tick loop")
	}
	if g.scene.setups != 1 {
		t.Errorf("setup ran %d times, expected 1", g.scene.setups)
	}
}

func TestModelFrameTime(t *testing.T) {
	g := newFakeGame()
	m := NewModel(g, testConfig(), Options{})
	m.Init()

	t0 := time.Unix(100, 0)
	m = tick(t, m, t0)
	m = tick(t, m, t0.Add(30*time.Millisecond))
	m = tick(t, m, t0.Add(2*time.Second))
	tick(t, m, t0.Add(2*time.Second+500*time.Microsecond))

	expected := []float64{20, 30, maxFrameTime, core.MinFrameTime}
	if len(g.scene.frames) != len(expected) {
		t.Fatalf("got %d frames, expected %d", len(g.scene.frames), len(expected))
	}
	for i, dt := range expected {
		if g.scene.frames[i] != dt {
			t.Errorf("frame %d dt = %v, expected %v", i, g.scene.frames[i], dt)
		}
	}
}

func TestModelSynthesizesKeyRelease(t *testing.T) {
	g := newFakeGame()
	m := NewModel(g, testConfig(), Options{})
	m.Init()

	t0 := time.Unix(100, 0)
	next, _ := m.handleKey(tea.KeyMsg{Type: tea.KeyLeft}, t0)
	m = next.(Model)
	next, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyLeft}, t0.Add(500*time.Millisecond))
	m = next.(Model)

	if len(g.scene.pressed) != 1 {
		t.Fatalf("repeat should not re-press, got %d presses", len(g.scene.pressed))
	}

	m = tick(t, m, t0.Add(600*time.Millisecond))
	if len(g.scene.released) != 0 {
		t.Fatal("key released while repeats are still expected")
	}

	tick(t, m, t0.Add(700*time.Millisecond))
	if len(g.scene.released) != 1 || g.scene.released[0].Code != core.KeyLeft {
		t.Fatalf("expected a left release, got %v", g.scene.released)
	}
}

func TestModelBlurReleasesHeldKeys(t *testing.T) {
	g := newFakeGame()
	m := NewModel(g, testConfig(), Options{})
	m.Init()

	next, _ := m.handleKey(tea.KeyMsg{Type: tea.KeyRight}, time.Unix(100, 0))
	next, _ = next.Update(tea.BlurMsg{})

	if len(g.scene.released) != 1 || !g.scene.released[0].Is(core.KeyRight) {
		t.Fatalf("losing focus should release right, got %v", g.scene.released)
	}
	if next.(Model).latch.Held(core.KeyEvent{Code: core.KeyRight}) {
		t.Error("latch should be empty after losing focus")
	}
}

func TestModelQuitSavesRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	g := newFakeGame()
	g.result = registry.Result{Score: 12, Missed: 3, PlayTime: 4 * time.Second}
	m := NewModel(g, testConfig(), Options{Store: store, Player: "alice"})

	next, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, time.Now())
	m = next.(Model)
	if cmd == nil || !m.Quitting() {
		t.Fatal("q should quit the program")
	}
	m.saveRun()

	entries, err := store.AllScores("fake")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected exactly one saved run, got %d", len(entries))
	}
	e := entries[0]
	if e.Player != "alice" || e.Score != 12 || e.Missed != 3 || e.Duration != 4*time.Second {
		t.Errorf("unexpected saved run: %+v", e)
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelQuitWithoutScoreSavesNothing(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := NewModel(newFakeGame(), testConfig(), Options{Store: store})
	m.handleKey(tea.KeyMsg{Type: tea.KeyCtrlC}, time.Now())

	if entries, _ := store.AllScores("fake"); len(entries) != 0 {
		t.Errorf("zero-score run should not be saved, got %d", len(entries))
	}
}

func TestModelNestedQuitKeepsProgram(t *testing.T) {
	m := NewModel(newFakeGame(), testConfig(), Options{Nested: true})

	next, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyEsc}, time.Now())
	if cmd != nil {
		t.Error("nested quit should not end the program")
	}
	if !next.(Model).Quitting() {
		t.Error("nested quit should still mark the model as quitting")
	}
}

func TestModelResizeAndView(t *testing.T) {
	g := newFakeGame()
	m := NewModel(g, testConfig(), Options{})
	m.Init()

	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	m = next.(Model)
	if m.canvas.Width() != 60 || m.canvas.Height() != 40 {
		t.Errorf("canvas = %vx%v after resize, expected 60x40", m.canvas.Width(), m.canvas.Height())
	}

	m = tick(t, m, time.Unix(100, 0))
	view := m.View()
	if !strings.Contains(view, "hello") {
		t.Errorf("view should contain drawn text, got %q", view)
	}
	if lines := strings.Count(view, "\n") + 1; lines != 20 {
		t.Errorf("view has %d lines, expected 20", lines)
	}
}
