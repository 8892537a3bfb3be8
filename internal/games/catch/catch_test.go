package catch

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-catch/internal/core"
	"github.com/vovakirdan/tui-catch/internal/registry"
	"github.com/vovakirdan/tui-catch/internal/sketch"
)

func TestSessionFlow(t *testing.T) {
	c := newFakeCanvas(80, 48, 16)
	s := NewSession("catch", "Catch", registry.Env{Runtime: core.RuntimeConfig{Seed: 3}})
	sk := s.Sketch()

	if sk.Len() != 2 {
		t.Fatalf("expected menu and game scenes, got %d", sk.Len())
	}
	sk.Start(c)

	sk.Frame(c)
	if _, ok := c.findText("Catch"); !ok {
		t.Error("menu should draw the title")
	}
	if len(s.Game().Collectibles()) != 0 {
		t.Error("game should not run while the menu is active")
	}

	// Keys other than confirm leave the menu active
	sk.KeyPressed(core.KeyEvent{Code: core.KeyJump})
	if sk.Active().Name() != "menu" {
		t.Fatal("jump should not leave the menu")
	}

	sk.KeyPressed(core.KeyEvent{Code: core.KeyConfirm})
	if sk.Active().Name() != "game" {
		t.Fatalf("confirm should activate the game, active = %q", sk.Active().Name())
	}

	sk.Frame(c)
	if len(s.Game().Collectibles()) != 1 {
		t.Errorf("first game frame should spawn, got %d", len(s.Game().Collectibles()))
	}

	if r := s.Result(); r.Score != 0 || r.PlayTime != 16*time.Millisecond {
		t.Errorf("unexpected result after one frame: %+v", r)
	}

	// Confirm on the last scene is handled by the game and changes nothing
	sk.KeyPressed(core.KeyEvent{Code: core.KeyConfirm})
	if sk.ActiveIndex() != 1 {
		t.Error("active scene should stay on the game")
	}
}

type failingAdvancer struct{ calls int }

func (f *failingAdvancer) Advance() error {
	f.calls++
	return sketch.ErrSceneOutOfRange
}

func TestMenuLogsFailedAdvance(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	adv := &failingAdvancer{}
	m := NewMenu("Catch", adv, logger)

	m.KeyPressed(core.KeyEvent{Code: core.KeyConfirm})

	if adv.calls != 1 {
		t.Fatalf("Advance called %d times, expected 1", adv.calls)
	}
	if !strings.Contains(buf.String(), "cannot start game") {
		t.Errorf("failure not logged: %q", buf.String())
	}
}

func TestMenuWithoutGameScene(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	sk := sketch.New(logger)
	sk.Add(NewMenu("Catch", sk, logger))

	sk.KeyPressed(core.KeyEvent{Code: core.KeyConfirm})

	if sk.ActiveIndex() != 0 {
		t.Error("a failed advance must not change the active scene")
	}
	if lines := strings.Count(buf.String(), "\n"); lines != 1 {
		t.Errorf("failed advance logged %d lines, expected 1: %q", lines, buf.String())
	}
	if err := sk.Advance(); !errors.Is(err, sketch.ErrSceneOutOfRange) {
		t.Errorf("Advance() = %v, expected ErrSceneOutOfRange", err)
	}
}

func TestRegisteredVariants(t *testing.T) {
	tests := []struct {
		id         string
		title      string
		difficulty bool
	}{
		{"catch", "Catch", false},
		{"catch-rush", "Catch Rush", true},
	}

	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			g, err := registry.Create(tc.id, registry.Env{})
			if err != nil {
				t.Fatalf("Create(%q) failed: %v", tc.id, err)
			}
			if g.ID() != tc.id || g.Title() != tc.title {
				t.Errorf("got %q/%q", g.ID(), g.Title())
			}
			s, ok := g.(*Session)
			if !ok {
				t.Fatalf("unexpected game type %T", g)
			}
			if got := s.Game().difficulty.IsEnabled(); got != tc.difficulty {
				t.Errorf("difficulty enabled = %v, expected %v", got, tc.difficulty)
			}
		})
	}
}
