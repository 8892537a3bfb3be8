package sketch

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-catch/internal/core"
)

// ErrSceneOutOfRange is returned when activating a scene index that does
// not exist.
var ErrSceneOutOfRange = errors.New("sketch: scene index out of range")

// Sketch owns the ordered scenes and the active-scene index.
//
// Start dispatches Preload and then Setup to every scene in registration
// order. Frame and key events only reach the active scene, and only when it
// implements the matching hook.
type Sketch struct {
	scenes  []Scene
	active  int
	started bool
	logger  *log.Logger
}

// New creates an empty sketch. A nil logger discards log output.
func New(logger *log.Logger) *Sketch {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Sketch{logger: logger}
}

// Add appends scenes in order. The first scene added is active.
func (s *Sketch) Add(scenes ...Scene) {
	s.scenes = append(s.scenes, scenes...)
}

// Len returns the number of registered scenes.
func (s *Sketch) Len() int {
	return len(s.scenes)
}

// ActiveIndex returns the index of the active scene.
func (s *Sketch) ActiveIndex() int {
	return s.active
}

// Active returns the active scene, or nil if none are registered.
func (s *Sketch) Active() Scene {
	if len(s.scenes) == 0 {
		return nil
	}
	return s.scenes[s.active]
}

// Scene returns the scene at index i, or nil if i is out of range.
func (s *Sketch) Scene(i int) Scene {
	if i < 0 || i >= len(s.scenes) {
		return nil
	}
	return s.scenes[i]
}

// Start runs Preload on every scene, then Setup on every scene, in
// registration order. Subsequent calls do nothing.
func (s *Sketch) Start(c core.Canvas) {
	if s.started {
		return
	}
	s.started = true

	for _, sc := range s.scenes {
		if p, ok := sc.(Preloader); ok {
			p.Preload()
		}
	}
	for _, sc := range s.scenes {
		if h, ok := sc.(SetupHandler); ok {
			h.Setup(c)
		}
	}
	s.logger.Debug("sketch started", "scenes", len(s.scenes))
}

// Started reports whether Start has run.
func (s *Sketch) Started() bool {
	return s.started
}

// Activate makes scenes[index] the active scene. An invalid index returns
// an error wrapping ErrSceneOutOfRange and leaves the active scene as is;
// reporting it is left to the caller.
func (s *Sketch) Activate(index int) error {
	if index < 0 || index >= len(s.scenes) {
		return fmt.Errorf("%w: index %d with %d scenes", ErrSceneOutOfRange, index, len(s.scenes))
	}

	from := s.active
	s.active = index
	s.logger.Debug("scene activated", "from", s.scenes[from].Name(), "to", s.scenes[index].Name())
	return nil
}

// Advance activates the scene after the active one. At the last scene it
// fails the same way Activate does.
func (s *Sketch) Advance() error {
	return s.Activate(s.active + 1)
}

// Frame dispatches one frame to the active scene's Draw hook.
func (s *Sketch) Frame(c core.Canvas) {
	if d, ok := s.Active().(Drawer); ok {
		d.Draw(c)
	}
}

// KeyPressed dispatches a key-down event to the active scene.
func (s *Sketch) KeyPressed(ev core.KeyEvent) {
	if h, ok := s.Active().(KeyPressHandler); ok {
		h.KeyPressed(ev)
	}
}

// KeyReleased dispatches a key-up event to the active scene.
func (s *Sketch) KeyReleased(ev core.KeyEvent) {
	if h, ok := s.Active().(KeyReleaseHandler); ok {
		h.KeyReleased(ev)
	}
}
