// Package sketch provides the scene lifecycle machinery: the optional hooks a
// scene may implement and the Sketch orchestrator that owns the ordered
// scenes, tracks the active one and dispatches frame and input events to it.
package sketch

import "github.com/vovakirdan/tui-catch/internal/core"

// Scene is a self-contained stage of the game. Beyond a name, every
// lifecycle hook is optional and declared by implementing the matching
// interface below.
type Scene interface {
	Name() string
}

// Preloader is implemented by scenes that load resources before setup.
type Preloader interface {
	Preload()
}

// SetupHandler is implemented by scenes that initialise state once the
// canvas exists.
type SetupHandler interface {
	Setup(c core.Canvas)
}

// Drawer is implemented by scenes that update and draw every frame.
type Drawer interface {
	Draw(c core.Canvas)
}

// KeyPressHandler is implemented by scenes that react to key-down events.
type KeyPressHandler interface {
	KeyPressed(ev core.KeyEvent)
}

// KeyReleaseHandler is implemented by scenes that react to key-up events.
type KeyReleaseHandler interface {
	KeyReleased(ev core.KeyEvent)
}
