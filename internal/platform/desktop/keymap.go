package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-catch/internal/core"
)

// MapKey translates an Ebitengine key into a game key event.
// The second result is false for keys the game ignores.
func MapKey(k ebiten.Key) (core.KeyEvent, bool) {
	switch k {
	case ebiten.KeyArrowLeft:
		return core.KeyEvent{Code: core.KeyLeft}, true
	case ebiten.KeyA:
		return core.KeyEvent{Code: core.KeyLeft, Char: 'a'}, true
	case ebiten.KeyArrowRight:
		return core.KeyEvent{Code: core.KeyRight}, true
	case ebiten.KeyD:
		return core.KeyEvent{Code: core.KeyRight, Char: 'd'}, true
	case ebiten.KeySpace:
		return core.KeyEvent{Code: core.KeyJump, Char: ' '}, true
	case ebiten.KeyArrowUp:
		return core.KeyEvent{Code: core.KeyJump}, true
	case ebiten.KeyW:
		return core.KeyEvent{Code: core.KeyJump, Char: 'w'}, true
	case ebiten.KeyEnter, ebiten.KeyNumpadEnter:
		return core.KeyEvent{Code: core.KeyConfirm}, true
	case ebiten.KeyP:
		return core.KeyEvent{Code: core.KeyPause, Char: 'p'}, true
	}
	return core.KeyEvent{}, false
}

// IsQuitKey reports whether k closes the window.
func IsQuitKey(k ebiten.Key) bool {
	return k == ebiten.KeyEscape || k == ebiten.KeyQ
}
