package desktop

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-catch/internal/core"
)

func TestMapKey(t *testing.T) {
	tests := []struct {
		key  ebiten.Key
		want core.KeyEvent
		ok   bool
	}{
		{ebiten.KeyArrowLeft, core.KeyEvent{Code: core.KeyLeft}, true},
		{ebiten.KeyA, core.KeyEvent{Code: core.KeyLeft, Char: 'a'}, true},
		{ebiten.KeyArrowRight, core.KeyEvent{Code: core.KeyRight}, true},
		{ebiten.KeyD, core.KeyEvent{Code: core.KeyRight, Char: 'd'}, true},
		{ebiten.KeySpace, core.KeyEvent{Code: core.KeyJump, Char: ' '}, true},
		{ebiten.KeyArrowUp, core.KeyEvent{Code: core.KeyJump}, true},
		{ebiten.KeyW, core.KeyEvent{Code: core.KeyJump, Char: 'w'}, true},
		{ebiten.KeyEnter, core.KeyEvent{Code: core.KeyConfirm}, true},
		{ebiten.KeyP, core.KeyEvent{Code: core.KeyPause, Char: 'p'}, true},
		{ebiten.KeyZ, core.KeyEvent{}, false},
		{ebiten.KeyEscape, core.KeyEvent{}, false},
	}

	for _, tt := range tests {
		got, ok := MapKey(tt.key)
		if got != tt.want || ok != tt.ok {
			t.Errorf("MapKey(%v) = %+v, %v; expected %+v, %v", tt.key, got, ok, tt.want, tt.ok)
		}
	}
}

func TestIsQuitKey(t *testing.T) {
	for _, k := range []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ} {
		if !IsQuitKey(k) {
			t.Errorf("%v should quit", k)
		}
	}
	if IsQuitKey(ebiten.KeySpace) {
		t.Error("space should not quit")
	}
}
