package core

// KeyCode is a non-printable key the game reacts to, abstracted from the
// physical key that produced it.
type KeyCode int

const (
	KeyNone    KeyCode = iota
	KeyLeft            // Left arrow, A
	KeyRight           // Right arrow, D
	KeyConfirm         // Enter/Return
	KeyJump            // Space, Up arrow, W
	KeyPause           // P
	KeyBack            // Esc, B
)

// String returns a human-readable name for the key code.
func (k KeyCode) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyConfirm:
		return "Confirm"
	case KeyJump:
		return "Jump"
	case KeyPause:
		return "Pause"
	case KeyBack:
		return "Back"
	default:
		return "Unknown"
	}
}

// KeyEvent is a discrete key-down or key-up event. It carries either a
// mapped Code, a printable Char, or both.
type KeyEvent struct {
	Code KeyCode
	Char rune
}

// Is reports whether the event carries the given code.
func (e KeyEvent) Is(code KeyCode) bool {
	return e.Code == code
}
