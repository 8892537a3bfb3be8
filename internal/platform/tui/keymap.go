package tui

import (
	"sort"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-catch/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game key events.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a key event.
// Returns the event (Code KeyNone and Char 0 if unmapped) and whether it's
// a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (ev core.KeyEvent, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q", "esc":
		return core.KeyEvent{Code: core.KeyBack}, true
	}

	switch key {
	case "left", "a":
		return core.KeyEvent{Code: core.KeyLeft, Char: charOf(msg)}, false
	case "right", "d":
		return core.KeyEvent{Code: core.KeyRight, Char: charOf(msg)}, false
	case " ", "up", "w": // Space for jump
		return core.KeyEvent{Code: core.KeyJump, Char: charOf(msg)}, false
	case "enter":
		return core.KeyEvent{Code: core.KeyConfirm}, false
	case "p":
		return core.KeyEvent{Code: core.KeyPause, Char: 'p'}, false
	}

	return core.KeyEvent{Char: charOf(msg)}, false
}

// charOf returns the printable rune of a single-character key message.
func charOf(msg tea.KeyMsg) rune {
	if (msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace) && len(msg.Runes) == 1 {
		return msg.Runes[0]
	}
	if msg.Type == tea.KeySpace {
		return ' '
	}
	return 0
}

// Terminals report key presses and auto-repeats but never releases.
// A key counts as held until its repeats stop: the first repeat arrives
// after the OS repeat delay, later ones at the repeat rate.
const (
	firstRepeatWindow = 550 * time.Millisecond
	repeatWindow      = 120 * time.Millisecond
)

// opposites are released as soon as the other direction is pressed.
var opposites = map[core.KeyCode]core.KeyCode{
	core.KeyLeft:  core.KeyRight,
	core.KeyRight: core.KeyLeft,
}

// KeyLatch turns a stream of terminal key presses into press and release
// events. Repeats of a held key are absorbed. Keys mapping to the same game
// key share one latch entry, so the arrow and its letter alias refresh the
// same hold.
type KeyLatch struct {
	held map[core.KeyEvent]heldKey // latchKey -> hold
}

type heldKey struct {
	ev       core.KeyEvent // Latest key seen for the hold; reported on release
	deadline time.Time
}

// NewKeyLatch creates an empty latch.
func NewKeyLatch() *KeyLatch {
	return &KeyLatch{held: make(map[core.KeyEvent]heldKey)}
}

// latchKey identifies mapped keys by code alone. Unmapped keys keep their rune.
func latchKey(ev core.KeyEvent) core.KeyEvent {
	if ev.Code != core.KeyNone {
		return core.KeyEvent{Code: ev.Code}
	}
	return ev
}

// Press records a key message at now. It reports whether this is a new
// press (not a repeat) and returns any keys it released as a side effect.
func (l *KeyLatch) Press(ev core.KeyEvent, now time.Time) (isNew bool, released []core.KeyEvent) {
	key := latchKey(ev)
	if h, ok := l.held[key]; ok {
		window := repeatWindow
		if ev != h.ev {
			// A second key for the same game key repeats only after its own delay
			window = firstRepeatWindow
			h.ev = ev
		}
		if deadline := now.Add(window); deadline.After(h.deadline) {
			h.deadline = deadline
		}
		l.held[key] = h
		return false, nil
	}

	if opp, ok := opposites[ev.Code]; ok {
		for k, h := range l.held {
			if k.Code == opp {
				delete(l.held, k)
				released = append(released, h.ev)
			}
		}
		sortEvents(released)
	}

	l.held[key] = heldKey{ev: ev, deadline: now.Add(firstRepeatWindow)}
	return true, released
}

// Expire releases every key whose repeats stopped before now.
func (l *KeyLatch) Expire(now time.Time) []core.KeyEvent {
	var released []core.KeyEvent
	for k, h := range l.held {
		if now.After(h.deadline) {
			delete(l.held, k)
			released = append(released, h.ev)
		}
	}
	sortEvents(released)
	return released
}

// ReleaseAll releases every held key.
func (l *KeyLatch) ReleaseAll() []core.KeyEvent {
	released := make([]core.KeyEvent, 0, len(l.held))
	for _, h := range l.held {
		released = append(released, h.ev)
	}
	clear(l.held)
	sortEvents(released)
	return released
}

// Held reports whether ev, or another key mapping to the same game key, is
// currently held.
func (l *KeyLatch) Held(ev core.KeyEvent) bool {
	_, ok := l.held[latchKey(ev)]
	return ok
}

// sortEvents orders events deterministically since map iteration is not.
func sortEvents(evs []core.KeyEvent) {
	sort.Slice(evs, func(i, j int) bool {
		if evs[i].Code != evs[j].Code {
			return evs[i].Code < evs[j].Code
		}
		return evs[i].Char < evs[j].Char
	})
}
