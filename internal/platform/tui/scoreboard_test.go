package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-catch/internal/storage"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0:00"},
		{59 * time.Second, "0:59"},
		{61*time.Second + 600*time.Millisecond, "1:02"},
		{10 * time.Minute, "10:00"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.in); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, expected %q", tt.in, got, tt.want)
		}
	}
}

func TestScoreboardShowsRunsPerVariant(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveRun(storage.Run{GameID: "catch", Player: "dana", Score: 42, Missed: 1, Duration: 75 * time.Second}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	var m tea.Model = NewScoreboardModel(store, 100, 30)
	view := m.View()
	for _, want := range []string{"dana", "42", "1:15", "runs 1"} {
		if !strings.Contains(view, want) {
			t.Errorf("view should contain %q", want)
		}
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Error("catch-rush has no runs and should show the empty message")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if !strings.Contains(m.View(), "dana") {
		t.Error("going back to catch should show its runs again")
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	var m tea.Model = NewScoreboardModel(nil, 80, 24)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	sb := m.(ScoreboardModel)
	if !sb.IsGoingBack() || cmd != nil {
		t.Error("an embedded scoreboard should go back without quitting")
	}

	m, cmd = NewScoreboardModel(nil, 80, 24).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !m.(ScoreboardModel).IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
}
