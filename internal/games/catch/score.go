package catch

import "fmt"

// MaxScore is the ceiling used when the config does not name one.
const MaxScore = 999999

// Score is a non-decreasing counter that saturates at its ceiling.
type Score struct {
	value   int
	ceiling int
}

// NewScore creates a zero score with the given ceiling. A non-positive
// ceiling falls back to MaxScore.
func NewScore(ceiling int) Score {
	if ceiling <= 0 {
		ceiling = MaxScore
	}
	return Score{ceiling: ceiling}
}

// Increment adds one point. At the ceiling the call is dropped and
// Increment reports false.
func (s *Score) Increment() bool {
	if s.value >= s.ceiling {
		return false
	}
	s.value++
	return true
}

// Value returns the current score.
func (s Score) Value() int {
	return s.value
}

// Reset sets the score back to zero.
func (s *Score) Reset() {
	s.value = 0
}

// String returns the HUD label for the score.
func (s Score) String() string {
	return fmt.Sprintf("Score: %d", s.value)
}
