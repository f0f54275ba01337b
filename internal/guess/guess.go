// Package guess implements the "guess the result" number game: the player
// picks A and B, then has a few attempts to guess π·5·ln(B)/(sin(A)+1).
package guess

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Answer returns π·5·ln(b) / (sin(a)+1). Non-positive b or sin(a) = -1
// yield NaN or ±Inf, which no guess can match.
func Answer(a, b float64) float64 {
	return math.Pi * 5 * math.Log(b) / (math.Sin(a) + 1)
}

// ErrNotANumber is returned by ParseNumber for unparsable input.
var ErrNotANumber = errors.New("guess: not a number")

// ParseNumber reads a floating point number. Surrounding spaces are ignored
// and a decimal comma is accepted.
func ParseNumber(s string) (float64, error) {
	s = strings.TrimSpace(strings.Replace(s, ",", ".", 1))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, s)
	}
	return v, nil
}

// Outcome is the result of one guess.
type Outcome struct {
	Correct   bool
	Remaining int  // Attempts left after this guess
	Over      bool // No further guesses are accepted
}

// Session tracks one round. The zero value is not usable; call NewSession.
type Session struct {
	answer    float64
	tolerance float64
	attempts  int
	used      int
	won       bool
}

// NewSession starts a round for answer with the given attempt budget and
// absolute tolerance.
func NewSession(answer float64, attempts int, tolerance float64) *Session {
	return &Session{answer: answer, tolerance: tolerance, attempts: max(attempts, 1)}
}

// Guess checks x against the answer. Guesses after the round is over are
// ignored and report the final state.
func (s *Session) Guess(x float64) Outcome {
	if s.Over() {
		return Outcome{Correct: false, Remaining: s.Remaining(), Over: true}
	}

	s.used++
	if math.Abs(x-s.answer) < s.tolerance {
		s.won = true
		return Outcome{Correct: true, Remaining: s.Remaining(), Over: true}
	}
	return Outcome{Remaining: s.Remaining(), Over: s.Over()}
}

// Answer returns the value being guessed.
func (s *Session) Answer() float64 { return s.answer }

// Attempts returns the total attempt budget.
func (s *Session) Attempts() int { return s.attempts }

// Used returns how many guesses were made.
func (s *Session) Used() int { return s.used }

// Remaining returns how many guesses are left.
func (s *Session) Remaining() int {
	if s.won {
		return 0
	}
	return s.attempts - s.used
}

// Won reports whether a guess matched.
func (s *Session) Won() bool { return s.won }

// Over reports whether the round has ended.
func (s *Session) Over() bool { return s.won || s.used >= s.attempts }
