package guess

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswer(t *testing.T) {
	tests := []struct {
		a, b     float64
		expected float64
	}{
		{0, 1, 0},
		{0, math.E, 5 * math.Pi},
		{math.Pi / 2, math.E, 5 * math.Pi / 2},
	}

	for _, tc := range tests {
		assert.InDelta(t, tc.expected, Answer(tc.a, tc.b), 1e-9, "Answer(%v, %v)", tc.a, tc.b)
	}

	assert.True(t, math.IsNaN(Answer(0, -1)), "log of a negative number")
	assert.True(t, math.IsInf(Answer(0, 0), -1))
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in       string
		expected float64
		ok       bool
	}{
		{"3.14", 3.14, true},
		{" -2 ", -2, true},
		{"2,5", 2.5, true},
		{"1e-3", 0.001, true},
		{"abc", 0, false},
		{"", 0, false},
	}

	for _, tc := range tests {
		got, err := ParseNumber(tc.in)
		if !tc.ok {
			assert.ErrorIs(t, err, ErrNotANumber, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.InDelta(t, tc.expected, got, 1e-12, tc.in)
	}
}

func TestSessionWinWithinTolerance(t *testing.T) {
	s := NewSession(10, 3, 0.0001)

	out := s.Guess(9)
	assert.Equal(t, Outcome{Remaining: 2}, out)

	out = s.Guess(10.00005)
	assert.Equal(t, Outcome{Correct: true, Remaining: 0, Over: true}, out)
	assert.True(t, s.Won())
	assert.Equal(t, 2, s.Used())

	out = s.Guess(10)
	assert.False(t, out.Correct, "guesses after the round ends are ignored")
	assert.True(t, out.Over)
	assert.Equal(t, 2, s.Used())
}

func TestSessionToleranceIsStrict(t *testing.T) {
	s := NewSession(1, 1, 0.5)
	out := s.Guess(1.5)
	assert.False(t, out.Correct)
	assert.True(t, out.Over)
}

func TestSessionRunsOutOfAttempts(t *testing.T) {
	s := NewSession(42, 3, 0.0001)

	remaining := []int{2, 1, 0}
	for i, want := range remaining {
		out := s.Guess(0)
		assert.False(t, out.Correct)
		assert.Equal(t, want, out.Remaining)
		assert.Equal(t, i == len(remaining)-1, out.Over)
	}
	assert.False(t, s.Won())
	assert.True(t, s.Over())
	assert.Equal(t, 42.0, s.Answer())
}

func TestSessionNaNAnswerCannotBeWon(t *testing.T) {
	s := NewSession(math.NaN(), 1, 1)
	assert.False(t, s.Guess(0).Correct)
	assert.True(t, s.Over())
}

func TestSessionMinimumOneAttempt(t *testing.T) {
	s := NewSession(1, 0, 0.1)
	assert.Equal(t, 1, s.Attempts())
}
