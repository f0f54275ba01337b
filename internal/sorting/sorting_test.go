package sorting

import (
	"bytes"
	"math/rand"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortAlgorithms(t *testing.T) {
	tests := []struct {
		name  string
		input []int
	}{
		{"empty", nil},
		{"single", []int{7}},
		{"sorted", []int{1, 2, 3, 4}},
		{"reversed", []int{5, 4, 3, 2, 1}},
		{"duplicates and negatives", []int{3, -1, 3, -100, 0, 99, -1}},
	}

	algorithms := map[Algorithm]func([]int){
		Bubble:    BubbleSort,
		Insertion: InsertionSort,
	}

	for _, tc := range tests {
		want := slices.Clone(tc.input)
		slices.Sort(want)

		for name, sortFn := range algorithms {
			got := slices.Clone(tc.input)
			sortFn(got)
			assert.Equal(t, want, got, "%s on %s", name, tc.name)
		}
	}
}

func TestRandomArrayRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	a := RandomArray(rng, 1000, -100, 100)

	require.Len(t, a, 1000)
	for _, v := range a {
		require.GreaterOrEqual(t, v, -100)
		require.Less(t, v, 100)
	}

	assert.Empty(t, RandomArray(rng, -3, 0, 10))
}

func TestRandomArrayDeterministic(t *testing.T) {
	a := RandomArray(rand.New(rand.NewSource(42)), 10, -100, 100)
	b := RandomArray(rand.New(rand.NewSource(42)), 10, -100, 100)
	assert.Equal(t, a, b)
}

// fakeClock advances by the next step on every call.
func fakeClock(steps ...time.Duration) func() time.Time {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	i := 0
	return func() time.Time {
		base = base.Add(steps[i%len(steps)])
		i++
		return base
	}
}

func TestCompare(t *testing.T) {
	input := []int{5, -3, 9, 0}

	// start, stop for bubble then start, stop for insertion
	r := compare(input, fakeClock(0, 3*time.Millisecond, 0, time.Millisecond))

	assert.Equal(t, []int{5, -3, 9, 0}, r.Input)
	assert.Equal(t, []int{5, -3, 9, 0}, input, "input must not be modified")
	assert.Equal(t, []int{-3, 0, 5, 9}, r.Bubble.Sorted)
	assert.Equal(t, []int{-3, 0, 5, 9}, r.Insertion.Sorted)
	assert.Equal(t, 3*time.Millisecond, r.Bubble.Elapsed)
	assert.Equal(t, time.Millisecond, r.Insertion.Elapsed)
	assert.Equal(t, Insertion, r.Faster)

	r = compare(input, fakeClock(0, time.Millisecond, 0, 2*time.Millisecond))
	assert.Equal(t, Bubble, r.Faster)
}

func TestCompareTieGoesToInsertion(t *testing.T) {
	r := compare([]int{2, 1}, fakeClock(0, time.Millisecond))
	assert.Equal(t, r.Bubble.Elapsed, r.Insertion.Elapsed)
	assert.Equal(t, Insertion, r.Faster)
}

func TestFormatArray(t *testing.T) {
	assert.Equal(t, "", FormatArray(nil))
	assert.Equal(t, "-1, 0, 42", FormatArray([]int{-1, 0, 42}))
	assert.Equal(t, "0, 1, 2, 3, 4, 5, 6, 7, 8, 9", FormatArray([]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}))
	assert.Equal(t, TooLongNotice, FormatArray(make([]int, 11)))
}

func TestReportWriteTo(t *testing.T) {
	r := compare([]int{3, 1, 2}, fakeClock(0, 2*time.Millisecond, 0, time.Millisecond))

	var buf bytes.Buffer
	n, err := r.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)

	out := buf.String()
	assert.Contains(t, out, "Source array:\n3, 1, 2\n")
	assert.Contains(t, out, "Bubble sort:\n1, 2, 3\n")
	assert.Contains(t, out, "Insertion sort time: 1.0000 ms")
	assert.True(t, strings.HasSuffix(out, "Insertion sort is faster.\n"))
}

func TestReportWriteToLongArray(t *testing.T) {
	r := compare(make([]int, 20), fakeClock(time.Microsecond))

	var buf bytes.Buffer
	_, err := r.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(buf.String(), TooLongNotice))
}
