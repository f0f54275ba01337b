// Package sorting runs the bubble sort versus insertion sort comparison
// shown by the arcade's benchmark screen.
package sorting

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// MaxDisplayLength is the longest array printed in full.
const MaxDisplayLength = 10

// TooLongNotice replaces arrays longer than MaxDisplayLength in output.
const TooLongNotice = "array is too long to display"

// Algorithm names a sorting algorithm.
type Algorithm string

const (
	Bubble    Algorithm = "bubble"
	Insertion Algorithm = "insertion"
)

// Title returns the display name of the algorithm.
func (a Algorithm) Title() string {
	switch a {
	case Bubble:
		return "Bubble sort"
	case Insertion:
		return "Insertion sort"
	default:
		return string(a)
	}
}

// Rand is the randomness source for RandomArray.
type Rand interface {
	Intn(n int) int
}

// BubbleSort sorts a in ascending order in place.
func BubbleSort(a []int) {
	for i := 0; i < len(a)-1; i++ {
		for j := 0; j < len(a)-i-1; j++ {
			if a[j] > a[j+1] {
				a[j], a[j+1] = a[j+1], a[j]
			}
		}
	}
}

// InsertionSort sorts a in ascending order in place.
func InsertionSort(a []int) {
	for i := 1; i < len(a); i++ {
		key := a[i]
		j := i - 1
		for j >= 0 && a[j] > key {
			a[j+1] = a[j]
			j--
		}
		a[j+1] = key
	}
}

// RandomArray returns n values drawn uniformly from [lo, hi).
func RandomArray(rng Rand, n, lo, hi int) []int {
	if n < 0 {
		n = 0
	}
	out := make([]int, n)
	for i := range out {
		out[i] = lo + rng.Intn(hi-lo)
	}
	return out
}

// Result is the outcome of one algorithm.
type Result struct {
	Algorithm Algorithm
	Sorted    []int
	Elapsed   time.Duration
}

// Report compares both algorithms on the same input.
type Report struct {
	Input     []int
	Bubble    Result
	Insertion Result
	Faster    Algorithm // Insertion wins ties
}

// Compare sorts copies of data with both algorithms and times them.
func Compare(data []int) Report {
	return compare(data, time.Now)
}

func compare(data []int, now func() time.Time) Report {
	r := Report{
		Input:     append([]int(nil), data...),
		Bubble:    run(Bubble, BubbleSort, data, now),
		Insertion: run(Insertion, InsertionSort, data, now),
	}
	r.Faster = Insertion
	if r.Bubble.Elapsed < r.Insertion.Elapsed {
		r.Faster = Bubble
	}
	return r
}

func run(alg Algorithm, sortFn func([]int), data []int, now func() time.Time) Result {
	work := append([]int(nil), data...)
	start := now()
	sortFn(work)
	return Result{Algorithm: alg, Sorted: work, Elapsed: now().Sub(start)}
}

// FormatArray joins values with ", ", or returns TooLongNotice for arrays
// longer than MaxDisplayLength.
func FormatArray(a []int) string {
	if len(a) > MaxDisplayLength {
		return TooLongNotice
	}
	parts := make([]string, len(a))
	for i, v := range a {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}

// WriteTo prints the report in the console layout.
func (r Report) WriteTo(w io.Writer) (int64, error) {
	var sb strings.Builder
	fmt.Fprintln(&sb, "--- Array sorting ---")
	fmt.Fprintln(&sb, "Source array:")
	fmt.Fprintln(&sb, FormatArray(r.Input))
	fmt.Fprintln(&sb, "Comparing bubble sort and insertion sort...")
	for _, res := range []Result{r.Bubble, r.Insertion} {
		fmt.Fprintf(&sb, "%s:\n%s\n", res.Algorithm.Title(), FormatArray(res.Sorted))
	}
	for _, res := range []Result{r.Bubble, r.Insertion} {
		fmt.Fprintf(&sb, "%s time: %.4f ms\n", res.Algorithm.Title(), float64(res.Elapsed)/float64(time.Millisecond))
	}
	fmt.Fprintf(&sb, "%s is faster.\n", r.Faster.Title())

	n, err := io.WriteString(w, sb.String())
	return int64(n), err
}
