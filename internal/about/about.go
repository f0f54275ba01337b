// Package about holds the author information shown by every front end.
package about

import "strings"

// Title is the heading of the author screen.
const Title = "About the author"

var lines = []string{
	"Console Arcade",
	"A falling-block puzzle with a few small console programs:",
	"a guessing game and a sorting benchmark.",
	"",
	"Written in Go with Bubble Tea, Lip Gloss and Cobra.",
	"Source and issues: github.com/blockfield/arcade",
}

// Lines returns the author text one line per element.
func Lines() []string {
	return append([]string(nil), lines...)
}

// Text returns the author text as a single newline-terminated block.
func Text() string {
	return strings.Join(lines, "\n") + "\n"
}
