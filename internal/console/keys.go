package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/eiannone/keyboard"
)

// KeySource supplies player input: single key presses for the game and
// whole lines for menus and numbers. Both return io.EOF when input ends.
type KeySource interface {
	ReadKey() (keyboard.KeyEvent, error)
	ReadLine() (string, error)
}

type lineReader struct {
	r *bufio.Reader
}

// ReadLine returns the next line without its line terminator. A final line
// without a newline is returned before io.EOF.
func (l lineReader) ReadLine() (string, error) {
	line, err := l.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Keyboard reads keys from the terminal in raw mode and lines from r,
// normally os.Stdin. The terminal is only held in raw mode while a key is
// being read, so line input and output behave normally in between.
type Keyboard struct {
	lineReader
}

// NewKeyboard creates a terminal key source.
func NewKeyboard(r io.Reader) *Keyboard {
	return &Keyboard{lineReader{bufio.NewReader(r)}}
}

// ReadKey blocks until a single key is pressed.
func (k *Keyboard) ReadKey() (keyboard.KeyEvent, error) {
	ch, key, err := keyboard.GetSingleKey()
	if err != nil {
		return keyboard.KeyEvent{}, fmt.Errorf("console: cannot read key: %w", err)
	}
	return keyboard.KeyEvent{Rune: ch, Key: key}, nil
}

// ReaderSource reads both keys and lines from a plain reader. It is used
// when stdin is not a terminal and in tests. Each rune is one key press;
// line breaks between keys are skipped.
type ReaderSource struct {
	lineReader
}

// NewReaderSource creates a key source over r.
func NewReaderSource(r io.Reader) *ReaderSource {
	return &ReaderSource{lineReader{bufio.NewReader(r)}}
}

// ReadKey returns the next non-newline rune as a key event.
func (s *ReaderSource) ReadKey() (keyboard.KeyEvent, error) {
	for {
		r, _, err := s.r.ReadRune()
		if err != nil {
			return keyboard.KeyEvent{}, err
		}
		switch r {
		case '\n', '\r':
			continue
		case ' ':
			return keyboard.KeyEvent{Key: keyboard.KeySpace}, nil
		case '\x1b':
			return keyboard.KeyEvent{Key: keyboard.KeyEsc}, nil
		case '\x03':
			return keyboard.KeyEvent{Key: keyboard.KeyCtrlC}, nil
		}
		return keyboard.KeyEvent{Rune: r}, nil
	}
}

// keyName returns the key as the game's control alphabet sees it: the
// typed character, or " " for the space bar.
func keyName(ev keyboard.KeyEvent) string {
	switch ev.Key {
	case keyboard.KeySpace:
		return " "
	case keyboard.KeyArrowLeft:
		return "A"
	case keyboard.KeyArrowRight:
		return "D"
	case keyboard.KeyArrowDown:
		return "S"
	case keyboard.KeyArrowUp:
		return "W"
	}
	if ev.Rune == 0 {
		return ""
	}
	return string(ev.Rune)
}

// isQuitKey reports whether ev abandons the current game.
func isQuitKey(ev keyboard.KeyEvent) bool {
	return ev.Key == keyboard.KeyEsc || ev.Key == keyboard.KeyCtrlC
}
