// Package logging builds the charm loggers shared by the arcade commands.
package logging

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Prefix is prepended to every log line.
const Prefix = "arcade"

// Options controls logger construction.
type Options struct {
	Level  string // debug, info, warn or error; anything else means info
	Caller bool   // report file:line of the call site
}

// New returns a logger writing to w.
func New(w io.Writer, opts Options) *log.Logger {
	logger := log.New(w)
	logger.SetPrefix(Prefix)
	logger.SetReportTimestamp(true)
	logger.SetTimeFormat(time.DateTime)
	logger.SetReportCaller(opts.Caller)
	logger.SetLevel(ParseLevel(opts.Level))
	return logger
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// ParseLevel maps a level name to a charm log level. Unknown names fall
// back to info.
func ParseLevel(level string) log.Level {
	lvl, err := log.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
