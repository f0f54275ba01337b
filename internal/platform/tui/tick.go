// Package tui is the Bubble Tea front end: the game runner, the main menu
// and the guess, sort, about and scoreboard screens.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/blockfield/arcade/internal/core"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickInterval returns the time between ticks at rate ticks per second.
// A rate that is not positive falls back to the default tick rate.
func tickInterval(rate int) time.Duration {
	if rate <= 0 {
		rate = core.DefaultConfig().TickRate
	}
	return time.Second / time.Duration(rate)
}

// tickCmd schedules the next tick.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
