package core

// RuntimeConfig is handed to a game on Reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 means the platform picks one
}

// DefaultConfig returns a RuntimeConfig for an 80x24 terminal at 30 ticks/s.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// GameState is the status a game reports back to the platform.
type GameState struct {
	Score    int
	Lines    int // Rows cleared so far
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State  GameState
	Events []Event // What happened during the tick, oldest first
}

// EventKind classifies a step event.
type EventKind int

const (
	EventSpawn EventKind = iota
	EventLock
	EventLinesCleared
	EventGameOver
)

// Event is a notable state change produced by a tick. Drivers use events
// to log, flash the HUD or record scores.
type Event struct {
	Kind  EventKind
	Count int // Rows cleared for EventLinesCleared
}

// Has reports whether an event of the given kind happened.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
