package tetris

// Snapshot captures the game state for determinism tests.
type Snapshot struct {
	Tick         uint64
	Score        int
	Lines        int
	Grid         string // Locked cells, '#' and '.'
	Active       string // Figure kind, or "" when none is falling
	ActiveRow    int
	ActiveCol    int
	ActiveShape  string
	FallInterval int
	GameOver     bool
	Paused       bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:         g.tick,
		Score:        g.field.Score(),
		Lines:        g.field.Lines(),
		Grid:         g.field.Grid().String(),
		FallInterval: g.FallInterval(),
		GameOver:     g.gameOver,
		Paused:       g.paused,
	}
	if p, ok := g.field.Active(); ok {
		s.Active = p.Figure.Kind().String()
		s.ActiveRow = p.Position.Row
		s.ActiveCol = p.Position.Col
		s.ActiveShape = p.Figure.Grid().String()
	}
	return s
}
