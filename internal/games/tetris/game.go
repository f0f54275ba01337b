// Package tetris adapts the falling-block simulation to the arcade
// platform: tick-based gravity, difficulty scaling, spawning and the
// game-over lifecycle.
package tetris

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/blockfield/arcade/internal/blocks"
	"github.com/blockfield/arcade/internal/config"
	"github.com/blockfield/arcade/internal/core"
	"github.com/blockfield/arcade/internal/logging"
	"github.com/blockfield/arcade/internal/registry"
)

// ID is the registry identifier.
const ID = "tetris"

// flashTicks is how long the "+N lines" notice stays on the HUD.
const flashTicks = 45

// Package-level settings applied on the next Reset, set from the CLI.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	pkgLogger        = logging.Discard()
)

// SetConfigPath sets a custom config file for new games.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset for new games.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// SetLogger sets the logger used by new games and their fields.
func SetLogger(logger *log.Logger) {
	if logger == nil {
		logger = logging.Discard()
	}
	pkgLogger = logger
}

// Game is the falling-block game.
type Game struct {
	cfg        config.BlocksConfig
	override   *config.BlocksConfig // Used instead of loading when set
	runtime    core.RuntimeConfig
	difficulty *config.DifficultyManager
	field      *blocks.Field
	rng        blocks.Rand
	newRand    func(seed int64) blocks.Rand
	logger     *log.Logger

	runID     uuid.UUID
	tick      uint64
	fallTimer int
	gameOver  bool
	paused    bool
	tooSmall  bool

	flash       int // Ticks left for the line-clear notice
	lastCleared int
}

// New creates a game that loads its config on Reset.
func New() *Game {
	return &Game{newRand: seededRand}
}

// NewWithConfig creates a game that always uses cfg.
func NewWithConfig(cfg config.BlocksConfig) *Game {
	g := New()
	g.override = &cfg
	return g
}

func seededRand(seed int64) blocks.Rand {
	return rand.New(rand.NewSource(seed))
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset starts a new round with a fresh field and run ID.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.logger = pkgLogger.With("game", ID)
	g.cfg = g.loadConfig()
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	g.field = blocks.NewField(g.cfg.Field.Rows, g.cfg.Field.Cols,
		blocks.WithLogger(g.logger),
	)
	g.rng = g.newRand(runtime.Seed)
	g.runID = uuid.New()
	g.tick = 0
	g.fallTimer = 0
	g.gameOver = false
	g.paused = false
	g.flash = 0
	g.lastCleared = 0
	g.tooSmall = !g.fits(runtime.ScreenW, runtime.ScreenH)

	g.logger.Info("game started",
		"run", g.runID,
		"seed", runtime.Seed,
		"field", fmt.Sprintf("%dx%d", g.cfg.Field.Rows, g.cfg.Field.Cols),
	)

	var events []core.Event
	g.spawnNext(&events)
}

func (g *Game) loadConfig() config.BlocksConfig {
	if g.override != nil {
		return *g.override
	}

	cfg, err := config.LoadBlocks(configPath)
	if err != nil {
		g.logger.Warn("using default config", "err", err)
		cfg = config.DefaultBlocksConfig()
	}
	config.ApplyBlocksPreset(&cfg, difficultyPreset)
	return cfg
}

// Resize updates the screen dimensions without restarting the round.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.tooSmall = !g.fits(w, h)
}

// Step advances the game by one tick: input first, then gravity.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
		g.logger.Debug("pause toggled", "paused", g.paused)
	}
	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	if g.flash > 0 {
		g.flash--
	}

	var events []core.Event
	for _, a := range in.Actions {
		m, ok := movementFor(a)
		if !ok {
			continue
		}
		if m == blocks.MoveDown {
			g.fallTimer = 0
		}
		g.apply(m, &events)
		if g.gameOver {
			return core.StepResult{State: g.State(), Events: events}
		}
	}

	g.fallTimer++
	if g.fallTimer >= g.FallInterval() {
		g.fallTimer = 0
		g.apply(blocks.MoveDown, &events)
	}

	return core.StepResult{State: g.State(), Events: events}
}

func movementFor(a core.Action) (blocks.Movement, bool) {
	switch a {
	case core.ActionLeft:
		return blocks.MoveLeft, true
	case core.ActionRight:
		return blocks.MoveRight, true
	case core.ActionDown:
		return blocks.MoveDown, true
	case core.ActionRotate:
		return blocks.MoveRotate, true
	}
	return 0, false
}

// apply sends one movement to the field and, if the figure locked, reports
// cleared rows and spawns the next figure.
func (g *Game) apply(m blocks.Movement, events *[]core.Event) {
	res := g.field.HandleMove(m)
	if !res.Locked {
		return
	}

	*events = append(*events, core.Event{Kind: core.EventLock})
	if res.LinesCleared > 0 {
		*events = append(*events, core.Event{Kind: core.EventLinesCleared, Count: res.LinesCleared})
		g.lastCleared = res.LinesCleared
		g.flash = flashTicks
		g.logger.Info("lines cleared", "count", res.LinesCleared, "score", g.field.Score())
	}
	g.spawnNext(events)
}

// spawnNext places a new random figure, or ends the game when the top row
// is taken or the spawn position collides.
func (g *Game) spawnNext(events *[]core.Event) {
	if g.gameOver {
		return
	}

	if !g.field.HasSpaceForNewFigure() {
		g.endGame(events, nil)
		return
	}

	fig := blocks.CreateRandomFigure(g.rng)
	if err := g.field.SpawnFigure(fig); err != nil {
		if errors.Is(err, blocks.ErrGameOver) {
			g.endGame(events, err)
			return
		}
		// Only ErrGameOver is possible today; treat anything else the same.
		g.logger.Error("unexpected spawn error", "err", err)
		g.endGame(events, err)
		return
	}
	*events = append(*events, core.Event{Kind: core.EventSpawn})
}

func (g *Game) endGame(events *[]core.Event, cause error) {
	g.gameOver = true
	*events = append(*events, core.Event{Kind: core.EventGameOver})

	kv := []any{"run", g.runID, "score", g.field.Score(), "lines", g.field.Lines(), "ticks", g.tick}
	if cause != nil {
		kv = append(kv, "cause", cause)
	}
	g.logger.Info("game over", kv...)
}

// FallInterval returns the current number of ticks between automatic drops.
func (g *Game) FallInterval() int {
	return g.difficulty.FallInterval(g.cfg.Gravity.FallEvery, g.cfg.Gravity.MinFallEvery, g.field.Score(), int(g.tick))
}

// RunID identifies the current round; it changes on every Reset.
func (g *Game) RunID() uuid.UUID {
	return g.runID
}

// Field exposes the underlying field for read-only inspection.
func (g *Game) Field() *blocks.Field {
	return g.field
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.field == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.field.Score(),
		Lines:    g.field.Lines(),
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register(ID, "Falling blocks: fill rows to clear them", func() registry.Game {
		return New()
	})
}
