package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockfield/arcade/internal/core"
)

type stubGame struct {
	id    string
	state core.GameState
}

func (g *stubGame) ID() string               { return g.id }
func (g *stubGame) Title() string            { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) { g.state = core.GameState{} }
func (g *stubGame) Step(core.InputFrame) core.StepResult {
	g.state.Score++
	return core.StepResult{State: g.state}
}
func (g *stubGame) Render(*core.Screen)   {}
func (g *stubGame) State() core.GameState { return g.state }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-b", "second", func() Game { return &stubGame{id: "stub-b"} })
	Register("stub-a", "first", func() Game { return &stubGame{id: "stub-a"} })
	t.Cleanup(func() {
		unregister("stub-a")
		unregister("stub-b")
	})

	assert.True(t, Exists("stub-a"))
	assert.False(t, Exists("missing"))

	list := List()
	require.Len(t, list, 2)
	assert.Equal(t, GameInfo{ID: "stub-a", Title: "Stub stub-a", Description: "first"}, list[0])
	assert.Equal(t, "stub-b", list[1].ID)

	g1, err := Create("stub-a")
	require.NoError(t, err)
	g2, err := Create("stub-a")
	require.NoError(t, err)

	g1.Step(core.NewInputFrame())
	assert.Equal(t, 1, g1.State().Score)
	assert.Zero(t, g2.State().Score, "every Create returns a fresh instance")
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("nope")
	assert.ErrorContains(t, err, `unknown game "nope"`)
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup", "", func() Game { return &stubGame{id: "dup"} })
	t.Cleanup(func() { unregister("dup") })

	assert.Panics(t, func() {
		Register("dup", "", func() Game { return &stubGame{id: "dup"} })
	})
}

func TestRegisterMismatchedIDPanics(t *testing.T) {
	assert.Panics(t, func() {
		Register("alias", "", func() Game { return &stubGame{id: "real"} })
	})
	assert.False(t, Exists("alias"))
}
