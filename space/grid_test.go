package space

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/hupe1980/mesa/agent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid_Validation(t *testing.T) {
	_, err := NewGrid(0, 10, false)
	assert.Error(t, err)

	g, err := NewGrid(5, 4, true)
	require.NoError(t, err)
	assert.Equal(t, 5, g.Width())
	assert.Equal(t, 4, g.Height())
	assert.True(t, g.Torus())
}

func TestGrid_PlaceAndOccupancy(t *testing.T) {
	g, err := NewGrid(3, 3, false)
	require.NoError(t, err)

	a1 := agent.NewMock(1)
	a2 := agent.NewMock(2)

	require.NoError(t, g.PlaceAgent(a1, Coordinate{X: 1, Y: 1}))

	// Same cell is taken.
	err = g.PlaceAgent(a2, Coordinate{X: 1, Y: 1})
	assert.ErrorIs(t, err, ErrCellOccupied)

	// Same agent twice is rejected.
	err = g.PlaceAgent(a1, Coordinate{X: 0, Y: 0})
	assert.ErrorIs(t, err, ErrAlreadyPlaced)

	got, ok := g.AgentAt(Coordinate{X: 1, Y: 1})
	require.True(t, ok)
	assert.Equal(t, 1, got.UniqueID())

	empty, err := g.IsCellEmpty(Coordinate{X: 0, Y: 0})
	require.NoError(t, err)
	assert.True(t, empty)
}

func TestGrid_BoundsAndTorus(t *testing.T) {
	bounded, err := NewGrid(3, 3, false)
	require.NoError(t, err)
	err = bounded.PlaceAgent(agent.NewMock(1), Coordinate{X: 3, Y: 0})
	assert.ErrorIs(t, err, ErrOutOfBounds)

	torus, err := NewGrid(3, 3, true)
	require.NoError(t, err)
	a := agent.NewMock(1)
	require.NoError(t, torus.PlaceAgent(a, Coordinate{X: -1, Y: 4}))

	pos, ok := torus.PositionOf(a)
	require.True(t, ok)
	assert.Equal(t, Coordinate{X: 2, Y: 1}, pos)
}

func TestGrid_MoveAndRemove(t *testing.T) {
	g, err := NewGrid(3, 3, false)
	require.NoError(t, err)

	a := agent.NewMock(1)
	require.NoError(t, g.PlaceAgent(a, Coordinate{X: 0, Y: 0}))
	require.NoError(t, g.MoveAgent(a, Coordinate{X: 2, Y: 2}))

	_, ok := g.AgentAt(Coordinate{X: 0, Y: 0})
	assert.False(t, ok)
	pos, ok := g.PositionOf(a)
	require.True(t, ok)
	assert.Equal(t, Coordinate{X: 2, Y: 2}, pos)

	// Moving onto the same cell is a no-op.
	require.NoError(t, g.MoveAgent(a, Coordinate{X: 2, Y: 2}))

	require.NoError(t, g.RemoveAgent(a))
	err = g.RemoveAgent(a)
	assert.ErrorIs(t, err, ErrAgentNotPlaced)

	err = g.MoveAgent(a, Coordinate{X: 0, Y: 0})
	assert.ErrorIs(t, err, ErrAgentNotPlaced)
}

func TestGrid_NeighborhoodMoore(t *testing.T) {
	g, err := NewGrid(5, 5, false)
	require.NoError(t, err)

	// Interior cell: full Moore ring of 8.
	cells, err := g.Neighborhood(Coordinate{X: 2, Y: 2}, Moore, false, 1)
	require.NoError(t, err)
	assert.Len(t, cells, 8)

	// Corner on a bounded grid is clipped to 3.
	cells, err = g.Neighborhood(Coordinate{X: 0, Y: 0}, Moore, false, 1)
	require.NoError(t, err)
	assert.Len(t, cells, 3)

	// Include center adds one.
	cells, err = g.Neighborhood(Coordinate{X: 2, Y: 2}, Moore, true, 1)
	require.NoError(t, err)
	assert.Len(t, cells, 9)
}

func TestGrid_NeighborhoodVonNeumann(t *testing.T) {
	g, err := NewGrid(5, 5, false)
	require.NoError(t, err)

	cells, err := g.Neighborhood(Coordinate{X: 2, Y: 2}, VonNeumann, false, 1)
	require.NoError(t, err)
	assert.Len(t, cells, 4)

	// Radius 2 diamond has 12 cells around the center.
	cells, err = g.Neighborhood(Coordinate{X: 2, Y: 2}, VonNeumann, false, 2)
	require.NoError(t, err)
	assert.Len(t, cells, 12)
}

func TestGrid_NeighborhoodTorusWrapsAndDedupes(t *testing.T) {
	g, err := NewGrid(3, 3, true)
	require.NoError(t, err)

	// Corner on a torus still sees the full ring of 8.
	cells, err := g.Neighborhood(Coordinate{X: 0, Y: 0}, Moore, false, 1)
	require.NoError(t, err)
	assert.Len(t, cells, 8)

	// Radius larger than the grid covers every cell exactly once.
	cells, err = g.Neighborhood(Coordinate{X: 0, Y: 0}, Moore, true, 5)
	require.NoError(t, err)
	assert.Len(t, cells, 9)
}

func TestGrid_Neighbors(t *testing.T) {
	g, err := NewGrid(5, 5, false)
	require.NoError(t, err)

	center := Coordinate{X: 2, Y: 2}
	require.NoError(t, g.PlaceAgent(agent.NewMock(1), Coordinate{X: 1, Y: 2}))
	require.NoError(t, g.PlaceAgent(agent.NewMock(2), Coordinate{X: 3, Y: 3}))
	require.NoError(t, g.PlaceAgent(agent.NewMock(3), Coordinate{X: 0, Y: 0})) // outside radius 1

	moore, err := g.Neighbors(center, Moore, false, 1)
	require.NoError(t, err)
	assert.Len(t, moore, 2)

	vn, err := g.Neighbors(center, VonNeumann, false, 1)
	require.NoError(t, err)
	assert.Len(t, vn, 1) // the diagonal neighbor drops out
}

func TestGrid_PlaceAtRandomEmpty(t *testing.T) {
	g, err := NewGrid(2, 2, false)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(1)) //nolint:gosec

	for i := 0; i < 4; i++ {
		_, err := g.PlaceAtRandomEmpty(rng, agent.NewMock(i))
		require.NoError(t, err)
	}
	assert.Empty(t, g.EmptyCells())

	_, err = g.PlaceAtRandomEmpty(rng, agent.NewMock(99))
	assert.ErrorIs(t, err, ErrNoEmptyCells)
}

func TestGrid_PlaceAtRandomEmpty_ConcurrentWriters(t *testing.T) {
	g, err := NewGrid(4, 4, false)
	require.NoError(t, err)

	// Selection and placement share one critical section, so concurrent
	// placements must exactly fill the grid without ErrCellOccupied.
	var wg sync.WaitGroup
	errs := make([]error, 16)
	for i := 0; i < 16; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			rng := rand.New(rand.NewSource(int64(i))) //nolint:gosec
			_, errs[i] = g.PlaceAtRandomEmpty(rng, agent.NewMock(i))
		}()
	}
	wg.Wait()

	for i, err := range errs {
		require.NoError(t, err, "agent %d", i)
	}
	assert.Empty(t, g.EmptyCells())
}
