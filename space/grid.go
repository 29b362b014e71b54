package space

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/hupe1980/mesa/core"
)

// Grid is a finite 2D grid with at most one agent per cell. With torus
// enabled, coordinates wrap around both edges; otherwise out-of-range
// coordinates are rejected.
type Grid struct {
	topology

	mu        sync.RWMutex
	cells     [][]core.Agent // cells[x][y], nil = empty
	positions map[int]Coordinate
}

// NewGrid constructs an empty grid of the given extent.
func NewGrid(width, height int, torus bool) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("space: grid extent must be positive, got %dx%d", width, height)
	}

	cells := make([][]core.Agent, width)
	for x := range cells {
		cells[x] = make([]core.Agent, height)
	}

	return &Grid{
		topology:  topology{width: width, height: height, torus: torus},
		cells:     cells,
		positions: make(map[int]Coordinate),
	}, nil
}

// Width returns the grid extent along X.
func (g *Grid) Width() int { return g.width }

// Height returns the grid extent along Y.
func (g *Grid) Height() int { return g.height }

// Torus reports whether coordinates wrap at the edges.
func (g *Grid) Torus() bool { return g.torus }

// PlaceAgent puts an agent onto an empty cell. The agent must not already be
// on the grid.
func (g *Grid) PlaceAgent(a core.Agent, c Coordinate) error {
	c, err := g.adjust(c)
	if err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.positions[a.UniqueID()]; ok {
		return fmt.Errorf("%w: agent %d", ErrAlreadyPlaced, a.UniqueID())
	}
	if g.cells[c.X][c.Y] != nil {
		return fmt.Errorf("%w: %s", ErrCellOccupied, c)
	}

	g.cells[c.X][c.Y] = a
	g.positions[a.UniqueID()] = c

	return nil
}

// MoveAgent relocates a placed agent to an empty cell. Moving onto the
// agent's own cell is a no-op.
func (g *Grid) MoveAgent(a core.Agent, c Coordinate) error {
	c, err := g.adjust(c)
	if err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	cur, ok := g.positions[a.UniqueID()]
	if !ok {
		return fmt.Errorf("%w: agent %d", ErrAgentNotPlaced, a.UniqueID())
	}
	if cur == c {
		return nil
	}
	if g.cells[c.X][c.Y] != nil {
		return fmt.Errorf("%w: %s", ErrCellOccupied, c)
	}

	g.cells[cur.X][cur.Y] = nil
	g.cells[c.X][c.Y] = a
	g.positions[a.UniqueID()] = c

	return nil
}

// RemoveAgent takes an agent off the grid.
func (g *Grid) RemoveAgent(a core.Agent) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	c, ok := g.positions[a.UniqueID()]
	if !ok {
		return fmt.Errorf("%w: agent %d", ErrAgentNotPlaced, a.UniqueID())
	}

	g.cells[c.X][c.Y] = nil
	delete(g.positions, a.UniqueID())

	return nil
}

// AgentAt returns the occupant of a cell, or false for an empty cell.
func (g *Grid) AgentAt(c Coordinate) (core.Agent, bool) {
	c, err := g.adjust(c)
	if err != nil {
		return nil, false
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	a := g.cells[c.X][c.Y]
	return a, a != nil
}

// CellContents returns the occupants of a cell (zero or one agent). The
// slice form keeps Grid and MultiGrid interchangeable for rendering.
func (g *Grid) CellContents(c Coordinate) []core.Agent {
	if a, ok := g.AgentAt(c); ok {
		return []core.Agent{a}
	}
	return nil
}

// PositionOf returns the agent's current cell.
func (g *Grid) PositionOf(a core.Agent) (Coordinate, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c, ok := g.positions[a.UniqueID()]
	return c, ok
}

// IsCellEmpty reports whether the cell has no occupant.
func (g *Grid) IsCellEmpty(c Coordinate) (bool, error) {
	c, err := g.adjust(c)
	if err != nil {
		return false, err
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.cells[c.X][c.Y] == nil, nil
}

// Neighborhood returns the cells around center under the given adjacency
// rule and radius.
func (g *Grid) Neighborhood(center Coordinate, nb Neighborhood, includeCenter bool, radius int) ([]Coordinate, error) {
	return g.neighborhood(center, nb, includeCenter, radius)
}

// Neighbors returns the agents occupying the neighborhood of center.
func (g *Grid) Neighbors(center Coordinate, nb Neighborhood, includeCenter bool, radius int) ([]core.Agent, error) {
	cells, err := g.neighborhood(center, nb, includeCenter, radius)
	if err != nil {
		return nil, err
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]core.Agent, 0, len(cells))
	for _, c := range cells {
		if a := g.cells[c.X][c.Y]; a != nil {
			out = append(out, a)
		}
	}
	return out, nil
}

// EmptyCells returns all unoccupied cells in column-major order.
func (g *Grid) EmptyCells() []Coordinate {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.emptyCellsLocked()
}

// emptyCellsLocked collects the unoccupied cells; callers hold g.mu.
func (g *Grid) emptyCellsLocked() []Coordinate {
	out := make([]Coordinate, 0)
	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			if g.cells[x][y] == nil {
				out = append(out, Coordinate{X: x, Y: y})
			}
		}
	}
	return out
}

// PlaceAtRandomEmpty puts the agent onto a uniformly chosen empty cell.
// Selection and placement happen in one critical section, so concurrent
// callers never race each other onto the same cell.
func (g *Grid) PlaceAtRandomEmpty(rng *rand.Rand, a core.Agent) (Coordinate, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.positions[a.UniqueID()]; ok {
		return Coordinate{}, fmt.Errorf("%w: agent %d", ErrAlreadyPlaced, a.UniqueID())
	}

	empty := g.emptyCellsLocked()
	if len(empty) == 0 {
		return Coordinate{}, ErrNoEmptyCells
	}

	c := empty[rng.Intn(len(empty))]
	g.cells[c.X][c.Y] = a
	g.positions[a.UniqueID()] = c

	return c, nil
}
