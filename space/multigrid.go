package space

import (
	"fmt"
	"sync"

	"github.com/hupe1980/mesa/core"
)

// MultiGrid is a finite 2D grid allowing any number of agents per cell.
// It shares the torus/bounded topology semantics of Grid.
type MultiGrid struct {
	topology

	mu        sync.RWMutex
	cells     [][][]core.Agent // cells[x][y] lists occupants in placement order
	positions map[int]Coordinate
}

// NewMultiGrid constructs an empty multi occupancy grid of the given extent.
func NewMultiGrid(width, height int, torus bool) (*MultiGrid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("space: grid extent must be positive, got %dx%d", width, height)
	}

	cells := make([][][]core.Agent, width)
	for x := range cells {
		cells[x] = make([][]core.Agent, height)
	}

	return &MultiGrid{
		topology:  topology{width: width, height: height, torus: torus},
		cells:     cells,
		positions: make(map[int]Coordinate),
	}, nil
}

// Width returns the grid extent along X.
func (g *MultiGrid) Width() int { return g.width }

// Height returns the grid extent along Y.
func (g *MultiGrid) Height() int { return g.height }

// Torus reports whether coordinates wrap at the edges.
func (g *MultiGrid) Torus() bool { return g.torus }

// PlaceAgent puts an agent onto a cell. The agent must not already be on the
// grid; cells never fill up.
func (g *MultiGrid) PlaceAgent(a core.Agent, c Coordinate) error {
	c, err := g.adjust(c)
	if err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.positions[a.UniqueID()]; ok {
		return fmt.Errorf("%w: agent %d", ErrAlreadyPlaced, a.UniqueID())
	}

	g.cells[c.X][c.Y] = append(g.cells[c.X][c.Y], a)
	g.positions[a.UniqueID()] = c

	return nil
}

// MoveAgent relocates a placed agent to another cell.
func (g *MultiGrid) MoveAgent(a core.Agent, c Coordinate) error {
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

	g.cells[cur.X][cur.Y] = removeOccupant(g.cells[cur.X][cur.Y], a.UniqueID())
	g.cells[c.X][c.Y] = append(g.cells[c.X][c.Y], a)
	g.positions[a.UniqueID()] = c

	return nil
}

// RemoveAgent takes an agent off the grid.
func (g *MultiGrid) RemoveAgent(a core.Agent) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	c, ok := g.positions[a.UniqueID()]
	if !ok {
		return fmt.Errorf("%w: agent %d", ErrAgentNotPlaced, a.UniqueID())
	}

	g.cells[c.X][c.Y] = removeOccupant(g.cells[c.X][c.Y], a.UniqueID())
	delete(g.positions, a.UniqueID())

	return nil
}

// CellContents returns a copy of the occupants of a cell in placement order.
func (g *MultiGrid) CellContents(c Coordinate) []core.Agent {
	c, err := g.adjust(c)
	if err != nil {
		return nil
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	occupants := g.cells[c.X][c.Y]
	if len(occupants) == 0 {
		return nil
	}
	out := make([]core.Agent, len(occupants))
	copy(out, occupants)
	return out
}

// PositionOf returns the agent's current cell.
func (g *MultiGrid) PositionOf(a core.Agent) (Coordinate, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c, ok := g.positions[a.UniqueID()]
	return c, ok
}

// Neighborhood returns the cells around center under the given adjacency
// rule and radius.
func (g *MultiGrid) Neighborhood(center Coordinate, nb Neighborhood, includeCenter bool, radius int) ([]Coordinate, error) {
	return g.neighborhood(center, nb, includeCenter, radius)
}

// Neighbors returns the agents occupying the neighborhood of center.
func (g *MultiGrid) Neighbors(center Coordinate, nb Neighborhood, includeCenter bool, radius int) ([]core.Agent, error) {
	cells, err := g.neighborhood(center, nb, includeCenter, radius)
	if err != nil {
		return nil, err
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]core.Agent, 0, len(cells))
	for _, c := range cells {
		out = append(out, g.cells[c.X][c.Y]...)
	}
	return out, nil
}

// removeOccupant filters the agent with the given id out of a cell slice.
func removeOccupant(occupants []core.Agent, id int) []core.Agent {
	for i, a := range occupants {
		if a.UniqueID() == id {
			return append(occupants[:i], occupants[i+1:]...)
		}
	}
	return occupants
}
