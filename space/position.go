package space

import (
	"errors"
	"fmt"
)

// Coordinate addresses a grid cell. The origin is the lower-left corner;
// X grows to the right, Y grows upwards.
type Coordinate struct {
	X int
	Y int
}

// String returns the coordinate in (x, y) form.
func (c Coordinate) String() string { return fmt.Sprintf("(%d, %d)", c.X, c.Y) }

// Neighborhood selects the cell adjacency rule for grid queries.
type Neighborhood int

const (
	// Moore includes all eight surrounding cells (diagonals count).
	Moore Neighborhood = iota
	// VonNeumann includes only the four orthogonal cells.
	VonNeumann
)

var (
	// ErrOutOfBounds is returned when a coordinate lies outside a bounded space.
	ErrOutOfBounds = errors.New("space: coordinate out of bounds")
	// ErrCellOccupied is returned when placing onto a taken single-occupancy cell.
	ErrCellOccupied = errors.New("space: cell already occupied")
	// ErrAlreadyPlaced is returned when placing an agent that is already on the space.
	ErrAlreadyPlaced = errors.New("space: agent already placed")
	// ErrAgentNotPlaced is returned when moving or removing an unknown agent.
	ErrAgentNotPlaced = errors.New("space: agent not placed")
	// ErrNoEmptyCells is returned when random placement finds no free cell.
	ErrNoEmptyCells = errors.New("space: no empty cells")
)

// topology bundles the grid extent and wrap mode shared by Grid and MultiGrid.
type topology struct {
	width  int
	height int
	torus  bool
}

// adjust normalizes a coordinate: wraps on a torus, bounds-checks otherwise.
func (t topology) adjust(c Coordinate) (Coordinate, error) {
	if t.torus {
		c.X = wrap(c.X, t.width)
		c.Y = wrap(c.Y, t.height)
		return c, nil
	}
	if c.X < 0 || c.X >= t.width || c.Y < 0 || c.Y >= t.height {
		return Coordinate{}, fmt.Errorf("%w: %s", ErrOutOfBounds, c)
	}
	return c, nil
}

// wrap is a modulo that is always non-negative.
func wrap(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

// neighborhood computes the cells around center under the given adjacency
// rule and radius. On a torus the result is deduplicated, since a small grid
// can wrap a cell into view more than once.
func (t topology) neighborhood(center Coordinate, nb Neighborhood, includeCenter bool, radius int) ([]Coordinate, error) {
	center, err := t.adjust(center)
	if err != nil {
		return nil, err
	}

	seen := make(map[Coordinate]bool)
	out := make([]Coordinate, 0, (2*radius+1)*(2*radius+1))

	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx == 0 && dy == 0 && !includeCenter {
				continue
			}
			if nb == VonNeumann && abs(dx)+abs(dy) > radius {
				continue
			}
			c, err := t.adjust(Coordinate{X: center.X + dx, Y: center.Y + dy})
			if err != nil {
				continue // clipped at a bounded edge
			}
			if seen[c] {
				continue
			}
			seen[c] = true
			out = append(out, c)
		}
	}

	return out, nil
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
