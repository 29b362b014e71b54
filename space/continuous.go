package space

import (
	"fmt"
	"math"
	"sync"

	"github.com/hupe1980/mesa/core"
)

// Point is a position in continuous 2D space.
type Point struct {
	X float64
	Y float64
}

// String returns the point in (x, y) form.
func (p Point) String() string { return fmt.Sprintf("(%g, %g)", p.X, p.Y) }

// ContinuousOptions holds configuration overrides passed to NewContinuousSpace().
type ContinuousOptions struct {
	// XMin and YMin move the lower-left corner away from the origin.
	XMin float64
	YMin float64
}

// ContinuousSpace tracks agents at float64 positions inside a rectangle.
// With torus enabled positions wrap around both edges and distances are
// measured the short way around.
type ContinuousSpace struct {
	xMin, xMax float64
	yMin, yMax float64
	torus      bool

	mu        sync.RWMutex
	order     []int // insertion order, keeps queries deterministic
	agents    map[int]core.Agent
	positions map[int]Point
}

// NewContinuousSpace constructs an empty continuous space spanning
// [XMin, xMax) x [YMin, yMax).
func NewContinuousSpace(xMax, yMax float64, torus bool, optFns ...func(o *ContinuousOptions)) (*ContinuousSpace, error) {
	opts := ContinuousOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}

	if xMax <= opts.XMin || yMax <= opts.YMin {
		return nil, fmt.Errorf("space: invalid extent [%g, %g) x [%g, %g)", opts.XMin, xMax, opts.YMin, yMax)
	}

	return &ContinuousSpace{
		xMin:      opts.XMin,
		xMax:      xMax,
		yMin:      opts.YMin,
		yMax:      yMax,
		torus:     torus,
		agents:    make(map[int]core.Agent),
		positions: make(map[int]Point),
	}, nil
}

// PlaceAgent puts an agent at a position. The agent must not already be on
// the space.
func (s *ContinuousSpace) PlaceAgent(a core.Agent, p Point) error {
	p, err := s.adjust(p)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.positions[a.UniqueID()]; ok {
		return fmt.Errorf("%w: agent %d", ErrAlreadyPlaced, a.UniqueID())
	}

	s.order = append(s.order, a.UniqueID())
	s.agents[a.UniqueID()] = a
	s.positions[a.UniqueID()] = p

	return nil
}

// MoveAgent relocates a placed agent.
func (s *ContinuousSpace) MoveAgent(a core.Agent, p Point) error {
	p, err := s.adjust(p)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.positions[a.UniqueID()]; !ok {
		return fmt.Errorf("%w: agent %d", ErrAgentNotPlaced, a.UniqueID())
	}
	s.positions[a.UniqueID()] = p

	return nil
}

// RemoveAgent takes an agent off the space.
func (s *ContinuousSpace) RemoveAgent(a core.Agent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.positions[a.UniqueID()]; !ok {
		return fmt.Errorf("%w: agent %d", ErrAgentNotPlaced, a.UniqueID())
	}
	for i, id := range s.order {
		if id == a.UniqueID() {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	delete(s.agents, a.UniqueID())
	delete(s.positions, a.UniqueID())

	return nil
}

// PositionOf returns the agent's current position.
func (s *ContinuousSpace) PositionOf(a core.Agent) (Point, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.positions[a.UniqueID()]
	return p, ok
}

// NeighborsWithin returns the agents within radius of center (Euclidean,
// torus-aware) in placement order, so identical queries return identical
// slices. With includeCenter false, agents exactly at center are excluded.
func (s *ContinuousSpace) NeighborsWithin(center Point, radius float64, includeCenter bool) ([]core.Agent, error) {
	center, err := s.adjust(center)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]core.Agent, 0)
	for _, id := range s.order {
		d := s.distance(center, s.positions[id])
		if d > radius {
			continue
		}
		if d == 0 && !includeCenter {
			continue
		}
		out = append(out, s.agents[id])
	}
	return out, nil
}

// Distance returns the torus-aware Euclidean distance between two points.
func (s *ContinuousSpace) Distance(p, q Point) float64 {
	return s.distance(p, q)
}

// Heading returns the displacement vector from p to q, taking the short way
// around on a torus.
func (s *ContinuousSpace) Heading(p, q Point) Point {
	dx := q.X - p.X
	dy := q.Y - p.Y
	if s.torus {
		dx = shortest(dx, s.xMax-s.xMin)
		dy = shortest(dy, s.yMax-s.yMin)
	}
	return Point{X: dx, Y: dy}
}

func (s *ContinuousSpace) distance(p, q Point) float64 {
	h := s.Heading(p, q)
	return math.Hypot(h.X, h.Y)
}

// adjust normalizes a position: wraps on a torus, bounds-checks otherwise.
func (s *ContinuousSpace) adjust(p Point) (Point, error) {
	if s.torus {
		p.X = s.xMin + fmod(p.X-s.xMin, s.xMax-s.xMin)
		p.Y = s.yMin + fmod(p.Y-s.yMin, s.yMax-s.yMin)
		return p, nil
	}
	if p.X < s.xMin || p.X >= s.xMax || p.Y < s.yMin || p.Y >= s.yMax {
		return Point{}, fmt.Errorf("%w: %s", ErrOutOfBounds, p)
	}
	return p, nil
}

// shortest folds a displacement onto the short way around a span.
func shortest(d, span float64) float64 {
	d = fmod(d, span)
	if d > span/2 {
		d -= span
	}
	return d
}

// fmod is a floating modulo that is always non-negative.
func fmod(a, n float64) float64 {
	m := math.Mod(a, n)
	if m < 0 {
		m += n
	}
	return m
}
