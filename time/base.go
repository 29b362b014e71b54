package time

import (
	"context"
	"fmt"
	"sync"

	"github.com/hupe1980/mesa/core"
)

// BaseScheduler activates agents in insertion order. One Step call activates
// every registered agent exactly once and advances the simulation clock by
// one unit. All exported methods are goroutine-safe.
type BaseScheduler struct {
	mu     sync.Mutex
	order  []int
	agents map[int]core.Agent
	steps  int
	time   float64
}

// NewBaseScheduler constructs an empty insertion-order scheduler.
func NewBaseScheduler() *BaseScheduler {
	return &BaseScheduler{agents: make(map[int]core.Agent)}
}

// Add registers an agent for activation. Adding an agent whose unique id is
// already registered is an error.
func (s *BaseScheduler) Add(a core.Agent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := a.UniqueID()
	if _, ok := s.agents[id]; ok {
		return fmt.Errorf("agent %d is already scheduled", id)
	}
	s.order = append(s.order, id)
	s.agents[id] = a

	return nil
}

// Remove deregisters the agent with the given unique id. Removing an unknown
// id is a no-op.
func (s *BaseScheduler) Remove(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.agents[id]; !ok {
		return
	}
	delete(s.agents, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Step activates all registered agents in insertion order and advances the
// clock by one unit. The first agent error aborts the step.
func (s *BaseScheduler) Step(ctx context.Context) error {
	for _, a := range s.snapshot() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if !s.active(a.UniqueID()) {
			continue // removed by a peer earlier in this step
		}
		if err := a.Step(ctx); err != nil {
			return fmt.Errorf("agent %d step failed: %w", a.UniqueID(), err)
		}
	}

	s.advanceClock(1)

	return nil
}

// Steps returns the number of completed Step calls.
func (s *BaseScheduler) Steps() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.steps
}

// Time returns the simulation clock.
func (s *BaseScheduler) Time() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.time
}

// Agents returns a snapshot of the registered agents in insertion order.
func (s *BaseScheduler) Agents() []core.Agent {
	return s.snapshot()
}

// Count returns the number of registered agents.
func (s *BaseScheduler) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.agents)
}

// snapshot copies the current membership in insertion order so a step can
// iterate without holding the lock.
func (s *BaseScheduler) snapshot() []core.Agent {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]core.Agent, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.agents[id])
	}
	return out
}

// active reports whether the id is still registered.
func (s *BaseScheduler) active(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.agents[id]
	return ok
}

// addTime advances the clock without completing a step (used by staged
// activation between stages).
func (s *BaseScheduler) addTime(dt float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.time += dt
}

// advanceClock records a completed step and moves the clock forward.
func (s *BaseScheduler) advanceClock(dt float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.steps++
	s.time += dt
}

// completeStep records a completed step without moving the clock (the stages
// already did).
func (s *BaseScheduler) completeStep() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.steps++
}
