package time

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"github.com/hupe1980/mesa/core"
)

// RandomActivation activates every registered agent once per step in an
// order reshuffled from the supplied random source. Using the model RNG
// keeps runs reproducible under a fixed seed.
//
// This is the scheduler most models want: it removes artifacts caused by a
// fixed activation order.
type RandomActivation struct {
	BaseScheduler

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewRandomActivation constructs a scheduler shuffling with the given random
// source, typically model.RNG().
func NewRandomActivation(rng *rand.Rand) *RandomActivation {
	return &RandomActivation{
		BaseScheduler: BaseScheduler{agents: make(map[int]core.Agent)},
		rng:           rng,
	}
}

// Step activates all registered agents once in freshly shuffled order and
// advances the clock by one unit.
func (s *RandomActivation) Step(ctx context.Context) error {
	snap := s.snapshot()

	s.rngMu.Lock()
	s.rng.Shuffle(len(snap), func(i, j int) { snap[i], snap[j] = snap[j], snap[i] })
	s.rngMu.Unlock()

	for _, a := range snap {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if !s.active(a.UniqueID()) {
			continue
		}
		if err := a.Step(ctx); err != nil {
			return fmt.Errorf("agent %d step failed: %w", a.UniqueID(), err)
		}
	}

	s.advanceClock(1)

	return nil
}
