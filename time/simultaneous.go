package time

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/mesa/core"
)

// SimultaneousOptions holds configuration overrides passed to
// NewSimultaneousActivation().
type SimultaneousOptions struct {
	// Limit bounds the number of agents stepping concurrently.
	// Zero means no bound.
	Limit int
}

// SimultaneousActivation steps all agents "at once": the step phase runs
// concurrently and must only compute each agent's next state, then the
// advance phase applies the computed state sequentially for every agent that
// implements core.Advancer.
//
// Because the step phase is concurrent, agents must not mutate shared model
// state during Step; that is what Advance is for. Agents also must not share
// the model RNG during Step without their own coordination.
type SimultaneousActivation struct {
	BaseScheduler

	limit int
}

// NewSimultaneousActivation constructs a two-phase concurrent scheduler.
func NewSimultaneousActivation(optFns ...func(o *SimultaneousOptions)) *SimultaneousActivation {
	opts := SimultaneousOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}

	return &SimultaneousActivation{
		BaseScheduler: BaseScheduler{agents: make(map[int]core.Agent)},
		limit:         opts.Limit,
	}
}

// Step runs the concurrent step phase followed by the sequential advance
// phase and advances the clock by one unit. The first agent error cancels
// the remaining step phase and aborts the step.
func (s *SimultaneousActivation) Step(ctx context.Context) error {
	snap := s.snapshot()

	g, gctx := errgroup.WithContext(ctx)
	if s.limit > 0 {
		g.SetLimit(s.limit)
	}

	for _, a := range snap {
		a := a
		g.Go(func() error {
			if err := a.Step(gctx); err != nil {
				return fmt.Errorf("agent %d step failed: %w", a.UniqueID(), err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	for _, a := range snap {
		adv, ok := a.(core.Advancer)
		if !ok {
			continue
		}
		if !s.active(a.UniqueID()) {
			continue
		}
		if err := adv.Advance(ctx); err != nil {
			return fmt.Errorf("agent %d advance failed: %w", a.UniqueID(), err)
		}
	}

	s.advanceClock(1)

	return nil
}
