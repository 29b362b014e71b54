package time

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"github.com/hupe1980/mesa/core"
)

// StagedOptions holds configuration overrides passed to NewStagedActivation().
type StagedOptions struct {
	// Shuffle reshuffles the agent order before every stage.
	Shuffle bool
	// RNG supplies the shuffle randomness; required when Shuffle is true.
	RNG *rand.Rand
}

// StagedActivation splits each step into a fixed list of named stages. Every
// stage runs across all agents before the next stage begins, so agents can
// separate, for example, a "sense" phase from an "act" phase. The clock
// advances by 1/len(stages) after each stage; Steps increments once per full
// step.
//
// All registered agents must implement core.StagedAgent.
type StagedActivation struct {
	BaseScheduler

	stages  []string
	shuffle bool

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewStagedActivation constructs a scheduler executing the given stages in
// order each step. At least one stage is required.
func NewStagedActivation(stages []string, optFns ...func(o *StagedOptions)) (*StagedActivation, error) {
	if len(stages) == 0 {
		return nil, fmt.Errorf("staged activation requires at least one stage")
	}

	opts := StagedOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Shuffle && opts.RNG == nil {
		return nil, fmt.Errorf("staged activation with shuffle requires a random source")
	}

	return &StagedActivation{
		BaseScheduler: BaseScheduler{agents: make(map[int]core.Agent)},
		stages:        append([]string(nil), stages...),
		shuffle:       opts.Shuffle,
		rng:           opts.RNG,
	}, nil
}

// Stages returns a copy of the configured stage names.
func (s *StagedActivation) Stages() []string {
	return append([]string(nil), s.stages...)
}

// Step runs every configured stage across all registered agents. An agent
// that does not implement core.StagedAgent fails the step.
func (s *StagedActivation) Step(ctx context.Context) error {
	dt := 1 / float64(len(s.stages))

	for _, stage := range s.stages {
		snap := s.snapshot()
		if s.shuffle {
			s.rngMu.Lock()
			s.rng.Shuffle(len(snap), func(i, j int) { snap[i], snap[j] = snap[j], snap[i] })
			s.rngMu.Unlock()
		}

		for _, a := range snap {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			if !s.active(a.UniqueID()) {
				continue
			}
			sa, ok := a.(core.StagedAgent)
			if !ok {
				return fmt.Errorf("agent %d does not implement staged activation", a.UniqueID())
			}
			if err := sa.StageStep(ctx, stage); err != nil {
				return fmt.Errorf("agent %d stage %q failed: %w", a.UniqueID(), stage, err)
			}
		}

		s.addTime(dt)
	}

	s.completeStep()

	return nil
}
