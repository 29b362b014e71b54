package model

import (
	"math/rand"
	"sync"
	"time"

	"github.com/hupe1980/mesa/core"
	"github.com/hupe1980/mesa/logging"
)

// Options holds configuration overrides passed to NewBase().
type Options struct {
	// Seed initializes the model RNG. Zero means seed from the wall clock.
	Seed int64
	// Schedule is the scheduler driving agent activation. May be attached
	// later via SetSchedule.
	Schedule core.Scheduler
	// Logger receives model lifecycle messages (defaults to NoOpLogger).
	Logger logging.Logger
}

// Base bundles the per-run state shared by all models: run identity, seeded
// randomness, the scheduler reference and the running flag. Embed it in
// concrete model implementations and supply a Step method to satisfy
// core.Steppable. All exported methods are goroutine-safe.
type Base struct {
	runID    string
	seed     int64
	rng      *rand.Rand
	mu       sync.RWMutex
	schedule core.Scheduler
	running  bool
	logger   logging.Logger
}

// NewBase constructs a Base with a fresh run id and a seeded random source.
// The model starts in the running state.
func NewBase(optFns ...func(o *Options)) *Base {
	opts := Options{
		Logger: logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Base{
		runID:    core.NewID(),
		seed:     seed,
		rng:      rand.New(rand.NewSource(seed)), //nolint:gosec // simulation randomness, not crypto
		schedule: opts.Schedule,
		running:  true,
		logger:   opts.Logger,
	}
}

// RunID returns the identifier assigned to this model run.
func (b *Base) RunID() string { return b.runID }

// Seed returns the seed the model RNG was initialized with.
func (b *Base) Seed() int64 { return b.seed }

// RNG returns the model's random source. The returned *rand.Rand is not
// safe for concurrent use; agents activated simultaneously must not share it
// without coordination.
func (b *Base) RNG() *rand.Rand { return b.rng }

// Schedule returns the attached scheduler, or nil if none is set.
func (b *Base) Schedule() core.Scheduler {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.schedule
}

// SetSchedule attaches the scheduler driving agent activation.
func (b *Base) SetSchedule(s core.Scheduler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.schedule = s
}

// Running reports whether the model wants to keep stepping.
func (b *Base) Running() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.running
}

// SetRunning flips the running flag. Models call SetRunning(false) from
// within Step when their halting condition is reached.
func (b *Base) SetRunning(running bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.running = running
}

// Logger returns the model's logger.
func (b *Base) Logger() logging.Logger { return b.logger }
