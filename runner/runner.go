package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/mesa/core"
	"github.com/hupe1980/mesa/datacollection"
	"github.com/hupe1980/mesa/logging"
)

// Model is what the runner drives: the core accessor surface plus a Step
// method. Any type embedding model.Base and implementing Step satisfies it.
type Model interface {
	core.Model
	core.Steppable
}

// Options holds configuration overrides passed to New().
type Options struct {
	// MaxSteps bounds the run. Zero means the run only ends when the model
	// stops itself or the context is cancelled.
	MaxSteps int
	// Collector, when set, is sampled after each step (see CollectEvery).
	Collector *datacollection.DataCollector
	// CollectEvery samples the collector every n-th step (default 1).
	CollectEvery int
	// Logger receives run lifecycle messages (defaults to NoOpLogger).
	Logger logging.Logger
}

// Result summarizes a completed run.
type Result struct {
	RunID    string
	Steps    int
	Duration time.Duration
}

// Runner sequences the steps of one model run. Public methods are safe for
// concurrent use, but a single Runner must only run once at a time.
type Runner struct {
	model        Model
	maxSteps     int
	collector    *datacollection.DataCollector
	collectEvery int
	logger       logging.Logger
}

// New constructs a Runner with optional overrides.
func New(m Model, optFns ...func(o *Options)) *Runner {
	opts := Options{
		CollectEvery: 1,
		Logger:       logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.CollectEvery < 1 {
		opts.CollectEvery = 1
	}

	return &Runner{
		model:        m,
		maxSteps:     opts.MaxSteps,
		collector:    opts.Collector,
		collectEvery: opts.CollectEvery,
		logger:       opts.Logger,
	}
}

// Run executes the step loop until the model stops, the step bound is hit or
// ctx is cancelled. The partial Result is returned alongside any error.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	runID := r.model.RunID()
	start := time.Now()

	r.logger.Info("Run started", "run_id", runID, "max_steps", r.maxSteps)

	steps := 0
	for r.model.Running() {
		if r.maxSteps > 0 && steps >= r.maxSteps {
			break
		}

		select {
		case <-ctx.Done():
			return r.finish(runID, steps, start, ctx.Err())
		default:
		}

		if err := r.model.Step(ctx); err != nil {
			return r.finish(runID, steps, start, fmt.Errorf("model step %d failed: %w", steps, err))
		}
		steps++

		if r.collector != nil && steps%r.collectEvery == 0 {
			r.collector.Collect(r.model)
		}
	}

	return r.finish(runID, steps, start, nil)
}

func (r *Runner) finish(runID string, steps int, start time.Time, err error) (Result, error) {
	res := Result{RunID: runID, Steps: steps, Duration: time.Since(start)}
	if err != nil {
		r.logger.Error("Run failed", "run_id", runID, "steps", steps, "duration", res.Duration, "error", err)
		return res, err
	}
	r.logger.Info("Run completed", "run_id", runID, "steps", steps, "duration", res.Duration)
	return res, nil
}
