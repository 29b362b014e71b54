package batch

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/mesa/logging"
	"github.com/hupe1980/mesa/runner"
)

// Factory builds a fresh model for one parameter combination. It is called
// once per run and must return an independent model instance.
type Factory func(params map[string]any) (runner.Model, error)

// Reporter samples one value from a finished model.
type Reporter func(m runner.Model) any

// Options holds configuration overrides passed to New().
type Options struct {
	// Reporters sample each model once after its run completes.
	Reporters map[string]Reporter
	// Logger receives sweep lifecycle messages (defaults to NoOpLogger).
	Logger logging.Logger
}

// RunResult is the outcome of one run within a sweep.
type RunResult struct {
	Params    map[string]any
	Iteration int
	RunID     string
	Steps     int
	Values    map[string]any
}

// Runner executes a parameter sweep.
type Runner struct {
	factory   Factory
	cfg       *Config
	reporters map[string]Reporter
	logger    logging.Logger
}

// New constructs a sweep runner. The config is validated on first Run.
func New(factory Factory, cfg *Config, optFns ...func(o *Options)) *Runner {
	opts := Options{
		Logger: logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if cfg == nil {
		cfg = DefaultConfig()
	}

	return &Runner{
		factory:   factory,
		cfg:       cfg,
		reporters: opts.Reporters,
		logger:    opts.Logger,
	}
}

// Run executes every parameter combination for the configured number of
// iterations. Results are ordered by combination, then iteration,
// independent of scheduling. The first run error cancels the remaining runs.
func (b *Runner) Run(ctx context.Context) ([]RunResult, error) {
	if err := b.cfg.Validate(); err != nil {
		return nil, err
	}

	combos := cartesian(b.cfg.Parameters)
	results := make([]RunResult, len(combos)*b.cfg.Iterations)

	b.logger.Info("Sweep started", "combinations", len(combos), "iterations", b.cfg.Iterations)

	g, gctx := errgroup.WithContext(ctx)
	if b.cfg.Concurrency > 0 {
		g.SetLimit(b.cfg.Concurrency)
	}

	for ci, combo := range combos {
		for it := 0; it < b.cfg.Iterations; it++ {
			idx := ci*b.cfg.Iterations + it
			combo, it := combo, it
			g.Go(func() error {
				res, err := b.runOne(gctx, combo, it)
				if err != nil {
					return err
				}
				results[idx] = res
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	b.logger.Info("Sweep completed", "runs", len(results))

	return results, nil
}

func (b *Runner) runOne(ctx context.Context, combo map[string]any, iteration int) (RunResult, error) {
	params := cloneParams(combo)

	m, err := b.factory(params)
	if err != nil {
		return RunResult{}, fmt.Errorf("batch: build model for %v: %w", params, err)
	}

	r := runner.New(m, func(o *runner.Options) {
		o.MaxSteps = b.cfg.MaxSteps
		o.Logger = b.logger
	})

	res, err := r.Run(ctx)
	if err != nil {
		return RunResult{}, fmt.Errorf("batch: run for %v: %w", params, err)
	}

	values := make(map[string]any, len(b.reporters))
	for name, rep := range b.reporters {
		values[name] = rep(m)
	}

	return RunResult{
		Params:    params,
		Iteration: iteration,
		RunID:     res.RunID,
		Steps:     res.Steps,
		Values:    values,
	}, nil
}

// cartesian expands the parameter lists into every combination. Parameter
// names are visited in sorted order so the result order is deterministic.
func cartesian(params map[string][]any) []map[string]any {
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	combos := []map[string]any{{}}
	for _, name := range names {
		next := make([]map[string]any, 0, len(combos)*len(params[name]))
		for _, c := range combos {
			for _, v := range params[name] {
				nc := cloneParams(c)
				nc[name] = v
				next = append(next, nc)
			}
		}
		combos = next
	}
	return combos
}

func cloneParams(params map[string]any) map[string]any {
	out := make(map[string]any, len(params))
	for k, v := range params {
		out[k] = v
	}
	return out
}
