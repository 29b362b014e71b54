package batch

import (
	"context"
	"testing"

	"github.com/hupe1980/mesa/model"
	"github.com/hupe1980/mesa/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sweepModel counts steps and stops after stopAfter steps.
type sweepModel struct {
	*model.Base
	stopAfter int
	steps     int
}

func (m *sweepModel) Step(_ context.Context) error {
	m.steps++
	if m.steps >= m.stopAfter {
		m.SetRunning(false)
	}
	return nil
}

func sweepFactory(params map[string]any) (runner.Model, error) {
	return &sweepModel{
		Base:      model.NewBase(func(o *model.Options) { o.Seed = 1 }),
		stopAfter: params["stop_after"].(int),
	}, nil
}

func TestRunner_SweepOrderAndValues(t *testing.T) {
	cfg := &Config{
		Parameters: map[string][]any{
			"stop_after": {1, 2, 3},
		},
		Iterations:  2,
		MaxSteps:    10,
		Concurrency: 2,
	}

	b := New(sweepFactory, cfg, func(o *Options) {
		o.Reporters = map[string]Reporter{
			"final_steps": func(m runner.Model) any { return m.(*sweepModel).steps },
		}
	})

	results, err := b.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 6)

	// Results are ordered by combination then iteration regardless of the
	// concurrent schedule.
	for i, want := range []int{1, 1, 2, 2, 3, 3} {
		assert.Equal(t, want, results[i].Params["stop_after"])
		assert.Equal(t, want, results[i].Steps)
		assert.Equal(t, want, results[i].Values["final_steps"])
		assert.Equal(t, i%2, results[i].Iteration)
		assert.NotEmpty(t, results[i].RunID)
	}
}

func TestRunner_MaxStepsBoundsRuns(t *testing.T) {
	cfg := &Config{
		Parameters: map[string][]any{"stop_after": {100}},
		Iterations: 1,
		MaxSteps:   5,
	}

	results, err := New(sweepFactory, cfg).Run(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 5, results[0].Steps)
}

func TestRunner_EmptyParameters(t *testing.T) {
	factory := func(map[string]any) (runner.Model, error) {
		return &sweepModel{
			Base:      model.NewBase(func(o *model.Options) { o.Seed = 1 }),
			stopAfter: 2,
		}, nil
	}

	// No parameters means exactly one run per iteration.
	results, err := New(factory, nil).Run(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 2, results[0].Steps)
	assert.Empty(t, results[0].Params)
}

func TestRunner_FactoryError(t *testing.T) {
	cfg := &Config{Iterations: 1, MaxSteps: 1}
	b := New(func(map[string]any) (runner.Model, error) {
		return nil, assert.AnError
	}, cfg)

	_, err := b.Run(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
}

func TestCartesian(t *testing.T) {
	combos := cartesian(map[string][]any{
		"a": {1, 2},
		"b": {"x"},
	})

	require.Len(t, combos, 2)
	assert.Equal(t, map[string]any{"a": 1, "b": "x"}, combos[0])
	assert.Equal(t, map[string]any{"a": 2, "b": "x"}, combos[1])

	assert.Equal(t, []map[string]any{{}}, cartesian(nil))
}
