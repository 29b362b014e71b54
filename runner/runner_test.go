package runner

import (
	"context"
	"testing"

	"github.com/hupe1980/mesa/datacollection"
	"github.com/hupe1980/mesa/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingModel stops itself after stopAfter steps (0 = never).
type countingModel struct {
	*model.Base
	steps     int
	stopAfter int
	stepErr   error
}

func newCountingModel(stopAfter int) *countingModel {
	return &countingModel{
		Base:      model.NewBase(func(o *model.Options) { o.Seed = 1 }),
		stopAfter: stopAfter,
	}
}

func (m *countingModel) Step(_ context.Context) error {
	if m.stepErr != nil {
		return m.stepErr
	}
	m.steps++
	if m.stopAfter > 0 && m.steps >= m.stopAfter {
		m.SetRunning(false)
	}
	return nil
}

func TestRunner_RunsUntilModelStops(t *testing.T) {
	m := newCountingModel(5)
	r := New(m)

	res, err := r.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 5, res.Steps)
	assert.Equal(t, m.RunID(), res.RunID)
	assert.False(t, m.Running())
}

func TestRunner_MaxStepsBound(t *testing.T) {
	m := newCountingModel(0) // never stops on its own
	r := New(m, func(o *Options) { o.MaxSteps = 3 })

	res, err := r.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, res.Steps)
	assert.True(t, m.Running())
}

func TestRunner_ContextCancellation(t *testing.T) {
	m := newCountingModel(0)
	r := New(m)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := r.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, res.Steps)
}

func TestRunner_StepErrorStopsRun(t *testing.T) {
	m := newCountingModel(0)
	m.stepErr = assert.AnError
	r := New(m, func(o *Options) { o.MaxSteps = 10 })

	res, err := r.Run(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 0, res.Steps)
}

func TestRunner_CollectsEverySecondStep(t *testing.T) {
	m := newCountingModel(6)

	dc := datacollection.New(func(o *datacollection.Options) {
		o.ModelReporters = map[string]datacollection.ModelReporter{
			"steps": func() any { return m.steps },
		}
	})

	r := New(m, func(o *Options) {
		o.Collector = dc
		o.CollectEvery = 2
	})

	_, err := r.Run(context.Background())
	require.NoError(t, err)

	series, err := dc.ModelSeries("steps")
	require.NoError(t, err)
	assert.Equal(t, []any{2, 4, 6}, series)
}
