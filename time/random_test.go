package time

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomActivation_Reproducible(t *testing.T) {
	run := func(seed int64) []int {
		s := NewRandomActivation(rand.New(rand.NewSource(seed))) //nolint:gosec
		mu, log := newOrderLog()
		for id := 0; id < 10; id++ {
			require.NoError(t, s.Add(&orderAgent{id: id, mu: mu, log: log}))
		}
		require.NoError(t, s.Step(context.Background()))
		require.NoError(t, s.Step(context.Background()))
		return *log
	}

	assert.Equal(t, run(42), run(42))
	assert.NotEqual(t, run(42), run(43))
}

func TestRandomActivation_ActivatesEveryAgentOnce(t *testing.T) {
	s := NewRandomActivation(rand.New(rand.NewSource(1))) //nolint:gosec
	mu, log := newOrderLog()
	for id := 0; id < 25; id++ {
		require.NoError(t, s.Add(&orderAgent{id: id, mu: mu, log: log}))
	}

	require.NoError(t, s.Step(context.Background()))

	require.Len(t, *log, 25)
	seen := make(map[int]bool, 25)
	for _, id := range *log {
		assert.False(t, seen[id], "agent %d activated twice", id)
		seen[id] = true
	}
	assert.Equal(t, 1, s.Steps())
	assert.Equal(t, 1.0, s.Time())
}
