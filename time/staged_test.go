package time

import (
	"context"
	"math/rand"
	"testing"

	"github.com/hupe1980/mesa/agent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStagedActivation_Validation(t *testing.T) {
	_, err := NewStagedActivation(nil)
	assert.Error(t, err)

	_, err = NewStagedActivation([]string{"move"}, func(o *StagedOptions) { o.Shuffle = true })
	assert.Error(t, err, "shuffle without RNG must fail")

	s, err := NewStagedActivation([]string{"move", "eat"})
	require.NoError(t, err)
	assert.Equal(t, []string{"move", "eat"}, s.Stages())
}

func TestStagedActivation_StageOrder(t *testing.T) {
	s, err := NewStagedActivation([]string{"move", "eat"})
	require.NoError(t, err)

	a1 := agent.NewMock(1)
	a2 := agent.NewMock(2)
	require.NoError(t, s.Add(a1))
	require.NoError(t, s.Add(a2))

	require.NoError(t, s.Step(context.Background()))

	// Every agent ran both stages, first stage across all agents first.
	assert.Equal(t, []string{"move", "eat"}, a1.Stages())
	assert.Equal(t, []string{"move", "eat"}, a2.Stages())
	assert.Equal(t, 1, s.Steps())
	assert.InDelta(t, 1.0, s.Time(), 1e-9)
}

func TestStagedActivation_FractionalClock(t *testing.T) {
	s, err := NewStagedActivation([]string{"a", "b", "c"})
	require.NoError(t, err)
	require.NoError(t, s.Add(agent.NewMock(1)))

	require.NoError(t, s.Step(context.Background()))
	require.NoError(t, s.Step(context.Background()))

	assert.Equal(t, 2, s.Steps())
	assert.InDelta(t, 2.0, s.Time(), 1e-9)
}

func TestStagedActivation_RequiresStagedAgents(t *testing.T) {
	s, err := NewStagedActivation([]string{"move"})
	require.NoError(t, err)

	mu, log := newOrderLog()
	require.NoError(t, s.Add(&orderAgent{id: 1, mu: mu, log: log})) // not a StagedAgent

	err = s.Step(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "staged activation")
}

func TestStagedActivation_ShuffleReproducible(t *testing.T) {
	run := func(seed int64) []string {
		s, err := NewStagedActivation([]string{"move"}, func(o *StagedOptions) {
			o.Shuffle = true
			o.RNG = rand.New(rand.NewSource(seed)) //nolint:gosec
		})
		require.NoError(t, err)

		agents := make([]*agent.Mock, 8)
		for i := range agents {
			agents[i] = agent.NewMock(i)
			require.NoError(t, s.Add(agents[i]))
		}
		require.NoError(t, s.Step(context.Background()))

		out := make([]string, 0, len(agents))
		for _, a := range agents {
			out = append(out, a.Stages()...)
		}
		return out
	}

	assert.Equal(t, run(7), run(7))
}
