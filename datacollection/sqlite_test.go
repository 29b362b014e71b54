package datacollection

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SaveAndLoadRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")

	store, err := NewStore(path)
	require.NoError(t, err)
	defer store.Close()

	m := newTestModel(t, 2)
	dc := New(func(o *Options) {
		o.ModelReporters = map[string]ModelReporter{
			"count": func() any { return float64(m.Schedule().Count()) },
		}
	})

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		require.NoError(t, m.Schedule().Step(ctx))
		dc.Collect(m)
	}

	require.NoError(t, store.SaveRun(ctx, m.RunID(), m.Seed(), dc))

	runs, err := store.Runs(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, m.RunID(), runs[0].RunID)
	assert.Equal(t, m.Seed(), runs[0].Seed)
	assert.Equal(t, 3, runs[0].Steps)

	history, err := store.ModelVarHistory(ctx, m.RunID(), "count")
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, 1, history[0].Step)
	assert.Equal(t, 2.0, history[0].Value) // JSON numbers decode as float64
	assert.Equal(t, 3, history[2].Step)
}

func TestStore_DuplicateRunIDFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")

	store, err := NewStore(path)
	require.NoError(t, err)
	defer store.Close()

	dc := New()
	ctx := context.Background()

	require.NoError(t, store.SaveRun(ctx, "run-1", 42, dc))
	err = store.SaveRun(ctx, "run-1", 42, dc)
	assert.Error(t, err)
}

func TestStore_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "runs.db")

	store, err := NewStore(path)
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, path, store.Path())
}
