package batch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sweepYAML = `
parameters:
  agents: [10, 50]
  density: [0.6, 0.8]
iterations: 3
max_steps: 200
concurrency: 4
`

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(sweepYAML))
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Iterations)
	assert.Equal(t, 200, cfg.MaxSteps)
	assert.Equal(t, 4, cfg.Concurrency)
	assert.Len(t, cfg.Parameters["agents"], 2)
	assert.Len(t, cfg.Parameters["density"], 2)
}

func TestParseConfig_Invalid(t *testing.T) {
	_, err := ParseConfig([]byte("iterations: 0"))
	assert.Error(t, err)

	_, err = ParseConfig([]byte("{not yaml"))
	assert.Error(t, err)

	_, err = ParseConfig([]byte("iterations: 1\nparameters:\n  agents: []"))
	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sweep.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sweepYAML), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Iterations)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestDefaultConfig_Valid(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}
