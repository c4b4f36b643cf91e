package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadParsesSettings(t *testing.T) {
	path := writeConfig(t, `
simulation {
  hands   = 5000
  workers = 2
  seed    = 1234
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5000, cfg.Simulation.Hands)
	assert.Equal(t, 2, cfg.Simulation.Workers)
	assert.Equal(t, int64(1234), cfg.Simulation.Seed)
}

func TestLoadKeepsDefaultsForUnsetFields(t *testing.T) {
	path := writeConfig(t, `
simulation {
  seed = 7
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default().Simulation.Hands, cfg.Simulation.Hands)
	assert.Equal(t, int64(7), cfg.Simulation.Seed)
}

func TestLoadRejectsMalformedHCL(t *testing.T) {
	path := writeConfig(t, `simulation { hands = `)

	_, err := Load(path)
	require.Error(t, err)
}

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pokerhand.hcl")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}
