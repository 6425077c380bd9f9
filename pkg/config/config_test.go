package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "C", cfg.Source)
	assert.Equal(t, "D", cfg.Target)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jianpu.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
target: G
reportUnrecognized: true
keyAliases:
  H: B
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "G", cfg.Target)
	assert.Equal(t, "C", cfg.Source)
	assert.Equal(t, "output", cfg.Output)
	assert.True(t, cfg.ReportUnrecognized)
	assert.Equal(t, "B", cfg.KeyAliases.Resolve("H"))
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "reading config")

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tempo: 120\n"), 0644))
	_, err = Load(path)
	assert.ErrorContains(t, err, "parsing config")
}
