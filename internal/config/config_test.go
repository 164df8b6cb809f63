package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "consumption_data.json", cfg.DataPath)
	assert.Equal(t, float64(100), cfg.Threshold)
}

func TestLoad_MissingFileYieldsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "ecotrack.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ecotrack.yaml")
	require.NoError(t, os.WriteFile(path, []byte("threshold: 250\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, float64(250), cfg.Threshold)
	assert.Equal(t, "consumption_data.json", cfg.DataPath)
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ecotrack.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\n\t- not yaml"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ecotrack.yaml")
	cfg := &Config{DataPath: "household.json", Threshold: 75.5}
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
