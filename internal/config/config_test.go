package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultOutputDir, cfg.OutputDir)
	assert.Equal(t, []string{".py"}, cfg.Extensions)
	assert.Equal(t, 0, cfg.Workers)
	assert.True(t, cfg.Output.Color)
	assert.Equal(t, 80, cfg.Output.Width)
	assert.Contains(t, cfg.ExcludeDirs, "__pycache__")
	assert.Contains(t, cfg.ExcludeDirs, ".git")
	assert.Contains(t, cfg.ExcludeDirs, "venv")
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := "output_dir: build/reports\nworkers: 4\noutput:\n  color: false\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "build/reports", cfg.OutputDir)
	assert.Equal(t, 4, cfg.Workers)
	assert.False(t, cfg.Output.Color)
	// Unset keys keep their defaults.
	assert.Equal(t, []string{".py"}, cfg.Extensions)
	assert.Equal(t, 80, cfg.Output.Width)
}

func TestLoad_MissingFileNotAnError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.NoError(t, err)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "reports"), expandPath("~/reports"))
	assert.Equal(t, "/abs/path", expandPath("/abs/path"))
	assert.Equal(t, "relative/path", expandPath("relative/path"))
}
