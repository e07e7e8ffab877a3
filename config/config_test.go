package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse("tutorial", nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseFlags(t *testing.T) {
	cfg, err := Parse("tutorial", []string{
		"-width", "800", "-height", "600",
		"-vsync=false", "-stats",
		"-texture", "fish.png",
	})
	require.NoError(t, err)
	assert.Equal(t, Config{
		Width:   800,
		Height:  600,
		VSync:   false,
		Texture: "fish.png",
		Stats:   true,
	}, cfg)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse("tutorial", []string{"-width", "zero"})
	assert.Error(t, err)

	_, err = Parse("tutorial", []string{"-height", "0"})
	assert.Error(t, err)

	_, err = Parse("tutorial", []string{"-unknown"})
	assert.Error(t, err)
}

func TestStartProfileDisabled(t *testing.T) {
	stop, err := Default().StartProfile()
	require.NoError(t, err)
	require.NotNil(t, stop)
	stop()
}

func TestStartProfile(t *testing.T) {
	cfg := Default()
	cfg.CPUProfile = filepath.Join(t.TempDir(), "cpu.prof")

	stop, err := cfg.StartProfile()
	require.NoError(t, err)
	stop()

	_, err = os.Stat(cfg.CPUProfile)
	assert.NoError(t, err)
}

func TestStartProfileBadPath(t *testing.T) {
	cfg := Default()
	cfg.CPUProfile = filepath.Join(t.TempDir(), "missing", "cpu.prof")

	stop, err := cfg.StartProfile()
	assert.Error(t, err)
	require.NotNil(t, stop)
}
