package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vanguard.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeFile(t, `
[window]
title = "test"

[logging]
level = "debug"

[sim]
entity_capacity = 64
player_speed = 120.5
opening_wave = false
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Window.Title)
	assert.Equal(t, 800, cfg.Window.Width, "unset keys keep their defaults")
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 64, cfg.Sim.EntityCapacity)
	assert.Equal(t, 120.5, cfg.Sim.PlayerSpeed)
	assert.False(t, cfg.Sim.OpeningWave)
	assert.Equal(t, 30, cfg.Sim.PlayerShotCapacity)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"syntax", "[window\nwidth = 1", "parse config"},
		{"bad window", "[window]\nwidth = 0", "window size"},
		{"bad volume", "[sound]\nvolume = 200", "sound volume"},
		{"negative capacity", "[sim]\nentity_capacity = -1", "capacities"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestPath(t *testing.T) {
	t.Setenv(EnvPath, "")
	assert.Equal(t, DefaultPath, Path(""))

	t.Setenv(EnvPath, "/etc/vanguard.toml")
	assert.Equal(t, "/etc/vanguard.toml", Path(""))
	assert.Equal(t, "mine.toml", Path("mine.toml"))
}
