package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voidvanguard/sim"
)

func TestStoreRoundTrip(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "profile.yaml"))

	p, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, New(), p)

	p.Coins = 1234
	p.Upgrades = Upgrades{DamageLevel: 3, TripleShot: true}
	p.Volume = 96
	require.NoError(t, s.Save(p))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, p, got)
	assert.Equal(t, sim.Upgrades{DamageLevel: 3, TripleShot: true}, got.SimUpgrades())

	// No temp files are left behind
	entries, err := os.ReadDir(filepath.Dir(s.Path()))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestStoreLoadPartialAndInvalid(t *testing.T) {
	dir := t.TempDir()

	partial := filepath.Join(dir, "partial.yaml")
	require.NoError(t, os.WriteFile(partial, []byte("coins: -5\nvolume: 999\n"), 0o644))
	p, err := NewStore(partial).Load()
	require.NoError(t, err)
	assert.Zero(t, p.Coins)
	assert.Equal(t, MaxVolume, p.Volume)

	missingVolume := filepath.Join(dir, "old.yaml")
	require.NoError(t, os.WriteFile(missingVolume, []byte("coins: 40\n"), 0o644))
	p, err = NewStore(missingVolume).Load()
	require.NoError(t, err)
	assert.Equal(t, 40, p.Coins)
	assert.Equal(t, DefaultVolume, p.Volume)

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("coins: [1, 2"), 0o644))
	_, err = NewStore(broken).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse profile")
}

func TestStoreDefaultVolume(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "profile.yaml"))
	s.SetDefaultVolume(200)

	p, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, MaxVolume, p.Volume)

	s.SetDefaultVolume(40)
	p, err = s.Load()
	require.NoError(t, err)
	assert.Equal(t, 40, p.Volume)

	// A saved profile keeps its own volume
	p.Volume = 8
	require.NoError(t, s.Save(p))
	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, 8, got.Volume)
}
