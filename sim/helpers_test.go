package sim

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// testRNG returns a seeded RNG for deterministic tests
func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

// newTestWorld builds a world without the opening wave. mutate may adjust the config.
func newTestWorld(t *testing.T, mutate func(*Config), opts ...Option) *World {
	t.Helper()
	cfg := DefaultConfig()
	cfg.OpeningWave = false
	if mutate != nil {
		mutate(&cfg)
	}
	opts = append([]Option{WithRand(testRNG()), WithLogger(zaptest.NewLogger(t))}, opts...)
	w := NewWorld(cfg, opts...)
	require.Equal(t, 0, w.store.Len())
	return w
}

// spawnAt adds one entity and returns it
func spawnAt(t *testing.T, s *Store, x, y float64, v Variant) *Entity {
	t.Helper()
	require.True(t, s.Spawn(Vec{X: x, Y: y}, v, 0))
	return s.At(s.Len() - 1)
}
