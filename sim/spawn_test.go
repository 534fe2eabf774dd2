package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestDirector(mutate func(*Config)) *Director {
	cfg := DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	return newDirector(&cfg, testRNG(), zap.NewNop())
}

func TestDifficultyCurve(t *testing.T) {
	tests := []struct {
		playTime float64
		level    int
		cap      int
		interval float64
	}{
		{0, 0, 15, 3.0},
		{29.9, 0, 15, 3.0},
		{30, 1, 20, 2.8},
		{95, 3, 30, 2.4},
		{300, 10, 65, 1.0},
		{1000, 33, 180, 0.3},
	}
	prev := 0
	for _, tt := range tests {
		level := Difficulty(tt.playTime, 30)
		assert.Equal(t, tt.level, level, "play time %v", tt.playTime)
		assert.GreaterOrEqual(t, level, prev, "difficulty must not decrease")
		prev = level

		assert.Equal(t, tt.cap, PopulationCap(level))
		assert.InDelta(t, tt.interval, SpawnInterval(level), 1e-9)
	}
	assert.Zero(t, Difficulty(-5, 30))
}

func TestDirectorWaitsForInterval(t *testing.T) {
	d := newTestDirector(nil)
	s := NewStore(100)
	player := Vec{X: 400, Y: 300}

	assert.False(t, d.Update(1, 1, s, player))
	assert.False(t, d.Update(1.5, 2.5, s, player))
	assert.InDelta(t, 2.5, d.Timer(), 1e-9)

	require.True(t, d.Update(1, 3.5, s, player))
	assert.Zero(t, d.Timer(), "timer resets on spawn")
	assert.Equal(t, 1, d.Spawned())
	require.Equal(t, 1, s.Len())

	e := s.At(0)
	assert.Greater(t, e.Box.Pos().Sub(player).Len(), 150.0)
	assert.LessOrEqual(t, e.Box.X, 750.0)
	assert.LessOrEqual(t, e.Box.Y, 550.0)
	assert.Contains(t, []Variant{Grunt, Elite}, e.Variant)
}

func TestDirectorRespectsPopulationCap(t *testing.T) {
	d := newTestDirector(nil)
	s := NewStore(100)
	for i := 0; i < 15; i++ {
		spawnAt(t, s, 0, 0, Grunt)
	}

	assert.False(t, d.Update(10, 10, s, Vec{}))
	assert.InDelta(t, 10, d.Timer(), 1e-9, "timer keeps accumulating while capped")

	// Exploding entities do not count toward the cap
	s.At(0).explode(0.3)
	assert.True(t, d.Update(0, 10, s, Vec{}))
	assert.Equal(t, 16, s.Len())
}

func TestDirectorRespectsStoreCapacity(t *testing.T) {
	d := newTestDirector(nil)
	s := NewStore(1)
	spawnAt(t, s, 0, 0, Grunt)

	assert.False(t, d.Update(5, 5, s, Vec{}))
	assert.Equal(t, 1, s.Len())
}

func TestDirectorPlacementFallback(t *testing.T) {
	// No edge position can ever be far enough away
	d := newTestDirector(func(c *Config) { c.SpawnMinDistance = 1e6 })
	for i := 0; i < 200; i++ {
		pos := d.place(Vec{X: 400, Y: 300})
		assert.GreaterOrEqual(t, pos.X, 50.0)
		assert.Less(t, pos.X, 750.0)
		assert.GreaterOrEqual(t, pos.Y, 50.0)
		assert.Less(t, pos.Y, 550.0)
	}
}

func TestDirectorEdgePlacement(t *testing.T) {
	d := newTestDirector(nil)
	for i := 0; i < 200; i++ {
		pos := d.place(Vec{X: 400, Y: 300})
		onEdge := pos.Y == 20 || pos.X == 750 || pos.Y == 550 || pos.X == 20
		assert.True(t, onEdge, "position %v is not on an edge", pos)
	}
}

func TestDirectorPlacementClampsToField(t *testing.T) {
	d := newTestDirector(func(c *Config) {
		c.FieldWidth = 400
		c.FieldHeight = 300
	})
	for i := 0; i < 200; i++ {
		pos := d.place(Vec{X: 200, Y: 150})
		assert.LessOrEqual(t, pos.X, 350.0)
		assert.LessOrEqual(t, pos.Y, 250.0)
	}
}

func TestPickVariant(t *testing.T) {
	d := newTestDirector(nil)

	counts := map[Variant]int{}
	for i := 0; i < 1000; i++ {
		counts[d.pickVariant(10)]++
	}
	assert.Zero(t, counts[Boss], "no bosses before the unlock time")
	assert.Zero(t, counts[Minion])
	assert.InDelta(t, 333, counts[Elite], 80)

	counts = map[Variant]int{}
	for i := 0; i < 2000; i++ {
		counts[d.pickVariant(301)]++
	}
	assert.Positive(t, counts[Boss])
	assert.Less(t, counts[Boss], 250)
}
