package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsFor(t *testing.T) {
	tests := []struct {
		name       string
		variant    Variant
		difficulty int
		want       Stats
	}{
		{"grunt d0", Grunt, 0, Stats{Width: 40, Height: 40, Speed: 150, Health: 30}},
		{"grunt d3", Grunt, 3, Stats{Width: 40, Height: 40, Speed: 180, Health: 60}},
		{"grunt speed capped", Grunt, 20, Stats{Width: 40, Height: 40, Speed: 300, Health: 230}},
		{"elite d1", Elite, 1, Stats{Width: 40, Height: 40, Speed: 160, Health: 40}},
		{"boss d2", Boss, 2, Stats{Width: 100, Height: 100, Speed: 50, Health: 300}},
		{"minion ignores difficulty", Minion, 9, Stats{Width: 25, Height: 25, Speed: 350, Health: 10}},
		{"negative difficulty", Grunt, -4, Stats{Width: 40, Height: 40, Speed: 150, Health: 30}},
		{"unknown variant", Variant(42), 0, Stats{Width: 40, Height: 40, Speed: 150, Health: 30}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatsFor(tt.variant, tt.difficulty))
		})
	}
}

func TestStoreSpawnRespectsCapacity(t *testing.T) {
	s := NewStore(3)
	for i := 0; i < 3; i++ {
		require.True(t, s.Spawn(Vec{X: float64(i * 100)}, Grunt, 0))
	}
	assert.True(t, s.Full())
	assert.False(t, s.Spawn(Vec{}, Boss, 0))
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 3, s.Cap())

	e := s.At(0)
	assert.Equal(t, Active, e.State)
	assert.Equal(t, e.Health, e.MaxHealth)
	assert.Equal(t, Grunt, e.Variant)
}

func TestStoreCompactPreservesOrder(t *testing.T) {
	s := NewStore(10)
	for i := 0; i < 6; i++ {
		spawnAt(t, s, float64(i), 0, Grunt)
	}
	s.At(1).State = Dead
	s.At(4).State = Dead
	s.At(2).State = Exploding

	removed := s.Compact()
	assert.Equal(t, 2, removed)
	require.Equal(t, 4, s.Len())

	var xs []float64
	for i := 0; i < s.Len(); i++ {
		xs = append(xs, s.At(i).Box.X)
	}
	assert.Equal(t, []float64{0, 2, 3, 5}, xs)
	assert.Equal(t, Exploding, s.At(1).State)

	// Freed slots are cleared
	assert.Equal(t, Entity{}, s.slots[4])
	assert.Equal(t, Entity{}, s.slots[5])
}

func TestStoreCounts(t *testing.T) {
	s := NewStore(5)
	spawnAt(t, s, 0, 0, Grunt)
	spawnAt(t, s, 0, 0, Elite).State = Exploding
	spawnAt(t, s, 0, 0, Boss)

	active, total := s.Counts()
	assert.Equal(t, 2, active)
	assert.Equal(t, 3, total)

	s.Reset()
	active, total = s.Counts()
	assert.Zero(t, active)
	assert.Zero(t, total)
}

func TestEntityRatios(t *testing.T) {
	e := newEntity(Vec{}, Grunt, 0)
	assert.Equal(t, 1.0, e.HealthRatio())
	assert.Zero(t, e.ExplosionProgress())

	e.takeHit(15)
	assert.InDelta(t, 0.5, e.HealthRatio(), 1e-9)

	e.takeHit(100)
	assert.Zero(t, e.HealthRatio())

	require.True(t, e.explode(0.4))
	e.tickExplosion(0.1)
	assert.InDelta(t, 0.25, e.ExplosionProgress(), 1e-9)
}
