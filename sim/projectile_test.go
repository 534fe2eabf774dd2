package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolFireRespectsCapacity(t *testing.T) {
	p := NewPool(2)
	assert.True(t, p.Fire(Vec{}, Vec{X: 1}))
	assert.True(t, p.Fire(Vec{}, Vec{X: 2}))
	assert.False(t, p.Fire(Vec{}, Vec{X: 3}))
	assert.Equal(t, 2, p.Len())
	assert.Equal(t, 2, p.Cap())
}

func TestPoolAdvanceAndCull(t *testing.T) {
	p := NewPool(4)
	p.Fire(Vec{X: 10, Y: 10}, Vec{X: 100})
	p.Fire(Vec{X: 790, Y: 10}, Vec{X: 100})
	p.Fire(Vec{X: 10, Y: 10}, Vec{Y: -100})
	p.Fire(Vec{X: 800, Y: 600}, Vec{})

	p.Advance(0.5)
	assert.Equal(t, Vec{X: 60, Y: 10}, p.At(0).Pos)

	p.Cull(800, 600)
	assert.True(t, p.At(0).Alive)
	assert.False(t, p.At(1).Alive, "past the right edge")
	assert.False(t, p.At(2).Alive, "past the top edge")
	assert.True(t, p.At(3).Alive, "the far corner is still in bounds")
}

func TestPoolPrunePreservesOrder(t *testing.T) {
	p := NewPool(5)
	for i := 0; i < 5; i++ {
		p.Fire(Vec{X: float64(i)}, Vec{})
	}
	p.At(0).Alive = false
	p.At(3).Alive = false

	assert.Equal(t, 2, p.Prune())
	require.Equal(t, 3, p.Len())
	assert.Equal(t, 1.0, p.At(0).Pos.X)
	assert.Equal(t, 2.0, p.At(1).Pos.X)
	assert.Equal(t, 4.0, p.At(2).Pos.X)

	// Capacity is reclaimed
	assert.True(t, p.Fire(Vec{}, Vec{}))
	assert.True(t, p.Fire(Vec{}, Vec{}))
	assert.False(t, p.Fire(Vec{}, Vec{}))
}

func TestPoolAdvanceSkipsSpent(t *testing.T) {
	p := NewPool(1)
	p.Fire(Vec{X: 5}, Vec{X: 100})
	p.At(0).Alive = false
	p.Advance(1)
	assert.Equal(t, Vec{X: 5}, p.At(0).Pos)
}
