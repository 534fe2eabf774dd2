package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDamageCostCurve(t *testing.T) {
	p := New()
	tests := []struct {
		level int
		cost  int
	}{
		{0, 100},
		{1, 150},
		{7, 450},
		{8, 500},
		{20, 500},
	}
	for _, tt := range tests {
		p.Upgrades.DamageLevel = tt.level
		assert.Equal(t, tt.cost, p.Cost(ItemDamage), "level %d", tt.level)
	}
	assert.Equal(t, 1000, p.Cost(ItemDoubleShot))
	assert.Equal(t, 2000, p.Cost(ItemTripleShot))
}

func TestBuy(t *testing.T) {
	p := New()
	p.Coins = 1250

	require.NoError(t, p.Buy(ItemDamage))
	assert.Equal(t, 1, p.Upgrades.DamageLevel)
	assert.Equal(t, 1150, p.Coins)

	require.NoError(t, p.Buy(ItemDoubleShot))
	assert.True(t, p.Upgrades.DoubleShot)
	assert.Equal(t, 150, p.Coins)

	assert.ErrorIs(t, p.Buy(ItemDoubleShot), ErrAlreadyOwned)
	assert.ErrorIs(t, p.Buy(ItemTripleShot), ErrInsufficientCoins)
	assert.ErrorIs(t, p.Buy(Item(9)), ErrUnknownItem)
	assert.Equal(t, 150, p.Coins, "failed purchases cost nothing")

	assert.True(t, p.CanBuy(ItemDamage))
	assert.False(t, p.CanBuy(ItemTripleShot))
}

func TestSettle(t *testing.T) {
	p := New()
	assert.Equal(t, 12, p.Settle(125))
	assert.Equal(t, 12, p.Coins)
	assert.Equal(t, 125, p.Best)

	assert.Equal(t, 0, p.Settle(9))
	assert.Equal(t, 12, p.Coins)
	assert.Equal(t, 125, p.Best)
}

func TestStepVolume(t *testing.T) {
	p := New()
	assert.Equal(t, 72, p.StepVolume(true))

	p.Volume = 124
	assert.Equal(t, 128, p.StepVolume(true))
	assert.Equal(t, 128, p.StepVolume(true))

	p.Volume = 4
	assert.Equal(t, 0, p.StepVolume(false))
	assert.Equal(t, 0, p.StepVolume(false))
}
