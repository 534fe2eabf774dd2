package profile

import "errors"

var (
	ErrInsufficientCoins = errors.New("not enough coins")
	ErrAlreadyOwned      = errors.New("upgrade already owned")
	ErrUnknownItem       = errors.New("unknown shop item")
)

// Item is something the upgrade shop sells
type Item uint8

const (
	ItemDamage Item = iota
	ItemDoubleShot
	ItemTripleShot
	itemCount
)

// Items lists the shop in display order
var Items = []Item{ItemDamage, ItemDoubleShot, ItemTripleShot}

func (i Item) String() string {
	switch i {
	case ItemDamage:
		return "damage"
	case ItemDoubleShot:
		return "double shot"
	case ItemTripleShot:
		return "triple shot"
	default:
		return "unknown"
	}
}

const (
	damageBaseCost  = 100
	damageLevelCost = 50
	damageMaxCost   = 500
	doubleShotCost  = 1000
	tripleShotCost  = 2000
	coinsPerScore   = 10
)

const (
	MaxVolume  = 128
	VolumeStep = 8
)

// Cost returns the current price of an item
func (p *Profile) Cost(item Item) int {
	switch item {
	case ItemDamage:
		return min(damageMaxCost, damageBaseCost+damageLevelCost*p.Upgrades.DamageLevel)
	case ItemDoubleShot:
		return doubleShotCost
	case ItemTripleShot:
		return tripleShotCost
	default:
		return 0
	}
}

// Owned reports whether a one-time item has already been bought.
// Damage levels are never owned.
func (p *Profile) Owned(item Item) bool {
	switch item {
	case ItemDoubleShot:
		return p.Upgrades.DoubleShot
	case ItemTripleShot:
		return p.Upgrades.TripleShot
	default:
		return false
	}
}

// CanBuy reports whether Buy would succeed
func (p *Profile) CanBuy(item Item) bool {
	return item < itemCount && !p.Owned(item) && p.Coins >= p.Cost(item)
}

// Buy spends coins on an item
func (p *Profile) Buy(item Item) error {
	if item >= itemCount {
		return ErrUnknownItem
	}
	if p.Owned(item) {
		return ErrAlreadyOwned
	}
	cost := p.Cost(item)
	if p.Coins < cost {
		return ErrInsufficientCoins
	}
	p.Coins -= cost

	switch item {
	case ItemDamage:
		p.Upgrades.DamageLevel++
	case ItemDoubleShot:
		p.Upgrades.DoubleShot = true
	case ItemTripleShot:
		p.Upgrades.TripleShot = true
	}
	return nil
}

// Settle converts a finished session's score into coins and returns the coins earned
func (p *Profile) Settle(score int) int {
	if score > p.Best {
		p.Best = score
	}
	if score <= 0 {
		return 0
	}
	earned := score / coinsPerScore
	p.Coins += earned
	return earned
}

// StepVolume moves the volume by one step up or down, staying within 0..MaxVolume
func (p *Profile) StepVolume(up bool) int {
	if up {
		p.Volume = min(MaxVolume, p.Volume+VolumeStep)
	} else {
		p.Volume = max(0, p.Volume-VolumeStep)
	}
	return p.Volume
}
