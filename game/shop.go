package game

import (
	"fmt"
	"strings"

	"voidvanguard/profile"
)

// shopLabels renders one menu line per shop item followed by BACK
func shopLabels(p *profile.Profile) []string {
	labels := make([]string, 0, len(profile.Items)+1)
	for _, item := range profile.Items {
		name := strings.ToUpper(item.String())
		switch {
		case item == profile.ItemDamage:
			labels = append(labels, fmt.Sprintf("DAMAGE + (%d COINS)", p.Cost(item)))
		case p.Owned(item):
			labels = append(labels, name+" (OWNED)")
		default:
			labels = append(labels, fmt.Sprintf("%s (%d COINS)", name, p.Cost(item)))
		}
	}
	return append(labels, itemBack)
}

// shopStatus lists what the profile already owns
func shopStatus(p *profile.Profile) []string {
	yesNo := func(b bool) string {
		if b {
			return "YES"
		}
		return "NO"
	}
	return []string{
		fmt.Sprintf("COINS: %d", p.Coins),
		fmt.Sprintf("DAMAGE LEVEL: %d", p.Upgrades.DamageLevel),
		"DOUBLE SHOT: " + yesNo(p.Upgrades.DoubleShot),
		"TRIPLE SHOT: " + yesNo(p.Upgrades.TripleShot),
	}
}

// volumeLabel shows the volume as a percentage of the maximum
func volumeLabel(volume int) string {
	return fmt.Sprintf("VOLUME: %d%%", volume*100/profile.MaxVolume)
}
