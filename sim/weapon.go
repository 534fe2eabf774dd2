package sim

import "math"

// Upgrades is the purchased weapon state the player brings into a session
type Upgrades struct {
	DamageLevel int
	DoubleShot  bool
	TripleShot  bool
}

// FirePattern selects how many shots a single trigger pull produces
type FirePattern uint8

const (
	SingleShot FirePattern = iota
	DoubleShot
	TripleShot
)

// Angular offsets from the aim direction, in radians, per pattern
var patternOffsets = [...][]float64{
	SingleShot: {0},
	DoubleShot: {0, 0.1},
	TripleShot: {0, -0.3, 0.3},
}

// Pattern returns the active fire pattern. Triple shot replaces double shot.
func (u Upgrades) Pattern() FirePattern {
	switch {
	case u.TripleShot:
		return TripleShot
	case u.DoubleShot:
		return DoubleShot
	default:
		return SingleShot
	}
}

// Offsets returns the angular offsets of the shots in one volley
func (p FirePattern) Offsets() []float64 {
	if int(p) >= len(patternOffsets) {
		return patternOffsets[SingleShot]
	}
	return patternOffsets[p]
}

// shotDamage returns the damage of one player shot at an upgrade level
func (c *Config) shotDamage(level int) int {
	if level < 0 {
		level = 0
	}
	return c.ShotDamage + c.ShotDamagePerLevel*level
}

// aimAngle returns the angle from origin to target. A zero-length aim points along +X.
func aimAngle(origin, target Vec) float64 {
	d := target.Sub(origin)
	if d.X == 0 && d.Y == 0 {
		return 0
	}
	return math.Atan2(d.Y, d.X)
}

// fire launches one volley from the player's center toward target.
// Shots that do not fit in the pool are dropped. It returns the number fired.
func (w *World) fire(target Vec) int {
	origin := w.player.Center()
	base := aimAngle(origin, target)
	fired := 0
	for _, off := range w.upgrades.Pattern().Offsets() {
		vel := heading(base + off).Scale(w.cfg.ShotSpeed)
		if w.playerShots.Fire(origin, vel) {
			fired++
		}
	}
	w.report.ShotsFired += fired
	return fired
}
