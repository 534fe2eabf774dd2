package sim

import "go.uber.org/zap"

// advancePlayerShots moves player shots, applies hits and prunes the pool.
// A shot hits at most one entity: the first Active one it overlaps in store order.
func (w *World) advancePlayerShots(dt float64) {
	pool := w.playerShots
	pool.Advance(dt)

	damage := w.cfg.shotDamage(w.upgrades.DamageLevel)
	for i := 0; i < pool.Len(); i++ {
		shot := pool.At(i)
		if !shot.Alive {
			continue
		}
		box := shot.Box(w.cfg.ShotSize)
		for j := 0; j < w.store.Len(); j++ {
			e := w.store.At(j)
			if !e.Combatant() || !box.Overlaps(e.Box) {
				continue
			}
			w.report.HitsLanded++
			if e.takeHit(damage) && w.detonate(e) {
				w.report.Kills++
				w.report.Score += w.cfg.KillScore
			}
			shot.Alive = false
			break
		}
	}
	pool.Cull(w.cfg.FieldWidth, w.cfg.FieldHeight)
	pool.Prune()
}

// advanceHostileShots moves hostile shots, applies hits on the player and prunes the pool
func (w *World) advanceHostileShots(dt float64) {
	pool := w.hostileShots
	pool.Advance(dt)

	for i := 0; i < pool.Len(); i++ {
		shot := pool.At(i)
		if !shot.Alive {
			continue
		}
		if shot.Box(w.cfg.ShotSize).Overlaps(w.player.Box) {
			w.report.ShotDamage += w.cfg.BurstDamage
			shot.Alive = false
		}
	}
	pool.Cull(w.cfg.FieldWidth, w.cfg.FieldHeight)
	pool.Prune()
}

// resolveContacts lets every Active entity touching the player ram it.
// The entity deals contact damage, explodes and is worth KillScore.
func (w *World) resolveContacts() {
	for i := 0; i < w.store.Len(); i++ {
		e := w.store.At(i)
		if !e.Combatant() || !e.Box.Overlaps(w.player.Box) {
			continue
		}
		w.report.ContactDamage += w.cfg.ContactDamage
		w.report.Score += w.cfg.KillScore
		w.detonate(e)
	}
}

// applyDamage settles the tick's accumulated damage on the player
func (w *World) applyDamage() {
	total := w.report.ContactDamage + w.report.ShotDamage
	if total == 0 {
		return
	}
	w.player.Health -= total
	if w.player.Health <= 0 {
		w.player.Health = 0
		w.report.PlayerDead = true
		w.log.Debug("player down",
			zap.Float64("play_time", w.playTime),
			zap.Int("difficulty", w.Difficulty()),
		)
	}
}
