package sim

import "go.uber.org/zap"

// AdvanceExplosions runs down the timer of every exploding entity and turns
// those that reach zero Dead. It returns how many died this call.
func (s *Store) AdvanceExplosions(dt float64) int {
	died := 0
	for i := 0; i < s.n; i++ {
		if s.slots[i].tickExplosion(dt) {
			died++
		}
	}
	return died
}

// detonate drives an Active entity into Exploding and runs the entry effects:
// the explosion is counted for the tick and an Elite releases its death burst.
// Calling it on an entity that is already exploding or dead does nothing.
func (w *World) detonate(e *Entity) bool {
	if !e.explode(w.cfg.ExplosionDuration) {
		return false
	}
	w.report.Explosions++
	w.releaseBurst(e)
	return true
}

// releaseBurst fires the Elite death burst once per entity
func (w *World) releaseBurst(e *Entity) {
	if e.Variant != Elite || e.burstFired || e.State == Active {
		return
	}
	origin := e.Box.Center()
	fired := 0
	for k := 0; k < w.cfg.BurstCount; k++ {
		vel := heading(burstAngle(k, w.cfg.BurstCount)).Scale(w.cfg.BurstSpeed)
		if w.hostileShots.Fire(origin, vel) {
			fired++
		}
	}
	// The latch is set even if the pool dropped some shots
	e.burstFired = true
	w.log.Debug("elite death burst", zap.Int("fired", fired))
}

// sweepDeaths handles the death-linked spawns after explosions advance.
// Dead bosses release minions exactly once; any exploding elite that has not
// burst yet does so now.
func (w *World) sweepDeaths() {
	// The loop bound is re-read so minions appended here are visited too
	for i := 0; i < w.store.Len(); i++ {
		e := w.store.At(i)
		switch {
		case e.Variant == Boss && e.State == Dead && !e.minionsSpawned:
			w.spawnMinions(e)
		case e.Variant == Elite && e.State == Exploding && !e.burstFired:
			w.releaseBurst(e)
		}
	}
}

// spawnMinions scatters minions around the last position of a dead boss
func (w *World) spawnMinions(boss *Entity) {
	origin := boss.Box.Pos()
	spread := w.cfg.MinionSpread
	difficulty := w.Difficulty()
	spawned := 0
	for k := 0; k < w.cfg.MinionCount; k++ {
		off := Vec{
			X: float64(w.rng.Intn(spread) - spread/2),
			Y: float64(w.rng.Intn(spread) - spread/2),
		}
		if w.store.Spawn(origin.Add(off), Minion, difficulty) {
			spawned++
		}
	}
	boss.minionsSpawned = true
	w.log.Debug("boss down", zap.Int("minions", spawned))
}
