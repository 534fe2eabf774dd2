package sim

import (
	"math"
	"math/rand"

	"go.uber.org/zap"
)

// Difficulty returns floor(playTime/period), never negative
func Difficulty(playTime, period float64) int {
	if playTime <= 0 || period <= 0 {
		return 0
	}
	return int(math.Floor(playTime / period))
}

// PopulationCap returns how many Active entities the director allows at a difficulty
func PopulationCap(difficulty int) int {
	return 15 + 5*difficulty
}

// SpawnInterval returns the seconds between automatic spawns at a difficulty
func SpawnInterval(difficulty int) float64 {
	return math.Max(0.3, 3.0-0.2*float64(difficulty))
}

// Edge of the play field a spawn is placed on
type edge uint8

const (
	edgeTop edge = iota
	edgeRight
	edgeBottom
	edgeLeft
	edgeCount
)

// Director decides when, where and what to spawn
type Director struct {
	cfg *Config
	rng *rand.Rand
	log *zap.Logger

	// Seconds accumulated since the last automatic spawn
	timer float64

	// Automatic spawns this session
	spawned int
}

func newDirector(cfg *Config, rng *rand.Rand, log *zap.Logger) *Director {
	return &Director{cfg: cfg, rng: rng, log: log}
}

// Timer returns the seconds accumulated toward the next spawn
func (d *Director) Timer() float64 {
	return d.timer
}

// Spawned returns the number of automatic spawns since the last reset
func (d *Director) Spawned() int {
	return d.spawned
}

func (d *Director) reset() {
	d.timer = 0
	d.spawned = 0
}

// Update advances the spawn timer and adds at most one entity.
// The timer keeps accumulating while the population cap or the store blocks spawning.
func (d *Director) Update(dt, playTime float64, s *Store, player Vec) bool {
	d.timer += dt

	difficulty := Difficulty(playTime, d.cfg.DifficultyPeriod)
	if d.timer < SpawnInterval(difficulty) {
		return false
	}
	active, _ := s.Counts()
	populationCap := PopulationCap(difficulty)
	if active >= populationCap || s.Full() {
		return false
	}

	pos := d.place(player)
	v := d.pickVariant(playTime)
	if !s.Spawn(pos, v, difficulty) {
		return false
	}
	d.spawned++
	d.timer = 0

	d.log.Debug("auto spawn",
		zap.Int("n", d.spawned),
		zap.Stringer("variant", v),
		zap.Float64("x", pos.X),
		zap.Float64("y", pos.Y),
		zap.Int("alive", active+1),
		zap.Int("cap", populationCap),
		zap.Int("difficulty", difficulty),
	)
	return true
}

// place picks an edge position at least SpawnMinDistance from player, retrying up
// to SpawnAttempts times before falling back to a random in-bounds position.
// The result is clamped so the box starts inside the field.
func (d *Director) place(player Vec) Vec {
	var pos Vec
	found := false
	for attempt := 0; attempt < d.cfg.SpawnAttempts && !found; attempt++ {
		pos = d.edgePosition(edge(d.rng.Intn(int(edgeCount))))
		found = pos.Sub(player).Len() > d.cfg.SpawnMinDistance
	}
	if !found {
		pos = d.randomPosition()
	}

	maxX := d.cfg.FieldWidth - 50
	maxY := d.cfg.FieldHeight - 50
	if pos.X > maxX {
		pos.X = maxX
	}
	if pos.Y > maxY {
		pos.Y = maxY
	}
	return pos
}

func (d *Director) edgePosition(side edge) Vec {
	w, h := d.cfg.FieldWidth, d.cfg.FieldHeight
	switch side {
	case edgeTop:
		return Vec{X: d.span(w), Y: 20}
	case edgeRight:
		return Vec{X: w - 50, Y: d.span(h)}
	case edgeBottom:
		return Vec{X: d.span(w), Y: h - 50}
	default:
		return Vec{X: 20, Y: d.span(h)}
	}
}

func (d *Director) randomPosition() Vec {
	return Vec{X: d.span(d.cfg.FieldWidth), Y: d.span(d.cfg.FieldHeight)}
}

// span returns a whole-unit coordinate in [50, extent-50), or 50 on tiny fields
func (d *Director) span(extent float64) float64 {
	n := int(extent) - 100
	if n < 1 {
		return 50
	}
	return float64(d.rng.Intn(n) + 50)
}

// pickVariant rolls Elite one time in three, otherwise Grunt.
// Once boss time is reached, an independent one-in-twenty roll makes it a Boss.
func (d *Director) pickVariant(playTime float64) Variant {
	v := Grunt
	if d.rng.Intn(3) == 0 {
		v = Elite
	}
	if playTime > d.cfg.BossUnlockTime && d.rng.Intn(20) == 0 {
		v = Boss
	}
	return v
}

// debugSpawn drops one Grunt at a random position regardless of cap and timer
func (d *Director) debugSpawn(s *Store, difficulty int) bool {
	pos := d.randomPosition()
	return s.Spawn(pos, Grunt, difficulty)
}
