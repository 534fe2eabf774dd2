package sim

import (
	"math"
	"math/rand"
	"time"

	"go.uber.org/zap"
)

// Input is the player intent for one tick, already resolved by the frontend
type Input struct {
	// Movement direction; components in [-1, 1]
	Move Vec

	// Fire one volley toward Aim this tick
	Fire bool
	Aim  Vec

	// Drop an extra Grunt at a random position
	DebugSpawn bool
}

// Report aggregates what happened during one Step
type Report struct {
	ContactDamage int // Damage from hostiles touching the player
	ShotDamage    int // Damage from hostile projectiles
	Score         int // Score earned this tick

	Kills      int // Entities destroyed by player shots
	HitsLanded int
	ShotsFired int
	Explosions int // Entities that entered Exploding
	Spawned    int // Entities added by the director or debug spawns

	PlayerDead bool
}

// Damage returns the total damage the player took
func (r Report) Damage() int {
	return r.ContactDamage + r.ShotDamage
}

// EntityView is the render-facing snapshot of one hostile
type EntityView struct {
	Box       Rect
	Vel       Vec
	Variant   Variant
	State     LifeState
	Explosion float64 // 0 while Active, rising to 1 as the explosion runs
	Health    float64 // Health ratio in [0, 1]
}

// World is the simulation context. It owns the entity store, both projectile
// pools, the player and the spawn director, and is driven by Step from a
// single goroutine.
type World struct {
	cfg Config
	log *zap.Logger
	rng *rand.Rand

	store        *Store
	playerShots  *Pool
	hostileShots *Pool
	director     *Director

	player   Player
	upgrades Upgrades
	playTime float64
	score    int

	// Aggregate for the tick in progress
	report Report
}

// Option configures a World
type Option func(*World)

// WithLogger sets the logger used for debug events
func WithLogger(log *zap.Logger) Option {
	return func(w *World) {
		if log != nil {
			w.log = log
		}
	}
}

// WithRand sets the random source used for spawning
func WithRand(rng *rand.Rand) Option {
	return func(w *World) {
		if rng != nil {
			w.rng = rng
		}
	}
}

// WithUpgrades sets the weapon upgrades for the session
func WithUpgrades(u Upgrades) Option {
	return func(w *World) {
		w.upgrades = u
	}
}

// NewWorld creates a world and starts a fresh session
func NewWorld(cfg Config, opts ...Option) *World {
	w := &World{
		cfg: cfg.normalized(),
		log: zap.NewNop(),
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(w)
	}

	w.store = NewStore(w.cfg.EntityCapacity)
	w.playerShots = NewPool(w.cfg.PlayerShotCapacity)
	w.hostileShots = NewPool(w.cfg.HostileShotCapacity)
	w.director = newDirector(&w.cfg, w.rng, w.log)

	w.Reset()
	return w
}

// Reset starts a new session: empty pools, fresh player, zero play time and,
// when enabled, the opening wave.
func (w *World) Reset() {
	w.store.Reset()
	w.playerShots.Reset()
	w.hostileShots.Reset()
	w.director.reset()

	w.player = newPlayer(&w.cfg)
	w.playTime = 0
	w.score = 0
	w.report = Report{}

	if w.cfg.OpeningWave {
		for _, pos := range openingWave {
			w.store.Spawn(pos, Grunt, 0)
		}
	}
	w.log.Debug("session reset", zap.Int("entities", w.store.Len()))
}

var openingWave = []Vec{
	{X: 400, Y: 300},
	{X: 100, Y: 100},
	{X: 600, Y: 400},
	{X: 200, Y: 500},
}

// Step advances the simulation by dt seconds and returns what happened.
// Once the player is dead Step does nothing until Reset.
func (w *World) Step(dt float64, in Input) Report {
	w.report = Report{}
	if !w.player.Alive() {
		w.report.PlayerDead = true
		return w.report
	}
	if dt < 0 || math.IsNaN(dt) {
		dt = 0
	}
	w.playTime += dt

	if in.Fire {
		w.fire(in.Aim)
	}
	if in.DebugSpawn && w.director.debugSpawn(w.store, w.Difficulty()) {
		w.report.Spawned++
	}
	if w.director.Update(dt, w.playTime, w.store, w.player.Box.Pos()) {
		w.report.Spawned++
	}

	w.player.Move(in.Move, dt, w.cfg.FieldWidth, w.cfg.FieldHeight)

	w.store.Chase(w.player.Box.Pos(), dt)
	w.store.Separate(w.cfg.PushStep)
	w.store.AdvanceExplosions(dt)
	w.sweepDeaths()
	w.store.Compact()

	w.advancePlayerShots(dt)
	w.advanceHostileShots(dt)
	w.resolveContacts()
	w.applyDamage()

	w.score += w.report.Score
	return w.report
}

// Difficulty returns the current difficulty level
func (w *World) Difficulty() int {
	return Difficulty(w.playTime, w.cfg.DifficultyPeriod)
}

// PlayTime returns the seconds simulated since the last Reset
func (w *World) PlayTime() float64 {
	return w.playTime
}

// Score returns the score accumulated since the last Reset
func (w *World) Score() int {
	return w.score
}

// Player returns a copy of the player state
func (w *World) Player() Player {
	return w.player
}

// Config returns the tuning in use
func (w *World) Config() Config {
	return w.cfg
}

// Upgrades returns the weapon upgrades in use
func (w *World) Upgrades() Upgrades {
	return w.upgrades
}

// SetUpgrades replaces the weapon upgrades, typically between sessions
func (w *World) SetUpgrades(u Upgrades) {
	w.upgrades = u
}

// Resize changes the play field. Existing entities keep their positions.
func (w *World) Resize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	w.cfg.FieldWidth = width
	w.cfg.FieldHeight = height
}

// Counts returns the number of Active entities and the number of occupied slots
func (w *World) Counts() (active, total int) {
	return w.store.Counts()
}

// Director returns the spawn director
func (w *World) Director() *Director {
	return w.director
}

// AppendEntities appends a view of every stored entity to dst and returns the
// extended slice. Passing dst[:0] reuses its backing array between frames.
func (w *World) AppendEntities(dst []EntityView) []EntityView {
	for i := 0; i < w.store.Len(); i++ {
		e := w.store.At(i)
		dst = append(dst, EntityView{
			Box:       e.Box,
			Vel:       e.Vel,
			Variant:   e.Variant,
			State:     e.State,
			Explosion: e.ExplosionProgress(),
			Health:    e.HealthRatio(),
		})
	}
	return dst
}

// AppendPlayerShots appends the positions of live player shots to dst
func (w *World) AppendPlayerShots(dst []Vec) []Vec {
	return appendShots(dst, w.playerShots)
}

// AppendHostileShots appends the positions of live hostile shots to dst
func (w *World) AppendHostileShots(dst []Vec) []Vec {
	return appendShots(dst, w.hostileShots)
}

func appendShots(dst []Vec, p *Pool) []Vec {
	for i := 0; i < p.Len(); i++ {
		if pr := p.At(i); pr.Alive {
			dst = append(dst, pr.Pos)
		}
	}
	return dst
}
