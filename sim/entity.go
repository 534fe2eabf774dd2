package sim

// LifeState is the lifecycle stage of a hostile entity.
// Transitions only go forward: Active -> Exploding -> Dead.
type LifeState uint8

const (
	Active    LifeState = iota // Moves, collides, deals and takes damage
	Exploding                  // Still rendered, ignored by movement and combat
	Dead                       // Inert until the next compaction
)

func (s LifeState) String() string {
	switch s {
	case Active:
		return "active"
	case Exploding:
		return "exploding"
	case Dead:
		return "dead"
	default:
		return "unknown"
	}
}

// Entity is a hostile unit owned by a Store
type Entity struct {
	// Bounding box in play-field coordinates
	Box Rect

	// Velocity committed on the last movement pass, in units per second
	Vel Vec

	// Movement speed in units per second, fixed at spawn
	Speed float64

	// Health points; MaxHealth never changes after spawn
	Health    int
	MaxHealth int

	Variant Variant
	State   LifeState

	// Seconds left before an exploding entity turns Dead
	ExplosionTimer float64
	explodeFor     float64

	// One-shot latches
	burstFired     bool // Elite death burst released
	minionsSpawned bool // Boss minions released
}

func newEntity(pos Vec, v Variant, difficulty int) Entity {
	st := StatsFor(v, difficulty)
	return Entity{
		Box:       Rect{X: pos.X, Y: pos.Y, W: st.Width, H: st.Height},
		Speed:     st.Speed,
		Health:    st.Health,
		MaxHealth: st.Health,
		Variant:   v,
		State:     Active,
	}
}

// Combatant reports whether the entity can deal or take damage and block movement
func (e *Entity) Combatant() bool {
	return e.State == Active
}

// HealthRatio returns Health/MaxHealth clamped to [0, 1]
func (e *Entity) HealthRatio() float64 {
	if e.MaxHealth <= 0 {
		return 0
	}
	r := float64(e.Health) / float64(e.MaxHealth)
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}

// ExplosionProgress returns how far the explosion has run, from 0 to 1.
// Active entities report 0 and dead ones 1.
func (e *Entity) ExplosionProgress() float64 {
	switch e.State {
	case Active:
		return 0
	case Dead:
		return 1
	}
	if e.explodeFor <= 0 {
		return 1
	}
	p := 1 - e.ExplosionTimer/e.explodeFor
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// explode moves an Active entity into Exploding with the given timer.
// It returns false when the entity was already past Active.
func (e *Entity) explode(duration float64) bool {
	if e.State != Active {
		return false
	}
	e.State = Exploding
	e.ExplosionTimer = duration
	e.explodeFor = duration
	e.Vel = Vec{}
	return true
}

// tickExplosion runs down the timer and reports whether the entity just turned Dead
func (e *Entity) tickExplosion(dt float64) bool {
	if e.State != Exploding {
		return false
	}
	e.ExplosionTimer -= dt
	if e.ExplosionTimer <= 0 {
		e.State = Dead
		return true
	}
	return false
}

// takeHit subtracts damage and reports whether health is now depleted
func (e *Entity) takeHit(damage int) bool {
	e.Health -= damage
	return e.Health <= 0
}
