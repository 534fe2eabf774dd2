package sim

import "math"

// Projectile is a straight-flying shot
type Projectile struct {
	Pos   Vec
	Vel   Vec
	Alive bool
}

// Box returns the hit box of a projectile of the given size
func (p *Projectile) Box(size float64) Rect {
	return Rect{X: p.Pos.X, Y: p.Pos.Y, W: size, H: size}
}

// Pool is a fixed-capacity set of projectiles owned by one side.
// Like Store, indices are only meaningful until the next Prune.
type Pool struct {
	slots []Projectile
	n     int
}

// NewPool creates a projectile pool with the given capacity
func NewPool(capacity int) *Pool {
	if capacity < 0 {
		capacity = 0
	}
	return &Pool{
		slots: make([]Projectile, capacity),
	}
}

// Cap returns the fixed capacity
func (p *Pool) Cap() int {
	return len(p.slots)
}

// Len returns the number of occupied slots
func (p *Pool) Len() int {
	return p.n
}

// At returns the projectile in slot i
func (p *Pool) At(i int) *Projectile {
	return &p.slots[i]
}

// Fire adds a live projectile. It is a no-op returning false when the pool is full.
func (p *Pool) Fire(pos, vel Vec) bool {
	if p.n >= len(p.slots) {
		return false
	}
	p.slots[p.n] = Projectile{Pos: pos, Vel: vel, Alive: true}
	p.n++
	return true
}

// Advance moves every live projectile by its velocity over dt
func (p *Pool) Advance(dt float64) {
	for i := 0; i < p.n; i++ {
		pr := &p.slots[i]
		if !pr.Alive {
			continue
		}
		pr.Pos = pr.Pos.Add(pr.Vel.Scale(dt))
	}
}

// Cull marks live projectiles outside [0,width]x[0,height] as spent
func (p *Pool) Cull(width, height float64) {
	for i := 0; i < p.n; i++ {
		pr := &p.slots[i]
		if pr.Alive && outOfBounds(pr.Pos, width, height) {
			pr.Alive = false
		}
	}
}

// Prune removes spent projectiles, keeping the survivors in order.
// It returns the number removed.
func (p *Pool) Prune() int {
	write := 0
	for read := 0; read < p.n; read++ {
		if !p.slots[read].Alive {
			continue
		}
		if write != read {
			p.slots[write] = p.slots[read]
		}
		write++
	}
	removed := p.n - write
	for i := write; i < p.n; i++ {
		p.slots[i] = Projectile{}
	}
	p.n = write
	return removed
}

// Reset empties the pool
func (p *Pool) Reset() {
	for i := 0; i < p.n; i++ {
		p.slots[i] = Projectile{}
	}
	p.n = 0
}

func outOfBounds(pos Vec, width, height float64) bool {
	return pos.X < 0 || pos.X > width || pos.Y < 0 || pos.Y > height
}

// heading returns the unit vector for an angle in radians
func heading(angle float64) Vec {
	return Vec{X: math.Cos(angle), Y: math.Sin(angle)}
}

// burstAngle returns the angle of shot k in an evenly spaced ring of count shots
func burstAngle(k, count int) float64 {
	return float64(k) * 2 * math.Pi / float64(count)
}
