package sim

// Player is the avatar the hostiles chase
type Player struct {
	Box       Rect
	Health    int
	MaxHealth int
	Speed     float64
}

func newPlayer(cfg *Config) Player {
	return Player{
		Box: Rect{
			X: cfg.PlayerStartX,
			Y: cfg.PlayerStartY,
			W: cfg.PlayerSize,
			H: cfg.PlayerSize,
		},
		Health:    cfg.PlayerHealth,
		MaxHealth: cfg.PlayerHealth,
		Speed:     cfg.PlayerSpeed,
	}
}

// Center returns the point shots are fired from
func (p Player) Center() Vec {
	return p.Box.Center()
}

// Alive reports whether the player has health left
func (p Player) Alive() bool {
	return p.Health > 0
}

// HealthRatio returns Health/MaxHealth clamped to [0, 1]
func (p Player) HealthRatio() float64 {
	if p.MaxHealth <= 0 || p.Health <= 0 {
		return 0
	}
	if p.Health >= p.MaxHealth {
		return 1
	}
	return float64(p.Health) / float64(p.MaxHealth)
}

// Move applies a movement intent over dt and keeps the box inside the field.
// Intents longer than 1 are normalized so diagonals are not faster.
func (p *Player) Move(intent Vec, dt, width, height float64) {
	if intent.Len() > 1 {
		intent = intent.Unit()
	}
	p.Box.X += intent.X * p.Speed * dt
	p.Box.Y += intent.Y * p.Speed * dt

	if p.Box.X < 0 {
		p.Box.X = 0
	}
	if p.Box.X+p.Box.W > width {
		p.Box.X = width - p.Box.W
	}
	if p.Box.Y < 0 {
		p.Box.Y = 0
	}
	if p.Box.Y+p.Box.H > height {
		p.Box.Y = height - p.Box.H
	}
}
