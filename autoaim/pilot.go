package autoaim

import (
	"math"

	"voidvanguard/sim"
)

// Pilot plays the player side: it picks the nearest threat, leads it with the
// turret and keeps the avatar away from the swarm
type Pilot struct {
	// Shot speed used for leading targets
	ShotSpeed float64

	// Targets beyond this range are ignored
	MaxRange float64

	// Turret turn rate in radians per second
	TurnRate float64

	// Fire only when the turret is within this many radians of the solution
	Tolerance float64

	// Seconds between trigger pulls
	Cooldown float64

	// Hostiles closer than this push the avatar away
	DangerRadius float64

	turret   float64
	reload   float64
	hasAim   bool
	aimPoint sim.Vec
}

// NewPilot creates a pilot tuned for the given shot speed
func NewPilot(shotSpeed float64) *Pilot {
	return &Pilot{
		ShotSpeed:    shotSpeed,
		MaxRange:     1000,
		TurnRate:     3 * math.Pi,
		Tolerance:    0.15,
		Cooldown:     0.25,
		DangerRadius: 180,
	}
}

// Turret returns the current turret angle
func (p *Pilot) Turret() float64 {
	return p.turret
}

// AimPoint returns the last lead solution and whether there was a target
func (p *Pilot) AimPoint() (sim.Vec, bool) {
	return p.aimPoint, p.hasAim
}

// Next produces the input for one tick
func (p *Pilot) Next(dt float64, player sim.Player, entities []sim.EntityView, field sim.Rect) sim.Input {
	origin := player.Center()
	in := sim.Input{Move: p.evade(origin, entities, field)}

	if p.reload > 0 {
		p.reload -= dt
	}

	target, ok := Nearest(origin, entities, p.MaxRange)
	p.hasAim = ok
	if !ok {
		return in
	}

	p.aimPoint = PredictiveAim(origin, target.Box.Center(), target.Vel, p.ShotSpeed)
	want := math.Atan2(p.aimPoint.Y-origin.Y, p.aimPoint.X-origin.X)
	p.turret = RotateTowards(p.turret, want, p.TurnRate, dt)

	if p.reload <= 0 && math.Abs(angleDiff(p.turret, want)) <= p.Tolerance {
		dist := p.aimPoint.Sub(origin).Len()
		in.Fire = true
		in.Aim = origin.Add(sim.Vec{X: math.Cos(p.turret), Y: math.Sin(p.turret)}.Scale(dist))
		p.reload = p.Cooldown
	}
	return in
}

// Nearest returns the Active entity whose center is closest to from, within maxRange
func Nearest(from sim.Vec, entities []sim.EntityView, maxRange float64) (sim.EntityView, bool) {
	best := -1
	bestDist := maxRange
	for i := range entities {
		if entities[i].State != sim.Active {
			continue
		}
		d := entities[i].Box.Center().Sub(from).Len()
		if d <= bestDist {
			best = i
			bestDist = d
		}
	}
	if best < 0 {
		return sim.EntityView{}, false
	}
	return entities[best], true
}

// evade sums a push away from nearby hostiles and a weak pull toward the middle of the field
func (p *Pilot) evade(origin sim.Vec, entities []sim.EntityView, field sim.Rect) sim.Vec {
	var push sim.Vec
	for i := range entities {
		e := &entities[i]
		if e.State != sim.Active {
			continue
		}
		away := origin.Sub(e.Box.Center())
		d := away.Len()
		if d >= p.DangerRadius || d == 0 {
			continue
		}
		weight := (p.DangerRadius - d) / p.DangerRadius
		push = push.Add(away.Unit().Scale(weight))
	}

	home := field.Center().Sub(origin)
	if home.Len() > 50 {
		push = push.Add(home.Unit().Scale(0.2))
	}
	if push.Len() < 0.05 {
		return sim.Vec{}
	}
	return push.Unit()
}

func angleDiff(a, b float64) float64 {
	d := b - a
	for d > math.Pi {
		d -= 2 * math.Pi
	}
	for d < -math.Pi {
		d += 2 * math.Pi
	}
	return d
}
