package autoaim

import (
	"math"

	"voidvanguard/sim"
)

// PredictiveAim returns the point to aim at so a shot of the given speed fired
// from shooter meets a target moving at constant velocity
func PredictiveAim(shooter, target, targetVel sim.Vec, projectileSpeed float64) sim.Vec {
	// A stationary target needs no lead
	if math.Abs(targetVel.X) < 0.1 && math.Abs(targetVel.Y) < 0.1 {
		return target
	}

	distance := target.Sub(shooter).Len()
	if distance < 1.0 || projectileSpeed <= 0 {
		return target
	}

	// Solve |target + vel*t - shooter| = speed*t by fixed-point iteration,
	// starting from the time to reach the current position
	t := distance / projectileSpeed
	for i := 0; i < 5; i++ {
		predicted := target.Add(targetVel.Scale(t))
		d := predicted.Sub(shooter).Len()
		if d <= 0 {
			break
		}
		next := d / projectileSpeed
		if math.Abs(next-t) < 0.001 {
			break
		}
		t = next
	}

	return target.Add(targetVel.Scale(t))
}

// RotateTowards turns current toward target by at most maxRate*dt radians
// along the shorter arc
func RotateTowards(current, target, maxRate, dt float64) float64 {
	diff := target - current

	// Normalize to [-pi, pi]
	for diff > math.Pi {
		diff -= 2 * math.Pi
	}
	for diff < -math.Pi {
		diff += 2 * math.Pi
	}

	step := diff
	maxStep := maxRate * dt
	if math.Abs(step) > maxStep {
		if step > 0 {
			step = maxStep
		} else {
			step = -maxStep
		}
	}
	return current + step
}
