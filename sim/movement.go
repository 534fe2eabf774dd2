package sim

// Chase moves every Active entity straight toward target by Speed*dt.
//
// Each axis is committed separately: the X step is tried first and kept only
// if the entity would not overlap another Active entity, then the Y step is
// tried from the (possibly updated) X position. An entity blocked on one axis
// therefore slides along the other.
func (s *Store) Chase(target Vec, dt float64) {
	for i := 0; i < s.n; i++ {
		e := &s.slots[i]
		if e.State != Active {
			continue
		}

		dir := target.Sub(e.Box.Pos()).Unit()
		step := dir.Scale(e.Speed * dt)
		start := e.Box.Pos()

		next := e.Box
		next.X += step.X
		if !s.blocked(i, next) {
			e.Box.X = next.X
		}

		next = e.Box
		next.Y += step.Y
		if !s.blocked(i, next) {
			e.Box.Y = next.Y
		}

		if dt > 0 {
			e.Vel = e.Box.Pos().Sub(start).Scale(1 / dt)
		} else {
			e.Vel = Vec{}
		}
	}
}

// blocked reports whether box overlaps any Active entity other than slot self
func (s *Store) blocked(self int, box Rect) bool {
	for j := 0; j < s.n; j++ {
		if j == self {
			continue
		}
		other := &s.slots[j]
		if other.State != Active {
			continue
		}
		if box.Overlaps(other.Box) {
			return true
		}
	}
	return false
}
