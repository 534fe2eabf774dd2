package sim

// Separate nudges overlapping Active entities apart.
//
// Every unordered pair is visited once. When two boxes overlap, both move
// step units along the line between their centers, in opposite directions.
// This is a single relaxation pass; dense clusters may keep some overlap.
func (s *Store) Separate(step float64) {
	for i := 0; i < s.n; i++ {
		a := &s.slots[i]
		if a.State != Active {
			continue
		}
		for j := i + 1; j < s.n; j++ {
			b := &s.slots[j]
			if b.State != Active {
				continue
			}
			if !a.Box.Overlaps(b.Box) {
				continue
			}
			pushApart(a, b, step)
		}
	}
}

// pushApart moves a and b away from each other by step each.
// Entities with coincident centers have no direction and stay put.
func pushApart(a, b *Entity, step float64) {
	dir := b.Box.Center().Sub(a.Box.Center()).Unit()

	a.Box.X -= dir.X * step
	a.Box.Y -= dir.Y * step
	b.Box.X += dir.X * step
	b.Box.Y += dir.Y * step
}
