package sim

// Store is a fixed-capacity pool of hostile entities.
// Only the first Len slots are meaningful. Slot indices are not stable
// across Compact, so callers must not keep them between ticks.
type Store struct {
	// Preallocated slots
	slots []Entity

	// Number of occupied slots
	n int
}

// NewStore creates a store that holds at most capacity entities
func NewStore(capacity int) *Store {
	if capacity < 0 {
		capacity = 0
	}
	return &Store{
		slots: make([]Entity, capacity),
	}
}

// Cap returns the fixed capacity
func (s *Store) Cap() int {
	return len(s.slots)
}

// Len returns the number of occupied slots, including exploding and dead entities
func (s *Store) Len() int {
	return s.n
}

// Full reports whether no slot is left
func (s *Store) Full() bool {
	return s.n >= len(s.slots)
}

// At returns the entity in slot i. The pointer is valid until the next Compact.
func (s *Store) At(i int) *Entity {
	return &s.slots[i]
}

// Spawn creates one entity of variant v at pos with stats scaled by difficulty.
// It is a no-op returning false when the store is full.
func (s *Store) Spawn(pos Vec, v Variant, difficulty int) bool {
	if s.Full() {
		return false
	}
	s.slots[s.n] = newEntity(pos, v, difficulty)
	s.n++
	return true
}

// Compact drops Dead entities, shifting survivors down in their original order.
// It returns the number of entities removed.
func (s *Store) Compact() int {
	write := 0
	for read := 0; read < s.n; read++ {
		if s.slots[read].State == Dead {
			continue
		}
		if write != read {
			s.slots[write] = s.slots[read]
		}
		write++
	}
	removed := s.n - write
	for i := write; i < s.n; i++ {
		s.slots[i] = Entity{}
	}
	s.n = write
	return removed
}

// Counts returns the number of Active entities and the number of occupied slots
func (s *Store) Counts() (active, total int) {
	for i := 0; i < s.n; i++ {
		if s.slots[i].State == Active {
			active++
		}
	}
	return active, s.n
}

// Reset empties the store without releasing its slots
func (s *Store) Reset() {
	for i := 0; i < s.n; i++ {
		s.slots[i] = Entity{}
	}
	s.n = 0
}
