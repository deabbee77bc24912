package bazooka

// EntityID identifies an entity for its whole life. IDs are never reused
// within a pool, so a stale ID can't alias a newer entity.
type EntityID uint64

type poolEntry[T any] struct {
	id    EntityID
	value T
	dead  bool
}

// Pool is an insertion-ordered collection of live entities.
//
// Removal is mark-then-compact: Kill only flags an entry, scans skip flagged
// entries, and Compact drops them afterwards. A removal in the middle of a
// scan therefore never shifts the entries that are still to be visited.
type Pool[T any] struct {
	entries []poolEntry[T]
	nextID  EntityID
	dead    int
}

// NewPool creates an empty pool with room for capacity entities.
func NewPool[T any](capacity int) *Pool[T] {
	return &Pool[T]{entries: make([]poolEntry[T], 0, capacity)}
}

// Add appends an entity and returns its ID.
func (p *Pool[T]) Add(v T) EntityID {
	p.nextID++
	p.entries = append(p.entries, poolEntry[T]{id: p.nextID, value: v})
	return p.nextID
}

// Len returns the number of live entities.
func (p *Pool[T]) Len() int {
	return len(p.entries) - p.dead
}

// Update calls fn for every live entity, in insertion order. Entities for
// which fn returns false are removed once the scan is complete.
// Returns how many entities were removed.
func (p *Pool[T]) Update(fn func(id EntityID, v *T) bool) int {
	removed := 0
	for i := range p.entries {
		e := &p.entries[i]
		if e.dead {
			continue
		}
		if !fn(e.id, &e.value) {
			p.markDead(i)
			removed++
		}
	}
	p.Compact()
	return removed
}

// Kill marks the entity for removal. Returns false if it is unknown or
// already dead. The entity stays in storage until Compact.
func (p *Pool[T]) Kill(id EntityID) bool {
	for i, e := range p.entries {
		if e.id == id {
			return p.markDead(i)
		}
	}
	return false
}

// markDead flags the entry at index i. Returns false if it was already dead.
func (p *Pool[T]) markDead(i int) bool {
	if p.entries[i].dead {
		return false
	}
	p.entries[i].dead = true
	p.dead++
	return true
}

// Alive reports whether the entity exists and has not been killed.
func (p *Pool[T]) Alive(id EntityID) bool {
	_, ok := p.Get(id)
	return ok
}

// Get returns a copy of a live entity.
func (p *Pool[T]) Get(id EntityID) (T, bool) {
	for _, e := range p.entries {
		if e.id == id && !e.dead {
			return e.value, true
		}
	}
	var zero T
	return zero, false
}

// Each calls fn for every live entity in insertion order.
func (p *Pool[T]) Each(fn func(id EntityID, v T)) {
	for _, e := range p.entries {
		if !e.dead {
			fn(e.id, e.value)
		}
	}
}

// Compact physically drops killed entries, preserving order.
func (p *Pool[T]) Compact() {
	if p.dead == 0 {
		return
	}
	live := p.entries[:0]
	for _, e := range p.entries {
		if !e.dead {
			live = append(live, e)
		}
	}
	// Zero the tail so dropped values can be collected.
	var zero poolEntry[T]
	for i := len(live); i < len(p.entries); i++ {
		p.entries[i] = zero
	}
	p.entries = live
	p.dead = 0
}

// Clear removes every entity. IDs keep counting up.
func (p *Pool[T]) Clear() {
	clear(p.entries)
	p.entries = p.entries[:0]
	p.dead = 0
}
