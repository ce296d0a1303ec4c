package apecs

// Cached layers a fixed-size, direct-mapped read cache over a backing
// store. Writes go through to the backing store, which stays authoritative
// for membership; the cache only short-circuits reads of recently touched
// ids. Useful in front of a MapStore for components with a hot working set.
type Cached[E any] struct {
	backing Store[E]

	// ids holds the cached id per slot, offset by one so the zero value
	// means "slot empty". vals holds the matching component values.
	ids  []uint64
	vals []E
	size uint32
}

// NewCached wraps backing with a direct-mapped cache of the given number of
// slots. A non-positive size falls back to a single slot.
func NewCached[E any](backing Store[E], size int) *Cached[E] {
	if size < 1 {
		size = 1
	}
	return &Cached[E]{
		backing: backing,
		ids:     make([]uint64, size),
		vals:    make([]E, size),
		size:    uint32(size),
	}
}

// slot returns the cache slot for id.
func (s *Cached[E]) slot(id uint32) uint32 {
	return id % s.size
}

// fill places id and its value into the cache.
func (s *Cached[E]) fill(id uint32, value E) {
	i := s.slot(id)
	s.ids[i] = uint64(id) + 1
	s.vals[i] = value
}

// invalidate drops id from the cache if present.
func (s *Cached[E]) invalidate(id uint32) {
	i := s.slot(id)
	if s.ids[i] == uint64(id)+1 {
		s.ids[i] = 0
		var zero E
		s.vals[i] = zero
	}
}

// Get returns the component for id, consulting the cache first.
func (s *Cached[E]) Get(id uint32) Option[E] {
	i := s.slot(id)
	if s.ids[i] == uint64(id)+1 {
		return Some(s.vals[i])
	}
	v := s.backing.Get(id)
	if x, ok := v.Value(); ok {
		s.fill(id, x)
	}
	return v
}

// GetUnsafe returns the component for id. Precondition: Exists(id).
func (s *Cached[E]) GetUnsafe(id uint32) E {
	i := s.slot(id)
	if s.ids[i] == uint64(id)+1 {
		return s.vals[i]
	}
	v := s.backing.GetUnsafe(id)
	s.fill(id, v)
	return v
}

// Set writes through to the backing store and refreshes the cache slot.
func (s *Cached[E]) Set(id uint32, value E) {
	s.backing.Set(id, value)
	s.fill(id, value)
}

// SetMaybe writes if value is present, destroys if absent.
func (s *Cached[E]) SetMaybe(id uint32, value Option[E]) {
	if v, ok := value.Value(); ok {
		s.Set(id, v)
	} else {
		s.Destroy(id)
	}
}

// Destroy removes the component from the backing store and the cache.
func (s *Cached[E]) Destroy(id uint32) {
	s.backing.Destroy(id)
	s.invalidate(id)
}

// Exists reports whether id holds a component.
func (s *Cached[E]) Exists(id uint32) bool {
	if s.ids[s.slot(id)] == uint64(id)+1 {
		return true
	}
	return s.backing.Exists(id)
}

// Members returns the backing store's membership snapshot.
func (s *Cached[E]) Members() Slice[E] {
	return s.backing.Members()
}

// reset clears the cache and all members of the backing store.
func (s *Cached[E]) reset() {
	Reset(s.backing)
	clear(s.ids)
	var zero E
	for i := range s.vals {
		s.vals[i] = zero
	}
}
