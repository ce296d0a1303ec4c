package apecs

// MapStore backs a component with a hash map from entity id to value. It is
// the default backend: no preallocation, reasonable at any density, no
// ordering guarantees.
type MapStore[E any] struct {
	data map[uint32]E
}

// NewMapStore allocates a fresh, empty map-backed store.
func NewMapStore[E any]() *MapStore[E] {
	return &MapStore[E]{data: make(map[uint32]E)}
}

// Get returns the component for id, or an absent Option.
func (s *MapStore[E]) Get(id uint32) Option[E] {
	if v, ok := s.data[id]; ok {
		return Some(v)
	}
	return None[E]()
}

// GetUnsafe returns the component for id. Precondition: Exists(id).
// On an absent id it returns the zero value of E.
func (s *MapStore[E]) GetUnsafe(id uint32) E {
	return s.data[id]
}

// Set writes or overwrites the component for id.
func (s *MapStore[E]) Set(id uint32, value E) {
	s.data[id] = value
}

// SetMaybe writes if value is present, destroys if absent.
func (s *MapStore[E]) SetMaybe(id uint32, value Option[E]) {
	if v, ok := value.Value(); ok {
		s.Set(id, v)
	} else {
		s.Destroy(id)
	}
}

// Destroy removes the component for id, if any.
func (s *MapStore[E]) Destroy(id uint32) {
	delete(s.data, id)
}

// Exists reports whether id holds a component.
func (s *MapStore[E]) Exists(id uint32) bool {
	_, ok := s.data[id]
	return ok
}

// Members returns a snapshot of the current membership set.
func (s *MapStore[E]) Members() Slice[E] {
	out := make(Slice[E], 0, len(s.data))
	for id := range s.data {
		out = append(out, id)
	}
	return out
}

// reset clears all members in one step.
func (s *MapStore[E]) reset() {
	clear(s.data)
}
