package apecs

// Absent is the element type of a Not store. It carries no data; holding it
// means "the underlying component is absent".
type Absent struct{}

// Not wraps a store and presents the complement of its membership: an
// entity is a member of Not(S) exactly when it is not a member of S.
// Writing to a Not store destroys the underlying component.
//
// The complement of a possibly unbounded id space is not enumerable, so
// Members returns nil. Not stores are intended for point existence tests
// and for membership refinement inside joins, not for bulk iteration.
type Not[E any] struct {
	inner Store[E]
}

// NewNot wraps s in a negation store. The wrapper owns no storage; it
// shares the lifetime of s.
func NewNot[E any](s Store[E]) *Not[E] {
	return &Not[E]{inner: s}
}

// Get returns the marker when the underlying component is absent.
func (s *Not[E]) Get(id uint32) Option[Absent] {
	if s.inner.Exists(id) {
		return None[Absent]()
	}
	return Some(Absent{})
}

// GetUnsafe returns the marker value; there is no data to fetch.
func (s *Not[E]) GetUnsafe(id uint32) Absent {
	return Absent{}
}

// Set destroys the underlying component: asserting the negation removes
// whatever it negates.
func (s *Not[E]) Set(id uint32, _ Absent) {
	s.inner.Destroy(id)
}

// SetMaybe destroys the underlying component when the option is present and
// does nothing when it is absent.
func (s *Not[E]) SetMaybe(id uint32, value Option[Absent]) {
	if value.Present() {
		s.inner.Destroy(id)
	}
}

// Destroy is a no-op. Removing a negation would mean inventing a value for
// the underlying component, which this store cannot do.
func (s *Not[E]) Destroy(id uint32) {}

// Exists reports whether the underlying component is absent.
func (s *Not[E]) Exists(id uint32) bool {
	return !s.inner.Exists(id)
}

// Members returns nil: the complement membership is not enumerable.
func (s *Not[E]) Members() Slice[Absent] {
	return nil
}
