package apecs

// Maybe wraps a store and presents its component as always structurally
// present with an optional payload: every entity is a member, and reads
// report through the Option whether the underlying store actually holds
// data. Writing an absent option destroys the underlying component; writing
// a present one sets it.
//
// Like Not, the membership is logically the whole id space and is not
// enumerable; Members returns nil. Maybe stores are meant for point access
// and join refinement ("this component, if it has one"), not for bulk
// iteration.
type Maybe[E any] struct {
	inner Store[E]
}

// NewMaybe wraps s in an optional-presence store. The wrapper owns no
// storage; it shares the lifetime of s.
func NewMaybe[E any](s Store[E]) *Maybe[E] {
	return &Maybe[E]{inner: s}
}

// Get always succeeds; the inner Option reports underlying presence.
func (s *Maybe[E]) Get(id uint32) Option[Option[E]] {
	return Some(s.inner.Get(id))
}

// GetUnsafe is total for this store: it returns the underlying value
// wrapped in Some, or an absent Option when id holds nothing.
func (s *Maybe[E]) GetUnsafe(id uint32) Option[E] {
	return s.inner.Get(id)
}

// Set writes x into the underlying store when value is Some(x) and destroys
// the underlying component when value is absent.
func (s *Maybe[E]) Set(id uint32, value Option[E]) {
	if v, ok := value.Value(); ok {
		s.inner.Set(id, v)
	} else {
		s.inner.Destroy(id)
	}
}

// SetMaybe unwraps the outer option: present means Set, absent means
// Destroy.
func (s *Maybe[E]) SetMaybe(id uint32, value Option[Option[E]]) {
	if v, ok := value.Value(); ok {
		s.Set(id, v)
	} else {
		s.Destroy(id)
	}
}

// Destroy routes to the underlying store, consistent with Set of an absent
// option.
func (s *Maybe[E]) Destroy(id uint32) {
	s.inner.Destroy(id)
}

// Exists always reports true: the optional component is structurally
// present for every entity.
func (s *Maybe[E]) Exists(id uint32) bool {
	return true
}

// Members returns nil: membership is logically the whole id space.
func (s *Maybe[E]) Members() Slice[Option[E]] {
	return nil
}
