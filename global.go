package apecs

// Global backs a component that exists exactly once per world, independent
// of any entity: configuration blocks, counters, accumulated scores. Reads
// never fail, so Global implements the GlobalStore refinement.
//
// The entity id passed to point operations is ignored; every id reads and
// writes the same slot.
type Global[E any] struct {
	value E
}

// NewGlobal allocates a global store holding initial.
func NewGlobal[E any](initial E) *Global[E] {
	return &Global[E]{value: initial}
}

// Get returns the stored value. It is always present.
func (s *Global[E]) Get(id uint32) Option[E] {
	return Some(s.value)
}

// GetUnsafe returns the stored value. The precondition is vacuous: a global
// component always exists.
func (s *Global[E]) GetUnsafe(id uint32) E {
	return s.value
}

// Set overwrites the stored value.
func (s *Global[E]) Set(id uint32, value E) {
	s.value = value
}

// SetMaybe writes if value is present. A global component has no absence
// representation, so an absent option is a no-op.
func (s *Global[E]) SetMaybe(id uint32, value Option[E]) {
	if v, ok := value.Value(); ok {
		s.value = v
	}
}

// Destroy is a no-op: a global component is structurally always present.
func (s *Global[E]) Destroy(id uint32) {}

// Exists always reports true.
func (s *Global[E]) Exists(id uint32) bool {
	return true
}

// Members returns nil: membership is logically the whole id space and is
// not enumerable. Global stores are meant for point reads, not bulk
// iteration.
func (s *Global[E]) Members() Slice[E] {
	return nil
}

// Value reads the stored value directly, without an entity id.
func (s *Global[E]) Value() E {
	return s.value
}

// SetValue overwrites the stored value directly, without an entity id.
func (s *Global[E]) SetValue(value E) {
	s.value = value
}
