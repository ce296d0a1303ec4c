package apecs

// Hooks carries callbacks fired when a wrapped store mutates. Either
// callback may be nil.
type Hooks[E any] struct {
	// OnSet fires after a component is written or overwritten.
	OnSet func(id uint32, value E)

	// OnDestroy fires after a component is removed. It does not fire for
	// destroys of ids that held nothing.
	OnDestroy func(id uint32)
}

// Hooked decorates a store with mutation callbacks, for callers that need
// to react to component attach and detach without polling. The wrapper owns
// no storage and adds no synchronization; hooks run on the mutating
// goroutine.
type Hooked[E any] struct {
	inner Store[E]
	hooks Hooks[E]
}

// NewHooked wraps s so that hooks fire on every mutation routed through the
// wrapper. Mutations applied directly to s bypass the hooks.
func NewHooked[E any](s Store[E], hooks Hooks[E]) *Hooked[E] {
	return &Hooked[E]{inner: s, hooks: hooks}
}

// Get returns the component for id, or an absent Option.
func (s *Hooked[E]) Get(id uint32) Option[E] {
	return s.inner.Get(id)
}

// GetUnsafe returns the component for id. Precondition: Exists(id).
func (s *Hooked[E]) GetUnsafe(id uint32) E {
	return s.inner.GetUnsafe(id)
}

// Set writes the component and fires OnSet.
func (s *Hooked[E]) Set(id uint32, value E) {
	s.inner.Set(id, value)
	if s.hooks.OnSet != nil {
		s.hooks.OnSet(id, value)
	}
}

// SetMaybe writes if value is present, destroys if absent.
func (s *Hooked[E]) SetMaybe(id uint32, value Option[E]) {
	if v, ok := value.Value(); ok {
		s.Set(id, v)
	} else {
		s.Destroy(id)
	}
}

// Destroy removes the component and fires OnDestroy if something was
// actually removed.
func (s *Hooked[E]) Destroy(id uint32) {
	existed := s.inner.Exists(id)
	s.inner.Destroy(id)
	if existed && s.hooks.OnDestroy != nil {
		s.hooks.OnDestroy(id)
	}
}

// Exists reports whether id holds a component.
func (s *Hooked[E]) Exists(id uint32) bool {
	return s.inner.Exists(id)
}

// Members returns the underlying store's membership snapshot.
func (s *Hooked[E]) Members() Slice[E] {
	return s.inner.Members()
}
