package apecs

// Store is the contract every backing structure implements for exactly one
// component type. A store owns all component data for that type across the
// whole entity space; no other component shares its storage.
//
// All primitives are addressed by raw uint32 ids. The Entity tag is a
// call-site safety layer above this contract, not part of it.
//
// Membership invariant: Members and Exists must never diverge — Members is
// always exactly the set of ids for which Exists holds. Enumerable backends
// return a fresh, non-nil (possibly empty) snapshot from Members; derived
// stores whose membership is not enumerable (Not, Maybe, Global) return nil.
//
// Concurrency:
// Stores assume a single logical thread of control per world. Callers that
// touch the same store from multiple goroutines must synchronize externally.
type Store[E any] interface {
	// Get is the safe read: it reports absence through the Option rather
	// than failing, and can never crash the caller.
	Get(id uint32) Option[E]

	// GetUnsafe reads the component for id with the unchecked precondition
	// that Exists(id) holds. Calling it on an absent id is a programming
	// error with unspecified behavior, not a recoverable condition; guard
	// with Exists first or use Get.
	GetUnsafe(id uint32) E

	// Set writes or overwrites the component for id. Afterwards Exists(id)
	// is true and Members includes id exactly once.
	Set(id uint32, value E)

	// SetMaybe writes if the option is present and destroys if it is
	// absent.
	SetMaybe(id uint32, value Option[E])

	// Destroy removes any component for id. Destroying an id that holds no
	// component is a no-op.
	Destroy(id uint32)

	// Exists reports whether id currently holds a component. It is always
	// consistent with Members.
	Exists(id uint32) bool

	// Members returns the current exact membership set as a snapshot taken
	// at the instant of the call. No ordering is guaranteed across calls.
	Members() Slice[E]
}

// GlobalStore refines Store for backends whose reads never fail: the
// component is structurally always present, so no absence representation is
// needed. Used for singleton "global" component stores.
type GlobalStore[E any] interface {
	Store[E]

	// Value reads the stored value directly, without an entity id.
	Value() E
}

// resetter is the optional fast path picked up by Reset. Backends implement
// it when clearing all members is asymptotically cheaper than per-member
// destroys.
type resetter interface {
	reset()
}

// Reset destroys every current member of the store.
// Resetting an empty store is a no-op.
func Reset[E any](s Store[E]) {
	if r, ok := s.(resetter); ok {
		r.reset()
		return
	}
	for _, id := range s.Members() {
		s.Destroy(id)
	}
}

// ForEachID invokes f for every id in a snapshot of Members taken at call
// start. Membership changes performed by f do not affect which ids are
// visited in this traversal.
func ForEachID[E any](s Store[E], f func(id uint32)) {
	for _, id := range s.Members() {
		f(id)
	}
}

// ForEach invokes f with each member id and its value, over a snapshot of
// Members taken at call start. Ids destroyed by an earlier f call in the
// same traversal are skipped rather than read unsafely.
func ForEach[E any](s Store[E], f func(id uint32, v E)) {
	for _, id := range s.Members() {
		if !s.Exists(id) {
			continue
		}
		f(id, s.GetUnsafe(id))
	}
}

// ForEachValue invokes f with the value of every member, over a snapshot of
// Members taken at call start.
func ForEachValue[E any](s Store[E], f func(v E)) {
	ForEach(s, func(_ uint32, v E) { f(v) })
}

// Modify applies f to the component for id and writes the result back.
// If id holds no component the call is a no-op. Not atomic with respect to
// concurrent mutators.
func Modify[E any](s Store[E], id uint32, f func(E) E) {
	if !s.Exists(id) {
		return
	}
	s.Set(id, f(s.GetUnsafe(id)))
}

// MapValues applies Modify(s, id, f) for every id in a snapshot of Members.
func MapValues[E any](s Store[E], f func(E) E) {
	for _, id := range s.Members() {
		Modify(s, id, f)
	}
}
