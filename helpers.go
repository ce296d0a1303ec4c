package apecs

// Tagged point operations layered above the raw store contract. Each one
// resolves the store for C through Has and addresses it with the entity's
// raw id; the Entity tag keeps call sites honest about which component a
// handle was produced for.

// Add writes component value c for entity e, overwriting any existing one.
func Add[C any](w *World, e Entity[C], c C) {
	Has[C](w).Set(e.ID(), c)
}

// Get returns entity e's component, or an absent Option.
func Get[C any](w *World, e Entity[C]) Option[C] {
	return Has[C](w).Get(e.ID())
}

// MustGet returns entity e's component. It panics if the entity holds no
// component of type C; callers that have not established presence should
// use Get.
func MustGet[C any](w *World, e Entity[C]) C {
	return Get(w, e).Must()
}

// Remove destroys entity e's component, if any.
func Remove[C any](w *World, e Entity[C]) {
	Has[C](w).Destroy(e.ID())
}

// Contains reports whether entity e holds a component of type C.
func Contains[C any](w *World, e Entity[C]) bool {
	return Has[C](w).Exists(e.ID())
}

// Update applies f to entity e's component and writes the result back.
// A no-op when the entity holds no component of type C.
func Update[C any](w *World, e Entity[C], f func(C) C) {
	Modify(Has[C](w), e.ID(), f)
}
