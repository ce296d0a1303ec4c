package apecs

// Option is a value that may be absent. It is the result type of safe reads
// (Store.Get) and the element type of Maybe stores: absence is communicated
// through the value, never through a panic or an error.
type Option[T any] struct {
	value T
	ok    bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None returns the absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Present reports whether the option holds a value.
func (o Option[T]) Present() bool {
	return o.ok
}

// Value returns the held value and whether it is present.
func (o Option[T]) Value() (T, bool) {
	return o.value, o.ok
}

// Must returns the held value. It panics if the option is absent; callers
// that have not already established presence should use Value.
func (o Option[T]) Must() T {
	if !o.ok {
		panic("apecs: Must called on absent Option")
	}
	return o.value
}

// OrElse returns the held value, or fallback if absent.
func (o Option[T]) OrElse(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}
