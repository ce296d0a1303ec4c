package apecs

// Entity is a handle to a logical "thing" in a world, tagged with the
// component type C it was obtained for. The tag exists only at compile time
// to guide call sites; it carries no runtime representation and is never
// enforced. Two entities are equal iff their underlying integers are equal,
// regardless of tag.
type Entity[C any] uint32

// ID returns the raw integer identifier of the entity.
// Store primitives are addressed by raw ids; the tag is a call-site layer.
func (e Entity[C]) ID() uint32 {
	return uint32(e)
}

// Retag reinterprets an entity handle obtained for one component type as a
// handle for another. The conversion is always explicit and always succeeds;
// tags are hints, not capabilities.
//
// Usage:
//
//	pos := apecs.Retag[Position](velEntity)
func Retag[To, From any](e Entity[From]) Entity[To] {
	return Entity[To](e)
}

// Slice is an unordered set of entity identifiers, tagged like Entity and
// backed by a compact integer sequence. Duplicates are tolerated but
// meaningless.
type Slice[C any] []uint32

// Concat combines any number of slices by concatenation.
// The empty slice is the identity element.
func Concat[C any](slices ...Slice[C]) Slice[C] {
	total := 0
	for _, s := range slices {
		total += len(s)
	}
	if total == 0 {
		return nil
	}
	out := make(Slice[C], 0, total)
	for _, s := range slices {
		out = append(out, s...)
	}
	return out
}

// RetagSlice reinterprets a slice of entity ids under a different tag.
func RetagSlice[To, From any](s Slice[From]) Slice[To] {
	return Slice[To](s)
}

// Contains reports whether id is present in the slice.
func (s Slice[C]) Contains(id uint32) bool {
	for _, v := range s {
		if v == id {
			return true
		}
	}
	return false
}
