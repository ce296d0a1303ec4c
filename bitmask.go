package apecs

import (
	"math/bits"
)

// Bitmask is a 256-bit bitmask tracking a set of component types by
// ComponentID. Worlds use it to record which component types have a bound
// store.
type Bitmask [4]uint64

// MaskFor returns a bitmask with the given component IDs set.
func MaskFor(ids ...ComponentID) Bitmask {
	var m Bitmask
	for _, id := range ids {
		m.Set(id)
	}
	return m
}

// Set sets the bit for the given component ID.
func (m *Bitmask) Set(id ComponentID) {
	m[id/64] |= 1 << (id % 64)
}

// Clear clears the bit for the given component ID.
func (m *Bitmask) Clear(id ComponentID) {
	m[id/64] &^= 1 << (id % 64)
}

// Has returns true if the bit for the given component ID is set.
func (m *Bitmask) Has(id ComponentID) bool {
	return m[id/64]&(1<<(id%64)) != 0
}

// ContainsAll returns true if all bits set in other are also set in m.
// Used to check that a world binds every component a caller requires.
func (m *Bitmask) ContainsAll(other Bitmask) bool {
	return (m[0]&other[0] == other[0]) &&
		(m[1]&other[1] == other[1]) &&
		(m[2]&other[2] == other[2]) &&
		(m[3]&other[3] == other[3])
}

// IsZero returns true if no bits are set.
func (m *Bitmask) IsZero() bool {
	return m[0] == 0 && m[1] == 0 && m[2] == 0 && m[3] == 0
}

// Count returns the number of bits set.
func (m *Bitmask) Count() int {
	return bits.OnesCount64(m[0]) +
		bits.OnesCount64(m[1]) +
		bits.OnesCount64(m[2]) +
		bits.OnesCount64(m[3])
}
