package apecs

// DenseStore backs a component with a sparse set: a dense array of values
// paired with a dense array of ids, plus a sparse index from id to dense
// slot. All point operations are O(1); removal swaps the last element into
// the vacated slot, so iteration order changes on destroy.
//
// Best suited to components held by most live entities, where the dense
// arrays keep traversal cache-friendly.
type DenseStore[E any] struct {
	sparse   []int32 // id -> dense index, -1 when absent
	denseIDs []uint32
	denseVal []E
}

// NewDenseStore allocates a fresh, empty sparse-set store with room for ids
// below capacity before the sparse index has to grow.
func NewDenseStore[E any](capacity int) *DenseStore[E] {
	if capacity < 0 {
		capacity = 0
	}
	sparse := make([]int32, capacity)
	for i := range sparse {
		sparse[i] = -1
	}
	return &DenseStore[E]{sparse: sparse}
}

// grow extends the sparse index to cover id.
func (s *DenseStore[E]) grow(id uint32) {
	for uint32(len(s.sparse)) <= id {
		s.sparse = append(s.sparse, -1)
	}
}

// Get returns the component for id, or an absent Option.
func (s *DenseStore[E]) Get(id uint32) Option[E] {
	if !s.Exists(id) {
		return None[E]()
	}
	return Some(s.denseVal[s.sparse[id]])
}

// GetUnsafe returns the component for id. Precondition: Exists(id).
// Violating the precondition reads an arbitrary slot or panics on a bounds
// check; callers must guard with Exists or use Get.
func (s *DenseStore[E]) GetUnsafe(id uint32) E {
	return s.denseVal[s.sparse[id]]
}

// Set writes or overwrites the component for id.
func (s *DenseStore[E]) Set(id uint32, value E) {
	s.grow(id)
	if idx := s.sparse[id]; idx >= 0 {
		s.denseVal[idx] = value
		return
	}
	s.sparse[id] = int32(len(s.denseIDs))
	s.denseIDs = append(s.denseIDs, id)
	s.denseVal = append(s.denseVal, value)
}

// SetMaybe writes if value is present, destroys if absent.
func (s *DenseStore[E]) SetMaybe(id uint32, value Option[E]) {
	if v, ok := value.Value(); ok {
		s.Set(id, v)
	} else {
		s.Destroy(id)
	}
}

// Destroy removes the component for id by swapping the last dense element
// into its slot. Destroying an absent id is a no-op.
func (s *DenseStore[E]) Destroy(id uint32) {
	if !s.Exists(id) {
		return
	}
	idx := s.sparse[id]
	last := int32(len(s.denseIDs) - 1)
	lastID := s.denseIDs[last]

	s.denseIDs[idx] = lastID
	s.denseVal[idx] = s.denseVal[last]
	s.sparse[lastID] = idx

	s.denseIDs = s.denseIDs[:last]
	s.denseVal = s.denseVal[:last]
	s.sparse[id] = -1
}

// Exists reports whether id holds a component.
func (s *DenseStore[E]) Exists(id uint32) bool {
	return id < uint32(len(s.sparse)) && s.sparse[id] >= 0
}

// Members returns a snapshot of the current membership set.
func (s *DenseStore[E]) Members() Slice[E] {
	out := make(Slice[E], len(s.denseIDs))
	copy(out, s.denseIDs)
	return out
}

// Len returns the number of members without allocating a snapshot.
func (s *DenseStore[E]) Len() int {
	return len(s.denseIDs)
}

// reset clears all members in one step, keeping the sparse index allocation.
func (s *DenseStore[E]) reset() {
	for _, id := range s.denseIDs {
		s.sparse[id] = -1
	}
	s.denseIDs = s.denseIDs[:0]
	s.denseVal = s.denseVal[:0]
}
