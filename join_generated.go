package apecs

// Fixed-arity join stores over 2 to 6 component stores. The arities are
// mechanically identical; practically 2-6 covers all call sites, so the
// instances are written out rather than built through a variadic mechanism.

// smallestMemberSet returns the index of the shortest non-nil member set,
// or -1 if every set is nil (no joined store is enumerable).
func smallestMemberSet(sets ...[]uint32) int {
	best := -1
	for i, s := range sets {
		if s == nil {
			continue
		}
		if best < 0 || len(s) < len(sets[best]) {
			best = i
		}
	}
	return best
}

// Tuple2 holds one value per joined component: T1, T2.
type Tuple2[T1 any, T2 any] struct {
	V1 T1
	V2 T2
}

// Join2 presents 2 stores as a single store whose element is a Tuple2 and
// whose membership is the intersection of the 2 member sets. The join owns
// no storage of its own; every operation routes to the wrapped stores.
//
// Members iterates the smallest enumerable member set and filters it
// against the rest, so intersecting a small store with a large one costs
// proportional to the small one. Joining only non-enumerable stores (Not,
// Maybe, Global) yields nil.
type Join2[T1 any, T2 any] struct {
	S1 Store[T1]
	S2 Store[T2]
}

// NewJoin2 joins the 2 stores s1, s2.
func NewJoin2[T1 any, T2 any](s1 Store[T1], s2 Store[T2]) *Join2[T1, T2] {
	return &Join2[T1, T2]{S1: s1, S2: s2}
}

// Exists reports whether id is a member of all 2 underlying stores.
func (j *Join2[T1, T2]) Exists(id uint32) bool {
	return j.S1.Exists(id) && j.S2.Exists(id)
}

// Get returns the assembled tuple for id, or an absent Option when id is
// missing from any underlying store.
func (j *Join2[T1, T2]) Get(id uint32) Option[Tuple2[T1, T2]] {
	if !j.Exists(id) {
		return None[Tuple2[T1, T2]]()
	}
	return Some(j.GetUnsafe(id))
}

// GetUnsafe assembles the tuple for id. Precondition: id exists in the
// intersection.
func (j *Join2[T1, T2]) GetUnsafe(id uint32) Tuple2[T1, T2] {
	return Tuple2[T1, T2]{
		V1: j.S1.GetUnsafe(id),
		V2: j.S2.GetUnsafe(id),
	}
}

// Set writes each tuple field to its underlying store. The fields are
// independent after the call; no cross-field invariant is implied.
func (j *Join2[T1, T2]) Set(id uint32, value Tuple2[T1, T2]) {
	j.S1.Set(id, value.V1)
	j.S2.Set(id, value.V2)
}

// SetMaybe writes the tuple if present, destroys in every underlying store
// if absent.
func (j *Join2[T1, T2]) SetMaybe(id uint32, value Option[Tuple2[T1, T2]]) {
	if v, ok := value.Value(); ok {
		j.Set(id, v)
	} else {
		j.Destroy(id)
	}
}

// Destroy removes id from every underlying store.
func (j *Join2[T1, T2]) Destroy(id uint32) {
	j.S1.Destroy(id)
	j.S2.Destroy(id)
}

// Members returns the intersection of the underlying member sets.
func (j *Join2[T1, T2]) Members() Slice[Tuple2[T1, T2]] {
	sets := [][]uint32{[]uint32(j.S1.Members()), []uint32(j.S2.Members())}
	k := smallestMemberSet(sets...)
	if k < 0 {
		return nil
	}
	out := make(Slice[Tuple2[T1, T2]], 0, len(sets[k]))
	for _, id := range sets[k] {
		if j.Exists(id) {
			out = append(out, id)
		}
	}
	return out
}

// Tuple3 holds one value per joined component: T1, T2, T3.
type Tuple3[T1 any, T2 any, T3 any] struct {
	V1 T1
	V2 T2
	V3 T3
}

// Join3 presents 3 stores as a single store whose element is a Tuple3 and
// whose membership is the intersection of the 3 member sets. See Join2 for
// the shared semantics.
type Join3[T1 any, T2 any, T3 any] struct {
	S1 Store[T1]
	S2 Store[T2]
	S3 Store[T3]
}

// NewJoin3 joins the 3 stores s1, s2, s3.
func NewJoin3[T1 any, T2 any, T3 any](s1 Store[T1], s2 Store[T2], s3 Store[T3]) *Join3[T1, T2, T3] {
	return &Join3[T1, T2, T3]{S1: s1, S2: s2, S3: s3}
}

// Exists reports whether id is a member of all 3 underlying stores.
func (j *Join3[T1, T2, T3]) Exists(id uint32) bool {
	return j.S1.Exists(id) && j.S2.Exists(id) && j.S3.Exists(id)
}

// Get returns the assembled tuple for id, or an absent Option when id is
// missing from any underlying store.
func (j *Join3[T1, T2, T3]) Get(id uint32) Option[Tuple3[T1, T2, T3]] {
	if !j.Exists(id) {
		return None[Tuple3[T1, T2, T3]]()
	}
	return Some(j.GetUnsafe(id))
}

// GetUnsafe assembles the tuple for id. Precondition: id exists in the
// intersection.
func (j *Join3[T1, T2, T3]) GetUnsafe(id uint32) Tuple3[T1, T2, T3] {
	return Tuple3[T1, T2, T3]{
		V1: j.S1.GetUnsafe(id),
		V2: j.S2.GetUnsafe(id),
		V3: j.S3.GetUnsafe(id),
	}
}

// Set writes each tuple field to its underlying store.
func (j *Join3[T1, T2, T3]) Set(id uint32, value Tuple3[T1, T2, T3]) {
	j.S1.Set(id, value.V1)
	j.S2.Set(id, value.V2)
	j.S3.Set(id, value.V3)
}

// SetMaybe writes the tuple if present, destroys in every underlying store
// if absent.
func (j *Join3[T1, T2, T3]) SetMaybe(id uint32, value Option[Tuple3[T1, T2, T3]]) {
	if v, ok := value.Value(); ok {
		j.Set(id, v)
	} else {
		j.Destroy(id)
	}
}

// Destroy removes id from every underlying store.
func (j *Join3[T1, T2, T3]) Destroy(id uint32) {
	j.S1.Destroy(id)
	j.S2.Destroy(id)
	j.S3.Destroy(id)
}

// Members returns the intersection of the underlying member sets.
func (j *Join3[T1, T2, T3]) Members() Slice[Tuple3[T1, T2, T3]] {
	sets := [][]uint32{[]uint32(j.S1.Members()), []uint32(j.S2.Members()), []uint32(j.S3.Members())}
	k := smallestMemberSet(sets...)
	if k < 0 {
		return nil
	}
	out := make(Slice[Tuple3[T1, T2, T3]], 0, len(sets[k]))
	for _, id := range sets[k] {
		if j.Exists(id) {
			out = append(out, id)
		}
	}
	return out
}

// Tuple4 holds one value per joined component: T1, T2, T3, T4.
type Tuple4[T1 any, T2 any, T3 any, T4 any] struct {
	V1 T1
	V2 T2
	V3 T3
	V4 T4
}

// Join4 presents 4 stores as a single store whose element is a Tuple4 and
// whose membership is the intersection of the 4 member sets. See Join2 for
// the shared semantics.
type Join4[T1 any, T2 any, T3 any, T4 any] struct {
	S1 Store[T1]
	S2 Store[T2]
	S3 Store[T3]
	S4 Store[T4]
}

// NewJoin4 joins the 4 stores s1, s2, s3, s4.
func NewJoin4[T1 any, T2 any, T3 any, T4 any](s1 Store[T1], s2 Store[T2], s3 Store[T3], s4 Store[T4]) *Join4[T1, T2, T3, T4] {
	return &Join4[T1, T2, T3, T4]{S1: s1, S2: s2, S3: s3, S4: s4}
}

// Exists reports whether id is a member of all 4 underlying stores.
func (j *Join4[T1, T2, T3, T4]) Exists(id uint32) bool {
	return j.S1.Exists(id) && j.S2.Exists(id) && j.S3.Exists(id) && j.S4.Exists(id)
}

// Get returns the assembled tuple for id, or an absent Option when id is
// missing from any underlying store.
func (j *Join4[T1, T2, T3, T4]) Get(id uint32) Option[Tuple4[T1, T2, T3, T4]] {
	if !j.Exists(id) {
		return None[Tuple4[T1, T2, T3, T4]]()
	}
	return Some(j.GetUnsafe(id))
}

// GetUnsafe assembles the tuple for id. Precondition: id exists in the
// intersection.
func (j *Join4[T1, T2, T3, T4]) GetUnsafe(id uint32) Tuple4[T1, T2, T3, T4] {
	return Tuple4[T1, T2, T3, T4]{
		V1: j.S1.GetUnsafe(id),
		V2: j.S2.GetUnsafe(id),
		V3: j.S3.GetUnsafe(id),
		V4: j.S4.GetUnsafe(id),
	}
}

// Set writes each tuple field to its underlying store.
func (j *Join4[T1, T2, T3, T4]) Set(id uint32, value Tuple4[T1, T2, T3, T4]) {
	j.S1.Set(id, value.V1)
	j.S2.Set(id, value.V2)
	j.S3.Set(id, value.V3)
	j.S4.Set(id, value.V4)
}

// SetMaybe writes the tuple if present, destroys in every underlying store
// if absent.
func (j *Join4[T1, T2, T3, T4]) SetMaybe(id uint32, value Option[Tuple4[T1, T2, T3, T4]]) {
	if v, ok := value.Value(); ok {
		j.Set(id, v)
	} else {
		j.Destroy(id)
	}
}

// Destroy removes id from every underlying store.
func (j *Join4[T1, T2, T3, T4]) Destroy(id uint32) {
	j.S1.Destroy(id)
	j.S2.Destroy(id)
	j.S3.Destroy(id)
	j.S4.Destroy(id)
}

// Members returns the intersection of the underlying member sets.
func (j *Join4[T1, T2, T3, T4]) Members() Slice[Tuple4[T1, T2, T3, T4]] {
	sets := [][]uint32{
		[]uint32(j.S1.Members()), []uint32(j.S2.Members()),
		[]uint32(j.S3.Members()), []uint32(j.S4.Members()),
	}
	k := smallestMemberSet(sets...)
	if k < 0 {
		return nil
	}
	out := make(Slice[Tuple4[T1, T2, T3, T4]], 0, len(sets[k]))
	for _, id := range sets[k] {
		if j.Exists(id) {
			out = append(out, id)
		}
	}
	return out
}

// Tuple5 holds one value per joined component: T1, T2, T3, T4, T5.
type Tuple5[T1 any, T2 any, T3 any, T4 any, T5 any] struct {
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
}

// Join5 presents 5 stores as a single store whose element is a Tuple5 and
// whose membership is the intersection of the 5 member sets. See Join2 for
// the shared semantics.
type Join5[T1 any, T2 any, T3 any, T4 any, T5 any] struct {
	S1 Store[T1]
	S2 Store[T2]
	S3 Store[T3]
	S4 Store[T4]
	S5 Store[T5]
}

// NewJoin5 joins the 5 stores s1, s2, s3, s4, s5.
func NewJoin5[T1 any, T2 any, T3 any, T4 any, T5 any](s1 Store[T1], s2 Store[T2], s3 Store[T3], s4 Store[T4], s5 Store[T5]) *Join5[T1, T2, T3, T4, T5] {
	return &Join5[T1, T2, T3, T4, T5]{S1: s1, S2: s2, S3: s3, S4: s4, S5: s5}
}

// Exists reports whether id is a member of all 5 underlying stores.
func (j *Join5[T1, T2, T3, T4, T5]) Exists(id uint32) bool {
	return j.S1.Exists(id) && j.S2.Exists(id) && j.S3.Exists(id) &&
		j.S4.Exists(id) && j.S5.Exists(id)
}

// Get returns the assembled tuple for id, or an absent Option when id is
// missing from any underlying store.
func (j *Join5[T1, T2, T3, T4, T5]) Get(id uint32) Option[Tuple5[T1, T2, T3, T4, T5]] {
	if !j.Exists(id) {
		return None[Tuple5[T1, T2, T3, T4, T5]]()
	}
	return Some(j.GetUnsafe(id))
}

// GetUnsafe assembles the tuple for id. Precondition: id exists in the
// intersection.
func (j *Join5[T1, T2, T3, T4, T5]) GetUnsafe(id uint32) Tuple5[T1, T2, T3, T4, T5] {
	return Tuple5[T1, T2, T3, T4, T5]{
		V1: j.S1.GetUnsafe(id),
		V2: j.S2.GetUnsafe(id),
		V3: j.S3.GetUnsafe(id),
		V4: j.S4.GetUnsafe(id),
		V5: j.S5.GetUnsafe(id),
	}
}

// Set writes each tuple field to its underlying store.
func (j *Join5[T1, T2, T3, T4, T5]) Set(id uint32, value Tuple5[T1, T2, T3, T4, T5]) {
	j.S1.Set(id, value.V1)
	j.S2.Set(id, value.V2)
	j.S3.Set(id, value.V3)
	j.S4.Set(id, value.V4)
	j.S5.Set(id, value.V5)
}

// SetMaybe writes the tuple if present, destroys in every underlying store
// if absent.
func (j *Join5[T1, T2, T3, T4, T5]) SetMaybe(id uint32, value Option[Tuple5[T1, T2, T3, T4, T5]]) {
	if v, ok := value.Value(); ok {
		j.Set(id, v)
	} else {
		j.Destroy(id)
	}
}

// Destroy removes id from every underlying store.
func (j *Join5[T1, T2, T3, T4, T5]) Destroy(id uint32) {
	j.S1.Destroy(id)
	j.S2.Destroy(id)
	j.S3.Destroy(id)
	j.S4.Destroy(id)
	j.S5.Destroy(id)
}

// Members returns the intersection of the underlying member sets.
func (j *Join5[T1, T2, T3, T4, T5]) Members() Slice[Tuple5[T1, T2, T3, T4, T5]] {
	sets := [][]uint32{
		[]uint32(j.S1.Members()), []uint32(j.S2.Members()),
		[]uint32(j.S3.Members()), []uint32(j.S4.Members()),
		[]uint32(j.S5.Members()),
	}
	k := smallestMemberSet(sets...)
	if k < 0 {
		return nil
	}
	out := make(Slice[Tuple5[T1, T2, T3, T4, T5]], 0, len(sets[k]))
	for _, id := range sets[k] {
		if j.Exists(id) {
			out = append(out, id)
		}
	}
	return out
}

// Tuple6 holds one value per joined component: T1, T2, T3, T4, T5, T6.
type Tuple6[T1 any, T2 any, T3 any, T4 any, T5 any, T6 any] struct {
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
	V6 T6
}

// Join6 presents 6 stores as a single store whose element is a Tuple6 and
// whose membership is the intersection of the 6 member sets. See Join2 for
// the shared semantics.
type Join6[T1 any, T2 any, T3 any, T4 any, T5 any, T6 any] struct {
	S1 Store[T1]
	S2 Store[T2]
	S3 Store[T3]
	S4 Store[T4]
	S5 Store[T5]
	S6 Store[T6]
}

// NewJoin6 joins the 6 stores s1, s2, s3, s4, s5, s6.
func NewJoin6[T1 any, T2 any, T3 any, T4 any, T5 any, T6 any](s1 Store[T1], s2 Store[T2], s3 Store[T3], s4 Store[T4], s5 Store[T5], s6 Store[T6]) *Join6[T1, T2, T3, T4, T5, T6] {
	return &Join6[T1, T2, T3, T4, T5, T6]{S1: s1, S2: s2, S3: s3, S4: s4, S5: s5, S6: s6}
}

// Exists reports whether id is a member of all 6 underlying stores.
func (j *Join6[T1, T2, T3, T4, T5, T6]) Exists(id uint32) bool {
	return j.S1.Exists(id) && j.S2.Exists(id) && j.S3.Exists(id) &&
		j.S4.Exists(id) && j.S5.Exists(id) && j.S6.Exists(id)
}

// Get returns the assembled tuple for id, or an absent Option when id is
// missing from any underlying store.
func (j *Join6[T1, T2, T3, T4, T5, T6]) Get(id uint32) Option[Tuple6[T1, T2, T3, T4, T5, T6]] {
	if !j.Exists(id) {
		return None[Tuple6[T1, T2, T3, T4, T5, T6]]()
	}
	return Some(j.GetUnsafe(id))
}

// GetUnsafe assembles the tuple for id. Precondition: id exists in the
// intersection.
func (j *Join6[T1, T2, T3, T4, T5, T6]) GetUnsafe(id uint32) Tuple6[T1, T2, T3, T4, T5, T6] {
	return Tuple6[T1, T2, T3, T4, T5, T6]{
		V1: j.S1.GetUnsafe(id),
		V2: j.S2.GetUnsafe(id),
		V3: j.S3.GetUnsafe(id),
		V4: j.S4.GetUnsafe(id),
		V5: j.S5.GetUnsafe(id),
		V6: j.S6.GetUnsafe(id),
	}
}

// Set writes each tuple field to its underlying store.
func (j *Join6[T1, T2, T3, T4, T5, T6]) Set(id uint32, value Tuple6[T1, T2, T3, T4, T5, T6]) {
	j.S1.Set(id, value.V1)
	j.S2.Set(id, value.V2)
	j.S3.Set(id, value.V3)
	j.S4.Set(id, value.V4)
	j.S5.Set(id, value.V5)
	j.S6.Set(id, value.V6)
}

// SetMaybe writes the tuple if present, destroys in every underlying store
// if absent.
func (j *Join6[T1, T2, T3, T4, T5, T6]) SetMaybe(id uint32, value Option[Tuple6[T1, T2, T3, T4, T5, T6]]) {
	if v, ok := value.Value(); ok {
		j.Set(id, v)
	} else {
		j.Destroy(id)
	}
}

// Destroy removes id from every underlying store.
func (j *Join6[T1, T2, T3, T4, T5, T6]) Destroy(id uint32) {
	j.S1.Destroy(id)
	j.S2.Destroy(id)
	j.S3.Destroy(id)
	j.S4.Destroy(id)
	j.S5.Destroy(id)
	j.S6.Destroy(id)
}

// Members returns the intersection of the underlying member sets.
func (j *Join6[T1, T2, T3, T4, T5, T6]) Members() Slice[Tuple6[T1, T2, T3, T4, T5, T6]] {
	sets := [][]uint32{
		[]uint32(j.S1.Members()), []uint32(j.S2.Members()),
		[]uint32(j.S3.Members()), []uint32(j.S4.Members()),
		[]uint32(j.S5.Members()), []uint32(j.S6.Members()),
	}
	k := smallestMemberSet(sets...)
	if k < 0 {
		return nil
	}
	out := make(Slice[Tuple6[T1, T2, T3, T4, T5, T6]], 0, len(sets[k]))
	for _, id := range sets[k] {
		if j.Exists(id) {
			out = append(out, id)
		}
	}
	return out
}
