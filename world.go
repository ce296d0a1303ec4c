package apecs

import (
	"fmt"
	"reflect"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// entityCounter is the built-in global component holding the next fresh
// entity id for a world.
type entityCounter struct {
	next uint32
}

// World owns the store instances produced by capability resolution: one
// live store per bound component type, created lazily on first resolution
// and kept for the lifetime of the world. The world itself holds no
// component data.
//
// Concurrency:
// A world assumes a single logical thread of control. Callers that resolve
// or mutate from several goroutines must synchronize externally.
type World struct {
	id   uuid.UUID
	log  *zap.Logger
	cfg  Config
	mask Bitmask

	factories [MaxComponents]func() any
	stores    [MaxComponents]any
}

// NewWorld creates a world with the default configuration and a no-op
// logger. Use NewBuilder for anything more elaborate.
func NewWorld() *World {
	return newWorld(DefaultConfig(), zap.NewNop())
}

func newWorld(cfg Config, log *zap.Logger) *World {
	w := &World{id: uuid.New(), log: log, cfg: cfg}

	// Every world carries its entity counter as a global component.
	Register(w, func() Store[entityCounter] {
		return NewGlobal(entityCounter{})
	})
	return w
}

// ID returns the unique identifier of this world instance.
func (w *World) ID() uuid.UUID {
	return w.id
}

// Config returns the configuration the world was built with.
func (w *World) Config() Config {
	return w.cfg
}

// Register binds component type C to a storage factory on this world. The
// factory runs at most once, on first resolution. Binding the same
// component twice on one world is a construction bug and panics.
func Register[C any](w *World, initStore func() Store[C]) {
	id := componentID[C]()
	if w.factories[id] != nil {
		panic(fmt.Sprintf("apecs: component %s already bound on this world", ComponentName(id)))
	}
	w.factories[id] = func() any { return initStore() }
	w.mask.Set(id)
	w.log.Debug("bound component store",
		zap.String("component", ComponentName(id)),
		zap.String("world", w.id.String()))
}

// Has resolves the live store for component C on world w. It is the sole
// path through which calling code obtains a store; stores are never
// constructed directly at call sites. Resolving a component with no binding
// is fatal — bindings are fixed at world construction.
func Has[C any](w *World) Store[C] {
	s, ok := TryHas[C](w)
	if !ok {
		panic(fmt.Sprintf("apecs: no store bound for component %s", reflect.TypeOf((*C)(nil)).Elem()))
	}
	return s
}

// TryHas resolves like Has but reports an unbound component instead of
// panicking.
func TryHas[C any](w *World) (Store[C], bool) {
	id := componentID[C]()
	if st := w.stores[id]; st != nil {
		return st.(Store[C]), true
	}
	f := w.factories[id]
	if f == nil {
		return nil, false
	}
	st := f().(Store[C])
	w.stores[id] = st
	if w.cfg.LogResolution {
		w.log.Debug("resolved component store",
			zap.String("component", ComponentName(id)),
			zap.String("world", w.id.String()))
	}
	return st, true
}

// NewEntity returns a fresh entity id, unique within this world. Ids are
// handed out monotonically; recycling destroyed ids is the business of an
// external allocator.
func (w *World) NewEntity() uint32 {
	c := Has[entityCounter](w)
	cur := c.GetUnsafe(0)
	c.Set(0, entityCounter{next: cur.next + 1})
	return cur.next
}

// NewEntityOf returns a fresh entity handle tagged for component C.
func NewEntityOf[C any](w *World) Entity[C] {
	return Entity[C](w.NewEntity())
}

// Satisfies reports whether this world binds a store for every component
// type in mask.
func (w *World) Satisfies(mask Bitmask) bool {
	return w.mask.ContainsAll(mask)
}

// Fingerprint returns a hash of the set of component types bound on this
// world, stable across runs for the same set. Collaborators that persist or
// exchange component data can compare fingerprints before trusting each
// other's payloads.
func (w *World) Fingerprint() uint64 {
	var h uint64
	for i := 0; i < RegisteredComponentCount(); i++ {
		id := ComponentID(i)
		if w.mask.Has(id) {
			h ^= ComponentHash(id)
		}
	}
	return h
}

// UseMap binds component C to a fresh MapStore.
func UseMap[C any](w *World) {
	Register(w, func() Store[C] { return NewMapStore[C]() })
}

// UseDense binds component C to a DenseStore preallocated to the world's
// configured initial capacity.
func UseDense[C any](w *World) {
	capacity := w.cfg.InitialCapacity
	Register(w, func() Store[C] { return NewDenseStore[C](capacity) })
}

// UseGlobal binds component C to a Global store holding initial.
func UseGlobal[C any](w *World, initial C) {
	Register(w, func() Store[C] { return NewGlobal(initial) })
}

// UseCachedMap binds component C to a MapStore behind a read cache with the
// world's configured slot count.
func UseCachedMap[C any](w *World) {
	size := w.cfg.CacheSize
	Register(w, func() Store[C] { return NewCached[C](NewMapStore[C](), size) })
}
