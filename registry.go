package apecs

import (
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
)

// ComponentID is a unique identifier for a component type.
// Valid IDs range from 0 to 255.
type ComponentID uint8

// MaxComponents is the maximum number of component types supported.
const MaxComponents = 255

// componentRegistry manages component type registration with lock-free reads.
// Component IDs are assigned sequentially and cached for fast lookup.
// sync.Map provides lock-free reads for the hot path (resolving stores by
// component type) while still allowing safe concurrent registration.
type componentRegistry struct {
	// types maps reflect.Type to ComponentID using sync.Map for lock-free
	// reads. Types are registered once but looked up constantly.
	types sync.Map // map[reflect.Type]ComponentID

	// names, typesArr and hashes store component metadata indexed by
	// ComponentID. Written once during registration, read-only afterward.
	names    [MaxComponents]string
	typesArr [MaxComponents]reflect.Type
	hashes   [MaxComponents]uint64

	// nextID is the next available component ID.
	nextID atomic.Uint32

	// arrMu protects writes to the metadata arrays. Only needed during
	// registration, not for lookups.
	arrMu sync.RWMutex
}

// globalRegistry is the singleton component registry. IDs are process-wide;
// store instances are per world.
var globalRegistry = &componentRegistry{}

// registerComponentType registers a component type and returns its ID.
// Called automatically when a component type is first bound or resolved.
func registerComponentType(t reflect.Type) ComponentID {
	if id, ok := globalRegistry.types.Load(t); ok {
		return id.(ComponentID)
	}

	// Slow path: allocate an ID before attempting to register so each
	// attempt gets a unique one.
	newID := ComponentID(globalRegistry.nextID.Add(1) - 1)
	if newID >= MaxComponents {
		panic(fmt.Sprintf("apecs: component limit exceeded (max %d types)", MaxComponents))
	}

	// LoadOrStore ensures only one goroutine wins if several register the
	// same type simultaneously; a losing goroutine's allocated ID is wasted,
	// which is rare and harmless.
	actual, loaded := globalRegistry.types.LoadOrStore(t, newID)
	if loaded {
		return actual.(ComponentID)
	}

	globalRegistry.arrMu.Lock()
	globalRegistry.names[newID] = t.Name()
	globalRegistry.typesArr[newID] = t
	globalRegistry.hashes[newID] = xxhash.Sum64String(t.PkgPath() + "." + t.String())
	globalRegistry.arrMu.Unlock()

	return newID
}

// componentID returns the ComponentID for type T, registering it if needed.
func componentID[C any]() ComponentID {
	return registerComponentType(reflect.TypeOf((*C)(nil)).Elem())
}

// ComponentName returns the name of the component type with the given ID.
func ComponentName(id ComponentID) string {
	globalRegistry.arrMu.RLock()
	defer globalRegistry.arrMu.RUnlock()
	return globalRegistry.names[id]
}

// ComponentTypeOf returns the reflect.Type of the component with the given ID.
func ComponentTypeOf(id ComponentID) reflect.Type {
	globalRegistry.arrMu.RLock()
	defer globalRegistry.arrMu.RUnlock()
	return globalRegistry.typesArr[id]
}

// ComponentHash returns a stable 64-bit hash of the component type with the
// given ID, derived from its fully qualified name. Collaborators that
// persist or exchange component data can compare hashes to detect type
// drift between builds.
func ComponentHash(id ComponentID) uint64 {
	globalRegistry.arrMu.RLock()
	defer globalRegistry.arrMu.RUnlock()
	return globalRegistry.hashes[id]
}

// RegisteredComponentCount returns the number of registered component types.
func RegisteredComponentCount() int {
	return int(globalRegistry.nextID.Load())
}
