// Package apecs provides the storage abstraction layer of an
// Entity-Component-System framework: a uniform contract for mapping entity
// identifiers to per-component data, regardless of which backing structure
// a given component type uses.
//
// APECS provides:
//   - A Store contract every backing structure implements
//   - Map, dense sparse-set, global and cached reference backends
//   - Capability resolution: worlds produce the store for a component type
//   - Joins over 2-6 stores with intersected membership
//   - Not and Maybe derived stores for absence tests and optional payloads
//   - Phantom-tagged entity handles for call-site type safety
//
// # Quick Start
//
// Bind component types to storage when building a world:
//
//	w := apecs.NewBuilder().
//	    With(func(w *apecs.World) {
//	        apecs.UseDense[Position](w)
//	        apecs.UseMap[Health](w)
//	        apecs.UseGlobal[Score](w, Score{})
//	    }).
//	    Init()
//
// Obtain stores through capability resolution and work with them:
//
//	e := apecs.NewEntityOf[Position](w)
//	apecs.Add(w, e, Position{X: 1, Y: 2})
//
//	pos := apecs.Has[Position](w)
//	hp := apecs.Has[Health](w)
//	both := apecs.NewJoin2(pos, hp)
//	apecs.ForEach(both, func(id uint32, t apecs.Tuple2[Position, Health]) {
//	    // every entity holding both components
//	})
//
// # Components
//
// Components are plain Go value types. Each component type is bound to
// exactly one storage type per world; the binding is the only place a
// concrete backend is named. Everything above the binding — point access,
// bulk helpers, joins, Not/Maybe wrappers — speaks the Store contract only.
//
// # Safe and unsafe reads
//
// Two failure philosophies coexist by design. Get and the Maybe wrapper
// report absence through an Option value; GetUnsafe assumes presence and
// treats absence as an unchecked programming error. Destroy and Reset are
// idempotent and never fail.
//
// # Concurrency
//
// One logical thread of control per world. Every store operation is a
// synchronous call; nothing in this layer locks. Callers that share a world
// across goroutines synchronize externally.
package apecs

// Version is the APECS version.
const Version = "1.0.0"
