package apecs

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type worldPos struct {
	X, Y float64
}

type worldHP struct {
	Current, Max int
}

type worldScore struct {
	Points int
}

type worldUnbound struct{}

func newTestWorld(t *testing.T) *World {
	t.Helper()
	cfg := DefaultConfig()
	cfg.LogResolution = true
	return NewBuilder().
		Config(cfg).
		Logger(zaptest.NewLogger(t)).
		With(func(w *World) {
			UseDense[worldPos](w)
			UseMap[worldHP](w)
			UseGlobal[worldScore](w, worldScore{})
		}).
		Init()
}

func TestResolution(t *testing.T) {
	t.Run("ResolvesBoundStore", func(t *testing.T) {
		w := newTestWorld(t)

		s := Has[worldPos](w)
		require.NotNil(t, s)
		s.Set(1, worldPos{X: 1})
		require.True(t, s.Exists(1))
	})

	t.Run("ResolutionIsCached", func(t *testing.T) {
		w := newTestWorld(t)

		first := Has[worldHP](w)
		second := Has[worldHP](w)
		require.Same(t, first.(*MapStore[worldHP]), second.(*MapStore[worldHP]))
	})

	t.Run("UnboundIsFatal", func(t *testing.T) {
		w := newTestWorld(t)

		require.Panics(t, func() {
			Has[worldUnbound](w)
		})
	})

	t.Run("TryHasProbes", func(t *testing.T) {
		w := newTestWorld(t)

		_, ok := TryHas[worldUnbound](w)
		require.False(t, ok)

		s, ok := TryHas[worldPos](w)
		require.True(t, ok)
		require.NotNil(t, s)
	})

	t.Run("RebindPanics", func(t *testing.T) {
		w := newTestWorld(t)

		require.Panics(t, func() {
			UseMap[worldPos](w)
		})
	})

	t.Run("WorldsAreIsolated", func(t *testing.T) {
		w1 := newTestWorld(t)
		w2 := newTestWorld(t)
		require.NotEqual(t, w1.ID(), w2.ID())

		Has[worldHP](w1).Set(1, worldHP{Current: 10})
		require.False(t, Has[worldHP](w2).Exists(1))
	})
}

func TestEntityAllocation(t *testing.T) {
	w := newTestWorld(t)

	a := w.NewEntity()
	b := w.NewEntity()
	c := w.NewEntity()
	require.Equal(t, a+1, b)
	require.Equal(t, b+1, c)

	e := NewEntityOf[worldPos](w)
	require.Equal(t, c+1, e.ID())
}

func TestTaggedPointOps(t *testing.T) {
	w := newTestWorld(t)
	e := NewEntityOf[worldHP](w)

	require.False(t, Contains(w, e))

	Add(w, e, worldHP{Current: 10, Max: 10})
	require.True(t, Contains(w, e))
	require.Equal(t, worldHP{Current: 10, Max: 10}, MustGet(w, e))

	Update(w, e, func(hp worldHP) worldHP {
		hp.Current -= 3
		return hp
	})
	require.Equal(t, 7, MustGet(w, e).Current)

	Remove(w, e)
	require.False(t, Contains(w, e))
	require.False(t, Get(w, e).Present())

	// Update on a removed component is a no-op.
	Update(w, e, func(hp worldHP) worldHP {
		hp.Current = 999
		return hp
	})
	require.False(t, Contains(w, e))
}

func TestGlobalBinding(t *testing.T) {
	w := newTestWorld(t)

	s := Has[worldScore](w)
	require.True(t, s.Exists(12345))

	s.Set(0, worldScore{Points: 7})
	require.Equal(t, 7, s.GetUnsafe(999).Points)
}

func TestSatisfies(t *testing.T) {
	w := newTestWorld(t)

	bound := MaskFor(componentID[worldPos](), componentID[worldHP]())
	require.True(t, w.Satisfies(bound))

	unbound := MaskFor(componentID[worldUnbound]())
	require.False(t, w.Satisfies(unbound))

	require.True(t, w.Satisfies(Bitmask{}))
}

func TestFingerprint(t *testing.T) {
	w1 := newTestWorld(t)
	w2 := newTestWorld(t)

	// Same bound component set, same fingerprint; binding one more type
	// changes it.
	require.Equal(t, w1.Fingerprint(), w2.Fingerprint())

	UseMap[worldUnbound](w2)
	require.NotEqual(t, w1.Fingerprint(), w2.Fingerprint())
}

func TestBuilderValidation(t *testing.T) {
	bad := Config{InitialCapacity: -1}
	require.Panics(t, func() {
		NewBuilder().Config(bad).Init()
	})
}

func TestRegistryMetadata(t *testing.T) {
	id := componentID[worldPos]()

	require.Equal(t, "worldPos", ComponentName(id))
	require.Equal(t, "apecs.worldPos", ComponentTypeOf(id).String())
	require.NotZero(t, ComponentHash(id))
	require.Equal(t, ComponentHash(id), ComponentHash(id))
	require.Greater(t, RegisteredComponentCount(), 0)
}
