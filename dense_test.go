package apecs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDenseStoreInternals(t *testing.T) {
	t.Run("SwapRemove", func(t *testing.T) {
		s := NewDenseStore[string](8)
		s.Set(1, "a")
		s.Set(2, "b")
		s.Set(3, "c")

		// Removing from the middle swaps the last element in; membership
		// and values stay intact.
		s.Destroy(2)
		require.Equal(t, 2, s.Len())
		require.Equal(t, "a", s.GetUnsafe(1))
		require.Equal(t, "c", s.GetUnsafe(3))
		require.False(t, s.Exists(2))
	})

	t.Run("GrowsPastCapacity", func(t *testing.T) {
		s := NewDenseStore[int](2)
		s.Set(1000, 1)
		require.True(t, s.Exists(1000))
		require.Equal(t, 1, s.GetUnsafe(1000))
		require.False(t, s.Exists(999))
	})

	t.Run("ZeroCapacity", func(t *testing.T) {
		s := NewDenseStore[int](0)
		s.Set(0, 5)
		require.Equal(t, 5, s.GetUnsafe(0))

		s = NewDenseStore[int](-1)
		s.Set(3, 7)
		require.Equal(t, 7, s.GetUnsafe(3))
	})

	t.Run("ResetKeepsAllocation", func(t *testing.T) {
		s := NewDenseStore[int](16)
		for id := uint32(0); id < 10; id++ {
			s.Set(id, int(id))
		}

		Reset(s)
		require.Equal(t, 0, s.Len())
		for id := uint32(0); id < 10; id++ {
			require.False(t, s.Exists(id))
		}

		// The store is fully usable after reset.
		s.Set(5, 50)
		require.Equal(t, 50, s.GetUnsafe(5))
		require.Equal(t, 1, s.Len())
	})
}

func TestCachedInternals(t *testing.T) {
	t.Run("CollisionEvictsSlot", func(t *testing.T) {
		backing := NewMapStore[string]()
		s := NewCached[string](backing, 2)

		// ids 1 and 3 collide in a 2-slot cache; both stay readable
		// because the backing store is authoritative.
		s.Set(1, "a")
		s.Set(3, "b")
		require.Equal(t, "a", s.GetUnsafe(1))
		require.Equal(t, "b", s.GetUnsafe(3))
		require.Equal(t, "a", backing.GetUnsafe(1))
	})

	t.Run("DestroyInvalidates", func(t *testing.T) {
		s := NewCached[string](NewMapStore[string](), 4)
		s.Set(2, "v")
		s.Destroy(2)
		require.False(t, s.Exists(2))
		require.False(t, s.Get(2).Present())
	})

	t.Run("WriteThroughKeepsMembersAuthoritative", func(t *testing.T) {
		backing := NewMapStore[string]()
		s := NewCached[string](backing, 2)

		s.Set(1, "a")
		s.Set(2, "b")
		require.ElementsMatch(t, []uint32{1, 2}, []uint32(s.Members()))
		require.ElementsMatch(t, []uint32(backing.Members()), []uint32(s.Members()))
	})
}
