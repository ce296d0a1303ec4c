package apecs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type tagA struct{}
type tagB struct{}

func TestEntity(t *testing.T) {
	t.Run("EqualityIgnoresTag", func(t *testing.T) {
		a := Entity[tagA](7)
		b := Retag[tagB](a)

		require.Equal(t, uint32(7), a.ID())
		require.Equal(t, a.ID(), b.ID())
	})

	t.Run("RetagRoundTrip", func(t *testing.T) {
		a := Entity[tagA](42)
		require.Equal(t, a, Retag[tagA](Retag[tagB](a)))
	})
}

func TestSlice(t *testing.T) {
	t.Run("ConcatIdentity", func(t *testing.T) {
		s := Slice[tagA]{1, 2, 3}

		require.Equal(t, s, Concat(s, nil))
		require.Equal(t, s, Concat(nil, s))
		require.Nil(t, Concat[tagA]())
		require.Nil(t, Concat(Slice[tagA]{}, Slice[tagA]{}))
	})

	t.Run("Concat", func(t *testing.T) {
		a := Slice[tagA]{1, 2}
		b := Slice[tagA]{3}
		require.Equal(t, Slice[tagA]{1, 2, 3}, Concat(a, b))
	})

	t.Run("Contains", func(t *testing.T) {
		s := Slice[tagA]{5, 9}
		require.True(t, s.Contains(9))
		require.False(t, s.Contains(2))
	})

	t.Run("Retag", func(t *testing.T) {
		s := Slice[tagA]{1, 2}
		require.Equal(t, Slice[tagB]{1, 2}, RetagSlice[tagB](s))
	})
}

func TestOption(t *testing.T) {
	t.Run("Some", func(t *testing.T) {
		o := Some("v")
		require.True(t, o.Present())

		v, ok := o.Value()
		require.True(t, ok)
		require.Equal(t, "v", v)
		require.Equal(t, "v", o.Must())
		require.Equal(t, "v", o.OrElse("other"))
	})

	t.Run("None", func(t *testing.T) {
		o := None[string]()
		require.False(t, o.Present())
		require.Equal(t, "other", o.OrElse("other"))
		require.Panics(t, func() { o.Must() })
	})
}
