package apecs

import (
	"fmt"
	"testing"
)

const benchEntities = 100000

type benchPos struct {
	X, Y float32
}

type benchVel struct {
	DX, DY float32
}

func fillPos(s Store[benchPos], n int) {
	for id := uint32(0); id < uint32(n); id++ {
		s.Set(id, benchPos{X: float32(id)})
	}
}

func BenchmarkSet(b *testing.B) {
	backends := map[string]func() Store[benchPos]{
		"Map":    func() Store[benchPos] { return NewMapStore[benchPos]() },
		"Dense":  func() Store[benchPos] { return NewDenseStore[benchPos](benchEntities) },
		"Cached": func() Store[benchPos] { return NewCached[benchPos](NewMapStore[benchPos](), 1024) },
	}
	for name, newStore := range backends {
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			s := newStore()
			for i := 0; i < b.N; i++ {
				s.Set(uint32(i%benchEntities), benchPos{X: float32(i)})
			}
		})
	}
}

func BenchmarkGetUnsafe(b *testing.B) {
	backends := map[string]func() Store[benchPos]{
		"Map":    func() Store[benchPos] { return NewMapStore[benchPos]() },
		"Dense":  func() Store[benchPos] { return NewDenseStore[benchPos](benchEntities) },
		"Cached": func() Store[benchPos] { return NewCached[benchPos](NewMapStore[benchPos](), 1024) },
	}
	for name, newStore := range backends {
		b.Run(name, func(b *testing.B) {
			s := newStore()
			fillPos(s, benchEntities)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = s.GetUnsafe(uint32(i % benchEntities))
			}
		})
	}
}

func BenchmarkIterate(b *testing.B) {
	sizes := []int{1000, 10000, 100000}
	for _, size := range sizes {
		b.Run(fmt.Sprintf("Dense_%dK", size/1000), func(b *testing.B) {
			s := NewDenseStore[benchPos](size)
			fillPos(s, size)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sum := float32(0)
				ForEachValue[benchPos](s, func(v benchPos) { sum += v.X })
			}
		})
	}
}

func BenchmarkJoin2Members(b *testing.B) {
	// Intersection cost tracks the smaller store.
	small := NewDenseStore[benchVel](1000)
	big := NewDenseStore[benchPos](benchEntities)
	fillPos(big, benchEntities)
	for id := uint32(0); id < 1000; id++ {
		small.Set(id*7, benchVel{DX: 1})
	}

	j := NewJoin2[benchPos, benchVel](big, small)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = j.Members()
	}
}

func BenchmarkResolution(b *testing.B) {
	w := NewBuilder().
		With(func(w *World) {
			UseDense[benchPos](w)
		}).
		Init()

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Has[benchPos](w)
	}
}
