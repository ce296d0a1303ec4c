// Profiling:
// go build ./profile/workload
// go tool pprof -http=":8000" -nodefraction=0.001 ./workload mem.pprof

package main

import (
	"github.com/pkg/profile"

	"github.com/ethercrow/apecs"
)

type comp1 struct {
	V int64
	W int64
}

type comp2 struct {
	V int64
	W int64
}

func main() {
	rounds := 50
	iters := 100
	entities := 10000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, iters, entities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	for r := 0; r < rounds; r++ {
		w := apecs.NewBuilder().
			With(func(w *apecs.World) {
				apecs.UseDense[comp1](w)
				apecs.UseDense[comp2](w)
			}).
			Init()

		s1 := apecs.Has[comp1](w)
		s2 := apecs.Has[comp2](w)
		j := apecs.NewJoin2[comp1, comp2](s1, s2)

		for i := 0; i < iters; i++ {
			for n := 0; n < numEntities; n++ {
				id := w.NewEntity()
				s1.Set(id, comp1{V: int64(n)})
				s2.Set(id, comp2{V: int64(n), W: 1})
			}
			apecs.ForEach[apecs.Tuple2[comp1, comp2]](j,
				func(id uint32, t apecs.Tuple2[comp1, comp2]) {
					s1.Set(id, comp1{V: t.V1.V + t.V2.V, W: t.V1.W + t.V2.W})
				})
			apecs.Reset[comp1](s1)
			apecs.Reset[comp2](s2)
		}
	}
}
