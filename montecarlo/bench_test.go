package montecarlo_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/cayley/montecarlo"
)

func BenchmarkStepNN(b *testing.B) {
	tree := newTree(b, 8, 3)
	for _, workers := range []int{1, 4} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			e := newEngine(b, tree, montecarlo.WithSeed(1), montecarlo.WithWorkers(workers), montecarlo.WithRetention(2))
			if err := e.RandomState(); err != nil {
				b.Fatal(err)
			}
			rule := montecarlo.NN{Params: montecarlo.Defaults()}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := e.Step(context.Background(), rule); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkStepTL(b *testing.B) {
	tree := newTree(b, 8, 3)
	e := newEngine(b, tree, montecarlo.WithSeed(1), montecarlo.WithRetention(2))
	if err := e.CenterState(); err != nil {
		b.Fatal(err)
	}
	p := montecarlo.TLDefaults()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := e.Step(context.Background(), montecarlo.TL{Params: p, T: i}); err != nil {
			b.Fatal(err)
		}
	}
}
