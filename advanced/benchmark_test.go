package advanced

import (
	"fmt"
	"math/rand"
	"testing"
)

// BenchmarkConvexHull compares every algorithm and mode on the same point set.
func BenchmarkConvexHull(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	sizes := []int{1000, 100000}

	for _, size := range sizes {
		points := randomPoints(rng, size, 1<<20)
		for _, config := range []Config{
			{Algorithm: Sweep, Mode: Sequential},
			{Algorithm: Sweep, Mode: Decomposition},
			{Algorithm: Sweep, Mode: Reduction},
			{Algorithm: Wrap, Mode: Sequential},
			{Algorithm: Wrap, Mode: Decomposition},
			{Algorithm: Wrap, Mode: Reduction},
		} {
			b.Run(fmt.Sprintf("%v/%v/%d", config.Algorithm, config.Mode, size), func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					ConvexHull(points, config)
				}
			})
		}
	}
}

// BenchmarkParallelPivot measures the reduction against the plain scan.
func BenchmarkParallelPivot(b *testing.B) {
	points := randomPoints(rand.New(rand.NewSource(2)), 1000000, 1<<20)

	b.Run("Sequential", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			Pivot(points)
		}
	})
	for _, workers := range []int{2, 4, 8} {
		b.Run(fmt.Sprintf("Workers%d", workers), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				ParallelPivot(points, workers)
			}
		})
	}
}
