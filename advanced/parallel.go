package advanced

import (
	"slices"
	"sort"

	psort "github.com/exascience/pargo/sort"
	"golang.org/x/sync/errgroup"
)

// Parallel forms of the hull algorithms. Every one of them has to return
// exactly what its sequential counterpart returns, vertex for vertex, so the
// rules are strict:
//
//  - The working slice is shared read-only. Workers get disjoint spans of it.
//  - Each worker writes only its own slot in a results slice.
//  - Slots are combined after the join, on the calling goroutine, with the
//    same comparator the sequential code uses.
//
// Nothing is ever written to shared state from inside a worker, in particular
// not the sweep frontier, whose pops and pushes stay strictly sequential.

// span is a half-open range [low, high) of the working slice owned by one
// worker.
type span struct {
	low, high int
}

// partition splits n items into at most k contiguous spans whose sizes differ
// by at most one; leading spans take the extra items. It never produces empty
// spans, so there are fewer than k of them when n < k.
func partition(n, k int) []span {
	if k > n {
		k = n
	}
	if k <= 0 {
		return nil
	}
	size, extra := n/k, n%k
	spans := make([]span, k)
	low := 0
	for i := range spans {
		high := low + size
		if i < extra {
			high++
		}
		spans[i] = span{low, high}
		low = high
	}
	return spans
}

// forEachSpan runs fn for every span on its own goroutine and waits for all of
// them. A worker that fails with a HullError has it re-raised here, on the
// caller's goroutine, so that the public API can recover it.
func forEachSpan(spans []span, fn func(i int, s span)) {
	var g errgroup.Group
	for i, s := range spans {
		i, s := i, s
		g.Go(func() (err error) {
			defer func() {
				if recoveredErr := HandleHullPanicRecover(recover()); recoveredErr != nil {
					err = recoveredErr
				}
			}()
			fn(i, s)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		panic(HullError{err})
	}
}

// ParallelPivot finds the pivot with a reduction over worker spans. Each
// worker finds its local (Y, X) minimum and the locals are reduced with the
// same PivotLess order, which is associative, so ties break exactly as in
// Pivot.
func ParallelPivot(points []Point, workers int) (Point, bool) {
	spans := partition(len(points), workers)
	if len(spans) == 0 {
		return Point{}, false
	}
	local := make([]Point, len(spans))
	forEachSpan(spans, func(i int, s span) {
		local[i], _ = Pivot(points[s.low:s.high])
	})
	return Pivot(local)
}

// Decompose computes a hull by domain decomposition: every span is hulled
// independently with hullOf, and the union of the partial hulls is hulled once
// more with hullOf to get the true hull.
//
// A point that is extreme in the whole set is extreme in whichever span holds
// it, so no true vertex is lost by the first pass. The first pass does however
// keep vertices that are only extreme because of where a span boundary fell;
// the second pass over the union is what removes those, and it cannot be
// skipped.
func Decompose(points []Point, workers int, hullOf func([]Point) []Point) []Point {
	spans := partition(len(points), workers)
	if len(spans) == 0 {
		return nil
	}
	local := make([][]Point, len(spans))
	forEachSpan(spans, func(i int, s span) {
		local[i] = hullOf(points[s.low:s.high])
	})

	var candidates []Point
	for _, partial := range local {
		candidates = append(candidates, partial...)
	}
	return hullOf(candidates)
}

// ParallelJarvisMarch keeps the outer gift wrapping loop sequential, since each
// step starts where the previous one ended, and runs the search for the next
// vertex as a parallel reduction.
func ParallelJarvisMarch(points []Point, workers int) []Point {
	pivot, ok := ParallelPivot(points, workers)
	if !ok {
		return nil
	}
	return wrap(points, pivot, parallelNextVertex(partition(len(points), workers)))
}

// Each worker scans its span for a local winner using MoreClockwise, then the
// winners are reduced with MoreClockwise again. Only identical points tie under
// it, so the combine order doesn't matter.
func parallelNextVertex(spans []span) vertexSearch {
	best := make([]Point, len(spans))
	found := make([]bool, len(spans))
	return func(points []Point, current Point) (Point, bool) {
		forEachSpan(spans, func(i int, s span) {
			best[i], found[i] = nextVertex(points[s.low:s.high], current)
		})

		var (
			winner Point
			ok     bool
		)
		for i := range spans {
			if !found[i] {
				continue
			}
			if !ok || MoreClockwise(current, winner, best[i]) {
				winner = best[i]
				ok = true
			}
		}
		return winner, ok
	}
}

// ParallelGrahamScan finds the pivot with a parallel reduction and sorts with a
// fork/join quicksort. The sweep itself stays sequential.
func ParallelGrahamScan(points []Point, workers int) []Point {
	pivot, ok := ParallelPivot(points, workers)
	if !ok {
		return nil
	}
	sorted := slices.Clone(points)
	psort.Sort(angularSorter{points: sorted, less: AngularLess(pivot)})
	return sweep(slices.Compact(sorted))
}

// angularSorter adapts a point slice to the parallel quicksort. Equivalent
// elements under AngularLess are identical points, so an unstable sort still
// gives one well-defined order.
type angularSorter struct {
	points []Point
	less   func(a, b Point) bool
}

func (s angularSorter) Len() int           { return len(s.points) }
func (s angularSorter) Less(i, j int) bool { return s.less(s.points[i], s.points[j]) }
func (s angularSorter) Swap(i, j int)      { s.points[i], s.points[j] = s.points[j], s.points[i] }

// SequentialSort sorts the range [i, j) and is what the quicksort falls back to
// below its grain size.
func (s angularSorter) SequentialSort(i, j int) {
	sub := s.points[i:j]
	sort.Slice(sub, func(a, b int) bool {
		return s.less(sub[a], sub[b])
	})
}
