package advanced

import (
	"slices"
	"sort"
)

// Graham scan. Points are sorted counterclockwise around the pivot, then swept
// once while a stack holds the convex frontier found so far. The sweep is a
// chain of dependent pops and pushes, so it always runs on a single goroutine;
// only the pivot search and the sort have parallel forms (see parallel.go).

// GrahamScan returns the hull of points in counterclockwise order starting at
// the pivot. The input slice is not modified.
func GrahamScan(points []Point) []Point {
	pivot, ok := Pivot(points)
	if !ok {
		return nil
	}
	sorted := slices.Clone(points)
	less := AngularLess(pivot)
	sort.Slice(sorted, func(i, j int) bool {
		return less(sorted[i], sorted[j])
	})
	return sweep(slices.Compact(sorted))
}

// Sweep an angularly sorted, duplicate free slice. The pivot sorts first since
// it is at distance zero from itself.
//
// Any turn that isn't strictly counterclockwise pops the frontier, so collinear
// points along an edge are dropped and an all-collinear input collapses to its
// two endpoints.
func sweep(sorted []Point) []Point {
	stack := make(PointStack, 0, len(sorted))
	for _, p := range sorted {
		for stack.Len() >= 2 && Orient(stack.PeekSecond(), stack.Peek(), p) != CounterClockwise {
			stack.Pop()
		}
		stack.Push(p)
	}
	return stack
}
