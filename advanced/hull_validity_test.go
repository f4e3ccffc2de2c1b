package advanced

// This contains no actual tests. It is just a helper for testing hull
// validity, plus point set generators shared by the tests.

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check that a hull is valid. The rules are:
// 1. Every hull vertex is one of the input points, and none appears twice.
// 2. The hull starts at the pivot.
// 3. Every consecutive triple, wrapping around, turns counterclockwise. Hull
//    vertices are never collinear with their neighbors, since collinear points
//    along an edge are dropped.
// 4. No input point lies strictly outside (clockwise of) any hull edge.
func AssertValidHull(t *testing.T, points []Point, hull []Point) {
	t.Helper()

	inputSet := make(map[Point]struct{}, len(points))
	for _, p := range points {
		inputSet[p] = struct{}{}
	}
	if len(inputSet) == 0 {
		require.Empty(t, hull)
		return
	}

	hullSet := make(map[Point]struct{}, len(hull))
	for _, v := range hull {
		_, ok := inputSet[v]
		require.True(t, ok, "hull vertex %v is not an input point", v)
		_, seen := hullSet[v]
		require.False(t, seen, "hull vertex %v appears twice", v)
		hullSet[v] = struct{}{}
	}

	pivot, _ := Pivot(points)
	require.NotEmpty(t, hull)
	require.Equal(t, pivot, hull[0], "hull must start at the pivot")

	if len(hull) < 3 {
		// Degenerate: every input point must lie on the segment (or the point).
		require.LessOrEqual(t, len(hull), len(inputSet))
		for p := range inputSet {
			require.Equal(t, Collinear, Orient(hull[0], hull[len(hull)-1], p), "point %v is off the degenerate hull", p)
		}
		return
	}

	n := len(hull)
	for i := range hull {
		a, b, c := hull[i], hull[circularIndex(i+1, n)], hull[circularIndex(i+2, n)]
		require.Equal(t, CounterClockwise, Orient(a, b, c), "hull turns %v at %v", Orient(a, b, c), b)
	}

	for p := range inputSet {
		for i := range hull {
			a, b := hull[i], hull[circularIndex(i+1, n)]
			if !assert.NotEqual(t, Clockwise, Orient(a, b, p), "point %v is outside edge %v-%v", p, a, b) {
				return
			}
		}
	}
}

// Treat the hull as a circular buffer. Unlike the raw modulo operator, this
// only gives indexes in [0, n).
func circularIndex(i, n int) int {
	return (i%n + n) % n
}

// Points with coordinates in [0, spread). Small spreads give lots of
// duplicates and collinear runs, which is where tie-breaking goes wrong.
func randomPoints(rng *rand.Rand, n, spread int) []Point {
	points := make([]Point, n)
	for i := range points {
		points[i] = Point{rng.Intn(spread), rng.Intn(spread)}
	}
	return points
}

// Points on the border of a square, so many of them are collinear with hull
// edges.
func squareBorderPoints(rng *rand.Rand, n, side int) []Point {
	points := make([]Point, n)
	for i := range points {
		t := rng.Intn(side + 1)
		switch rng.Intn(4) {
		case 0:
			points[i] = Point{t, 0}
		case 1:
			points[i] = Point{side, t}
		case 2:
			points[i] = Point{t, side}
		default:
			points[i] = Point{0, t}
		}
	}
	return points
}

// The eight point example used throughout the tests.
func exampleSet() []Point {
	return []Point{
		{0, 3}, {1, 1}, {2, 2}, {4, 4},
		{0, 0}, {1, 2}, {3, 1}, {3, 3},
	}
}

func exampleHull() []Point {
	return []Point{{0, 0}, {3, 1}, {4, 4}, {0, 3}}
}
