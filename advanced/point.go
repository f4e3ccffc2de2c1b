package advanced

import "fmt"

// Geometry kernel. Everything in here is a total function over integer points
// and repeated points simply come out as Collinear. Every turn decision in the
// package goes through Orient, so the sweep and the wrap agree with each other
// in all of their parallel forms.

// MaxCoordinate bounds the coordinates for which the kernel is exact. Cross
// products and squared distances stay below 2^63 as long as |X| and |Y| do not
// exceed it.
const MaxCoordinate = 1<<30 - 1

type Point struct {
	X int
	Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// InRange reports whether the point is inside the exact arithmetic range.
func (p Point) InRange() bool {
	return abs(p.X) <= MaxCoordinate && abs(p.Y) <= MaxCoordinate
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Orientation classifies the turn made by an ordered triple of points.
type Orientation int

const (
	Clockwise Orientation = iota - 1
	Collinear
	CounterClockwise
)

var orientationLabels = [3]string{"Clockwise", "Collinear", "CounterClockwise"}

func (o Orientation) String() string {
	if o > CounterClockwise || o < Clockwise {
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
	return orientationLabels[int(o+1)]
}

// Orient classifies p -> q -> r by the sign of the cross product (q-p) x (r-q).
// Swapping q and r flips the sign.
func Orient(p, q, r Point) Orientation {
	cross := (q.X-p.X)*(r.Y-q.Y) - (q.Y-p.Y)*(r.X-q.X)
	switch {
	case cross > 0:
		return CounterClockwise
	case cross < 0:
		return Clockwise
	}
	return Collinear
}

// SquaredDistance is only used to break ties between collinear points.
func SquaredDistance(a, b Point) int {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// PivotLess orders points lexicographically by (Y, X). The pivot is the minimum
// of this order, and it is the only order used to find it, whether the search
// is sequential or a parallel reduction.
func PivotLess(a, b Point) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.X < b.X
}

// Pivot scans the whole set for the (Y, X) minimum. It reports false for an
// empty set.
func Pivot(points []Point) (Point, bool) {
	if len(points) == 0 {
		return Point{}, false
	}
	pivot := points[0]
	for _, p := range points[1:] {
		if PivotLess(p, pivot) {
			pivot = p
		}
	}
	return pivot, true
}

// AngularLess returns the sort order used by the sweep: counterclockwise around
// the pivot, with collinear points nearest first.
//
// Since the pivot is the (Y, X) minimum, every other point sits at an angle in
// [0, π) from it. No two distinct points can then be collinear with the pivot
// on opposite sides, which is what makes this a strict weak order. The only
// points that compare as equivalent are identical ones.
func AngularLess(pivot Point) func(a, b Point) bool {
	return func(a, b Point) bool {
		switch Orient(pivot, a, b) {
		case CounterClockwise:
			return true
		case Clockwise:
			return false
		}
		return SquaredDistance(pivot, a) < SquaredDistance(pivot, b)
	}
}

// MoreClockwise is the gift wrapping selector. It reports whether candidate
// should replace best as the next hull vertex after current: either it lies
// strictly clockwise of current -> best, or it is collinear and farther away,
// which hops over collinear runs in one step.
//
// When current is a hull vertex every other point lies within a cone narrower
// than π around it, so this is a total order on distinct points. The parallel
// search relies on that: combining worker-local winners with it gives the same
// answer as one sequential scan, in any order.
func MoreClockwise(current, best, candidate Point) bool {
	switch Orient(current, best, candidate) {
	case Clockwise:
		return true
	case Collinear:
		return SquaredDistance(current, candidate) > SquaredDistance(current, best)
	}
	return false
}
