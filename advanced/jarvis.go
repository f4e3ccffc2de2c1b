package advanced

// Gift wrapping (Jarvis march). Starting at the pivot, each step confirms one
// hull vertex by finding the point with nothing strictly clockwise of the edge
// leading to it. Steps depend on each other, but the search inside a step is a
// plain reduction over the points, which is what the parallel form splits up.

// A vertexSearch finds the next hull vertex after current, reporting false if
// every point equals current.
type vertexSearch func(points []Point, current Point) (Point, bool)

// JarvisMarch returns the hull of points in counterclockwise order starting at
// the pivot. The input slice is not modified.
func JarvisMarch(points []Point) []Point {
	pivot, ok := Pivot(points)
	if !ok {
		return nil
	}
	return wrap(points, pivot, nextVertex)
}

func wrap(points []Point, pivot Point, search vertexSearch) []Point {
	hull := []Point{pivot}
	current := pivot
	for {
		next, found := search(points, current)
		if !found || next == pivot {
			break
		}
		// A hull can't have more vertices than there are input points, so if we
		// get here the selector has stopped being a total order.
		if len(hull) >= len(points) {
			fatalf("gift wrap did not close after %d vertices (last %v)", len(hull), current)
		}
		hull = append(hull, next)
		current = next
	}
	return hull
}

// Sequential scan for the most clockwise point seen from current.
func nextVertex(points []Point, current Point) (best Point, found bool) {
	for _, p := range points {
		if p == current {
			continue
		}
		if !found || MoreClockwise(current, best, p) {
			best = p
			found = true
		}
	}
	return best, found
}
