// A parallel planar convex hull package for Go.
//
// This package takes an unordered set of integer points and returns the
// vertices of their convex hull, counterclockwise from the lowest (then
// leftmost) point. Two algorithm families are available, a Graham scan sweep
// and a Jarvis march gift wrap, each with a sequential baseline and parallel
// modes that return exactly the same hull.
//
// See the advanced package for the individual algorithms and the geometry
// kernel, and the task package for the buffer based lifecycle adapter.
package hull

import "github.com/osuushi/hull/advanced"

type Point = advanced.Point
type Config = advanced.Config
type Algorithm = advanced.Algorithm
type Mode = advanced.Mode

const (
	Sweep = advanced.Sweep
	Wrap  = advanced.Wrap

	Sequential    = advanced.Sequential
	Decomposition = advanced.Decomposition
	Reduction     = advanced.Reduction
)

// Compute returns the convex hull of points.
//
// The zero Config is a sequential sweep. Fewer than three distinct points, or
// points that are all collinear, give a degenerate hull of at most two points.
// The points slice is never modified. Coordinates must be within
// ±advanced.MaxCoordinate, or an error is returned.
func Compute(points []Point, config Config) (result []Point, err error) {
	defer func() {
		recoveredErr := advanced.HandleHullPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return advanced.ConvexHull(points, config), nil
}
