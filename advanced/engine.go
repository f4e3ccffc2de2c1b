package advanced

import (
	"runtime"
	"slices"
	"time"
)

// Algorithm selects the hull algorithm family.
type Algorithm int

const (
	// Sweep is the Graham scan: angular sort around the pivot plus a stack sweep.
	Sweep Algorithm = iota
	// Wrap is the Jarvis march: one gift wrapping step per hull vertex.
	Wrap
)

// Mode selects how an algorithm uses the workers.
type Mode int

const (
	// Sequential runs the baseline on the calling goroutine.
	Sequential Mode = iota
	// Decomposition hulls contiguous spans concurrently, then hulls the union of
	// the partial hulls again.
	Decomposition
	// Reduction parallelizes the searches inside the algorithm (pivot and sort
	// for Sweep, pivot and next vertex for Wrap) and keeps its sequential
	// skeleton.
	Reduction
)

type Config struct {
	Algorithm Algorithm `yaml:"algorithm"`
	Mode      Mode      `yaml:"mode"`
	// Workers is the number of goroutines used by the parallel modes. Zero or
	// less means one per CPU.
	Workers int `yaml:"workers"`
}

func (c Config) WorkerCount() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.NumCPU()
}

// ConvexHull computes the hull of points with the algorithm and mode chosen by
// config. The result is in counterclockwise order and starts at the pivot (the
// lowest point, leftmost among the lowest). Every algorithm and mode returns
// the same slice for the same input.
//
// Collinear points along hull edges are not vertices, and duplicates are
// collapsed. Inputs with fewer than three distinct points, or whose points are
// all collinear, are degenerate: the result is the distinct points (at most
// two), or the two endpoints of the line, pivot first.
//
// points is copied before anything else happens, so it is never reordered.
// Unknown algorithms or modes, and points outside MaxCoordinate, panic with a
// HullError.
func ConvexHull(points []Point, config Config) []Point {
	start := time.Now()
	for _, p := range points {
		if !p.InRange() {
			fatalf("point %v is out of range, coordinates must be within ±%d", p, MaxCoordinate)
		}
	}
	work := slices.Clone(points)
	workers := config.WorkerCount()

	var hull []Point
	switch config.Mode {
	case Sequential:
		hull = config.Algorithm.sequential()(work)
	case Decomposition:
		hull = Decompose(work, workers, config.Algorithm.sequential())
	case Reduction:
		switch config.Algorithm {
		case Sweep:
			hull = ParallelGrahamScan(work, workers)
		case Wrap:
			hull = ParallelJarvisMarch(work, workers)
		default:
			fatalf("unknown algorithm: %v", config.Algorithm)
		}
	default:
		fatalf("unknown mode: %v", config.Mode)
	}

	Logger().Debug("computed convex hull",
		"algorithm", config.Algorithm.String(),
		"mode", config.Mode.String(),
		"workers", workers,
		"points", len(points),
		"vertices", len(hull),
		"elapsed", time.Since(start),
	)
	return hull
}

func (a Algorithm) sequential() func([]Point) []Point {
	switch a {
	case Sweep:
		return GrahamScan
	case Wrap:
		return JarvisMarch
	}
	fatalf("unknown algorithm: %v", a)
	return nil
}
