package advanced

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJarvisMarch(t *testing.T) {
	for _, scenario := range hullScenarios {
		t.Run(scenario.name, func(t *testing.T) {
			hull := JarvisMarch(scenario.points)
			assert.Equal(t, scenario.hull, hull)
			AssertValidHull(t, scenario.points, hull)
		})
	}
}

func TestJarvisMarch_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 50; i++ {
		points := randomPoints(rng, 1+rng.Intn(200), 1+rng.Intn(30))
		hull := JarvisMarch(points)
		AssertValidHull(t, points, hull)
		assert.Equal(t, GrahamScan(points), hull, "points: %v", points)
	}
}

func TestNextVertex(t *testing.T) {
	points := exampleSet()

	next, found := nextVertex(points, Point{0, 0})
	assert.True(t, found)
	assert.Equal(t, Point{3, 1}, next)

	next, _ = nextVertex(points, Point{3, 1})
	assert.Equal(t, Point{4, 4}, next)

	_, found = nextVertex([]Point{{1, 1}, {1, 1}}, Point{1, 1})
	assert.False(t, found)
}

func TestWrap_DoesNotClose(t *testing.T) {
	// A search that never leads back to the pivot must not loop forever.
	points := []Point{{0, 0}, {1, 0}, {0, 1}}
	i := 0
	spinning := func(points []Point, current Point) (Point, bool) {
		i++
		return Point{i, i}, true
	}
	assert.PanicsWithError(t, "gift wrap did not close after 3 vertices (last (2, 2))", func() {
		wrap(points, Point{0, 0}, spinning)
	})
}
