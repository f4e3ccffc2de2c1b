package hull

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Smoke test. The internals are already tested.
func TestCompute(t *testing.T) {
	points := []Point{
		{X: 0, Y: 3}, {X: 1, Y: 1}, {X: 2, Y: 2}, {X: 4, Y: 4},
		{X: 0, Y: 0}, {X: 1, Y: 2}, {X: 3, Y: 1}, {X: 3, Y: 3},
	}

	result, err := Compute(points, Config{Algorithm: Wrap, Mode: Reduction, Workers: 3})
	assert.NoError(t, err)
	assert.Equal(t, []Point{{X: 0, Y: 0}, {X: 3, Y: 1}, {X: 4, Y: 4}, {X: 0, Y: 3}}, result)
}

func TestCompute_UnknownMode(t *testing.T) {
	result, err := Compute([]Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}, Config{Mode: Mode(42)})
	assert.EqualError(t, err, "unknown mode: Mode(42)")
	assert.Nil(t, result)
}

func TestCompute_OutOfRange(t *testing.T) {
	result, err := Compute([]Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1 << 32}}, Config{Mode: Decomposition})
	assert.EqualError(t, err, "point (0, 4294967296) is out of range, coordinates must be within ±1073741823")
	assert.Nil(t, result)
}
