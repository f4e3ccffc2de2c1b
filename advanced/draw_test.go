package advanced

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDrawHull(t *testing.T) {
	points := []Point{{0, 0}, {10, 0}, {10, 5}, {0, 5}, {4, 2}}
	c := DrawHull(points, ConvexHull(points, Config{}), 2)
	assert.Equal(t, 2*10+drawPadding*2, c.Width())
	assert.Equal(t, 2*5+drawPadding*2, c.Height())

	// The pivot is drawn in red, at the bottom left corner of the padding.
	r, g, b, _ := c.Image().At(drawPadding, c.Height()-drawPadding-1).RGBA()
	assert.Greater(t, r, g)
	assert.Greater(t, r, b)

	// Nothing is drawn in the corners.
	assert.Equal(t, color.RGBAModel.Convert(color.Black), c.Image().At(0, 0))
}

func TestDrawHull_Empty(t *testing.T) {
	c := DrawHull(nil, nil, 1)
	assert.Equal(t, drawPadding*2, c.Width())
	assert.Equal(t, drawPadding*2, c.Height())
}
