package advanced

import (
	"math"

	"github.com/fogleman/gg"
)

// Padding around the points, in pixels.
const drawPadding = 20

// DrawHull renders the input points and their hull. Hull vertices are drawn
// larger, and the pivot in a different color, so the starting point and the
// winding are visible. scale is pixels per unit.
func DrawHull(points, hull []Point, scale float64) *gg.Context {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, float64(p.X))
		minY = math.Min(minY, float64(p.Y))
		maxX = math.Max(maxX, float64(p.X))
		maxY = math.Max(maxY, float64(p.Y))
	}
	if len(points) == 0 {
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left, then pad, scale, and
	// move the minimum to the origin.
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	radius := 3 / scale
	if len(hull) > 1 {
		c.SetLineWidth(2)
		c.MoveTo(float64(hull[0].X), float64(hull[0].Y))
		for _, p := range hull[1:] {
			c.LineTo(float64(p.X), float64(p.Y))
		}
		c.ClosePath()
		c.SetRGBA(0, 0.5, 0, 0.5)
		c.FillPreserve()
		c.SetRGB(0, 1, 1)
		c.Stroke()
	}

	c.SetRGB(1, 1, 1)
	for _, p := range points {
		c.DrawCircle(float64(p.X), float64(p.Y), radius)
		c.Fill()
	}

	for i, p := range hull {
		if i == 0 {
			c.SetRGB(1, 0, 0)
		} else {
			c.SetRGB(1, 1, 0)
		}
		c.DrawCircle(float64(p.X), float64(p.Y), radius*2)
		c.Fill()
	}
	return c
}
