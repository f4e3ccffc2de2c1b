package advanced

import (
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// Reads point sets out of SVG files. This is not a full (or even correct) SVG
// reader: it collects the centers of <circle> elements and the vertices of
// <polygon> and <polyline> elements, in document order, and ignores every
// transform. Coordinates must be integral.

func LoadSVGPoints(r io.Reader) ([]Point, error) {
	root, err := svgparser.Parse(r, true)
	if err != nil {
		return nil, errors.Wrap(err, "could not parse svg")
	}

	var points []Point
	for _, circle := range root.FindAll("circle") {
		x, err := parseCoordinate(circle.Attributes["cx"])
		if err != nil {
			return nil, errors.Wrap(err, "circle cx")
		}
		y, err := parseCoordinate(circle.Attributes["cy"])
		if err != nil {
			return nil, errors.Wrap(err, "circle cy")
		}
		points = append(points, Point{x, y})
	}

	for _, name := range []string{"polygon", "polyline"} {
		for _, el := range root.FindAll(name) {
			vertices, err := parsePointList(el.Attributes["points"])
			if err != nil {
				return nil, errors.Wrapf(err, "%s points", name)
			}
			points = append(points, vertices...)
		}
	}
	return points, nil
}

// Parse a "points" attribute. Pairs may be separated by commas, whitespace, or
// both.
func parsePointList(list string) ([]Point, error) {
	fields := strings.FieldsFunc(list, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates in %q", list)
	}
	points := make([]Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := parseCoordinate(fields[i])
		if err != nil {
			return nil, err
		}
		y, err := parseCoordinate(fields[i+1])
		if err != nil {
			return nil, err
		}
		points = append(points, Point{x, y})
	}
	return points, nil
}

func parseCoordinate(s string) (int, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid coordinate %q", s)
	}
	if v != math.Trunc(v) || math.Abs(v) > MaxCoordinate {
		return 0, errors.Errorf("coordinate %q is not an integer in [-%d, %d]", s, MaxCoordinate, MaxCoordinate)
	}
	return int(v), nil
}
