package task

import (
	"encoding/binary"

	"github.com/osuushi/hull/advanced"
	"github.com/pkg/errors"
)

// The lifecycle wrapper hands kernels raw byte buffers. A point is stored as
// two little-endian int32 values, X then Y. These two functions are the only
// place that layout is known.

// PointSize is the number of bytes a point takes in a buffer.
const PointSize = 8

// UnmarshalPoints decodes count points from buf. Points outside the range where
// the geometry kernel is exact are rejected with ErrCoordinateRange.
func UnmarshalPoints(buf []byte, count int) ([]advanced.Point, error) {
	if count < 0 {
		return nil, errors.Wrapf(ErrInvalidInput, "negative point count %d", count)
	}
	if len(buf) < count*PointSize {
		return nil, errors.Wrapf(ErrInvalidInput, "buffer of %d bytes cannot hold %d points", len(buf), count)
	}
	points := make([]advanced.Point, count)
	for i := range points {
		offset := i * PointSize
		p := advanced.Point{
			X: int(int32(binary.LittleEndian.Uint32(buf[offset:]))),
			Y: int(int32(binary.LittleEndian.Uint32(buf[offset+4:]))),
		}
		if !p.InRange() {
			return nil, errors.Wrapf(ErrCoordinateRange, "point %d %v", i, p)
		}
		points[i] = p
	}
	return points, nil
}

// MarshalPoints encodes points into buf, which must have room for all of them.
// It returns the number of bytes written. Points outside the exact range are
// rejected with ErrCoordinateRange before anything is written, since they
// would not survive the int32 encoding.
func MarshalPoints(points []advanced.Point, buf []byte) (int, error) {
	if len(buf) < len(points)*PointSize {
		return 0, errors.Wrapf(ErrInvalidInput, "buffer of %d bytes cannot hold %d points", len(buf), len(points))
	}
	for i, p := range points {
		if !p.InRange() {
			return 0, errors.Wrapf(ErrCoordinateRange, "point %d %v", i, p)
		}
	}
	for i, p := range points {
		offset := i * PointSize
		binary.LittleEndian.PutUint32(buf[offset:], uint32(int32(p.X)))
		binary.LittleEndian.PutUint32(buf[offset+4:], uint32(int32(p.Y)))
	}
	return len(points) * PointSize, nil
}

// EncodePoints allocates a buffer of exactly the right size and marshals points
// into it.
func EncodePoints(points []advanced.Point) ([]byte, error) {
	buf := make([]byte, len(points)*PointSize)
	if _, err := MarshalPoints(points, buf); err != nil {
		return nil, err
	}
	return buf, nil
}
