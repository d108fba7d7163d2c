package roi

import (
	"fmt"

	"github.com/blockwise/scheduler/coord"
)

// Roi is an axis-aligned N-D region: offset is its lower corner,
// shape its extent along each axis. begin == offset; end == offset +
// shape (exclusive).
type Roi struct {
	offset coord.Coord
	shape  coord.Coord
}

// New constructs a Roi from an offset and shape. Every shape component
// must be non-negative.
func New(offset, shape coord.Coord) (Roi, error) {
	if offset.Dim() != shape.Dim() {
		return Roi{}, fmt.Errorf("%w: offset dim %d != shape dim %d", coord.ErrDimensionMismatch, offset.Dim(), shape.Dim())
	}
	for i := 0; i < shape.Dim(); i++ {
		if shape.At(i) < 0 {
			return Roi{}, fmt.Errorf("%w: axis %d shape %d", ErrNegativeShape, i, shape.At(i))
		}
	}
	return Roi{offset: offset, shape: shape}, nil
}

// Dim reports the dimension of r.
func (r Roi) Dim() int {
	return r.offset.Dim()
}

// Offset returns r's offset (equal to Begin).
func (r Roi) Offset() coord.Coord {
	return r.offset
}

// Shape returns r's shape.
func (r Roi) Shape() coord.Coord {
	return r.shape
}

// Begin returns r's lower, inclusive corner.
func (r Roi) Begin() coord.Coord {
	return r.offset
}

// End returns r's upper, exclusive corner (offset + shape).
func (r Roi) End() coord.Coord {
	end, err := r.offset.Add(r.shape)
	if err != nil {
		// offset and shape are always constructed with matching dims.
		panic(err)
	}
	return end
}

// IsEmpty reports whether any shape component is zero.
func (r Roi) IsEmpty() bool {
	for i := 0; i < r.shape.Dim(); i++ {
		if r.shape.At(i) == 0 {
			return true
		}
	}
	return false
}

// Equal reports whether r and other have equal offset and shape.
func (r Roi) Equal(other Roi) bool {
	return r.offset.Equal(other.offset) && r.shape.Equal(other.shape)
}

// String renders r as "offset+shape".
func (r Roi) String() string {
	return r.offset.String() + "+" + r.shape.String()
}
