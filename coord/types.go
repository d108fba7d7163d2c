package coord

import (
	"fmt"
	"strings"
)

// Coord is an immutable N-element vector of signed integers.
//
// The zero value is not a valid Coord; always construct one with New.
// Every method returns a new Coord rather than mutating the receiver.
type Coord struct {
	vals []int64
}

// New builds a Coord from the given components. At least one component
// is required; New panics if called with zero arguments, matching the
// fail-fast convention used by this package's other constructors.
func New(components ...int64) Coord {
	if len(components) == 0 {
		panic(ErrEmptyCoord)
	}
	cp := make([]int64, len(components))
	copy(cp, components)
	return Coord{vals: cp}
}

// Repeat builds an N-dimensional Coord with every component set to v.
func Repeat(n int, v int64) Coord {
	if n <= 0 {
		panic(ErrEmptyCoord)
	}
	vals := make([]int64, n)
	for i := range vals {
		vals[i] = v
	}
	return Coord{vals: vals}
}

// Dim reports the dimension (component count) of c.
func (c Coord) Dim() int {
	return len(c.vals)
}

// At returns the i-th component of c.
func (c Coord) At(i int) int64 {
	return c.vals[i]
}

// Components returns a defensive copy of c's components.
func (c Coord) Components() []int64 {
	cp := make([]int64, len(c.vals))
	copy(cp, c.vals)
	return cp
}

// Equal reports whether c and other have the same dimension and
// componentwise-equal values.
func (c Coord) Equal(other Coord) bool {
	if len(c.vals) != len(other.vals) {
		return false
	}
	for i, v := range c.vals {
		if v != other.vals[i] {
			return false
		}
	}
	return true
}

// String renders c as "(v0, v1, ..., vn-1)".
func (c Coord) String() string {
	parts := make([]string, len(c.vals))
	for i, v := range c.vals {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// checkDims returns ErrDimensionMismatch when a and b disagree in dimension.
func checkDims(a, b Coord) error {
	if a.Dim() != b.Dim() {
		return fmt.Errorf("%w: %d != %d", ErrDimensionMismatch, a.Dim(), b.Dim())
	}
	return nil
}
