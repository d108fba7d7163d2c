package coord

import "errors"

// Sentinel errors for coord operations.
var (
	// ErrDimensionMismatch indicates two Coords of differing length were
	// combined by an operation that requires equal dimension.
	ErrDimensionMismatch = errors.New("coord: dimension mismatch")

	// ErrEmptyCoord indicates a Coord was constructed with zero components.
	ErrEmptyCoord = errors.New("coord: coord must have at least one component")
)
