package planner

import "errors"

// Sentinel errors for Plan.
var (
	// ErrInvalidGeometry indicates read_roi does not contain write_roi,
	// or a write_roi shape component is zero.
	ErrInvalidGeometry = errors.New("planner: invalid geometry")

	// ErrDimensionMismatch indicates total_roi, read_roi and write_roi
	// disagree in dimension.
	ErrDimensionMismatch = errors.New("planner: dimension mismatch")

	// ErrCycleDetected indicates Validate found a cycle in a Graph's
	// upstream relation.
	ErrCycleDetected = errors.New("planner: dependency graph is not acyclic")
)
