package roi

import "errors"

// Sentinel errors for roi operations.
var (
	// ErrNegativeShape indicates a shape component was negative.
	ErrNegativeShape = errors.New("roi: shape must be non-negative")
)
