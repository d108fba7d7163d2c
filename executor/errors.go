package executor

import "errors"

// Sentinel errors for Run.
var (
	// ErrNilProcess indicates Run was called with a nil process function.
	ErrNilProcess = errors.New("executor: process function is nil")

	// ErrNilGraph indicates Run was called with a nil graph.
	ErrNilGraph = errors.New("executor: graph is nil")
)
