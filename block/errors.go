package block

import "errors"

// ErrReadDoesNotContainWrite indicates a Block was constructed with a
// read_roi that does not contain its write_roi, violating the
// Block invariant.
var ErrReadDoesNotContainWrite = errors.New("block: read_roi must contain write_roi")
