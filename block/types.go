package block

import (
	"fmt"

	"github.com/blockwise/scheduler/roi"
)

// ID is a stable, deterministic identifier for a Block, derived from
// its total_roi and write_roi geometry.
type ID uint64

// String renders id as a fixed-width hexadecimal string.
func (id ID) String() string {
	return fmt.Sprintf("%016x", uint64(id))
}

// Block is the immutable unit of work the planner schedules: a stable
// ID plus the three ROIs that define what it may read and what it
// exclusively writes.
type Block struct {
	id       ID
	totalROI roi.Roi
	readROI  roi.Roi
	writeROI roi.Roi
}

// New constructs a Block from totalROI, readROI and writeROI. readROI
// must contain writeROI; otherwise
// ErrReadDoesNotContainWrite is returned.
func New(totalROI, readROI, writeROI roi.Roi) (Block, error) {
	ok, err := readROI.Contains(writeROI)
	if err != nil {
		return Block{}, err
	}
	if !ok {
		return Block{}, fmt.Errorf("%w: read=%s write=%s", ErrReadDoesNotContainWrite, readROI, writeROI)
	}
	id, err := computeID(totalROI, writeROI)
	if err != nil {
		return Block{}, err
	}
	return Block{id: id, totalROI: totalROI, readROI: readROI, writeROI: writeROI}, nil
}

// ID returns b's stable identifier.
func (b Block) ID() ID {
	return b.id
}

// TotalROI returns the total region b was planned against.
func (b Block) TotalROI() roi.Roi {
	return b.totalROI
}

// ReadROI returns the region b reads from.
func (b Block) ReadROI() roi.Roi {
	return b.readROI
}

// WriteROI returns the region b exclusively writes to.
func (b Block) WriteROI() roi.Roi {
	return b.writeROI
}

// WithROIs returns a copy of b with its read_roi and write_roi
// replaced; used by the shrink fit policy to adjust a block's bounds
// while preserving its identity semantics (the ID still derives from
// the new write_roi: ids mix in total_roi, not the pre-adjustment
// geometry).
func (b Block) WithROIs(readROI, writeROI roi.Roi) (Block, error) {
	return New(b.totalROI, readROI, writeROI)
}

// String renders b for diagnostics and error messages.
func (b Block) String() string {
	return fmt.Sprintf("Block{id=%s read=%s write=%s}", b.id, b.readROI, b.writeROI)
}
