package planner

import (
	"fmt"

	"github.com/blockwise/scheduler/coord"
	"github.com/blockwise/scheduler/roi"
)

// levelStride computes the per-axis spacing that separates blocks
// which may run concurrently without violating read/write isolation.
//
//	context_ul[i] = write.begin[i] - read.begin[i]
//	context_lr[i] = read.end[i] - write.end[i]
//	max_context[i] = max(context_ul[i], context_lr[i])
//	min_stride[i]  = max_context[i] + write.shape[i]
//	level_stride[i] = ceil(min_stride[i] / write.shape[i]) * write.shape[i]
func levelStride(readROI, writeROI roi.Roi) (coord.Coord, error) {
	if readROI.Dim() != writeROI.Dim() {
		return coord.Coord{}, fmt.Errorf("%w: read dim %d != write dim %d", ErrDimensionMismatch, readROI.Dim(), writeROI.Dim())
	}

	contains, err := readROI.Contains(writeROI)
	if err != nil {
		return coord.Coord{}, err
	}
	if !contains {
		return coord.Coord{}, fmt.Errorf("%w: read_roi %s does not contain write_roi %s", ErrInvalidGeometry, readROI, writeROI)
	}
	for _, s := range writeROI.Shape().Components() {
		if s == 0 {
			return coord.Coord{}, fmt.Errorf("%w: write_roi shape %s has a zero component", ErrInvalidGeometry, writeROI.Shape())
		}
	}

	contextUL, err := writeROI.Begin().Sub(readROI.Begin())
	if err != nil {
		return coord.Coord{}, err
	}
	contextLR, err := readROI.End().Sub(writeROI.End())
	if err != nil {
		return coord.Coord{}, err
	}
	maxContext, err := contextUL.Max(contextLR)
	if err != nil {
		return coord.Coord{}, err
	}
	minStride, err := maxContext.Add(writeROI.Shape())
	if err != nil {
		return coord.Coord{}, err
	}
	stride, err := minStride.CeilDivMultiple(writeROI.Shape())
	if err != nil {
		return coord.Coord{}, err
	}
	return stride, nil
}
