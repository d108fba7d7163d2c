package planner

import (
	"fmt"

	"github.com/blockwise/scheduler/coord"
)

// conflictOffsets enumerates, for a level whose offset is
// currentOffset, the translations that locate upstream blocks of the
// immediately previous level (offset prevOffset) whose write_roi may
// intersect the current block's read_roi.
//
// Let delta = prevOffset - currentOffset. Per axis i:
//
//	delta[i] < 0: candidates are {delta[i], delta[i]+stride[i]}
//	delta[i] >= 0: candidates are {delta[i]-stride[i], delta[i]}
//
// The result is the Cartesian product of these per-axis pairs (up to
// 2^N entries).
func conflictOffsets(currentOffset, prevOffset, stride coord.Coord) ([]coord.Coord, error) {
	delta, err := prevOffset.Sub(currentOffset)
	if err != nil {
		return nil, fmt.Errorf("planner: computing conflict offsets: %w", err)
	}

	n := delta.Dim()
	axes := make([][]int64, n)
	for i := 0; i < n; i++ {
		d := delta.At(i)
		s := stride.At(i)
		if d < 0 {
			axes[i] = []int64{d, d + s}
		} else {
			axes[i] = []int64{d - s, d}
		}
	}
	rows := cartesianProduct(axes)
	return coordsFromRows(rows), nil
}
