package planner

import "github.com/blockwise/scheduler/coord"

// levelOffsets computes the intra-stride starting offsets that
// generate mutually-independent waves.
//
// Per axis i: dim_offsets[i] = [0, writeShape[i], 2*writeShape[i], ...)
// stopping strictly before levelStride[i]. The Cartesian product of
// dim_offsets is then REVERSED: the last combination in natural
// product order becomes level 0. This reversal is a normative part of
// the contract and must not be "simplified" away.
func levelOffsets(writeShape, levelStride coord.Coord) []coord.Coord {
	n := writeShape.Dim()
	axes := make([][]int64, n)
	for i := 0; i < n; i++ {
		axes[i] = axisRange(0, levelStride.At(i), writeShape.At(i))
	}
	rows := cartesianProduct(axes)
	reverse(rows)
	return coordsFromRows(rows)
}

func reverse(rows [][]int64) {
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
}
