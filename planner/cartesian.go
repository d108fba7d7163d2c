package planner

import "github.com/blockwise/scheduler/coord"

// axisRange returns [start, start+step, start+2*step, ...) stopping
// strictly before stop, mirroring Python's range(start, stop, step).
func axisRange(start, stop, step int64) []int64 {
	if step <= 0 {
		return nil
	}
	var out []int64
	for v := start; v < stop; v += step {
		out = append(out, v)
	}
	return out
}

// cartesianProduct returns the Cartesian product of axes in product
// order: the first axis varies slowest, the last fastest ("outermost
// dimension slowest").
func cartesianProduct(axes [][]int64) [][]int64 {
	combos := [][]int64{{}}
	for _, axis := range axes {
		next := make([][]int64, 0, len(combos)*maxInt(1, len(axis)))
		for _, prefix := range combos {
			for _, v := range axis {
				row := make([]int64, len(prefix)+1)
				copy(row, prefix)
				row[len(prefix)] = v
				next = append(next, row)
			}
		}
		combos = next
	}
	return combos
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// coordsFromRows converts raw component rows into Coord values.
func coordsFromRows(rows [][]int64) []coord.Coord {
	out := make([]coord.Coord, len(rows))
	for i, row := range rows {
		out[i] = coord.New(row...)
	}
	return out
}
