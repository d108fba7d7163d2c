package planner

import (
	"fmt"

	"github.com/blockwise/scheduler/coord"
	"github.com/blockwise/scheduler/diagnostic"
	"github.com/blockwise/scheduler/fitpolicy"
	"github.com/blockwise/scheduler/roi"
)

// Plan tiles totalROI with translated copies of readROI and writeROI
// and returns the resulting dependency graph.
//
// Plan is a pure function: it performs no I/O, retries nothing, and
// returns no partial graph on failure.
func Plan(totalROI, readROI, writeROI roi.Roi, readWriteConflict bool, fit fitpolicy.Fit, opts ...Option) (Graph, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if totalROI.Dim() != readROI.Dim() || readROI.Dim() != writeROI.Dim() {
		return nil, fmt.Errorf("%w: total=%d read=%d write=%d", ErrDimensionMismatch, totalROI.Dim(), readROI.Dim(), writeROI.Dim())
	}

	stride, err := levelStride(readROI, writeROI)
	if err != nil {
		return nil, err
	}

	offsets := levelOffsets(writeROI.Shape(), stride)
	conflictsPerLevel, err := computeLevelConflicts(offsets, stride, readWriteConflict)
	if err != nil {
		return nil, err
	}

	graph := make(Graph, 0, len(offsets))
	for level, offset := range offsets {
		o.sink.Emit(diagnostic.Event{
			Kind:        diagnostic.KindLevelComputed,
			Level:       level,
			LevelOffset: offset,
			LevelStride: stride,
		})

		entries, err := enumerateLevel(totalROI, readROI, writeROI, offset, stride, conflictsPerLevel[level], fit, o.sink, level)
		if err != nil {
			return nil, err
		}
		graph = append(graph, entries...)
	}
	return graph, nil
}

// computeLevelConflicts returns, for each level, the conflict offsets
// against the immediately previous level: empty for
// level 0, and empty for every level when readWriteConflict is false.
func computeLevelConflicts(offsets []coord.Coord, stride coord.Coord, readWriteConflict bool) ([][]coord.Coord, error) {
	out := make([][]coord.Coord, len(offsets))
	if !readWriteConflict {
		return out, nil
	}
	for level := 1; level < len(offsets); level++ {
		conflicts, err := conflictOffsets(offsets[level], offsets[level-1], stride)
		if err != nil {
			return nil, err
		}
		out[level] = conflicts
	}
	return out, nil
}
