package fitpolicy

import (
	"github.com/blockwise/scheduler/block"
	"github.com/blockwise/scheduler/roi"
)

// Apply decides whether candidate is included in the plan under fit,
// and returns the (possibly adjusted) Block to emit in its place. When
// included is false, the returned Block must be ignored: Valid and
// Overhang return candidate unchanged, Shrink returns the zero value.
func Apply(fit Fit, totalROI roi.Roi, candidate block.Block) (adjusted block.Block, included bool, err error) {
	switch fit {
	case Valid:
		ok, err := totalROI.Contains(candidate.ReadROI())
		if err != nil {
			return block.Block{}, false, err
		}
		return candidate, ok, nil

	case Overhang:
		ok, err := totalROI.ContainsPoint(candidate.WriteROI().Begin())
		if err != nil {
			return block.Block{}, false, err
		}
		return candidate, ok, nil

	case Shrink:
		return shrink(totalROI, candidate)

	default:
		return block.Block{}, false, ErrUnknownFit
	}
}

// shrink implements the "shrink" variant: total_roi.contains(write_roi.begin)
// AND, after shrinking, every write shape component is > 0. The
// adjustment clips read_roi to total_roi and grows write_roi by the
// same deltas, preserving halo width.
func shrink(totalROI roi.Roi, candidate block.Block) (block.Block, bool, error) {
	beginOK, err := totalROI.ContainsPoint(candidate.WriteROI().Begin())
	if err != nil {
		return block.Block{}, false, err
	}
	if !beginOK {
		return block.Block{}, false, nil
	}

	clippedRead, err := totalROI.Intersect(candidate.ReadROI())
	if err != nil {
		return block.Block{}, false, err
	}

	leftDelta, err := candidate.ReadROI().Begin().Sub(clippedRead.Begin())
	if err != nil {
		return block.Block{}, false, err
	}
	rightDelta, err := clippedRead.End().Sub(candidate.ReadROI().End())
	if err != nil {
		return block.Block{}, false, err
	}

	newWrite, err := candidate.WriteROI().Grow(leftDelta, rightDelta)
	if err != nil {
		return block.Block{}, false, err
	}
	for _, s := range newWrite.Shape().Components() {
		if s <= 0 {
			return block.Block{}, false, nil
		}
	}

	adjusted, err := candidate.WithROIs(clippedRead, newWrite)
	if err != nil {
		return block.Block{}, false, err
	}
	return adjusted, true, nil
}
