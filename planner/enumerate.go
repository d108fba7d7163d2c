package planner

import (
	"github.com/blockwise/scheduler/block"
	"github.com/blockwise/scheduler/coord"
	"github.com/blockwise/scheduler/diagnostic"
	"github.com/blockwise/scheduler/fitpolicy"
	"github.com/blockwise/scheduler/roi"
)

// enumerateLevel builds the entries for one level.
// baseReadROI/baseWriteROI are the user-supplied (unshifted) ROIs;
// conflicts are this level's conflict offsets against the previous
// level (empty for level 0 or when read_write_conflict is false).
func enumerateLevel(
	totalROI, baseReadROI, baseWriteROI roi.Roi,
	levelOffset, levelStride coord.Coord,
	conflicts []coord.Coord,
	fit fitpolicy.Fit,
	sink diagnostic.Sink,
	level int,
) ([]Entry, error) {
	totalShape := totalROI.Shape()
	n := totalShape.Dim()

	axes := make([][]int64, n)
	for i := 0; i < n; i++ {
		axes[i] = axisRange(levelOffset.At(i), totalShape.At(i), levelStride.At(i))
	}
	origins := coordsFromRows(cartesianProduct(axes))

	toGlobal, err := totalROI.Begin().Sub(baseReadROI.Begin())
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(origins))
	for _, origin := range origins {
		globalOrigin, err := origin.Add(toGlobal)
		if err != nil {
			return nil, err
		}

		rawBlock, err := translateBlock(totalROI, baseReadROI, baseWriteROI, globalOrigin)
		if err != nil {
			return nil, err
		}

		adjusted, included, err := fitpolicy.Apply(fit, totalROI, rawBlock)
		if err != nil {
			return nil, err
		}
		if !included {
			emitFiltered(sink, level, rawBlock, "fit policy "+fit.String()+" excluded candidate")
			continue
		}

		upstream, err := resolveUpstream(totalROI, rawBlock, conflicts, fit, sink, level)
		if err != nil {
			return nil, err
		}

		emitEmitted(sink, level, adjusted)
		entries = append(entries, Entry{Block: adjusted, Upstream: upstream})
	}
	return entries, nil
}

// resolveUpstream translates rawBlock's (pre-fit-adjustment) read and
// write ROIs by each conflict offset, applies the same inclusion
// criterion used for primary blocks, and collects the adjusted
// upstream Blocks that survive — preserving, by design, the symmetry
// where a conflict-derived candidate clipped away by the fit policy
// silently drops that edge rather than erroring.
func resolveUpstream(
	totalROI roi.Roi,
	rawBlock block.Block,
	conflicts []coord.Coord,
	fit fitpolicy.Fit,
	sink diagnostic.Sink,
	level int,
) ([]block.Block, error) {
	if len(conflicts) == 0 {
		return nil, nil
	}

	upstream := make([]block.Block, 0, len(conflicts))
	for _, offset := range conflicts {
		upRead, err := rawBlock.ReadROI().Translate(offset)
		if err != nil {
			return nil, err
		}
		upWrite, err := rawBlock.WriteROI().Translate(offset)
		if err != nil {
			return nil, err
		}
		upRaw, err := block.New(totalROI, upRead, upWrite)
		if err != nil {
			return nil, err
		}

		upAdjusted, included, err := fitpolicy.Apply(fit, totalROI, upRaw)
		if err != nil {
			return nil, err
		}
		if !included {
			emitFiltered(sink, level-1, upRaw, "upstream conflict candidate excluded by fit policy "+fit.String())
			continue
		}
		upstream = append(upstream, upAdjusted)
	}
	return upstream, nil
}

// translateBlock shifts baseReadROI/baseWriteROI by origin and
// constructs the resulting (pre-fit-adjustment) Block.
func translateBlock(totalROI, baseReadROI, baseWriteROI roi.Roi, origin coord.Coord) (block.Block, error) {
	readROI, err := baseReadROI.Translate(origin)
	if err != nil {
		return block.Block{}, err
	}
	writeROI, err := baseWriteROI.Translate(origin)
	if err != nil {
		return block.Block{}, err
	}
	return block.New(totalROI, readROI, writeROI)
}

func emitEmitted(sink diagnostic.Sink, level int, b block.Block) {
	sink.Emit(diagnostic.Event{
		Kind:           diagnostic.KindBlockEmitted,
		Level:          level,
		ReadROIString:  b.ReadROI().String(),
		WriteROIString: b.WriteROI().String(),
	})
}

func emitFiltered(sink diagnostic.Sink, level int, b block.Block, reason string) {
	sink.Emit(diagnostic.Event{
		Kind:           diagnostic.KindBlockFiltered,
		Level:          level,
		ReadROIString:  b.ReadROI().String(),
		WriteROIString: b.WriteROI().String(),
		Reason:         reason,
	})
}
