package planner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockwise/scheduler/block"
	"github.com/blockwise/scheduler/coord"
	"github.com/blockwise/scheduler/diagnostic"
	"github.com/blockwise/scheduler/fitpolicy"
	"github.com/blockwise/scheduler/planner"
)

// levelRecorder collects the stride of every level-computed event Plan
// reports.
type levelRecorder struct {
	strides []coord.Coord
}

func (r *levelRecorder) Emit(e diagnostic.Event) {
	if e.Kind == diagnostic.KindLevelComputed {
		r.strides = append(r.strides, e.LevelStride)
	}
}

// TestPlan_S1_NoHaloExactTile covers scenario S1: total=Roi(0,100),
// read=write=Roi(0,10), fit=valid, conflict=true. Expect 10 blocks in
// a single level, all with empty upstream lists.
func TestPlan_S1_NoHaloExactTile(t *testing.T) {
	total := mustRoi(t, coord.New(0), coord.New(100))
	rw := mustRoi(t, coord.New(0), coord.New(10))

	graph, err := planner.Plan(total, rw, rw, true, fitpolicy.Valid)
	require.NoError(t, err)

	assert.Len(t, graph, 10)
	for _, e := range graph {
		assert.Empty(t, e.Upstream)
	}
}

// TestPlan_S2_SymmetricHalo covers scenario S2: total=Roi(0,100),
// write=Roi(10,10), read=Roi(0,30). level_stride=20, 2 levels with
// offsets {10, 0} after reversal.
func TestPlan_S2_SymmetricHalo(t *testing.T) {
	total := mustRoi(t, coord.New(0), coord.New(100))
	read := mustRoi(t, coord.New(0), coord.New(30))
	write := mustRoi(t, coord.New(10), coord.New(10))

	graph, err := planner.Plan(total, read, write, true, fitpolicy.Valid)
	require.NoError(t, err)

	// 4 blocks per level (origins 10,30,50,70 / 0,20,40,60); origin 90/80
	// are excluded by valid fit since their read_roi overruns total.
	require.Len(t, graph, 8)

	byWriteBegin := map[int64]planner.Entry{}
	for _, e := range graph {
		byWriteBegin[e.Block.WriteROI().Begin().At(0)] = e
	}

	// Level 0 (offset 10): write begins at 20,40,60,80.
	for _, wb := range []int64{20, 40, 60, 80} {
		e, ok := byWriteBegin[wb]
		require.True(t, ok, "expected level-0 block with write begin %d", wb)
		assert.Empty(t, e.Upstream, "level-0 blocks have no prior level")
	}

	// Level-1 block at write begin 30 (origin 20) should see both
	// neighbours from level 0 (write begins 20 and 40).
	e, ok := byWriteBegin[30]
	require.True(t, ok)
	require.Len(t, e.Upstream, 2)
	gotBegins := []int64{e.Upstream[0].WriteROI().Begin().At(0), e.Upstream[1].WriteROI().Begin().At(0)}
	assert.ElementsMatch(t, []int64{20, 40}, gotBegins)

	// Level-1 block at write begin 10 (origin 0) is clipped on one side
	// by the valid fit policy: only one upstream survives.
	e, ok = byWriteBegin[10]
	require.True(t, ok)
	require.Len(t, e.Upstream, 1)
	assert.Equal(t, int64(20), e.Upstream[0].WriteROI().Begin().At(0))
}

// TestPlan_S3_TwoDAsymmetricHalo covers scenario S3's stride and level
// count: total=Roi((0,0),(90,90)), write=Roi((0,0),(30,30)),
// read=Roi((-10,-5),(50,40)). Expect level_stride=(60,60), 4 levels.
func TestPlan_S3_TwoDAsymmetricHalo(t *testing.T) {
	total := mustRoi(t, coord.New(0, 0), coord.New(90, 90))
	write := mustRoi(t, coord.New(0, 0), coord.New(30, 30))
	read := mustRoi(t, coord.New(-10, -5), coord.New(50, 40))

	rec := &levelRecorder{}
	graph, err := planner.Plan(total, read, write, true, fitpolicy.Valid, planner.WithSink(rec))
	require.NoError(t, err)

	// There are 2 distinct offsets per axis (level_stride/write_shape =
	// 60/30 = 2), so 4 levels, each reporting stride (60,60).
	require.Len(t, rec.strides, 4)
	for _, s := range rec.strides {
		assert.True(t, s.Equal(coord.New(60, 60)))
	}

	// Under valid fit each level holds exactly one block whose read_roi
	// fits in the 90x90 total, so there are 4 distinct write begins.
	seenWriteBegins := map[[2]int64]bool{}
	for _, e := range graph {
		wb := e.Block.WriteROI().Begin()
		seenWriteBegins[[2]int64{wb.At(0), wb.At(1)}] = true
	}
	assert.Len(t, seenWriteBegins, 4)

	// Spot check: every block's read_roi contains its write_roi
	// (invariant 1) and no block has more than 4 upstream conflicts
	// (2^2 axes).
	for _, e := range graph {
		ok, err := e.Block.ReadROI().Contains(e.Block.WriteROI())
		require.NoError(t, err)
		assert.True(t, ok)
		assert.LessOrEqual(t, len(e.Upstream), 4)
	}
}

// TestPlan_S4_Overhang covers scenario S4: total shape 95 (vs S2's
// 100). overhang includes the trailing block; valid omits it; shrink
// includes it with write shape clipped to 5.
func TestPlan_S4_Overhang(t *testing.T) {
	total := mustRoi(t, coord.New(0), coord.New(95))
	read := mustRoi(t, coord.New(0), coord.New(30))
	write := mustRoi(t, coord.New(10), coord.New(10))

	validGraph, err := planner.Plan(total, read, write, true, fitpolicy.Valid)
	require.NoError(t, err)

	overhangGraph, err := planner.Plan(total, read, write, true, fitpolicy.Overhang)
	require.NoError(t, err)

	shrinkGraph, err := planner.Plan(total, read, write, true, fitpolicy.Shrink)
	require.NoError(t, err)

	assert.Greater(t, len(overhangGraph), len(validGraph))
	assert.Greater(t, len(shrinkGraph), len(validGraph))

	// The block with write [80,90) has its read [70,100) clipped to
	// [70,95), so its write shrinks by the same 5 to shape 5.
	foundClipped := false
	for _, e := range shrinkGraph {
		if e.Block.WriteROI().Shape().At(0) == 5 {
			foundClipped = true
		}
		// shrink never emits a non-positive write shape.
		assert.Greater(t, e.Block.WriteROI().Shape().At(0), int64(0))
	}
	assert.True(t, foundClipped, "expected a shrunk trailing block with write shape 5")
}

// TestPlan_S5_NoConflict covers scenario S5: same inputs as S2 but
// read_write_conflict=false. Every upstream list is empty; the block
// set is unchanged.
func TestPlan_S5_NoConflict(t *testing.T) {
	total := mustRoi(t, coord.New(0), coord.New(100))
	read := mustRoi(t, coord.New(0), coord.New(30))
	write := mustRoi(t, coord.New(10), coord.New(10))

	withConflict, err := planner.Plan(total, read, write, true, fitpolicy.Valid)
	require.NoError(t, err)
	withoutConflict, err := planner.Plan(total, read, write, false, fitpolicy.Valid)
	require.NoError(t, err)

	assert.Len(t, withoutConflict, len(withConflict))
	for _, e := range withoutConflict {
		assert.Empty(t, e.Upstream)
	}
}

// TestPlan_S6_InvalidGeometry covers scenario S6: write not contained
// in read fails with ErrInvalidGeometry.
func TestPlan_S6_InvalidGeometry(t *testing.T) {
	total := mustRoi(t, coord.New(0), coord.New(100))
	read := mustRoi(t, coord.New(20), coord.New(10))
	write := mustRoi(t, coord.New(0), coord.New(10))

	graph, err := planner.Plan(total, read, write, true, fitpolicy.Valid)
	assert.Nil(t, graph)
	assert.ErrorIs(t, err, planner.ErrInvalidGeometry)
}

// TestPlan_ZeroWriteShape_IsInvalidGeometry ensures a zero write shape
// component is rejected.
func TestPlan_ZeroWriteShape_IsInvalidGeometry(t *testing.T) {
	total := mustRoi(t, coord.New(0), coord.New(100))
	write := mustRoi(t, coord.New(0), coord.New(0))

	_, err := planner.Plan(total, write, write, true, fitpolicy.Valid)
	assert.ErrorIs(t, err, planner.ErrInvalidGeometry)
}

// TestPlan_DimensionMismatch ensures total/read/write of differing
// dimension is rejected before any geometry is computed.
func TestPlan_DimensionMismatch(t *testing.T) {
	total := mustRoi(t, coord.New(0, 0), coord.New(100, 100))
	rw := mustRoi(t, coord.New(0), coord.New(10))

	_, err := planner.Plan(total, rw, rw, true, fitpolicy.Valid)
	assert.ErrorIs(t, err, planner.ErrDimensionMismatch)
}

// TestPlan_UnknownFit propagates fitpolicy's sentinel unchanged.
func TestPlan_UnknownFit(t *testing.T) {
	total := mustRoi(t, coord.New(0), coord.New(100))
	rw := mustRoi(t, coord.New(0), coord.New(10))

	_, err := planner.Plan(total, rw, rw, true, fitpolicy.Fit(99))
	assert.ErrorIs(t, err, fitpolicy.ErrUnknownFit)
}

// TestPlan_Determinism covers invariant 8: two invocations with equal
// inputs yield sequences with equal block ids in equal order.
func TestPlan_Determinism(t *testing.T) {
	total := mustRoi(t, coord.New(0, 0), coord.New(90, 90))
	write := mustRoi(t, coord.New(0, 0), coord.New(30, 30))
	read := mustRoi(t, coord.New(-10, -5), coord.New(50, 40))

	g1, err := planner.Plan(total, read, write, true, fitpolicy.Valid)
	require.NoError(t, err)
	g2, err := planner.Plan(total, read, write, true, fitpolicy.Valid)
	require.NoError(t, err)

	require.Len(t, g2, len(g1))
	for i := range g1 {
		assert.Equal(t, g1[i].Block.ID(), g2[i].Block.ID())
		require.Len(t, g2[i].Upstream, len(g1[i].Upstream))
		for j := range g1[i].Upstream {
			assert.Equal(t, g1[i].Upstream[j].ID(), g2[i].Upstream[j].ID())
		}
	}
}

// TestPlan_IntraLevelIndependence covers invariant 2 directly: for any
// two blocks in the same level (here, level 0 of S2's plan), one block's
// write_roi must not intersect another's read_roi and vice versa.
func TestPlan_IntraLevelIndependence(t *testing.T) {
	total := mustRoi(t, coord.New(0), coord.New(100))
	read := mustRoi(t, coord.New(0), coord.New(30))
	write := mustRoi(t, coord.New(10), coord.New(10))

	graph, err := planner.Plan(total, read, write, true, fitpolicy.Valid)
	require.NoError(t, err)

	// Level 0 consists of the blocks with empty upstream in this
	// 2-level plan; compare every pair within that set.
	var level0 []block.Block
	for _, e := range graph {
		if len(e.Upstream) == 0 {
			level0 = append(level0, e.Block)
		}
	}
	require.NotEmpty(t, level0)

	for i := range level0 {
		for j := range level0 {
			if i == j {
				continue
			}
			inter, err := level0[i].WriteROI().Intersect(level0[j].ReadROI())
			require.NoError(t, err)
			assert.True(t, inter.IsEmpty())
		}
	}
}

// TestPlan_NoSelfDependency covers invariant 4.
func TestPlan_NoSelfDependency(t *testing.T) {
	total := mustRoi(t, coord.New(0), coord.New(100))
	read := mustRoi(t, coord.New(0), coord.New(30))
	write := mustRoi(t, coord.New(10), coord.New(10))

	graph, err := planner.Plan(total, read, write, true, fitpolicy.Valid)
	require.NoError(t, err)

	for _, e := range graph {
		for _, up := range e.Upstream {
			assert.NotEqual(t, e.Block.ID(), up.ID())
		}
	}
}

// TestPlan_UpstreamOnlyReferencesEarlierPositions covers invariant 5:
// every upstream Block's id must match some entry strictly before the
// current one in the emitted sequence.
func TestPlan_UpstreamOnlyReferencesEarlierPositions(t *testing.T) {
	total := mustRoi(t, coord.New(0, 0), coord.New(90, 90))
	write := mustRoi(t, coord.New(0, 0), coord.New(30, 30))
	read := mustRoi(t, coord.New(-10, -5), coord.New(50, 40))

	graph, err := planner.Plan(total, read, write, true, fitpolicy.Valid)
	require.NoError(t, err)

	position := make(map[block.ID]int, len(graph))
	for i, e := range graph {
		position[e.Block.ID()] = i
	}

	for i, e := range graph {
		for _, up := range e.Upstream {
			pos, ok := position[up.ID()]
			require.True(t, ok, "upstream block must appear in the emitted sequence")
			assert.Less(t, pos, i)
		}
	}
}

// TestValidate_AcceptsPlanOutput covers the cross-check path: every
// graph Plan can produce must also pass independent DAG validation.
func TestValidate_AcceptsPlanOutput(t *testing.T) {
	total := mustRoi(t, coord.New(0, 0), coord.New(90, 90))
	write := mustRoi(t, coord.New(0, 0), coord.New(30, 30))
	read := mustRoi(t, coord.New(-10, -5), coord.New(50, 40))

	graph, err := planner.Plan(total, read, write, true, fitpolicy.Valid)
	require.NoError(t, err)

	assert.NoError(t, planner.Validate(graph))
}

// TestValidate_RejectsCycle covers the negative path: a hand-built
// Graph with a dependency cycle must fail Validate.
func TestValidate_RejectsCycle(t *testing.T) {
	total := mustRoi(t, coord.New(0), coord.New(100))
	b1 := mustBlock(t, total, 0, 10)
	b2 := mustBlock(t, total, 10, 10)

	graph := planner.Graph{
		{Block: b1, Upstream: []block.Block{b2}},
		{Block: b2, Upstream: []block.Block{b1}},
	}

	assert.Error(t, planner.Validate(graph))
}

// TestPlan_Coverage_ValidFit_ExactTile covers invariant 6 for the no-halo exact
// tile case: the union of write_roi over emitted blocks is exactly
// total_roi.
func TestPlan_Coverage_ValidFit_ExactTile(t *testing.T) {
	total := mustRoi(t, coord.New(0), coord.New(100))
	rw := mustRoi(t, coord.New(0), coord.New(10))

	graph, err := planner.Plan(total, rw, rw, true, fitpolicy.Valid)
	require.NoError(t, err)

	covered := make([]bool, 100)
	for _, e := range graph {
		b := e.Block.WriteROI().Begin().At(0)
		s := e.Block.WriteROI().Shape().At(0)
		for x := b; x < b+s; x++ {
			covered[x] = true
		}
	}
	for i, c := range covered {
		assert.True(t, c, "position %d not covered", i)
	}
}
