package planner_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/blockwise/scheduler/block"
	"github.com/blockwise/scheduler/coord"
	"github.com/blockwise/scheduler/roi"
)

func mustRoi(t *testing.T, offset, shape coord.Coord) roi.Roi {
	t.Helper()
	r, err := roi.New(offset, shape)
	require.NoError(t, err)
	return r
}

func mustBlock(t *testing.T, total roi.Roi, begin, shape int64) block.Block {
	t.Helper()
	rw, err := roi.New(coord.New(begin), coord.New(shape))
	require.NoError(t, err)
	b, err := block.New(total, rw, rw)
	require.NoError(t, err)
	return b
}
