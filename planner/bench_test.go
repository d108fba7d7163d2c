// Package planner_test provides benchmarks for planner.Plan.
package planner_test

import (
	"testing"

	"github.com/blockwise/scheduler/coord"
	"github.com/blockwise/scheduler/fitpolicy"
	"github.com/blockwise/scheduler/planner"
	"github.com/blockwise/scheduler/roi"
)

// Benchmark sinks prevent accidental dead-code elimination.
var (
	benchSinkGraph planner.Graph
	benchSinkErr   error
)

// BenchmarkPlan_NoHalo measures Plan throughput for the degenerate
// case where read_roi equals write_roi (single level, no conflict
// resolution work).
func BenchmarkPlan_NoHalo(b *testing.B) {
	total, _ := roi.New(coord.New(0), coord.New(10_000))
	rw, _ := roi.New(coord.New(0), coord.New(10))
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		benchSinkGraph, benchSinkErr = planner.Plan(total, rw, rw, true, fitpolicy.Valid)
	}
	_ = benchSinkErr
}

// BenchmarkPlan_WithHalo measures Plan throughput when a read halo
// forces multi-level conflict resolution.
func BenchmarkPlan_WithHalo(b *testing.B) {
	total, _ := roi.New(coord.New(0), coord.New(10_000))
	read, _ := roi.New(coord.New(0), coord.New(30))
	write, _ := roi.New(coord.New(10), coord.New(10))
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		benchSinkGraph, benchSinkErr = planner.Plan(total, read, write, true, fitpolicy.Valid)
	}
	_ = benchSinkErr
}

// BenchmarkPlan_2D measures Plan throughput for a 2-D region with an
// asymmetric halo, exercising the Cartesian-product offset and
// conflict-offset paths across two axes.
func BenchmarkPlan_2D(b *testing.B) {
	total, _ := roi.New(coord.New(0, 0), coord.New(900, 900))
	write, _ := roi.New(coord.New(0, 0), coord.New(30, 30))
	read, _ := roi.New(coord.New(-10, -5), coord.New(50, 40))
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		benchSinkGraph, benchSinkErr = planner.Plan(total, read, write, true, fitpolicy.Valid)
	}
	_ = benchSinkErr
}
