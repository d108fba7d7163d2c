// Package scheduler is the block-wise dependency scheduler: given a
// total region, a per-block read region and a per-block write region,
// it decomposes the total region into a sequence of Blocks grouped
// into independent levels, with downstream blocks listing the
// upstream blocks whose writes their reads may depend on.
//
// Subpackages:
//
//	coord/      — immutable N-D integer vectors and their arithmetic
//	roi/        — axis-aligned N-D regions built from Coord
//	block/      — the planned unit of work: a stable id plus three ROIs
//	fitpolicy/  — valid/overhang/shrink handling of non-exact tiling
//	planner/    — the scheduling algorithm: Plan and Validate
//	diagnostic/ — a leveled logger and an event Sink the planner reports to
//	executor/   — a reference worker-pool adapter that runs a planned graph
//	cmd/blockwise/ — a CLI exposing plan and demo
//
// Plan itself is synchronous, deterministic and side-effect free;
// concurrency only enters at the executor, which is a swappable
// collaborator rather than a core dependency.
package scheduler
