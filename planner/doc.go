// Package planner implements the block-wise dependency scheduler:
// level stride, level offsets, conflict offsets, block enumeration,
// and assembly of the final dependency graph.
//
// Plan is a pure function: synchronous, deterministic, and free of
// shared mutable state. It performs no I/O and accepts no
// context, since it never blocks.
//
// Fit dispatch is expressed through package fitpolicy's enum switch
// rather than a string-keyed lookup table, and diagnostics flow
// through an injected diagnostic.Sink rather than a package-level
// logger.
package planner
