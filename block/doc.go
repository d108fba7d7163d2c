// Package block defines Block, the immutable (total_roi, read_roi,
// write_roi) unit the planner schedules, and its deterministic ID.
//
// Two Blocks built from an equal total_roi and an equal write_roi
// always produce the same ID; distinct write_roi values produce
// distinct IDs with overwhelming probability. The ID is a
// 64-bit FNV-1a hash over a canonical little-endian encoding of
// (total_roi.begin, total_roi.shape, write_roi.begin, write_roi.shape).
// See DESIGN.md for why this uses the standard library's hash/fnv
// rather than a third-party content-addressing library.
package block
