// Package fitpolicy implements three boundary-handling strategies:
// valid, overhang, and shrink. Each Fit value decides
// whether a candidate Block is included in the plan and, for shrink,
// how its read_roi/write_roi are adjusted to stay within total_roi.
//
// Expressed as a Go enum switch rather than a string-keyed lambda
// dictionary.
package fitpolicy
