// Package coord defines Coord, an immutable integer N-vector shared by
// every region computed in this module.
//
// A Coord is cheap to create and is passed by value throughout. All
// Coords participating in one computation must agree on their
// dimension N; operations that mix dimensions report
// ErrDimensionMismatch rather than silently truncating or panicking.
//
// Complexity: every operation below is O(N).
package coord
