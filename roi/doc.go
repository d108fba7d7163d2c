// Package roi defines Roi, an axis-aligned N-D region expressed as an
// (offset, shape) pair, and the region algebra the planner is built on:
// containment, intersection, translation, and grow/shrink.
//
// A Roi is immutable; every method returns a new Roi. New rejects
// negative shape components and Intersect clamps them at zero; Grow
// applies its amounts unchecked, so shrinking an axis by more than its
// extent yields a negative shape component. An empty Roi (any shape
// component zero) is contained in every Roi whose bounds surround its
// point.
package roi
