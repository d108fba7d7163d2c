package diagnostic

import (
	"github.com/blockwise/scheduler/coord"
)

// EventKind names one of the three events the planner reports.
type EventKind string

// Event kinds emitted by the planner.
const (
	KindLevelComputed EventKind = "level-computed"
	KindBlockEmitted  EventKind = "block-emitted"
	KindBlockFiltered EventKind = "block-filtered"
)

// Event carries the geometry relevant to one diagnostic occurrence.
// Only the fields relevant to Kind are populated; the rest are zero.
type Event struct {
	Kind  EventKind
	Level int

	// Populated for KindLevelComputed.
	LevelOffset coord.Coord
	LevelStride coord.Coord

	// Populated for KindBlockEmitted and KindBlockFiltered.
	ReadROIString  string
	WriteROIString string

	// Populated for KindBlockFiltered only.
	Reason string
}

// Sink receives diagnostic events from the planner. Implementations
// must not block the planner indefinitely; Emit is called
// synchronously on the planning goroutine.
type Sink interface {
	Emit(Event)
}
