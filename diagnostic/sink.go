package diagnostic

import "fmt"

// loggingSink adapts a Logger into a Sink by rendering each Event as a
// single structured log line at LevelDebug.
type loggingSink struct {
	logger Logger
}

// NewLoggingSink returns a Sink that forwards every Event to logger as
// a debug-level line carrying the event's fields.
func NewLoggingSink(logger Logger) Sink {
	return &loggingSink{logger: logger}
}

// Emit renders e through the wrapped Logger.
func (s *loggingSink) Emit(e Event) {
	l := s.logger.WithField("level", e.Level)
	switch e.Kind {
	case KindLevelComputed:
		l.WithFields(map[string]interface{}{
			"offset": e.LevelOffset.String(),
			"stride": e.LevelStride.String(),
		}).Debug(string(KindLevelComputed))
	case KindBlockEmitted:
		l.WithFields(map[string]interface{}{
			"read":  e.ReadROIString,
			"write": e.WriteROIString,
		}).Debug(string(KindBlockEmitted))
	case KindBlockFiltered:
		l.WithFields(map[string]interface{}{
			"read":   e.ReadROIString,
			"write":  e.WriteROIString,
			"reason": e.Reason,
		}).Debug(string(KindBlockFiltered))
	default:
		l.Warn(fmt.Sprintf("unknown diagnostic event kind %q", e.Kind))
	}
}
