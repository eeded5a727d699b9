package observer

import "log"

// Observer receives diagnostics from the computation core so the engine stays
// free of direct console output. At most one stage calls it at a time.
type Observer interface {
	// EventSkipped reports an event excluded from a computation (no anchor
	// day, incomplete CAR window) with the reason.
	EventSkipped(eventIndex int, reason string)
	// Progress reports a stage-level note, e.g. how many returns resolved.
	Progress(format string, args ...any)
}

// LogObserver writes diagnostics to the standard logger.
type LogObserver struct{}

func (LogObserver) EventSkipped(eventIndex int, reason string) {
	log.Printf("[DEBUG] event %d skipped: %s", eventIndex, reason)
}

func (LogObserver) Progress(format string, args ...any) {
	log.Printf("[INFO] "+format, args...)
}

// NopObserver discards all diagnostics.
type NopObserver struct{}

func (NopObserver) EventSkipped(int, string) {}
func (NopObserver) Progress(string, ...any)  {}
