package recorder

import "InsiderScope/internal/analysis"

// Recorder persists analysis runs so dashboards can read historical results.
type Recorder interface {
	// RecordRun stores every derived table of one analysis run under a fresh
	// run ID and returns that ID.
	RecordRun(result *analysis.Result) (string, error)
	Close() error
}
