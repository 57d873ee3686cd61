package model

import "time"

// Event is a single timestamped occurrence extracted from one column of an
// entity's row. It is immutable once extracted.
type Event struct {
	Label     string    // resolved display label
	Column    string    // source column name
	Timestamp time.Time
}

// Entity is one row of source data identified by an id value.
type Entity struct {
	ID     string
	Events []Event
}

// Segment is a contiguous run of events whose internal gaps never exceed the
// configured threshold. Events are sorted ascending by timestamp.
type Segment struct {
	Events []Event
}

// Start returns the timestamp of the first event in the segment.
func (s Segment) Start() time.Time {
	if len(s.Events) == 0 {
		return time.Time{}
	}
	return s.Events[0].Timestamp
}

// End returns the timestamp of the last event in the segment.
func (s Segment) End() time.Time {
	if len(s.Events) == 0 {
		return time.Time{}
	}
	return s.Events[len(s.Events)-1].Timestamp
}

// SkippedEntity records an entity that was not rendered during a batch run.
type SkippedEntity struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

// Summary is the result of a batch render.
type Summary struct {
	RunID    string          `json:"run_id"`
	Rendered int             `json:"rendered"`
	Skipped  []SkippedEntity `json:"skipped"`
}
