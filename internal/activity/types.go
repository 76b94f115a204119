// Package activity publishes diary activity events to a Redis Stream.
// A separate analytics sidecar consumes the stream; nothing flows back,
// so this side only writes.
package activity

import "time"

// Stream name constant
const StreamActivity = "diary:activity"

// Schema version constant
const (
	SchemaVersionV1 = "v1"
)

// Event types published by the resource handlers.
const (
	EventEntryCreated = "entry.created"
	EventMoodLogged   = "mood.logged"
	EventNoteCreated  = "note.created"
	EventTodoTrashed  = "todo.trashed"
)

// Event is a single activity record.
type Event struct {
	Type       string    `json:"type"`
	UserID     uint      `json:"user_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
