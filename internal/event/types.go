package event

type EventType string

const (
	// SnapshotEventType published for every coordinate snapshot delivered
	// by an active polling session
	SnapshotEventType EventType = "coordinate-snapshot"
	// SessionEventType published on session connect and disconnect
	SessionEventType EventType = "session-update"
	// ErrorEventType published for recoverable errors
	ErrorEventType EventType = "error"
	// FatalErrorEventType published for errors the app cannot recover from
	FatalErrorEventType EventType = "fatal-error"
)

// Event data structure representing any event we may want to react to
type Event struct {
	Type    EventType
	Payload any
}
