package poll

import (
	"context"
	"time"

	"github.com/tbeaulieu/modscout/internal/modserver"
)

// Session is the explicit owned handle for one live polling loop.
// It is created by Connect, consumed by Disconnect, and never revived.
type Session struct {
	ID          string
	Endpoint    modserver.Endpoint
	ConnectedAt time.Time
	cancel      context.CancelFunc
}

// SessionState labels the transition carried by a session event
type SessionState string

const (
	// SessionConnected a polling session was established
	SessionConnected SessionState = "connected"
	// SessionDisconnected a polling session was stopped
	SessionDisconnected SessionState = "disconnected"
)

// SessionEvent is the payload of every SessionEventType event
type SessionEvent struct {
	State   SessionState `json:"state"`
	Session *Session     `json:"session"`
}

// Snapshot pairs one coordinate payload with the session that produced it.
// Published as the payload of every SnapshotEventType event.
type Snapshot struct {
	SessionID   string                 `json:"sessionId"`
	Endpoint    modserver.Endpoint     `json:"endpoint"`
	Coordinates *modserver.Coordinates `json:"coordinates"`
}
