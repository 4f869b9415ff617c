package discovery

import "github.com/tbeaulieu/modscout/internal/modserver"

const (
	// UnknownPlayerName shown when a server answers but reports no name
	UnknownPlayerName = "Unknown Player"
	// OfflinePlayerName shown when a server is healthy but has no player
	// coordinates to report
	OfflinePlayerName = "Player Offline"
)

// ProbeResult represents a responsive mod server found during a scan.
// Results exist only for endpoints that answered; unresponsive endpoints
// produce nothing.
type ProbeResult struct {
	Endpoint   modserver.Endpoint
	PlayerName string
	IsOnline   bool
}
