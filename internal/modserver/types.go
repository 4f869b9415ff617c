package modserver

import (
	"fmt"
	"net"
	"strconv"
)

// Endpoint identifies a candidate or connected mod server.
// Equality is structural (host + port).
type Endpoint struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

// Addr returns the endpoint formatted as host:port
func (e Endpoint) Addr() string {
	return net.JoinHostPort(e.Host, strconv.Itoa(e.Port))
}

// BaseURL returns the root http url for the endpoint
func (e Endpoint) BaseURL() string {
	return fmt.Sprintf("http://%s", e.Addr())
}

// HealthStatus liveness signal returned by the mod's /health endpoint
type HealthStatus struct {
	Status    string `json:"status"`
	Timestamp int64  `json:"timestamp"`
}

// Coordinates one snapshot of the player's in-world position as returned
// by the mod's /coords endpoint. Snapshots are immutable once produced;
// a newer snapshot supersedes rather than mutates an older one.
type Coordinates struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Z          float64 `json:"z"`
	Dimension  string  `json:"dimension"`
	Timestamp  int64   `json:"timestamp"`
	PlayerName string  `json:"playerName"`
}
