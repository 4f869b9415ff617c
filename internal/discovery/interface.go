package discovery

import (
	"context"

	"github.com/tbeaulieu/modscout/internal/modserver"
)

//go:generate mockgen -destination=../mock/discovery/mock_discovery.go -package=mock_discovery . Prober,SubnetResolver,Scanner

// Prober interface for testing a single endpoint for a live mod server.
// A nil result means the endpoint did not answer; probes never error since
// an unreachable host is the expected common case, not a failure.
type Prober interface {
	Probe(ctx context.Context, endpoint modserver.Endpoint) *ProbeResult
}

// SubnetResolver interface for producing the ordered list of subnet
// prefixes to scan. Implementations never error and never return an
// empty list.
type SubnetResolver interface {
	ResolveBases(ctx context.Context) []string
}

// Scanner interface for scanning likely subnets for mod servers
type Scanner interface {
	Scan(ctx context.Context, port int) []*ProbeResult
}
