package discovery

import (
	"context"
	"time"

	"github.com/tbeaulieu/modscout/internal/logger"
	"github.com/tbeaulieu/modscout/internal/modserver"
)

// ProbeTimeout single budget bounding the health check and the coordinate
// fetch of one probe together, not independently
const ProbeTimeout = time.Millisecond * 1500

// HTTPProber is our Prober implementation against the mod's REST surface
type HTTPProber struct {
	client  modserver.Client
	timeout time.Duration
	log     logger.Logger
}

// NewHTTPProber returns a new instance of HTTPProber
func NewHTTPProber(client modserver.Client) *HTTPProber {
	return &HTTPProber{
		client:  client,
		timeout: ProbeTimeout,
		log:     logger.New(),
	}
}

// SetTimeout overrides the probe budget. Takes effect for subsequent
// probes.
func (p *HTTPProber) SetTimeout(d time.Duration) {
	if d > 0 {
		p.timeout = d
	}
}

// Probe checks one endpoint for a live mod server. A failed health check
// collapses to nil whatever the cause. A healthy server whose coordinate
// fetch fails for a reason other than the overall budget expiring is
// reported as online-but-idle.
func (p *HTTPProber) Probe(ctx context.Context, endpoint modserver.Endpoint) *ProbeResult {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	if _, err := p.client.Health(ctx, endpoint); err != nil {
		p.log.Debug().
			Str("endpoint", endpoint.Addr()).
			Err(err).
			Msg("endpoint not responding")
		return nil
	}

	coords, err := p.client.Coordinates(ctx, endpoint)

	if err != nil {
		if ctx.Err() != nil {
			// probe budget expired mid-fetch
			return nil
		}

		return &ProbeResult{
			Endpoint:   endpoint,
			PlayerName: OfflinePlayerName,
			IsOnline:   false,
		}
	}

	playerName := coords.PlayerName

	if playerName == "" {
		playerName = UnknownPlayerName
	}

	return &ProbeResult{
		Endpoint:   endpoint,
		PlayerName: playerName,
		IsOnline:   true,
	}
}
