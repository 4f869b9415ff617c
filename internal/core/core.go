package core

import (
	"context"

	"github.com/tbeaulieu/modscout/internal/config"
	"github.com/tbeaulieu/modscout/internal/discovery"
	"github.com/tbeaulieu/modscout/internal/event"
	"github.com/tbeaulieu/modscout/internal/logger"
	"github.com/tbeaulieu/modscout/internal/modserver"
	"github.com/tbeaulieu/modscout/internal/poll"
)

// Core represents our core data structure: the single surface the
// presentation layer talks to. It owns the active profile and delegates
// to the discovery and polling services.
type Core struct {
	ctx           context.Context
	cancel        context.CancelFunc
	conf          config.Config
	configService config.Service
	scanner       discovery.Scanner
	poller        poll.Service
	events        event.Manager
	log           logger.Logger
}

// New returns a new core module for the given configuration
func New(
	conf *config.Config,
	configService config.Service,
	scanner discovery.Scanner,
	poller poll.Service,
	events event.Manager,
) *Core {
	log := logger.New()

	ctx, cancel := context.WithCancel(context.Background())

	return &Core{
		ctx:           ctx,
		cancel:        cancel,
		conf:          *conf,
		configService: configService,
		scanner:       scanner,
		poller:        poller,
		events:        events,
		log:           log,
	}
}

// Stop tears down the core: any live polling session is stopped first
func (c *Core) Stop() error {
	c.poller.Disconnect()
	c.cancel()
	return c.ctx.Err()
}

// Conf returns the active profile
func (c *Core) Conf() config.Config {
	return c.conf
}

// UpdateConfig persists changes to the active profile
func (c *Core) UpdateConfig(conf config.Config) error {
	updated, err := c.configService.Update(&conf)

	if err != nil {
		return err
	}

	c.conf = *updated

	return nil
}

// SetConfig switches the active profile by name
func (c *Core) SetConfig(name string) error {
	conf, err := c.configService.Get(name)

	if err != nil {
		return err
	}

	if err := c.configService.SetLastLoaded(name); err != nil {
		return err
	}

	c.conf = *conf

	return nil
}

// DeleteConfig removes a stored profile by name
func (c *Core) DeleteConfig(name string) error {
	return c.configService.Delete(name)
}

// GetConfigs returns all stored profiles
func (c *Core) GetConfigs() ([]*config.Config, error) {
	return c.configService.GetAll()
}

// Scan runs one full scan for mod servers. A zero port falls back to the
// active profile's port. Scans never fail; no servers found is an empty
// list.
func (c *Core) Scan(port int) []*discovery.ProbeResult {
	if port == 0 {
		port = c.conf.Scan.Port
	}

	return c.scanner.Scan(c.ctx, port)
}

// Connect establishes a polling session against an endpoint and returns
// its first coordinate snapshot
func (c *Core) Connect(endpoint modserver.Endpoint) (*modserver.Coordinates, error) {
	return c.poller.Connect(c.ctx, endpoint)
}

// Disconnect stops the active polling session if there is one
func (c *Core) Disconnect() {
	c.poller.Disconnect()
}

// Connected reports whether a polling session is live
func (c *Core) Connected() bool {
	return c.poller.Connected()
}

// Session returns the live polling session, or nil when idle
func (c *Core) Session() *poll.Session {
	return c.poller.Session()
}

// RegisterSnapshotListener registers a channel to receive every
// coordinate snapshot delivered by the polling session
func (c *Core) RegisterSnapshotListener(channel chan event.Event) int {
	return c.events.RegisterListener(event.SnapshotEventType, channel)
}

// RemoveListener removes a previously registered listener
func (c *Core) RemoveListener(id int) {
	c.events.RemoveListener(id)
}
