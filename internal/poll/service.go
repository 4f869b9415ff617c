package poll

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tbeaulieu/modscout/internal/event"
	"github.com/tbeaulieu/modscout/internal/exception"
	"github.com/tbeaulieu/modscout/internal/logger"
	"github.com/tbeaulieu/modscout/internal/modserver"
)

const (
	// DefaultInterval cadence of the coordinate polling loop
	DefaultInterval = time.Millisecond * 500
	// DefaultCallTimeout per-call budget for the connect sequence and for
	// each individual poll tick
	DefaultCallTimeout = time.Second * 3
)

// PollService implements the Service interface. Snapshots are published
// through the event manager so any number of listeners (UI, websocket
// stream, log) can consume them.
type PollService struct {
	client      modserver.Client
	events      event.Manager
	interval    time.Duration
	callTimeout time.Duration
	session     *Session
	mux         sync.Mutex
	log         logger.Logger
}

// NewService returns a new instance of PollService
func NewService(client modserver.Client, events event.Manager) *PollService {
	return &PollService{
		client:      client,
		events:      events,
		interval:    DefaultInterval,
		callTimeout: DefaultCallTimeout,
		log:         logger.New(),
	}
}

// SetInterval overrides the polling cadence. Takes effect for sessions
// started after the call.
func (s *PollService) SetInterval(d time.Duration) {
	if d > 0 {
		s.interval = d
	}
}

// SetCallTimeout overrides the per-call timeout. Takes effect for
// sessions started after the call.
func (s *PollService) SetCallTimeout(d time.Duration) {
	if d > 0 {
		s.callTimeout = d
	}
}

// Connect performs the health check and first coordinate fetch against an
// endpoint, each under its own timeout. Both must succeed; any failure is
// surfaced once as a wrapped ErrConnectionFailed and no session state is
// left behind. On success the polling loop starts and the first snapshot
// is returned.
func (s *PollService) Connect(ctx context.Context, endpoint modserver.Endpoint) (*modserver.Coordinates, error) {
	// the one-live-loop invariant: stop any prior session first
	s.Disconnect()

	healthCtx, healthCancel := context.WithTimeout(ctx, s.callTimeout)
	defer healthCancel()

	if _, err := s.client.Health(healthCtx, endpoint); err != nil {
		return nil, fmt.Errorf("%w: health check against %s: %s",
			exception.ErrConnectionFailed, endpoint.Addr(), err.Error())
	}

	coordsCtx, coordsCancel := context.WithTimeout(ctx, s.callTimeout)
	defer coordsCancel()

	coords, err := s.client.Coordinates(coordsCtx, endpoint)

	if err != nil {
		return nil, fmt.Errorf("%w: coordinate fetch against %s: %s",
			exception.ErrConnectionFailed, endpoint.Addr(), err.Error())
	}

	s.mux.Lock()
	defer s.mux.Unlock()

	if s.session != nil {
		// a concurrent Connect won the race; stop its loop before
		// replacing it
		s.session.cancel()
	}

	loopCtx, cancel := context.WithCancel(context.Background())

	session := &Session{
		ID:          uuid.New().String(),
		Endpoint:    endpoint,
		ConnectedAt: time.Now(),
		cancel:      cancel,
	}

	s.session = session

	s.log.Info().
		Str("session", session.ID).
		Str("endpoint", endpoint.Addr()).
		Msg("Connected to mod server")

	s.events.Send(event.Event{
		Type: event.SessionEventType,
		Payload: &SessionEvent{
			State:   SessionConnected,
			Session: session,
		},
	})

	go s.run(loopCtx, session, coords)

	return coords, nil
}

// Disconnect stops the polling loop and discards the session. Safe to call
// at any time, including when already idle.
func (s *PollService) Disconnect() {
	s.mux.Lock()
	defer s.mux.Unlock()

	if s.session == nil {
		return
	}

	s.session.cancel()

	s.log.Info().
		Str("session", s.session.ID).
		Msg("Disconnected from mod server")

	s.events.Send(event.Event{
		Type: event.SessionEventType,
		Payload: &SessionEvent{
			State:   SessionDisconnected,
			Session: s.session,
		},
	})

	s.session = nil
}

// Connected reports whether a polling session is live
func (s *PollService) Connected() bool {
	s.mux.Lock()
	defer s.mux.Unlock()

	return s.session != nil
}

// Session returns the live session, or nil when idle
func (s *PollService) Session() *Session {
	s.mux.Lock()
	defer s.mux.Unlock()

	return s.session
}

// run publishes the connect-time snapshot and then fetches coordinates on
// every tick until the session is cancelled. A failed tick is logged and
// the session stays connected; transient failures are tolerated rather
// than disconnecting on the first miss.
func (s *PollService) run(ctx context.Context, session *Session, first *modserver.Coordinates) {
	s.publish(session, first)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			tickCtx, cancel := context.WithTimeout(context.Background(), s.callTimeout)
			coords, err := s.client.Coordinates(tickCtx, session.Endpoint)
			cancel()

			if err != nil {
				s.log.Warn().
					Str("session", session.ID).
					Err(err).
					Msg("poll tick failed")
				continue
			}

			s.publish(session, coords)
		}
	}
}

// publish delivers one snapshot unless the session was disconnected or
// replaced while the fetch was in flight, in which case the result is
// discarded. The session check and the send share the mutex so nothing
// is delivered once Disconnect has returned.
func (s *PollService) publish(session *Session, coords *modserver.Coordinates) {
	s.mux.Lock()
	defer s.mux.Unlock()

	if s.session != session {
		return
	}

	s.events.Send(event.Event{
		Type: event.SnapshotEventType,
		Payload: &Snapshot{
			SessionID:   session.ID,
			Endpoint:    session.Endpoint,
			Coordinates: coords,
		},
	})
}
