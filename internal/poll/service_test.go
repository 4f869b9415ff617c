package poll_test

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tbeaulieu/modscout/internal/event"
	"github.com/tbeaulieu/modscout/internal/exception"
	"github.com/tbeaulieu/modscout/internal/modserver"
	"github.com/tbeaulieu/modscout/internal/poll"
)

const coordsPayload = `{"x":10.0,"y":64.0,"z":-5.0,"dimension":"overworld",` +
	`"timestamp":1000,"playerName":"Steve"}`

func newModServer(healthStatus int) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/health":
				if healthStatus != http.StatusOK {
					w.WriteHeader(healthStatus)
					return
				}
				w.Write([]byte(`{"status":"ok","timestamp":1000}`))
			case "/coords":
				w.Write([]byte(coordsPayload))
			}
		},
	))
}

func endpointFor(t *testing.T, server *httptest.Server) modserver.Endpoint {
	host, portStr, err := net.SplitHostPort(server.Listener.Addr().String())

	if err != nil {
		t.Fatalf("failed to parse test server address: %s", err.Error())
	}

	port, _ := strconv.Atoi(portStr)

	return modserver.Endpoint{Host: host, Port: port}
}

func TestPollService(t *testing.T) {
	expectedCoords := &modserver.Coordinates{
		X:          10.0,
		Y:          64.0,
		Z:          -5.0,
		Dimension:  "overworld",
		Timestamp:  1000,
		PlayerName: "Steve",
	}

	t.Run("connect returns the first coordinate snapshot", func(st *testing.T) {
		server := newModServer(http.StatusOK)
		defer server.Close()

		events := event.NewEventManager()
		service := poll.NewService(modserver.NewHTTPClient(), events)

		defer service.Disconnect()

		coords, err := service.Connect(context.Background(), endpointFor(st, server))

		assert.NoError(st, err)
		assert.Equal(st, expectedCoords, coords)
		assert.True(st, service.Connected())
		assert.NotNil(st, service.Session())
	})

	t.Run("delivers a snapshot within one polling interval", func(st *testing.T) {
		server := newModServer(http.StatusOK)
		defer server.Close()

		events := event.NewEventManager()
		service := poll.NewService(modserver.NewHTTPClient(), events)

		defer service.Disconnect()

		listener := make(chan event.Event, 10)
		events.RegisterListener(event.SnapshotEventType, listener)

		endpoint := endpointFor(st, server)

		_, err := service.Connect(context.Background(), endpoint)

		assert.NoError(st, err)

		select {
		case evt := <-listener:
			snapshot, ok := evt.Payload.(*poll.Snapshot)

			assert.True(st, ok)
			assert.Equal(st, endpoint, snapshot.Endpoint)
			assert.Equal(st, service.Session().ID, snapshot.SessionID)
			assert.Equal(st, expectedCoords, snapshot.Coordinates)
		case <-time.After(poll.DefaultInterval):
			st.Fatal("no snapshot delivered within one polling interval")
		}
	})

	t.Run("surfaces connect failure when health check fails", func(st *testing.T) {
		server := newModServer(http.StatusServiceUnavailable)
		defer server.Close()

		events := event.NewEventManager()
		service := poll.NewService(modserver.NewHTTPClient(), events)

		_, err := service.Connect(context.Background(), endpointFor(st, server))

		assert.Error(st, err)
		assert.True(st, errors.Is(err, exception.ErrConnectionFailed))
		assert.False(st, service.Connected())
		assert.Nil(st, service.Session())
	})

	t.Run("surfaces connect failure for unreachable endpoint", func(st *testing.T) {
		events := event.NewEventManager()
		service := poll.NewService(modserver.NewHTTPClient(), events)

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()

		_, err := service.Connect(ctx, modserver.Endpoint{Host: "127.0.0.1", Port: 1})

		assert.Error(st, err)
		assert.True(st, errors.Is(err, exception.ErrConnectionFailed))
	})

	t.Run("no snapshots delivered after disconnect", func(st *testing.T) {
		server := newModServer(http.StatusOK)
		defer server.Close()

		events := event.NewEventManager()
		service := poll.NewService(modserver.NewHTTPClient(), events)

		listener := make(chan event.Event, 100)
		events.RegisterListener(event.SnapshotEventType, listener)

		_, err := service.Connect(context.Background(), endpointFor(st, server))

		assert.NoError(st, err)

		service.Disconnect()

		assert.False(st, service.Connected())

		// anything buffered was published before the disconnect landed;
		// once Disconnect returns the loop must go quiet, even for a tick
		// whose fetch was already in flight
		for len(listener) > 0 {
			<-listener
		}

		time.Sleep(poll.DefaultInterval * 3)

		assert.Empty(st, listener)
	})

	t.Run("publishes session events on connect and disconnect", func(st *testing.T) {
		server := newModServer(http.StatusOK)
		defer server.Close()

		events := event.NewEventManager()
		service := poll.NewService(modserver.NewHTTPClient(), events)

		listener := make(chan event.Event, 10)
		events.RegisterListener(event.SessionEventType, listener)

		_, err := service.Connect(context.Background(), endpointFor(st, server))

		assert.NoError(st, err)

		sessionID := service.Session().ID

		evt := <-listener
		sessionEvt, ok := evt.Payload.(*poll.SessionEvent)

		assert.True(st, ok)
		assert.Equal(st, poll.SessionConnected, sessionEvt.State)
		assert.Equal(st, sessionID, sessionEvt.Session.ID)

		service.Disconnect()

		evt = <-listener
		sessionEvt, ok = evt.Payload.(*poll.SessionEvent)

		assert.True(st, ok)
		assert.Equal(st, poll.SessionDisconnected, sessionEvt.State)
		assert.Equal(st, sessionID, sessionEvt.Session.ID)
	})

	t.Run("disconnect is idempotent", func(st *testing.T) {
		events := event.NewEventManager()
		service := poll.NewService(modserver.NewHTTPClient(), events)

		service.Disconnect()
		service.Disconnect()

		assert.False(st, service.Connected())
	})

	t.Run("reconnect replaces the prior session", func(st *testing.T) {
		server := newModServer(http.StatusOK)
		defer server.Close()

		events := event.NewEventManager()
		service := poll.NewService(modserver.NewHTTPClient(), events)

		defer service.Disconnect()

		endpoint := endpointFor(st, server)

		_, err := service.Connect(context.Background(), endpoint)

		assert.NoError(st, err)

		firstID := service.Session().ID

		_, err = service.Connect(context.Background(), endpoint)

		assert.NoError(st, err)
		assert.NotEqual(st, firstID, service.Session().ID)
		assert.True(st, service.Connected())
	})
}
