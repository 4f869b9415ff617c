package stream

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/tbeaulieu/modscout/internal/event"
	"github.com/tbeaulieu/modscout/internal/logger"
	"github.com/tbeaulieu/modscout/internal/poll"
)

const writeTimeout = time.Second * 5

var upgrader = websocket.Upgrader{
	// the stream only ever binds to loopback for the local UI
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Server re-broadcasts coordinate snapshots to local UI clients over
// websocket and exposes the latest snapshot as plain JSON
type Server struct {
	httpServer *http.Server
	events     event.Manager
	listenerID int
	latest     *poll.Snapshot
	mux        sync.Mutex
	log        logger.Logger
}

// NewServer returns a new stream server listening on addr once Run is
// called
func NewServer(addr string, events event.Manager) *Server {
	s := &Server{
		events: events,
		log:    logger.New(),
	}

	s.httpServer = &http.Server{
		Addr:    addr,
		Handler: s.Handler(),
	}

	return s
}

// Handler builds the route table. Exposed separately so tests can drive
// the server through httptest.
func (s *Server) Handler() http.Handler {
	router := mux.NewRouter()

	router.HandleFunc("/api/status", s.handleStatus).Methods("GET")
	router.HandleFunc("/ws/coords", s.handleCoordsWS)

	return router
}

// Run tracks the latest snapshot and blocks serving HTTP traffic
func (s *Server) Run() error {
	listener := make(chan event.Event, 100)
	s.listenerID = s.events.RegisterListener(event.SnapshotEventType, listener)

	go func() {
		for evt := range listener {
			if snapshot, ok := evt.Payload.(*poll.Snapshot); ok {
				s.mux.Lock()
				s.latest = snapshot
				s.mux.Unlock()
			}
		}
	}()

	s.log.Info().Str("addr", s.httpServer.Addr).Msg("Streaming snapshots")

	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts the server down
func (s *Server) Shutdown(ctx context.Context) error {
	s.events.RemoveListener(s.listenerID)
	return s.httpServer.Shutdown(ctx)
}

// handleStatus returns the most recent snapshot, or an empty object when
// no session has produced one yet
func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	s.mux.Lock()
	latest := s.latest
	s.mux.Unlock()

	w.Header().Set("Content-Type", "application/json")

	if latest == nil {
		w.Write([]byte("{}"))
		return
	}

	if err := json.NewEncoder(w).Encode(latest); err != nil {
		s.log.Error().Err(err).Msg("failed to encode snapshot")
	}
}

// handleCoordsWS upgrades the connection and forwards every snapshot
// event until the client goes away
func (s *Server) handleCoordsWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)

	if err != nil {
		return
	}

	defer conn.Close()

	listener := make(chan event.Event, 100)
	id := s.events.RegisterListener(event.SnapshotEventType, listener)

	defer s.events.RemoveListener(id)

	// drain client reads so pings and close frames are processed
	done := make(chan struct{})

	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case evt := <-listener:
			conn.SetWriteDeadline(time.Now().Add(writeTimeout))

			if err := conn.WriteJSON(evt.Payload); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
