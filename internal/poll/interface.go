package poll

import (
	"context"

	"github.com/tbeaulieu/modscout/internal/modserver"
)

//go:generate mockgen -destination=../mock/poll/mock_poll.go -package=mock_poll . Service

// Service interface for the coordinate polling session.
// At most one session is live per service instance; Connect stops any
// prior session before starting a new one and Disconnect is always safe
// to call, including when already idle.
type Service interface {
	Connect(ctx context.Context, endpoint modserver.Endpoint) (*modserver.Coordinates, error)
	Disconnect()
	Connected() bool
	Session() *Session
}
