package modserver

import "context"

//go:generate mockgen -destination=../mock/modserver/mock_modserver.go -package=mock_modserver . Client

// Client interface for the two fixed REST endpoints exposed by the mod.
// Both calls are unauthenticated GETs expecting JSON; any non-2xx response
// or malformed payload is returned as an error.
type Client interface {
	Health(ctx context.Context, endpoint Endpoint) (*HealthStatus, error)
	Coordinates(ctx context.Context, endpoint Endpoint) (*Coordinates, error)
}
