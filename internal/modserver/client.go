package modserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/tbeaulieu/modscout/internal/logger"
)

const (
	healthPath = "/health"
	coordsPath = "/coords"
)

// HTTPClient is our Client implementation using net/http.
// Timeouts are governed entirely by the caller's context so probe and
// poll callers can apply their own budgets.
type HTTPClient struct {
	http *http.Client
	log  logger.Logger
}

// NewHTTPClient returns a new instance of HTTPClient
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{
		http: &http.Client{},
		log:  logger.New(),
	}
}

// Health fetches the liveness signal from an endpoint
func (c *HTTPClient) Health(ctx context.Context, endpoint Endpoint) (*HealthStatus, error) {
	health := HealthStatus{}

	if err := c.getJSON(ctx, endpoint.BaseURL()+healthPath, &health); err != nil {
		return nil, err
	}

	return &health, nil
}

// Coordinates fetches the current coordinate snapshot from an endpoint
func (c *HTTPClient) Coordinates(ctx context.Context, endpoint Endpoint) (*Coordinates, error) {
	coords := Coordinates{}

	if err := c.getJSON(ctx, endpoint.BaseURL()+coordsPath, &coords); err != nil {
		return nil, err
	}

	return &coords, nil
}

// getJSON performs a GET request and decodes the json response body
func (c *HTTPClient) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)

	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)

	if err != nil {
		return err
	}

	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected response status %d from %s", resp.StatusCode, url)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("malformed response from %s: %w", url, err)
	}

	return nil
}
