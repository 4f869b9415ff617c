package modserver_test

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tbeaulieu/modscout/internal/modserver"
)

// testEndpoint converts an httptest server address into an Endpoint
func testEndpoint(t *testing.T, server *httptest.Server) modserver.Endpoint {
	host, portStr, err := net.SplitHostPort(server.Listener.Addr().String())

	if err != nil {
		t.Fatalf("failed to parse test server address: %s", err.Error())
	}

	port, err := strconv.Atoi(portStr)

	if err != nil {
		t.Fatalf("failed to parse test server port: %s", err.Error())
	}

	return modserver.Endpoint{Host: host, Port: port}
}

func TestHTTPClient(t *testing.T) {
	client := modserver.NewHTTPClient()

	t.Run("fetches health status", func(st *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(st, "/health", r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"status":"ok","timestamp":1000}`))
			},
		))

		defer server.Close()

		health, err := client.Health(context.Background(), testEndpoint(st, server))

		assert.NoError(st, err)
		assert.Equal(st, "ok", health.Status)
		assert.Equal(st, int64(1000), health.Timestamp)
	})

	t.Run("fetches coordinates", func(st *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(st, "/coords", r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(
					`{"x":10.0,"y":64.0,"z":-5.0,"dimension":"overworld",` +
						`"timestamp":1000,"playerName":"Steve"}`,
				))
			},
		))

		defer server.Close()

		coords, err := client.Coordinates(context.Background(), testEndpoint(st, server))

		assert.NoError(st, err)
		assert.Equal(st, &modserver.Coordinates{
			X:          10.0,
			Y:          64.0,
			Z:          -5.0,
			Dimension:  "overworld",
			Timestamp:  1000,
			PlayerName: "Steve",
		}, coords)
	})

	t.Run("returns error for non-2xx response", func(st *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
		))

		defer server.Close()

		_, err := client.Health(context.Background(), testEndpoint(st, server))

		assert.Error(st, err)
	})

	t.Run("returns error for malformed payload", func(st *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("not json"))
			},
		))

		defer server.Close()

		_, err := client.Coordinates(context.Background(), testEndpoint(st, server))

		assert.Error(st, err)
	})

	t.Run("returns error when context deadline expires", func(st *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				time.Sleep(time.Millisecond * 250)
				w.Write([]byte(`{"status":"ok","timestamp":1000}`))
			},
		))

		defer server.Close()

		ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond*20)
		defer cancel()

		_, err := client.Health(ctx, testEndpoint(st, server))

		assert.Error(st, err)
	})

	t.Run("returns error for unreachable endpoint", func(st *testing.T) {
		endpoint := modserver.Endpoint{Host: "127.0.0.1", Port: 1}

		ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond*500)
		defer cancel()

		_, err := client.Health(ctx, endpoint)

		assert.Error(st, err)
	})
}
