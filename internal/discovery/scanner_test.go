package discovery_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/tbeaulieu/modscout/internal/discovery"
	mock_discovery "github.com/tbeaulieu/modscout/internal/mock/discovery"
	"github.com/tbeaulieu/modscout/internal/modserver"
)

func TestSubnetScanner(t *testing.T) {
	ctrl := gomock.NewController(t)

	defer ctrl.Finish()

	t.Run("collects one result per responsive host", func(st *testing.T) {
		mockProber := mock_discovery.NewMockProber(ctrl)
		mockResolver := mock_discovery.NewMockSubnetResolver(ctrl)

		mockResolver.EXPECT().
			ResolveBases(gomock.Any()).
			Return([]string{"192.168.1", "10.0.0"})

		// exactly one responsive host per subnet
		mockProber.EXPECT().
			Probe(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, endpoint modserver.Endpoint) *discovery.ProbeResult {
				if endpoint.Host == "192.168.1.1" || endpoint.Host == "10.0.0.100" {
					return &discovery.ProbeResult{
						Endpoint:   endpoint,
						PlayerName: "Steve",
						IsOnline:   true,
					}
				}
				return nil
			}).
			Times(2 * discovery.MaxCandidatesPerSubnet)

		scanner, err := discovery.NewSubnetScanner(mockProber, mockResolver, nil)

		assert.NoError(st, err)

		results := scanner.Scan(context.Background(), 8080)

		assert.Len(st, results, 2)

		for _, result := range results {
			assert.NotNil(st, result)
			assert.Equal(st, 8080, result.Endpoint.Port)
		}
	})

	t.Run("returns empty list when nothing responds", func(st *testing.T) {
		mockProber := mock_discovery.NewMockProber(ctrl)
		mockResolver := mock_discovery.NewMockSubnetResolver(ctrl)

		mockResolver.EXPECT().
			ResolveBases(gomock.Any()).
			Return([]string{"192.168.1"})

		mockProber.EXPECT().
			Probe(gomock.Any(), gomock.Any()).
			Return(nil).
			Times(discovery.MaxCandidatesPerSubnet)

		scanner, err := discovery.NewSubnetScanner(mockProber, mockResolver, nil)

		assert.NoError(st, err)

		results := scanner.Scan(context.Background(), 8080)

		assert.Empty(st, results)
	})

	t.Run("defaults the port when none is given", func(st *testing.T) {
		mockProber := mock_discovery.NewMockProber(ctrl)
		mockResolver := mock_discovery.NewMockSubnetResolver(ctrl)

		mockResolver.EXPECT().
			ResolveBases(gomock.Any()).
			Return([]string{"192.168.1"})

		mockProber.EXPECT().
			Probe(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, endpoint modserver.Endpoint) *discovery.ProbeResult {
				assert.Equal(st, discovery.DefaultPort, endpoint.Port)
				return nil
			}).
			Times(discovery.MaxCandidatesPerSubnet)

		scanner, err := discovery.NewSubnetScanner(mockProber, mockResolver, nil)

		assert.NoError(st, err)

		scanner.Scan(context.Background(), 0)
	})

	t.Run("probes explicit targets after heuristic subnets", func(st *testing.T) {
		mockProber := mock_discovery.NewMockProber(ctrl)
		mockResolver := mock_discovery.NewMockSubnetResolver(ctrl)

		mockResolver.EXPECT().
			ResolveBases(gomock.Any()).
			Return([]string{"192.168.1"})

		probed := map[string]bool{}

		mockProber.EXPECT().
			Probe(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, endpoint modserver.Endpoint) *discovery.ProbeResult {
				probed[endpoint.Host] = true
				return nil
			}).
			Times(discovery.MaxCandidatesPerSubnet + 1)

		scanner, err := discovery.NewSubnetScanner(
			mockProber,
			mockResolver,
			[]string{"10.11.12.13"},
		)

		assert.NoError(st, err)

		scanner.Scan(context.Background(), 8080)

		assert.True(st, probed["10.11.12.13"])
	})

	t.Run("rejects invalid cidr targets", func(st *testing.T) {
		mockProber := mock_discovery.NewMockProber(ctrl)
		mockResolver := mock_discovery.NewMockSubnetResolver(ctrl)

		_, err := discovery.NewSubnetScanner(
			mockProber,
			mockResolver,
			[]string{"not-a-cidr/99"},
		)

		assert.Error(st, err)
	})
}
