package discovery_test

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tbeaulieu/modscout/internal/discovery"
)

func TestCandidateAddresses(t *testing.T) {
	t.Run("emits priority octets first in literal order", func(st *testing.T) {
		addresses := discovery.CandidateAddresses("192.168.1")

		expected := []string{
			"192.168.1.1",
			"192.168.1.100",
			"192.168.1.101",
			"192.168.1.102",
			"192.168.1.103",
			"192.168.1.104",
			"192.168.1.105",
			"192.168.1.110",
			"192.168.1.150",
			"192.168.1.200",
		}

		assert.Equal(st, expected, addresses[:10])
	})

	t.Run("fills remaining slots with smallest unused octets", func(st *testing.T) {
		addresses := discovery.CandidateAddresses("10.0.0")

		// slots after the 10 priority addresses start at .2
		assert.Equal(st, "10.0.0.2", addresses[10])
		assert.Equal(st, "10.0.0.3", addresses[11])
	})

	t.Run("never exceeds the per-subnet cap", func(st *testing.T) {
		addresses := discovery.CandidateAddresses("172.16.0")

		assert.LessOrEqual(st, len(addresses), discovery.MaxCandidatesPerSubnet)
	})

	t.Run("contains no duplicates and only valid host octets", func(st *testing.T) {
		addresses := discovery.CandidateAddresses("192.168.0")

		seen := map[string]bool{}

		for _, addr := range addresses {
			assert.False(st, seen[addr], fmt.Sprintf("duplicate address %s", addr))
			seen[addr] = true

			parts := strings.Split(addr, ".")
			assert.Len(st, parts, 4)

			octet, err := strconv.Atoi(parts[3])

			assert.NoError(st, err)
			assert.GreaterOrEqual(st, octet, 1)
			assert.LessOrEqual(st, octet, 254)
		}
	})
}
