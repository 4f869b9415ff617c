package discovery

import "fmt"

// MaxCandidatesPerSubnet caps how many addresses of a /24 we ever try.
// A full 254-host sweep would blow the scan's latency budget; the priority
// ordering below makes the cap tolerable.
const MaxCandidatesPerSubnet = 30

// host octets commonly handed out to gateways and static assignments,
// probed first in this literal order
var priorityHostOctets = []int{1, 100, 101, 102, 103, 104, 105, 110, 150, 200}

// CandidateAddresses produces the ordered candidate list for one subnet
// base (first three octets, e.g. "192.168.1"). Priority octets come first,
// then the smallest unused octets ascending from 2, until the cap is
// reached or the [1,254] host range is exhausted.
func CandidateAddresses(base string) []string {
	addresses := make([]string, 0, MaxCandidatesPerSubnet)
	seen := map[int]bool{}

	for _, octet := range priorityHostOctets {
		addresses = append(addresses, fmt.Sprintf("%s.%d", base, octet))
		seen[octet] = true
	}

	for octet := 2; octet <= 254; octet++ {
		if len(addresses) >= MaxCandidatesPerSubnet {
			break
		}

		if seen[octet] {
			continue
		}

		addresses = append(addresses, fmt.Sprintf("%s.%d", base, octet))
		seen[octet] = true
	}

	return addresses
}
