package discovery

import (
	"context"
	"regexp"
	"sync"

	"github.com/projectdiscovery/mapcidr"
	"github.com/tbeaulieu/modscout/internal/logger"
	"github.com/tbeaulieu/modscout/internal/modserver"
)

// DefaultPort port the mod server listens on unless configured otherwise
const DefaultPort = 8080

var cidrSuffix = regexp.MustCompile(`\/\d{1,2}$`)

// SubnetScanner is our Scanner implementation. Subnets are processed
// sequentially while the addresses within a subnet are probed in parallel,
// bounding peak concurrent connection attempts to one subnet's candidate
// cap while still covering multiple likely subnets.
type SubnetScanner struct {
	prober    Prober
	resolver  SubnetResolver
	targetIPs []string
	semaphore chan struct{}
	log       logger.Logger
}

// NewSubnetScanner returns a new instance of SubnetScanner. Explicit
// targets may be single IPs or CIDR blocks; CIDRs are expanded up front
// and probed as their own batch after the heuristic subnets.
func NewSubnetScanner(prober Prober, resolver SubnetResolver, targets []string) (*SubnetScanner, error) {
	ipList := []string{}

	for _, t := range targets {
		if cidrSuffix.MatchString(t) {
			ips, err := mapcidr.IPAddresses(t)

			if err != nil {
				return nil, err
			}

			ipList = append(ipList, ips...)
		} else {
			ipList = append(ipList, t)
		}
	}

	return &SubnetScanner{
		prober:    prober,
		resolver:  resolver,
		targetIPs: ipList,
		semaphore: make(chan struct{}, MaxCandidatesPerSubnet),
		log:       logger.New(),
	}, nil
}

// Scan probes likely subnets for mod servers listening on the given port.
// Individual probe failures are absorbed; an empty result list is a normal
// outcome, not an error. Results are collected in completion order within
// each subnet's batch, subnet order across batches.
func (s *SubnetScanner) Scan(ctx context.Context, port int) []*ProbeResult {
	if port == 0 {
		port = DefaultPort
	}

	s.log.Info().Int("port", port).Msg("Scanning for mod servers...")

	results := []*ProbeResult{}

	for _, base := range s.resolver.ResolveBases(ctx) {
		s.log.Debug().Str("subnet", base).Msg("scanning subnet")
		results = append(results, s.scanBatch(ctx, CandidateAddresses(base), port)...)
	}

	if len(s.targetIPs) > 0 {
		s.log.Debug().
			Int("count", len(s.targetIPs)).
			Msg("scanning explicit targets")
		results = append(results, s.scanBatch(ctx, s.targetIPs, port)...)
	}

	s.log.Info().Int("found", len(results)).Msg("Scan complete")

	return results
}

// scanBatch fans out probes for one batch of hosts and waits for every
// probe to settle before returning. Aborting one probe never aborts its
// siblings; each carries its own timeout.
func (s *SubnetScanner) scanBatch(ctx context.Context, hosts []string, port int) []*ProbeResult {
	wg := &sync.WaitGroup{}
	mux := &sync.Mutex{}

	results := []*ProbeResult{}

	for _, host := range hosts {
		s.semaphore <- struct{}{} // acquire
		wg.Add(1)

		go func(h string) {
			defer wg.Done()
			defer func() { <-s.semaphore }() // release

			endpoint := modserver.Endpoint{Host: h, Port: port}

			if result := s.prober.Probe(ctx, endpoint); result != nil {
				mux.Lock()
				results = append(results, result)
				mux.Unlock()
			}
		}(host)
	}

	wg.Wait()

	return results
}
