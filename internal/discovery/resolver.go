package discovery

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/tbeaulieu/modscout/internal/logger"
)

// DefaultLookupURL public IP lookup service used to bias subnet ordering
const DefaultLookupURL = "https://api.ipify.org?format=json"

const lookupTimeout = time.Second * 3

// defaultBases subnet prefixes tried when the lookup gives us nothing
var defaultBases = []string{"192.168.1", "192.168.0", "10.0.0", "172.16.0"}

// prefixes that structurally resemble RFC1918 private ranges
var privatePrefixes = []string{"192.168.", "10.", "172."}

type ipLookupResponse struct {
	IP string `json:"ip"`
}

// IPLookupResolver is our SubnetResolver implementation. It asks a public
// "what is my IP" service for a dotted quad and, when the answer looks like
// a private address, promotes its /24 prefix to the front of the default
// list. The lookup is a weak ordering signal only: behind NAT or a VPN the
// public IP says nothing about the LAN subnet, so every failure or
// non-private answer silently falls back to the defaults.
type IPLookupResolver struct {
	lookupURL string
	http      *http.Client
	log       logger.Logger
}

// NewIPLookupResolver returns a new instance of IPLookupResolver
func NewIPLookupResolver(lookupURL string) *IPLookupResolver {
	if lookupURL == "" {
		lookupURL = DefaultLookupURL
	}

	return &IPLookupResolver{
		lookupURL: lookupURL,
		http:      &http.Client{},
		log:       logger.New(),
	}
}

// ResolveBases returns the ordered subnet prefixes to scan.
// Never errors, never returns an empty list.
func (r *IPLookupResolver) ResolveBases(ctx context.Context) []string {
	base, err := r.lookupBase(ctx)

	if err != nil {
		r.log.Debug().Err(err).Msg("subnet lookup failed, using defaults")
		return defaultBases
	}

	if !looksPrivate(base) {
		r.log.Debug().
			Str("base", base).
			Msg("lookup returned non-private prefix, using defaults")
		return defaultBases
	}

	bases := []string{base}

	for _, b := range defaultBases {
		if b != base {
			bases = append(bases, b)
		}
	}

	return bases
}

// lookupBase queries the lookup service and derives a /24 prefix from the
// returned address
func (r *IPLookupResolver) lookupBase(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.lookupURL, nil)

	if err != nil {
		return "", err
	}

	resp, err := r.http.Do(req)

	if err != nil {
		return "", err
	}

	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("lookup service returned status %d", resp.StatusCode)
	}

	payload := ipLookupResponse{}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", err
	}

	ip := net.ParseIP(payload.IP)

	if ip == nil || ip.To4() == nil {
		return "", fmt.Errorf("lookup service returned non-IPv4 address %q", payload.IP)
	}

	octets := strings.Split(ip.To4().String(), ".")

	return strings.Join(octets[:3], "."), nil
}

// StaticResolver is a SubnetResolver that returns a fixed list of bases,
// used when a profile pins its subnets explicitly
type StaticResolver struct {
	bases []string
}

// NewStaticResolver returns a new instance of StaticResolver
func NewStaticResolver(bases []string) *StaticResolver {
	return &StaticResolver{bases: bases}
}

// ResolveBases returns the configured bases, falling back to the defaults
// when none are configured
func (r *StaticResolver) ResolveBases(ctx context.Context) []string {
	if len(r.bases) == 0 {
		return defaultBases
	}

	return r.bases
}

func looksPrivate(base string) bool {
	for _, prefix := range privatePrefixes {
		if strings.HasPrefix(base, prefix) {
			return true
		}
	}

	return false
}
