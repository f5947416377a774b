package biometric

import (
	"net/url"
	"strings"
)

// gatedOperations lists the endpoints that ask for a biometric check unless the caller says otherwise.
var gatedOperations = map[string]bool{
	"/api/order/topup":           true,
	"/api/order/cek-tagihan":     true,
	"/api/order/bayar-tagihan":   true,
	"/api/payment/pulsa":         true,
	"/api/payment/pln":           true,
	"/api/payment/plnpascabayan": true,
	"/api/payment/listrik":       true,
	"/api/payment/pdam":          true,
	"/api/payment/internet":      true,
	"/api/payment/tv":            true,
	"/api/payment/bpjs":          true,
	"/api/payment/emoney":        true,
	"/api/payment/voucher":       true,
	"/api/payment/games":         true,
	"/api/payment/masaaktif":     true,
}

// DefaultPolicy reports whether endpoint is a money-moving operation.
// The path is compared exactly after normalisation, never by substring.
func DefaultPolicy(endpoint string) bool {
	return gatedOperations[normalizeEndpoint(endpoint)]
}

// GatedOperations returns the normalised endpoints of DefaultPolicy.
func GatedOperations() []string {
	out := make([]string, 0, len(gatedOperations))
	for endpoint := range gatedOperations {
		out = append(out, endpoint)
	}
	return out
}

// normalizeEndpoint lower-cases the path and drops scheme, host, query, fragment and trailing slashes.
func normalizeEndpoint(endpoint string) string {
	endpoint = strings.TrimSpace(endpoint)
	if u, err := url.Parse(endpoint); err == nil {
		endpoint = u.Path
	} else if i := strings.IndexAny(endpoint, "?#"); i >= 0 {
		endpoint = endpoint[:i]
	}

	endpoint = strings.ToLower(endpoint)
	endpoint = strings.TrimRight(endpoint, "/")
	if endpoint != "" && !strings.HasPrefix(endpoint, "/") {
		endpoint = "/" + endpoint
	}
	return endpoint
}
