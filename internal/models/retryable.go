package models

import (
	"net/http"
)

// RetryableHTTPCodes are the statuses a read-only request is retried on.
var RetryableHTTPCodes = map[int]struct{}{
	http.StatusBadGateway:          {},
	http.StatusServiceUnavailable:  {},
	http.StatusInternalServerError: {},
	http.StatusGatewayTimeout:      {},
	http.StatusTooManyRequests:     {},
}
