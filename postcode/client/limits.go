package client

import (
	"net/http"
	"strconv"

	"postcode_nl/postcode/transport"
)

// Response headers carrying the quota counters. Matching is case-insensitive
// via http.Header canonicalization.
const (
	headerRateLimitLimit     = "x-ratelimit-limit"
	headerRateLimitRemaining = "x-ratelimit-remaining"
	headerAPILimit           = "x-api-limit"
	headerAPIRemaining       = "x-api-remaining"
	headerAPIReset           = "x-api-reset"
)

// limitsFromHeader extracts the quota counters from the response headers.
// The headers are telemetry, not required for correctness of the address
// result: a missing or unparsable header leaves its field at zero.
func limitsFromHeader(h http.Header) transport.APILimits {
	return transport.APILimits{
		RateLimitLimit:     headerUint32(h, headerRateLimitLimit),
		RateLimitRemaining: headerUint32(h, headerRateLimitRemaining),
		APILimit:           headerUint32(h, headerAPILimit),
		APIRemaining:       headerUint32(h, headerAPIRemaining),
		APIReset:           h.Get(headerAPIReset),
	}
}

func headerUint32(h http.Header, key string) uint32 {
	value := h.Get(key)
	if value == "" {
		return 0
	}

	parsed, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return 0
	}

	return uint32(parsed)
}
