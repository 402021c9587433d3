package ownhttp

import (
	"net/http"
	"time"
)

// DefaultTimeout is the overall timeout of a single request
const DefaultTimeout = 60 * time.Second

// New returns a new http.Client with the AddHeaderTransport (setting the User-Agent header).
// If requestsPerSecond is > 0 requests are throttled to that rate.
func New(requestsPerSecond int) *http.Client {
	var transport http.RoundTripper = http.DefaultTransport
	if requestsPerSecond > 0 {
		transport = NewThrottleTransport(transport, PerSecond(requestsPerSecond))
	}
	return &http.Client{
		Transport: NewAddHeaderTransport(transport),
		Timeout:   DefaultTimeout,
	}
}
