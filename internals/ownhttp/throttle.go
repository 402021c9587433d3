package ownhttp

import (
	"fmt"
	"net/http"

	"golang.org/x/time/rate"
)

// ThrottleTransport delays requests so that no more than the limiter allows
// reach the API. Waiting respects the request context.
type ThrottleTransport struct {
	T       http.RoundTripper
	Limiter *rate.Limiter
}

func (tt *ThrottleTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := tt.Limiter.Wait(req.Context()); err != nil {
		return nil, fmt.Errorf("waiting for rate limit: %w", err)
	}
	return tt.T.RoundTrip(req)
}

// NewThrottleTransport wraps T with a limiter
func NewThrottleTransport(T http.RoundTripper, limiter *rate.Limiter) *ThrottleTransport {
	if T == nil {
		T = http.DefaultTransport
	}
	return &ThrottleTransport{T: T, Limiter: limiter}
}

// PerSecond returns a limiter allowing n requests per second with a burst of n
func PerSecond(n int) *rate.Limiter {
	return rate.NewLimiter(rate.Limit(n), n)
}
