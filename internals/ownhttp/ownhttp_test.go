package ownhttp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestUserAgentIsSet(t *testing.T) {
	var got string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("User-Agent")
	}))
	defer server.Close()

	res, err := New(0).Get(server.URL)
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, UserAgent, got)
}

func TestThrottleTransport(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer server.Close()

	// one request every 50ms, no burst beyond the first
	limiter := rate.NewLimiter(rate.Every(50*time.Millisecond), 1)
	client := &http.Client{Transport: NewThrottleTransport(nil, limiter)}

	start := time.Now()
	for i := 0; i < 3; i++ {
		res, err := client.Get(server.URL)
		require.NoError(t, err)
		res.Body.Close()
	}
	assert.EqualValues(t, 3, atomic.LoadInt32(&calls))
	assert.GreaterOrEqual(t, time.Since(start), 90*time.Millisecond)
}

func TestThrottleRespectsContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer server.Close()

	limiter := rate.NewLimiter(rate.Every(time.Hour), 1)
	client := &http.Client{Transport: NewThrottleTransport(nil, limiter)}

	res, err := client.Get(server.URL)
	require.NoError(t, err)
	res.Body.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL, nil)
	require.NoError(t, err)
	_, err = client.Do(req)
	assert.ErrorContains(t, err, "waiting for rate limit")
}

func TestPerSecond(t *testing.T) {
	limiter := PerSecond(5)
	assert.Equal(t, rate.Limit(5), limiter.Limit())
	assert.Equal(t, 5, limiter.Burst())
}
