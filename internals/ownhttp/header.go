package ownhttp

import "net/http"

// UserAgent is sent with every request
var UserAgent = "mcprofile (https://github.com/minepkg/mcprofile)"

// AddHeaderTransport sets the User-Agent header if the request has none
type AddHeaderTransport struct {
	T http.RoundTripper
}

func (adt *AddHeaderTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		// RoundTrippers should not modify the original request
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", UserAgent)
	}
	return adt.T.RoundTrip(req)
}

func NewAddHeaderTransport(T http.RoundTripper) *AddHeaderTransport {
	if T == nil {
		T = http.DefaultTransport
	}
	return &AddHeaderTransport{T}
}
