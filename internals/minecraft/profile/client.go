// Package profile is a client for the profile endpoints of the Minecraft services API.
// It can read the profile and name change status and change the name, skin and cape
// of the account the given access token belongs to.
package profile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"
	"golang.org/x/oauth2"
)

// DefaultBaseURL is the production Minecraft services API
const DefaultBaseURL = "https://api.minecraftservices.com/minecraft/"

const (
	endpointProfile      = "profile/"
	endpointName         = endpointProfile + "name/"
	endpointNameChange   = endpointProfile + "namechange/"
	endpointSkins        = endpointProfile + "skins/"
	endpointSkinsActive  = endpointSkins + "active/"
	endpointCapes        = endpointProfile + "capes/"
	endpointCapesActive  = endpointCapes + "active/"
	maxResponseBodyBytes = 4 << 20
)

var errMalformedBody = errors.New("response body is not valid json")

// Logger receives debug output (request urls and response bodies)
type Logger interface {
	Debug(s string)
}

// Client talks to the profile endpoints. It keeps no state between calls,
// every action extracts the token from the credential it is given.
type Client struct {
	http    *http.Client
	baseURL string
	// Log is optional
	Log Logger
}

// New returns a new Client. An empty baseURL defaults to DefaultBaseURL.
// A nil httpClient defaults to http.DefaultClient.
func New(httpClient *http.Client, baseURL string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &Client{http: httpClient, baseURL: baseURL}
}

// BaseURL returns the base url all paths are relative to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// url joins path to the base url. Paths keep their trailing slash.
func (c *Client) url(path string) (string, error) {
	base, err := url.Parse(c.baseURL)
	if err != nil {
		return "", err
	}
	ref, err := url.Parse(path)
	if err != nil {
		return "", err
	}
	return base.ResolveReference(ref).String(), nil
}

// newRequest builds an authorized request for path
func (c *Client) newRequest(ctx context.Context, method string, path string, token string, body io.Reader) (*http.Request, error) {
	target, err := c.url(path)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, err
	}
	(&oauth2.Token{AccessToken: token}).SetAuthHeader(req)
	return req, nil
}

// send executes req and turns transport failures and bad status codes into *Error.
// The caller has to close the body of the returned response.
func (c *Client) send(action string, req *http.Request) (*http.Response, error) {
	c.debug(fmt.Sprintf("%s %s", req.Method, req.URL))
	res, err := c.http.Do(req)
	if err != nil {
		return nil, transportError(action, err)
	}
	if !isSuccess(res.StatusCode) {
		// drain so the connection can be reused
		io.Copy(io.Discard, io.LimitReader(res.Body, maxResponseBodyBytes))
		res.Body.Close()
		return nil, serverError(action, res.StatusCode)
	}
	return res, nil
}

// exec sends req and discards the response body
func (c *Client) exec(action string, req *http.Request) error {
	res, err := c.send(action, req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	io.Copy(io.Discard, io.LimitReader(res.Body, maxResponseBodyBytes))
	return nil
}

// getJSON performs a GET request and returns the raw json body
func (c *Client) getJSON(ctx context.Context, action string, path string, token string) ([]byte, error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, token, nil)
	if err != nil {
		return nil, transportError(action, err)
	}
	res, err := c.send(action, req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, maxResponseBodyBytes))
	if err != nil {
		return nil, transportError(action, err)
	}
	if !gjson.ValidBytes(body) {
		return nil, transportError(action, errMalformedBody)
	}

	if c.Log != nil {
		pretty := &bytes.Buffer{}
		if err := json.Indent(pretty, body, "", "  "); err == nil {
			c.debug(fmt.Sprintf("%s\n%s", req.URL, pretty))
		}
	}
	return body, nil
}

func (c *Client) debug(s string) {
	if c.Log != nil {
		c.Log.Debug(s)
	}
}

func isSuccess(status int) bool {
	return status >= 200 && status < 400
}
