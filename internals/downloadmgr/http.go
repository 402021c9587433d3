package downloadmgr

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net"
	"net/http"
	"time"
)

// DefaultMaxSize is the largest body Fetch reads if no size is set
const DefaultMaxSize = 1 << 20

var defaultClient = http.Client{
	Transport: &http.Transport{
		Dial: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).Dial,
		TLSHandshakeTimeout:   20 * time.Second,
		ResponseHeaderTimeout: 60 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	},
}

// HTTPItem is a URL with optional properties that will be fetched into memory
// using http(s)
type HTTPItem struct {
	Client *http.Client
	URL    string
	// ContentType is the media type the response has to have (parameters are ignored)
	ContentType string
	// MaxSize limits the body size, DefaultMaxSize if 0
	MaxSize int64
}

// ErrInvalidContentType is returned when the response has a different media type than expected
type ErrInvalidContentType struct {
	URL      string
	Expected string
	Actual   string
}

func (e *ErrInvalidContentType) Error() string {
	return fmt.Sprintf("%s has content type \"%s\" but \"%s\" was expected", e.URL, e.Actual, e.Expected)
}

// ErrInvalidStatus is returned for any response that is not 200
type ErrInvalidStatus struct {
	URL    string
	Status string
}

func (e *ErrInvalidStatus) Error() string {
	return fmt.Sprintf("invalid status code: %s from %s", e.Status, e.URL)
}

// ErrTooLarge is returned when the body exceeds MaxSize
type ErrTooLarge struct {
	URL     string
	MaxSize int64
}

func (e *ErrTooLarge) Error() string {
	return fmt.Sprintf("%s is larger than %d bytes", e.URL, e.MaxSize)
}

// Fetch downloads the item and returns the body
func (i *HTTPItem) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", i.URL, nil)
	if err != nil {
		return nil, err
	}

	client := i.Client
	if client == nil {
		client = &defaultClient
	}

	res, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error while fetching %s: %w", i.URL, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, &ErrInvalidStatus{URL: i.URL, Status: res.Status}
	}

	if i.ContentType != "" {
		mediaType, _, _ := mime.ParseMediaType(res.Header.Get("Content-Type"))
		if mediaType != i.ContentType {
			return nil, &ErrInvalidContentType{URL: i.URL, Expected: i.ContentType, Actual: mediaType}
		}
	}

	maxSize := i.MaxSize
	if maxSize == 0 {
		maxSize = DefaultMaxSize
	}
	// read one byte more to detect oversized bodies
	body, err := io.ReadAll(io.LimitReader(res.Body, maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("error while reading %s: %w", i.URL, err)
	}
	if int64(len(body)) > maxSize {
		return nil, &ErrTooLarge{URL: i.URL, MaxSize: maxSize}
	}

	return body, nil
}

// NewHTTPItem creates an Item that will be fetched using HTTP(S)
func NewHTTPItem(URL string, contentType string) *HTTPItem {
	if URL == "" {
		panic("Download URL can not be empty")
	}
	return &HTTPItem{Client: &defaultClient, URL: URL, ContentType: contentType}
}
