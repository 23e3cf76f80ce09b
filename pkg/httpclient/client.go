// Package httpclient wraps the outbound HTTP transport behind a small
// interface so fetchers can be tested against fakes.
package httpclient

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// Response is the subset of an HTTP response the fetchers consume.
type Response interface {
	Body() []byte
	StatusCode() int
}

// Client performs HTTP GET requests with per-request headers.
type Client interface {
	Get(ctx context.Context, url string, headers map[string]string) (Response, error)
}

// restyClient implements Client on top of a shared resty client so
// connections are reused for the lifetime of the run.
type restyClient struct {
	rc *resty.Client
}

// NewRestyClient builds a Client with the given request timeout.
func NewRestyClient(timeout time.Duration) Client {
	rc := resty.New().SetTimeout(timeout)
	return &restyClient{rc: rc}
}

// Get issues a GET request. Non-2xx statuses are not treated as transport
// errors; callers inspect StatusCode themselves.
func (c *restyClient) Get(ctx context.Context, url string, headers map[string]string) (Response, error) {
	resp, err := c.rc.R().
		SetContext(ctx).
		SetHeaders(headers).
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", url, err)
	}
	return resp, nil
}
