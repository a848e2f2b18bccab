package http

import (
	"context"
	"net/http"

	"github.com/fivetwenty-io/fbgraph/internal/constants"
	"github.com/fivetwenty-io/fbgraph/pkg/graph"
)

// Client is the standard Transport over net/http. It never retries.
type Client struct {
	httpClient *http.Client
	userAgent  string
	chain      *InterceptorChain
}

var _ graph.Transport = (*Client)(nil)

// NewClient creates a new standard transport.
func NewClient(opts ...Option) *Client {
	s := newSettings(opts)

	httpClient := s.httpClient
	if httpClient == nil {
		timeout := s.timeout
		if timeout == 0 {
			timeout = constants.DefaultHTTPTimeout
		}

		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		httpClient: httpClient,
		userAgent:  s.userAgent,
		chain:      s.chain(),
	}
}

// Get performs a GET request with params appended to the query string.
func (c *Client) Get(ctx context.Context, url string, params graph.Params) (string, error) {
	return c.do(ctx, http.MethodGet, url, params)
}

// Post performs a POST request with a form-encoded body.
func (c *Client) Post(ctx context.Context, url string, params graph.Params) (string, error) {
	return c.do(ctx, http.MethodPost, url, params)
}

// Delete performs a DELETE request with a form-encoded body.
func (c *Client) Delete(ctx context.Context, url string, params graph.Params) (string, error) {
	return c.do(ctx, http.MethodDelete, url, params)
}

func (c *Client) do(ctx context.Context, method, url string, params graph.Params) (string, error) {
	return c.chain.run(ctx, method, url, params, c.send)
}

func (c *Client) send(ctx context.Context, method, url string, params graph.Params) (string, error) {
	parts, err := prepare(method, url, params)
	if err != nil {
		return "", networkError(err)
	}

	req, err := parts.newRequest(ctx, c.userAgent)
	if err != nil {
		return "", networkError(err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", networkError(err)
	}

	return readResponse(resp)
}
