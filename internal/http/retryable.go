package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fivetwenty-io/fbgraph/internal/constants"
	"github.com/fivetwenty-io/fbgraph/pkg/graph"
	"github.com/hashicorp/go-retryablehttp"
)

// RetryableClient is a Transport over go-retryablehttp. Connection errors,
// 429 and 5xx responses are retried up to the configured maximum, which
// defaults to zero.
type RetryableClient struct {
	client    *retryablehttp.Client
	userAgent string
	chain     *InterceptorChain
}

var _ graph.Transport = (*RetryableClient)(nil)

// NewRetryableClient creates a new retrying transport.
func NewRetryableClient(opts ...Option) *RetryableClient {
	s := newSettings(opts)

	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = s.retryMax
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.Logger = &leveledLogger{logger: s.logger, debug: s.debug}

	if s.retryWaitMin > 0 {
		retryClient.RetryWaitMin = s.retryWaitMin
	}

	if s.retryWaitMax > 0 {
		retryClient.RetryWaitMax = s.retryWaitMax
	}

	switch {
	case s.httpClient != nil:
		retryClient.HTTPClient = s.httpClient
	case s.timeout > 0:
		retryClient.HTTPClient.Timeout = s.timeout
	default:
		retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	}

	return &RetryableClient{
		client:    retryClient,
		userAgent: s.userAgent,
		chain:     s.chain(),
	}
}

// Get performs a GET request with params appended to the query string.
func (c *RetryableClient) Get(ctx context.Context, url string, params graph.Params) (string, error) {
	return c.do(ctx, http.MethodGet, url, params)
}

// Post performs a POST request with a form-encoded body.
func (c *RetryableClient) Post(ctx context.Context, url string, params graph.Params) (string, error) {
	return c.do(ctx, http.MethodPost, url, params)
}

// Delete performs a DELETE request with a form-encoded body.
func (c *RetryableClient) Delete(ctx context.Context, url string, params graph.Params) (string, error) {
	return c.do(ctx, http.MethodDelete, url, params)
}

func (c *RetryableClient) do(ctx context.Context, method, url string, params graph.Params) (string, error) {
	return c.chain.run(ctx, method, url, params, c.send)
}

func (c *RetryableClient) send(ctx context.Context, method, url string, params graph.Params) (string, error) {
	parts, err := prepare(method, url, params)
	if err != nil {
		return "", networkError(err)
	}

	var body interface{}
	if parts.body != "" {
		body = []byte(parts.body)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, parts.method, parts.url, body)
	if err != nil {
		return "", networkError(err)
	}

	if method != http.MethodGet {
		req.Header.Set("Content-Type", contentTypeForm)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", networkError(err)
	}

	return readResponse(resp)
}

// leveledLogger adapts graph.Logger to retryablehttp.LeveledLogger.
type leveledLogger struct {
	logger graph.Logger
	debug  bool
}

var _ retryablehttp.LeveledLogger = (*leveledLogger)(nil)

func (l *leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	if l.logger != nil {
		l.logger.Error(msg, fieldsOf(keysAndValues))
	}
}

func (l *leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	if l.logger != nil {
		l.logger.Info(msg, fieldsOf(keysAndValues))
	}
}

func (l *leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	if l.logger != nil && l.debug {
		l.logger.Debug(msg, fieldsOf(keysAndValues))
	}
}

func (l *leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	if l.logger != nil {
		l.logger.Warn(msg, fieldsOf(keysAndValues))
	}
}

func fieldsOf(keysAndValues []interface{}) map[string]interface{} {
	fields := make(map[string]interface{}, len(keysAndValues)/2)

	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}

		if key == "url" {
			fields[key] = maskURL(fmt.Sprint(keysAndValues[i+1]))

			continue
		}

		fields[key] = keysAndValues[i+1]
	}

	return fields
}
