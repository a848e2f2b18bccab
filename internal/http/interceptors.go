package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/fivetwenty-io/fbgraph/internal/constants"
	"github.com/fivetwenty-io/fbgraph/pkg/graph"
	"golang.org/x/time/rate"
)

// Request is one transport call as seen by interceptors. Request
// interceptors may rewrite URL and Params before the call is sent.
type Request struct {
	Method   string
	URL      string
	Params   graph.Params
	Metadata map[string]interface{}
}

// Response is the outcome of one transport call. StatusCode is zero when
// no HTTP status was received.
type Response struct {
	StatusCode int
	Body       string
	Error      error
	Duration   time.Duration
}

// RequestInterceptor is called before a request is sent.
type RequestInterceptor func(ctx context.Context, req *Request) error

// ResponseInterceptor is called after a response is received.
type ResponseInterceptor func(ctx context.Context, req *Request, resp *Response) error

// InterceptorChain manages a chain of interceptors.
type InterceptorChain struct {
	requestInterceptors  []RequestInterceptor
	responseInterceptors []ResponseInterceptor
}

// NewInterceptorChain creates a new interceptor chain.
func NewInterceptorChain() *InterceptorChain {
	return &InterceptorChain{
		requestInterceptors:  make([]RequestInterceptor, 0),
		responseInterceptors: make([]ResponseInterceptor, 0),
	}
}

// AddRequestInterceptor adds a request interceptor to the chain.
func (c *InterceptorChain) AddRequestInterceptor(interceptor RequestInterceptor) {
	c.requestInterceptors = append(c.requestInterceptors, interceptor)
}

// AddResponseInterceptor adds a response interceptor to the chain.
func (c *InterceptorChain) AddResponseInterceptor(interceptor ResponseInterceptor) {
	c.responseInterceptors = append(c.responseInterceptors, interceptor)
}

// ExecuteRequestInterceptors runs all request interceptors.
func (c *InterceptorChain) ExecuteRequestInterceptors(ctx context.Context, req *Request) error {
	for _, interceptor := range c.requestInterceptors {
		err := interceptor(ctx, req)
		if err != nil {
			return fmt.Errorf("request interceptor failed: %w", err)
		}
	}

	return nil
}

// ExecuteResponseInterceptors runs all response interceptors.
func (c *InterceptorChain) ExecuteResponseInterceptors(ctx context.Context, req *Request, resp *Response) error {
	for _, interceptor := range c.responseInterceptors {
		err := interceptor(ctx, req, resp)
		if err != nil {
			return fmt.Errorf("response interceptor failed: %w", err)
		}
	}

	return nil
}

// sendFunc performs the raw exchange of a backend.
type sendFunc func(ctx context.Context, method, url string, params graph.Params) (string, error)

// run executes send between the request and response interceptors. Errors
// raised by interceptors are transport errors; a response interceptor error
// only replaces a successful result.
func (c *InterceptorChain) run(ctx context.Context, method, url string, params graph.Params, send sendFunc) (string, error) {
	req := &Request{Method: method, URL: url, Params: params, Metadata: map[string]interface{}{}}

	err := c.ExecuteRequestInterceptors(ctx, req)
	if err != nil {
		return "", networkError(err)
	}

	started := time.Now()
	body, err := send(ctx, req.Method, req.URL, req.Params)

	resp := &Response{
		StatusCode: statusOf(err),
		Body:       responseBody(body, err),
		Error:      err,
		Duration:   time.Since(started),
	}

	interceptErr := c.ExecuteResponseInterceptors(ctx, req, resp)
	if interceptErr != nil && err == nil {
		return "", networkError(interceptErr)
	}

	return body, err
}

// statusOf returns the HTTP status behind the outcome of a call.
func statusOf(err error) int {
	if err == nil {
		return constants.HTTPStatusOK
	}

	transportErr := &graph.TransportError{}
	if errors.As(err, &transportErr) {
		return transportErr.StatusCode
	}

	return 0
}

// Common Interceptors

// RateLimitInterceptor waits for limiter before each request.
func RateLimitInterceptor(limiter *rate.Limiter) RequestInterceptor {
	return func(ctx context.Context, req *Request) error {
		return limiter.Wait(ctx)
	}
}

// LoggingInterceptor logs requests at debug level with the access token
// masked.
func LoggingInterceptor(logger graph.Logger) RequestInterceptor {
	return func(ctx context.Context, req *Request) error {
		logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    maskURL(req.URL),
			"params": req.Params.Masked(constants.ParamAccessToken).Encode(),
		})

		return nil
	}
}

// LoggingResponseInterceptor logs calls that got no HTTP status at error
// level and, when debug is set, every response at debug level.
func LoggingResponseInterceptor(logger graph.Logger, debug bool) ResponseInterceptor {
	return func(ctx context.Context, req *Request, resp *Response) error {
		if resp.StatusCode == 0 && resp.Error != nil {
			logger.Error("HTTP Request failed", map[string]interface{}{
				"method": req.Method,
				"url":    maskURL(req.URL),
				"error":  resp.Error.Error(),
			})

			return nil
		}

		if debug {
			logger.Debug("HTTP Response", map[string]interface{}{
				"method":      req.Method,
				"url":         maskURL(req.URL),
				"status_code": resp.StatusCode,
				"duration":    resp.Duration.String(),
				"body":        truncate(resp.Body),
			})
		}

		return nil
	}
}

// NewLoggingChain returns a chain that logs like the built-in backends do
// with WithLogger and WithDebug.
func NewLoggingChain(logger graph.Logger, debug bool) *InterceptorChain {
	chain := NewInterceptorChain()
	if logger == nil {
		return chain
	}

	if debug {
		chain.AddRequestInterceptor(LoggingInterceptor(logger))
	}

	chain.AddResponseInterceptor(LoggingResponseInterceptor(logger, debug))

	return chain
}

// Intercepted is a Transport that runs an interceptor chain around another
// transport, such as one supplied through graph.Config.Transport.
type Intercepted struct {
	transport graph.Transport
	chain     *InterceptorChain
}

var _ graph.Transport = (*Intercepted)(nil)

// Intercept decorates transport with chain.
func Intercept(transport graph.Transport, chain *InterceptorChain) *Intercepted {
	if chain == nil {
		chain = NewInterceptorChain()
	}

	return &Intercepted{transport: transport, chain: chain}
}

// Get runs the chain around a GET of the wrapped transport.
func (i *Intercepted) Get(ctx context.Context, url string, params graph.Params) (string, error) {
	return i.chain.run(ctx, http.MethodGet, url, params, func(ctx context.Context, _, url string, params graph.Params) (string, error) {
		return i.transport.Get(ctx, url, params)
	})
}

// Post runs the chain around a POST of the wrapped transport.
func (i *Intercepted) Post(ctx context.Context, url string, params graph.Params) (string, error) {
	return i.chain.run(ctx, http.MethodPost, url, params, func(ctx context.Context, _, url string, params graph.Params) (string, error) {
		return i.transport.Post(ctx, url, params)
	})
}

// Delete runs the chain around a DELETE of the wrapped transport.
func (i *Intercepted) Delete(ctx context.Context, url string, params graph.Params) (string, error) {
	return i.chain.run(ctx, http.MethodDelete, url, params, func(ctx context.Context, _, url string, params graph.Params) (string, error) {
		return i.transport.Delete(ctx, url, params)
	})
}

// Close closes the wrapped transport when it holds resources.
func (i *Intercepted) Close() error {
	if closer, ok := i.transport.(interface{ Close() error }); ok {
		return closer.Close()
	}

	return nil
}
