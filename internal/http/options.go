package http

import (
	"net/http"
	"time"

	"github.com/fivetwenty-io/fbgraph/pkg/graph"
	"golang.org/x/time/rate"
)

// settings collects the options shared by the backends. Options that do not
// apply to a backend are ignored by it.
type settings struct {
	httpClient   *http.Client
	timeout      time.Duration
	logger       graph.Logger
	debug        bool
	userAgent    string
	limiter      *rate.Limiter
	retryMax     int
	retryWaitMin time.Duration
	retryWaitMax time.Duration

	requestInterceptors  []RequestInterceptor
	responseInterceptors []ResponseInterceptor
}

// Option configures a transport backend.
type Option func(*settings)

// WithHTTPClient sets the underlying *http.Client.
func WithHTTPClient(client *http.Client) Option {
	return func(s *settings) {
		s.httpClient = client
	}
}

// WithTimeout sets the overall timeout of one HTTP exchange, or of one
// relayed request for the NATS backend.
func WithTimeout(timeout time.Duration) Option {
	return func(s *settings) {
		s.timeout = timeout
	}
}

// WithLogger sets the logger.
func WithLogger(logger graph.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithDebug enables request and response logging.
func WithDebug(debug bool) Option {
	return func(s *settings) {
		s.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(s *settings) {
		if userAgent != "" {
			s.userAgent = userAgent
		}
	}
}

// WithRateLimit allows at most perSecond requests per second with the given
// burst. A non-positive rate disables limiting. Every backend waits for the
// limiter before sending.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(s *settings) {
		if perSecond <= 0 {
			s.limiter = nil

			return
		}

		if burst <= 0 {
			burst = 1
		}

		s.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

// WithRetryConfig configures retries of the retryable backend.
func WithRetryConfig(maxRetries int, waitMin, waitMax time.Duration) Option {
	return func(s *settings) {
		s.retryMax = maxRetries
		s.retryWaitMin = waitMin
		s.retryWaitMax = waitMax
	}
}

// WithRequestInterceptor runs interceptor before each request, after the
// rate limiter and the built-in logging.
func WithRequestInterceptor(interceptor RequestInterceptor) Option {
	return func(s *settings) {
		s.requestInterceptors = append(s.requestInterceptors, interceptor)
	}
}

// WithResponseInterceptor runs interceptor after each response, after the
// built-in logging.
func WithResponseInterceptor(interceptor ResponseInterceptor) Option {
	return func(s *settings) {
		s.responseInterceptors = append(s.responseInterceptors, interceptor)
	}
}

func newSettings(opts []Option) *settings {
	s := &settings{userAgent: defaultUserAgent}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// chain assembles the interceptors of a backend: rate limiting, logging,
// then caller interceptors.
func (s *settings) chain() *InterceptorChain {
	chain := NewInterceptorChain()

	if s.limiter != nil {
		chain.AddRequestInterceptor(RateLimitInterceptor(s.limiter))
	}

	logging := NewLoggingChain(s.logger, s.debug)
	chain.requestInterceptors = append(chain.requestInterceptors, logging.requestInterceptors...)
	chain.responseInterceptors = append(chain.responseInterceptors, logging.responseInterceptors...)

	chain.requestInterceptors = append(chain.requestInterceptors, s.requestInterceptors...)
	chain.responseInterceptors = append(chain.responseInterceptors, s.responseInterceptors...)

	return chain
}
