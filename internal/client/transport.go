package client

import (
	"fmt"

	"github.com/fivetwenty-io/fbgraph/internal/constants"
	"github.com/fivetwenty-io/fbgraph/internal/http"
	"github.com/fivetwenty-io/fbgraph/pkg/graph"
)

// Static errors for err113 compliance.
var (
	ErrUnsupportedTransport = constants.ErrUnsupportedTransport
	ErrNATSConfigRequired   = constants.ErrNATSConfigRequired
)

// createHTTPOptions builds transport options from config.
func createHTTPOptions(config *graph.Config) []http.Option {
	var opts []http.Option

	if config.Logger != nil {
		opts = append(opts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		opts = append(opts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		opts = append(opts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		opts = append(opts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.RateLimit > 0 {
		opts = append(opts, http.WithRateLimit(config.RateLimit, config.RateBurst))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		opts = append(opts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return opts
}

// NewTransport creates the built-in transport named by config.TransportType.
func NewTransport(config *graph.Config) (graph.Transport, error) {
	if config == nil {
		return nil, graph.ErrConfigRequired
	}

	opts := createHTTPOptions(config)

	switch config.TransportType {
	case "", graph.TransportStandard:
		return http.NewClient(opts...), nil

	case graph.TransportRetryable:
		return http.NewRetryableClient(opts...), nil

	case graph.TransportNATS:
		if config.NATS == nil {
			return nil, ErrNATSConfigRequired
		}

		client, err := http.DialNATS(config.NATS, opts...)
		if err != nil {
			return nil, fmt.Errorf("creating nats transport: %w", err)
		}

		return client, nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedTransport, config.TransportType)
	}
}

// interceptTransport adds the logging of the built-in backends to a
// caller-supplied transport.
func interceptTransport(config *graph.Config, transport graph.Transport) graph.Transport {
	if config.Logger == nil {
		return transport
	}

	return http.Intercept(transport, http.NewLoggingChain(config.Logger, config.Debug))
}
