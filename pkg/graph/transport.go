package graph

import (
	"context"
	"time"
)

// Transport executes one logical request against the service and returns
// the raw response body.
//
// Get appends params to the query string of url. Post and Delete send them
// as a form-encoded body. Implementations never interpret the body; a
// network failure or a non-2xx status is reported as *TransportError, with
// the body attached when one was read.
type Transport interface {
	Get(ctx context.Context, url string, params Params) (string, error)
	Post(ctx context.Context, url string, params Params) (string, error)
	Delete(ctx context.Context, url string, params Params) (string, error)
}

// TransportType selects a built-in Transport backend.
type TransportType string

// Built-in transport backends.
const (
	TransportStandard  TransportType = "standard"
	TransportRetryable TransportType = "retryable"
	TransportNATS      TransportType = "nats"
)

// NATSConfig configures the NATS relay backend. Each call is published as a
// request on Subject and answered by a gateway that performs the HTTP
// exchange.
type NATSConfig struct {
	URL     string
	Subject string
	Name    string
	Token   string
	Timeout time.Duration
}
