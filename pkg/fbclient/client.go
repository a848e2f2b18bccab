// Package fbclient provides the main entry point for creating graph API clients
package fbclient

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fivetwenty-io/fbgraph/internal/client"
	"github.com/fivetwenty-io/fbgraph/pkg/graph"
)

// New creates a new graph API client. Endpoint overrides are normalized by
// trimming a trailing slash and adding "https://" when no scheme is present.
// The caller's config is not modified.
func New(ctx context.Context, config *graph.Config) (graph.Client, error) {
	if config == nil {
		return nil, graph.ErrConfigRequired
	}

	normalized := *config
	normalized.GraphURL = normalizeEndpoint(config.GraphURL)
	normalized.FQLURL = normalizeEndpoint(config.FQLURL)

	// Use the internal client implementation
	c, err := client.New(ctx, &normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return c, nil
}

func normalizeEndpoint(endpoint string) string {
	if endpoint == "" {
		return ""
	}

	endpoint = strings.TrimSuffix(endpoint, "/")
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	return endpoint
}

// NewWithToken creates a client for the public service with default
// transport settings.
func NewWithToken(ctx context.Context, token string) (graph.Client, error) {
	return New(ctx, &graph.Config{AccessToken: token})
}

// NewWithTransport creates a client that sends every request through
// transport.
func NewWithTransport(ctx context.Context, config *graph.Config, transport graph.Transport) (graph.Client, error) {
	if config == nil {
		return nil, graph.ErrConfigRequired
	}

	normalized := *config
	normalized.Transport = transport

	return New(ctx, &normalized)
}

// Close releases resources held by a client created by New, such as a NATS
// connection.
func Close(c graph.Client) error {
	if closer, ok := c.(io.Closer); ok {
		return closer.Close()
	}

	return nil
}

// Next fetches the page after current through the client's transport, or
// returns nil when current is the last page.
func Next[T any](ctx context.Context, c graph.Client, current *graph.Connection[T]) (*graph.Connection[T], error) {
	return graph.FetchNext(ctx, c.Transport(), current)
}

// Previous fetches the page before current, or returns nil when current is
// the first page.
func Previous[T any](ctx context.Context, c graph.Client, current *graph.Connection[T]) (*graph.Connection[T], error) {
	return graph.FetchPrevious(ctx, c.Transport(), current)
}

// CollectAll gathers the items of first and of every following page, reading
// at most maxPages pages when maxPages is positive.
func CollectAll[T any](ctx context.Context, c graph.Client, first *graph.Connection[T], maxPages int) ([]T, error) {
	return graph.CollectAll(ctx, c.Transport(), first, maxPages)
}
