package client

import (
	"context"

	"github.com/fivetwenty-io/fbgraph/pkg/graph"
)

// ConnectionsClient implements graph.ConnectionsClient.
type ConnectionsClient struct {
	api *api
}

// NewConnectionsClient creates a new connections client.
func NewConnectionsClient(a *api) *ConnectionsClient {
	return &ConnectionsClient{api: a}
}

// Get implements graph.ConnectionsClient.Get. Paging options precede the
// access token in the query.
func (c *ConnectionsClient) Get(ctx context.Context, id string, connection graph.ConnectionType, target any, opts *graph.ConnectionOptions) error {
	if id == "" {
		return graph.ErrIDRequired
	}

	if target == nil {
		return graph.ErrNilTarget
	}

	params := opts.Params().With(c.api.authParams()...)

	return c.api.get(ctx, c.api.objectURL(id, string(connection)), params, target, string(connection)+" connection")
}

// Comments implements graph.ConnectionsClient.Comments.
func (c *ConnectionsClient) Comments(ctx context.Context, id string, opts *graph.ConnectionOptions) (*graph.Comments, error) {
	return getConnection[graph.Comment](ctx, c, id, graph.ConnectionComments, opts)
}

// Likes implements graph.ConnectionsClient.Likes.
func (c *ConnectionsClient) Likes(ctx context.Context, id string, opts *graph.ConnectionOptions) (*graph.Likes, error) {
	return getConnection[graph.Like](ctx, c, id, graph.ConnectionLikes, opts)
}

// Feed implements graph.ConnectionsClient.Feed.
func (c *ConnectionsClient) Feed(ctx context.Context, id string, opts *graph.ConnectionOptions) (*graph.Feed, error) {
	return getConnection[graph.Post](ctx, c, id, graph.ConnectionFeed, opts)
}

// Friends implements graph.ConnectionsClient.Friends.
func (c *ConnectionsClient) Friends(ctx context.Context, id string, opts *graph.ConnectionOptions) (*graph.Friends, error) {
	return getConnection[graph.User](ctx, c, id, graph.ConnectionFriends, opts)
}

func getConnection[T any](ctx context.Context, c *ConnectionsClient, id string, connection graph.ConnectionType, opts *graph.ConnectionOptions) (*graph.Connection[T], error) {
	var page graph.Connection[T]

	err := c.Get(ctx, id, connection, &page, opts)
	if err != nil {
		return nil, err
	}

	return &page, nil
}
