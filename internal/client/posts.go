package client

import (
	"context"

	"github.com/fivetwenty-io/fbgraph/pkg/graph"
)

// PostsClient implements graph.PostsClient.
type PostsClient struct {
	api *api
}

// NewPostsClient creates a new posts client.
func NewPostsClient(a *api) *PostsClient {
	return &PostsClient{api: a}
}

// Get implements graph.PostsClient.Get. The paging of the embedded to, likes
// and comments connections is materialized with the post.
func (c *PostsClient) Get(ctx context.Context, id string) (*graph.Post, error) {
	if id == "" {
		return nil, graph.ErrIDRequired
	}

	var post graph.Post

	err := c.api.get(ctx, c.api.objectURL(id), c.api.authParams(), &post, "post")
	if err != nil {
		return nil, err
	}

	return &post, nil
}
