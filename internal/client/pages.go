package client

import (
	"context"

	"github.com/fivetwenty-io/fbgraph/pkg/graph"
)

// PagesClient implements graph.PagesClient.
type PagesClient struct {
	api *api
}

// NewPagesClient creates a new pages client.
func NewPagesClient(a *api) *PagesClient {
	return &PagesClient{api: a}
}

// Get implements graph.PagesClient.Get.
func (c *PagesClient) Get(ctx context.Context, id string) (*graph.Page, error) {
	if id == "" {
		return nil, graph.ErrIDRequired
	}

	var page graph.Page

	err := c.api.get(ctx, c.api.objectURL(id), c.api.authParams(), &page, "page")
	if err != nil {
		return nil, err
	}

	return &page, nil
}

// GetMany implements graph.PagesClient.GetMany.
func (c *PagesClient) GetMany(ctx context.Context, ids []string) ([]*graph.Page, error) {
	return getMany[graph.Page](ctx, c.api, ids, "pages")
}
