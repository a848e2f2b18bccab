package client

import (
	"context"
	"strings"

	"github.com/fivetwenty-io/fbgraph/internal/constants"
	"github.com/fivetwenty-io/fbgraph/pkg/graph"
)

// UsersClient implements graph.UsersClient.
type UsersClient struct {
	api *api
}

// NewUsersClient creates a new users client.
func NewUsersClient(a *api) *UsersClient {
	return &UsersClient{api: a}
}

// Get implements graph.UsersClient.Get.
func (c *UsersClient) Get(ctx context.Context, id string) (*graph.User, error) {
	if id == "" {
		return nil, graph.ErrIDRequired
	}

	var user graph.User

	err := c.api.get(ctx, c.api.objectURL(id), c.api.authParams(), &user, "user")
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// Me implements graph.UsersClient.Me.
func (c *UsersClient) Me(ctx context.Context) (*graph.User, error) {
	return c.Get(ctx, constants.CurrentProfileID)
}

// GetMany implements graph.UsersClient.GetMany.
func (c *UsersClient) GetMany(ctx context.Context, ids []string) ([]*graph.User, error) {
	return getMany[graph.User](ctx, c.api, ids, "users")
}

// getMany runs one multi-id lookup and aligns the keyed result to ids.
func getMany[T any](ctx context.Context, a *api, ids []string, what string) ([]*T, error) {
	if len(ids) == 0 {
		return nil, graph.ErrIDsRequired
	}

	params := a.authParams(graph.Param{Name: constants.ParamIDs, Value: strings.Join(ids, ",")})

	body, err := a.getText(ctx, a.graphURL+"/", params, what)
	if err != nil {
		return nil, err
	}

	entities, err := graph.DecodeOrdered[T](body, ids)
	if err != nil {
		return nil, wrapParse(what, err)
	}

	return entities, nil
}
