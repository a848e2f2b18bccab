package client

import (
	"context"
	"strings"

	"github.com/fivetwenty-io/fbgraph/internal/constants"
	"github.com/fivetwenty-io/fbgraph/pkg/graph"
)

// FQLClient implements graph.FQLClient.
type FQLClient struct {
	api *api
}

// NewFQLClient creates a new FQL client.
func NewFQLClient(a *api) *FQLClient {
	return &FQLClient{api: a}
}

// Users implements graph.FQLClient.Users.
func (c *FQLClient) Users(ctx context.Context, columns []graph.UserColumn, criteria graph.UserCriteria) ([]graph.FqlUser, error) {
	return runTable[graph.FqlUser](ctx, c, graph.ColumnNames(columns), criteria, graph.SourceUser)
}

// Pages implements graph.FQLClient.Pages.
func (c *FQLClient) Pages(ctx context.Context, columns []graph.PageColumn, criteria graph.PageCriteria) ([]graph.FqlPage, error) {
	return runTable[graph.FqlPage](ctx, c, graph.ColumnNames(columns), criteria, graph.SourcePage)
}

// NewsFeed implements graph.FQLClient.NewsFeed.
func (c *FQLClient) NewsFeed(ctx context.Context, columns []graph.StreamColumn, criteria *graph.StreamCriteria) ([]graph.FqlPost, error) {
	if len(columns) == 0 {
		columns = graph.DefaultStreamColumns()
	}

	var filter graph.CriteriaProvider = graph.ColumnCriteria{}
	if criteria != nil {
		filter = *criteria
	}

	return runTable[graph.FqlPost](ctx, c, graph.ColumnNames(columns), filter, graph.SourceNewsFeed)
}

// Connections implements graph.FQLClient.Connections.
func (c *FQLClient) Connections(ctx context.Context, columns []graph.ConnectionColumn, criteria graph.ConnectionCriteria) ([]graph.FqlConnection, error) {
	return runTable[graph.FqlConnection](ctx, c, graph.ColumnNames(columns), criteria, graph.SourceConnection)
}

// Query implements graph.FQLClient.Query.
func (c *FQLClient) Query(ctx context.Context, fql string, target any) error {
	if strings.TrimSpace(fql) == "" {
		return graph.ErrQueryRequired
	}

	params := c.api.authParams(
		graph.Param{Name: constants.ParamQuery, Value: fql},
		graph.Param{Name: constants.ParamFormat, Value: constants.FQLFormatJSON},
	)

	if c.api.logger != nil {
		c.api.logger.Debug("Running FQL query", map[string]interface{}{"query": fql})
	}

	return c.api.get(ctx, c.api.fqlURL, params, target, "fql result")
}

func runTable[T any](ctx context.Context, c *FQLClient, columns []string, criteria graph.CriteriaProvider, source graph.Source) ([]T, error) {
	if len(columns) == 0 {
		return nil, graph.ErrColumnsRequired
	}

	var rows []T

	err := c.Query(ctx, graph.BuildQuery(columns, criteria.Criteria(), source), &rows)
	if err != nil {
		return nil, err
	}

	return rows, nil
}
