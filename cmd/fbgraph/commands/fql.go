package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fivetwenty-io/fbgraph/pkg/graph"
	"github.com/spf13/cobra"
)

// NewFQLCommand creates the fql command group.
func NewFQLCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fql",
		Short: "Run FQL queries",
		Long:  "Query the user, page, stream and connection tables with FQL",
	}

	cmd.AddCommand(newFQLUsersCommand())
	cmd.AddCommand(newFQLPagesCommand())
	cmd.AddCommand(newFQLNewsFeedCommand())
	cmd.AddCommand(newFQLConnectionsCommand())
	cmd.AddCommand(newFQLQueryCommand())

	return cmd
}

// pagingFlags holds the LIMIT and OFFSET flags shared by the table commands.
type pagingFlags struct {
	limit  int
	offset int
}

func (p *pagingFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&p.limit, "limit", 0, "maximum number of rows")
	cmd.Flags().IntVar(&p.offset, "offset", 0, "rows to skip")
}

func (p *pagingFlags) values(cmd *cobra.Command) (*int, *int) {
	var limit, offset *int

	if cmd.Flags().Changed("limit") {
		limit = graph.IntPtr(p.limit)
	}

	if cmd.Flags().Changed("offset") {
		offset = graph.IntPtr(p.offset)
	}

	return limit, offset
}

func columnsOf[C ~string](names []string) []C {
	columns := make([]C, 0, len(names))

	for _, name := range splitIDs(names) {
		columns = append(columns, C(name))
	}

	return columns
}

func int64Flag(cmd *cobra.Command, name string, value int64) *int64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}

	return &value
}

func boolFlag(cmd *cobra.Command, name string, value bool) *bool {
	if !cmd.Flags().Changed(name) {
		return nil
	}

	return &value
}

func newFQLUsersCommand() *cobra.Command {
	var (
		columns   []string
		criteria  graph.UserCriteria
		appUser   bool
		updatedAt int64
		paging    pagingFlags
	)

	cmd := &cobra.Command{
		Use:   "users",
		Short: "Query the user table",
		Long:  "Select columns of the user table filtered by the given criteria",
		RunE: func(cmd *cobra.Command, args []string) error {
			criteria.UIDs = splitIDs(criteria.UIDs)
			criteria.IsAppUser = boolFlag(cmd, "app-user", appUser)
			criteria.ProfileUpdatedAfter = int64Flag(cmd, "updated-after", updatedAt)
			criteria.Limit, criteria.Offset = paging.values(cmd)

			return withClient(cmd, func(ctx context.Context, client graph.Client) error {
				users, err := client.FQL().Users(ctx, columnsOf[graph.UserColumn](columns), criteria)
				if err != nil {
					return fmt.Errorf("failed to query users: %w", err)
				}

				renderer := &OutputRenderer[[]graph.FqlUser]{
					RenderTable: func(out io.Writer, users []graph.FqlUser) error {
						rows := make([][]string, 0, len(users))
						for _, user := range users {
							rows = append(rows, []string{string(user.UID), user.Name, user.Username, user.Sex})
						}

						return renderRowsTable(out, "No users found", []string{"UID", "Name", "Username", "Sex"}, rows)
					},
				}

				return renderer.Render(cmd.OutOrStdout(), users)
			})
		},
	}

	cmd.Flags().StringSliceVar(&columns, "columns", []string{"uid", "name", "username", "sex"}, "columns to select")
	cmd.Flags().StringVar(&criteria.UID, "uid", "", "match a single uid, or an expression such as me()")
	cmd.Flags().StringSliceVar(&criteria.UIDs, "uids", nil, "match any of these uids")
	cmd.Flags().StringVar(&criteria.Username, "username", "", "match a username")
	cmd.Flags().StringVar(&criteria.Name, "name", "", "match a full name")
	cmd.Flags().BoolVar(&appUser, "app-user", false, "match users of the calling application")
	cmd.Flags().Int64Var(&updatedAt, "updated-after", 0, "profile updated after this unix time")
	paging.register(cmd)

	return cmd
}

func newFQLPagesCommand() *cobra.Command {
	var (
		columns  []string
		criteria graph.PageCriteria
		paging   pagingFlags
	)

	cmd := &cobra.Command{
		Use:   "pages",
		Short: "Query the page table",
		Long:  "Select columns of the page table filtered by the given criteria",
		RunE: func(cmd *cobra.Command, args []string) error {
			criteria.PageIDs = splitIDs(criteria.PageIDs)
			criteria.Limit, criteria.Offset = paging.values(cmd)

			return withClient(cmd, func(ctx context.Context, client graph.Client) error {
				pages, err := client.FQL().Pages(ctx, columnsOf[graph.PageColumn](columns), criteria)
				if err != nil {
					return fmt.Errorf("failed to query pages: %w", err)
				}

				renderer := &OutputRenderer[[]graph.FqlPage]{
					RenderTable: func(out io.Writer, pages []graph.FqlPage) error {
						rows := make([][]string, 0, len(pages))
						for _, page := range pages {
							rows = append(rows, []string{string(page.PageID), page.Name, page.Type, formatCount(page.FanCount)})
						}

						return renderRowsTable(out, "No pages found", []string{"Page ID", "Name", "Type", "Fans"}, rows)
					},
				}

				return renderer.Render(cmd.OutOrStdout(), pages)
			})
		},
	}

	cmd.Flags().StringSliceVar(&columns, "columns", []string{"page_id", "name", "type", "fan_count"}, "columns to select")
	cmd.Flags().StringVar(&criteria.PageID, "page-id", "", "match a single page id")
	cmd.Flags().StringSliceVar(&criteria.PageIDs, "page-ids", nil, "match any of these page ids")
	cmd.Flags().StringVar(&criteria.Username, "username", "", "match a username")
	cmd.Flags().StringVar(&criteria.Name, "name", "", "match a page name")
	cmd.Flags().StringVar(&criteria.Type, "type", "", "match a page type")
	paging.register(cmd)

	return cmd
}

func newFQLNewsFeedCommand() *cobra.Command {
	var (
		columns       []string
		criteria      graph.StreamCriteria
		createdAfter  int64
		createdBefore int64
		paging        pagingFlags
	)

	cmd := &cobra.Command{
		Use:     "newsfeed",
		Aliases: []string{"stream"},
		Short:   "Query the news feed",
		Long:    "Select posts of the current user's news feed from the stream table",
		RunE: func(cmd *cobra.Command, args []string) error {
			criteria.CreatedAfter = int64Flag(cmd, "created-after", createdAfter)
			criteria.CreatedBefore = int64Flag(cmd, "created-before", createdBefore)
			criteria.Limit, criteria.Offset = paging.values(cmd)

			return withClient(cmd, func(ctx context.Context, client graph.Client) error {
				posts, err := client.FQL().NewsFeed(ctx, columnsOf[graph.StreamColumn](columns), &criteria)
				if err != nil {
					return fmt.Errorf("failed to query news feed: %w", err)
				}

				renderer := &OutputRenderer[[]graph.FqlPost]{RenderTable: renderFqlPosts}

				return renderer.Render(cmd.OutOrStdout(), posts)
			})
		},
	}

	cmd.Flags().StringSliceVar(&columns, "columns", nil, "columns to select (default: the common stream columns)")
	cmd.Flags().StringVar(&criteria.ActorID, "actor-id", "", "match posts by this actor")
	cmd.Flags().StringVar(&criteria.FilterKey, "filter-key", "", "match a stream filter key")
	cmd.Flags().StringVar(&criteria.AppID, "app-id", "", "match posts made through an application")
	cmd.Flags().Int64Var(&createdAfter, "created-after", 0, "posts created after this unix time")
	cmd.Flags().Int64Var(&createdBefore, "created-before", 0, "posts created before this unix time")
	paging.register(cmd)

	return cmd
}

func renderFqlPosts(out io.Writer, posts []graph.FqlPost) error {
	rows := make([][]string, 0, len(posts))

	for _, post := range posts {
		likes := NotAvailable
		if post.Likes != nil {
			likes = formatCount(post.Likes.Count)
		}

		rows = append(rows, []string{post.PostID, string(post.ActorID), formatValue(post.Message), likes})
	}

	return renderRowsTable(out, "No posts found", []string{"Post ID", "Actor", "Message", "Likes"}, rows)
}

func newFQLConnectionsCommand() *cobra.Command {
	var (
		columns   []string
		criteria  graph.ConnectionCriteria
		following bool
		paging    pagingFlags
	)

	cmd := &cobra.Command{
		Use:   "connections",
		Short: "Query the connection table",
		Long:  "Select the current user's connections from the connection table",
		RunE: func(cmd *cobra.Command, args []string) error {
			criteria.IsFollowing = boolFlag(cmd, "following", following)
			criteria.Limit, criteria.Offset = paging.values(cmd)

			return withClient(cmd, func(ctx context.Context, client graph.Client) error {
				connections, err := client.FQL().Connections(ctx, columnsOf[graph.ConnectionColumn](columns), criteria)
				if err != nil {
					return fmt.Errorf("failed to query connections: %w", err)
				}

				renderer := &OutputRenderer[[]graph.FqlConnection]{
					RenderTable: func(out io.Writer, connections []graph.FqlConnection) error {
						rows := make([][]string, 0, len(connections))
						for _, connection := range connections {
							rows = append(rows, []string{string(connection.SourceID), string(connection.TargetID), connection.TargetType})
						}

						return renderRowsTable(out, "No connections found", []string{"Source", "Target", "Type"}, rows)
					},
				}

				return renderer.Render(cmd.OutOrStdout(), connections)
			})
		},
	}

	cmd.Flags().StringSliceVar(&columns, "columns", []string{"source_id", "target_id", "target_type"}, "columns to select")
	cmd.Flags().StringVar(&criteria.TargetType, "target-type", "", "match a target type such as user or page")
	cmd.Flags().StringVar(&criteria.TargetID, "target-id", "", "match a target id")
	cmd.Flags().BoolVar(&following, "following", false, "match followed targets")
	paging.register(cmd)

	return cmd
}

func newFQLQueryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "query FQL",
		Short: "Run a raw FQL statement",
		Long:  "Run a raw FQL statement and print the rows it returns",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			statement := strings.Join(args, " ")

			return withClient(cmd, func(ctx context.Context, client graph.Client) error {
				var rows []map[string]any

				err := client.FQL().Query(ctx, statement, &rows)
				if err != nil {
					return fmt.Errorf("failed to run query: %w", err)
				}

				renderer := &OutputRenderer[[]map[string]any]{RenderTable: renderQueryRows}

				return renderer.Render(cmd.OutOrStdout(), rows)
			})
		},
	}
}

func renderQueryRows(out io.Writer, rows []map[string]any) error {
	keys := sortedKeys(rows)
	cells := make([][]string, 0, len(rows))

	for _, row := range rows {
		cell := make([]string, len(keys))
		for i, key := range keys {
			cell[i] = formatValue(row[key])
		}

		cells = append(cells, cell)
	}

	return renderRowsTable(out, "No rows returned", keys, cells)
}
