package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/fivetwenty-io/fbgraph/pkg/graph"
	"github.com/spf13/cobra"
)

// NewPagesCommand creates the page command group.
func NewPagesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "page",
		Aliases: []string{"pages"},
		Short:   "Read pages",
		Long:    "Read pages by id or username",
	}

	cmd.AddCommand(newPagesGetCommand())
	cmd.AddCommand(newPagesManyCommand())

	return cmd
}

func newPagesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get PAGE_ID",
		Short: "Get a page",
		Long:  "Display a page by id or username",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, client graph.Client) error {
				page, err := client.Pages().Get(ctx, args[0])
				if err != nil {
					return fmt.Errorf("failed to get page: %w", err)
				}

				renderer := &OutputRenderer[*graph.Page]{RenderTable: renderPageTable}

				return renderer.Render(cmd.OutOrStdout(), page)
			})
		},
	}
}

func newPagesManyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "many PAGE_ID...",
		Short: "Get several pages in one request",
		Long:  "Display several pages fetched with a single multi-id request, in the order given",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := splitIDs(args)

			return withClient(cmd, func(ctx context.Context, client graph.Client) error {
				pages, err := client.Pages().GetMany(ctx, ids)
				if err != nil {
					return fmt.Errorf("failed to get pages: %w", err)
				}

				renderer := &OutputRenderer[[]*graph.Page]{
					RenderTable: func(out io.Writer, pages []*graph.Page) error {
						rows := make([][]string, 0, len(pages))

						for i, page := range pages {
							if page == nil {
								rows = append(rows, []string{ids[i], NotFound, "", ""})

								continue
							}

							rows = append(rows, []string{page.ID, page.Name, page.Category, formatCount(page.Likes)})
						}

						return renderRowsTable(out, "No pages found", []string{"ID", "Name", "Category", "Likes"}, rows)
					},
				}

				return renderer.Render(cmd.OutOrStdout(), pages)
			})
		},
	}
}

func renderPageTable(out io.Writer, page *graph.Page) error {
	rows := [][2]string{
		{"ID", page.ID},
		{"Name", page.Name},
		{"Username", page.Username},
		{"Category", page.Category},
		{"Likes", formatCount(page.Likes)},
		{"Link", page.Link},
		{"Website", page.Website},
		{"Phone", page.Phone},
	}

	if page.Location != nil {
		rows = append(rows, [2]string{"City", page.Location.City}, [2]string{"Country", page.Location.Country})
	}

	return renderPropertyTable(out, rows)
}
