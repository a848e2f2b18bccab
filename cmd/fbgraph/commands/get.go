package commands

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fivetwenty-io/fbgraph/internal/constants"
	"github.com/fivetwenty-io/fbgraph/pkg/graph"
	"github.com/spf13/cobra"
)

// NewGetCommand creates the raw get command.
func NewGetCommand() *cobra.Command {
	var (
		limit  int
		params []string
	)

	cmd := &cobra.Command{
		Use:   "get [PATH]",
		Short: "Get any graph path",
		Long: `Get any graph path, such as me/photos, and print the decoded body.
Without a path the root is read, which with --param ids=1,2 returns the
objects keyed by id.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			extra, err := parseParams(params)
			if err != nil {
				return err
			}

			var path string
			if len(args) == 1 {
				path = args[0]
			}

			opts := &graph.ConnectionOptions{}
			if limit > 0 {
				opts.Limit = graph.IntPtr(limit)
			}

			return withClient(cmd, func(ctx context.Context, client graph.Client) error {
				var result map[string]any

				err := client.Get(ctx, path, &result, opts, extra...)
				if err != nil {
					return fmt.Errorf("failed to get %q: %w", path, err)
				}

				renderer := &OutputRenderer[map[string]any]{RenderTable: renderObjectTable}

				return renderer.Render(cmd.OutOrStdout(), result)
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "page size for connection paths")
	cmd.Flags().StringArrayVar(&params, "param", nil, "extra query parameter as name=value (repeatable)")

	return cmd
}

func parseParams(raw []string) ([]graph.Param, error) {
	params := make([]graph.Param, 0, len(raw))

	for _, entry := range raw {
		name, value, found := strings.Cut(entry, "=")
		if !found || name == "" {
			return nil, fmt.Errorf("%w: %s", constants.ErrInvalidParam, entry)
		}

		params = append(params, graph.Param{Name: name, Value: value})
	}

	return params, nil
}

func renderObjectTable(out io.Writer, object map[string]any) error {
	keys := make([]string, 0, len(object))
	for key := range object {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	rows := make([][2]string, 0, len(keys))
	for _, key := range keys {
		rows = append(rows, [2]string{key, formatValue(object[key])})
	}

	return renderPropertyTable(out, rows)
}
