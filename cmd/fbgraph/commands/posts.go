package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/fivetwenty-io/fbgraph/internal/constants"
	"github.com/fivetwenty-io/fbgraph/pkg/graph"
	"github.com/spf13/cobra"
)

// NewPostsCommand creates the post command group.
func NewPostsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "post",
		Aliases: []string{"posts"},
		Short:   "Read posts",
		Long:    "Read posts by id",
	}

	cmd.AddCommand(newPostsGetCommand())

	return cmd
}

func newPostsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get POST_ID",
		Short: "Get a post",
		Long:  "Display a post with its like and comment counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, client graph.Client) error {
				post, err := client.Posts().Get(ctx, args[0])
				if err != nil {
					return fmt.Errorf("failed to get post: %w", err)
				}

				renderer := &OutputRenderer[*graph.Post]{RenderTable: renderPostTable}

				return renderer.Render(cmd.OutOrStdout(), post)
			})
		},
	}
}

func renderPostTable(out io.Writer, post *graph.Post) error {
	rows := [][2]string{
		{"ID", post.ID},
		{"From", namedOrNA(post.From)},
		{"Type", post.Type},
		{"Message", truncate(post.Message, constants.MaxMessageDisplay)},
		{"Link", post.Link},
		{"Created", post.CreatedTime},
		{"Updated", post.UpdatedTime},
	}

	if post.Likes != nil {
		rows = append(rows, [2]string{"Likes", formatCount(post.Likes.Count)})
	}

	if post.Comments != nil {
		rows = append(rows, [2]string{"Comments", formatCount(post.Comments.Count)})
	}

	return renderPropertyTable(out, rows)
}
