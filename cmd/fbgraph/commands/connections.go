package commands

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/fivetwenty-io/fbgraph/internal/constants"
	"github.com/fivetwenty-io/fbgraph/pkg/fbclient"
	"github.com/fivetwenty-io/fbgraph/pkg/graph"
	"github.com/spf13/cobra"
)

// knownConnections lists the connection types accepted by the command.
var knownConnections = []graph.ConnectionType{
	graph.ConnectionFeed, graph.ConnectionHome, graph.ConnectionPosts, graph.ConnectionTagged,
	graph.ConnectionStatuses, graph.ConnectionLinks, graph.ConnectionNotes, graph.ConnectionPhotos,
	graph.ConnectionAlbums, graph.ConnectionEvents, graph.ConnectionGroups, graph.ConnectionFriends,
	graph.ConnectionLikes, graph.ConnectionComments, graph.ConnectionMovies, graph.ConnectionMusic,
	graph.ConnectionBooks, graph.ConnectionTelevision, graph.ConnectionActivities, graph.ConnectionInterests,
	graph.ConnectionCheckins, graph.ConnectionAttending, graph.ConnectionMaybe, graph.ConnectionDeclined,
	graph.ConnectionNoReply, graph.ConnectionInvited,
}

// connectionItem is one entry of any connection, kept as decoded JSON.
type connectionItem = map[string]any

// ConnectionListing is the output of the connections command.
type ConnectionListing struct {
	Data []connectionItem `json:"data"           yaml:"data"`
	Next string           `json:"next,omitempty" yaml:"next,omitempty"`
}

type connectionFlags struct {
	limit    int
	offset   int
	since    string
	until    string
	before   string
	after    string
	all      bool
	maxPages int
}

func (f *connectionFlags) options(cmd *cobra.Command) *graph.ConnectionOptions {
	opts := &graph.ConnectionOptions{
		Since:  f.since,
		Until:  f.until,
		Before: f.before,
		After:  f.after,
	}

	if f.limit > 0 {
		opts.Limit = graph.IntPtr(f.limit)
	}

	if cmd.Flags().Changed("offset") {
		opts.Offset = graph.IntPtr(f.offset)
	}

	return opts
}

// NewConnectionsCommand creates the connections command.
func NewConnectionsCommand() *cobra.Command {
	flags := &connectionFlags{}

	cmd := &cobra.Command{
		Use:     "connections OBJECT_ID TYPE",
		Aliases: []string{"connection", "conn"},
		Short:   "List a connection of an object",
		Long: `List a connection of an object, such as the friends of a user or the
comments of a post. Use --all to follow the next-page cursors.`,
		Args: cobra.ExactArgs(2), //nolint:mnd // object id and type
		RunE: func(cmd *cobra.Command, args []string) error {
			connection := graph.ConnectionType(args[1])
			if !slices.Contains(knownConnections, connection) {
				return fmt.Errorf("%w: %s", constants.ErrUnknownConnection, args[1])
			}

			return withClient(cmd, func(ctx context.Context, client graph.Client) error {
				listing, err := listConnection(ctx, client, args[0], connection, flags, flags.options(cmd))
				if err != nil {
					return err
				}

				renderer := &OutputRenderer[*ConnectionListing]{RenderTable: renderConnectionTable}

				return renderer.Render(cmd.OutOrStdout(), listing)
			})
		},
	}

	cmd.Flags().IntVar(&flags.limit, "limit", constants.DefaultPageLimit, "entries per page")
	cmd.Flags().IntVar(&flags.offset, "offset", 0, "entries to skip")
	cmd.Flags().StringVar(&flags.since, "since", "", "only entries after this time")
	cmd.Flags().StringVar(&flags.until, "until", "", "only entries before this time")
	cmd.Flags().StringVar(&flags.before, "before", "", "cursor to page backwards from")
	cmd.Flags().StringVar(&flags.after, "after", "", "cursor to page forwards from")
	cmd.Flags().BoolVar(&flags.all, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&flags.maxPages, "max-pages", 0, "stop after this many pages with --all (0 for no limit)")

	return cmd
}

func listConnection(
	ctx context.Context,
	client graph.Client,
	id string,
	connection graph.ConnectionType,
	flags *connectionFlags,
	opts *graph.ConnectionOptions,
) (*ConnectionListing, error) {
	first := &graph.Connection[connectionItem]{}

	err := client.Connections().Get(ctx, id, connection, first, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", connection, err)
	}

	if !flags.all {
		listing := &ConnectionListing{Data: first.Data}
		if next := first.PagingInfo().NextCursor(); next != nil {
			listing.Next = next.URL
		}

		return listing, nil
	}

	items, err := fbclient.CollectAll(ctx, client, first, flags.maxPages)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch all pages after %d entries: %w", len(items), err)
	}

	return &ConnectionListing{Data: items}, nil
}

func renderConnectionTable(out io.Writer, listing *ConnectionListing) error {
	rows := make([][]string, 0, len(listing.Data))

	for _, item := range listing.Data {
		rows = append(rows, []string{formatValue(item["id"]), summarize(item), formatValue(item["created_time"])})
	}

	err := renderRowsTable(out, "No entries found", []string{"ID", "Summary", "Created"}, rows)
	if err != nil {
		return err
	}

	if listing.Next != "" {
		_, _ = fmt.Fprintln(out, "More entries available, use --all to fetch every page")
	}

	return nil
}

// summarize picks the most descriptive text field of an entry.
func summarize(item connectionItem) string {
	for _, key := range []string{"name", "message", "story", "description"} {
		if text := formatValue(item[key]); text != "" {
			return text
		}
	}

	if from, ok := item["from"].(map[string]any); ok {
		return formatValue(from["name"])
	}

	return NotAvailable
}
