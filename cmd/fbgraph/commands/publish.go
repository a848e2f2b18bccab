package commands

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/fivetwenty-io/fbgraph/internal/constants"
	"github.com/fivetwenty-io/fbgraph/pkg/graph"
	"github.com/spf13/cobra"
)

// PublishResult is the output of a publish command that reports success.
type PublishResult struct {
	ID      string `json:"id"      yaml:"id"`
	Action  string `json:"action"  yaml:"action"`
	Success bool   `json:"success" yaml:"success"`
}

// NewPublishCommand creates the publish command group.
func NewPublishCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "publish",
		Aliases: []string{"pub"},
		Short:   "Publish to the graph",
		Long:    "Post to feeds, comment, like, delete objects and manage notes, events and albums",
	}

	cmd.AddCommand(newPublishWallCommand())
	cmd.AddCommand(newPublishLinkCommand())
	cmd.AddCommand(newPublishCommentCommand())
	cmd.AddCommand(newPublishConfirmCommand("like OBJECT_ID", "Like an object", "like",
		func(ctx context.Context, publish graph.PublishClient, id string) (bool, error) {
			return publish.Like(ctx, id)
		}))
	cmd.AddCommand(newPublishConfirmCommand("unlike OBJECT_ID", "Remove a like from an object", "unlike",
		func(ctx context.Context, publish graph.PublishClient, id string) (bool, error) {
			return publish.Unlike(ctx, id)
		}))
	cmd.AddCommand(newPublishConfirmCommand("delete OBJECT_ID", "Delete an object", "delete",
		func(ctx context.Context, publish graph.PublishClient, id string) (bool, error) {
			return publish.Delete(ctx, id)
		}))
	cmd.AddCommand(newPublishNoteCommand())
	cmd.AddCommand(newPublishEventCommand())
	cmd.AddCommand(newPublishRSVPCommand())
	cmd.AddCommand(newPublishAlbumCommand())

	return cmd
}

func renderCreated(cmd *cobra.Command, created *graph.CommonReturnObject) error {
	renderer := &OutputRenderer[*graph.CommonReturnObject]{
		RenderTable: func(out io.Writer, created *graph.CommonReturnObject) error {
			return renderPropertyTable(out, [][2]string{
				{"ID", created.ID},
				{"Post ID", created.PostID},
			})
		},
	}

	return renderer.Render(cmd.OutOrStdout(), created)
}

func renderConfirmed(cmd *cobra.Command, result PublishResult) error {
	renderer := &OutputRenderer[PublishResult]{
		RenderTable: func(out io.Writer, result PublishResult) error {
			return renderPropertyTable(out, [][2]string{
				{"ID", result.ID},
				{"Action", result.Action},
				{"Success", strconv.FormatBool(result.Success)},
			})
		},
	}

	return renderer.Render(cmd.OutOrStdout(), result)
}

// runCreate publishes through create and renders the created object.
func runCreate(cmd *cobra.Command, what string, create func(ctx context.Context, publish graph.PublishClient) (*graph.CommonReturnObject, error)) error {
	return withClient(cmd, func(ctx context.Context, client graph.Client) error {
		created, err := create(ctx, client.Publish())
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", what, err)
		}

		return renderCreated(cmd, created)
	})
}

func newPublishConfirmCommand(
	use, short, action string,
	confirm func(ctx context.Context, publish graph.PublishClient, id string) (bool, error),
) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, client graph.Client) error {
				ok, err := confirm(ctx, client.Publish(), args[0])
				if err != nil {
					return fmt.Errorf("failed to %s %s: %w", action, args[0], err)
				}

				return renderConfirmed(cmd, PublishResult{ID: args[0], Action: action, Success: ok})
			})
		},
	}
}

func newPublishWallCommand() *cobra.Command {
	var (
		post    graph.WallPost
		profile string
	)

	cmd := &cobra.Command{
		Use:   "wall",
		Short: "Post to a feed",
		Long:  "Post a status update or link to a feed, the current user's by default",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, "wall post", func(ctx context.Context, publish graph.PublishClient) (*graph.CommonReturnObject, error) {
				return publish.WallPost(ctx, post, profile)
			})
		},
	}

	cmd.Flags().StringVarP(&post.Message, "message", "m", "", "message text")
	cmd.Flags().StringVar(&post.Link, "link", "", "link to attach")
	cmd.Flags().StringVar(&post.Picture, "picture", "", "picture URL for the link")
	cmd.Flags().StringVar(&post.Name, "name", "", "link name")
	cmd.Flags().StringVar(&post.Caption, "caption", "", "link caption")
	cmd.Flags().StringVar(&post.Description, "description", "", "link description")
	cmd.Flags().StringVar(&post.Source, "source", "", "media URL for the post")
	cmd.Flags().StringVar(&post.Privacy, "privacy", "", "privacy setting as JSON")
	cmd.Flags().StringVar(&profile, "profile", "", "profile to post to (default: the current user)")

	return cmd
}

func newPublishLinkCommand() *cobra.Command {
	var (
		share   graph.LinkShare
		profile string
	)

	cmd := &cobra.Command{
		Use:   "link URL",
		Short: "Share a link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			share.Link = args[0]

			return runCreate(cmd, "link", func(ctx context.Context, publish graph.PublishClient) (*graph.CommonReturnObject, error) {
				return publish.ShareLink(ctx, share, profile)
			})
		},
	}

	cmd.Flags().StringVarP(&share.Message, "message", "m", "", "message to share the link with")
	cmd.Flags().StringVar(&share.Picture, "picture", "", "preview picture URL")
	cmd.Flags().StringVar(&share.Name, "name", "", "preview title")
	cmd.Flags().StringVar(&share.Caption, "caption", "", "preview caption")
	cmd.Flags().StringVar(&share.Description, "description", "", "preview description")
	cmd.Flags().StringVar(&profile, "profile", "", "profile to share on (default: the current user)")

	return cmd
}

func newPublishCommentCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "comment OBJECT_ID MESSAGE",
		Short: "Comment on an object",
		Args:  cobra.ExactArgs(2), //nolint:mnd // object id and message
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, "comment", func(ctx context.Context, publish graph.PublishClient) (*graph.CommonReturnObject, error) {
				return publish.Comment(ctx, args[0], args[1])
			})
		},
	}
}

func newPublishNoteCommand() *cobra.Command {
	var (
		note    graph.Note
		profile string
	)

	cmd := &cobra.Command{
		Use:   "note",
		Short: "Create a note",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, "note", func(ctx context.Context, publish graph.PublishClient) (*graph.CommonReturnObject, error) {
				return publish.CreateNote(ctx, note, profile)
			})
		},
	}

	cmd.Flags().StringVar(&note.Subject, "subject", "", "note subject")
	cmd.Flags().StringVarP(&note.Message, "message", "m", "", "note body")
	cmd.Flags().StringVar(&profile, "profile", "", "profile to create the note on (default: the current user)")

	return cmd
}

func newPublishEventCommand() *cobra.Command {
	var (
		event   graph.Event
		profile string
	)

	cmd := &cobra.Command{
		Use:   "event",
		Short: "Create an event",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, "event", func(ctx context.Context, publish graph.PublishClient) (*graph.CommonReturnObject, error) {
				return publish.CreateEvent(ctx, event, profile)
			})
		},
	}

	cmd.Flags().StringVar(&event.Name, "name", "", "event name")
	cmd.Flags().StringVar(&event.Description, "description", "", "event description")
	cmd.Flags().StringVar(&event.StartTime, "start", "", "start time, such as 2011-04-01T19:00:00-0700")
	cmd.Flags().StringVar(&event.EndTime, "end", "", "end time")
	cmd.Flags().StringVar(&event.Location, "location", "", "event location")
	cmd.Flags().StringVar(&event.Privacy, "privacy", "", "event privacy")
	cmd.Flags().StringVar(&profile, "profile", "", "profile that owns the event (default: the current user)")

	return cmd
}

func newPublishRSVPCommand() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "rsvp EVENT_ID",
		Short: "Reply to an event invitation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rsvp := graph.RSVPStatus(status)
			if rsvp.Validate() != nil {
				return fmt.Errorf("%w: %q", constants.ErrInvalidRSVP, status)
			}

			return withClient(cmd, func(ctx context.Context, client graph.Client) error {
				ok, err := client.Publish().RSVP(ctx, args[0], rsvp)
				if err != nil {
					return fmt.Errorf("failed to rsvp: %w", err)
				}

				return renderConfirmed(cmd, PublishResult{ID: args[0], Action: "rsvp " + status, Success: ok})
			})
		},
	}

	cmd.Flags().StringVar(&status, "status", string(graph.RSVPAttending), "attending, maybe or declined")

	return cmd
}

func newPublishAlbumCommand() *cobra.Command {
	var (
		album   graph.Album
		profile string
	)

	cmd := &cobra.Command{
		Use:   "album",
		Short: "Create a photo album",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, "album", func(ctx context.Context, publish graph.PublishClient) (*graph.CommonReturnObject, error) {
				return publish.CreateAlbum(ctx, album, profile)
			})
		},
	}

	cmd.Flags().StringVar(&album.Name, "name", "", "album name")
	cmd.Flags().StringVarP(&album.Message, "message", "m", "", "album description")
	cmd.Flags().StringVar(&album.Privacy, "privacy", "", "album privacy")
	cmd.Flags().StringVar(&profile, "profile", "", "profile that owns the album (default: the current user)")

	return cmd
}
