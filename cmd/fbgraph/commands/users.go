package commands

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/fivetwenty-io/fbgraph/pkg/graph"
	"github.com/spf13/cobra"
)

// NewUsersCommand creates the user command group.
func NewUsersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "user",
		Aliases: []string{"users"},
		Short:   "Read user profiles",
		Long:    "Read user profiles by id or username",
	}

	cmd.AddCommand(newUsersGetCommand())
	cmd.AddCommand(newUsersMeCommand())
	cmd.AddCommand(newUsersManyCommand())

	return cmd
}

func newUsersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get USER_ID",
		Short: "Get a user",
		Long:  "Display the profile of a user by id or username",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, client graph.Client) error {
				user, err := client.Users().Get(ctx, args[0])
				if err != nil {
					return fmt.Errorf("failed to get user: %w", err)
				}

				return renderUser(cmd.OutOrStdout(), user)
			})
		},
	}
}

func newUsersMeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Get the current user",
		Long:  "Display the profile of the owner of the access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, client graph.Client) error {
				user, err := client.Users().Me(ctx)
				if err != nil {
					return fmt.Errorf("failed to get current user: %w", err)
				}

				return renderUser(cmd.OutOrStdout(), user)
			})
		},
	}
}

func newUsersManyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "many USER_ID...",
		Short: "Get several users in one request",
		Long:  "Display several users fetched with a single multi-id request, in the order given",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := splitIDs(args)

			return withClient(cmd, func(ctx context.Context, client graph.Client) error {
				users, err := client.Users().GetMany(ctx, ids)
				if err != nil {
					return fmt.Errorf("failed to get users: %w", err)
				}

				renderer := &OutputRenderer[[]*graph.User]{
					RenderTable: func(out io.Writer, users []*graph.User) error {
						rows := make([][]string, 0, len(users))

						for i, user := range users {
							if user == nil {
								rows = append(rows, []string{ids[i], NotFound, ""})

								continue
							}

							rows = append(rows, []string{user.ID, user.Name, user.Username})
						}

						return renderRowsTable(out, "No users found", []string{"ID", "Name", "Username"}, rows)
					},
				}

				return renderer.Render(cmd.OutOrStdout(), users)
			})
		},
	}
}

func renderUser(out io.Writer, user *graph.User) error {
	renderer := &OutputRenderer[*graph.User]{
		RenderTable: func(out io.Writer, user *graph.User) error {
			rows := [][2]string{
				{"ID", user.ID},
				{"Name", user.Name},
				{"Username", user.Username},
				{"Gender", user.Gender},
				{"Locale", user.Locale},
				{"Link", user.Link},
				{"Email", user.Email},
				{"Birthday", user.Birthday},
				{"Relationship", user.RelationshipStatus},
				{"Updated", user.UpdatedTime},
			}

			if user.Location != nil {
				rows = append(rows, [2]string{"Location", user.Location.Name})
			}

			if user.Hometown != nil {
				rows = append(rows, [2]string{"Hometown", user.Hometown.Name})
			}

			if user.Verified != nil {
				rows = append(rows, [2]string{"Verified", strconv.FormatBool(*user.Verified)})
			}

			for _, work := range user.Work {
				rows = append(rows, [2]string{"Work", work.Employer.Name})
			}

			for _, education := range user.Education {
				rows = append(rows, [2]string{"Education", education.School.Name})
			}

			return renderPropertyTable(out, rows)
		},
	}

	return renderer.Render(out, user)
}
