package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"syscall"
	"time"

	"github.com/fivetwenty-io/fbgraph/internal/constants"
	"github.com/fivetwenty-io/fbgraph/pkg/fbclient"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Terminal access, replaceable in tests.
var (
	isTerminal   = term.IsTerminal
	readPassword = term.ReadPassword
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	var (
		expiresIn int
		noVerify  bool
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store an access token",
		Long: `Store an access token in the CLI configuration.

The token is read from the terminal without echo, or from the first line of
standard input when it is not a terminal. Unless --no-verify is given the
token is checked by reading the current user.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if expiresIn < 0 {
				return fmt.Errorf("%w: %d", constants.ErrInvalidExpiresIn, expiresIn)
			}

			token, err := readToken(cmd)
			if err != nil {
				return err
			}

			config := loadConfig()
			config.AccessToken = token
			config.TokenExpiresAt = nil

			if expiresIn > 0 {
				expiresAt := time.Now().Add(time.Duration(expiresIn) * time.Second).UTC().Truncate(time.Second)
				config.TokenExpiresAt = &expiresAt
			}

			if !noVerify {
				err = verifyToken(cmd, config)
				if err != nil {
					return err
				}
			}

			err = saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Access token saved")

			return nil
		},
	}

	cmd.Flags().IntVar(&expiresIn, "expires-in", 0, "token lifetime in seconds, as returned by the OAuth exchange")
	cmd.Flags().BoolVar(&noVerify, "no-verify", false, "store the token without checking it")

	return cmd
}

// NewLogoutCommand creates the logout command
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored access token",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			config.AccessToken = ""
			config.TokenExpiresAt = nil

			err := saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Logged out")

			return nil
		},
	}
}

func readToken(cmd *cobra.Command) (string, error) {
	var token string

	if isTerminal(int(syscall.Stdin)) {
		_, _ = fmt.Fprint(cmd.ErrOrStderr(), "Access token: ")

		byteToken, err := readPassword(int(syscall.Stdin))
		if err != nil {
			return "", fmt.Errorf("failed to read access token: %w", err)
		}

		_, _ = fmt.Fprintln(cmd.ErrOrStderr())

		token = string(byteToken)
	} else {
		line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read access token: %w", err)
		}

		token = line
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", constants.ErrEmptyTokenInput
	}

	return token, nil
}

func verifyToken(cmd *cobra.Command, config *Config) error {
	graphConfig, err := buildGraphConfig(config, newCLILogger(cmd.ErrOrStderr()))
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	client, err := fbclient.New(ctx, graphConfig)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	defer func() { _ = fbclient.Close(client) }()

	user, err := client.Users().Me(ctx)
	if err != nil {
		return fmt.Errorf("failed to verify access token: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Authenticated as %s (%s)\n", user.Name, user.ID)

	return nil
}
