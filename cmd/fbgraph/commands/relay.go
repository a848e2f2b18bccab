package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	graphclient "github.com/fivetwenty-io/fbgraph/internal/client"
	"github.com/fivetwenty-io/fbgraph/internal/constants"
	fbhttp "github.com/fivetwenty-io/fbgraph/internal/http"
	"github.com/fivetwenty-io/fbgraph/pkg/graph"
	"github.com/nats-io/nats.go"
	"github.com/spf13/cobra"
)

// NewRelayCommand creates the relay command, the gateway side of the nats
// transport.
func NewRelayCommand() *cobra.Command {
	var (
		natsURL string
		subject string
		queue   string
	)

	cmd := &cobra.Command{
		Use:   "relay",
		Short: "Serve graph requests received over NATS",
		Long: `Answer requests published by clients using the nats transport. Each request
is performed over HTTP with the configured transport settings and the body or
error is sent back as the reply. Relays sharing a queue group split the load.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			if natsURL == "" {
				natsURL = config.NATSURL
			}

			if natsURL == "" {
				natsURL = nats.DefaultURL
			}

			if subject == "" {
				subject = config.NATSSubject
			}

			if subject == "" {
				subject = constants.DefaultRelaySubject
			}

			logger := newCLILogger(cmd.ErrOrStderr())

			transport, err := relayTransport(config, logger)
			if err != nil {
				return err
			}

			conn, err := nats.Connect(natsURL, nats.Name("fbgraph-relay"))
			if err != nil {
				return fmt.Errorf("failed to connect to NATS: %w", err)
			}
			defer conn.Close()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			endpoints := relayEndpoints(config)

			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Relaying %s on %s (queue %s) to %s\n",
				subject, conn.ConnectedUrlRedacted(), queue, strings.Join(endpoints, ", "))

			return fbhttp.NewNATSRelay(transport, logger, endpoints...).Serve(ctx, conn, subject, queue)
		},
	}

	cmd.Flags().StringVar(&natsURL, "nats-url", "", "NATS server URL (default: nats_url from config, then "+nats.DefaultURL+")")
	cmd.Flags().StringVar(&subject, "subject", "", "subject to answer on (default: "+constants.DefaultRelaySubject+")")
	cmd.Flags().StringVar(&queue, "queue", constants.DefaultRelayQueue, "queue group shared by relays")

	return cmd
}

// relayTransport builds the HTTP transport the relay forwards with.
func relayTransport(config *Config, logger graph.Logger) (graph.Transport, error) {
	if graph.TransportType(config.Transport) == graph.TransportNATS {
		return nil, constants.ErrRelayNeedsHTTP
	}

	// The relay never attaches a token of its own; requests carry theirs.
	relayConfig := *config
	relayConfig.AccessToken = ""

	graphConfig, err := buildGraphConfig(&relayConfig, logger)
	if err != nil {
		return nil, err
	}

	transport, err := graphclient.NewTransport(graphConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create relay transport: %w", err)
	}

	return transport, nil
}

// relayEndpoints lists the base URLs the relay forwards to: the configured
// graph and FQL endpoints, or their defaults.
func relayEndpoints(config *Config) []string {
	graphURL := config.GraphURL
	if graphURL == "" {
		graphURL = constants.DefaultGraphURL
	}

	fqlURL := config.FQLURL
	if fqlURL == "" {
		fqlURL = constants.DefaultFQLURL
	}

	return []string{graphURL, fqlURL}
}
