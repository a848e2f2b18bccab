package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/fivetwenty-io/fbgraph/internal/constants"
	"github.com/fivetwenty-io/fbgraph/pkg/fbclient"
	"github.com/fivetwenty-io/fbgraph/pkg/graph"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config represents the CLI configuration.
type Config struct {
	AccessToken    string     `json:"access_token,omitempty"     yaml:"access_token,omitempty"`
	TokenExpiresAt *time.Time `json:"token_expires_at,omitempty" yaml:"token_expires_at,omitempty"`

	GraphURL  string `json:"graph_url,omitempty"  yaml:"graph_url,omitempty"`
	FQLURL    string `json:"fql_url,omitempty"    yaml:"fql_url,omitempty"`
	Output    string `json:"output,omitempty"     yaml:"output,omitempty"`
	UserAgent string `json:"user_agent,omitempty" yaml:"user_agent,omitempty"`

	// Transport settings
	Transport string  `json:"transport,omitempty"  yaml:"transport,omitempty"`
	Timeout   string  `json:"timeout,omitempty"    yaml:"timeout,omitempty"`
	RetryMax  int     `json:"retry_max,omitempty"  yaml:"retry_max,omitempty"`
	RateLimit float64 `json:"rate_limit,omitempty" yaml:"rate_limit,omitempty"`
	RateBurst int     `json:"rate_burst,omitempty" yaml:"rate_burst,omitempty"`

	NATSURL     string `json:"nats_url,omitempty"     yaml:"nats_url,omitempty"`
	NATSSubject string `json:"nats_subject,omitempty" yaml:"nats_subject,omitempty"`
}

// settableKeys lists the keys accepted by "config set" and "config unset".
var settableKeys = []string{
	"fql_url", "graph_url", "nats_subject", "nats_url", "output",
	"rate_burst", "rate_limit", "retry_max", "timeout", "transport", "user_agent",
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Manage fbgraph CLI configuration stored in $HOME/.fbgraph/config.yml",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())
	cmd.AddCommand(newConfigClearCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the current CLI configuration with the access token masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			if config.AccessToken != "" {
				config.AccessToken = Masked
			}

			renderer := &OutputRenderer[*Config]{RenderTable: renderConfigTable}

			return renderer.Render(cmd.OutOrStdout(), config)
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a configuration value. Keys: " + strings.Join(settableKeys, ", "),
		Args:  cobra.ExactArgs(2), //nolint:mnd // key and value
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			err := setConfigValue(config, args[0], args[1])
			if err != nil {
				return err
			}

			err = saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s\n", args[0])

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Unset a configuration value",
		Long:  "Remove a configuration value so the default applies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			err := unsetConfigValue(config, args[0])
			if err != nil {
				return err
			}

			err = saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Unset %s\n", args[0])

			return nil
		},
	}
}

func newConfigClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear configuration",
		Long:  "Remove the configuration file, including the stored access token",
		RunE: func(cmd *cobra.Command, args []string) error {
			configFile, err := configFilePath()
			if err != nil {
				return err
			}

			err = os.Remove(configFile)
			if err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("failed to remove config file: %w", err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Configuration cleared")

			return nil
		},
	}
}

func renderConfigTable(out io.Writer, config *Config) error {
	rows := [][2]string{
		{"Access Token", config.AccessToken},
		{"Graph URL", config.GraphURL},
		{"FQL URL", config.FQLURL},
		{"Output", config.Output},
		{"User Agent", config.UserAgent},
		{"Transport", config.Transport},
		{"Timeout", config.Timeout},
		{"NATS URL", config.NATSURL},
		{"NATS Subject", config.NATSSubject},
	}

	if config.TokenExpiresAt != nil {
		rows = append(rows, [2]string{"Token Expires", config.TokenExpiresAt.Format(time.RFC3339)})
	}

	if config.RetryMax > 0 {
		rows = append(rows, [2]string{"Retry Max", strconv.Itoa(config.RetryMax)})
	}

	if config.RateLimit > 0 {
		rows = append(rows,
			[2]string{"Rate Limit", strconv.FormatFloat(config.RateLimit, 'f', -1, 64)},
			[2]string{"Rate Burst", strconv.Itoa(config.RateBurst)})
	}

	return renderPropertyTable(out, rows)
}

//nolint:cyclop // one case per key
func setConfigValue(config *Config, key, value string) error {
	var err error

	switch key {
	case "graph_url":
		config.GraphURL = value
	case "fql_url":
		config.FQLURL = value
	case "output":
		switch value {
		case constants.FormatTable, constants.FormatJSON, constants.FormatYAML:
			config.Output = value
		default:
			return fmt.Errorf("%w: %s", constants.ErrUnsupportedFormat, value)
		}
	case "user_agent":
		config.UserAgent = value
	case "transport":
		switch graph.TransportType(value) {
		case graph.TransportStandard, graph.TransportRetryable, graph.TransportNATS:
			config.Transport = value
		default:
			return fmt.Errorf("%w: %s", constants.ErrUnsupportedTransport, value)
		}
	case "timeout":
		_, err = time.ParseDuration(value)
		config.Timeout = value
	case "retry_max":
		config.RetryMax, err = strconv.Atoi(value)
	case "rate_limit":
		config.RateLimit, err = strconv.ParseFloat(value, 64)
	case "rate_burst":
		config.RateBurst, err = strconv.Atoi(value)
	case "nats_url":
		config.NATSURL = value
	case "nats_subject":
		config.NATSSubject = value
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	if err != nil {
		return fmt.Errorf("%w for %s: %q", constants.ErrInvalidConfigValue, key, value)
	}

	return nil
}

//nolint:cyclop // one case per key
func unsetConfigValue(config *Config, key string) error {
	switch key {
	case "access_token":
		config.AccessToken = ""
		config.TokenExpiresAt = nil
	case "graph_url":
		config.GraphURL = ""
	case "fql_url":
		config.FQLURL = ""
	case "output":
		config.Output = ""
	case "user_agent":
		config.UserAgent = ""
	case "transport":
		config.Transport = ""
	case "timeout":
		config.Timeout = ""
	case "retry_max":
		config.RetryMax = 0
	case "rate_limit":
		config.RateLimit = 0
	case "rate_burst":
		config.RateBurst = 0
	case "nats_url":
		config.NATSURL = ""
	case "nats_subject":
		config.NATSSubject = ""
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	return nil
}

// loadConfig reads the configuration from viper, which merges flags,
// FBGRAPH_* environment variables and the config file.
func loadConfig() *Config {
	config := &Config{
		AccessToken: viper.GetString("access_token"),
		GraphURL:    viper.GetString("graph_url"),
		FQLURL:      viper.GetString("fql_url"),
		Output:      viper.GetString("output"),
		UserAgent:   viper.GetString("user_agent"),
		Transport:   viper.GetString("transport"),
		Timeout:     viper.GetString("timeout"),
		RetryMax:    viper.GetInt("retry_max"),
		RateLimit:   viper.GetFloat64("rate_limit"),
		RateBurst:   viper.GetInt("rate_burst"),
		NATSURL:     viper.GetString("nats_url"),
		NATSSubject: viper.GetString("nats_subject"),
	}

	if expiresAt := viper.GetTime("token_expires_at"); !expiresAt.IsZero() {
		config.TokenExpiresAt = &expiresAt
	}

	return config
}

func configFilePath() (string, error) {
	configFile := viper.ConfigFileUsed()
	if configFile != "" {
		return configFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, constants.ConfigDirName, constants.ConfigFileName), nil
}

// saveConfigStruct writes config to the config file and makes the saved
// values visible to later lookups in this process.
func saveConfigStruct(config *Config) error {
	configFile, err := configFilePath()
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(configFile), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	syncViper(config)

	return nil
}

// syncViper overrides the viper values with config so commands later in
// the same process see what was saved.
func syncViper(config *Config) {
	viper.Set("access_token", config.AccessToken)
	viper.Set("graph_url", config.GraphURL)
	viper.Set("fql_url", config.FQLURL)
	viper.Set("output", config.Output)
	viper.Set("user_agent", config.UserAgent)
	viper.Set("transport", config.Transport)
	viper.Set("timeout", config.Timeout)
	viper.Set("retry_max", config.RetryMax)
	viper.Set("rate_limit", config.RateLimit)
	viper.Set("rate_burst", config.RateBurst)
	viper.Set("nats_url", config.NATSURL)
	viper.Set("nats_subject", config.NATSSubject)

	if config.TokenExpiresAt != nil {
		viper.Set("token_expires_at", *config.TokenExpiresAt)
	} else {
		viper.Set("token_expires_at", time.Time{})
	}
}

// buildGraphConfig translates the CLI configuration into a client config.
func buildGraphConfig(config *Config, logger graph.Logger) (*graph.Config, error) {
	graphConfig := &graph.Config{
		AccessToken:   config.AccessToken,
		GraphURL:      config.GraphURL,
		FQLURL:        config.FQLURL,
		TransportType: graph.TransportType(config.Transport),
		RetryMax:      config.RetryMax,
		RateLimit:     config.RateLimit,
		RateBurst:     config.RateBurst,
		UserAgent:     config.UserAgent,
		Logger:        logger,
		Debug:         viper.GetBool("verbose"),
	}

	if config.TokenExpiresAt != nil {
		graphConfig.TokenExpiresAt = *config.TokenExpiresAt
	}

	if config.Timeout != "" {
		timeout, err := time.ParseDuration(config.Timeout)
		if err != nil {
			return nil, fmt.Errorf("%w for timeout: %q", constants.ErrInvalidConfigValue, config.Timeout)
		}

		graphConfig.HTTPTimeout = timeout
	}

	if graphConfig.TransportType == graph.TransportNATS {
		subject := config.NATSSubject
		if subject == "" {
			subject = constants.DefaultRelaySubject
		}

		graphConfig.NATS = &graph.NATSConfig{URL: config.NATSURL, Subject: subject, Name: "fbgraph-cli"}
	}

	return graphConfig, nil
}

// CreateClient creates a graph client from the current configuration.
func CreateClient(ctx context.Context, cmd *cobra.Command) (graph.Client, error) {
	config := loadConfig()
	if config.AccessToken == "" {
		return nil, constants.ErrNoAccessToken
	}

	graphConfig, err := buildGraphConfig(config, newCLILogger(cmd.ErrOrStderr()))
	if err != nil {
		return nil, err
	}

	client, err := fbclient.New(ctx, graphConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// withClient runs fn with a client built from the configuration and
// releases the client afterwards.
func withClient(cmd *cobra.Command, fn func(ctx context.Context, client graph.Client) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	client, err := CreateClient(ctx, cmd)
	if err != nil {
		return err
	}

	defer func() { _ = fbclient.Close(client) }()

	return fn(ctx, client)
}
