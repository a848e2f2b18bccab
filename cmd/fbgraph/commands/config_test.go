package commands

import (
	"encoding/json"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/fivetwenty-io/fbgraph/internal/constants"
	"github.com/fivetwenty-io/fbgraph/pkg/graph"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func readConfigFile(t *testing.T, path string) Config {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var config Config
	require.NoError(t, yaml.Unmarshal(data, &config))

	return config
}

func TestConfigSetAndUnset(t *testing.T) {
	configFile := setupCLI(t, nil)

	_, err := execute(NewConfigCommand(), "", "set", "transport", "retryable")
	require.NoError(t, err)

	_, err = execute(NewConfigCommand(), "", "set", "retry_max", "3")
	require.NoError(t, err)

	saved := readConfigFile(t, configFile)
	assert.Equal(t, "retryable", saved.Transport)
	assert.Equal(t, 3, saved.RetryMax)

	info, err := os.Stat(configFile)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(constants.ConfigFilePerm), info.Mode().Perm())

	_, err = execute(NewConfigCommand(), "", "unset", "transport")
	require.NoError(t, err)
	assert.Empty(t, readConfigFile(t, configFile).Transport)
}

func TestConfigSetValidation(t *testing.T) {
	setupCLI(t, nil)

	tests := []struct {
		key, value string
		want       error
	}{
		{"colour", "blue", constants.ErrUnknownConfigKey},
		{"output", "xml", constants.ErrUnsupportedFormat},
		{"transport", "carrier-pigeon", constants.ErrUnsupportedTransport},
		{"retry_max", "three", constants.ErrInvalidConfigValue},
		{"timeout", "soon", constants.ErrInvalidConfigValue},
	}

	for _, testCase := range tests {
		_, err := execute(NewConfigCommand(), "", "set", testCase.key, testCase.value)
		require.ErrorIs(t, err, testCase.want, testCase.key)
	}

	_, err := execute(NewConfigCommand(), "", "unset", "colour")
	require.ErrorIs(t, err, constants.ErrUnknownConfigKey)
}

func TestConfigShowMasksToken(t *testing.T) {
	setupCLI(t, nil)
	viper.Set("access_token", "super-secret")

	out, err := execute(NewConfigCommand(), "", "show")
	require.NoError(t, err)
	assert.NotContains(t, out, "super-secret")

	var shown Config
	require.NoError(t, json.Unmarshal([]byte(out), &shown))
	assert.Equal(t, Masked, shown.AccessToken)
}

func TestConfigClear(t *testing.T) {
	configFile := setupCLI(t, nil)

	_, err := execute(NewConfigCommand(), "", "set", "output", "yaml")
	require.NoError(t, err)

	_, err = execute(NewConfigCommand(), "", "clear")
	require.NoError(t, err)

	_, err = os.Stat(configFile)
	assert.True(t, errors.Is(err, os.ErrNotExist))

	_, err = execute(NewConfigCommand(), "", "clear")
	require.NoError(t, err)
}

func TestBuildGraphConfig(t *testing.T) {
	t.Parallel()

	expiresAt := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	config, err := buildGraphConfig(&Config{
		AccessToken:    "tok",
		TokenExpiresAt: &expiresAt,
		Transport:      "nats",
		Timeout:        "5s",
		NATSURL:        "nats://broker:4222",
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, graph.TransportNATS, config.TransportType)
	assert.Equal(t, 5*time.Second, config.HTTPTimeout)
	assert.Equal(t, expiresAt, config.TokenExpiresAt)
	require.NotNil(t, config.NATS)
	assert.Equal(t, constants.DefaultRelaySubject, config.NATS.Subject)
	assert.Equal(t, "nats://broker:4222", config.NATS.URL)

	_, err = buildGraphConfig(&Config{Timeout: "later"}, nil)
	require.ErrorIs(t, err, constants.ErrInvalidConfigValue)
}

func TestRelayTransport(t *testing.T) {
	t.Parallel()

	_, err := relayTransport(&Config{Transport: "nats"}, nil)
	require.ErrorIs(t, err, constants.ErrRelayNeedsHTTP)

	transport, err := relayTransport(&Config{Transport: "retryable", RetryMax: 2}, nil)
	require.NoError(t, err)
	assert.NotNil(t, transport)

	_, err = relayTransport(&Config{Transport: "smoke-signals"}, nil)
	require.ErrorIs(t, err, constants.ErrUnsupportedTransport)
}

func TestRelayEndpoints(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{constants.DefaultGraphURL, constants.DefaultFQLURL}, relayEndpoints(&Config{}))
	assert.Equal(t,
		[]string{"https://graph.example.com", "https://fql.example.com/method/fql.query"},
		relayEndpoints(&Config{GraphURL: "https://graph.example.com", FQLURL: "https://fql.example.com/method/fql.query"}),
	)
}

func TestNewRelayCommand(t *testing.T) {
	t.Parallel()

	cmd := NewRelayCommand()
	assert.Equal(t, "relay", cmd.Use)
	assert.Equal(t, constants.DefaultRelayQueue, cmd.Flags().Lookup("queue").DefValue)
	assert.NotNil(t, cmd.Flags().Lookup("nats-url"))
	assert.NotNil(t, cmd.Flags().Lookup("subject"))
}
