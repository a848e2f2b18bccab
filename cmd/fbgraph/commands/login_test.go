package commands

import (
	"bytes"
	"testing"
	"time"

	"github.com/fivetwenty-io/fbgraph/internal/constants"
	"github.com/fivetwenty-io/fbgraph/pkg/graph"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginCommand(t *testing.T) {
	stub := newGraphStub(t)
	stub.on("GET", "/me", `{"id":"100","name":"Test User"}`)
	configFile := setupCLI(t, stub)
	viper.Set("access_token", "")

	out, err := execute(NewLoginCommand(), "fresh-token\n", "--expires-in", "3600")
	require.NoError(t, err)
	assert.Contains(t, out, "Authenticated as Test User (100)")
	assert.Contains(t, out, "Access token saved")

	request, _ := stub.last()
	assert.Equal(t, "access_token=fresh-token", request.URL.RawQuery)

	saved := readConfigFile(t, configFile)
	assert.Equal(t, "fresh-token", saved.AccessToken)
	require.NotNil(t, saved.TokenExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), *saved.TokenExpiresAt, time.Minute)

	_, err = execute(NewLogoutCommand(), "")
	require.NoError(t, err)

	saved = readConfigFile(t, configFile)
	assert.Empty(t, saved.AccessToken)
	assert.Nil(t, saved.TokenExpiresAt)
}

func TestLoginCommandFailures(t *testing.T) {
	stub := newGraphStub(t)
	configFile := setupCLI(t, stub)

	_, err := execute(NewLoginCommand(), "   \n")
	require.ErrorIs(t, err, constants.ErrEmptyTokenInput)

	_, err = execute(NewLoginCommand(), "tok\n", "--expires-in", "-5")
	require.ErrorIs(t, err, constants.ErrInvalidExpiresIn)

	_, err = execute(NewLoginCommand(), "bad-token\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to verify access token")
	assert.NoFileExists(t, configFile)

	_, err = execute(NewLoginCommand(), "unchecked\n", "--no-verify")
	require.NoError(t, err)
	assert.Equal(t, "unchecked", readConfigFile(t, configFile).AccessToken)
}

func TestLoginCommandTerminal(t *testing.T) {
	setupCLI(t, nil)

	originalIsTerminal, originalReadPassword := isTerminal, readPassword
	t.Cleanup(func() { isTerminal, readPassword = originalIsTerminal, originalReadPassword })

	isTerminal = func(int) bool { return true }
	readPassword = func(int) ([]byte, error) { return []byte("typed-token"), nil }

	_, err := execute(NewLoginCommand(), "", "--no-verify")
	require.NoError(t, err)
	assert.Equal(t, "typed-token", viper.GetString("access_token"))
	assert.True(t, viper.GetTime("token_expires_at").IsZero())
}

func TestCLILogger(t *testing.T) {
	setupCLI(t, nil)

	var buffer bytes.Buffer

	var cli graph.Logger = newCLILogger(&buffer)
	cli.Debug("hidden", nil)
	cli.Warn("Access token expired", map[string]interface{}{"b": 2, "a": 1})
	assert.Equal(t, "[WARN] Access token expired a=1 b=2\n", buffer.String())

	viper.Set("verbose", true)
	cli.Debug("shown", nil)
	assert.Contains(t, buffer.String(), "[DEBUG] shown")
}
