//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	AccessToken string
	GraphURL    string
	BinaryPath  string
	AllowWrites bool
	Verbose     bool
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		AccessToken: os.Getenv("FBGRAPH_IT_ACCESS_TOKEN"),
		GraphURL:    os.Getenv("FBGRAPH_IT_GRAPH_URL"),
		BinaryPath:  getBinaryPath(),
		AllowWrites: os.Getenv("FBGRAPH_IT_ALLOW_WRITES") == "true",
		Verbose:     os.Getenv("FBGRAPH_IT_VERBOSE") == "true",
	}
}

// getBinaryPath determines the path to the fbgraph binary
func getBinaryPath() string {
	if path := os.Getenv("FBGRAPH_BINARY_PATH"); path != "" {
		return path
	}

	// Try common locations
	candidates := []string{
		"../../fbgraph",
		"./fbgraph",
		"../fbgraph",
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "fbgraph" // Fallback to PATH
}

// SkipIfMissingConfig skips test if required config is missing
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if config.AccessToken == "" {
		t.Skip("FBGRAPH_IT_ACCESS_TOKEN not set, skipping integration test")
	}

	if _, err := exec.LookPath(config.BinaryPath); err != nil {
		t.Skipf("fbgraph binary not found at %s, skipping integration test", config.BinaryPath)
	}
}

// SkipUnlessWritesAllowed skips tests that publish to the live account
func (config *TestConfig) SkipUnlessWritesAllowed(t *testing.T) {
	t.Helper()

	if !config.AllowWrites {
		t.Skip("FBGRAPH_IT_ALLOW_WRITES not set, skipping publishing test")
	}
}

// CommandRunner provides utilities for running fbgraph commands
type CommandRunner struct {
	config     *TestConfig
	configFile string
	t          *testing.T
}

// NewCommandRunner creates a new command runner with an isolated config file
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	t.Helper()

	return &CommandRunner{
		config:     config,
		configFile: t.TempDir() + "/config.yml",
		t:          t,
	}
}

// Run executes an fbgraph command and returns output
func (runner *CommandRunner) Run(args ...string) (stdout, stderr string, err error) {
	return runner.RunWithInput("", args...)
}

// RunWithInput executes an fbgraph command with stdin input
func (runner *CommandRunner) RunWithInput(input string, args ...string) (stdout, stderr string, err error) {
	fullArgs := append([]string{"--config", runner.configFile}, args...)
	if runner.config.GraphURL != "" {
		fullArgs = append(fullArgs, "--graph-url", runner.config.GraphURL)
	}

	cmd := exec.Command(runner.config.BinaryPath, fullArgs...)

	var stdoutBuf, stderrBuf bytes.Buffer

	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf
	cmd.Stdin = strings.NewReader(input)

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.BinaryPath, strings.Join(args, " "))
	}

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}

// Login stores the test access token in the runner's config file
func (runner *CommandRunner) Login() error {
	_, stderr, err := runner.RunWithInput(runner.config.AccessToken+"\n", "login")
	if err != nil {
		return fmt.Errorf("failed to login: %s", stderr)
	}

	return nil
}

// RunJSON executes a command with JSON output and decodes it into target
func (runner *CommandRunner) RunJSON(target any, args ...string) error {
	stdout, stderr, err := runner.Run(append([]string{"--output", "json"}, args...)...)
	if err != nil {
		return fmt.Errorf("%w: %s", err, stderr)
	}

	return json.Unmarshal([]byte(stdout), target)
}

// GenerateTestName creates a unique test resource name
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().Unix())
}

// AssertJSONOutput verifies command output is valid JSON
func AssertJSONOutput(t *testing.T, output string) {
	t.Helper()

	if !json.Valid([]byte(strings.TrimSpace(output))) {
		t.Errorf("Output does not appear to be JSON: %s", output)
	}
}

// AssertYAMLOutput verifies command output is valid YAML
func AssertYAMLOutput(t *testing.T, output string) {
	t.Helper()

	output = strings.TrimSpace(output)
	if strings.Contains(output, "---") || strings.Contains(output, ":") {
		return // Looks like YAML
	}

	t.Errorf("Output does not appear to be YAML: %s", output)
}
