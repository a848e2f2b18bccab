package commands

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// findSubcommand finds a subcommand by name within a cobra command.
func findSubcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, c := range cmd.Commands() {
		if c.Name() == name {
			return c
		}
	}

	return nil
}

// graphStub answers "METHOD /path" with canned bodies and records requests.
type graphStub struct {
	server    *httptest.Server
	mutex     sync.Mutex
	responses map[string]string
	requests  []*http.Request
	forms     []string
}

func newGraphStub(t *testing.T) *graphStub {
	t.Helper()

	stub := &graphStub{responses: map[string]string{}}
	stub.server = httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		data, _ := io.ReadAll(request.Body)

		stub.mutex.Lock()
		stub.requests = append(stub.requests, request)
		stub.forms = append(stub.forms, string(data))
		body, ok := stub.responses[request.Method+" "+request.URL.Path]
		stub.mutex.Unlock()

		if !ok {
			writer.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(writer, `{"error":{"message":"Unknown path components","type":"OAuthException","code":2500}}`)

			return
		}

		_, _ = io.WriteString(writer, strings.ReplaceAll(body, "SERVER_URL", stub.server.URL))
	}))
	t.Cleanup(stub.server.Close)

	return stub
}

func (s *graphStub) on(method, path, body string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.responses[method+" "+path] = body
}

func (s *graphStub) last() (*http.Request, string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if len(s.requests) == 0 {
		return nil, ""
	}

	return s.requests[len(s.requests)-1], s.forms[len(s.forms)-1]
}

func (s *graphStub) count() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return len(s.requests)
}

// setupCLI points the global configuration at stub and a temporary config
// file. Tests using it must not run in parallel.
func setupCLI(t *testing.T, stub *graphStub) string {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)

	configFile := filepath.Join(t.TempDir(), "config.yml")
	viper.SetConfigFile(configFile)
	viper.Set("output", "json")

	if stub != nil {
		viper.Set("access_token", "test-token")
		viper.Set("graph_url", stub.server.URL)
		viper.Set("fql_url", stub.server.URL+"/method/fql.query")
	}

	return configFile
}

// execute runs cmd with args and returns what it wrote to stdout.
func execute(cmd *cobra.Command, stdin string, args ...string) (string, error) {
	var stdout, stderr bytes.Buffer

	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()

	return stdout.String(), err
}
