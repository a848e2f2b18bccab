package client

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	internalhttp "github.com/fivetwenty-io/fbgraph/internal/http"
	"github.com/fivetwenty-io/fbgraph/pkg/graph"
	"github.com/stretchr/testify/require"
)

const testToken = "test-token"

// recordedRequest is what the fake service saw for one call.
type recordedRequest struct {
	Method   string
	Path     string
	RawQuery string
	Form     string
}

// fakeService is an httptest server answering by "METHOD /path".
type fakeService struct {
	server    *httptest.Server
	mu        sync.Mutex
	requests  []recordedRequest
	responses map[string]fakeResponse
}

type fakeResponse struct {
	status int
	body   string
}

func newFakeService(t *testing.T) *fakeService {
	t.Helper()

	service := &fakeService{responses: map[string]fakeResponse{}}
	service.server = httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		data, _ := io.ReadAll(request.Body)

		service.mu.Lock()
		service.requests = append(service.requests, recordedRequest{
			Method:   request.Method,
			Path:     request.URL.Path,
			RawQuery: request.URL.RawQuery,
			Form:     string(data),
		})
		response, ok := service.responses[request.Method+" "+request.URL.Path]
		service.mu.Unlock()

		if !ok {
			writer.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(writer, `{"error":{"message":"Unknown path components","type":"OAuthException","code":2500}}`)

			return
		}

		if response.status != 0 {
			writer.WriteHeader(response.status)
		}

		_, _ = io.WriteString(writer, response.body)
	}))
	t.Cleanup(service.server.Close)

	return service
}

func (s *fakeService) on(method, path, body string) {
	s.onStatus(method, path, http.StatusOK, body)
}

func (s *fakeService) onStatus(method, path string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.responses[method+" "+path] = fakeResponse{status: status, body: body}
}

func (s *fakeService) last(t *testing.T) recordedRequest {
	t.Helper()

	s.mu.Lock()
	defer s.mu.Unlock()

	require.NotEmpty(t, s.requests)

	return s.requests[len(s.requests)-1]
}

func (s *fakeService) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.requests)
}

// query decodes the raw query of a recorded request.
func (r recordedRequest) query(t *testing.T) url.Values {
	t.Helper()

	values, err := url.ParseQuery(r.RawQuery)
	require.NoError(t, err)

	return values
}

// NewTestClient creates a client whose graph and FQL endpoints point at the
// fake service.
func NewTestClient(t *testing.T, service *fakeService) *Client {
	t.Helper()

	client, err := NewWithTransport(&graph.Config{
		AccessToken: testToken,
		GraphURL:    service.server.URL,
		FQLURL:      service.server.URL + "/method/fql.query",
	}, internalhttp.NewClient())
	require.NoError(t, err)

	return client
}

// MockLogger for testing.
type MockLogger struct {
	mu   sync.Mutex
	logs []map[string]interface{}
}

func (l *MockLogger) record(level, msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.logs = append(l.logs, map[string]interface{}{"level": level, "msg": msg, "fields": fields})
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) { l.record("debug", msg, fields) }
func (l *MockLogger) Info(msg string, fields map[string]interface{})  { l.record("info", msg, fields) }
func (l *MockLogger) Warn(msg string, fields map[string]interface{})  { l.record("warn", msg, fields) }
func (l *MockLogger) Error(msg string, fields map[string]interface{}) { l.record("error", msg, fields) }
