package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/fivetwenty-io/fbgraph/internal/constants"
	fbhttp "github.com/fivetwenty-io/fbgraph/internal/http"
	"github.com/fivetwenty-io/fbgraph/pkg/graph"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// relayRequester answers requests in-process through a NATSRelay, standing
// in for a NATS server with one gateway subscribed.
type relayRequester struct {
	relay    *fbhttp.NATSRelay
	subjects []string
	requests []fbhttp.RelayRequest
}

func (r *relayRequester) RequestWithContext(ctx context.Context, subject string, data []byte) (*nats.Msg, error) {
	r.subjects = append(r.subjects, subject)

	var request fbhttp.RelayRequest
	if err := json.Unmarshal(data, &request); err != nil {
		return nil, err
	}

	r.requests = append(r.requests, request)

	return &nats.Msg{Subject: subject, Data: r.relay.Handle(ctx, data)}, nil
}

// staticRequester returns a fixed reply or error.
type staticRequester struct {
	reply []byte
	err   error
}

func (s *staticRequester) RequestWithContext(context.Context, string, []byte) (*nats.Msg, error) {
	if s.err != nil {
		return nil, s.err
	}

	return &nats.Msg{Data: s.reply}, nil
}

func TestNATSClient_RoundTrip(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		switch request.Method {
		case http.MethodGet:
			assert.Equal(t, "access_token=tok&fields=id%2Cname", request.URL.RawQuery)
			_, _ = io.WriteString(writer, `{"id":"4","name":"Mark"}`)
		case http.MethodPost:
			data, _ := io.ReadAll(request.Body)
			assert.Equal(t, "access_token=tok&message=hi", string(data))
			_, _ = io.WriteString(writer, `{"id":"4_1"}`)
		default:
			writer.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(writer, `{"error":{"message":"Unsupported delete request.","type":"GraphMethodException","code":100}}`)
		}
	}))
	defer server.Close()

	requester := &relayRequester{relay: fbhttp.NewNATSRelay(fbhttp.NewClient(), nil, server.URL)}
	client := fbhttp.NewNATSClient(requester, "graph.relay")
	ctx := context.Background()

	body, err := client.Get(ctx, server.URL+"/4", graph.NewParams("access_token", "tok", "fields", "id,name"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"4","name":"Mark"}`, body)

	body, err = client.Post(ctx, server.URL+"/me/feed", graph.NewParams("access_token", "tok", "message", "hi"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"4_1"}`, body)

	_, err = client.Delete(ctx, server.URL+"/4_1", graph.NewParams("access_token", "tok"))
	require.Error(t, err)

	transportErr := &graph.TransportError{}
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, 404, transportErr.StatusCode)
	assert.Contains(t, transportErr.Body, "GraphMethodException")

	require.Len(t, requester.requests, 3)
	assert.Equal(t, []string{"graph.relay", "graph.relay", "graph.relay"}, requester.subjects)
	assert.Equal(t, "POST", requester.requests[1].Method)
	assert.Equal(t, []fbhttp.RelayParam{{Name: "access_token", Value: "tok"}, {Name: "message", Value: "hi"}}, requester.requests[1].Params)
}

func TestNATSClient_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		requester *staticRequester
		status    int
		sentinel  error
	}{
		{name: "request error", requester: &staticRequester{err: nats.ErrNoResponders}, sentinel: nats.ErrNoResponders},
		{name: "empty reply", requester: &staticRequester{}, sentinel: constants.ErrEmptyRelayReply},
		{name: "gateway error", requester: &staticRequester{reply: []byte(`{"status":0,"error":"dial tcp: connection refused"}`)}, sentinel: constants.ErrRelayFailed},
		{name: "non-2xx", requester: &staticRequester{reply: []byte(`{"status":500,"body":"oops"}`)}, status: 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client := fbhttp.NewNATSClient(tt.requester, "graph.relay")

			_, err := client.Get(context.Background(), "https://graph.example.com/me", nil)
			require.Error(t, err)
			assert.Equal(t, graph.KindTransport, graph.KindOf(err))

			if tt.sentinel != nil {
				assert.True(t, errors.Is(err, tt.sentinel))
			}

			transportErr := &graph.TransportError{}
			require.ErrorAs(t, err, &transportErr)
			assert.Equal(t, tt.status, transportErr.StatusCode)
		})
	}
}

func TestNATSRelay_Handle(t *testing.T) {
	t.Parallel()

	relay := fbhttp.NewNATSRelay(fbhttp.NewClient(), &MockLogger{}, "http://x")

	var reply fbhttp.RelayReply

	require.NoError(t, json.Unmarshal(relay.Handle(context.Background(), []byte(`not json`)), &reply))
	assert.Contains(t, reply.Error, "invalid relay request")

	require.NoError(t, json.Unmarshal(relay.Handle(context.Background(), []byte(`{"method":"PATCH","url":"http://x"}`)), &reply))
	assert.Equal(t, "unsupported method PATCH", reply.Error)
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestNATSRelay_AllowedURLs(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32

	internal := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		hits.Add(1)
		_, _ = io.WriteString(writer, "INTERNAL-SECRET")
	}))
	defer internal.Close()

	graphService := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_, _ = io.WriteString(writer, `{"id":"4"}`)
	}))
	defer graphService.Close()

	logger := &MockLogger{}
	relay := fbhttp.NewNATSRelay(fbhttp.NewClient(), logger, graphService.URL+"/", graphService.URL+"/method/fql.query")

	handle := func(method, target string) fbhttp.RelayReply {
		data, err := json.Marshal(fbhttp.RelayRequest{Method: method, URL: target})
		require.NoError(t, err)

		var reply fbhttp.RelayReply
		require.NoError(t, json.Unmarshal(relay.Handle(context.Background(), data), &reply))

		return reply
	}

	reply := handle(http.MethodGet, graphService.URL+"/4")
	assert.Empty(t, reply.Error)
	assert.Equal(t, http.StatusOK, reply.Status)
	assert.JSONEq(t, `{"id":"4"}`, reply.Body)

	rejected := []string{
		internal.URL + "/admin",
		internal.URL,
		strings.Replace(graphService.URL, "http://", "https://", 1) + "/4",
		strings.Replace(graphService.URL, "http://", "http://user:pass@", 1) + "/4",
		graphService.URL + "/method/../../admin",
		"/4",
		"::not a url",
	}

	for _, target := range rejected {
		for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodDelete} {
			reply := handle(method, target)
			assert.Contains(t, reply.Error, constants.ErrRelayURLNotAllowed.Error(), target)
			assert.Empty(t, reply.Body, target)
			assert.Zero(t, reply.Status, target)
		}
	}

	assert.Zero(t, hits.Load())
	require.NotEmpty(t, logger.logs)
	assert.Equal(t, "Relay request rejected", logger.logs[0]["msg"])

	// Clients see a rejection as a relay failure.
	client := fbhttp.NewNATSClient(&relayRequester{relay: relay}, "graph.relay")
	_, err := client.Get(context.Background(), internal.URL+"/admin", graph.NewParams("access_token", "tok"))
	require.ErrorIs(t, err, constants.ErrRelayFailed)
	assert.Contains(t, err.Error(), "url not allowed")
}

func TestNATSRelay_DefaultAllowedURLs(t *testing.T) {
	t.Parallel()

	relay := fbhttp.NewNATSRelay(&stubTransport{body: "ok"}, nil)

	tests := []struct {
		url     string
		allowed bool
	}{
		{url: constants.DefaultGraphURL + "/me", allowed: true},
		{url: constants.DefaultGraphURL + "/", allowed: true},
		{url: constants.DefaultFQLURL + "?format=JSON", allowed: true},
		{url: "https://api.facebook.com/method/other", allowed: false},
		{url: "http://graph.facebook.com/me", allowed: false},
		{url: "https://graph.facebook.com.evil.example/me", allowed: false},
		{url: "http://169.254.169.254/latest/meta-data", allowed: false},
	}

	for _, tt := range tests {
		data, err := json.Marshal(fbhttp.RelayRequest{Method: http.MethodGet, URL: tt.url})
		require.NoError(t, err)

		var reply fbhttp.RelayReply
		require.NoError(t, json.Unmarshal(relay.Handle(context.Background(), data), &reply))

		if tt.allowed {
			assert.Empty(t, reply.Error, tt.url)
			assert.Equal(t, "ok", reply.Body, tt.url)
		} else {
			assert.Contains(t, reply.Error, "url not allowed", tt.url)
		}
	}
}

func TestDialNATS_RequiresConfig(t *testing.T) {
	t.Parallel()

	_, err := fbhttp.DialNATS(nil)
	require.ErrorIs(t, err, constants.ErrNATSConfigRequired)

	_, err = fbhttp.DialNATS(&graph.NATSConfig{URL: "nats://localhost:4222"})
	require.ErrorIs(t, err, constants.ErrNATSConfigRequired)
}
