package fbclient_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fivetwenty-io/fbgraph/pkg/fbclient"
	"github.com/fivetwenty-io/fbgraph/pkg/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("creates client with config", func(t *testing.T) {
		t.Parallel()

		config := &graph.Config{
			AccessToken: "test-token",
			GraphURL:    "graph.example.com/",
		}

		client, err := fbclient.New(context.Background(), config)
		require.NoError(t, err)
		assert.NotNil(t, client)
		assert.Equal(t, "graph.example.com/", config.GraphURL)
	})

	t.Run("requires config", func(t *testing.T) {
		t.Parallel()

		_, err := fbclient.New(context.Background(), nil)
		require.ErrorIs(t, err, graph.ErrConfigRequired)
	})

	t.Run("requires access token", func(t *testing.T) {
		t.Parallel()

		_, err := fbclient.New(context.Background(), &graph.Config{})
		require.ErrorIs(t, err, graph.ErrAccessTokenRequired)
		assert.Contains(t, err.Error(), "failed to create new client")
	})

	t.Run("rejects unknown transport", func(t *testing.T) {
		t.Parallel()

		_, err := fbclient.New(context.Background(), &graph.Config{AccessToken: "t", TransportType: "carrier-pigeon"})
		require.Error(t, err)
	})
}

func TestNewWithToken(t *testing.T) {
	t.Parallel()

	client, err := fbclient.NewWithToken(context.Background(), "test-token")
	require.NoError(t, err)
	assert.Equal(t, "test-token", client.AccessToken().Token())
	assert.NoError(t, fbclient.Close(client))
}

func TestClientIntegration(t *testing.T) {
	t.Parallel()

	var server *httptest.Server

	server = httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		switch request.URL.Path {
		case "/me":
			_, _ = io.WriteString(writer, `{"id":"100","name":"Test User"}`)
		case "/me/friends":
			if request.URL.Query().Get("after") == "" {
				_, _ = io.WriteString(writer, `{"data":[{"id":"1","name":"One"}],"paging":{"next":"`+server.URL+`/me/friends?access_token=test-token&after=b2"}}`)

				return
			}

			_, _ = io.WriteString(writer, `{"data":[{"id":"2","name":"Two"}],"paging":{"previous":"`+server.URL+`/me/friends?access_token=test-token&before=b1"}}`)
		default:
			writer.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client, err := fbclient.New(context.Background(), &graph.Config{
		AccessToken: "test-token",
		GraphURL:    server.URL + "/",
	})
	require.NoError(t, err)

	user, err := client.Users().Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Test User", user.Name)

	first, err := client.Connections().Friends(context.Background(), "me", nil)
	require.NoError(t, err)
	require.Len(t, first.Data, 1)

	second, err := fbclient.Next(context.Background(), client, first)
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.Equal(t, "Two", second.Data[0].Name)

	last, err := fbclient.Next(context.Background(), client, second)
	require.NoError(t, err)
	assert.Nil(t, last)

	all, err := fbclient.CollectAll(context.Background(), client, first, 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestNewWithTransport(t *testing.T) {
	t.Parallel()

	transport := &stubTransport{body: `{"id":"4","name":"Mark"}`}

	client, err := fbclient.NewWithTransport(context.Background(), &graph.Config{AccessToken: "tok"}, transport)
	require.NoError(t, err)
	assert.Same(t, transport, client.Transport())

	user, err := client.Users().Get(context.Background(), "4")
	require.NoError(t, err)
	assert.Equal(t, "Mark", user.Name)
	assert.Equal(t, "https://graph.facebook.com/4", transport.url)

	previous, err := fbclient.Previous(context.Background(), client, &graph.Friends{})
	require.NoError(t, err)
	assert.Nil(t, previous)
}

type stubTransport struct {
	body string
	url  string
}

func (s *stubTransport) Get(_ context.Context, url string, _ graph.Params) (string, error) {
	s.url = url

	return s.body, nil
}

func (s *stubTransport) Post(_ context.Context, url string, _ graph.Params) (string, error) {
	s.url = url

	return s.body, nil
}

func (s *stubTransport) Delete(_ context.Context, url string, _ graph.Params) (string, error) {
	s.url = url

	return s.body, nil
}
