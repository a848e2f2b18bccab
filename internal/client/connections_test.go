package client

import (
	"context"
	"testing"

	"github.com/fivetwenty-io/fbgraph/pkg/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestConnectionsClient_Friends(t *testing.T) {
	t.Parallel()

	service := newFakeService(t)
	next := service.server.URL + "/me/friends?access_token=test-token&limit=2&offset=2"
	service.on("GET", "/me/friends", `{"data":[{"id":"1","name":"One"},{"id":"2","name":"Two"}],"paging":{"next":"`+next+`"}}`)

	client := NewTestClient(t, service)
	ctx := context.Background()

	friends, err := client.Connections().Friends(ctx, "me", &graph.ConnectionOptions{Limit: graph.IntPtr(2)})
	require.NoError(t, err)
	require.Len(t, friends.Data, 2)
	assert.Equal(t, "limit=2&access_token=test-token", service.last(t).RawQuery)

	require.NotNil(t, friends.Paging)
	assert.True(t, friends.Paging.Materialized())
	assert.True(t, friends.Paging.HasNext())
	assert.False(t, friends.Paging.HasPrevious())
	require.NotNil(t, friends.Paging.Offset())
	assert.Equal(t, 2, *friends.Paging.Offset())

	service.on("GET", "/me/friends", `{"data":[{"id":"3","name":"Three"}],"paging":{"previous":"`+service.server.URL+`/me/friends?limit=2&offset=0"}}`)

	page2, err := graph.FetchNext(ctx, client.Transport(), friends)
	require.NoError(t, err)
	require.NotNil(t, page2)
	assert.Equal(t, "Three", page2.Data[0].Name)
	assert.Equal(t, "access_token=test-token&limit=2&offset=2", service.last(t).RawQuery)

	none, err := graph.FetchNext(ctx, client.Transport(), page2)
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestConnectionsClient_Typed(t *testing.T) {
	t.Parallel()

	service := newFakeService(t)
	service.on("GET", "/4_1/comments", `{"data":[{"id":"4_1_9","from":{"id":"7","name":"Ann"},"message":"nice","created_time":"2011-01-04T22:31:00+0000"}]}`)
	service.on("GET", "/4_1/likes", `{"data":{}}`)
	service.on("GET", "/4/feed", `{"data":[{"id":"4_1","message":"hi","comments":{"count":0,"paging":{"next":"http://x/4_1/comments?after=MQ"}}}],"paging":{"previous":"http://x/4/feed?since=1","next":"http://x/4/feed?until=2"}}`)

	client := NewTestClient(t, service)
	ctx := context.Background()

	comments, err := client.Connections().Comments(ctx, "4_1", nil)
	require.NoError(t, err)
	require.Len(t, comments.Data, 1)
	assert.Equal(t, "nice", comments.Data[0].Message)
	assert.Equal(t, "access_token=test-token", service.last(t).RawQuery)

	likes, err := client.Connections().Likes(ctx, "4_1", nil)
	require.NoError(t, err)
	assert.Empty(t, likes.Data)

	feed, err := client.Connections().Feed(ctx, "4", &graph.ConnectionOptions{Since: "1", Until: "2"})
	require.NoError(t, err)
	require.Len(t, feed.Data, 1)
	assert.Equal(t, "until=2&since=1&access_token=test-token", service.last(t).RawQuery)
	assert.Equal(t, "2", feed.Paging.NextCursor().Until)
	assert.Equal(t, "1", feed.Paging.PreviousCursor().Since)

	nested := feed.Data[0].Comments
	require.NotNil(t, nested)
	assert.True(t, nested.Paging.Materialized())
	assert.Equal(t, "MQ", nested.Paging.NextCursor().After)
}

func TestConnectionsClient_Get(t *testing.T) {
	t.Parallel()

	service := newFakeService(t)
	service.on("GET", "/4/music", `{"data":[{"id":"1","name":"Band","category":"Musician/band"}]}`)

	client := NewTestClient(t, service)

	var music graph.Likes

	err := client.Connections().Get(context.Background(), "4", graph.ConnectionMusic, &music, nil)
	require.NoError(t, err)
	require.Len(t, music.Data, 1)
	assert.Equal(t, "Musician/band", music.Data[0].Category)

	err = client.Connections().Get(context.Background(), "", graph.ConnectionMusic, &music, nil)
	require.ErrorIs(t, err, graph.ErrIDRequired)

	err = client.Connections().Get(context.Background(), "4", graph.ConnectionMusic, nil, nil)
	require.ErrorIs(t, err, graph.ErrNilTarget)
}

func TestConnectionsClient_EscapesIDs(t *testing.T) {
	t.Parallel()

	service := newFakeService(t)
	service.on("GET", "/a b/feed", `{"data":[]}`)

	_, err := NewTestClient(t, service).Connections().Feed(context.Background(), "a b", nil)
	require.NoError(t, err)
	assert.Equal(t, "/a b/feed", service.last(t).Path)
}
