package client

import (
	"context"
	"testing"

	"github.com/fivetwenty-io/fbgraph/pkg/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFQLClient_Users(t *testing.T) {
	t.Parallel()

	service := newFakeService(t)
	service.on("GET", "/method/fql.query", `[{"uid":4,"name":"Mark Zuckerberg","pic_square":"http://x/4.jpg","current_location":{}}]`)

	users, err := NewTestClient(t, service).FQL().Users(context.Background(),
		[]graph.UserColumn{graph.UserColumnUID, graph.UserColumnName, graph.UserColumnPicSquare},
		graph.UserCriteria{UID: "me()"},
	)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, graph.ID("4"), users[0].UID)
	assert.Equal(t, "Mark Zuckerberg", users[0].Name)

	request := service.last(t)
	assert.Equal(t,
		"access_token=test-token&query=SELECT+uid%2C+name%2C+pic_square+FROM+user+WHERE+uid+%3D+me%28%29&format=JSON",
		request.RawQuery)
}

func TestFQLClient_NewsFeed(t *testing.T) {
	t.Parallel()

	service := newFakeService(t)
	service.on("GET", "/method/fql.query", `[{"post_id":"4_1","actor_id":4,"message":"hi","comments":{"count":0,"comment_list":{}},"likes":{"count":2,"sample":[5,6]},"tagged_ids":{}}]`)

	posts, err := NewTestClient(t, service).FQL().NewsFeed(context.Background(), nil, &graph.StreamCriteria{Limit: graph.IntPtr(10)})
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, graph.ID("4"), posts[0].ActorID)
	assert.Empty(t, posts[0].Comments.CommentList)
	assert.Equal(t, []graph.ID{"5", "6"}, posts[0].Likes.Sample)

	query := service.last(t).query(t).Get("query")
	assert.Equal(t, "SELECT post_id, actor_id, target_id, viewer_id, source_id, message, attachment, "+
		"updated_time, created_time, attribution, comments, likes, permalink FROM stream "+
		"WHERE filter_key IN (SELECT filter_key FROM stream_filter WHERE uid = me() AND type = 'newsfeed') LIMIT 10", query)
}

func TestFQLClient_PagesAndConnections(t *testing.T) {
	t.Parallel()

	service := newFakeService(t)
	service.on("GET", "/method/fql.query", `{}`)

	client := NewTestClient(t, service)

	pages, err := client.FQL().Pages(context.Background(),
		[]graph.PageColumn{graph.PageColumnPageID, graph.PageColumnFanCount},
		graph.PageCriteria{PageIDs: []string{"1", "2"}},
	)
	require.NoError(t, err)
	assert.Empty(t, pages)
	assert.Equal(t, "SELECT page_id, fan_count FROM page WHERE page_id IN (1, 2)", service.last(t).query(t).Get("query"))

	connections, err := client.FQL().Connections(context.Background(),
		[]graph.ConnectionColumn{graph.ConnectionColumnTargetID},
		graph.ConnectionCriteria{TargetType: "user", Limit: graph.IntPtr(5), Offset: graph.IntPtr(5)},
	)
	require.NoError(t, err)
	assert.Empty(t, connections)
	assert.Equal(t, "SELECT target_id FROM connection WHERE source_id = me() AND target_type = 'user' LIMIT 5 OFFSET 5",
		service.last(t).query(t).Get("query"))
}

func TestFQLClient_Errors(t *testing.T) {
	t.Parallel()

	service := newFakeService(t)
	service.on("GET", "/method/fql.query", `{"error_code":602,"error_msg":"name is not a member of the connection table.","request_args":[]}`)

	client := NewTestClient(t, service)

	_, err := client.FQL().Connections(context.Background(),
		[]graph.ConnectionColumn{"name"}, graph.ConnectionCriteria{})
	require.Error(t, err)

	var serviceErr *graph.ServiceError
	require.ErrorAs(t, err, &serviceErr)
	assert.Equal(t, graph.ErrorCodeFQLUnknownColumn, serviceErr.Code)

	calls := service.count()

	_, err = client.FQL().Users(context.Background(), nil, graph.UserCriteria{})
	require.ErrorIs(t, err, graph.ErrColumnsRequired)

	err = client.FQL().Query(context.Background(), "  ", &[]graph.FqlUser{})
	require.ErrorIs(t, err, graph.ErrQueryRequired)

	assert.Equal(t, calls, service.count())
}

func TestFQLClient_Query(t *testing.T) {
	t.Parallel()

	service := newFakeService(t)
	service.on("GET", "/method/fql.query", `[{"uid2":"5"},{"uid2":"6"}]`)

	var rows []struct {
		UID2 graph.ID `json:"uid2"`
	}

	err := NewTestClient(t, service).FQL().Query(context.Background(), "SELECT uid2 FROM friend WHERE uid1 = me()", &rows)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, graph.ID("6"), rows[1].UID2)
}
