package graph_test

import (
	"errors"
	"testing"

	"github.com/fivetwenty-io/fbgraph/pkg/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_User(t *testing.T) {
	t.Parallel()

	body := `{"id":"4","name":"Mark","first_name":"Mark","unknown_field":42,"hometown":{"id":"1","name":"Dobbs Ferry"}}`

	var user graph.User

	err := graph.Decode(body, &user)
	require.NoError(t, err)
	assert.Equal(t, "4", user.ID)
	assert.Equal(t, "Mark", user.Name)
	assert.Equal(t, "Mark", user.FirstName)
	require.NotNil(t, user.Hometown)
	assert.Equal(t, "Dobbs Ferry", user.Hometown.Name)
	assert.Nil(t, user.Location)
}

//nolint:funlen
func TestDecode_EmptyObjectAsList(t *testing.T) {
	t.Parallel()

	t.Run("nested list field", func(t *testing.T) {
		t.Parallel()

		body := `[{"post_id":"1_2","comments":{"count":0,"can_post":true,"comment_list":{}},"likes":{"count":0,"sample":{},"friends":{}}}]`

		var posts []graph.FqlPost

		err := graph.Decode(body, &posts)
		require.NoError(t, err)
		require.Len(t, posts, 1)
		require.NotNil(t, posts[0].Comments)
		assert.Empty(t, posts[0].Comments.CommentList)
		assert.True(t, posts[0].Comments.CanPost)
		require.NotNil(t, posts[0].Likes)
		assert.Empty(t, posts[0].Likes.Sample)
	})

	t.Run("top level", func(t *testing.T) {
		t.Parallel()

		var users []graph.FqlUser

		err := graph.Decode(`{}`, &users)
		require.NoError(t, err)
		assert.NotNil(t, users)
		assert.Empty(t, users)
	})

	t.Run("strings are untouched", func(t *testing.T) {
		t.Parallel()

		var post graph.Post

		err := graph.Decode(`{"id":"1","message":"empty braces {} stay","actions":{}}`, &post)
		require.NoError(t, err)
		assert.Equal(t, "empty braces {} stay", post.Message)
		assert.Empty(t, post.Actions)
	})

	t.Run("non-empty object for a list fails", func(t *testing.T) {
		t.Parallel()

		var post graph.Post

		err := graph.Decode(`{"id":"1","actions":{"name":"x"}}`, &post)
		require.Error(t, err)
		assert.True(t, errors.Is(err, graph.ErrDecode))
	})

	t.Run("connection data", func(t *testing.T) {
		t.Parallel()

		var comments graph.Comments

		err := graph.Decode(`{"data":{},"count":0}`, &comments)
		require.NoError(t, err)
		assert.Empty(t, comments.Data)
		assert.Nil(t, comments.Paging)
	})
}

func TestDecode_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		kind graph.ErrorKind
	}{
		{name: "malformed", body: `{"id":`, kind: graph.KindDecode},
		{name: "type mismatch", body: `{"id":"1","verified":"yes"}`, kind: graph.KindDecode},
		{name: "trailing data", body: `{"id":"1"}{"id":"2"}`, kind: graph.KindDecode},
		{name: "graph error envelope", body: `{"error":{"message":"Invalid OAuth access token.","type":"OAuthException","code":190}}`, kind: graph.KindService},
		{name: "legacy error envelope", body: `{"error_code":601,"error_msg":"Parser error: unexpected end of query."}`, kind: graph.KindService},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var user graph.User

			err := graph.Decode(tt.body, &user)
			require.Error(t, err)
			assert.Equal(t, tt.kind, graph.KindOf(err))
		})
	}
}

func TestDecode_NilTarget(t *testing.T) {
	t.Parallel()

	var user *graph.User

	err := graph.Decode(`{"id":"1"}`, user)
	require.Error(t, err)
	assert.ErrorIs(t, err, graph.ErrNilTarget)
	assert.ErrorIs(t, err, graph.ErrDecode)
}

func TestDecodeOrdered(t *testing.T) {
	t.Parallel()

	body := `{"b":{"id":"b","name":"Bee"},"a":{"id":"a","name":"Ay"}}`

	users, err := graph.DecodeOrdered[graph.User](body, []string{"a", "missing", "b"})
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "Ay", users[0].Name)
	assert.Nil(t, users[1])
	assert.Equal(t, "Bee", users[2].Name)

	keyed, err := graph.DecodeKeyed[graph.User](body)
	require.NoError(t, err)
	assert.Len(t, keyed, 2)

	empty, err := graph.DecodeOrdered[graph.User](`null`, []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, []*graph.User{nil, nil}, empty)
}

func TestParseBool(t *testing.T) {
	t.Parallel()

	tests := []struct {
		body string
		want bool
	}{
		{"true", true},
		{" TRUE\n", true},
		{`{"success":true}`, true},
		{"false", false},
		{"", false},
		{"1", false},
		{`{"success":false}`, false},
		{`{"error":{"message":"x"}}`, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, graph.ParseBool(tt.body), "body %q", tt.body)
	}
}

func TestCheckServiceError(t *testing.T) {
	t.Parallel()

	err := graph.CheckServiceError(`{"error":{"message":"Unsupported get request.","type":"GraphMethodException","code":100,"error_subcode":33,"fbtrace_id":"AbC"}}`)
	require.Error(t, err)

	var serviceErr *graph.ServiceError
	require.ErrorAs(t, err, &serviceErr)
	assert.Equal(t, 100, serviceErr.Code)
	assert.Equal(t, 33, serviceErr.Subcode)
	assert.Equal(t, "GraphMethodException", serviceErr.Type)
	assert.Equal(t, "AbC", serviceErr.TraceID)
	assert.True(t, graph.IsNotFound(err))

	require.NoError(t, graph.CheckServiceError(`{"id":"1"}`))
	require.NoError(t, graph.CheckServiceError(`true`))
	require.NoError(t, graph.CheckServiceError(`{"error":"plain string"}`))
}
