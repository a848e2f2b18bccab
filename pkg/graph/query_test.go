package graph_test

import (
	"testing"

	"github.com/fivetwenty-io/fbgraph/pkg/graph"
	"github.com/stretchr/testify/assert"
)

//nolint:funlen
func TestBuildQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		columns  []string
		criteria graph.ColumnCriteria
		source   graph.Source
		want     string
	}{
		{
			name:     "single equality",
			columns:  []string{"uid", "name"},
			criteria: graph.UserCriteria{UID: "4"}.Criteria(),
			source:   graph.SourceUser,
			want:     "SELECT uid, name FROM user WHERE uid = 4",
		},
		{
			name:     "no predicates",
			columns:  []string{"uid"},
			criteria: graph.ColumnCriteria{},
			source:   graph.SourceUser,
			want:     "SELECT uid FROM user",
		},
		{
			name:     "limit without predicates",
			columns:  []string{"page_id"},
			criteria: graph.PageCriteria{Limit: graph.IntPtr(5), Offset: graph.IntPtr(10)}.Criteria(),
			source:   graph.SourcePage,
			want:     "SELECT page_id FROM page LIMIT 5 OFFSET 10",
		},
		{
			name:    "equality then range then limit",
			columns: []string{"post_id", "message"},
			criteria: graph.StreamCriteria{
				ActorID:      "123",
				CreatedAfter: int64Ptr(1300000000),
				Limit:        graph.IntPtr(10),
			}.Criteria(),
			source: graph.Source{Table: "stream"},
			want:   "SELECT post_id, message FROM stream WHERE actor_id = '123' AND created_time > 1300000000 LIMIT 10",
		},
		{
			name:     "scoped source",
			columns:  []string{"target_id"},
			criteria: graph.ConnectionCriteria{TargetType: "user"}.Criteria(),
			source:   graph.SourceConnection,
			want:     "SELECT target_id FROM connection WHERE source_id = me() AND target_type = 'user'",
		},
		{
			name:     "in list",
			columns:  []string{"uid"},
			criteria: graph.UserCriteria{UIDs: []string{"1", "2", "3"}}.Criteria(),
			source:   graph.SourceUser,
			want:     "SELECT uid FROM user WHERE uid IN (1, 2, 3)",
		},
		{
			name:     "duplicate columns kept",
			columns:  []string{"name", "name"},
			criteria: graph.UserCriteria{UID: "me()"}.Criteria(),
			source:   graph.SourceUser,
			want:     "SELECT name, name FROM user WHERE uid = me()",
		},
		{
			name:    "newsfeed",
			columns: []string{"post_id"},
			criteria: graph.StreamCriteria{
				DefaultXID: true,
				ViewerID:   "4",
			}.Criteria(),
			source: graph.SourceNewsFeed,
			want: "SELECT post_id FROM stream WHERE filter_key IN (SELECT filter_key FROM stream_filter " +
				"WHERE uid = me() AND type = 'newsfeed') AND xid = 'default' AND viewer_id = 4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, graph.BuildQuery(tt.columns, tt.criteria, tt.source))
		})
	}
}

func TestBuildQuery_VerbatimValues(t *testing.T) {
	t.Parallel()

	criteria := graph.UserCriteria{Name: "O'Brien"}.Criteria()
	assert.Equal(t, "SELECT uid FROM user WHERE name = 'O'Brien'",
		graph.BuildQuery([]string{"uid"}, criteria, graph.SourceUser))

	escaped := graph.UserCriteria{Name: graph.EscapeQueryValue("O'Brien")}.Criteria()
	assert.Equal(t, `SELECT uid FROM user WHERE name = 'O\'Brien'`,
		graph.BuildQuery([]string{"uid"}, escaped, graph.SourceUser))
}

func TestUserCriteria_Order(t *testing.T) {
	t.Parallel()

	appUser := true
	criteria := graph.UserCriteria{
		ProfileUpdatedBefore: int64Ptr(20),
		IsAppUser:            &appUser,
		Username:             "zuck",
		UID:                  "4",
		ProfileUpdatedAfter:  int64Ptr(10),
	}.Criteria()

	assert.Equal(t, []string{
		"uid = 4",
		"username = 'zuck'",
		"is_app_user = 1",
		"profile_update_time > 10",
		"profile_update_time < 20",
	}, criteria.Clauses())
}

func TestStreamCriteria_Quoting(t *testing.T) {
	t.Parallel()

	criteria := graph.StreamCriteria{
		XID:       "comments_box",
		AppID:     "2309869772",
		FilterKey: "nf",
		PostID:    "1_2",
		SourceID:  "4",
		TargetID:  "5",
	}.Criteria()

	assert.Equal(t, []string{
		"xid = 'comments_box'",
		"app_id = 2309869772",
		"filter_key = 'nf'",
		"post_id = '1_2'",
		"source_id = 4",
		"target_id = '5'",
	}, criteria.Clauses())
}

func TestStreamCriteria_XID(t *testing.T) {
	t.Parallel()

	query := graph.BuildQuery([]string{"post_id"}, graph.StreamCriteria{XID: "comments_box"}.Criteria(), graph.Source{Table: "stream"})
	assert.Equal(t, "SELECT post_id FROM stream WHERE xid = 'comments_box'", query)

	query = graph.BuildQuery([]string{"post_id"}, graph.StreamCriteria{DefaultXID: true, XID: "ignored"}.Criteria(), graph.Source{Table: "stream"})
	assert.Equal(t, "SELECT post_id FROM stream WHERE xid = 'default'", query)
}

func TestColumnCriteria_IsEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, graph.ColumnCriteria{}.IsEmpty())
	assert.False(t, graph.ColumnCriteria{Limit: graph.IntPtr(1)}.IsEmpty())
	assert.False(t, graph.PageCriteria{Type: "ARTIST"}.Criteria().IsEmpty())
}

func TestColumnNames(t *testing.T) {
	t.Parallel()

	names := graph.ColumnNames([]graph.UserColumn{graph.UserColumnUID, graph.UserColumnName})
	assert.Equal(t, []string{"uid", "name"}, names)
	assert.Len(t, graph.AllUserColumns(), 36)
	assert.Len(t, graph.AllPageColumns(), 20)
	assert.Len(t, graph.AllConnectionColumns(), 5)
	assert.Equal(t, graph.StreamColumnPostID, graph.DefaultStreamColumns()[0])
}

func int64Ptr(v int64) *int64 {
	return &v
}
