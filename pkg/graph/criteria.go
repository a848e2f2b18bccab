package graph

// UserCriteria filters the user table. Predicates are emitted in field
// order: uid, uid IN, username, name, is_app_user, then the
// profile_update_time range.
//
// UID and UIDs are inserted unquoted so that me() and numeric ids work.
type UserCriteria struct {
	UID                  string
	UIDs                 []string
	Username             string
	Name                 string
	IsAppUser            *bool
	ProfileUpdatedAfter  *int64
	ProfileUpdatedBefore *int64
	Limit                *int
	Offset               *int
}

// Criteria implements CriteriaProvider.
func (c UserCriteria) Criteria() ColumnCriteria {
	criteria := ColumnCriteria{Limit: c.Limit, Offset: c.Offset}

	if c.UID != "" {
		criteria.Equals = append(criteria.Equals, EqRaw(string(UserColumnUID), c.UID))
	}

	if len(c.UIDs) > 0 {
		criteria.Equals = append(criteria.Equals, In(string(UserColumnUID), c.UIDs...))
	}

	if c.Username != "" {
		criteria.Equals = append(criteria.Equals, Eq(string(UserColumnUsername), c.Username))
	}

	if c.Name != "" {
		criteria.Equals = append(criteria.Equals, Eq(string(UserColumnName), c.Name))
	}

	if c.IsAppUser != nil {
		criteria.Equals = append(criteria.Equals, EqBool(string(UserColumnIsAppUser), *c.IsAppUser))
	}

	if c.ProfileUpdatedAfter != nil {
		criteria.Ranges = append(criteria.Ranges, GreaterThan(string(UserColumnProfileUpdateTime), *c.ProfileUpdatedAfter))
	}

	if c.ProfileUpdatedBefore != nil {
		criteria.Ranges = append(criteria.Ranges, LessThan(string(UserColumnProfileUpdateTime), *c.ProfileUpdatedBefore))
	}

	return criteria
}

// PageCriteria filters the page table. Predicates are emitted in field
// order: page_id, page_id IN, username, name, type.
type PageCriteria struct {
	PageID   string
	PageIDs  []string
	Username string
	Name     string
	Type     string
	Limit    *int
	Offset   *int
}

// Criteria implements CriteriaProvider.
func (c PageCriteria) Criteria() ColumnCriteria {
	criteria := ColumnCriteria{Limit: c.Limit, Offset: c.Offset}

	if c.PageID != "" {
		criteria.Equals = append(criteria.Equals, EqRaw(string(PageColumnPageID), c.PageID))
	}

	if len(c.PageIDs) > 0 {
		criteria.Equals = append(criteria.Equals, In(string(PageColumnPageID), c.PageIDs...))
	}

	if c.Username != "" {
		criteria.Equals = append(criteria.Equals, Eq(string(PageColumnUsername), c.Username))
	}

	if c.Name != "" {
		criteria.Equals = append(criteria.Equals, Eq(string(PageColumnName), c.Name))
	}

	if c.Type != "" {
		criteria.Equals = append(criteria.Equals, Eq(string(PageColumnType), c.Type))
	}

	return criteria
}

// StreamCriteria filters the stream table. Identity predicates are emitted
// in field order (xid, actor_id, app_id, attribution, filter_key, post_id,
// source_id, target_id, viewer_id), followed by the created_time and
// updated_time ranges.
type StreamCriteria struct {
	// DefaultXID selects xid = 'default' and takes precedence over XID.
	DefaultXID    bool
	XID           string
	ActorID       string
	AppID         string
	Attribution   string
	FilterKey     string
	PostID        string
	SourceID      string
	TargetID      string
	ViewerID      string
	CreatedAfter  *int64
	CreatedBefore *int64
	UpdatedAfter  *int64
	UpdatedBefore *int64
	Limit         *int
	Offset        *int
}

// Criteria implements CriteriaProvider.
func (c StreamCriteria) Criteria() ColumnCriteria {
	criteria := ColumnCriteria{Limit: c.Limit, Offset: c.Offset}

	switch {
	case c.DefaultXID:
		criteria.Equals = append(criteria.Equals, Eq(string(StreamColumnXID), "default"))
	case c.XID != "":
		criteria.Equals = append(criteria.Equals, Eq(string(StreamColumnXID), c.XID))
	}

	equals := []struct {
		column StreamColumn
		value  string
		quoted bool
	}{
		{StreamColumnActorID, c.ActorID, true},
		{StreamColumnAppID, c.AppID, false},
		{StreamColumnAttribution, c.Attribution, true},
		{StreamColumnFilterKey, c.FilterKey, true},
		{StreamColumnPostID, c.PostID, true},
		{StreamColumnSourceID, c.SourceID, false},
		{StreamColumnTargetID, c.TargetID, true},
		{StreamColumnViewerID, c.ViewerID, false},
	}

	for _, eq := range equals {
		if eq.value == "" {
			continue
		}

		predicate := EqRaw(string(eq.column), eq.value)
		predicate.Quoted = eq.quoted
		criteria.Equals = append(criteria.Equals, predicate)
	}

	if c.CreatedAfter != nil {
		criteria.Ranges = append(criteria.Ranges, GreaterThan(string(StreamColumnCreatedTime), *c.CreatedAfter))
	}

	if c.CreatedBefore != nil {
		criteria.Ranges = append(criteria.Ranges, LessThan(string(StreamColumnCreatedTime), *c.CreatedBefore))
	}

	if c.UpdatedAfter != nil {
		criteria.Ranges = append(criteria.Ranges, GreaterThan(string(StreamColumnUpdatedTime), *c.UpdatedAfter))
	}

	if c.UpdatedBefore != nil {
		criteria.Ranges = append(criteria.Ranges, LessThan(string(StreamColumnUpdatedTime), *c.UpdatedBefore))
	}

	return criteria
}

// ConnectionCriteria filters the connection table of the current user.
// Predicates are emitted in field order: target_type, target_id,
// is_following.
type ConnectionCriteria struct {
	TargetType  string
	TargetID    string
	IsFollowing *bool
	Limit       *int
	Offset      *int
}

// Criteria implements CriteriaProvider.
func (c ConnectionCriteria) Criteria() ColumnCriteria {
	criteria := ColumnCriteria{Limit: c.Limit, Offset: c.Offset}

	if c.TargetType != "" {
		criteria.Equals = append(criteria.Equals, Eq(string(ConnectionColumnTargetType), c.TargetType))
	}

	if c.TargetID != "" {
		criteria.Equals = append(criteria.Equals, EqRaw(string(ConnectionColumnTargetID), c.TargetID))
	}

	if c.IsFollowing != nil {
		criteria.Equals = append(criteria.Equals, EqBool(string(ConnectionColumnIsFollowing), *c.IsFollowing))
	}

	return criteria
}
