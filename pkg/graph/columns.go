package graph

// UserColumn is a column of the user table.
type UserColumn string

// User table columns.
const (
	UserColumnUID                UserColumn = "uid"
	UserColumnName               UserColumn = "name"
	UserColumnFirstName          UserColumn = "first_name"
	UserColumnMiddleName         UserColumn = "middle_name"
	UserColumnLastName           UserColumn = "last_name"
	UserColumnUsername           UserColumn = "username"
	UserColumnSex                UserColumn = "sex"
	UserColumnLocale             UserColumn = "locale"
	UserColumnBirthday           UserColumn = "birthday"
	UserColumnBirthdayDate       UserColumn = "birthday_date"
	UserColumnPic                UserColumn = "pic"
	UserColumnPicSmall           UserColumn = "pic_small"
	UserColumnPicBig             UserColumn = "pic_big"
	UserColumnPicSquare          UserColumn = "pic_square"
	UserColumnProfileURL         UserColumn = "profile_url"
	UserColumnAboutMe            UserColumn = "about_me"
	UserColumnActivities         UserColumn = "activities"
	UserColumnInterests          UserColumn = "interests"
	UserColumnMusic              UserColumn = "music"
	UserColumnMovies             UserColumn = "movies"
	UserColumnTV                 UserColumn = "tv"
	UserColumnBooks              UserColumn = "books"
	UserColumnQuotes             UserColumn = "quotes"
	UserColumnReligion           UserColumn = "religion"
	UserColumnPolitical          UserColumn = "political"
	UserColumnRelationshipStatus UserColumn = "relationship_status"
	UserColumnSignificantOtherID UserColumn = "significant_other_id"
	UserColumnTimezone           UserColumn = "timezone"
	UserColumnWebsite            UserColumn = "website"
	UserColumnVerified           UserColumn = "verified"
	UserColumnIsAppUser          UserColumn = "is_app_user"
	UserColumnCurrentLocation    UserColumn = "current_location"
	UserColumnHometownLocation   UserColumn = "hometown_location"
	UserColumnEmail              UserColumn = "email"
	UserColumnProfileUpdateTime  UserColumn = "profile_update_time"
	UserColumnOnlinePresence     UserColumn = "online_presence"
)

// AllUserColumns returns every user column in table order.
func AllUserColumns() []UserColumn {
	return []UserColumn{
		UserColumnUID, UserColumnName, UserColumnFirstName, UserColumnMiddleName,
		UserColumnLastName, UserColumnUsername, UserColumnSex, UserColumnLocale,
		UserColumnBirthday, UserColumnBirthdayDate, UserColumnPic, UserColumnPicSmall,
		UserColumnPicBig, UserColumnPicSquare, UserColumnProfileURL, UserColumnAboutMe,
		UserColumnActivities, UserColumnInterests, UserColumnMusic, UserColumnMovies,
		UserColumnTV, UserColumnBooks, UserColumnQuotes, UserColumnReligion,
		UserColumnPolitical, UserColumnRelationshipStatus, UserColumnSignificantOtherID,
		UserColumnTimezone, UserColumnWebsite, UserColumnVerified, UserColumnIsAppUser,
		UserColumnCurrentLocation, UserColumnHometownLocation, UserColumnEmail,
		UserColumnProfileUpdateTime, UserColumnOnlinePresence,
	}
}

// PageColumn is a column of the page table.
type PageColumn string

// Page table columns.
const (
	PageColumnPageID          PageColumn = "page_id"
	PageColumnName            PageColumn = "name"
	PageColumnUsername        PageColumn = "username"
	PageColumnType            PageColumn = "type"
	PageColumnPageURL         PageColumn = "page_url"
	PageColumnPic             PageColumn = "pic"
	PageColumnPicSmall        PageColumn = "pic_small"
	PageColumnPicBig          PageColumn = "pic_big"
	PageColumnPicSquare       PageColumn = "pic_square"
	PageColumnPicLarge        PageColumn = "pic_large"
	PageColumnWebsite         PageColumn = "website"
	PageColumnFanCount        PageColumn = "fan_count"
	PageColumnFounded         PageColumn = "founded"
	PageColumnCompanyOverview PageColumn = "company_overview"
	PageColumnMission         PageColumn = "mission"
	PageColumnProducts        PageColumn = "products"
	PageColumnLocation        PageColumn = "location"
	PageColumnPhone           PageColumn = "phone"
	PageColumnDescription     PageColumn = "description"
	PageColumnGeneralInfo     PageColumn = "general_info"
)

// AllPageColumns returns every page column in table order.
func AllPageColumns() []PageColumn {
	return []PageColumn{
		PageColumnPageID, PageColumnName, PageColumnUsername, PageColumnType,
		PageColumnPageURL, PageColumnPic, PageColumnPicSmall, PageColumnPicBig,
		PageColumnPicSquare, PageColumnPicLarge, PageColumnWebsite, PageColumnFanCount,
		PageColumnFounded, PageColumnCompanyOverview, PageColumnMission,
		PageColumnProducts, PageColumnLocation, PageColumnPhone,
		PageColumnDescription, PageColumnGeneralInfo,
	}
}

// StreamColumn is a column of the stream table.
type StreamColumn string

// Stream table columns.
const (
	StreamColumnPostID      StreamColumn = "post_id"
	StreamColumnViewerID    StreamColumn = "viewer_id"
	StreamColumnAppID       StreamColumn = "app_id"
	StreamColumnSourceID    StreamColumn = "source_id"
	StreamColumnUpdatedTime StreamColumn = "updated_time"
	StreamColumnCreatedTime StreamColumn = "created_time"
	StreamColumnFilterKey   StreamColumn = "filter_key"
	StreamColumnAttribution StreamColumn = "attribution"
	StreamColumnActorID     StreamColumn = "actor_id"
	StreamColumnTargetID    StreamColumn = "target_id"
	StreamColumnMessage     StreamColumn = "message"
	StreamColumnAppData     StreamColumn = "app_data"
	StreamColumnActionLinks StreamColumn = "action_links"
	StreamColumnAttachment  StreamColumn = "attachment"
	StreamColumnComments    StreamColumn = "comments"
	StreamColumnLikes       StreamColumn = "likes"
	StreamColumnPrivacy     StreamColumn = "privacy"
	StreamColumnPermalink   StreamColumn = "permalink"
	StreamColumnXID         StreamColumn = "xid"
	StreamColumnTaggedIDs   StreamColumn = "tagged_ids"
	StreamColumnMessageTags StreamColumn = "message_tags"
	StreamColumnDescription StreamColumn = "description"
)

// DefaultStreamColumns is the column set used for the news feed when the
// caller selects none.
func DefaultStreamColumns() []StreamColumn {
	return []StreamColumn{
		StreamColumnPostID, StreamColumnActorID, StreamColumnTargetID,
		StreamColumnViewerID, StreamColumnSourceID, StreamColumnMessage,
		StreamColumnAttachment, StreamColumnUpdatedTime, StreamColumnCreatedTime,
		StreamColumnAttribution, StreamColumnComments, StreamColumnLikes,
		StreamColumnPermalink,
	}
}

// ConnectionColumn is a column of the connection table.
type ConnectionColumn string

// Connection table columns.
const (
	ConnectionColumnSourceID    ConnectionColumn = "source_id"
	ConnectionColumnTargetID    ConnectionColumn = "target_id"
	ConnectionColumnTargetType  ConnectionColumn = "target_type"
	ConnectionColumnIsFollowing ConnectionColumn = "is_following"
	ConnectionColumnIsDeleted   ConnectionColumn = "is_deleted"
)

// AllConnectionColumns returns every connection column in table order.
func AllConnectionColumns() []ConnectionColumn {
	return []ConnectionColumn{
		ConnectionColumnSourceID, ConnectionColumnTargetID, ConnectionColumnTargetType,
		ConnectionColumnIsFollowing, ConnectionColumnIsDeleted,
	}
}
