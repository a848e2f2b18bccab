package graph

// FqlLocation is the location object returned by the user and page tables.
type FqlLocation struct {
	Street    string  `json:"street,omitempty"    yaml:"street,omitempty"`
	City      string  `json:"city,omitempty"      yaml:"city,omitempty"`
	State     string  `json:"state,omitempty"     yaml:"state,omitempty"`
	Country   string  `json:"country,omitempty"   yaml:"country,omitempty"`
	Zip       string  `json:"zip,omitempty"       yaml:"zip,omitempty"`
	ID        ID      `json:"id,omitempty"        yaml:"id,omitempty"`
	Name      string  `json:"name,omitempty"      yaml:"name,omitempty"`
	Latitude  float64 `json:"latitude,omitempty"  yaml:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty" yaml:"longitude,omitempty"`
}

// FqlUser is a row of the user table. Only the selected columns are set.
type FqlUser struct {
	UID                ID           `json:"uid"                           yaml:"uid"`
	Name               string       `json:"name,omitempty"                yaml:"name,omitempty"`
	FirstName          string       `json:"first_name,omitempty"          yaml:"first_name,omitempty"`
	MiddleName         string       `json:"middle_name,omitempty"         yaml:"middle_name,omitempty"`
	LastName           string       `json:"last_name,omitempty"           yaml:"last_name,omitempty"`
	Username           string       `json:"username,omitempty"            yaml:"username,omitempty"`
	Sex                string       `json:"sex,omitempty"                 yaml:"sex,omitempty"`
	Locale             string       `json:"locale,omitempty"              yaml:"locale,omitempty"`
	Birthday           string       `json:"birthday,omitempty"            yaml:"birthday,omitempty"`
	BirthdayDate       string       `json:"birthday_date,omitempty"       yaml:"birthday_date,omitempty"`
	Pic                string       `json:"pic,omitempty"                 yaml:"pic,omitempty"`
	PicSmall           string       `json:"pic_small,omitempty"           yaml:"pic_small,omitempty"`
	PicBig             string       `json:"pic_big,omitempty"             yaml:"pic_big,omitempty"`
	PicSquare          string       `json:"pic_square,omitempty"          yaml:"pic_square,omitempty"`
	ProfileURL         string       `json:"profile_url,omitempty"         yaml:"profile_url,omitempty"`
	AboutMe            string       `json:"about_me,omitempty"            yaml:"about_me,omitempty"`
	Activities         string       `json:"activities,omitempty"          yaml:"activities,omitempty"`
	Interests          string       `json:"interests,omitempty"           yaml:"interests,omitempty"`
	Music              string       `json:"music,omitempty"               yaml:"music,omitempty"`
	Movies             string       `json:"movies,omitempty"              yaml:"movies,omitempty"`
	TV                 string       `json:"tv,omitempty"                  yaml:"tv,omitempty"`
	Books              string       `json:"books,omitempty"               yaml:"books,omitempty"`
	Quotes             string       `json:"quotes,omitempty"              yaml:"quotes,omitempty"`
	Religion           string       `json:"religion,omitempty"            yaml:"religion,omitempty"`
	Political          string       `json:"political,omitempty"           yaml:"political,omitempty"`
	RelationshipStatus string       `json:"relationship_status,omitempty" yaml:"relationship_status,omitempty"`
	SignificantOtherID ID           `json:"significant_other_id,omitempty" yaml:"significant_other_id,omitempty"`
	Timezone           *float64     `json:"timezone,omitempty"            yaml:"timezone,omitempty"`
	Website            string       `json:"website,omitempty"             yaml:"website,omitempty"`
	Verified           bool         `json:"verified,omitempty"            yaml:"verified,omitempty"`
	IsAppUser          bool         `json:"is_app_user,omitempty"         yaml:"is_app_user,omitempty"`
	CurrentLocation    *FqlLocation `json:"current_location,omitempty"    yaml:"current_location,omitempty"`
	HometownLocation   *FqlLocation `json:"hometown_location,omitempty"   yaml:"hometown_location,omitempty"`
	Email              string       `json:"email,omitempty"               yaml:"email,omitempty"`
	ProfileUpdateTime  int64        `json:"profile_update_time,omitempty" yaml:"profile_update_time,omitempty"`
	OnlinePresence     string       `json:"online_presence,omitempty"     yaml:"online_presence,omitempty"`
}

// FqlPage is a row of the page table.
type FqlPage struct {
	PageID          ID           `json:"page_id"                    yaml:"page_id"`
	Name            string       `json:"name,omitempty"             yaml:"name,omitempty"`
	Username        string       `json:"username,omitempty"         yaml:"username,omitempty"`
	Type            string       `json:"type,omitempty"             yaml:"type,omitempty"`
	PageURL         string       `json:"page_url,omitempty"         yaml:"page_url,omitempty"`
	Pic             string       `json:"pic,omitempty"              yaml:"pic,omitempty"`
	PicSmall        string       `json:"pic_small,omitempty"        yaml:"pic_small,omitempty"`
	PicBig          string       `json:"pic_big,omitempty"          yaml:"pic_big,omitempty"`
	PicSquare       string       `json:"pic_square,omitempty"       yaml:"pic_square,omitempty"`
	PicLarge        string       `json:"pic_large,omitempty"        yaml:"pic_large,omitempty"`
	Website         string       `json:"website,omitempty"          yaml:"website,omitempty"`
	FanCount        int64        `json:"fan_count,omitempty"        yaml:"fan_count,omitempty"`
	Founded         string       `json:"founded,omitempty"          yaml:"founded,omitempty"`
	CompanyOverview string       `json:"company_overview,omitempty" yaml:"company_overview,omitempty"`
	Mission         string       `json:"mission,omitempty"          yaml:"mission,omitempty"`
	Products        string       `json:"products,omitempty"         yaml:"products,omitempty"`
	Location        *FqlLocation `json:"location,omitempty"         yaml:"location,omitempty"`
	Phone           string       `json:"phone,omitempty"            yaml:"phone,omitempty"`
	Description     string       `json:"description,omitempty"      yaml:"description,omitempty"`
	GeneralInfo     string       `json:"general_info,omitempty"     yaml:"general_info,omitempty"`
}

// FqlActionLink is a custom link shown below a stream post.
type FqlActionLink struct {
	Text string `json:"text" yaml:"text"`
	Href string `json:"href" yaml:"href"`
}

// FqlMedia is one media item of a stream attachment.
type FqlMedia struct {
	Type string `json:"type,omitempty" yaml:"type,omitempty"`
	Src  string `json:"src,omitempty"  yaml:"src,omitempty"`
	Href string `json:"href,omitempty" yaml:"href,omitempty"`
	Alt  string `json:"alt,omitempty"  yaml:"alt,omitempty"`
}

// FqlAttachment is the rich attachment of a stream post.
type FqlAttachment struct {
	Media        []FqlMedia `json:"media,omitempty"          yaml:"media,omitempty"`
	Name         string     `json:"name,omitempty"           yaml:"name,omitempty"`
	Href         string     `json:"href,omitempty"           yaml:"href,omitempty"`
	Caption      string     `json:"caption,omitempty"        yaml:"caption,omitempty"`
	Description  string     `json:"description,omitempty"    yaml:"description,omitempty"`
	Icon         string     `json:"icon,omitempty"           yaml:"icon,omitempty"`
	FbObjectType string     `json:"fb_object_type,omitempty" yaml:"fb_object_type,omitempty"`
	FbObjectID   ID         `json:"fb_object_id,omitempty"   yaml:"fb_object_id,omitempty"`
}

// FqlComment is an entry of FqlComments.CommentList.
type FqlComment struct {
	ID     string `json:"id,omitempty"     yaml:"id,omitempty"`
	FromID ID     `json:"fromid,omitempty" yaml:"fromid,omitempty"`
	Time   int64  `json:"time,omitempty"   yaml:"time,omitempty"`
	Text   string `json:"text,omitempty"   yaml:"text,omitempty"`
}

// FqlComments summarizes the comments of a stream post.
type FqlComments struct {
	CanRemove   bool         `json:"can_remove"             yaml:"can_remove"`
	CanPost     bool         `json:"can_post"               yaml:"can_post"`
	Count       int64        `json:"count"                  yaml:"count"`
	CommentList []FqlComment `json:"comment_list,omitempty" yaml:"comment_list,omitempty"`
}

// FqlLikes summarizes the likes of a stream post.
type FqlLikes struct {
	Href      string `json:"href,omitempty"    yaml:"href,omitempty"`
	Count     int64  `json:"count"             yaml:"count"`
	Sample    []ID   `json:"sample,omitempty"  yaml:"sample,omitempty"`
	Friends   []ID   `json:"friends,omitempty" yaml:"friends,omitempty"`
	UserLikes bool   `json:"user_likes"        yaml:"user_likes"`
	CanLike   bool   `json:"can_like"          yaml:"can_like"`
}

// FqlPrivacy is the privacy setting of a stream post.
type FqlPrivacy struct {
	Value       string `json:"value,omitempty"       yaml:"value,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// FqlPost is a row of the stream table.
type FqlPost struct {
	PostID      string          `json:"post_id"                yaml:"post_id"`
	ViewerID    ID              `json:"viewer_id,omitempty"    yaml:"viewer_id,omitempty"`
	AppID       ID              `json:"app_id,omitempty"       yaml:"app_id,omitempty"`
	SourceID    ID              `json:"source_id,omitempty"    yaml:"source_id,omitempty"`
	UpdatedTime int64           `json:"updated_time,omitempty" yaml:"updated_time,omitempty"`
	CreatedTime int64           `json:"created_time,omitempty" yaml:"created_time,omitempty"`
	FilterKey   string          `json:"filter_key,omitempty"   yaml:"filter_key,omitempty"`
	Attribution string          `json:"attribution,omitempty"  yaml:"attribution,omitempty"`
	ActorID     ID              `json:"actor_id,omitempty"     yaml:"actor_id,omitempty"`
	TargetID    ID              `json:"target_id,omitempty"    yaml:"target_id,omitempty"`
	Message     string          `json:"message,omitempty"      yaml:"message,omitempty"`
	ActionLinks []FqlActionLink `json:"action_links,omitempty" yaml:"action_links,omitempty"`
	Attachment  *FqlAttachment  `json:"attachment,omitempty"   yaml:"attachment,omitempty"`
	Comments    *FqlComments    `json:"comments,omitempty"     yaml:"comments,omitempty"`
	Likes       *FqlLikes       `json:"likes,omitempty"        yaml:"likes,omitempty"`
	Privacy     *FqlPrivacy     `json:"privacy,omitempty"      yaml:"privacy,omitempty"`
	Permalink   string          `json:"permalink,omitempty"    yaml:"permalink,omitempty"`
	XID         string          `json:"xid,omitempty"          yaml:"xid,omitempty"`
	TaggedIDs   []ID            `json:"tagged_ids,omitempty"   yaml:"tagged_ids,omitempty"`
	Description string          `json:"description,omitempty"  yaml:"description,omitempty"`
}

// FqlConnection is a row of the connection table.
type FqlConnection struct {
	SourceID    ID     `json:"source_id"              yaml:"source_id"`
	TargetID    ID     `json:"target_id"              yaml:"target_id"`
	TargetType  string `json:"target_type,omitempty"  yaml:"target_type,omitempty"`
	IsFollowing bool   `json:"is_following,omitempty" yaml:"is_following,omitempty"`
	IsDeleted   bool   `json:"is_deleted,omitempty"   yaml:"is_deleted,omitempty"`
}
