package graph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// TimeLayout is the timestamp format used by the graph endpoints.
const TimeLayout = "2006-01-02T15:04:05-0700"

// ParseTime parses a graph timestamp such as "2010-08-02T21:27:44+0000".
func ParseTime(value string) (time.Time, error) {
	t, err := time.Parse(TimeLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing graph time %q: %w", value, err)
	}

	return t, nil
}

// ID is an object identifier. The query endpoint emits ids as JSON numbers
// while the graph endpoints emit strings; both decode into an ID.
type ID string

// UnmarshalJSON accepts a JSON string, number or null.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string

		err := json.Unmarshal(data, &s)
		if err != nil {
			return fmt.Errorf("decoding id: %w", err)
		}

		*id = ID(s)

		return nil
	}

	var n json.Number

	err := json.Unmarshal(data, &n)
	if err != nil {
		return fmt.Errorf("decoding id: %w", err)
	}

	*id = ID(n.String())

	return nil
}

// String returns the id as a string.
func (id ID) String() string {
	return string(id)
}

// Int64 returns the numeric form of the id.
func (id ID) Int64() (int64, error) {
	n, err := strconv.ParseInt(string(id), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("id %q is not numeric: %w", string(id), err)
	}

	return n, nil
}

// NamedObject is the {id, name} reference embedded in many entities.
type NamedObject struct {
	ID   string `json:"id"             yaml:"id"`
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}

// Location is a physical address attached to a page or place.
type Location struct {
	Street    string  `json:"street,omitempty"    yaml:"street,omitempty"`
	City      string  `json:"city,omitempty"      yaml:"city,omitempty"`
	State     string  `json:"state,omitempty"     yaml:"state,omitempty"`
	Country   string  `json:"country,omitempty"   yaml:"country,omitempty"`
	Zip       string  `json:"zip,omitempty"       yaml:"zip,omitempty"`
	Latitude  float64 `json:"latitude,omitempty"  yaml:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty" yaml:"longitude,omitempty"`
}

// Work is one entry of a user's work history.
type Work struct {
	Employer  NamedObject  `json:"employer"             yaml:"employer"`
	Location  *NamedObject `json:"location,omitempty"   yaml:"location,omitempty"`
	Position  *NamedObject `json:"position,omitempty"   yaml:"position,omitempty"`
	StartDate string       `json:"start_date,omitempty" yaml:"start_date,omitempty"`
	EndDate   string       `json:"end_date,omitempty"   yaml:"end_date,omitempty"`
}

// Education is one entry of a user's education history.
type Education struct {
	School        NamedObject   `json:"school"                  yaml:"school"`
	Year          *NamedObject  `json:"year,omitempty"          yaml:"year,omitempty"`
	Type          string        `json:"type,omitempty"          yaml:"type,omitempty"`
	Concentration []NamedObject `json:"concentration,omitempty" yaml:"concentration,omitempty"`
}

// User is a person's profile.
type User struct {
	ID                 string       `json:"id"                            yaml:"id"`
	Name               string       `json:"name,omitempty"                yaml:"name,omitempty"`
	FirstName          string       `json:"first_name,omitempty"          yaml:"first_name,omitempty"`
	MiddleName         string       `json:"middle_name,omitempty"         yaml:"middle_name,omitempty"`
	LastName           string       `json:"last_name,omitempty"           yaml:"last_name,omitempty"`
	Link               string       `json:"link,omitempty"                yaml:"link,omitempty"`
	Username           string       `json:"username,omitempty"            yaml:"username,omitempty"`
	Birthday           string       `json:"birthday,omitempty"            yaml:"birthday,omitempty"`
	Gender             string       `json:"gender,omitempty"              yaml:"gender,omitempty"`
	Email              string       `json:"email,omitempty"               yaml:"email,omitempty"`
	Locale             string       `json:"locale,omitempty"              yaml:"locale,omitempty"`
	Timezone           *float64     `json:"timezone,omitempty"            yaml:"timezone,omitempty"`
	Verified           *bool        `json:"verified,omitempty"            yaml:"verified,omitempty"`
	UpdatedTime        string       `json:"updated_time,omitempty"        yaml:"updated_time,omitempty"`
	Bio                string       `json:"bio,omitempty"                 yaml:"bio,omitempty"`
	About              string       `json:"about,omitempty"               yaml:"about,omitempty"`
	Website            string       `json:"website,omitempty"             yaml:"website,omitempty"`
	Hometown           *NamedObject `json:"hometown,omitempty"            yaml:"hometown,omitempty"`
	Location           *NamedObject `json:"location,omitempty"            yaml:"location,omitempty"`
	Work               []Work       `json:"work,omitempty"                yaml:"work,omitempty"`
	Education          []Education  `json:"education,omitempty"           yaml:"education,omitempty"`
	InterestedIn       []string     `json:"interested_in,omitempty"       yaml:"interested_in,omitempty"`
	RelationshipStatus string       `json:"relationship_status,omitempty" yaml:"relationship_status,omitempty"`
	Religion           string       `json:"religion,omitempty"            yaml:"religion,omitempty"`
	Political          string       `json:"political,omitempty"           yaml:"political,omitempty"`
	Quotes             string       `json:"quotes,omitempty"              yaml:"quotes,omitempty"`
	SignificantOther   *NamedObject `json:"significant_other,omitempty"   yaml:"significant_other,omitempty"`
	ThirdPartyID       string       `json:"third_party_id,omitempty"      yaml:"third_party_id,omitempty"`
}

// Page is a public page of a business, brand or public figure.
type Page struct {
	ID                string    `json:"id"                            yaml:"id"`
	Name              string    `json:"name,omitempty"                yaml:"name,omitempty"`
	Category          string    `json:"category,omitempty"            yaml:"category,omitempty"`
	Link              string    `json:"link,omitempty"                yaml:"link,omitempty"`
	Picture           string    `json:"picture,omitempty"             yaml:"picture,omitempty"`
	Likes             int64     `json:"likes,omitempty"               yaml:"likes,omitempty"`
	Website           string    `json:"website,omitempty"             yaml:"website,omitempty"`
	Username          string    `json:"username,omitempty"            yaml:"username,omitempty"`
	Founded           string    `json:"founded,omitempty"             yaml:"founded,omitempty"`
	CompanyOverview   string    `json:"company_overview,omitempty"    yaml:"company_overview,omitempty"`
	Mission           string    `json:"mission,omitempty"             yaml:"mission,omitempty"`
	Products          string    `json:"products,omitempty"            yaml:"products,omitempty"`
	About             string    `json:"about,omitempty"               yaml:"about,omitempty"`
	Description       string    `json:"description,omitempty"         yaml:"description,omitempty"`
	Checkins          int64     `json:"checkins,omitempty"            yaml:"checkins,omitempty"`
	TalkingAboutCount int64     `json:"talking_about_count,omitempty" yaml:"talking_about_count,omitempty"`
	Phone             string    `json:"phone,omitempty"               yaml:"phone,omitempty"`
	Location          *Location `json:"location,omitempty"            yaml:"location,omitempty"`
}

// Action is a link rendered beneath a post ("Comment", "Like").
type Action struct {
	Name string `json:"name" yaml:"name"`
	Link string `json:"link" yaml:"link"`
}

// Privacy describes who can see a post.
type Privacy struct {
	Value       string `json:"value,omitempty"       yaml:"value,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Friends     string `json:"friends,omitempty"     yaml:"friends,omitempty"`
	Networks    string `json:"networks,omitempty"    yaml:"networks,omitempty"`
	Allow       string `json:"allow,omitempty"       yaml:"allow,omitempty"`
	Deny        string `json:"deny,omitempty"        yaml:"deny,omitempty"`
}

// Post is an individual entry in a profile's feed.
type Post struct {
	ID          string                   `json:"id"                    yaml:"id"`
	From        *NamedObject             `json:"from,omitempty"        yaml:"from,omitempty"`
	To          *Connection[NamedObject] `json:"to,omitempty"          yaml:"to,omitempty"`
	Message     string                   `json:"message,omitempty"     yaml:"message,omitempty"`
	Picture     string                   `json:"picture,omitempty"     yaml:"picture,omitempty"`
	Link        string                   `json:"link,omitempty"        yaml:"link,omitempty"`
	Name        string                   `json:"name,omitempty"        yaml:"name,omitempty"`
	Caption     string                   `json:"caption,omitempty"     yaml:"caption,omitempty"`
	Description string                   `json:"description,omitempty" yaml:"description,omitempty"`
	Source      string                   `json:"source,omitempty"      yaml:"source,omitempty"`
	Icon        string                   `json:"icon,omitempty"        yaml:"icon,omitempty"`
	Attribution string                   `json:"attribution,omitempty" yaml:"attribution,omitempty"`
	Actions     []Action                 `json:"actions,omitempty"     yaml:"actions,omitempty"`
	Privacy     *Privacy                 `json:"privacy,omitempty"     yaml:"privacy,omitempty"`
	Likes       *Likes                   `json:"likes,omitempty"       yaml:"likes,omitempty"`
	Comments    *Comments                `json:"comments,omitempty"    yaml:"comments,omitempty"`
	Type        string                   `json:"type,omitempty"        yaml:"type,omitempty"`
	ObjectID    string                   `json:"object_id,omitempty"   yaml:"object_id,omitempty"`
	Application *NamedObject             `json:"application,omitempty" yaml:"application,omitempty"`
	CreatedTime string                   `json:"created_time,omitempty" yaml:"created_time,omitempty"`
	UpdatedTime string                   `json:"updated_time,omitempty" yaml:"updated_time,omitempty"`
}

// Comment is a single comment on a commentable object.
type Comment struct {
	ID          string       `json:"id"                     yaml:"id"`
	From        *NamedObject `json:"from,omitempty"         yaml:"from,omitempty"`
	Message     string       `json:"message,omitempty"      yaml:"message,omitempty"`
	CreatedTime string       `json:"created_time,omitempty" yaml:"created_time,omitempty"`
	Likes       int64        `json:"likes,omitempty"        yaml:"likes,omitempty"`
}

// Like is an entry of a likes connection.
type Like struct {
	ID          string `json:"id"                     yaml:"id"`
	Name        string `json:"name,omitempty"         yaml:"name,omitempty"`
	Category    string `json:"category,omitempty"     yaml:"category,omitempty"`
	CreatedTime string `json:"created_time,omitempty" yaml:"created_time,omitempty"`
}

// CommonReturnObject is the response of a create operation.
type CommonReturnObject struct {
	ID     string `json:"id"                yaml:"id"`
	PostID string `json:"post_id,omitempty" yaml:"post_id,omitempty"`
}
