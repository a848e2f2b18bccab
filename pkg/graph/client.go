package graph

import (
	"context"
	"time"
)

// ConnectionType names a relation of a graph object.
type ConnectionType string

// Connection types.
const (
	ConnectionFeed       ConnectionType = "feed"
	ConnectionHome       ConnectionType = "home"
	ConnectionPosts      ConnectionType = "posts"
	ConnectionTagged     ConnectionType = "tagged"
	ConnectionStatuses   ConnectionType = "statuses"
	ConnectionLinks      ConnectionType = "links"
	ConnectionNotes      ConnectionType = "notes"
	ConnectionPhotos     ConnectionType = "photos"
	ConnectionAlbums     ConnectionType = "albums"
	ConnectionEvents     ConnectionType = "events"
	ConnectionGroups     ConnectionType = "groups"
	ConnectionFriends    ConnectionType = "friends"
	ConnectionLikes      ConnectionType = "likes"
	ConnectionComments   ConnectionType = "comments"
	ConnectionMovies     ConnectionType = "movies"
	ConnectionMusic      ConnectionType = "music"
	ConnectionBooks      ConnectionType = "books"
	ConnectionTelevision ConnectionType = "television"
	ConnectionActivities ConnectionType = "activities"
	ConnectionInterests  ConnectionType = "interests"
	ConnectionCheckins   ConnectionType = "checkins"
	ConnectionAttending  ConnectionType = "attending"
	ConnectionMaybe      ConnectionType = "maybe"
	ConnectionDeclined   ConnectionType = "declined"
	ConnectionNoReply    ConnectionType = "noreply"
	ConnectionInvited    ConnectionType = "invited"
)

// UsersClient reads user objects.
type UsersClient interface {
	Get(ctx context.Context, id string) (*User, error)
	Me(ctx context.Context) (*User, error)
	// GetMany returns one slot per id, in the order given; ids the service
	// did not return leave a nil slot.
	GetMany(ctx context.Context, ids []string) ([]*User, error)
}

// PagesClient reads page objects.
type PagesClient interface {
	Get(ctx context.Context, id string) (*Page, error)
	GetMany(ctx context.Context, ids []string) ([]*Page, error)
}

// PostsClient reads post objects.
type PostsClient interface {
	Get(ctx context.Context, id string) (*Post, error)
}

// ConnectionsClient traverses relations of graph objects.
type ConnectionsClient interface {
	// Get decodes the connection of id named by connection into target,
	// which is typically a *Connection[T]. The paging of target is
	// materialized before Get returns.
	Get(ctx context.Context, id string, connection ConnectionType, target any, opts *ConnectionOptions) error
	Comments(ctx context.Context, id string, opts *ConnectionOptions) (*Comments, error)
	Likes(ctx context.Context, id string, opts *ConnectionOptions) (*Likes, error)
	Feed(ctx context.Context, id string, opts *ConnectionOptions) (*Feed, error)
	Friends(ctx context.Context, id string, opts *ConnectionOptions) (*Friends, error)
}

// FQLClient runs FQL queries.
type FQLClient interface {
	Users(ctx context.Context, columns []UserColumn, criteria UserCriteria) ([]FqlUser, error)
	Pages(ctx context.Context, columns []PageColumn, criteria PageCriteria) ([]FqlPage, error)
	// NewsFeed reads the viewer's news feed. Nil or empty columns select
	// DefaultStreamColumns; nil criteria apply no extra filter.
	NewsFeed(ctx context.Context, columns []StreamColumn, criteria *StreamCriteria) ([]FqlPost, error)
	Connections(ctx context.Context, columns []ConnectionColumn, criteria ConnectionCriteria) ([]FqlConnection, error)
	// Query runs a raw FQL statement and decodes the result into target.
	Query(ctx context.Context, fql string, target any) error
}

// PublishClient performs write operations. An empty profileID means the
// current user.
//
// Like, Unlike, Delete and RSVP report the body through ParseBool: a plain
// "true" or a {"success":true} object, which newer service versions send
// instead, is true. Any other body is false.
type PublishClient interface {
	WallPost(ctx context.Context, post WallPost, profileID string) (*CommonReturnObject, error)
	ShareLink(ctx context.Context, share LinkShare, profileID string) (*CommonReturnObject, error)
	Comment(ctx context.Context, objectID, message string) (*CommonReturnObject, error)
	Like(ctx context.Context, objectID string) (bool, error)
	Unlike(ctx context.Context, objectID string) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	CreateNote(ctx context.Context, note Note, profileID string) (*CommonReturnObject, error)
	CreateEvent(ctx context.Context, event Event, profileID string) (*CommonReturnObject, error)
	RSVP(ctx context.Context, eventID string, status RSVPStatus) (bool, error)
	CreateAlbum(ctx context.Context, album Album, profileID string) (*CommonReturnObject, error)
}

// ResourceClients provides access to the read clients.
type ResourceClients interface {
	Users() UsersClient
	Pages() PagesClient
	Posts() PostsClient
	Connections() ConnectionsClient
	FQL() FQLClient
}

// Client is the facade over one access token and one transport.
type Client interface {
	ResourceClients
	Publish() PublishClient
	// Get fetches an arbitrary object path, such as "me/photos" or "" for
	// a multi-id lookup, and decodes the body into target. Paging options
	// and extra parameters precede the access token.
	Get(ctx context.Context, path string, target any, opts *ConnectionOptions, extra ...Param) error
	AccessToken() AccessToken
	Transport() Transport
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a graph.Client.
//
// # Transport selection
//
// Transport, when set, is used as is and every transport option below is
// ignored. Otherwise TransportType picks a built-in backend ("standard" when
// empty). Retries only happen with the "retryable" backend and only when
// RetryMax is positive.
type Config struct {
	// AccessToken: bearer token attached to every request. Required.
	AccessToken string
	// TokenExpiresAt: optional expiry recorded on the AccessToken.
	TokenExpiresAt time.Time

	// GraphURL: base URL of the graph API. Defaults to https://graph.facebook.com.
	GraphURL string
	// FQLURL: full URL of the FQL endpoint.
	FQLURL string

	// Transport: a caller-supplied transport; overrides TransportType.
	Transport Transport
	// TransportType: standard, retryable or nats.
	TransportType TransportType
	// HTTPTimeout: overall timeout of one HTTP exchange, zero for the default.
	HTTPTimeout time.Duration
	// RetryMax: retries of the retryable backend. Zero disables retrying.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries.
	RetryWaitMax time.Duration
	// RateLimit: requests per second allowed by the HTTP backends, zero for unlimited.
	RateLimit float64
	// RateBurst: burst size of the rate limiter.
	RateBurst int
	// NATS: configuration of the nats backend.
	NATS *NATSConfig

	// Debug: enables request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger.
	Logger Logger
	// UserAgent: overrides the default User-Agent header.
	UserAgent string
}
