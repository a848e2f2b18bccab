package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// Service endpoints.
const (
	// DefaultGraphURL is the base URL of the graph API.
	DefaultGraphURL = "https://graph.facebook.com"

	// DefaultFQLURL is the legacy REST endpoint that runs FQL queries.
	DefaultFQLURL = "https://api.facebook.com/method/fql.query"

	// FQLFormatJSON asks the FQL endpoint for a JSON body.
	FQLFormatJSON = "JSON"

	// CurrentProfileID addresses the owner of the access token.
	CurrentProfileID = "me"
)

// Request parameter names.
const (
	ParamAccessToken = "access_token"
	ParamIDs         = "ids"
	ParamQuery       = "query"
	ParamFormat      = "format"
	ParamMessage     = "message"
	ParamPicture     = "picture"
	ParamLink        = "link"
	ParamName        = "name"
	ParamCaption     = "caption"
	ParamDescription = "description"
	ParamSource      = "source"
	ParamSubject     = "subject"
	ParamStartTime   = "start_time"
	ParamEndTime     = "end_time"
	ParamLocation    = "location"
	ParamPrivacy     = "privacy"
	ParamLimit       = "limit"
	ParamOffset      = "offset"
	ParamUntil       = "until"
	ParamSince       = "since"
	ParamBefore      = "before"
	ParamAfter       = "after"
)

// Write path templates, relative to the graph base URL. Placeholders are
// replaced with url-escaped ids.
const (
	PathProfileFeed   = "/PROFILE_ID/feed"
	PathProfileLinks  = "/PROFILE_ID/links"
	PathObjectComment = "/OBJECT_ID/comments"
	PathObjectLikes   = "/OBJECT_ID/likes"
	PathProfileNotes  = "/PROFILE_ID/notes"
	PathProfileEvents = "/PROFILE_ID/events"
	PathEventRSVP     = "/EVENT_ID/STATUS"
	PathProfileAlbums = "/PROFILE_ID/albums"

	PlaceholderProfileID = "PROFILE_ID"
	PlaceholderObjectID  = "OBJECT_ID"
	PlaceholderEventID   = "EVENT_ID"
	PlaceholderStatus    = "STATUS"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second

	// DefaultNATSTimeout bounds one relayed request when the context has no deadline.
	DefaultNATSTimeout = 30 * time.Second
)

// Retry defaults of the retryable backend.
const (
	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// HTTP status codes commonly used.
const (
	// HTTPStatusOK represents a successful HTTP response.
	HTTPStatusOK = 200

	// HTTPStatusMultipleChoices is the first status that is not a success.
	HTTPStatusMultipleChoices = 300

	// HTTPStatusBadRequest represents a client error.
	HTTPStatusBadRequest = 400

	// HTTPStatusInternalServerError represents server errors.
	HTTPStatusInternalServerError = 500
)

// Display limits used by the CLI.
const (
	// MaxMessageDisplay truncates post messages in table output.
	MaxMessageDisplay = 60

	// DefaultPageLimit is the page size the CLI requests for connections.
	DefaultPageLimit = 25
)

// Logging.
const (
	// MaskedValue replaces secrets in log fields.
	MaskedValue = "***"

	// MaxLoggedBody truncates bodies in debug logs.
	MaxLoggedBody = 512
)

// CLI configuration and output.
const (
	// ConfigDirName is the directory under the user's home that holds the CLI config.
	ConfigDirName = ".fbgraph"

	// ConfigFileName is the name of the CLI config file.
	ConfigFileName = "config.yml"

	// EnvPrefix prefixes environment variables read by the CLI.
	EnvPrefix = "FBGRAPH"

	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Relay defaults.
const (
	// DefaultRelaySubject is the NATS subject relays answer on.
	DefaultRelaySubject = "fbgraph.relay"

	// DefaultRelayQueue groups relays so each request is handled once.
	DefaultRelayQueue = "fbgraph-relay"
)
