package constants

import "errors"

// Configuration errors.
var (
	ErrNoAccessToken        = errors.New("no access token configured, use 'fbgraph login' or set FBGRAPH_ACCESS_TOKEN")
	ErrUnsupportedTransport = errors.New("unsupported transport type")
	ErrNATSConfigRequired   = errors.New("nats transport requires a NATS configuration with URL and subject")
	ErrUnsupportedFormat    = errors.New("unsupported output format")
	ErrUnknownConfigKey     = errors.New("unknown configuration key")
	ErrInvalidConfigValue   = errors.New("invalid configuration value")
	ErrRelayNeedsHTTP       = errors.New("relay must forward over an HTTP transport, not nats")
)

// Validation errors.
var (
	ErrInvalidRSVP       = errors.New("invalid value for --status, use attending, maybe or declined")
	ErrUnknownConnection = errors.New("unknown connection type")
	ErrEmptyTokenInput   = errors.New("access token cannot be empty")
	ErrInvalidExpiresIn  = errors.New("invalid value for --expires-in")
	ErrInvalidParam      = errors.New("invalid value for --param, use name=value")
)

// Relay errors.
var (
	ErrEmptyRelayReply = errors.New("empty reply from relay")
	ErrRelayFailed     = errors.New("relay failed")

	ErrRelayURLNotAllowed = errors.New("url not allowed by relay")
)
