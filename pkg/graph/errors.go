package graph

import (
	"errors"
	"fmt"
)

// ErrorKind distinguishes the failure categories of a client call.
type ErrorKind int

const (
	// KindUnknown is returned by KindOf for errors outside the taxonomy.
	KindUnknown ErrorKind = iota
	// KindTransport is a network or HTTP-level failure.
	KindTransport
	// KindDecode is a response that does not match the requested shape.
	KindDecode
	// KindService is a well-formed error envelope returned by the service.
	KindService
)

// String implements fmt.Stringer.
func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindDecode:
		return "decode"
	case KindService:
		return "service"
	default:
		return "unknown"
	}
}

// Sentinels matching each kind through errors.Is.
var (
	ErrTransport = errors.New("graph: transport error")
	ErrDecode    = errors.New("graph: decode error")
	ErrService   = errors.New("graph: service error")
)

// Static errors for err113 compliance.
var (
	ErrAccessTokenRequired  = errors.New("access token is required")
	ErrIDRequired           = errors.New("object id is required")
	ErrIDsRequired          = errors.New("at least one id is required")
	ErrMessageRequired      = errors.New("message is required")
	ErrLinkRequired         = errors.New("link is required")
	ErrNameRequired         = errors.New("name is required")
	ErrColumnsRequired      = errors.New("at least one column is required")
	ErrQueryRequired        = errors.New("query is required")
	ErrInvalidRSVPStatus    = errors.New("invalid RSVP status")
	ErrNotAFormStruct       = errors.New("form parameters require a struct")
	ErrUnsupportedFormField = errors.New("unsupported form field type")
	ErrNilTarget            = errors.New("decode target must be a non-nil pointer")
	ErrConfigRequired       = errors.New("config is required")
)

// TransportError is a network, TLS or non-2xx failure.
type TransportError struct {
	StatusCode int
	Message    string
	Body       string
	Err        error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Message != "":
		return fmt.Sprintf("transport error: status %d: %s", e.StatusCode, e.Message)
	case e.StatusCode != 0:
		return fmt.Sprintf("transport error: status %d", e.StatusCode)
	case e.Err != nil:
		return "transport error: " + e.Err.Error()
	default:
		return "transport error: " + e.Message
	}
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is matches ErrTransport.
func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// Kind returns KindTransport.
func (e *TransportError) Kind() ErrorKind {
	return KindTransport
}

// DecodeError is a response body that could not be mapped onto the target.
type DecodeError struct {
	Body string
	Err  error
}

const decodeExcerptLen = 120

// Error implements the error interface.
func (e *DecodeError) Error() string {
	excerpt := e.Body
	if len(excerpt) > decodeExcerptLen {
		excerpt = excerpt[:decodeExcerptLen] + "..."
	}

	return fmt.Sprintf("decode error: %v (body: %q)", e.Err, excerpt)
}

// Unwrap returns the underlying parse error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is matches ErrDecode.
func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

// Kind returns KindDecode.
func (e *DecodeError) Kind() ErrorKind {
	return KindDecode
}

// Common service error codes.
const (
	ErrorCodeUnknown          = 1
	ErrorCodeServiceDown      = 2
	ErrorCodeTooManyCalls     = 4
	ErrorCodeParam            = 100
	ErrorCodePermission       = 200
	ErrorCodeOAuth            = 190
	ErrorCodeFQLParser        = 601
	ErrorCodeFQLUnknownColumn = 602
	ErrorCodeFQLUnknownTable  = 603
	ErrorCodeFQLNotIndexable  = 604
)

// ServiceError is an error envelope returned by the service in place of the
// expected payload.
type ServiceError struct {
	Code       int
	Subcode    int
	Type       string
	Message    string
	TraceID    string
	StatusCode int
	Err        error
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("%s: %s (code: %d)", e.Type, e.Message, e.Code)
	}

	return fmt.Sprintf("service error: %s (code: %d)", e.Message, e.Code)
}

// Unwrap returns the transport error the envelope arrived with, if any.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// Is matches ErrService.
func (e *ServiceError) Is(target error) bool {
	return target == ErrService
}

// Kind returns KindService.
func (e *ServiceError) Kind() ErrorKind {
	return KindService
}

// KindOf returns the category of err. A ServiceError that wraps a
// TransportError reports KindService.
func KindOf(err error) ErrorKind {
	serviceErr := &ServiceError{}
	if errors.As(err, &serviceErr) {
		return KindService
	}

	decodeErr := &DecodeError{}
	if errors.As(err, &decodeErr) {
		return KindDecode
	}

	transportErr := &TransportError{}
	if errors.As(err, &transportErr) {
		return KindTransport
	}

	return KindUnknown
}

// IsOAuthError checks if the error is an invalid or expired token error.
func IsOAuthError(err error) bool {
	serviceErr := &ServiceError{}
	if errors.As(err, &serviceErr) {
		return serviceErr.Type == "OAuthException" || serviceErr.Code == ErrorCodeOAuth
	}

	return false
}

// IsNotFound checks if the error is a 404 from the transport or a service
// error for an unknown object.
func IsNotFound(err error) bool {
	transportErr := &TransportError{}
	if errors.As(err, &transportErr) && transportErr.StatusCode == 404 {
		return true
	}

	serviceErr := &ServiceError{}
	if errors.As(err, &serviceErr) {
		return serviceErr.StatusCode == 404 || (serviceErr.Code == ErrorCodeParam && serviceErr.Subcode == 33)
	}

	return false
}

// AsServiceError upgrades a *TransportError whose body is a service error
// envelope to a *ServiceError carrying the HTTP status and wrapping the
// transport error. Any other error is returned unchanged.
func AsServiceError(err error) error {
	transportErr := &TransportError{}
	if !errors.As(err, &transportErr) || transportErr.Body == "" {
		return err
	}

	serviceErr := &ServiceError{}
	if !errors.As(CheckServiceError(transportErr.Body), &serviceErr) {
		return err
	}

	serviceErr.StatusCode = transportErr.StatusCode
	serviceErr.Err = transportErr

	return serviceErr
}
