package client

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/fivetwenty-io/fbgraph/internal/constants"
	"github.com/fivetwenty-io/fbgraph/pkg/graph"
)

// Client implements the graph.Client interface.
type Client struct {
	api    *api
	closer io.Closer

	// Resource clients
	users       *UsersClient
	pages       *PagesClient
	posts       *PostsClient
	connections *ConnectionsClient
	fql         *FQLClient
	publish     *PublishClient
}

var _ graph.Client = (*Client)(nil)

// New creates a new graph API client. The transport is config.Transport
// when set, logged through config.Logger, otherwise the backend named by
// config.TransportType.
func New(ctx context.Context, config *graph.Config) (*Client, error) {
	if config == nil {
		return nil, graph.ErrConfigRequired
	}

	if config.AccessToken == "" {
		return nil, graph.ErrAccessTokenRequired
	}

	if config.Transport != nil {
		return NewWithTransport(config, interceptTransport(config, config.Transport))
	}

	transport, err := NewTransport(config)
	if err != nil {
		return nil, err
	}

	client, err := NewWithTransport(config, transport)
	if err != nil {
		return nil, err
	}

	if closer, ok := transport.(io.Closer); ok {
		client.closer = closer
	}

	return client, nil
}

// NewWithTransport creates a new graph API client over a caller-supplied
// transport. Transport options of config are ignored.
func NewWithTransport(config *graph.Config, transport graph.Transport) (*Client, error) {
	if config == nil {
		return nil, graph.ErrConfigRequired
	}

	if config.AccessToken == "" {
		return nil, graph.ErrAccessTokenRequired
	}

	token := graph.NewAccessToken(config.AccessToken)
	if !config.TokenExpiresAt.IsZero() {
		token = token.WithExpiry(config.TokenExpiresAt)
	}

	graphURL := strings.TrimSuffix(config.GraphURL, "/")
	if graphURL == "" {
		graphURL = constants.DefaultGraphURL
	}

	fqlURL := config.FQLURL
	if fqlURL == "" {
		fqlURL = constants.DefaultFQLURL
	}

	client := &Client{
		api: &api{
			transport: transport,
			token:     token,
			graphURL:  graphURL,
			fqlURL:    fqlURL,
			logger:    config.Logger,
		},
	}

	client.initializeResourceClients()

	return client, nil
}

func (c *Client) initializeResourceClients() {
	c.users = NewUsersClient(c.api)
	c.pages = NewPagesClient(c.api)
	c.posts = NewPostsClient(c.api)
	c.connections = NewConnectionsClient(c.api)
	c.fql = NewFQLClient(c.api)
	c.publish = NewPublishClient(c.api)
}

// Users implements graph.Client.Users.
func (c *Client) Users() graph.UsersClient {
	return c.users
}

// Pages implements graph.Client.Pages.
func (c *Client) Pages() graph.PagesClient {
	return c.pages
}

// Posts implements graph.Client.Posts.
func (c *Client) Posts() graph.PostsClient {
	return c.posts
}

// Connections implements graph.Client.Connections.
func (c *Client) Connections() graph.ConnectionsClient {
	return c.connections
}

// FQL implements graph.Client.FQL.
func (c *Client) FQL() graph.FQLClient {
	return c.fql
}

// Publish implements graph.Client.Publish.
func (c *Client) Publish() graph.PublishClient {
	return c.publish
}

// Get implements graph.Client.Get. Each path segment is escaped on its own.
func (c *Client) Get(ctx context.Context, path string, target any, opts *graph.ConnectionOptions, extra ...graph.Param) error {
	if target == nil {
		return graph.ErrNilTarget
	}

	rawURL := c.api.graphURL + "/"

	segments := strings.FieldsFunc(path, func(r rune) bool { return r == '/' })
	if len(segments) > 0 {
		rawURL = c.api.objectURL(segments...)
	}

	params := opts.Params().With(extra...).With(c.api.authParams()...)

	what := strings.Join(segments, "/")
	if what == "" {
		what = "objects"
	}

	return c.api.get(ctx, rawURL, params, target, what)
}

// AccessToken implements graph.Client.AccessToken.
func (c *Client) AccessToken() graph.AccessToken {
	return c.api.token
}

// Transport implements graph.Client.Transport.
func (c *Client) Transport() graph.Transport {
	return c.api.transport
}

// Close releases a transport created by New, such as a NATS connection.
// Caller-supplied transports are left open.
func (c *Client) Close() error {
	if c.closer == nil {
		return nil
	}

	return c.closer.Close()
}

// api is the state shared by the resource clients: one transport, one
// token and the two service endpoints. It is never mutated after New.
type api struct {
	transport graph.Transport
	token     graph.AccessToken
	graphURL  string
	fqlURL    string
	logger    graph.Logger
}

// objectURL joins escaped path segments onto the graph base URL.
func (a *api) objectURL(segments ...string) string {
	var builder strings.Builder

	builder.WriteString(a.graphURL)

	for _, segment := range segments {
		builder.WriteByte('/')
		builder.WriteString(url.PathEscape(segment))
	}

	return builder.String()
}

// pathURL expands a write path template.
func (a *api) pathURL(template string, replacements ...string) string {
	escaped := make([]string, len(replacements))
	for i, value := range replacements {
		if i%2 == 1 {
			value = url.PathEscape(value)
		}

		escaped[i] = value
	}

	return a.graphURL + strings.NewReplacer(escaped...).Replace(template)
}

// authParams returns the access token followed by extra.
func (a *api) authParams(extra ...graph.Param) graph.Params {
	params := graph.NewParams(constants.ParamAccessToken, a.token.Token())

	return params.With(extra...)
}

// timeNow is replaced in tests.
var timeNow = time.Now

func (a *api) warnIfExpired() {
	if a.logger != nil && a.token.IsExpired(timeNow()) {
		expiresAt, _ := a.token.ExpiresAt()
		a.logger.Warn("Access token has expired", map[string]interface{}{
			"expires_at": expiresAt.String(),
		})
	}
}

// get fetches url and decodes the body into target, materializing paging.
func (a *api) get(ctx context.Context, rawURL string, params graph.Params, target any, what string) error {
	a.warnIfExpired()

	body, err := a.transport.Get(ctx, rawURL, params)
	if err != nil {
		return fmt.Errorf("getting %s: %w", what, graph.AsServiceError(err))
	}

	err = graph.Decode(body, target)
	if err != nil {
		return wrapParse(what, err)
	}

	graph.Materialize(target)

	return nil
}

// getText fetches url and returns the raw body.
func (a *api) getText(ctx context.Context, rawURL string, params graph.Params, what string) (string, error) {
	a.warnIfExpired()

	body, err := a.transport.Get(ctx, rawURL, params)
	if err != nil {
		return "", fmt.Errorf("getting %s: %w", what, graph.AsServiceError(err))
	}

	return body, nil
}

// create posts params and decodes the id of the created object.
func (a *api) create(ctx context.Context, rawURL string, params graph.Params, what string) (*graph.CommonReturnObject, error) {
	a.warnIfExpired()

	body, err := a.transport.Post(ctx, rawURL, params)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", what, graph.AsServiceError(err))
	}

	var created graph.CommonReturnObject

	err = graph.Decode(body, &created)
	if err != nil {
		return nil, wrapParse(what, err)
	}

	return &created, nil
}

// confirm sends a POST or DELETE whose body is a boolean.
func (a *api) confirm(ctx context.Context, method, rawURL string, params graph.Params, what string) (bool, error) {
	a.warnIfExpired()

	send := a.transport.Post
	if method == methodDelete {
		send = a.transport.Delete
	}

	body, err := send(ctx, rawURL, params)
	if err != nil {
		return false, fmt.Errorf("%s: %w", what, graph.AsServiceError(err))
	}

	err = graph.CheckServiceError(body)
	if err != nil {
		return false, fmt.Errorf("%s: %w", what, err)
	}

	return graph.ParseBool(body), nil
}

func wrapParse(what string, err error) error {
	return fmt.Errorf("parsing %s: %w", what, err)
}

const (
	methodPost   = "POST"
	methodDelete = "DELETE"
)
