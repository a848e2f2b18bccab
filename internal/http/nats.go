package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fivetwenty-io/fbgraph/internal/constants"
	"github.com/fivetwenty-io/fbgraph/pkg/graph"
	"github.com/nats-io/nats.go"
)

// RelayParam is one ordered parameter of a relayed request.
type RelayParam struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// RelayRequest is the envelope published for each relayed call.
type RelayRequest struct {
	Method string       `json:"method"`
	URL    string       `json:"url"`
	Params []RelayParam `json:"params,omitempty"`
}

// RelayReply is the gateway's answer. Error is set when the gateway could
// not complete the HTTP exchange at all.
type RelayReply struct {
	Status int    `json:"status"`
	Body   string `json:"body"`
	Error  string `json:"error,omitempty"`
}

// Requester is the part of *nats.Conn used by NATSClient.
type Requester interface {
	RequestWithContext(ctx context.Context, subject string, data []byte) (*nats.Msg, error)
}

// NATSClient is a Transport that relays every call over NATS request/reply
// to a gateway subscribed on subject, typically a NATSRelay.
type NATSClient struct {
	requester Requester
	conn      *nats.Conn
	subject   string
	timeout   time.Duration
	chain     *InterceptorChain
}

var _ graph.Transport = (*NATSClient)(nil)

// NewNATSClient creates a relay transport over an existing requester.
func NewNATSClient(requester Requester, subject string, opts ...Option) *NATSClient {
	s := newSettings(opts)

	timeout := s.timeout
	if timeout == 0 {
		timeout = constants.DefaultNATSTimeout
	}

	return &NATSClient{
		requester: requester,
		subject:   subject,
		timeout:   timeout,
		chain:     s.chain(),
	}
}

// DialNATS connects to the server named by config and returns a relay
// transport that owns the connection.
func DialNATS(config *graph.NATSConfig, opts ...Option) (*NATSClient, error) {
	if config == nil || config.URL == "" || config.Subject == "" {
		return nil, constants.ErrNATSConfigRequired
	}

	natsOpts := []nats.Option{}
	if config.Name != "" {
		natsOpts = append(natsOpts, nats.Name(config.Name))
	}

	if config.Token != "" {
		natsOpts = append(natsOpts, nats.Token(config.Token))
	}

	conn, err := nats.Connect(config.URL, natsOpts...)
	if err != nil {
		return nil, fmt.Errorf("connecting to nats: %w", err)
	}

	if config.Timeout > 0 {
		opts = append(opts, WithTimeout(config.Timeout))
	}

	client := NewNATSClient(conn, config.Subject, opts...)
	client.conn = conn

	return client, nil
}

// Close drains the connection when the client owns one.
func (c *NATSClient) Close() error {
	if c.conn == nil {
		return nil
	}

	return c.conn.Drain()
}

// Get relays a GET request.
func (c *NATSClient) Get(ctx context.Context, url string, params graph.Params) (string, error) {
	return c.do(ctx, http.MethodGet, url, params)
}

// Post relays a POST request.
func (c *NATSClient) Post(ctx context.Context, url string, params graph.Params) (string, error) {
	return c.do(ctx, http.MethodPost, url, params)
}

// Delete relays a DELETE request.
func (c *NATSClient) Delete(ctx context.Context, url string, params graph.Params) (string, error) {
	return c.do(ctx, http.MethodDelete, url, params)
}

func (c *NATSClient) do(ctx context.Context, method, url string, params graph.Params) (string, error) {
	return c.chain.run(ctx, method, url, params, c.send)
}

func (c *NATSClient) send(ctx context.Context, method, url string, params graph.Params) (string, error) {
	envelope := RelayRequest{Method: method, URL: url}
	for _, param := range params {
		envelope.Params = append(envelope.Params, RelayParam{Name: param.Name, Value: param.Value})
	}

	data, err := json.Marshal(envelope)
	if err != nil {
		return "", networkError(fmt.Errorf("encoding relay request: %w", err))
	}

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	msg, err := c.requester.RequestWithContext(ctx, c.subject, data)
	if err != nil {
		return "", networkError(err)
	}

	if msg == nil || len(msg.Data) == 0 {
		return "", networkError(constants.ErrEmptyRelayReply)
	}

	var reply RelayReply
	if err := json.Unmarshal(msg.Data, &reply); err != nil {
		return "", networkError(fmt.Errorf("decoding relay reply: %w", err))
	}

	if reply.Error != "" {
		return "", &graph.TransportError{
			StatusCode: reply.Status,
			Message:    reply.Error,
			Body:       reply.Body,
			Err:        fmt.Errorf("%w: %s", constants.ErrRelayFailed, reply.Error),
		}
	}

	return classify(reply.Status, http.StatusText(reply.Status), reply.Body)
}

// NATSRelay is the gateway side of NATSClient: it answers relay requests by
// performing them through an HTTP transport. Only URLs under one of its
// allowed base URLs are forwarded.
type NATSRelay struct {
	transport graph.Transport
	logger    graph.Logger
	allowed   []*url.URL
}

// NewNATSRelay creates a gateway that forwards to transport. Requests must
// target a URL under one of allowed; with no allowed bases the default graph
// and FQL endpoints apply. Bases without a scheme are taken as https.
func NewNATSRelay(transport graph.Transport, logger graph.Logger, allowed ...string) *NATSRelay {
	if len(allowed) == 0 {
		allowed = []string{constants.DefaultGraphURL, constants.DefaultFQLURL}
	}

	relay := &NATSRelay{transport: transport, logger: logger}

	for _, base := range allowed {
		base = strings.TrimSuffix(strings.TrimSpace(base), "/")
		if base == "" {
			continue
		}

		if !strings.Contains(base, "://") {
			base = "https://" + base
		}

		parsed, err := url.Parse(base)
		if err != nil || parsed.Host == "" {
			continue
		}

		relay.allowed = append(relay.allowed, parsed)
	}

	return relay
}

// permits reports whether rawURL has the scheme and host of an allowed base
// and a path at or below the base path.
func (r *NATSRelay) permits(rawURL string) bool {
	target, err := url.Parse(rawURL)
	if err != nil || target.User != nil || target.Host == "" {
		return false
	}

	for _, segment := range strings.Split(target.Path, "/") {
		if segment == ".." {
			return false
		}
	}

	for _, base := range r.allowed {
		if !strings.EqualFold(target.Scheme, base.Scheme) || !strings.EqualFold(target.Host, base.Host) {
			continue
		}

		if base.Path == "" || target.Path == base.Path || strings.HasPrefix(target.Path, base.Path+"/") {
			return true
		}
	}

	return false
}

// Handle executes one encoded RelayRequest and returns the encoded reply.
func (r *NATSRelay) Handle(ctx context.Context, data []byte) []byte {
	reply := r.handle(ctx, data)

	encoded, err := json.Marshal(reply)
	if err != nil {
		encoded, _ = json.Marshal(RelayReply{Error: err.Error()})
	}

	return encoded
}

func (r *NATSRelay) handle(ctx context.Context, data []byte) RelayReply {
	var request RelayRequest
	if err := json.Unmarshal(data, &request); err != nil {
		return RelayReply{Error: "invalid relay request: " + err.Error()}
	}

	if !r.permits(request.URL) {
		if r.logger != nil {
			r.logger.Warn("Relay request rejected", map[string]interface{}{
				"method": request.Method,
				"url":    maskURL(request.URL),
			})
		}

		return RelayReply{Error: fmt.Sprintf("%s: %s", constants.ErrRelayURLNotAllowed, maskURL(request.URL))}
	}

	params := make(graph.Params, 0, len(request.Params))
	for _, param := range request.Params {
		params = params.Add(param.Name, param.Value)
	}

	var (
		body string
		err  error
	)

	switch request.Method {
	case http.MethodGet:
		body, err = r.transport.Get(ctx, request.URL, params)
	case http.MethodPost:
		body, err = r.transport.Post(ctx, request.URL, params)
	case http.MethodDelete:
		body, err = r.transport.Delete(ctx, request.URL, params)
	default:
		return RelayReply{Error: "unsupported method " + request.Method}
	}

	if err == nil {
		return RelayReply{Status: http.StatusOK, Body: body}
	}

	transportErr := &graph.TransportError{}
	if errors.As(err, &transportErr) && transportErr.StatusCode != 0 {
		return RelayReply{Status: transportErr.StatusCode, Body: transportErr.Body}
	}

	if r.logger != nil {
		r.logger.Warn("Relay request failed", map[string]interface{}{
			"method": request.Method,
			"url":    maskURL(request.URL),
			"error":  err.Error(),
		})
	}

	return RelayReply{Error: err.Error()}
}

// Serve answers requests on subject, load-balanced across relays sharing
// queue, until ctx is done.
func (r *NATSRelay) Serve(ctx context.Context, conn *nats.Conn, subject, queue string) error {
	sub, err := conn.QueueSubscribe(subject, queue, func(msg *nats.Msg) {
		if err := msg.Respond(r.Handle(ctx, msg.Data)); err != nil && r.logger != nil {
			r.logger.Error("Failed to send relay reply", map[string]interface{}{"error": err.Error()})
		}
	})
	if err != nil {
		return fmt.Errorf("subscribing to %s: %w", subject, err)
	}

	<-ctx.Done()

	if err := sub.Drain(); err != nil {
		return fmt.Errorf("draining subscription: %w", err)
	}

	return nil
}
