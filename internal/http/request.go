package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/fivetwenty-io/fbgraph/internal/constants"
	"github.com/fivetwenty-io/fbgraph/pkg/graph"
)

const (
	contentTypeForm  = "application/x-www-form-urlencoded"
	defaultUserAgent = "fbgraph-go/1.0"
)

// mergeQuery appends params to the query of rawURL, after any query the URL
// already carries. Order is preserved.
func mergeQuery(rawURL string, params graph.Params) (string, error) {
	if len(params) == 0 {
		return rawURL, nil
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parsing url: %w", err)
	}

	encoded := params.Encode()
	if parsed.RawQuery == "" {
		parsed.RawQuery = encoded
	} else {
		parsed.RawQuery += "&" + encoded
	}

	return parsed.String(), nil
}

// requestParts is the method-specific shape of one call: the final URL and
// the form body, if any.
type requestParts struct {
	method string
	url    string
	body   string
}

func prepare(method, rawURL string, params graph.Params) (requestParts, error) {
	if method == http.MethodGet {
		merged, err := mergeQuery(rawURL, params)
		if err != nil {
			return requestParts{}, err
		}

		return requestParts{method: method, url: merged}, nil
	}

	if _, err := url.Parse(rawURL); err != nil {
		return requestParts{}, fmt.Errorf("parsing url: %w", err)
	}

	return requestParts{method: method, url: rawURL, body: params.Encode()}, nil
}

func (p requestParts) newRequest(ctx context.Context, userAgent string) (*http.Request, error) {
	var body io.Reader
	if p.body != "" {
		body = strings.NewReader(p.body)
	}

	req, err := http.NewRequestWithContext(ctx, p.method, p.url, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	if p.method != http.MethodGet {
		req.Header.Set("Content-Type", contentTypeForm)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	return req, nil
}

// readResponse reads the body and turns a non-2xx status into a
// *graph.TransportError that carries the body.
func readResponse(resp *http.Response) (string, error) {
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &graph.TransportError{StatusCode: resp.StatusCode, Message: "reading response body", Err: err}
	}

	return classify(resp.StatusCode, http.StatusText(resp.StatusCode), string(data))
}

func classify(status int, statusText, body string) (string, error) {
	if status < constants.HTTPStatusOK || status >= constants.HTTPStatusMultipleChoices {
		message := fmt.Sprintf("%d %s", status, statusText)

		return "", &graph.TransportError{StatusCode: status, Message: strings.TrimSpace(message), Body: body}
	}

	return body, nil
}

// responseBody returns the body to log for a call, which for a non-2xx
// status lives on the error.
func responseBody(body string, err error) string {
	transportErr := &graph.TransportError{}
	if errors.As(err, &transportErr) {
		return transportErr.Body
	}

	return body
}

func networkError(err error) error {
	return &graph.TransportError{Message: "request failed", Err: err}
}

// maskURL hides the access token carried in the query of rawURL.
func maskURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || !strings.Contains(parsed.RawQuery, constants.ParamAccessToken) {
		return rawURL
	}

	query := parsed.Query()
	if query.Has(constants.ParamAccessToken) {
		query.Set(constants.ParamAccessToken, constants.MaskedValue)
		parsed.RawQuery = query.Encode()
	}

	return parsed.String()
}

func truncate(body string) string {
	if len(body) <= constants.MaxLoggedBody {
		return body
	}

	return body[:constants.MaxLoggedBody] + "..."
}
