// Package vzaar is a client for the vzaar v2 video hosting API.
package vzaar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/samvad-hq/vzaar-go/pkg/httpclient"
)

// Version is reported as the uploader name when preparing uploads.
const Version = "1.0.0"

const (
	headerClientID    = "X-Client-Id"
	headerAuthToken   = "X-Auth-Token"
	headerContentType = "Content-Type"

	contentTypeJSON = "application/json"
	contentTypeXML  = "application/xml"

	defaultTimeout = 30 * time.Second
)

// Client issues authenticated requests against the vzaar API.
type Client struct {
	settings Settings
	http     httpclient.Client
	log      Logger
	timeout  time.Duration
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default resty transport.
func WithHTTPClient(hc httpclient.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(log Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithTimeout sets the timeout of the default transport. Ignored with WithHTTPClient.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// New builds a Client from explicit settings.
func New(settings Settings, opts ...Option) (*Client, error) {
	settings = sanitizeSettings(settings)
	if err := validateSettings(settings); err != nil {
		return nil, err
	}

	c := &Client{settings: settings, timeout: defaultTimeout}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	if c.http == nil {
		c.http = httpclient.NewRestyClient(c.timeout)
	}
	c.log = ensureLogger(c.log)
	return c, nil
}

// NewFromSource builds a Client from settings supplied by src.
func NewFromSource(src SettingsSource, opts ...Option) (*Client, error) {
	if src == nil {
		return nil, fmt.Errorf("vzaar: settings source is nil")
	}
	settings, err := src.VzaarSettings()
	if err != nil {
		return nil, fmt.Errorf("vzaar: load settings: %w", err)
	}
	return New(settings, opts...)
}

// Settings returns the settings the client was built with.
func (c *Client) Settings() Settings { return c.settings }

type call struct {
	method      string
	endpoint    string
	expected    int
	query       map[string]string
	body        []byte
	contentType string
}

// do performs one request and asserts the expected status code.
func (c *Client) do(ctx context.Context, in call) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if in.expected == 0 {
		in.expected = http.StatusOK
	}

	headers := map[string]string{
		headerClientID:  c.settings.ClientID,
		headerAuthToken: c.settings.AuthToken,
	}
	if in.body != nil {
		ct := in.contentType
		if ct == "" {
			ct = contentTypeJSON
		}
		headers[headerContentType] = ct
	}

	start := time.Now()
	resp, err := c.http.Do(ctx, httpclient.Request{
		Method:  in.method,
		URL:     c.settings.BaseURL + in.endpoint,
		Headers: headers,
		Query:   in.query,
		Body:    in.body,
	})
	if err != nil {
		c.log.ErrorObj("vzaar request failed", "vzaar_request_error", map[string]any{
			"method":   in.method,
			"endpoint": in.endpoint,
			"error":    err.Error(),
		})
		return nil, fmt.Errorf("vzaar: %s %s: %w", in.method, in.endpoint, err)
	}

	c.log.DebugObj("vzaar request completed", "vzaar_request", map[string]any{
		"method":     in.method,
		"endpoint":   in.endpoint,
		"status":     resp.StatusCode(),
		"elapsed_ms": time.Since(start).Milliseconds(),
	})

	if resp.StatusCode() != in.expected {
		serr := &StatusError{
			Method:     in.method,
			Endpoint:   in.endpoint,
			Expected:   in.expected,
			StatusCode: resp.StatusCode(),
			Status:     resp.Status(),
			Header:     resp.Header(),
			Body:       resp.Body(),
		}
		c.log.WarnObj("vzaar unexpected status", "vzaar_status_error", map[string]any{
			"method":   in.method,
			"endpoint": in.endpoint,
			"expected": in.expected,
			"status":   resp.StatusCode(),
			"body":     readBodySnippet(serr.Body),
		})
		return nil, serr
	}
	return resp.Body(), nil
}

// doJSON performs a request with a JSON encoded payload (nil for none).
func (c *Client) doJSON(ctx context.Context, in call, payload any) ([]byte, error) {
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("vzaar: encode %s body: %w", in.endpoint, err)
		}
		in.body = raw
		in.contentType = contentTypeJSON
	}
	return c.do(ctx, in)
}

func decodeJSON(endpoint string, body []byte, v any) error {
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("vzaar: decode %s response: %w", endpoint, err)
	}
	return nil
}
