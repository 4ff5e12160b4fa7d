// Package client fetches documents, pages, page metadata, revisions and
// attachments from the document API and pushes every returned entity
// through the shared store so all consumers observe the same instances.
//
// Each operation issues exactly one request. Nothing is retried, and
// timeouts are left to the configured HTTP client. Operations that return a
// *Response hand back the raw API response without touching the store.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"

	"github.com/hashicorp-forge/docview/pkg/store"
)

// Client talks to the document API.
type Client struct {
	config     *Config
	httpClient *http.Client
	store      *store.Store
	navigator  Navigator
	logger     hclog.Logger
}

// Response is a raw API response that was not normalized into the store.
type Response struct {
	StatusCode int             `json:"statusCode"`
	Body       json.RawMessage `json:"body,omitempty"`
}

// Option is a functional option for creating a Client.
type Option func(*Client)

// WithStore sets the entity store. Required.
func WithStore(s *store.Store) Option {
	return func(c *Client) {
		c.store = s
	}
}

// WithLogger sets the logger.
func WithLogger(logger hclog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithNavigator sets the sink for navigation intents.
func WithNavigator(n Navigator) Option {
	return func(c *Client) {
		c.navigator = n
	}
}

// WithHTTPClient replaces the HTTP client built from the config.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a new document API client.
func New(cfg *Config, opts ...Option) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid client config: %w", err)
	}

	c := &Client{
		config:    cfg,
		navigator: NopNavigator{},
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.store == nil {
		return nil, fmt.Errorf("store is required")
	}
	if c.logger == nil {
		c.logger = hclog.NewNullLogger()
	}
	c.logger = c.logger.Named("client")
	if c.navigator == nil {
		c.navigator = NopNavigator{}
	}
	if c.httpClient == nil {
		c.httpClient = cfg.NewHTTPClient()
	}

	return c, nil
}

// Store returns the store this client pushes into.
func (c *Client) Store() *store.Store {
	return c.store
}

// Get issues a GET for path and decodes the JSON body into result.
func (c *Client) Get(ctx context.Context, path string, result any) error {
	_, _, err := c.do(ctx, http.MethodGet, path, nil, nil, result)
	return err
}

// do executes a single request. A non-nil body is sent as JSON. When result
// is non-nil the response body is decoded into it, keeping numbers as
// json.Number so that integer fields survive intact. The raw body and status
// code are always returned on success.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, result any) ([]byte, int, error) {
	endpoint, err := c.endpoint(path, query)
	if err != nil {
		return nil, 0, err
	}

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.config.UserAgent)
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("sending request",
		"method", method,
		"path", path,
		"request_id", requestID,
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %s %s: %w", ErrTransport, method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: failed to read response: %w", ErrTransport, err)
	}

	c.logger.Debug("received response",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"request_id", requestID,
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, resp.StatusCode, &APIError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Message:    errorMessage(respBody),
		}
	}

	if result != nil && len(bytes.TrimSpace(respBody)) > 0 {
		dec := json.NewDecoder(bytes.NewReader(respBody))
		dec.UseNumber()
		if err := dec.Decode(result); err != nil {
			return nil, 0, fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return respBody, resp.StatusCode, nil
}

// raw executes a request and wraps the response without decoding it.
func (c *Client) raw(ctx context.Context, method, path string, query url.Values, body any) (*Response, error) {
	respBody, status, err := c.do(ctx, method, path, query, body, nil)
	if err != nil {
		return nil, err
	}

	resp := &Response{StatusCode: status}
	if len(bytes.TrimSpace(respBody)) > 0 {
		resp.Body = json.RawMessage(respBody)
	}
	return resp, nil
}

func (c *Client) endpoint(path string, query url.Values) (string, error) {
	u, err := url.Parse(strings.TrimSuffix(c.config.BaseURL, "/") + "/" + strings.TrimPrefix(path, "/"))
	if err != nil {
		return "", fmt.Errorf("invalid request path %q: %w", path, err)
	}
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String(), nil
}

// errorMessage extracts a message from an API error body.
func errorMessage(body []byte) string {
	var apiErr struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &apiErr); err == nil {
		if apiErr.Error != "" {
			return apiErr.Error
		}
		if apiErr.Message != "" {
			return apiErr.Message
		}
	}
	return strings.TrimSpace(string(body))
}

// pushEach normalizes and pushes every raw record as type t, keeping order.
func pushEach[T store.Entity](s *store.Store, t store.Type, raws []map[string]any) ([]T, error) {
	out := make([]T, 0, len(raws))
	for _, raw := range raws {
		e, err := store.PushAs[T](s, t, raw)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}
