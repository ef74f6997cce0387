// Package api implements the REST client for the recipe backend.
//
// Every request carries an X-Session-ID correlation header. When a token
// source is wired and yields a token, an Authorization bearer header is
// attached unless the caller set one explicitly. Failures surface as either
// *TransportError (no response) or *HTTPError (non-2xx status); callers match
// them with errors.As.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"
)

// TokenSource yields the current auth token, or "" when unauthenticated.
// The session manager implements it.
type TokenSource interface {
	Token() string
}

// Client talks to one backend base URL on behalf of one client session.
type Client struct {
	baseURL   string
	sessionID string
	http      *http.Client
	tokens    TokenSource

	maxRetries   uint64
	retryBackoff time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client (used by tests to
// inject a transport).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithTimeout sets the per-request timeout on the underlying http.Client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithRetries sets how many extra attempts an idempotent GET makes after a
// transport-level failure. HTTP errors are never retried.
func WithRetries(n uint64) Option {
	return func(c *Client) { c.maxRetries = n }
}

// New returns a Client for the given base URL and session identifier.
func New(baseURL, sessionID string, opts ...Option) *Client {
	c := &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		sessionID: sessionID,
		http: &http.Client{
			Timeout: 10 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:    20,
				MaxConnsPerHost: 20,
				IdleConnTimeout: 30 * time.Second,
				DialContext: (&net.Dialer{
					Timeout:   5 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
			},
		},
		maxRetries:   2,
		retryBackoff: 150 * time.Millisecond,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// SetTokenSource wires the auth token provider. It exists as a setter because
// the session manager needs the client for its own calls; construct the
// client first, then the manager, then connect them.
func (c *Client) SetTokenSource(ts TokenSource) { c.tokens = ts }

// SessionID returns the session identifier sent with every request.
func (c *Client) SessionID() string { return c.sessionID }

// Request issues an HTTP request against the backend and returns the raw JSON
// body of a successful response. extraHeaders may override any default header,
// including Authorization.
func (c *Client) Request(ctx context.Context, method, path string, body any, extraHeaders map[string]string) (json.RawMessage, error) {
	if method == http.MethodGet && c.maxRetries > 0 {
		var raw json.RawMessage
		backoff := retry.WithMaxRetries(c.maxRetries, retry.NewExponential(c.retryBackoff))
		err := retry.Do(ctx, backoff, func(ctx context.Context) error {
			var err error
			raw, err = c.do(ctx, method, path, body, extraHeaders)
			var te *TransportError
			if errors.As(err, &te) {
				return retry.RetryableError(err)
			}
			return err
		})
		return raw, err
	}
	return c.do(ctx, method, path, body, extraHeaders)
}

func (c *Client) do(ctx context.Context, method, path string, body any, extraHeaders map[string]string) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("X-Session-ID", c.sessionID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range extraHeaders {
		req.Header.Set(k, v)
	}
	if req.Header.Get("Authorization") == "" && c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &HTTPError{Status: resp.StatusCode, Message: errorMessage(resp.StatusCode, data)}
	}
	return data, nil
}

// errorMessage extracts the backend's {"error": "..."} text, falling back to
// a generic message when the body is absent or not in that shape.
func errorMessage(status int, body []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return fmt.Sprintf("HTTP error: %d", status)
}

// GetJSON issues a GET and decodes the response into v.
func (c *Client) GetJSON(ctx context.Context, path string, v any) error {
	raw, err := c.Request(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}

// PostJSON issues a POST with the given body and decodes the response into v.
// Pass a nil v to discard the response body.
func (c *Client) PostJSON(ctx context.Context, path string, body, v any) error {
	raw, err := c.Request(ctx, http.MethodPost, path, body, nil)
	if err != nil {
		return err
	}
	if v == nil {
		return nil
	}
	return json.Unmarshal(raw, v)
}

// PutJSON issues a PUT with the given body and decodes the response into v.
// Pass a nil v to discard the response body.
func (c *Client) PutJSON(ctx context.Context, path string, body, v any) error {
	raw, err := c.Request(ctx, http.MethodPut, path, body, nil)
	if err != nil {
		return err
	}
	if v == nil {
		return nil
	}
	return json.Unmarshal(raw, v)
}

// Delete issues a DELETE, discarding any response body.
func (c *Client) Delete(ctx context.Context, path string) error {
	_, err := c.Request(ctx, http.MethodDelete, path, nil, nil)
	return err
}
