// Package supabase is a minimal client for the hosted data/auth service the
// site optionally integrates with: PostgREST for table access and the
// password-grant auth endpoint for editor sign-in.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Config holds the two connection parameters the service needs. Both come
// from the environment; either one missing means the site runs in mock mode.
type Config struct {
	URL     string
	AnonKey string
}

// IsConfigured is the configuration gate: evaluated once at startup,
// never errors, and drives backend selection.
func (c Config) IsConfigured() bool {
	return strings.TrimSpace(c.URL) != "" && strings.TrimSpace(c.AnonKey) != ""
}

// Client talks to one service instance on behalf of at most one session.
// Clients are cheap and built per call; they must not be shared across
// requests with different cookie contexts.
type Client struct {
	baseURL     string
	apiKey      string
	accessToken string
	httpClient  *http.Client
}

// Option configures a Client at construction.
type Option func(*Client)

// WithAccessToken attaches a signed-in user's access token. Without it,
// requests are made with the anonymous key only.
func WithAccessToken(token string) Option {
	return func(c *Client) {
		if token != "" {
			c.accessToken = token
		}
	}
}

// WithHTTPClient overrides the transport, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New builds a client, or returns nil when the configuration gate is
// closed. Callers treat a nil client as "backend unavailable".
func New(cfg Config, opts ...Option) *Client {
	if !cfg.IsConfigured() {
		return nil
	}

	c := &Client{
		baseURL:    strings.TrimRight(cfg.URL, "/"),
		apiKey:     cfg.AnonKey,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Factory builds a per-request client from the ambient context, or nil when
// unconfigured. The request middleware stashes the session's access token in
// the context so every call carries the caller's identity.
type Factory func(ctx context.Context) *Client

// NewFactory returns a Factory bound to cfg.
func NewFactory(cfg Config) Factory {
	return func(ctx context.Context) *Client {
		return New(cfg, WithAccessToken(AccessTokenFromContext(ctx)))
	}
}

type accessTokenKey struct{}

// ContextWithAccessToken stores a session access token for later client
// construction.
func ContextWithAccessToken(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, accessTokenKey{}, token)
}

// AccessTokenFromContext retrieves the token stored by
// ContextWithAccessToken, or "".
func AccessTokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(accessTokenKey{}).(string)
	return token
}

func (c *Client) restURL(table string, query url.Values) string {
	u := c.baseURL + "/rest/v1/" + table
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func (c *Client) do(ctx context.Context, method, rawURL string, body any, headers map[string]string) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("apikey", c.apiKey)
	token := c.accessToken
	if token == "" {
		token = c.apiKey
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%s %s: %s", method, rawURL, errorMessage(payload, resp.StatusCode))
	}

	return payload, nil
}

// errorMessage digs a human-readable message out of a service error
// payload, falling back to the HTTP status.
func errorMessage(payload []byte, status int) string {
	var body struct {
		Message          string `json:"message"`
		Msg              string `json:"msg"`
		ErrorDescription string `json:"error_description"`
	}
	if err := json.Unmarshal(payload, &body); err == nil {
		switch {
		case body.Message != "":
			return body.Message
		case body.ErrorDescription != "":
			return body.ErrorDescription
		case body.Msg != "":
			return body.Msg
		}
	}
	return http.StatusText(status)
}

// Select runs a GET against a table and returns the raw rows. Rows are
// decoded into maps because the remote schema is not under this process's
// control; callers normalize.
func (c *Client) Select(ctx context.Context, table string, query url.Values) ([]map[string]any, error) {
	payload, err := c.do(ctx, http.MethodGet, c.restURL(table, query), nil, nil)
	if err != nil {
		return nil, err
	}

	var rows []map[string]any
	if err := json.Unmarshal(payload, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode rows from %s: %w", table, err)
	}
	return rows, nil
}

// Insert adds a row and returns the stored representation.
func (c *Client) Insert(ctx context.Context, table string, row any) (map[string]any, error) {
	headers := map[string]string{"Prefer": "return=representation"}
	payload, err := c.do(ctx, http.MethodPost, c.restURL(table, nil), row, headers)
	if err != nil {
		return nil, err
	}
	return singleRow(payload, table)
}

// Update patches the row with the given id and returns the stored
// representation. An id that matches nothing is reported as an error,
// mirroring the service's single-object semantics.
func (c *Client) Update(ctx context.Context, table, id string, row any) (map[string]any, error) {
	query := url.Values{"id": {"eq." + id}}
	headers := map[string]string{"Prefer": "return=representation"}
	payload, err := c.do(ctx, http.MethodPatch, c.restURL(table, query), row, headers)
	if err != nil {
		return nil, err
	}
	return singleRow(payload, table)
}

// Delete removes the row with the given id.
func (c *Client) Delete(ctx context.Context, table, id string) error {
	query := url.Values{"id": {"eq." + id}}
	_, err := c.do(ctx, http.MethodDelete, c.restURL(table, query), nil, nil)
	return err
}

func singleRow(payload []byte, table string) (map[string]any, error) {
	var rows []map[string]any
	if err := json.Unmarshal(payload, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode row from %s: %w", table, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no row returned from %s", table)
	}
	return rows[0], nil
}
