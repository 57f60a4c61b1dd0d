// Package api is the HTTP transport for the marketplace API: request
// building, bearer-token injection, and the single refresh-and-retry
// pass when an access token expires.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/evomarket/evomarket-go/store"
)

// ErrSessionExpired is returned when a 401 could not be recovered by a
// token refresh. All persisted session state has been purged and the
// session-expired hook (if any) has fired; the shell must restart its
// auth flow.
var ErrSessionExpired = errors.New("session expired")

// DefaultTimeout bounds each HTTP request unless the context is stricter.
const DefaultTimeout = 30 * time.Second

// Client talks to the remote marketplace API. Tokens are read from and
// written to the Backend so every consumer of the store observes refreshes.
type Client struct {
	// BaseURL is the API origin, without a trailing slash.
	BaseURL string
	// Backend holds the persisted session tokens.
	Backend store.Backend
	// HTTPClient defaults to a client with DefaultTimeout.
	HTTPClient *http.Client
	// OnSessionExpired, when set, runs after an unrecoverable 401 has
	// purged the store. The browser source reloaded the page here; an
	// embedding shell hooks its equivalent.
	OnSessionExpired func()

	// refreshMu serializes token refresh so concurrent 401s trigger a
	// single refresh attempt.
	refreshMu sync.Mutex
}

// NewClient creates a client for the given API origin.
func NewClient(baseURL string, backend store.Backend) *Client {
	return &Client{
		BaseURL:    baseURL,
		Backend:    backend,
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// Response is a fully read API response.
type Response struct {
	Status int
	Body   []byte
}

// OK reports whether the status is 2xx.
func (r *Response) OK() bool {
	return r.Status >= 200 && r.Status < 300
}

// Decode unmarshals the response body into out.
func (r *Response) Decode(out any) error {
	if err := json.Unmarshal(r.Body, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// Message extracts the server-provided error message from the body,
// falling back when the body has neither a "message" nor an "error" field.
func (r *Response) Message(fallback string) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(r.Body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return fallback
}

// JSON sends a request with an optional JSON body and reads the response.
func (c *Client) JSON(ctx context.Context, method, path string, query url.Values, body any) (*Response, error) {
	var encoded []byte
	if body != nil {
		var err error
		encoded, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
	}
	return c.do(ctx, method, path, query, "application/json", encoded)
}

// Plain sends a JSON request without bearer injection or 401 recovery.
// Login and register use it: a rejection there is an answer, not an
// expired session.
func (c *Client) Plain(ctx context.Context, method, path string, body any) (*Response, error) {
	var encoded []byte
	if body != nil {
		var err error
		encoded, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
	}
	return c.send(ctx, method, path, nil, "application/json", encoded, "")
}

// JSONOnce is JSON without the 401 recovery pass: the current bearer is
// attached but a rejection is returned as-is. Best-effort calls whose
// failure must not tear down the session (logout) use it.
func (c *Client) JSONOnce(ctx context.Context, method, path string, body any) (*Response, error) {
	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encoding request body: %w", err)
	}

	access := ""
	if tokens, err := store.GetTokens(ctx, c.Backend); err == nil && tokens != nil {
		access = tokens.Access
	}
	return c.send(ctx, method, path, nil, "application/json", encoded, access)
}

// Multipart sends a pre-encoded multipart body with its boundary-bearing
// content type.
func (c *Client) Multipart(ctx context.Context, method, path string, contentType string, body []byte) (*Response, error) {
	return c.do(ctx, method, path, nil, contentType, body)
}

// do performs the request with bearer injection. A 401 triggers one
// refresh attempt and one retry; an unrecoverable 401 purges the store,
// fires the session-expired hook, and returns ErrSessionExpired.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, contentType string, body []byte) (*Response, error) {
	tokens, err := store.GetTokens(ctx, c.Backend)
	if err != nil {
		return nil, err
	}

	access := ""
	if tokens != nil {
		access = tokens.Access
		// If the token is inspectable and already past its exp claim,
		// refresh up front instead of eating a guaranteed 401.
		if access != "" && tokenExpired(access, time.Now()) {
			if refreshed, err := c.refresh(ctx); err == nil {
				access = refreshed
			}
		}
	}

	resp, err := c.send(ctx, method, path, query, contentType, body, access)
	if err != nil {
		return nil, err
	}
	if resp.Status != http.StatusUnauthorized {
		return resp, nil
	}

	// One refresh, one retry.
	access, err = c.refresh(ctx)
	if err != nil {
		c.expireSession(ctx)
		return nil, ErrSessionExpired
	}
	return c.send(ctx, method, path, query, contentType, body, access)
}

// send issues a single HTTP request and reads the whole response.
func (c *Client) send(ctx context.Context, method, path string, query url.Values, contentType string, body []byte, access string) (*Response, error) {
	target := c.BaseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	if contentType != "" && body != nil {
		req.Header.Set("Content-Type", contentType)
	}
	if access != "" {
		req.Header.Set("Authorization", "Bearer "+access)
	}

	start := time.Now()
	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	slog.Debug("api request", "method", method, "path", path,
		"status", resp.StatusCode, "duration", time.Since(start).Round(time.Millisecond))
	return &Response{Status: resp.StatusCode, Body: data}, nil
}

// refresh exchanges the stored refresh token for a new access token and
// persists it. Fails when no refresh token is stored or the endpoint
// rejects it.
func (c *Client) refresh(ctx context.Context) (string, error) {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	tokens, err := store.GetTokens(ctx, c.Backend)
	if err != nil {
		return "", err
	}
	if tokens == nil || tokens.Refresh == "" {
		return "", errors.New("no refresh token")
	}

	body, _ := json.Marshal(map[string]string{"refresh": tokens.Refresh})
	resp, err := c.send(ctx, http.MethodPost, PathTokenRefresh, nil, "application/json", body, "")
	if err != nil {
		return "", err
	}
	if !resp.OK() {
		return "", fmt.Errorf("token refresh rejected: status %d", resp.Status)
	}

	var payload struct {
		Access string `json:"access"`
	}
	if err := resp.Decode(&payload); err != nil {
		return "", err
	}
	if payload.Access == "" {
		return "", errors.New("refresh response missing access token")
	}

	if err := store.SetAccessToken(ctx, c.Backend, payload.Access); err != nil {
		return "", err
	}
	slog.Info("access token refreshed")
	return payload.Access, nil
}

// expireSession purges all persisted state and notifies the shell.
func (c *Client) expireSession(ctx context.Context) {
	if err := store.PurgeAll(ctx, c.Backend); err != nil {
		slog.Warn("purging expired session", "error", err)
	}
	slog.Info("session expired, local state purged")
	if c.OnSessionExpired != nil {
		c.OnSessionExpired()
	}
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{Timeout: DefaultTimeout}
}
