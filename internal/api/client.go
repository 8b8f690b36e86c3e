// internal/api/client.go
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/mazhar-devx/shophub-storefront/internal/config"
)

// ErrUnauthorized is returned when the backend rejects the session token.
// Callers treat it as fatal-to-session: credentials are cleared (via the
// OnUnauthorized hook) and the user must log in again. Cart and wishlist
// state is untouched.
var ErrUnauthorized = errors.New("api: session is not authorized")

// APIError is a non-2xx response from the backend
type APIError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.Status, e.Message)
}

// TokenSource supplies the current bearer token, empty when logged out
type TokenSource interface {
	Token() string
}

// Client is the shared REST client for the remote shop backend. All outgoing
// requests carry the session bearer token when one is present.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	tokens         TokenSource
	onUnauthorized func()
}

// NewClient creates a backend API client
func NewClient(cfg *config.Config, tokens TokenSource, onUnauthorized func()) *Client {
	return &Client{
		baseURL: cfg.Backend.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Backend.Timeout,
		},
		tokens:         tokens,
		onUnauthorized: onUnauthorized,
	}
}

// WithBase returns a copy of the client aimed at a different base URL with
// its own timeout. The token source and unauthorized hook are shared, so a
// 401 from any base clears the same session.
func (c *Client) WithBase(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		tokens:         c.tokens,
		onUnauthorized: c.onUnauthorized,
	}
}

// Get performs a GET request and decodes the JSON response into out
func (c *Client) Get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// Post performs a POST request with a JSON body and decodes the response into out
func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// Request interceptor: attach the bearer token when logged in
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("backend request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return ErrUnauthorized
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.decodeError(resp)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

func (c *Client) decodeError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}

	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
		if payload.Error != "" {
			apiErr.Message = payload.Error
		} else {
			apiErr.Message = payload.Message
		}
	}

	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}

	return apiErr
}
