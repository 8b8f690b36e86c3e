// internal/api/client_test.go
package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/mazhar-devx/shophub-storefront/internal/api"
	"github.com/mazhar-devx/shophub-storefront/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticTokens string

func (s staticTokens) Token() string { return string(s) }

func newClient(baseURL string, tokens api.TokenSource, onUnauthorized func()) *api.Client {
	cfg := &config.Config{}
	cfg.Backend.BaseURL = baseURL
	cfg.Backend.Timeout = 5 * time.Second
	return api.NewClient(cfg, tokens, onUnauthorized)
}

func TestGetAttachesBearerToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client := newClient(server.URL, staticTokens("abc123"), nil)

	var out struct {
		OK bool `json:"ok"`
	}
	require.NoError(t, client.Get(context.Background(), "/ping", nil, &out))

	assert.Equal(t, "Bearer abc123", gotAuth)
	assert.True(t, out.OK)
}

func TestGetOmitsAuthorizationWhenLoggedOut(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newClient(server.URL, staticTokens(""), nil)
	require.NoError(t, client.Get(context.Background(), "/ping", nil, nil))

	assert.Empty(t, gotAuth)
}

func TestGetEncodesQuery(t *testing.T) {
	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newClient(server.URL, staticTokens(""), nil)

	query := url.Values{}
	query.Set("page", "2")
	query.Set("search", "head phones")
	require.NoError(t, client.Get(context.Background(), "/products", query, nil))

	assert.Equal(t, "2", gotQuery.Get("page"))
	assert.Equal(t, "head phones", gotQuery.Get("search"))
}

func TestPostSendsJSONBody(t *testing.T) {
	var gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"ord-1"}`))
	}))
	defer server.Close()

	client := newClient(server.URL, staticTokens("tok"), nil)

	var out struct {
		ID string `json:"id"`
	}
	err := client.Post(context.Background(), "/orders", map[string]string{"sku": "p1"}, &out)
	require.NoError(t, err)

	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "ord-1", out.ID)
}

func TestUnauthorizedFiresHook(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	hookFired := false
	client := newClient(server.URL, staticTokens("stale"), func() { hookFired = true })

	err := client.Get(context.Background(), "/profile", nil, nil)
	require.ErrorIs(t, err, api.ErrUnauthorized)
	assert.True(t, hookFired)
}

func TestErrorResponseDecoding(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
	}{
		{
			name:        "error field",
			status:      http.StatusNotFound,
			body:        `{"error":"product not found"}`,
			wantMessage: "product not found",
		},
		{
			name:        "message field",
			status:      http.StatusConflict,
			body:        `{"message":"out of stock"}`,
			wantMessage: "out of stock",
		},
		{
			name:        "unparseable body falls back to status text",
			status:      http.StatusInternalServerError,
			body:        `<html>boom</html>`,
			wantMessage: http.StatusText(http.StatusInternalServerError),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := newClient(server.URL, staticTokens(""), nil)
			err := client.Get(context.Background(), "/x", nil, nil)

			var apiErr *api.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.wantMessage, apiErr.Message)
		})
	}
}
