// internal/pkg/auth/token.go
package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mazhar-devx/shophub-storefront/internal/storage"
	"github.com/sirupsen/logrus"
)

// Claims are the backend-issued JWT claims the storefront cares about. The
// backend signs and verifies tokens; the client only inspects them and never
// checks the signature.
type Claims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Credentials is the persisted auth snapshot
type Credentials struct {
	Token string `json:"token"`
	Email string `json:"email,omitempty"`
}

// TokenManager holds the session bearer token and persists it so a returning
// user stays logged in. Clearing it never touches cart or wishlist state.
type TokenManager struct {
	mu      sync.RWMutex
	creds   Credentials
	storage storage.Store
	log     *logrus.Logger
}

// NewTokenManager creates a token manager hydrated from durable storage
func NewTokenManager(ctx context.Context, st storage.Store, log *logrus.Logger) *TokenManager {
	manager := &TokenManager{
		storage: st,
		log:     log,
	}

	raw, err := st.Load(ctx, storage.KeyAuth)
	if errors.Is(err, storage.ErrNotFound) {
		return manager
	}
	if err != nil {
		log.WithError(err).Warn("Failed to load auth snapshot, starting logged out")
		return manager
	}

	var creds Credentials
	if err := storage.DecodeSnapshot(raw, &creds); err != nil {
		log.WithError(err).Warn("Discarding unreadable auth snapshot")
		return manager
	}

	manager.creds = creds
	return manager
}

// Token returns the current bearer token, empty when logged out or expired
func (m *TokenManager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.creds.Token == "" {
		return ""
	}

	if claims, err := m.inspect(m.creds.Token); err == nil {
		if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
			return ""
		}
	}

	return m.creds.Token
}

// Email returns the logged-in user's email, if known
func (m *TokenManager) Email() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.creds.Email
}

// IsAuthenticated reports whether a usable token is present
func (m *TokenManager) IsAuthenticated() bool {
	return m.Token() != ""
}

// Set stores a freshly issued token and persists it
func (m *TokenManager) Set(ctx context.Context, token string) error {
	if token == "" {
		return fmt.Errorf("token is required")
	}

	creds := Credentials{Token: token}
	if claims, err := m.inspect(token); err == nil {
		creds.Email = claims.Email
	}

	m.mu.Lock()
	m.creds = creds
	m.mu.Unlock()

	m.persist(ctx)
	return nil
}

// Clear drops the stored credentials, e.g. on logout or after a 401
func (m *TokenManager) Clear(ctx context.Context) {
	m.mu.Lock()
	m.creds = Credentials{}
	m.mu.Unlock()

	if err := m.storage.Delete(ctx, storage.KeyAuth); err != nil {
		m.log.WithError(err).Warn("Failed to delete persisted credentials")
	}
}

// inspect decodes claims without verifying the signature
func (m *TokenManager) inspect(token string) (*Claims, error) {
	claims := &Claims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	return claims, nil
}

func (m *TokenManager) persist(ctx context.Context) {
	m.mu.RLock()
	creds := m.creds
	m.mu.RUnlock()

	raw, err := storage.EncodeSnapshot(creds)
	if err != nil {
		m.log.WithError(err).Warn("Failed to encode auth snapshot")
		return
	}

	if err := m.storage.Save(ctx, storage.KeyAuth, raw); err != nil {
		m.log.WithError(err).Warn("Failed to persist credentials")
	}
}
