package auth

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/fivetwenty-io/igdb/internal/constants"
)

// Static errors for err113 compliance.
var (
	ErrNoCredentials        = errors.New("no valid credentials available")
	ErrRefreshUnsupported   = errors.New("token manager cannot refresh tokens")
	ErrNoConfigPersister    = errors.New("no config persister configured")
	ErrEmptyTokenInResponse = errors.New("token endpoint returned an empty access token")
)

// TokenManager supplies bearer tokens to the transport.
type TokenManager interface {
	// GetToken returns a valid access token, fetching one if necessary.
	GetToken(ctx context.Context) (string, error)
	// RefreshToken discards the current token and obtains a new one.
	RefreshToken(ctx context.Context) error
	// SetToken manually sets the access token.
	SetToken(token string, expiresAt time.Time)
}

// Token is an OAuth2 access token.
type Token struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type,omitempty"`
	ExpiresIn   int64     `json:"expires_in,omitempty"`
	ExpiresAt   time.Time `json:"-"`
}

// Valid reports whether the token is usable for at least the expiry buffer.
// A token without an expiry never expires.
func (t *Token) Valid() bool {
	if t == nil || t.AccessToken == "" {
		return false
	}

	if t.ExpiresAt.IsZero() {
		return true
	}

	return time.Now().Add(constants.TokenExpirationBuffer).Before(t.ExpiresAt)
}

// TokenStore holds the current token and is safe for concurrent use.
type TokenStore struct {
	mu    sync.RWMutex
	token *Token
}

// NewTokenStore creates an empty store.
func NewTokenStore() *TokenStore {
	return &TokenStore{}
}

// Get returns the stored token or nil.
func (s *TokenStore) Get() *Token {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token
}

// Set replaces the stored token.
func (s *TokenStore) Set(token *Token) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
}

// Clear removes the stored token.
func (s *TokenStore) Clear() {
	s.Set(nil)
}
