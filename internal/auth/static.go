package auth

import (
	"context"
	"time"
)

// StaticTokenManager always returns the token it was created with.
type StaticTokenManager struct {
	store *TokenStore
}

// NewStaticTokenManager wraps a pre-issued access token.
func NewStaticTokenManager(token string) *StaticTokenManager {
	store := NewTokenStore()
	store.Set(&Token{AccessToken: token, TokenType: "bearer"})

	return &StaticTokenManager{store: store}
}

// GetToken returns the static token.
func (m *StaticTokenManager) GetToken(_ context.Context) (string, error) {
	token := m.store.Get()
	if !token.Valid() {
		return "", ErrNoCredentials
	}

	return token.AccessToken, nil
}

// RefreshToken always fails: a static token has nothing to refresh from.
func (m *StaticTokenManager) RefreshToken(_ context.Context) error {
	return ErrRefreshUnsupported
}

// SetToken manually sets the access token.
func (m *StaticTokenManager) SetToken(token string, expiresAt time.Time) {
	m.store.Set(&Token{AccessToken: token, TokenType: "bearer", ExpiresAt: expiresAt})
}
