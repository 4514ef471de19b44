package auth

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/fivetwenty-io/igdb/internal/constants"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// OAuth2Config configures the client credentials token manager.
type OAuth2Config struct {
	ClientID     string
	ClientSecret string
	// TokenURL defaults to the Twitch token endpoint.
	TokenURL string
	// AccessToken seeds the store so no exchange happens until it is rejected.
	AccessToken string
	// HTTPClient is used for the token exchange when set.
	HTTPClient *http.Client
}

// OAuth2TokenManager exchanges client credentials for app access tokens.
// The first token is fetched lazily and cached until shortly before expiry.
type OAuth2TokenManager struct {
	config *OAuth2Config
	store  *TokenStore
	mu     sync.Mutex
}

// NewOAuth2TokenManager creates a manager. It performs no network I/O.
func NewOAuth2TokenManager(config *OAuth2Config) *OAuth2TokenManager {
	copied := *config
	if copied.TokenURL == "" {
		copied.TokenURL = constants.TwitchTokenURL
	}

	manager := &OAuth2TokenManager{
		config: &copied,
		store:  NewTokenStore(),
	}

	if config.AccessToken != "" {
		manager.store.Set(&Token{AccessToken: config.AccessToken, TokenType: "bearer"})
	}

	return manager
}

// GetToken returns a valid access token, fetching one if necessary.
func (m *OAuth2TokenManager) GetToken(ctx context.Context) (string, error) {
	if token := m.store.Get(); token.Valid() {
		return token.AccessToken, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Another caller may have fetched while we waited.
	if token := m.store.Get(); token.Valid() {
		return token.AccessToken, nil
	}

	token, err := m.fetch(ctx)
	if err != nil {
		return "", err
	}

	return token.AccessToken, nil
}

// RefreshToken forces a new exchange.
func (m *OAuth2TokenManager) RefreshToken(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, err := m.fetch(ctx)

	return err
}

// SetToken manually sets the access token.
func (m *OAuth2TokenManager) SetToken(token string, expiresAt time.Time) {
	m.store.Set(&Token{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresAt:   expiresAt,
	})
}

// Current returns the cached token without fetching.
func (m *OAuth2TokenManager) Current() *Token {
	return m.store.Get()
}

func (m *OAuth2TokenManager) fetch(ctx context.Context) (*Token, error) {
	if m.config.ClientID == "" || m.config.ClientSecret == "" {
		return nil, ErrNoCredentials
	}

	cc := &clientcredentials.Config{
		ClientID:     m.config.ClientID,
		ClientSecret: m.config.ClientSecret,
		TokenURL:     m.config.TokenURL,
		AuthStyle:    oauth2.AuthStyleInParams,
	}

	if m.config.HTTPClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, m.config.HTTPClient)
	}

	oauthToken, err := cc.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching app access token: %w", err)
	}

	if oauthToken.AccessToken == "" {
		return nil, ErrEmptyTokenInResponse
	}

	token := &Token{
		AccessToken: oauthToken.AccessToken,
		TokenType:   oauthToken.TokenType,
		ExpiresAt:   oauthToken.Expiry,
	}
	if !oauthToken.Expiry.IsZero() {
		token.ExpiresIn = int64(time.Until(oauthToken.Expiry).Seconds())
	}

	m.store.Set(token)

	return token, nil
}
