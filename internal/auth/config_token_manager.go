package auth

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// ConfigPersister saves a freshly issued token so later runs can reuse it.
type ConfigPersister interface {
	UpdateToken(token string, expiresAt time.Time) error
}

// ConfigTokenManager wraps OAuth2TokenManager and persists every newly
// fetched token through a ConfigPersister.
type ConfigTokenManager struct {
	oauth2Manager   *OAuth2TokenManager
	configPersister ConfigPersister
	mutex           sync.Mutex
	lastToken       string
	onPersistError  func(error)
}

// NewConfigTokenManager creates a new config-persisting token manager. A
// previously saved token and its expiry seed the manager.
func NewConfigTokenManager(config *OAuth2Config, configPersister ConfigPersister, initialToken string, initialExpiry time.Time) *ConfigTokenManager {
	oauth2Manager := NewOAuth2TokenManager(config)

	if initialToken != "" {
		oauth2Manager.SetToken(initialToken, initialExpiry)
	}

	return &ConfigTokenManager{
		oauth2Manager:   oauth2Manager,
		configPersister: configPersister,
		lastToken:       initialToken,
	}
}

// OnPersistError registers a callback for tokens that could not be saved.
// Persistence failures never fail the request.
func (m *ConfigTokenManager) OnPersistError(fn func(error)) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.onPersistError = fn
}

// GetToken returns a valid access token, fetching and persisting if necessary.
func (m *ConfigTokenManager) GetToken(ctx context.Context) (string, error) {
	token, err := m.oauth2Manager.GetToken(ctx)
	if err != nil {
		return "", err
	}

	m.persistIfChanged()

	return token, nil
}

// RefreshToken forces a token refresh and persists the result.
func (m *ConfigTokenManager) RefreshToken(ctx context.Context) error {
	err := m.oauth2Manager.RefreshToken(ctx)
	if err != nil {
		return err
	}

	m.persistIfChanged()

	return nil
}

// SetToken manually sets the access token without persisting it.
func (m *ConfigTokenManager) SetToken(token string, expiresAt time.Time) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.oauth2Manager.SetToken(token, expiresAt)
	m.lastToken = token
}

// GetTokenExpiry returns the current token's expiration time.
func (m *ConfigTokenManager) GetTokenExpiry() time.Time {
	token := m.oauth2Manager.Current()
	if token == nil {
		return time.Time{}
	}

	return token.ExpiresAt
}

func (m *ConfigTokenManager) persistIfChanged() {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	current := m.oauth2Manager.Current()
	if current == nil || current.AccessToken == m.lastToken {
		return
	}

	m.lastToken = current.AccessToken

	err := m.persistToken(current)
	if err != nil && m.onPersistError != nil {
		m.onPersistError(err)
	}
}

func (m *ConfigTokenManager) persistToken(token *Token) error {
	if m.configPersister == nil {
		return ErrNoConfigPersister
	}

	err := m.configPersister.UpdateToken(token.AccessToken, token.ExpiresAt)
	if err != nil {
		return fmt.Errorf("failed to update token: %w", err)
	}

	return nil
}
