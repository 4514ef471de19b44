package commands

import (
	"time"

	"github.com/fivetwenty-io/igdb/internal/auth"
	"github.com/fivetwenty-io/igdb/internal/client"
	"github.com/fivetwenty-io/igdb/internal/logging"
	"github.com/fivetwenty-io/igdb/pkg/igdb"
	"github.com/spf13/viper"
)

// userAgent is sent by every request the CLI makes.
var userAgent = "igdb-cli"

// SetUserAgent includes the build version in the CLI user agent.
func SetUserAgent(version string) {
	userAgent = "igdb-cli/" + version
}

// CreateClient builds an IGDB client from the effective configuration.
// With a client secret, tokens are fetched on demand and saved to the
// config file; otherwise the configured token is used as is.
func CreateClient() (igdb.Client, error) {
	config := loadConfig()

	if config.ClientID == "" {
		return nil, ErrClientIDNotConfigured
	}

	igdbConfig := &igdb.Config{
		ClientID:     config.ClientID,
		AccessToken:  config.Token,
		ClientSecret: config.ClientSecret,
		TokenURL:     config.TokenURL,
		BaseURL:      config.BaseURL,
		ImageBaseURL: config.ImageBaseURL,
		UserAgent:    userAgent,
		Debug:        viper.GetBool("verbose"),
		Logger:       logging.New(),
	}

	if config.ClientSecret == "" {
		if config.Token == "" {
			return nil, ErrCredentialsNotConfigured
		}

		return client.New(igdbConfig)
	}

	return client.NewWithTokenManager(igdbConfig, newConfigTokenManager(config))
}

// newConfigTokenManager creates a token manager seeded with the saved token.
func newConfigTokenManager(config *Config) *auth.ConfigTokenManager {
	var expiry time.Time
	if config.TokenExpiresAt != nil {
		expiry = *config.TokenExpiresAt
	}

	tokenManager := auth.NewConfigTokenManager(&auth.OAuth2Config{
		ClientID:     config.ClientID,
		ClientSecret: config.ClientSecret,
		TokenURL:     config.TokenURL,
	}, NewConfigPersister(), config.Token, expiry)

	tokenManager.OnPersistError(func(err error) {
		logging.Logger().WithError(err).Warn("failed to save token to config")
	})

	return tokenManager
}
