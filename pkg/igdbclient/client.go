package igdbclient

import (
	"fmt"
	"os"
	"strings"

	"github.com/fivetwenty-io/igdb/internal/client"
	"github.com/fivetwenty-io/igdb/pkg/igdb"
)

// Environment variables read by NewFromEnv.
const (
	EnvClientID     = "IGDB_CLIENT_ID"
	EnvClientSecret = "IGDB_CLIENT_SECRET"
	EnvToken        = "IGDB_TOKEN"
	EnvBaseURL      = "IGDB_BASE_URL"
)

// New creates a new IGDB client. It validates config and performs no
// network I/O; tokens for client credentials are fetched on first use.
func New(config *igdb.Config) (igdb.Client, error) {
	if config == nil {
		return nil, igdb.ErrConfigRequired
	}

	normalized := *config
	normalized.BaseURL = normalizeURL(config.BaseURL)
	normalized.ImageBaseURL = normalizeURL(config.ImageBaseURL)

	c, err := client.New(&normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return c, nil
}

// NewWithToken creates a client that sends a pre-issued app access token.
func NewWithToken(clientID, accessToken string) (igdb.Client, error) {
	return New(&igdb.Config{
		ClientID:    clientID,
		AccessToken: accessToken,
	})
}

// NewWithClientCredentials creates a client that obtains app access tokens
// from Twitch with the client credentials grant.
func NewWithClientCredentials(clientID, clientSecret string) (igdb.Client, error) {
	return New(&igdb.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
	})
}

// NewFromEnv creates a client from IGDB_CLIENT_ID plus IGDB_TOKEN and/or
// IGDB_CLIENT_SECRET. IGDB_BASE_URL overrides the API root.
func NewFromEnv() (igdb.Client, error) {
	return New(&igdb.Config{
		ClientID:     os.Getenv(EnvClientID),
		ClientSecret: os.Getenv(EnvClientSecret),
		AccessToken:  os.Getenv(EnvToken),
		BaseURL:      os.Getenv(EnvBaseURL),
	})
}

// normalizeURL trims a trailing slash and adds https:// when no scheme is present.
func normalizeURL(raw string) string {
	raw = strings.TrimSuffix(strings.TrimSpace(raw), "/")
	if raw == "" {
		return ""
	}

	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		raw = "https://" + raw
	}

	return raw
}
