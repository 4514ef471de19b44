//go:build integration

// Package integration holds live tests against the IGDB service.
package integration

import (
	"os"
	"testing"

	"github.com/fivetwenty-io/igdb/pkg/igdb"
	"github.com/fivetwenty-io/igdb/pkg/igdbclient"
	"github.com/stretchr/testify/require"
)

// TestConfig holds configuration for integration tests.
type TestConfig struct {
	ClientID string
	Token    string
}

// LoadTestConfig loads configuration from environment variables.
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		ClientID: os.Getenv(igdbclient.EnvClientID),
		Token:    os.Getenv(igdbclient.EnvToken),
	}
}

// SkipIfMissingConfig skips the test unless live credentials are present.
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if config.ClientID == "" || config.Token == "" {
		t.Skipf("%s and %s not set, skipping integration test", igdbclient.EnvClientID, igdbclient.EnvToken)
	}
}

// NewLiveClient returns a client for the live service or skips the test.
func NewLiveClient(t *testing.T) igdb.Client {
	t.Helper()

	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	client, err := igdbclient.NewWithToken(config.ClientID, config.Token)
	require.NoError(t, err)

	return client
}
