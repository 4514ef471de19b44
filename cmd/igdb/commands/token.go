package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fivetwenty-io/igdb/internal/constants"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// ErrClientSecretNotConfigured is returned when a token refresh has no secret to use.
var ErrClientSecretNotConfigured = errors.New("client secret not configured, use 'igdb config set client_secret VALUE' or IGDB_CLIENT_SECRET")

// TokenStatus describes the saved access token.
type TokenStatus struct {
	Configured  bool       `json:"configured"           yaml:"configured"`
	Token       string     `json:"token,omitempty"      yaml:"token,omitempty"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty" yaml:"expires_at,omitempty"`
	Expired     bool       `json:"expired"              yaml:"expired"`
	Refreshable bool       `json:"refreshable"          yaml:"refreshable"`
}

// NewTokenCommand creates the token command group.
func NewTokenCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Manage access tokens",
		Long:  "Show, refresh, and store the Twitch access token used to call IGDB",
	}

	cmd.AddCommand(newTokenStatusCommand())
	cmd.AddCommand(newTokenRefreshCommand())
	cmd.AddCommand(newTokenSetCommand())

	return cmd
}

func newTokenStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show token status and expiration",
		Long:  "Display information about the saved access token including its expiration time",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			status := buildTokenStatus(config, time.Now())

			return renderOutput(cmd.OutOrStdout(), status, func(table *tablewriter.Table) error {
				table.Header("Property", "Value")

				expires := constants.NotAvailable
				if status.ExpiresAt != nil {
					expires = status.ExpiresAt.Format(time.RFC3339)
				}

				_ = table.Append("Configured", fmt.Sprint(status.Configured))
				_ = table.Append("Token", orNotAvailable(status.Token))
				_ = table.Append("Expires", expires)
				_ = table.Append("Expired", fmt.Sprint(status.Expired))
				_ = table.Append("Refreshable", fmt.Sprint(status.Refreshable))

				return nil
			})
		},
	}
}

func newTokenRefreshCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Fetch a new access token",
		Long:  "Request a new app access token with the client credentials grant and save it to the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			if config.ClientID == "" {
				return ErrClientIDNotConfigured
			}

			if config.ClientSecret == "" {
				return ErrClientSecretNotConfigured
			}

			tokenManager := newConfigTokenManager(config)

			err := tokenManager.RefreshToken(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to refresh token: %w", err)
			}

			expiry := tokenManager.GetTokenExpiry()
			if expiry.IsZero() {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Token refreshed")

				return nil
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Token refreshed, expires at %s\n", expiry.UTC().Format(time.RFC3339))

			return nil
		},
	}
}

func newTokenSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set [TOKEN]",
		Short: "Store an access token",
		Long:  "Save an existing access token to the config file. Without an argument the token is read from the terminal or stdin.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var token string

			if len(args) == 1 {
				token = args[0]
			} else {
				var err error

				token, err = readSecret(cmd.InOrStdin(), cmd.ErrOrStderr(), "Access token: ")
				if err != nil {
					return err
				}
			}

			token = strings.TrimSpace(token)
			if token == "" {
				return ErrEmptyToken
			}

			err := NewConfigPersister().UpdateToken(token, time.Time{})
			if err != nil {
				return fmt.Errorf("failed to save token: %w", err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Token saved")

			return nil
		},
	}
}

// readSecret reads a secret without echo when stdin is a terminal, and a
// single line from in otherwise.
func readSecret(in io.Reader, prompt io.Writer, label string) (string, error) {
	fd := int(os.Stdin.Fd())

	if in == os.Stdin && term.IsTerminal(fd) {
		_, _ = fmt.Fprint(prompt, label)

		secret, err := term.ReadPassword(fd)
		_, _ = fmt.Fprintln(prompt)

		if err != nil {
			return "", fmt.Errorf("failed to read token: %w", err)
		}

		return string(secret), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read token: %w", err)
	}

	return line, nil
}

// buildTokenStatus summarizes the saved token at now.
func buildTokenStatus(config *Config, now time.Time) TokenStatus {
	status := TokenStatus{
		Configured:  config.Token != "",
		Token:       maskSecret(config.Token),
		ExpiresAt:   config.TokenExpiresAt,
		Refreshable: config.ClientID != "" && config.ClientSecret != "",
	}

	if config.TokenExpiresAt != nil {
		status.Expired = !now.Add(constants.TokenExpirationBuffer).Before(*config.TokenExpiresAt)
	}

	return status
}
