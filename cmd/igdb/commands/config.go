package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fivetwenty-io/igdb/internal/constants"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Configuration keys.
const (
	KeyClientID       = "client_id"
	KeyClientSecret   = "client_secret"
	KeyToken          = "token"
	KeyTokenExpiresAt = "token_expires_at"
	KeyTokenURL       = "token_url"
	KeyBaseURL        = "base_url"
	KeyImageBaseURL   = "image_base_url"
	KeyOutput         = "output"
)

// settableKeys are the keys accepted by "config set" and "config unset".
var settableKeys = []string{
	KeyClientID,
	KeyClientSecret,
	KeyToken,
	KeyTokenURL,
	KeyBaseURL,
	KeyImageBaseURL,
	KeyOutput,
}

// Config represents the CLI configuration file.
type Config struct {
	ClientID       string     `json:"client_id,omitempty"        yaml:"client_id,omitempty"`
	ClientSecret   string     `json:"client_secret,omitempty"    yaml:"client_secret,omitempty"`
	Token          string     `json:"token,omitempty"            yaml:"token,omitempty"`
	TokenExpiresAt *time.Time `json:"token_expires_at,omitempty" yaml:"token_expires_at,omitempty"`
	TokenURL       string     `json:"token_url,omitempty"        yaml:"token_url,omitempty"`
	BaseURL        string     `json:"base_url,omitempty"         yaml:"base_url,omitempty"`
	ImageBaseURL   string     `json:"image_base_url,omitempty"   yaml:"image_base_url,omitempty"`
	Output         string     `json:"output,omitempty"           yaml:"output,omitempty"`
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "View and modify the IGDB CLI configuration stored in $HOME/.igdb/config.yml",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the current CLI configuration with secrets masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			display := *config
			display.ClientSecret = maskSecret(config.ClientSecret)
			display.Token = maskSecret(config.Token)

			return renderOutput(cmd.OutOrStdout(), display, func(table *tablewriter.Table) error {
				table.Header("Property", "Value")

				expires := constants.NotAvailable
				if display.TokenExpiresAt != nil {
					expires = display.TokenExpiresAt.Format(time.RFC3339)
				}

				rows := [][]string{
					{"Client ID", orNotAvailable(display.ClientID)},
					{"Client Secret", orNotAvailable(display.ClientSecret)},
					{"Token", orNotAvailable(display.Token)},
					{"Token Expires", expires},
					{"Token URL", orNotAvailable(display.TokenURL)},
					{"Base URL", orNotAvailable(display.BaseURL)},
					{"Image Base URL", orNotAvailable(display.ImageBaseURL)},
					{"Output", orNotAvailable(display.Output)},
				}

				for _, row := range rows {
					_ = table.Append(row)
				}

				return nil
			})
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  fmt.Sprintf("Set a configuration value. Keys: %v", settableKeys),
		Args:  cobra.ExactArgs(constants.MinimumArgumentCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			err := setConfigValue(config, args[0], args[1])
			if err != nil {
				return err
			}

			err = saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s\n", args[0])

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Unset a configuration value",
		Long:  fmt.Sprintf("Remove a configuration value. Keys: %v", settableKeys),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			err := setConfigValue(config, args[0], "")
			if err != nil {
				return err
			}

			err = saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Unset %s\n", args[0])

			return nil
		},
	}
}

// setConfigValue assigns value to key. An empty value clears the key.
func setConfigValue(config *Config, key, value string) error {
	switch key {
	case KeyClientID:
		config.ClientID = value
	case KeyClientSecret:
		config.ClientSecret = value
	case KeyToken:
		config.Token = value
		config.TokenExpiresAt = nil
	case KeyTokenURL:
		config.TokenURL = value
	case KeyBaseURL:
		config.BaseURL = value
	case KeyImageBaseURL:
		config.ImageBaseURL = value
	case KeyOutput:
		config.Output = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownConfigKey, key)
	}

	return nil
}

// loadConfig reads the effective configuration from viper, which merges
// flags, IGDB_* environment variables and the config file.
func loadConfig() *Config {
	config := &Config{
		ClientID:     viper.GetString(KeyClientID),
		ClientSecret: viper.GetString(KeyClientSecret),
		Token:        viper.GetString(KeyToken),
		TokenURL:     viper.GetString(KeyTokenURL),
		BaseURL:      viper.GetString(KeyBaseURL),
		ImageBaseURL: viper.GetString(KeyImageBaseURL),
		Output:       viper.GetString(KeyOutput),
	}

	if expiresAt := viper.GetTime(KeyTokenExpiresAt); !expiresAt.IsZero() {
		config.TokenExpiresAt = &expiresAt
	}

	return config
}

// configFilePath returns the config file in use, or the default location.
func configFilePath() (string, error) {
	if configFile := viper.ConfigFileUsed(); configFile != "" {
		return configFile, nil
	}

	if configFile := viper.GetString("config"); configFile != "" {
		return configFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, ".igdb", "config.yml"), nil
}

// saveConfigStruct writes config to the config file and reloads viper from it.
func saveConfigStruct(config *Config) error {
	configFile, err := configFilePath()
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(configFile), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	viper.SetConfigFile(configFile)
	viper.SetConfigType("yml")

	err = viper.ReadInConfig()
	if err != nil {
		return fmt.Errorf("failed to reload config: %w", err)
	}

	return nil
}
