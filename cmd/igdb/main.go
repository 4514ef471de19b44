package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fivetwenty-io/igdb/cmd/igdb/commands"
	"github.com/fivetwenty-io/igdb/internal/constants"
	"github.com/fivetwenty-io/igdb/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "igdb",
	Short: "IGDB v4 API CLI",
	Long: `A command-line interface for the Internet Game Database (IGDB) v4 API.

Look up games, platforms, companies and related records, run custom
queries, and download cover art, screenshots and other images.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.igdb/config.yml)")
	rootCmd.PersistentFlags().String("client-id", "", "Twitch application client ID")
	rootCmd.PersistentFlags().String("client-secret", "", "Twitch application client secret")
	rootCmd.PersistentFlags().StringP("token", "t", "", "app access token")
	rootCmd.PersistentFlags().StringP("output", "o", constants.FormatTable, "output format (table, json, yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")

	// Bind flags to viper
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag(commands.KeyClientID, rootCmd.PersistentFlags().Lookup("client-id"))
	_ = viper.BindPFlag(commands.KeyClientSecret, rootCmd.PersistentFlags().Lookup("client-secret"))
	_ = viper.BindPFlag(commands.KeyToken, rootCmd.PersistentFlags().Lookup("token"))
	_ = viper.BindPFlag(commands.KeyOutput, rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	commands.SetUserAgent(version)

	// Add commands
	rootCmd.AddCommand(commands.NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(commands.NewConfigCommand())
	rootCmd.AddCommand(commands.NewTokenCommand())
	rootCmd.AddCommand(commands.NewResourceCommands()...)
}

func initConfig() {
	cfgFile := viper.GetString("config")

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		// Search config in ~/.igdb/config.yml
		viper.AddConfigPath(filepath.Join(home, ".igdb"))
		viper.SetConfigType("yml")
		viper.SetConfigName("config")
	}

	// IGDB_CLIENT_ID, IGDB_CLIENT_SECRET, IGDB_TOKEN, ...
	viper.SetEnvPrefix("IGDB")
	viper.AutomaticEnv()

	logging.SetVerbose(viper.GetBool("verbose"))

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil {
		logging.Logger().WithField("file", viper.ConfigFileUsed()).Debug("using config file")
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
