// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the hub-scout CLI.
// See docs/ARCHITECTURE.md § CLI Surface.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/awacke1/hub-scout/internal/secrets"
	"github.com/awacke1/hub-scout/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds credentials loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the hub-scout CLI.
var rootCmd = &cobra.Command{
	Use:   "hub-scout",
	Short: "Browse the Hugging Face Hub from the terminal",
	Long: `hub-scout searches the Hugging Face Hub catalog for models, datasets,
and spaces, renders the results with their hub links, summarizes each
result set (item count, distinct authors, total downloads, per-kind
breakdown), and looks up per-item metadata cards.

Use the search and metadata subcommands for one-shot queries, or serve
to run the interactive browser.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./hub-scout.yaml or ~/.config/hub-scout/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("hub-scout")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "hub-scout"))
		}
	}

	viper.SetDefault("catalog.timeout", 30*time.Second)
	viper.SetDefault("catalog.user_agent", "hub-scout/"+version)
	viper.SetDefault("catalog.max_results", 20)
	viper.SetDefault("server.addr", ":8080")
	viper.SetDefault("server.default_query", "awacke1")
	viper.SetDefault("server.default_kind", string(types.KindModels))

	viper.SetEnvPrefix("HUB_SCOUT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// catalogConfig assembles the catalog client settings from config, env,
// flags, and the secrets directory, in that order of increasing
// precedence for the token.
func catalogConfig(cmd *cobra.Command) types.CatalogConfig {
	cfg := types.CatalogConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("catalog.timeout"),
			UserAgent: viper.GetString("catalog.user_agent"),
		},
		Endpoint:   viper.GetString("catalog.endpoint"),
		Token:      viper.GetString("catalog.token"),
		MaxResults: viper.GetInt("catalog.max_results"),
	}

	if cfg.Token == "" {
		cfg.Token = loadedSecrets[secrets.HubTokenKey]
	}
	if limit, _ := cmd.Flags().GetInt("limit"); limit > 0 {
		cfg.MaxResults = limit
	}
	return cfg
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
