// Package cmd implements the CLI commands for the ebay-importer server.
package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "ebay-importer",
	Short: "Import eBay listings into Shopify stores",
	Long: "An API-first service that scrapes eBay product listings, applies per-shop " +
		"pricing rules, creates the products on Shopify via the Admin API, and keeps " +
		"imported prices in sync with the source listings.",
}

func init() {
	cobra.OnInitialize(loadDotEnv)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
}

// loadDotEnv populates the environment from a local .env file so that
// ${VAR} references in the YAML config resolve during development.
func loadDotEnv() {
	_ = godotenv.Load()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
