package cmd

import (
	"os"

	"github.com/pictag/pictag/internal/config"
	"github.com/pictag/pictag/internal/logger"
	"github.com/spf13/cobra"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "pictag",
	Short: "pictag CLI",
	Long:  `pictag — photo tagging companion with Flickr OAuth 1.0a authentication`,
}

func Execute(c *config.Config) {
	cfg = c
	if err := rootCmd.Execute(); err != nil {
		logger.Error("CLI error", "error", err)
		os.Exit(1)
	}
}
