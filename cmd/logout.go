package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove stored Flickr credentials",
	RunE: func(cmd *cobra.Command, _ []string) error {
		client, store, err := newClient(cfg, nil)
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		if err := client.Logout(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("Logged out")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
