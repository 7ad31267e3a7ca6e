package cmd

import (
	"errors"
	"fmt"

	"github.com/pictag/pictag/pkg/flickr/oauth"
	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the authenticated Flickr user",
	RunE: func(cmd *cobra.Command, _ []string) error {
		client, store, err := newClient(cfg, nil)
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		user, err := client.CurrentUser(cmd.Context())
		if errors.Is(err, oauth.ErrNotAuthenticated) {
			fmt.Println("Not logged in")
			return nil
		}
		if err != nil {
			return err
		}

		fmt.Printf("%s (%s): %s\n", user.Username, user.ID, user.Fullname)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
