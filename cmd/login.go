package cmd

import (
	"fmt"

	"github.com/pictag/pictag/internal/console"
	"github.com/pictag/pictag/pkg/flickr/oauth"
	"github.com/spf13/cobra"
)

var loginPerms string

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate with Flickr",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if loginPerms == "" {
			loginPerms = cfg.Perms
		}

		client, store, err := newClient(cfg, &console.Surface{})
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		grant, err := client.Authenticate(cmd.Context(), oauth.Permission(loginPerms))
		if err != nil {
			return err
		}

		fmt.Printf("Logged in as %s (%s)\n", grant.User.Username, grant.User.ID)
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginPerms, "perms", "", "permission level: read, write or delete (default from config)")
	rootCmd.AddCommand(loginCmd)
}
