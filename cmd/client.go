package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/pictag/pictag/internal/config"
	"github.com/pictag/pictag/internal/logger"
	"github.com/pictag/pictag/pkg/flickr/oauth"
	"github.com/pictag/pictag/pkg/flickr/secrets"
)

// serviceName namespaces every credential we persist.
const serviceName = "flickr"

func newStore(cfg *config.Config) (secrets.Store, error) {
	switch cfg.StoreBackend {
	case "memory":
		return secrets.NewMemoryStore(serviceName), nil
	case "sqlite":
		return secrets.NewSQLiteStore(filepath.Join(cfg.StorePath, "secrets.db"), serviceName)
	case "file":
		return secrets.NewFileStore(cfg.StorePath, serviceName), nil
	default:
		return nil, fmt.Errorf("unknown store backend: %s", cfg.StoreBackend)
	}
}

func newClient(cfg *config.Config, surface oauth.AuthorizationSurface) (*oauth.Client, secrets.Store, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}
	store, err := newStore(cfg)
	if err != nil {
		return nil, nil, err
	}

	client, err := oauth.NewClient(oauth.Config{
		Credentials: oauth.Credentials{
			Key:         cfg.FlickrKey,
			Secret:      cfg.FlickrSecret,
			CallbackURL: cfg.CallbackURL,
		},
		Store:   store,
		Surface: surface,
		Logger:  logger.Logger(),
	})
	if err != nil {
		_ = store.Close()
		return nil, nil, err
	}
	return client, store, nil
}
