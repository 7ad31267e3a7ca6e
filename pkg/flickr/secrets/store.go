// Package secrets provides pluggable storage for long-lived OAuth
// credentials. It separates credential persistence from the handshake
// logic, enabling reuse across CLI tools, daemons, and tests.
package secrets

import (
	"context"
	"errors"
)

// Well-known keys stored under a service namespace.
const (
	KeyAccessToken = "access_token"
	KeyTokenSecret = "token_secret"
	KeyCurrentUser = "current_user"
)

// ErrNotFound is returned by Get when no value exists for the key.
var ErrNotFound = errors.New("secret not found")

// Store defines the interface for credential persistence backends.
// Implementations can use files, databases, OS keychains, etc. All
// keys are namespaced under the service identifier the store was
// constructed with.
type Store interface {
	// Set saves a value under the given key
	Set(ctx context.Context, key, value string) error

	// Get retrieves a value by key; ErrNotFound if absent
	Get(ctx context.Context, key string) (string, error)

	// Delete removes a key; deleting an absent key is not an error
	Delete(ctx context.Context, key string) error

	// Close cleans up storage resources
	Close() error
}
