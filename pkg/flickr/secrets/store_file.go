package secrets

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// FileStore implements Store using the local filesystem: one JSON
// document per service under a private directory. This is suitable for
// CLI applications and desktop apps; values persist across restarts.
// It is a generic stand-in for a platform keychain.
type FileStore struct {
	baseDir string
	service string

	mu sync.Mutex
}

// NewFileStore creates a new file-based secret store rooted at baseDir,
// namespaced under the given service identifier.
func NewFileStore(baseDir, service string) *FileStore {
	return &FileStore{
		baseDir: baseDir,
		service: service,
	}
}

// Set saves a value under the given key.
func (f *FileStore) Set(_ context.Context, key, value string) error {
	if key == "" {
		return fmt.Errorf("secret key cannot be empty")
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.read()
	if err != nil {
		return err
	}
	values[key] = value
	return f.write(values)
}

// Get retrieves a value by key.
func (f *FileStore) Get(_ context.Context, key string) (string, error) {
	if key == "" {
		return "", fmt.Errorf("secret key cannot be empty")
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.read()
	if err != nil {
		return "", err
	}
	value, exists := values[key]
	if !exists {
		return "", ErrNotFound
	}
	return value, nil
}

// Delete removes a key.
func (f *FileStore) Delete(_ context.Context, key string) error {
	if key == "" {
		return fmt.Errorf("secret key cannot be empty")
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.read()
	if err != nil {
		return err
	}
	if _, exists := values[key]; !exists {
		return nil
	}
	delete(values, key)
	return f.write(values)
}

// Close cleans up storage resources (no-op for file storage).
func (f *FileStore) Close() error {
	return nil
}

// read loads the service document, returning an empty map if the file
// does not exist yet.
func (f *FileStore) read() (map[string]string, error) {
	jsonData, err := os.ReadFile(f.filePath())
	if os.IsNotExist(err) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read secrets file: %w", err)
	}

	values := map[string]string{}
	if err := json.Unmarshal(jsonData, &values); err != nil {
		return nil, fmt.Errorf("failed to deserialize secrets file: %w", err)
	}
	return values, nil
}

func (f *FileStore) write(values map[string]string) error {
	if err := os.MkdirAll(f.baseDir, 0700); err != nil {
		return fmt.Errorf("failed to create secrets directory: %w", err)
	}

	jsonData, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize secrets: %w", err)
	}

	if err := os.WriteFile(f.filePath(), jsonData, 0600); err != nil {
		return fmt.Errorf("failed to write secrets file: %w", err)
	}
	return nil
}

// filePath returns the document path for this service.
func (f *FileStore) filePath() string {
	return filepath.Join(f.baseDir, sanitizeService(f.service)+".json")
}

// sanitizeService removes path separators from service identifiers.
func sanitizeService(service string) string {
	sanitized := strings.ReplaceAll(service, "/", "_")
	sanitized = strings.ReplaceAll(sanitized, "\\", "_")
	sanitized = strings.ReplaceAll(sanitized, "..", "_")
	return sanitized
}
