package secrets

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	// SQLite driver
	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS secrets (
	service    TEXT NOT NULL,
	key        TEXT NOT NULL,
	value      TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL,
	PRIMARY KEY (service, key)
)`

// SQLiteStore implements Store using a local SQLite database. This is
// suitable when several tools share one credential database.
type SQLiteStore struct {
	db      *sql.DB
	service string
}

// NewSQLiteStore opens (creating if needed) a SQLite-backed secret
// store at path, namespaced under the given service identifier.
func NewSQLiteStore(path, service string) (*SQLiteStore, error) {
	// SQLite doesn't benefit from connection pooling
	if !strings.Contains(path, "?") {
		path += "?_busy_timeout=10000&_journal_mode=WAL"
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open secrets database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping secrets database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize secrets schema: %w", err)
	}

	return &SQLiteStore{db: db, service: service}, nil
}

// Set saves a value under the given key.
func (s *SQLiteStore) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return fmt.Errorf("secret key cannot be empty")
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO secrets (service, key, value, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT (service, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		s.service, key, value, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to store secret: %w", err)
	}
	return nil
}

// Get retrieves a value by key.
func (s *SQLiteStore) Get(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", fmt.Errorf("secret key cannot be empty")
	}

	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM secrets WHERE service = ? AND key = ?`,
		s.service, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to load secret: %w", err)
	}
	return value, nil
}

// Delete removes a key.
func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	if key == "" {
		return fmt.Errorf("secret key cannot be empty")
	}

	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM secrets WHERE service = ? AND key = ?`,
		s.service, key); err != nil {
		return fmt.Errorf("failed to delete secret: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
