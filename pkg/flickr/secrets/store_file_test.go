package secrets

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStorePersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store := NewFileStore(dir, "flickr")
	if err := store.Set(ctx, KeyAccessToken, "tok"); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if err := store.Set(ctx, KeyTokenSecret, "sec"); err != nil {
		t.Fatalf("Set error: %v", err)
	}

	reopened := NewFileStore(dir, "flickr")
	got, err := reopened.Get(ctx, KeyAccessToken)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got != "tok" {
		t.Errorf("Get = %q, want tok", got)
	}
}

func TestFileStoreDelete(t *testing.T) {
	store := NewFileStore(t.TempDir(), "flickr")
	ctx := context.Background()

	if err := store.Set(ctx, KeyAccessToken, "tok"); err != nil {
		t.Fatal(err)
	}
	if err := store.Delete(ctx, KeyAccessToken); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, err := store.Get(ctx, KeyAccessToken); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after Delete = %v, want ErrNotFound", err)
	}

	if err := store.Delete(ctx, "never-set"); err != nil {
		t.Errorf("deleting an absent key should not error: %v", err)
	}
}

func TestFileStoreMissingFile(t *testing.T) {
	store := NewFileStore(t.TempDir(), "flickr")
	if _, err := store.Get(context.Background(), KeyAccessToken); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get on fresh store = %v, want ErrNotFound", err)
	}
}

func TestFileStoreFilePermissions(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir, "flickr")
	if err := store.Set(context.Background(), KeyTokenSecret, "sec"); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(filepath.Join(dir, "flickr.json"))
	if err != nil {
		t.Fatalf("stat secrets file: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("secrets file mode = %o, want 0600", perm)
	}
}

func TestFileStoreSanitizesService(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir, "../escape/attempt")
	if err := store.Set(context.Background(), KeyAccessToken, "tok"); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one file inside the store dir, found %d", len(entries))
	}
}
