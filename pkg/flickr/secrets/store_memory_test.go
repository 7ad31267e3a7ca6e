package secrets

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore("flickr")
	ctx := context.Background()

	if err := store.Set(ctx, KeyAccessToken, "tok"); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	got, err := store.Get(ctx, KeyAccessToken)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got != "tok" {
		t.Errorf("Get = %q, want tok", got)
	}

	if err := store.Delete(ctx, KeyAccessToken); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, err := store.Get(ctx, KeyAccessToken); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after Delete = %v, want ErrNotFound", err)
	}
}

func TestMemoryStoreDeleteAbsent(t *testing.T) {
	store := NewMemoryStore("flickr")
	if err := store.Delete(context.Background(), "never-set"); err != nil {
		t.Errorf("deleting an absent key should not error: %v", err)
	}
}

func TestMemoryStoreEmptyKey(t *testing.T) {
	store := NewMemoryStore("flickr")
	ctx := context.Background()

	if err := store.Set(ctx, "", "v"); err == nil {
		t.Error("Set with empty key should error")
	}
	if _, err := store.Get(ctx, ""); err == nil {
		t.Error("Get with empty key should error")
	}
}

func TestMemoryStoreServiceNamespacing(t *testing.T) {
	ctx := context.Background()
	a := NewMemoryStore("service-a")
	b := NewMemoryStore("service-b")

	if err := a.Set(ctx, KeyTokenSecret, "sec"); err != nil {
		t.Fatal(err)
	}
	if _, err := b.Get(ctx, KeyTokenSecret); !errors.Is(err, ErrNotFound) {
		t.Errorf("stores must not share values across services, got err=%v", err)
	}
}
