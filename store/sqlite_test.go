package store

import (
	"bytes"
	"context"
	"testing"

	"github.com/evomarket/evomarket-go/db"
	"github.com/evomarket/evomarket-go/model"
)

func TestSQLiteBackend(t *testing.T) {
	b := NewSQLite(db.NewTestDB(t))
	ctx := context.Background()

	// Missing key.
	got, err := b.Get(ctx, "nope")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != nil {
		t.Error("expected nil for missing key")
	}

	// Set then read back.
	if err := b.Set(ctx, "k", []byte("v1")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, _ = b.Get(ctx, "k")
	if !bytes.Equal(got, []byte("v1")) {
		t.Errorf("expected 'v1', got %q", got)
	}

	// Overwrite.
	b.Set(ctx, "k", []byte("v2"))
	got, _ = b.Get(ctx, "k")
	if !bytes.Equal(got, []byte("v2")) {
		t.Errorf("expected 'v2' after overwrite, got %q", got)
	}

	// Delete.
	if err := b.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	got, _ = b.Get(ctx, "k")
	if got != nil {
		t.Error("expected nil after delete")
	}

	// DeleteAll.
	b.Set(ctx, "a", []byte("1"))
	b.Set(ctx, "b", []byte("2"))
	if err := b.DeleteAll(ctx); err != nil {
		t.Fatalf("DeleteAll: %v", err)
	}
	got, _ = b.Get(ctx, "a")
	if got != nil {
		t.Error("expected empty store after DeleteAll")
	}
}

func TestSQLiteBackendCollections(t *testing.T) {
	b := NewSQLite(db.NewTestDB(t))
	ctx := context.Background()

	user := model.User{ID: "u1", Name: "Alice", Email: "alice@example.com"}
	if err := SaveUser(ctx, b, user); err != nil {
		t.Fatalf("SaveUser: %v", err)
	}

	got, err := GetUser(ctx, b)
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if got == nil || got.Email != "alice@example.com" {
		t.Errorf("expected persisted user, got %+v", got)
	}

	id, err := SaveImage(ctx, b, []byte{0xff, 0xd8, 0xff})
	if err != nil {
		t.Fatalf("SaveImage: %v", err)
	}
	data, err := Image(ctx, b, id)
	if err != nil {
		t.Fatalf("Image: %v", err)
	}
	if len(data) != 3 {
		t.Errorf("expected 3 blob bytes, got %d", len(data))
	}
}
