// Package store implements the persisted key-value store for the client:
// six independently keyed collections, each holding one serialized
// aggregate value, plus individually keyed image blobs. The Backend
// interface is the injectable storage port; production binds it to SQLite,
// tests to the in-memory implementation.
package store

import (
	"context"
	"encoding/json"
	"fmt"
)

// Collection keys. Each holds one serialized aggregate value.
const (
	KeyUser           = "user"
	KeyTokens         = "tokens"
	KeyProducts       = "products"
	KeyNotifications  = "notifications"
	KeySearches       = "searches"
	KeyRecentlyViewed = "recently_viewed"
	KeyWishlist       = "wishlist"

	// ImageKeyPrefix namespaces stored image blobs.
	ImageKeyPrefix = "image/"
)

// Backend is the storage port. Get returns (nil, nil) for a missing key.
// Writes are synchronous: a Set must be visible to any subsequent Get
// within the same process.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	DeleteAll(ctx context.Context) error
}

// PurgeAll removes every persisted entry. Used on logout and on session
// expiry so no stale credentials or cached data survive.
func PurgeAll(ctx context.Context, b Backend) error {
	if err := b.DeleteAll(ctx); err != nil {
		return fmt.Errorf("purging store: %w", err)
	}
	return nil
}

// getJSON loads and decodes the value under key. Returns false if absent.
func getJSON(ctx context.Context, b Backend, key string, out any) (bool, error) {
	data, err := b.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("getting %s: %w", key, err)
	}
	if data == nil {
		return false, nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("decoding %s: %w", key, err)
	}
	return true, nil
}

// setJSON encodes and stores the value under key.
func setJSON(ctx context.Context, b Backend, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := b.Set(ctx, key, data); err != nil {
		return fmt.Errorf("setting %s: %w", key, err)
	}
	return nil
}
