package store

import (
	"context"

	"github.com/google/uuid"
)

// SaveImage stores an image blob under a generated identifier and returns
// the identifier. The blob is opaque; no decoding or transformation.
func SaveImage(ctx context.Context, b Backend, data []byte) (string, error) {
	id := "img_" + uuid.NewString()
	if err := b.Set(ctx, ImageKeyPrefix+id, data); err != nil {
		return "", err
	}
	return id, nil
}

// Image returns a stored image blob, or nil if absent.
func Image(ctx context.Context, b Backend, id string) ([]byte, error) {
	return b.Get(ctx, ImageKeyPrefix+id)
}

// RemoveImage deletes a stored image blob.
func RemoveImage(ctx context.Context, b Backend, id string) error {
	return b.Delete(ctx, ImageKeyPrefix+id)
}
