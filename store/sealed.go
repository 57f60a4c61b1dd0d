package store

import (
	"context"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"
)

// Sealed decorates a Backend so values are encrypted at rest. The local
// store holds bearer and refresh tokens alongside the cached profile, so
// deployments that cannot trust the file location derive a key from a
// device secret and wrap their backend with NewSealed.
type Sealed struct {
	inner Backend
	aead  cipher.AEAD
}

// NewSealed wraps a backend with at-rest encryption. The key is derived
// from the secret with HKDF-SHA256 so any passphrase length is accepted.
func NewSealed(inner Backend, secret []byte) (*Sealed, error) {
	key := make([]byte, chacha20poly1305.KeySize)
	kdf := hkdf.New(sha256.New, secret, nil, []byte("evomarket store seal"))
	if _, err := io.ReadFull(kdf, key); err != nil {
		return nil, fmt.Errorf("deriving seal key: %w", err)
	}

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}

	return &Sealed{inner: inner, aead: aead}, nil
}

func (s *Sealed) Get(ctx context.Context, key string) ([]byte, error) {
	sealed, err := s.inner.Get(ctx, key)
	if err != nil || sealed == nil {
		return nil, err
	}
	if len(sealed) < chacha20poly1305.NonceSize {
		return nil, fmt.Errorf("sealed value for %q is truncated", key)
	}

	nonce, ciphertext := sealed[:chacha20poly1305.NonceSize], sealed[chacha20poly1305.NonceSize:]
	plaintext, err := s.aead.Open(nil, nonce, ciphertext, []byte(key))
	if err != nil {
		return nil, fmt.Errorf("unsealing %q: %w", key, err)
	}
	return plaintext, nil
}

func (s *Sealed) Set(ctx context.Context, key string, value []byte) error {
	nonce := make([]byte, chacha20poly1305.NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return fmt.Errorf("generating nonce: %w", err)
	}

	// The key is bound as additional data so values cannot be swapped
	// between collections.
	sealed := s.aead.Seal(nonce, nonce, value, []byte(key))
	return s.inner.Set(ctx, key, sealed)
}

func (s *Sealed) Delete(ctx context.Context, key string) error {
	return s.inner.Delete(ctx, key)
}

func (s *Sealed) DeleteAll(ctx context.Context) error {
	return s.inner.DeleteAll(ctx)
}
