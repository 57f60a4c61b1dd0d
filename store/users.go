package store

import (
	"context"

	"github.com/evomarket/evomarket-go/model"
)

// SaveUser persists the user profile.
func SaveUser(ctx context.Context, b Backend, user model.User) error {
	return setJSON(ctx, b, KeyUser, user)
}

// GetUser returns the persisted user profile, or nil if none is stored.
func GetUser(ctx context.Context, b Backend) (*model.User, error) {
	var user model.User
	ok, err := getJSON(ctx, b, KeyUser, &user)
	if err != nil || !ok {
		return nil, err
	}
	return &user, nil
}

// UpdateUser merges a partial update into the persisted profile.
// A no-op when no profile is stored.
func UpdateUser(ctx context.Context, b Backend, update model.UserUpdate) error {
	user, err := GetUser(ctx, b)
	if err != nil || user == nil {
		return err
	}
	update.Apply(user)
	return SaveUser(ctx, b, *user)
}

// RemoveUser deletes the persisted user profile.
func RemoveUser(ctx context.Context, b Backend) error {
	return b.Delete(ctx, KeyUser)
}
