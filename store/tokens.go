package store

import (
	"context"

	"github.com/evomarket/evomarket-go/model"
)

// SaveTokens persists the bearer and refresh tokens.
func SaveTokens(ctx context.Context, b Backend, tokens model.Tokens) error {
	return setJSON(ctx, b, KeyTokens, tokens)
}

// GetTokens returns the persisted tokens, or nil if none are stored.
func GetTokens(ctx context.Context, b Backend) (*model.Tokens, error) {
	var tokens model.Tokens
	ok, err := getJSON(ctx, b, KeyTokens, &tokens)
	if err != nil || !ok {
		return nil, err
	}
	return &tokens, nil
}

// SetAccessToken replaces only the access token, keeping the refresh token.
// Used after a successful token refresh.
func SetAccessToken(ctx context.Context, b Backend, access string) error {
	tokens, err := GetTokens(ctx, b)
	if err != nil {
		return err
	}
	if tokens == nil {
		tokens = &model.Tokens{}
	}
	tokens.Access = access
	return SaveTokens(ctx, b, *tokens)
}

// ClearTokens deletes the persisted tokens.
func ClearTokens(ctx context.Context, b Backend) error {
	return b.Delete(ctx, KeyTokens)
}
