package store

import "context"

// AddToWishlist adds a product to the wishlist. An existing entry moves to
// the front instead of being duplicated. The wishlist is unbounded.
func AddToWishlist(ctx context.Context, b Backend, productID string) error {
	wishlist, err := Wishlist(ctx, b)
	if err != nil {
		return err
	}

	updated := make([]string, 0, len(wishlist)+1)
	updated = append(updated, productID)
	for _, id := range wishlist {
		if id != productID {
			updated = append(updated, id)
		}
	}

	return setJSON(ctx, b, KeyWishlist, updated)
}

// RemoveFromWishlist removes a product from the wishlist.
func RemoveFromWishlist(ctx context.Context, b Backend, productID string) error {
	wishlist, err := Wishlist(ctx, b)
	if err != nil {
		return err
	}

	kept := wishlist[:0]
	for _, id := range wishlist {
		if id != productID {
			kept = append(kept, id)
		}
	}

	return setJSON(ctx, b, KeyWishlist, kept)
}

// Wishlist returns the wishlisted product IDs, most recent first.
func Wishlist(ctx context.Context, b Backend) ([]string, error) {
	var wishlist []string
	if _, err := getJSON(ctx, b, KeyWishlist, &wishlist); err != nil {
		return nil, err
	}
	return wishlist, nil
}

// InWishlist checks whether a product is wishlisted.
func InWishlist(ctx context.Context, b Backend, productID string) (bool, error) {
	wishlist, err := Wishlist(ctx, b)
	if err != nil {
		return false, err
	}
	for _, id := range wishlist {
		if id == productID {
			return true, nil
		}
	}
	return false, nil
}

// ClearWishlist deletes the wishlist.
func ClearWishlist(ctx context.Context, b Backend) error {
	return b.Delete(ctx, KeyWishlist)
}
