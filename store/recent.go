package store

import "context"

// MaxRecentlyViewed is the number of recently viewed product IDs kept.
const MaxRecentlyViewed = 20

// SaveRecentlyViewed records a product view. The ID moves to the front of
// the list without duplication; the list is capped at MaxRecentlyViewed.
func SaveRecentlyViewed(ctx context.Context, b Backend, productID string) error {
	viewed, err := RecentlyViewed(ctx, b)
	if err != nil {
		return err
	}

	updated := make([]string, 0, len(viewed)+1)
	updated = append(updated, productID)
	for _, id := range viewed {
		if id != productID {
			updated = append(updated, id)
		}
	}
	if len(updated) > MaxRecentlyViewed {
		updated = updated[:MaxRecentlyViewed]
	}

	return setJSON(ctx, b, KeyRecentlyViewed, updated)
}

// RecentlyViewed returns the viewed product IDs, most recent first.
func RecentlyViewed(ctx context.Context, b Backend) ([]string, error) {
	var viewed []string
	if _, err := getJSON(ctx, b, KeyRecentlyViewed, &viewed); err != nil {
		return nil, err
	}
	return viewed, nil
}

// ClearRecentlyViewed deletes the recently viewed list.
func ClearRecentlyViewed(ctx context.Context, b Backend) error {
	return b.Delete(ctx, KeyRecentlyViewed)
}
