package store

import (
	"context"
	"strings"
)

// MaxSearches is the number of recent search queries kept.
const MaxSearches = 10

// SaveSearch records a search query at the front of the history.
// Blank queries are ignored; an existing entry moves to the front.
func SaveSearch(ctx context.Context, b Backend, query string) error {
	if strings.TrimSpace(query) == "" {
		return nil
	}

	searches, err := Searches(ctx, b)
	if err != nil {
		return err
	}

	updated := make([]string, 0, len(searches)+1)
	updated = append(updated, query)
	for _, s := range searches {
		if s != query {
			updated = append(updated, s)
		}
	}
	if len(updated) > MaxSearches {
		updated = updated[:MaxSearches]
	}

	return setJSON(ctx, b, KeySearches, updated)
}

// Searches returns the stored search history, most recent first.
func Searches(ctx context.Context, b Backend) ([]string, error) {
	var searches []string
	if _, err := getJSON(ctx, b, KeySearches, &searches); err != nil {
		return nil, err
	}
	return searches, nil
}

// ClearSearches deletes the search history.
func ClearSearches(ctx context.Context, b Backend) error {
	return b.Delete(ctx, KeySearches)
}
