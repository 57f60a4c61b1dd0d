package filter

import (
	"sort"

	"github.com/evomarket/evomarket-go/model"
)

// TrendingSearches is the fixed trending-terms list shown in the search
// dropdown.
var TrendingSearches = []string{
	"iPhone 15",
	"MacBook Pro",
	"Gaming Chair",
	"Web Development",
	"Mountain Bike",
}

// maxTrendingShown caps the trending list shown for an empty query.
const maxTrendingShown = 5

// Suggestions is what the search dropdown renders for a query.
type Suggestions struct {
	// Matches holds trending terms matching a non-empty query.
	Matches []string
	// Trending and Recent are shown for an empty query, sourced
	// independently of each other.
	Trending []string
	Recent   []string
}

// Suggest computes search suggestions. A non-empty query returns the
// case-insensitive substring matches from the trending list; an empty
// query returns the trending list (capped) and the recent searches.
func Suggest(query string, trending, recent []string) Suggestions {
	if query != "" {
		var matches []string
		for _, term := range trending {
			if containsFold(term, query) {
				matches = append(matches, term)
			}
		}
		return Suggestions{Matches: matches}
	}

	shown := trending
	if len(shown) > maxTrendingShown {
		shown = shown[:maxTrendingShown]
	}
	return Suggestions{Trending: shown, Recent: recent}
}

// Featured returns up to six boosted products, preserving input order.
func Featured(products []model.Product) []model.Product {
	var featured []model.Product
	for _, p := range products {
		if p.IsBoosted {
			featured = append(featured, p)
			if len(featured) == 6 {
				break
			}
		}
	}
	return featured
}

// Trending returns up to eight products by view count, most viewed first.
// The input slice is not reordered.
func Trending(products []model.Product) []model.Product {
	byViews := make([]model.Product, len(products))
	copy(byViews, products)
	sort.SliceStable(byViews, func(i, j int) bool {
		return byViews[i].Views > byViews[j].Views
	})
	if len(byViews) > 8 {
		byViews = byViews[:8]
	}
	return byViews
}
