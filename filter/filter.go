// Package filter implements the client-side product selection pipeline:
// predicate matching, stable sorting, the comparison subset, and search
// suggestions. Everything here is pure; inputs are never mutated.
package filter

import (
	"sort"
	"strings"

	"github.com/evomarket/evomarket-go/model"
)

// Select returns the products matching every filter predicate, stably
// sorted by the filter's sort key. Ties keep their input order, so
// repeated calls with identical inputs return identical orderings.
func Select(products []model.Product, f model.SearchFilters) []model.Product {
	var matched []model.Product
	for _, p := range products {
		if Matches(p, f) {
			matched = append(matched, p)
		}
	}

	sort.SliceStable(matched, less(f.SortBy, matched))
	return matched
}

// Matches reports whether a product satisfies all five filter predicates.
func Matches(p model.Product, f model.SearchFilters) bool {
	if f.Query != "" && !containsFold(p.Title, f.Query) && !containsFold(p.Description, f.Query) {
		return false
	}
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if p.Price < f.MinPrice || p.Price > f.MaxPrice {
		return false
	}
	if f.Condition != "" && p.Condition != f.Condition {
		return false
	}
	if f.Location != "" && (p.Location == "" || !containsFold(p.Location, f.Location)) {
		return false
	}
	return true
}

// less returns the comparison for the sort key. Unknown keys fall back to
// newest-first, matching the browse view's default.
func less(sortBy string, products []model.Product) func(i, j int) bool {
	switch sortBy {
	case model.SortPriceAsc:
		return func(i, j int) bool { return products[i].Price < products[j].Price }
	case model.SortPriceDesc:
		return func(i, j int) bool { return products[i].Price > products[j].Price }
	case model.SortPopularity:
		return func(i, j int) bool { return products[i].Views > products[j].Views }
	default:
		return func(i, j int) bool { return products[i].CreatedAt.After(products[j].CreatedAt) }
	}
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
