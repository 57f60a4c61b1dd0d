package model

// SearchFilters specifies a product filter. Empty string fields mean
// "match anything" for their predicate.
type SearchFilters struct {
	Query     string  `json:"query"`
	Category  string  `json:"category"`
	MinPrice  float64 `json:"minPrice"`
	MaxPrice  float64 `json:"maxPrice"`
	Condition string  `json:"condition"`
	SortBy    string  `json:"sortBy"`
	Location  string  `json:"location"`
}

// Sort keys.
const (
	SortPriceAsc   = "price-asc"
	SortPriceDesc  = "price-desc"
	SortDateDesc   = "date-desc"
	SortPopularity = "popularity"
)

// DefaultMaxPrice is the upper price bound when no filter is set.
const DefaultMaxPrice = 10000

// DefaultFilters returns the filter state a fresh browse view starts with.
func DefaultFilters() SearchFilters {
	return SearchFilters{
		MaxPrice: DefaultMaxPrice,
		SortBy:   SortDateDesc,
	}
}
