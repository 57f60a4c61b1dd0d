package filter

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/evomarket/evomarket-go/model"
)

var t0 = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func product(id string, price float64, createdAt time.Time) model.Product {
	return model.Product{
		ID:        id,
		Title:     "Product " + id,
		Price:     price,
		Category:  "Electronics",
		Condition: model.ConditionUsed,
		CreatedAt: createdAt,
	}
}

func TestSelectDefaultsReturnEverything(t *testing.T) {
	products := []model.Product{
		product("1", 50, t0),
		product("2", 200, t0.Add(time.Hour)),
		product("3", 9999, t0.Add(2*time.Hour)),
	}

	got := Select(products, model.DefaultFilters())
	if len(got) != 3 {
		t.Fatalf("expected all 3 products, got %d", len(got))
	}
	// Default sort is newest first.
	if got[0].ID != "3" || got[2].ID != "1" {
		t.Errorf("expected date-desc order [3 2 1], got [%s %s %s]", got[0].ID, got[1].ID, got[2].ID)
	}
}

func TestSelectExampleScenario(t *testing.T) {
	products := []model.Product{
		product("1", 50, t0),
		product("2", 200, t0.Add(time.Hour)),
	}
	filters := model.SearchFilters{MaxPrice: 1000, SortBy: model.SortPriceAsc}

	got := Select(products, filters)
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "2" {
		t.Errorf("price-asc: expected [1 2], got %v", ids(got))
	}

	filters.SortBy = model.SortDateDesc
	got = Select(products, filters)
	if len(got) != 2 || got[0].ID != "2" || got[1].ID != "1" {
		t.Errorf("date-desc: expected [2 1], got %v", ids(got))
	}
}

func TestSelectQueryMatchesTitleOrDescription(t *testing.T) {
	products := []model.Product{
		{ID: "1", Title: "MacBook Pro", Price: 500, CreatedAt: t0},
		{ID: "2", Title: "Desk", Description: "Fits a macbook nicely", Price: 50, CreatedAt: t0},
		{ID: "3", Title: "Chair", Price: 30, CreatedAt: t0},
	}
	filters := model.DefaultFilters()
	filters.Query = "MACBOOK"

	got := Select(products, filters)
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d: %v", len(got), ids(got))
	}
}

func TestSelectLocation(t *testing.T) {
	withLocation := product("1", 50, t0)
	withLocation.Location = "Downtown Berlin"
	without := product("2", 50, t0)

	filters := model.DefaultFilters()
	filters.Location = "berlin"

	got := Select([]model.Product{withLocation, without}, filters)
	if len(got) != 1 || got[0].ID != "1" {
		t.Errorf("expected only the located product, got %v", ids(got))
	}
}

func TestSelectPriceBoundsInclusive(t *testing.T) {
	products := []model.Product{
		product("low", 100, t0),
		product("high", 500, t0),
		product("under", 99.99, t0),
		product("over", 500.01, t0),
	}
	filters := model.SearchFilters{MinPrice: 100, MaxPrice: 500, SortBy: model.SortPriceAsc}

	got := Select(products, filters)
	if len(got) != 2 || got[0].ID != "low" || got[1].ID != "high" {
		t.Errorf("expected inclusive bounds [low high], got %v", ids(got))
	}
}

func TestSelectStableOnTies(t *testing.T) {
	products := []model.Product{
		product("a", 100, t0),
		product("b", 100, t0),
		product("c", 100, t0),
	}
	filters := model.DefaultFilters()
	filters.SortBy = model.SortPriceAsc

	got := Select(products, filters)
	if got[0].ID != "a" || got[1].ID != "b" || got[2].ID != "c" {
		t.Errorf("expected input order preserved on ties, got %v", ids(got))
	}

	// Determinism: repeated calls return identical orderings.
	again := Select(products, filters)
	for i := range got {
		if got[i].ID != again[i].ID {
			t.Fatalf("ordering changed between calls: %v vs %v", ids(got), ids(again))
		}
	}
}

func TestSelectDoesNotMutateInput(t *testing.T) {
	products := []model.Product{
		product("1", 300, t0),
		product("2", 100, t0.Add(time.Hour)),
	}
	filters := model.DefaultFilters()
	filters.SortBy = model.SortPriceAsc

	Select(products, filters)
	if products[0].ID != "1" || products[1].ID != "2" {
		t.Error("Select reordered its input slice")
	}
}

// TestSelectOnlyReturnsMatches generates random product sets and filter
// specifications and checks every returned product satisfies all five
// predicates.
func TestSelectOnlyReturnsMatches(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	categories := []string{"Electronics", "Furniture", "Vehicles"}
	conditions := []string{model.ConditionNew, model.ConditionUsed, model.ConditionRefurbished}
	locations := []string{"", "Berlin", "Paris", "New York"}
	queries := []string{"", "product", "xyzzy", "5"}

	for trial := 0; trial < 200; trial++ {
		var products []model.Product
		for i := 0; i < rng.Intn(30); i++ {
			p := product(fmt.Sprintf("%d", i), float64(rng.Intn(1000)), t0.Add(time.Duration(rng.Intn(100))*time.Hour))
			p.Category = categories[rng.Intn(len(categories))]
			p.Condition = conditions[rng.Intn(len(conditions))]
			p.Location = locations[rng.Intn(len(locations))]
			p.Views = rng.Intn(500)
			products = append(products, p)
		}

		filters := model.SearchFilters{
			Query:     queries[rng.Intn(len(queries))],
			Category:  append(categories, "")[rng.Intn(len(categories)+1)],
			MinPrice:  float64(rng.Intn(500)),
			MaxPrice:  float64(500 + rng.Intn(500)),
			Condition: append(conditions, "")[rng.Intn(len(conditions)+1)],
			Location:  locations[rng.Intn(len(locations))],
			SortBy:    model.SortDateDesc,
		}

		for _, p := range Select(products, filters) {
			if !Matches(p, filters) {
				t.Fatalf("trial %d: product %s does not match filters %+v", trial, p.ID, filters)
			}
		}
	}
}

func ids(products []model.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}
