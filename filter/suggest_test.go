package filter

import (
	"testing"

	"github.com/evomarket/evomarket-go/model"
)

func TestSuggestWithQuery(t *testing.T) {
	s := Suggest("mac", TrendingSearches, []string{"Laptop"})
	if len(s.Matches) != 1 || s.Matches[0] != "MacBook Pro" {
		t.Errorf("expected [MacBook Pro], got %v", s.Matches)
	}
	if s.Trending != nil || s.Recent != nil {
		t.Error("query suggestions must not include trending/recent lists")
	}

	s = Suggest("xyzzy", TrendingSearches, nil)
	if len(s.Matches) != 0 {
		t.Errorf("expected no matches, got %v", s.Matches)
	}
}

func TestSuggestEmptyQuery(t *testing.T) {
	trending := []string{"a", "b", "c", "d", "e", "f", "g"}
	recent := []string{"Laptop", "Car"}

	s := Suggest("", trending, recent)
	if len(s.Trending) != 5 {
		t.Errorf("expected trending capped to 5, got %d", len(s.Trending))
	}
	if len(s.Recent) != 2 {
		t.Errorf("expected 2 recent searches, got %d", len(s.Recent))
	}
}

func TestFeatured(t *testing.T) {
	var products []model.Product
	for i := 0; i < 10; i++ {
		products = append(products, model.Product{ID: string(rune('a' + i)), IsBoosted: i%2 == 0})
	}

	featured := Featured(products)
	if len(featured) != 5 {
		t.Fatalf("expected 5 boosted products, got %d", len(featured))
	}
	for _, p := range featured {
		if !p.IsBoosted {
			t.Errorf("product %s is not boosted", p.ID)
		}
	}
}

func TestTrending(t *testing.T) {
	var products []model.Product
	for i := 0; i < 12; i++ {
		products = append(products, model.Product{ID: string(rune('a' + i)), Views: i})
	}

	trending := Trending(products)
	if len(trending) != 8 {
		t.Fatalf("expected 8 trending products, got %d", len(trending))
	}
	if trending[0].Views != 11 {
		t.Errorf("expected most viewed first, got %d views", trending[0].Views)
	}
	// Input untouched.
	if products[0].ID != "a" {
		t.Error("Trending reordered its input")
	}
}
