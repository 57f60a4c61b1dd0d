package store

import (
	"context"
	"fmt"
	"testing"
)

func TestSaveSearchDedupesAndCaps(t *testing.T) {
	b := NewMemory()
	ctx := context.Background()

	SaveSearch(ctx, b, "laptop")
	SaveSearch(ctx, b, "furniture")
	SaveSearch(ctx, b, "laptop")

	searches, err := Searches(ctx, b)
	if err != nil {
		t.Fatalf("Searches: %v", err)
	}
	if len(searches) != 2 {
		t.Fatalf("expected 2 searches, got %d", len(searches))
	}
	if searches[0] != "laptop" {
		t.Errorf("expected 'laptop' first, got %q", searches[0])
	}

	for i := 0; i < MaxSearches+5; i++ {
		SaveSearch(ctx, b, fmt.Sprintf("query-%d", i))
	}
	searches, _ = Searches(ctx, b)
	if len(searches) != MaxSearches {
		t.Errorf("expected %d searches after overflow, got %d", MaxSearches, len(searches))
	}
}

func TestSaveSearchIgnoresBlank(t *testing.T) {
	b := NewMemory()
	ctx := context.Background()

	SaveSearch(ctx, b, "   ")
	searches, _ := Searches(ctx, b)
	if len(searches) != 0 {
		t.Errorf("expected blank search to be ignored, got %d entries", len(searches))
	}
}

func TestRecentlyViewedMovesToFront(t *testing.T) {
	b := NewMemory()
	ctx := context.Background()

	SaveRecentlyViewed(ctx, b, "1")
	SaveRecentlyViewed(ctx, b, "2")
	SaveRecentlyViewed(ctx, b, "1")

	viewed, err := RecentlyViewed(ctx, b)
	if err != nil {
		t.Fatalf("RecentlyViewed: %v", err)
	}
	if len(viewed) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(viewed))
	}
	if viewed[0] != "1" || viewed[1] != "2" {
		t.Errorf("expected [1 2], got %v", viewed)
	}
}

func TestRecentlyViewedCap(t *testing.T) {
	b := NewMemory()
	ctx := context.Background()

	for i := 0; i < MaxRecentlyViewed+10; i++ {
		SaveRecentlyViewed(ctx, b, fmt.Sprintf("p-%d", i))
	}

	viewed, _ := RecentlyViewed(ctx, b)
	if len(viewed) != MaxRecentlyViewed {
		t.Errorf("expected %d entries, got %d", MaxRecentlyViewed, len(viewed))
	}
	if viewed[0] != fmt.Sprintf("p-%d", MaxRecentlyViewed+9) {
		t.Errorf("expected newest entry first, got %q", viewed[0])
	}
}

func TestWishlist(t *testing.T) {
	b := NewMemory()
	ctx := context.Background()

	AddToWishlist(ctx, b, "1")
	AddToWishlist(ctx, b, "2")
	AddToWishlist(ctx, b, "1")

	wishlist, err := Wishlist(ctx, b)
	if err != nil {
		t.Fatalf("Wishlist: %v", err)
	}
	if len(wishlist) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(wishlist))
	}
	if wishlist[0] != "1" {
		t.Errorf("expected re-added entry at front, got %v", wishlist)
	}

	in, _ := InWishlist(ctx, b, "2")
	if !in {
		t.Error("expected '2' to be wishlisted")
	}

	RemoveFromWishlist(ctx, b, "2")
	in, _ = InWishlist(ctx, b, "2")
	if in {
		t.Error("expected '2' to be removed")
	}
}

func TestPurgeAll(t *testing.T) {
	b := NewMemory()
	ctx := context.Background()

	SaveSearch(ctx, b, "laptop")
	AddToWishlist(ctx, b, "1")
	SaveRecentlyViewed(ctx, b, "1")

	if err := PurgeAll(ctx, b); err != nil {
		t.Fatalf("PurgeAll: %v", err)
	}

	searches, _ := Searches(ctx, b)
	wishlist, _ := Wishlist(ctx, b)
	viewed, _ := RecentlyViewed(ctx, b)
	if len(searches)+len(wishlist)+len(viewed) != 0 {
		t.Error("expected empty store after purge")
	}
}
