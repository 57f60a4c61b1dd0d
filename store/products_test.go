package store

import (
	"context"
	"testing"
	"time"

	"github.com/evomarket/evomarket-go/model"
)

func testProduct(id, seller string) model.StoredProduct {
	return model.StoredProduct{
		ID:        id,
		Title:     "Product " + id,
		Price:     50,
		Category:  "Electronics",
		Condition: model.ConditionUsed,
		SellerID:  seller,
		CreatedAt: time.Now(),
		IsActive:  true,
	}
}

func TestSaveAndGetProduct(t *testing.T) {
	b := NewMemory()
	ctx := context.Background()

	if err := SaveProduct(ctx, b, testProduct("1", "alice")); err != nil {
		t.Fatalf("SaveProduct: %v", err)
	}

	got, err := ProductByID(ctx, b, "1")
	if err != nil {
		t.Fatalf("ProductByID: %v", err)
	}
	if got == nil {
		t.Fatal("expected product, got nil")
	}
	if got.Title != "Product 1" {
		t.Errorf("expected title 'Product 1', got %q", got.Title)
	}

	missing, err := ProductByID(ctx, b, "2")
	if err != nil {
		t.Fatalf("ProductByID: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for missing product")
	}
}

func TestSaveProductReplaces(t *testing.T) {
	b := NewMemory()
	ctx := context.Background()

	SaveProduct(ctx, b, testProduct("1", "alice"))

	updated := testProduct("1", "alice")
	updated.Title = "Renamed"
	SaveProduct(ctx, b, updated)

	products, err := Products(ctx, b)
	if err != nil {
		t.Fatalf("Products: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("expected 1 product after replace, got %d", len(products))
	}
	if products[0].Title != "Renamed" {
		t.Errorf("expected title 'Renamed', got %q", products[0].Title)
	}
}

func TestProductsBySeller(t *testing.T) {
	b := NewMemory()
	ctx := context.Background()

	SaveProduct(ctx, b, testProduct("1", "alice"))
	SaveProduct(ctx, b, testProduct("2", "bob"))
	SaveProduct(ctx, b, testProduct("3", "alice"))

	owned, err := ProductsBySeller(ctx, b, "alice")
	if err != nil {
		t.Fatalf("ProductsBySeller: %v", err)
	}
	if len(owned) != 2 {
		t.Errorf("expected 2 products for alice, got %d", len(owned))
	}
}

func TestUpdateProduct(t *testing.T) {
	b := NewMemory()
	ctx := context.Background()

	SaveProduct(ctx, b, testProduct("1", "alice"))

	err := UpdateProduct(ctx, b, "1", func(p *model.StoredProduct) {
		p.Price = 75
		p.IsActive = false
	})
	if err != nil {
		t.Fatalf("UpdateProduct: %v", err)
	}

	got, _ := ProductByID(ctx, b, "1")
	if got.Price != 75 {
		t.Errorf("expected price 75, got %v", got.Price)
	}
	if got.IsActive {
		t.Error("expected product to be inactive")
	}
}

func TestRemoveProduct(t *testing.T) {
	b := NewMemory()
	ctx := context.Background()

	SaveProduct(ctx, b, testProduct("1", "alice"))
	SaveProduct(ctx, b, testProduct("2", "alice"))
	RemoveProduct(ctx, b, "1")

	products, _ := Products(ctx, b)
	if len(products) != 1 {
		t.Fatalf("expected 1 product after remove, got %d", len(products))
	}
	if products[0].ID != "2" {
		t.Errorf("expected remaining product '2', got %q", products[0].ID)
	}
}
