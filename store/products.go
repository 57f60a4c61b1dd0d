package store

import (
	"context"

	"github.com/evomarket/evomarket-go/model"
)

// SaveProduct stores a product in the local cache, replacing any entry
// with the same ID.
func SaveProduct(ctx context.Context, b Backend, product model.StoredProduct) error {
	products, err := Products(ctx, b)
	if err != nil {
		return err
	}

	kept := products[:0]
	for _, p := range products {
		if p.ID != product.ID {
			kept = append(kept, p)
		}
	}
	kept = append(kept, product)

	return setJSON(ctx, b, KeyProducts, kept)
}

// Products returns all locally cached products.
func Products(ctx context.Context, b Backend) ([]model.StoredProduct, error) {
	var products []model.StoredProduct
	if _, err := getJSON(ctx, b, KeyProducts, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// ProductByID returns a cached product, or nil if not cached.
func ProductByID(ctx context.Context, b Backend, id string) (*model.StoredProduct, error) {
	products, err := Products(ctx, b)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, nil
}

// ProductsBySeller returns the cached products listed by a seller.
func ProductsBySeller(ctx context.Context, b Backend, sellerID string) ([]model.StoredProduct, error) {
	products, err := Products(ctx, b)
	if err != nil {
		return nil, err
	}

	var owned []model.StoredProduct
	for _, p := range products {
		if p.SellerID == sellerID {
			owned = append(owned, p)
		}
	}
	return owned, nil
}

// UpdateProduct applies mutate to the cached product with the given ID.
// A no-op when the product is not cached.
func UpdateProduct(ctx context.Context, b Backend, id string, mutate func(*model.StoredProduct)) error {
	products, err := Products(ctx, b)
	if err != nil {
		return err
	}

	for i := range products {
		if products[i].ID == id {
			mutate(&products[i])
			return setJSON(ctx, b, KeyProducts, products)
		}
	}
	return nil
}

// RemoveProduct deletes a product from the local cache.
func RemoveProduct(ctx context.Context, b Backend, id string) error {
	products, err := Products(ctx, b)
	if err != nil {
		return err
	}

	kept := products[:0]
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}

	return setJSON(ctx, b, KeyProducts, kept)
}
