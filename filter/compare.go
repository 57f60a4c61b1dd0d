package filter

import (
	"errors"

	"github.com/evomarket/evomarket-go/model"
)

// MaxCompare is the number of products that can be compared at once.
const MaxCompare = 4

// ErrComparisonFull is returned when toggling a fifth distinct product
// into the comparison set.
var ErrComparisonFull = errors.New("maximum 4 products can be compared")

// Comparison is the set of products marked for side-by-side comparison.
// The zero value is an empty set.
type Comparison struct {
	products []model.Product
}

// Toggle adds the product to the set, or removes it when already present.
// Returns whether the product is in the set afterwards. Adding beyond
// MaxCompare fails with ErrComparisonFull and leaves the set unchanged.
func (c *Comparison) Toggle(p model.Product) (bool, error) {
	for i, existing := range c.products {
		if existing.ID == p.ID {
			c.products = append(c.products[:i], c.products[i+1:]...)
			return false, nil
		}
	}

	if len(c.products) >= MaxCompare {
		return false, ErrComparisonFull
	}
	c.products = append(c.products, p)
	return true, nil
}

// Remove takes a product out of the set by ID.
func (c *Comparison) Remove(id string) {
	for i, p := range c.products {
		if p.ID == id {
			c.products = append(c.products[:i], c.products[i+1:]...)
			return
		}
	}
}

// Contains reports whether a product is marked for comparison.
func (c *Comparison) Contains(id string) bool {
	for _, p := range c.products {
		if p.ID == id {
			return true
		}
	}
	return false
}

// Products returns a copy of the comparison set in insertion order.
func (c *Comparison) Products() []model.Product {
	cp := make([]model.Product, len(c.products))
	copy(cp, c.products)
	return cp
}

// Len returns the number of compared products.
func (c *Comparison) Len() int {
	return len(c.products)
}

// Clear empties the set.
func (c *Comparison) Clear() {
	c.products = nil
}
