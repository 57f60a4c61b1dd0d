package model

import "time"

// Product represents a marketplace listing as served by the remote API.
type Product struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	Images        []string  `json:"images"`
	Category      string    `json:"category"`
	Subcategory   string    `json:"subcategory,omitempty"`
	Condition     string    `json:"condition"`
	SellerID      string    `json:"sellerId"`
	SellerName    string    `json:"sellerName"`
	SellerContact string    `json:"sellerContact"`
	SellerRating  float64   `json:"sellerRating"`
	IsBoosted     bool      `json:"isBoosted"`
	IsActive      bool      `json:"isActive"`
	Views         int       `json:"views"`
	Likes         int       `json:"likes"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
	Location      string    `json:"location,omitempty"`
}

// Product conditions.
const (
	ConditionNew         = "new"
	ConditionUsed        = "used"
	ConditionRefurbished = "refurbished"
)

// StoredProduct is the denormalized mirror of Product kept in the local
// store for offline listing. Keyed by ID, replaced on save.
type StoredProduct struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	Images        []string  `json:"images"`
	Category      string    `json:"category"`
	Subcategory   string    `json:"subcategory,omitempty"`
	Condition     string    `json:"condition"`
	SellerID      string    `json:"sellerId"`
	SellerName    string    `json:"sellerName"`
	SellerContact string    `json:"sellerContact"`
	Location      string    `json:"location,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	IsActive      bool      `json:"isActive"`
}

// Stored converts a Product to its local-store mirror.
func (p Product) Stored() StoredProduct {
	return StoredProduct{
		ID:            p.ID,
		Title:         p.Title,
		Description:   p.Description,
		Price:         p.Price,
		Images:        p.Images,
		Category:      p.Category,
		Subcategory:   p.Subcategory,
		Condition:     p.Condition,
		SellerID:      p.SellerID,
		SellerName:    p.SellerName,
		SellerContact: p.SellerContact,
		Location:      p.Location,
		CreatedAt:     p.CreatedAt,
		IsActive:      p.IsActive,
	}
}
