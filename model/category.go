package model

import "time"

// Category represents a marketplace category.
type Category struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Type          string   `json:"type"`
	Subcategories []string `json:"subcategories,omitempty"`
}

// Category types.
const (
	CategoryGoods    = "goods"
	CategoryServices = "services"
)

// Review represents a product review.
type Review struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"productId"`
	ReviewerID   string    `json:"reviewerId"`
	ReviewerName string    `json:"reviewerName"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"createdAt"`
}
