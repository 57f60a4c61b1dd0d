package model

import "time"

// Notification is a locally stored user notification.
type Notification struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	IsRead    bool      `json:"isRead"`
	ProductID string    `json:"productId,omitempty"`
}

// Notification types.
const (
	NotificationListingCreated  = "listing_created"
	NotificationListingApproved = "listing_approved"
	NotificationListingRejected = "listing_rejected"
	NotificationMessage         = "message"
	NotificationSale            = "sale"
	NotificationReview          = "review"
	NotificationSystem          = "system"
)
