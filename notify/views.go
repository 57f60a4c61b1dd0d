package notify

import "github.com/evomarket/evomarket-go/model"

// View selects a client-side filtered slice of the registry. Views are
// pure predicates over All, not separate storage.
type View string

const (
	ViewAll      View = "all"
	ViewUnread   View = "unread"
	ViewListings View = "listings"
	ViewMessages View = "messages"
)

// Filter returns the notifications matching the view, preserving order.
func Filter(all []model.Notification, view View) []model.Notification {
	var matched []model.Notification
	for _, n := range all {
		if matches(n, view) {
			matched = append(matched, n)
		}
	}
	return matched
}

func matches(n model.Notification, view View) bool {
	switch view {
	case ViewUnread:
		return !n.IsRead
	case ViewListings:
		return n.Type == model.NotificationListingCreated ||
			n.Type == model.NotificationListingApproved ||
			n.Type == model.NotificationListingRejected
	case ViewMessages:
		return n.Type == model.NotificationMessage
	default:
		return true
	}
}
