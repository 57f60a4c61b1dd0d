// Package notify maintains the local notification registry: an ordered,
// capped collection with read tracking and a change broadcast so other
// open views converge after every mutation.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/evomarket/evomarket-go/model"
	"github.com/evomarket/evomarket-go/store"
)

// MaxNotifications is the collection cap; the oldest entries are evicted
// first on insert.
const MaxNotifications = 100

// Registry manages notifications over a storage backend. All mutating
// operations broadcast a payload-free change signal; subscribers re-fetch
// via All or UnreadCount.
type Registry struct {
	backend store.Backend

	mu      sync.Mutex
	subs    map[int]chan struct{}
	nextSub int
}

// NewRegistry creates a registry over the given backend.
func NewRegistry(backend store.Backend) *Registry {
	return &Registry{
		backend: backend,
		subs:    make(map[int]chan struct{}),
	}
}

// Save inserts a notification at the front and truncates the collection to
// the most recent MaxNotifications entries.
func (r *Registry) Save(ctx context.Context, n model.Notification) error {
	all, err := r.All(ctx)
	if err != nil {
		return err
	}

	updated := make([]model.Notification, 0, len(all)+1)
	updated = append(updated, n)
	updated = append(updated, all...)
	if len(updated) > MaxNotifications {
		updated = updated[:MaxNotifications]
	}

	if err := r.write(ctx, updated); err != nil {
		return err
	}
	slog.Debug("notification saved", "type", n.Type, "id", n.ID)
	return nil
}

// All returns every stored notification, most recent first.
func (r *Registry) All(ctx context.Context) ([]model.Notification, error) {
	data, err := r.backend.Get(ctx, store.KeyNotifications)
	if err != nil {
		return nil, fmt.Errorf("getting notifications: %w", err)
	}
	if data == nil {
		return nil, nil
	}

	var all []model.Notification
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, fmt.Errorf("decoding notifications: %w", err)
	}
	return all, nil
}

// MarkAsRead marks a single notification as read.
func (r *Registry) MarkAsRead(ctx context.Context, id string) error {
	all, err := r.All(ctx)
	if err != nil {
		return err
	}

	for i := range all {
		if all[i].ID == id {
			all[i].IsRead = true
		}
	}
	return r.write(ctx, all)
}

// MarkAllAsRead marks every notification as read.
func (r *Registry) MarkAllAsRead(ctx context.Context) error {
	all, err := r.All(ctx)
	if err != nil {
		return err
	}

	for i := range all {
		all[i].IsRead = true
	}
	return r.write(ctx, all)
}

// Remove deletes a notification.
func (r *Registry) Remove(ctx context.Context, id string) error {
	all, err := r.All(ctx)
	if err != nil {
		return err
	}

	kept := all[:0]
	for _, n := range all {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	return r.write(ctx, kept)
}

// UnreadCount returns the number of unread notifications.
func (r *Registry) UnreadCount(ctx context.Context) (int, error) {
	all, err := r.All(ctx)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, n := range all {
		if !n.IsRead {
			count++
		}
	}
	return count, nil
}

// Subscribe registers an observer. The returned channel receives a signal
// after every mutation; the cancel function unregisters the observer.
// Signals carry no payload and may coalesce, so observers must re-fetch.
func (r *Registry) Subscribe() (<-chan struct{}, func()) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextSub
	r.nextSub++
	ch := make(chan struct{}, 1)
	r.subs[id] = ch

	cancel := func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.subs, id)
	}
	return ch, cancel
}

// write persists the collection and broadcasts the change signal.
func (r *Registry) write(ctx context.Context, all []model.Notification) error {
	data, err := json.Marshal(all)
	if err != nil {
		return fmt.Errorf("encoding notifications: %w", err)
	}
	if err := r.backend.Set(ctx, store.KeyNotifications, data); err != nil {
		return fmt.Errorf("setting notifications: %w", err)
	}

	r.broadcast()
	return nil
}

// broadcast signals every subscriber without blocking. A subscriber whose
// buffer already holds a pending signal is skipped; it will re-fetch anyway.
func (r *Registry) broadcast() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, ch := range r.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// ListingCreated builds the notification emitted after a successful
// listing submission.
func ListingCreated(productID, title string) model.Notification {
	return model.Notification{
		ID:        uuid.NewString(),
		Type:      model.NotificationListingCreated,
		Title:     "Product Listed Successfully!",
		Message:   fmt.Sprintf("Your product %q has been listed and is now live.", title),
		Timestamp: time.Now(),
		ProductID: productID,
	}
}
