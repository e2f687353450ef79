package pocketbase

import (
	"context"
	"fmt"
	"time"

	"blogapi.app/internal/ports"
)

// ContactMessageRepositoryAdapter implements ContactMessageRepository on the contact_messages collection
type ContactMessageRepositoryAdapter struct {
	store      ports.RecordStore
	collection string
}

// NewContactMessageRepositoryAdapter creates a new contact message repository
func NewContactMessageRepositoryAdapter(store ports.RecordStore, collection string) ports.ContactMessageRepository {
	return &ContactMessageRepositoryAdapter{store: store, collection: collection}
}

func (r *ContactMessageRepositoryAdapter) Create(ctx context.Context, msg ports.ContactMessageData) error {
	payload := map[string]interface{}{
		"name":    msg.Name,
		"email":   msg.Email,
		"subject": msg.Subject,
		"message": msg.Message,
	}
	if msg.VisitorID != "" {
		payload["visitor_id"] = msg.VisitorID
	}
	if msg.IP != "" {
		payload["ip"] = msg.IP
	}

	if _, err := r.store.Create(ctx, r.collection, payload); err != nil {
		return fmt.Errorf("failed to create contact message: %w", err)
	}
	return nil
}

func (r *ContactMessageRepositoryAdapter) LastCreatedBy(ctx context.Context, visitorID string) (time.Time, bool, error) {
	if visitorID == "" {
		return time.Time{}, false, nil
	}
	return lastCreated(ctx, r.store, r.collection, Eq("visitor_id", visitorID))
}
